package info

import (
	"bytes"
	"context"
	"testing"

	"tableflip.dev/restyle/pkg/page"
	"tableflip.dev/restyle/pkg/store"
)

func TestInfo(t *testing.T) {
	t.Setenv(store.ConfigPathEnv, "")
	base := t.TempDir()
	cfg := store.DirConfig(base)
	p, err := store.Load(cfg)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := p.StorePage("Inbox", &page.Page{}); err != nil {
		t.Fatalf("store: %v", err)
	}

	var out bytes.Buffer
	i := Info{Config: cfg, Persistence: p, Out: &out}
	if err := i.Do(context.Background()); err != nil {
		t.Fatalf("info: %v", err)
	}

	got := out.String()
	for _, want := range []string{"env var not set", "Config.path: " + base, "  Inbox\n", "Styles: 9"} {
		if !bytes.Contains([]byte(got), []byte(want)) {
			t.Errorf("expected %q in output:\n%s", want, got)
		}
	}
}
