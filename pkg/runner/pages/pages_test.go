package pages

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/restyle/pkg/store"
)

const doc = `<page title="Notes"><p><t selected="all"><![CDATA[hello]]></t></p></page>`

func init() {
	color.NoColor = true
}

func TestImportListExportDelete(t *testing.T) {
	p, err := store.Load(store.DirConfig(t.TempDir()))
	require.NoError(t, err)
	ctx := context.Background()

	var out bytes.Buffer
	imp := &Import{Name: "notes", File: "-", In: strings.NewReader(doc), Persistence: p, Out: &out}
	require.NoError(t, imp.Do(ctx))
	assert.Contains(t, out.String(), `imported "notes": 1 paragraph(s), 1 selected run(s)`)

	out.Reset()
	require.NoError(t, (&List{Persistence: p, Out: &out}).Do(ctx))
	assert.Contains(t, out.String(), "  notes\n")

	out.Reset()
	require.NoError(t, (&Export{Name: "notes", Persistence: p, Out: &out}).Do(ctx))
	assert.Contains(t, out.String(), `<t selected="all"><![CDATA[hello]]></t>`)

	file := filepath.Join(t.TempDir(), "notes.xml")
	require.NoError(t, (&Export{Name: "notes", File: file, Persistence: p}).Do(ctx))
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `title="Notes"`)

	require.NoError(t, (&Import{Name: "copy", File: file, Persistence: p, Out: &bytes.Buffer{}}).Do(ctx))
	assert.Equal(t, []string{"copy", "notes"}, p.Pages(ctx, ""))

	require.NoError(t, (&Delete{Name: "copy", Persistence: p, Out: &bytes.Buffer{}}).Do(ctx))
	err = (&Delete{Name: "copy", Persistence: p, Out: &bytes.Buffer{}}).Do(ctx)
	assert.True(t, errors.Is(err, store.ErrPageNotFound))
}

func TestImportRejectsBadDocument(t *testing.T) {
	p, err := store.Load(store.DirConfig(t.TempDir()))
	require.NoError(t, err)

	imp := &Import{Name: "bad", File: "-", In: strings.NewReader("<notapage/>"), Persistence: p, Out: &bytes.Buffer{}}
	assert.Error(t, imp.Do(context.Background()))
	assert.Empty(t, p.Pages(context.Background(), ""))
}

func TestListEmpty(t *testing.T) {
	p, err := store.Load(store.DirConfig(t.TempDir()))
	require.NoError(t, err)
	var out bytes.Buffer
	require.NoError(t, (&List{Persistence: p, Out: &out}).Do(context.Background()))
	assert.Contains(t, out.String(), "no pages")
}

func TestExportRemovesTempFileOnFailure(t *testing.T) {
	p, err := store.Load(store.DirConfig(t.TempDir()))
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, (&Import{Name: "notes", File: "-", In: strings.NewReader(doc), Persistence: p, Out: &bytes.Buffer{}}).Do(ctx))

	// A non-empty directory can not be replaced by a file.
	target := filepath.Join(t.TempDir(), "notes.xml")
	require.NoError(t, os.MkdirAll(filepath.Join(target, "keep"), 0o755))

	err = (&Export{Name: "notes", File: target, Persistence: p}).Do(ctx)
	assert.Error(t, err)
	_, statErr := os.Stat(target + ".tmp")
	assert.True(t, os.IsNotExist(statErr), "temp file left behind: %v", statErr)
}
