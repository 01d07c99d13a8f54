package commands

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/restyle/pkg/page"
)

const notes = `<page title="Notes">
  <p><t><![CDATA[Hello ]]></t><t selected="all"><![CDATA[world]]></t></p>
</page>
`

func useTempStore(t *testing.T) {
	t.Helper()
	t.Setenv("RESTYLE_CONFIG_PATH", t.TempDir())
	t.Setenv("RESTYLE_PATH", t.TempDir())

	prev := color.Output
	color.Output = io.Discard
	t.Cleanup(func() { color.Output = prev })
}

func run(t *testing.T, in string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := New()
	cmd.SetArgs(append([]string{"--color=never"}, args...))
	cmd.SetIn(strings.NewReader(in))
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommandTree(t *testing.T) {
	cmd := New()
	want := []string{"apply", "styles", "show", "pages", "import", "export", "delete", "info", "watch", "version", "completion"}
	for _, name := range want {
		found, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, found.Name())
	}
	for _, name := range []string{"reset", "add", "remove"} {
		found, _, err := cmd.Find([]string{"styles", name})
		require.NoError(t, err, name)
		assert.Equal(t, name, found.Name())
	}
}

func TestImportApplyExport(t *testing.T) {
	useTempStore(t)

	_, err := run(t, notes, "import", "notes", "-")
	require.NoError(t, err)

	_, err = run(t, "", "apply", "notes", "--style", "Emphasis")
	require.NoError(t, err)

	got, err := run(t, "", "export", "notes")
	require.NoError(t, err)

	pg, err := page.DecodeString(got)
	require.NoError(t, err)
	require.Len(t, pg.Paragraphs, 1)
	r, ok := pg.Paragraphs[0].At(1)
	require.True(t, ok)
	assert.Equal(t, "world", r.Text)
	assert.True(t, r.Style.Italic)
}

func TestApplyRequiresStyle(t *testing.T) {
	useTempStore(t)

	_, err := run(t, "", "apply", "notes")
	assert.Error(t, err)
}

func TestApplyUnknownPage(t *testing.T) {
	useTempStore(t)

	_, err := run(t, "", "apply", "missing", "-s", "Emphasis")
	assert.Error(t, err)
}

func TestStylesAddRejectsBadCSS(t *testing.T) {
	useTempStore(t)

	_, err := run(t, "", "styles", "add", "Broken", "--css", "bold")
	assert.Error(t, err)

	_, err = run(t, "", "styles", "add", "Loud", "--css", "font-weight:bold")
	assert.NoError(t, err)
}
