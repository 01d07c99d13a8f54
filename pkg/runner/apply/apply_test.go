package apply

import (
	"bytes"
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/restyle/pkg/catalog"
	"tableflip.dev/restyle/pkg/page"
	"tableflip.dev/restyle/pkg/splice"
	"tableflip.dev/restyle/pkg/store"
)

type memoryPersistence struct {
	mu     sync.Mutex
	pages  map[string][]byte
	writes int
}

func newMemoryPersistence(t *testing.T, pages map[string]string) *memoryPersistence {
	t.Helper()
	mp := &memoryPersistence{pages: make(map[string][]byte)}
	for name, doc := range pages {
		mp.pages[name] = []byte(doc)
	}
	return mp
}

func (m *memoryPersistence) Pages(_ context.Context, prefix string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for name := range m.pages {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

func (m *memoryPersistence) Page(name string) (*page.Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.pages[name]
	if !ok {
		return nil, store.ErrPageNotFound
	}
	return page.Decode(bytes.NewReader(doc))
}

func (m *memoryPersistence) StorePage(name string, p *page.Page) error {
	data, err := page.Marshal(p)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pages[name] = data
	m.writes++
	return nil
}

func (m *memoryPersistence) DeletePage(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.pages, name)
	return nil
}

func (m *memoryPersistence) Catalog() (*catalog.Catalog, error) {
	return catalog.Default(), nil
}

func (m *memoryPersistence) StoreCatalog(*catalog.Catalog) error {
	return errors.New("read only")
}

func (m *memoryPersistence) Watch(context.Context) (<-chan store.Event, error) {
	return nil, errors.New("not supported")
}

const cursorDoc = `<page title="Notes"><p><t><![CDATA[foo ba]]></t><t selected="all"><![CDATA[]]></t><t><![CDATA[r baz]]></t></p></page>`

const plainDoc = `<page><p><t><![CDATA[nothing selected here]]></t></p></page>`

func init() {
	color.NoColor = true
}

func TestApplyCommitsOnSuccess(t *testing.T) {
	mp := newMemoryPersistence(t, map[string]string{"notes": cursorDoc})
	var out bytes.Buffer
	a := &Apply{Page: "notes", Style: "Code", Persistence: mp, Out: &out}

	require.NoError(t, a.Do(context.Background()))
	assert.True(t, a.Applied)
	assert.Equal(t, 1, mp.writes)

	pg, err := mp.Page("notes")
	require.NoError(t, err)
	r, ok := pg.Paragraphs[0].At(1)
	require.True(t, ok)
	assert.Equal(t, "bar", r.Text)
	assert.Equal(t, "Consolas", r.Style.FontFamily)
	assert.Equal(t, page.All, r.Marker)
	assert.Contains(t, out.String(), `applied character style "Code"`)
}

func TestApplyDoesNotCommitWithoutSelection(t *testing.T) {
	mp := newMemoryPersistence(t, map[string]string{"plain": plainDoc})
	var out bytes.Buffer
	a := &Apply{Page: "plain", Style: "0", Persistence: mp, Out: &out}

	require.NoError(t, a.Do(context.Background()))
	assert.False(t, a.Applied)
	assert.Equal(t, 0, mp.writes)
	assert.Equal(t, plainDoc, string(mp.pages["plain"]))
	assert.Contains(t, out.String(), "nothing selected")
}

func TestApplySelectionOverride(t *testing.T) {
	mp := newMemoryPersistence(t, map[string]string{"plain": plainDoc})
	a := &Apply{Page: "plain", Style: "Heading 1", Selection: "0:0", ClearSelection: true, Persistence: mp, Out: &bytes.Buffer{}}

	require.NoError(t, a.Do(context.Background()))
	assert.Equal(t, 1, mp.writes)

	pg, err := mp.Page("plain")
	require.NoError(t, err)
	assert.Equal(t, "16.0pt", pg.Paragraphs[0].Style.FontSize)
	assert.Equal(t, 0, pg.Selected().Len())
}

func TestApplySelectionReplacesMarkers(t *testing.T) {
	const doc = `<page><p><t selected="all"><![CDATA[stale]]></t><t><![CDATA[ fresh]]></t></p></page>`
	mp := newMemoryPersistence(t, map[string]string{"notes": doc})
	a := &Apply{Page: "notes", Style: "Code", Selection: "0:1", Persistence: mp, Out: &bytes.Buffer{}}

	require.NoError(t, a.Do(context.Background()))

	pg, err := mp.Page("notes")
	require.NoError(t, err)
	assert.Equal(t, "0:1", pg.Selected().String())

	stale, _ := pg.Paragraphs[0].At(0)
	assert.True(t, stale.Style.IsZero())
	fresh, _ := pg.Paragraphs[0].At(1)
	assert.False(t, fresh.Style.IsZero())
}

func TestApplyMalformedSelectionAborts(t *testing.T) {
	mp := newMemoryPersistence(t, map[string]string{"plain": plainDoc})
	a := &Apply{Page: "plain", Style: "Code", Selection: "0:7", Persistence: mp, Out: &bytes.Buffer{}}

	err := a.Do(context.Background())
	assert.True(t, errors.Is(err, splice.ErrMalformedTree), "got %v", err)
	assert.Equal(t, 0, mp.writes)
}

func TestApplyDryRun(t *testing.T) {
	mp := newMemoryPersistence(t, map[string]string{"notes": cursorDoc})
	var out bytes.Buffer
	a := &Apply{Page: "notes", Style: "Code", DryRun: true, Persistence: mp, Out: &out}

	require.NoError(t, a.Do(context.Background()))
	assert.True(t, a.Applied)
	assert.Equal(t, 0, mp.writes)
	assert.Contains(t, out.String(), "foo bar baz")
}

func TestApplyErrors(t *testing.T) {
	mp := newMemoryPersistence(t, map[string]string{"notes": cursorDoc})

	err := (&Apply{Page: "missing", Style: "Code", Persistence: mp}).Do(context.Background())
	assert.True(t, errors.Is(err, store.ErrPageNotFound))

	err = (&Apply{Page: "notes", Style: "Nope", Persistence: mp}).Do(context.Background())
	assert.True(t, errors.Is(err, catalog.ErrUnknownStyle))

	err = (&Apply{Page: "notes", Style: "Code"}).Do(context.Background())
	assert.Error(t, err)

	err = (&Apply{Page: "notes", Style: "Code", Selection: "x", Persistence: mp}).Do(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 0, mp.writes)
}
