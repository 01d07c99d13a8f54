// Package store persists pages and the style catalog on disk.
package store

import (
	"bytes"
	"context"
	"encoding/base32"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/restyle/pkg/catalog"
	"tableflip.dev/restyle/pkg/page"
)

// ErrPageNotFound is returned when no page is stored under a name.
var ErrPageNotFound = errors.New("store: page not found")

// Persistence is the fetch/commit contract for pages and the style catalog.
type Persistence interface {
	Pages(ctx context.Context, prefix string) []string
	Page(name string) (*page.Page, error)
	StorePage(name string, p *page.Page) error
	DeletePage(name string) error
	Catalog() (*catalog.Catalog, error)
	StoreCatalog(c *catalog.Catalog) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

const (
	pagesDir    = "pages"
	catalogDir  = "catalog"
	catalogFile = "styles.json"
	pageExt     = ".xml"
)

var nameEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

func (p *persistence) Pages(ctx context.Context, prefix string) []string {
	names := make([]string, 0)
	for key := range p.d.KeysPrefix(pagesDir+"-", ctx.Done()) {
		name, ok := pageFromKey(key)
		if !ok {
			fmt.Fprintf(os.Stderr, "store: skipping %s\n", key)
			continue
		}
		if prefix == "" || strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func (p *persistence) Page(name string) (*page.Page, error) {
	key, err := pageKey(name)
	if err != nil {
		return nil, err
	}
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrPageNotFound, name)
		}
		return nil, fmt.Errorf("store: read %q: %w", name, err)
	}
	pg, err := page.Decode(bytes.NewReader(val))
	if err != nil {
		return nil, fmt.Errorf("store: %q: %w", name, err)
	}
	return pg, nil
}

func (p *persistence) StorePage(name string, pg *page.Page) error {
	key, err := pageKey(name)
	if err != nil {
		return err
	}
	data, err := page.Marshal(pg)
	if err != nil {
		return err
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %q: %w", name, err)
	}
	return nil
}

func (p *persistence) DeletePage(name string) error {
	key, err := pageKey(name)
	if err != nil {
		return err
	}
	if !p.d.Has(key) {
		return fmt.Errorf("%w: %q", ErrPageNotFound, name)
	}
	return p.d.Erase(key)
}

// Catalog returns the stored catalog, or the built-in one when none was saved.
func (p *persistence) Catalog() (*catalog.Catalog, error) {
	val, err := p.d.Read(catalogKey())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return catalog.Default(), nil
		}
		return nil, fmt.Errorf("store: read catalog: %w", err)
	}
	c := &catalog.Catalog{}
	if err := json.Unmarshal(val, c); err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	return c, nil
}

func (p *persistence) StoreCatalog(c *catalog.Catalog) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	if err := p.d.Write(catalogKey(), data); err != nil {
		return fmt.Errorf("store: write catalog: %w", err)
	}
	return nil
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// pageKey makes `pages-<base32 name>.xml`
func pageKey(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", errors.New("store: page name required")
	}
	return pagesDir + "-" + nameEncoding.EncodeToString([]byte(name)) + pageExt, nil
}

func pageFromKey(key string) (string, bool) {
	pk := keyToPathTransform(key)
	if len(pk.Path) != 1 || pk.Path[0] != pagesDir {
		return "", false
	}
	return pageFromFile(pk.FileName)
}

func pageFromFile(file string) (string, bool) {
	encoded := strings.TrimSuffix(file, pageExt)
	if encoded == file {
		return "", false
	}
	name, err := nameEncoding.DecodeString(encoded)
	if err != nil {
		return "", false
	}
	return string(name), true
}

func catalogKey() string {
	return catalogDir + "-" + catalogFile
}
