package pagedef

import (
	"bytes"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Store holds the pages loaded from a set of definition files.
type Store struct {
	pages map[string]Page
}

// LoadOption customises LoadFS.
type LoadOption func(*loadConfig)

type loadConfig struct {
	vars map[string]string
}

// WithVars seeds variables visible to every file. File-level vars win.
func WithVars(vars map[string]string) LoadOption {
	return func(cfg *loadConfig) {
		for key, value := range vars {
			cfg.vars[key] = value
		}
	}
}

// LoadFS walks fsys and parses every YAML or JSON page definition file.
// When fsys is nil or holds no definition files, the returned store is empty.
func LoadFS(fsys fs.FS, opts ...LoadOption) (*Store, error) {
	cfg := &loadConfig{vars: make(map[string]string)}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	store := &Store{pages: make(map[string]Page)}
	if fsys == nil {
		return store, nil
	}
	base := NewExpander(fsys, cfg.vars)

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("pagedef: read %s: %w", path, err)
		}
		pages, err := parseFile(data, path, base)
		if err != nil {
			return err
		}
		for _, page := range pages {
			if _, exists := store.pages[page.ID]; exists {
				return fmt.Errorf("pagedef: duplicate page %q (file %s)", page.ID, path)
			}
			store.pages[page.ID] = page
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Parse decodes a single definition document held in memory.
func Parse(data []byte, source string, opts ...LoadOption) (*Store, error) {
	cfg := &loadConfig{vars: make(map[string]string)}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	pages, err := parseFile(data, source, NewExpander(nil, cfg.vars))
	if err != nil {
		return nil, err
	}
	store := &Store{pages: make(map[string]Page, len(pages))}
	for _, page := range pages {
		if _, exists := store.pages[page.ID]; exists {
			return nil, fmt.Errorf("pagedef: duplicate page %q (file %s)", page.ID, source)
		}
		store.pages[page.ID] = page
	}
	return store, nil
}

// Page returns the page registered under id.
func (s *Store) Page(id string) (Page, error) {
	if s != nil {
		if page, ok := s.pages[id]; ok {
			return page, nil
		}
	}
	return Page{}, fmt.Errorf("%w: %q", ErrUnknownPage, id)
}

// IDs lists the page ids in sorted order.
func (s *Store) IDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.pages))
	for id := range s.pages {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Empty reports whether the store holds any page.
func (s *Store) Empty() bool {
	return s == nil || len(s.pages) == 0
}

func parseFile(data []byte, source string, base *Expander) ([]Page, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("pagedef: file %s is empty", source)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("pagedef: parse %s: %w", source, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("pagedef: file %s must hold a mapping", source)
	}

	root := doc.Content[0]
	var varsNode, pagesNode *yaml.Node
	for i := 0; i+1 < len(root.Content); i += 2 {
		switch root.Content[i].Value {
		case "vars":
			varsNode = root.Content[i+1]
		case "pages":
			pagesNode = root.Content[i+1]
		default:
			return nil, fmt.Errorf("pagedef: file %s: unknown top-level key %q", source, root.Content[i].Value)
		}
	}
	if pagesNode == nil {
		return nil, nil
	}
	if pagesNode.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("pagedef: file %s: pages must be a mapping", source)
	}

	expander := base
	if varsNode != nil {
		vars := make(map[string]string)
		if err := varsNode.Decode(&vars); err != nil {
			return nil, fmt.Errorf("pagedef: file %s: vars: %w", source, err)
		}
		expander = base.With(vars)
	}
	if err := expander.expandNode(pagesNode); err != nil {
		return nil, fmt.Errorf("pagedef: file %s: %w", source, err)
	}

	pages := make([]Page, 0, len(pagesNode.Content)/2)
	for i := 0; i+1 < len(pagesNode.Content); i += 2 {
		id := strings.TrimSpace(pagesNode.Content[i].Value)
		if id == "" {
			return nil, fmt.Errorf("pagedef: file %s defines an empty page id", source)
		}
		var page Page
		if err := pagesNode.Content[i+1].Decode(&page); err != nil {
			return nil, fmt.Errorf("pagedef: file %s page %q: %w", source, id, err)
		}
		page.ID = id
		page.Source = source
		pages = append(pages, page)
	}
	return pages, nil
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
