package render

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"sync"
)

//go:embed templates
var templatesFS embed.FS

const fragmentExtension = ".tmpl"

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry holding the shipped project
// configuration fragments. It is built once from the embedded fragment files
// and never mutated afterwards. The shipped set is acyclic and every include
// it references resolves, so a failure here is a build defect and panics.
func Default() *Registry {
	defaultOnce.Do(func() {
		sub, err := fs.Sub(templatesFS, "templates")
		if err != nil {
			panic(err)
		}
		registry, err := RegistryFromFS(sub)
		if err != nil {
			panic(err)
		}
		defaultRegistry = registry
	})
	return defaultRegistry
}

// RegistryFromFS builds a registry from every .tmpl file at the root of
// fsys, keyed by the file's basename without the extension.
func RegistryFromFS(fsys fs.FS) (*Registry, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("render: reading fragment dir: %w", err)
	}

	registry := NewRegistry()
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), fragmentExtension) {
			continue
		}
		body, err := fs.ReadFile(fsys, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("render: reading fragment %q: %w", entry.Name(), err)
		}
		name := strings.TrimSuffix(entry.Name(), fragmentExtension)
		if err := registry.Register(name, string(body)); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
