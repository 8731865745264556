package render

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores template bodies by name, providing lookup and duplication
// safeguards. It is populated during startup and read-only afterwards, so
// concurrent renders need no coordination beyond the registry's own guard.
type Registry struct {
	mu        sync.RWMutex
	templates map[string]string
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		templates: make(map[string]string),
	}
}

// Register adds a template body under name. Duplicate names return an error:
// two fragments claiming the same name is a wiring mistake, not something to
// resolve at render time.
func (r *Registry) Register(name, body string) error {
	if name == "" {
		return fmt.Errorf("render: template name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.templates[name]; exists {
		return fmt.Errorf("render: template %q already registered", name)
	}

	r.templates[name] = body
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(name, body string) {
	if err := r.Register(name, body); err != nil {
		panic(err)
	}
}

// Lookup retrieves a template body by name.
func (r *Registry) Lookup(name string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	body, ok := r.templates[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return body, nil
}

// List returns a sorted list of template names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a template is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.templates[name]
	return ok
}
