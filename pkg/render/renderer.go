package render

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// includePattern matches {% include "template_name" %} directives.
	includePattern = regexp.MustCompile(`\{%\s*include\s+["']([^"']+)["']\s*%\}`)
	// placeholderPattern matches {{ variable_name }} placeholders.
	placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)
)

// Renderer resolves include directives against a registry and substitutes
// variable placeholders. It holds no state between calls: a render is a pure
// function of (registry contents, template name, bindings).
type Renderer struct {
	registry *Registry
}

// NewRenderer creates a renderer bound to registry. A nil registry falls
// back to the shipped default set.
func NewRenderer(registry *Registry) *Renderer {
	if registry == nil {
		registry = Default()
	}
	return &Renderer{registry: registry}
}

// Render looks up name, splices every included fragment in place depth-first
// until the body is a single flat text, then replaces each placeholder with
// the text form of its binding. The result is returned verbatim: no
// trimming, no re-indentation, no YAML validation.
func (r *Renderer) Render(name string, bindings Bindings) (string, error) {
	flat, err := r.resolve(name, nil)
	if err != nil {
		return "", err
	}
	return substitute(flat, bindings)
}

// resolve expands name and, recursively, every template it includes.
// Includes are resolved pre-order with the surrounding literal text
// preserved exactly. chain holds the names currently being expanded,
// outermost first, so a revisit is reported as a cycle instead of recursing
// unboundedly.
func (r *Renderer) resolve(name string, chain []string) (string, error) {
	for _, active := range chain {
		if active == name {
			return "", fmt.Errorf("%w: %s", ErrCyclicInclude, strings.Join(append(chain, name), " -> "))
		}
	}

	body, err := r.registry.Lookup(name)
	if err != nil {
		return "", err
	}
	chain = append(chain, name)

	var out strings.Builder
	last := 0
	for _, match := range includePattern.FindAllStringSubmatchIndex(body, -1) {
		out.WriteString(body[last:match[0]])
		included, err := r.resolve(body[match[2]:match[3]], chain)
		if err != nil {
			return "", err
		}
		out.WriteString(included)
		last = match[1]
	}
	out.WriteString(body[last:])
	return out.String(), nil
}

// substitute replaces every placeholder in flat with its bound value. The
// binding set is global for the whole render call; a placeholder with no
// matching binding fails the render rather than silently emitting nothing.
func substitute(flat string, bindings Bindings) (string, error) {
	var missing string
	replaced := placeholderPattern.ReplaceAllStringFunc(flat, func(directive string) string {
		key := placeholderPattern.FindStringSubmatch(directive)[1]
		value, ok := bindings[key]
		if !ok {
			if missing == "" {
				missing = key
			}
			return directive
		}
		return formatValue(value)
	})
	if missing != "" {
		return "", fmt.Errorf("%w: %q", ErrUnboundVariable, missing)
	}
	return replaced, nil
}
