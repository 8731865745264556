package render

import "errors"

var (
	// ErrTemplateNotFound reports a requested or included template name that
	// is absent from the registry.
	ErrTemplateNotFound = errors.New("render: template not found")

	// ErrUnboundVariable reports a placeholder left without a matching
	// binding after include resolution. The wrapped message names the key.
	ErrUnboundVariable = errors.New("render: unbound variable")

	// ErrCyclicInclude reports an include chain that revisits a template.
	// The shipped template set is acyclic; this guards a malformed registry
	// from recursing unboundedly.
	ErrCyclicInclude = errors.New("render: cyclic include")
)
