// Package configscaffold generates human-editable, YAML-shaped project
// configuration text from a registry of composable template fragments. The
// root package exposes the shipped template names and a convenience entry
// point; the composition core lives in pkg/render.
package configscaffold

import (
	"github.com/goliatone/go-configscaffold/pkg/render"
)

// Bindings carries the caller-supplied variable values for a render call.
type Bindings = render.Bindings

// Registry aliases render.Registry for callers wiring a custom fragment set.
type Registry = render.Registry

// Renderer aliases render.Renderer for callers bypassing the entry point.
type Renderer = render.Renderer

// TemplateName identifies one of the shipped configuration templates.
// Callers go through these constants so a typo fails at compile time; the
// registry underneath stays string keyed over the raw bodies.
type TemplateName string

// The shipped template set. These names are the external contract: they are
// also the keys of the default registry.
const (
	TemplateConfigVersion              TemplateName = "config_version_template"
	TemplateAnonymizedUsageStatistics  TemplateName = "anonymized_usage_statistics_template"
	TemplateProjectUniqueID            TemplateName = "data_context_unique_id_project_template"
	TemplateProjectHelpComment         TemplateName = "project_help_comment_template"
	TemplateConfigVariablesIntro       TemplateName = "config_variables_intro_template"
	TemplateConfigVariables            TemplateName = "config_variables_template"
	TemplateProjectOptionalConfig      TemplateName = "project_optional_config_comment_template"
	TemplateProjectWithUsageStatistics TemplateName = "project_template_with_usage_statistics_template"
)

// minTemplateNameLength guards the entry point against values that were
// clearly never meant as template names (empty or near-empty input). Such
// input yields a no-result outcome rather than a lookup failure.
const minTemplateNameLength = 4

// DefaultRegistry returns the process-wide registry holding the shipped
// fragments.
func DefaultRegistry() *Registry {
	return render.Default()
}

// KnownTemplateNames returns the shipped template names in sorted order.
func KnownTemplateNames() []TemplateName {
	raw := render.Default().List()
	names := make([]TemplateName, 0, len(raw))
	for _, name := range raw {
		names = append(names, TemplateName(name))
	}
	return names
}

// ProjectConfig renders the named shipped template with bindings. A name
// shorter than four characters yields ok == false with a nil error: the
// caller passed something that was never a template name, which is caller
// misuse of a convenience entry point, not a rendering failure. Genuine
// failures (unknown name, unbound variable, cyclic include) are returned as
// errors.
func ProjectConfig(name TemplateName, bindings Bindings) (text string, ok bool, err error) {
	if len(name) < minTemplateNameLength {
		return "", false, nil
	}
	text, err = render.NewRenderer(nil).Render(string(name), bindings)
	if err != nil {
		return "", false, err
	}
	return text, true, nil
}
