package render_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-configscaffold/pkg/render"
)

func TestRegistryRegisterDuplicate(t *testing.T) {
	registry := render.NewRegistry()
	if err := registry.Register("greeting_template", "hello"); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if err := registry.Register("greeting_template", "other"); err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
}

func TestRegistryRegisterEmptyName(t *testing.T) {
	registry := render.NewRegistry()
	if err := registry.Register("", "body"); err == nil {
		t.Fatal("expected empty name registration to fail")
	}
}

func TestRegistryLookupMissing(t *testing.T) {
	registry := render.NewRegistry()
	_, err := registry.Lookup("missing_template")
	if !errors.Is(err, render.ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestRegistryListSorted(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister("b_template", "b")
	registry.MustRegister("a_template", "a")
	registry.MustRegister("c_template", "c")

	want := []string{"a_template", "b_template", "c_template"}
	if diff := cmp.Diff(want, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultRegistryShipsAllFragments(t *testing.T) {
	want := []string{
		"anonymized_usage_statistics_template",
		"config_variables_intro_template",
		"config_variables_template",
		"config_version_template",
		"data_context_unique_id_project_template",
		"project_help_comment_template",
		"project_optional_config_comment_template",
		"project_template_with_usage_statistics_template",
	}
	if diff := cmp.Diff(want, render.Default().List()); diff != "" {
		t.Fatalf("shipped fragments mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultRegistryIsStable(t *testing.T) {
	if render.Default() != render.Default() {
		t.Fatal("expected Default to return the same registry instance")
	}
}
