// Package scaffold materializes a new project directory on first run: it
// renders the shipped project configuration and its companion variables file
// and creates the directories the generated config references. The rendering
// core stays filesystem-free; this package owns all writes.
package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-configscaffold/pkg/instanceid"
	"github.com/goliatone/go-configscaffold/pkg/render"
)

const (
	// ProjectConfigName is the file the full project template renders into.
	ProjectConfigName = "project.yml"
	// ConfigVariablesName is the variables file, written under the
	// uncommitted directory so it stays out of source control.
	ConfigVariablesName = "config_variables.yml"
	// UncommittedDir holds per-machine state referenced by the project
	// config: variables, validations, local data docs.
	UncommittedDir = "uncommitted"
)

// Registry keys of the templates the scaffolder renders.
const (
	projectTemplate   = "project_template_with_usage_statistics_template"
	variablesTemplate = "config_variables_template"
)

// companionDirs are created alongside the config so every path the rendered
// file mentions exists on first run.
var companionDirs = []string{
	UncommittedDir,
	"plugins",
	"expectations",
	filepath.Join(UncommittedDir, "validations"),
	filepath.Join(UncommittedDir, "data_docs"),
}

// ErrProjectExists reports a target directory that already holds a project
// config. The scaffolder never overwrites a file a human may have edited.
var ErrProjectExists = errors.New("scaffold: project config already exists")

// Option customises the scaffolder configuration.
type Option func(*Scaffolder)

// WithRegistry injects a custom fragment registry. Pass nil to keep the
// shipped default set.
func WithRegistry(registry *render.Registry) Option {
	return func(s *Scaffolder) {
		s.registry = registry
	}
}

// WithInstanceID pins the project instance identifier instead of using the
// process-wide generated one.
func WithInstanceID(id string) Option {
	return func(s *Scaffolder) {
		s.instanceID = id
	}
}

// WithUsageStatistics sets the anonymous usage statistics opt-in flag
// rendered into the project config. Defaults to false.
func WithUsageStatistics(enabled bool) Option {
	return func(s *Scaffolder) {
		s.usageStatistics = enabled
	}
}

// Scaffolder renders the project configuration files and writes them to a
// target directory. Missing dependencies are initialised with the built-in
// implementations so callers can start with a single constructor call.
type Scaffolder struct {
	registry        *render.Registry
	renderer        *render.Renderer
	instanceID      string
	usageStatistics bool
}

// New constructs a Scaffolder applying any provided options.
func New(options ...Option) *Scaffolder {
	s := &Scaffolder{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.instanceID == "" {
		s.instanceID = instanceid.ID()
	}
	s.renderer = render.NewRenderer(s.registry)
	return s
}

// ProjectConfigYAML renders the full project configuration text.
func (s *Scaffolder) ProjectConfigYAML() (string, error) {
	return s.renderer.Render(projectTemplate, render.Bindings{
		"allow_anonymous_usage_statistics": s.usageStatistics,
	})
}

// ConfigVariablesYAML renders the companion variables file text, carrying
// the project instance identifier.
func (s *Scaffolder) ConfigVariablesYAML() (string, error) {
	return s.renderer.Render(variablesTemplate, render.Bindings{
		"instance_id": s.instanceID,
	})
}

// Scaffold writes the project config, the variables file, and the companion
// directories under dir, creating dir if needed. An existing project config
// aborts the whole run with ErrProjectExists before anything is written.
func (s *Scaffolder) Scaffold(dir string) error {
	if dir == "" {
		return errors.New("scaffold: target directory is required")
	}

	configPath := filepath.Join(dir, ProjectConfigName)
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%w: %s", ErrProjectExists, configPath)
	}

	projectText, err := s.ProjectConfigYAML()
	if err != nil {
		return err
	}
	variablesText, err := s.ConfigVariablesYAML()
	if err != nil {
		return err
	}

	// The renderer emits text verbatim without validating it; catch a
	// malformed fragment set here, before anything reaches disk.
	if err := checkYAML(ProjectConfigName, projectText); err != nil {
		return err
	}
	if err := checkYAML(ConfigVariablesName, variablesText); err != nil {
		return err
	}

	for _, companion := range companionDirs {
		if err := os.MkdirAll(filepath.Join(dir, companion), 0o755); err != nil {
			return fmt.Errorf("scaffold: creating %s: %w", companion, err)
		}
	}

	if err := os.WriteFile(configPath, []byte(projectText), 0o644); err != nil {
		return fmt.Errorf("scaffold: writing %s: %w", ProjectConfigName, err)
	}
	variablesPath := filepath.Join(dir, UncommittedDir, ConfigVariablesName)
	if err := os.WriteFile(variablesPath, []byte(variablesText), 0o644); err != nil {
		return fmt.Errorf("scaffold: writing %s: %w", ConfigVariablesName, err)
	}
	return nil
}

func checkYAML(name, text string) error {
	var doc map[string]any
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return fmt.Errorf("scaffold: rendered %s is not well-formed YAML: %w", name, err)
	}
	return nil
}
