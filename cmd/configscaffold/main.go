package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/AlecAivazis/survey/v2"

	configscaffold "github.com/goliatone/go-configscaffold"
	"github.com/goliatone/go-configscaffold/pkg/instanceid"
	"github.com/goliatone/go-configscaffold/pkg/scaffold"
)

func main() {
	dir := flag.String("dir", ".", "project directory to scaffold")
	show := flag.String("show", "", "render a single template to stdout instead of scaffolding")
	enableStats := flag.Bool("enable-usage-statistics", false, "opt in to anonymous usage statistics")
	noInput := flag.Bool("no-input", false, "never prompt; rely on flags only")
	flag.Parse()

	if *show != "" {
		showTemplate(*show, *enableStats)
		return
	}

	optIn := *enableStats
	if !optIn && !*noInput {
		optIn = confirmUsageStatistics()
	}

	s := scaffold.New(scaffold.WithUsageStatistics(optIn))
	if err := s.Scaffold(*dir); err != nil {
		log.Fatalf("Failed to scaffold project: %v", err)
	}
	fmt.Printf("Project scaffolded in %s\n", *dir)
}

func showTemplate(name string, enableStats bool) {
	// Supply every binding the shipped set can ask for; unused bindings are
	// ignored by the renderer.
	bindings := configscaffold.Bindings{
		"allow_anonymous_usage_statistics": enableStats,
		"instance_id":                      instanceid.ID(),
	}

	text, ok, err := configscaffold.ProjectConfig(configscaffold.TemplateName(name), bindings)
	if err != nil {
		log.Fatalf("Failed to render template: %v", err)
	}
	if !ok {
		log.Fatalf("%q is not a template name; known names: %v", name, configscaffold.KnownTemplateNames())
	}
	fmt.Println(text)
}

func confirmUsageStatistics() bool {
	prompt := &survey.Confirm{
		Message: "Allow anonymous usage statistics to be collected?",
		Default: false,
	}
	var optIn bool
	if err := survey.AskOne(prompt, &optIn); err != nil {
		// A closed or non-interactive terminal is the same as declining.
		return false
	}
	return optIn
}
