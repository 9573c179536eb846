package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/glancehist/internal/config"
	"github.com/rileyhilliard/glancehist/internal/errors"
	"github.com/rileyhilliard/glancehist/internal/ui"
	"gopkg.in/yaml.v3"
)

// NonInteractiveEnv disables prompts when set to a non-empty value.
const NonInteractiveEnv = "GLANCEHIST_NON_INTERACTIVE"

const configHeader = `# glancehist configuration
# Environment variables override these settings, e.g. GLANCEHIST_OUTPUT_DIR.
# backend: gonum or gochart
# items: per-plugin override of the charted items, for example
#   items:
#     cpu:
#       - {name: user, color: "#00FF00", y_unit: "%"}

`

// InitOptions holds options for the init command.
type InitOptions struct {
	Dir            string // Directory to write the config into
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Never prompt
}

// confirmOverwrite asks whether to replace an existing config. Tests
// replace it.
var confirmOverwrite = func(path string) (bool, error) {
	var overwrite bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", path)).
				Value(&overwrite),
		),
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return overwrite, nil
}

// Init writes a .glancehist.yaml with the default settings.
func Init(opts InitOptions, out io.Writer) error {
	configPath := filepath.Join(opts.Dir, config.ConfigFileName)

	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		overwrite, err := confirmOverwrite(configPath)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	content, err := defaultConfigYAML()
	if err != nil {
		return err
	}

	if err := os.WriteFile(configPath, content, 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrOutput,
			"Failed to write config file",
			"Check write permissions in the directory")
	}

	fmt.Fprintf(out, "%s Created %s\n\n", ui.SuccessStyle().Render(ui.SymbolSuccess), configPath)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  glancehist plugins   - See what gets charted")
	fmt.Fprintln(out, "  glancehist graph     - Sample and write charts")
	fmt.Fprintln(out, "  glancehist record    - Keep sampling, render periodically")
	return nil
}

// defaultConfigYAML marshals DefaultConfig with a commented header.
// Durations are written as strings like "2s".
func defaultConfigYAML() ([]byte, error) {
	cfg := config.DefaultConfig()
	cfg.Items = nil

	var doc yaml.Node
	if err := doc.Encode(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This is unexpected - please report it.")
	}
	setScalar(&doc, "interval", cfg.Interval.String())

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This is unexpected - please report it.")
	}
	return append([]byte(configHeader), data...), nil
}

// setScalar replaces the value of a top-level key in a mapping node.
func setScalar(node *yaml.Node, key, value string) {
	if node.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			node.Content[i+1] = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
			return
		}
	}
}

// isInteractive reports whether prompts can be shown on f.
func isInteractive(f *os.File) bool {
	if os.Getenv(NonInteractiveEnv) != "" || os.Getenv("CI") != "" {
		return false
	}
	return ui.IsTerminal(f)
}
