package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/glancehist/internal/collector"
	"github.com/rileyhilliard/glancehist/internal/config"
	"github.com/rileyhilliard/glancehist/internal/doctor"
	"github.com/rileyhilliard/glancehist/internal/ui"
)

// DoctorOptions holds options for the doctor command.
type DoctorOptions struct {
	JSON bool
	Fix  bool
}

// DoctorOutput represents the JSON output for doctor command.
type DoctorOutput struct {
	Categories []CategoryOutput `json:"categories"`
	Summary    SummaryOutput    `json:"summary"`
}

// CategoryOutput represents a category of check results.
type CategoryOutput struct {
	Name    string               `json:"name"`
	Results []doctor.CheckResult `json:"results"`
}

// SummaryOutput summarizes the check results.
type SummaryOutput struct {
	Pass     int  `json:"pass"`
	Warn     int  `json:"warn"`
	Fail     int  `json:"fail"`
	Fixable  int  `json:"fixable"`
	AllClear bool `json:"all_clear"`
}

// doctorCommand runs every diagnostic check and reports the results.
func doctorCommand(ctx context.Context, opts DoctorOptions, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	checks := collectChecks()
	results := doctor.RunAll(ctx, checks)
	if opts.Fix {
		results = doctor.FixAll(ctx, checks, results)
	}

	if opts.JSON {
		return outputDoctorJSON(checks, results, out)
	}
	outputDoctorText(checks, results, opts.Fix, out)
	return nil
}

// collectChecks builds the checks for the config in effect. A config that
// fails to load falls back to defaults; the schema check reports why.
func collectChecks() []doctor.Check {
	cfg, _, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		cfg = config.DefaultConfig()
	}

	plugins := cfg.Plugins
	if len(plugins) == 0 {
		plugins = collector.PluginNames()
	}

	var checks []doctor.Check
	checks = append(checks, doctor.NewConfigChecks(cfgFile)...)
	checks = append(checks, doctor.NewPlottingChecks(cfg.Backend)...)
	checks = append(checks, &doctor.OutputDirCheck{Dir: cfg.OutputDir})
	checks = append(checks, doctor.NewSourceChecks(newSource(), plugins)...)
	return checks
}

// outputDoctorJSON writes results grouped by category.
func outputDoctorJSON(checks []doctor.Check, results []doctor.CheckResult, out io.Writer) error {
	grouped := doctor.GroupByCategory(checks)

	output := DoctorOutput{Categories: make([]CategoryOutput, 0, len(grouped))}
	for _, cat := range doctor.CategoryOrder {
		indices, ok := grouped[cat]
		if !ok {
			continue
		}
		co := CategoryOutput{Name: cat}
		for _, idx := range indices {
			co.Results = append(co.Results, results[idx])
		}
		output.Categories = append(output.Categories, co)
	}

	counts := doctor.CountByStatus(results)
	output.Summary = SummaryOutput{
		Pass:     counts[doctor.StatusPass],
		Warn:     counts[doctor.StatusWarn],
		Fail:     counts[doctor.StatusFail],
		Fixable:  doctor.FixableCount(results),
		AllClear: !doctor.HasIssues(results),
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// outputDoctorText writes a human-readable report.
func outputDoctorText(checks []doctor.Check, results []doctor.CheckResult, fixed bool, out io.Writer) {
	headerStyle := lipgloss.NewStyle().Bold(true)

	fmt.Fprintln(out)
	fmt.Fprintln(out, headerStyle.Render("glancehist Diagnostic Report"))
	fmt.Fprintln(out)

	grouped := doctor.GroupByCategory(checks)
	for _, category := range doctor.CategoryOrder {
		indices := grouped[category]
		if len(indices) == 0 {
			continue
		}

		fmt.Fprintln(out, headerStyle.Render(category))
		for _, idx := range indices {
			renderCheckResult(results[idx], out)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, strings.Repeat("━", 60))
	fmt.Fprintln(out)

	if !doctor.HasIssues(results) {
		fmt.Fprintf(out, "%s %s\n", ui.SuccessStyle().Render(ui.SymbolSuccess), doctor.Summary(results))
	} else {
		style := ui.WarningStyle()
		if doctor.HasFailures(results) {
			style = ui.ErrorStyle()
		}
		fmt.Fprintf(out, "%s %s\n", style.Render(ui.SymbolFail), doctor.Summary(results))

		if doctor.FixableCount(results) > 0 && !fixed {
			fmt.Fprintln(out)
			fmt.Fprintf(out, "  Run with %s to attempt automatic fixes where possible.\n",
				ui.MutedStyle().Render("--fix"))
		}
	}
	fmt.Fprintln(out)
}

// renderCheckResult renders a single check result.
func renderCheckResult(result doctor.CheckResult, out io.Writer) {
	var symbol string
	var style lipgloss.Style

	switch result.Status {
	case doctor.StatusPass:
		symbol = ui.SymbolComplete
		style = ui.SuccessStyle()
	case doctor.StatusWarn:
		symbol = ui.SymbolComplete // Still usable, just flagged
		style = ui.WarningStyle()
	default:
		symbol = ui.SymbolFail
		style = ui.ErrorStyle()
	}

	fmt.Fprintf(out, "  %s %s\n", style.Render(symbol), result.Message)

	if result.Suggestion != "" && result.Status != doctor.StatusPass {
		for _, line := range strings.Split(result.Suggestion, "\n") {
			fmt.Fprintf(out, "    %s\n", ui.MutedStyle().Render(line))
		}
	}
}
