package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	graphFlags         ConfigFlags
	graphSamples       int
	recordFlags        ConfigFlags
	recordRenderEvery  int
	initForce          bool
	initNonInteractive bool
	doctorOpts         DoctorOptions
)

// graphCmd samples for a fixed number of intervals and renders once
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Sample metrics and write history charts",
	Long: `Sample every configured plugin a fixed number of times, then render
the history to PNG files in the output directory.

Rate-based plugins (cpu, network, diskio) need two samples before they
have data, so use --samples 2 or more.

Examples:
  glancehist graph
  glancehist graph --samples 30 --interval 1s
  glancehist graph --backend gochart --output /tmp/charts`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return graphCommand(cmd.Context(), GraphOptions{
			Flags:   graphFlags,
			Samples: graphSamples,
		}, cmd.OutOrStdout())
	},
}

// recordCmd samples until interrupted, rendering periodically
var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Sample until Ctrl-C, rendering every N samples",
	Long: `Sample every configured plugin until interrupted. Charts are
re-rendered every --render-every samples and once more on exit.

With --reset the history is cleared after each render, so every chart
covers only the samples since the previous one.

Examples:
  glancehist record
  glancehist record --render-every 30 --interval 1s
  glancehist record --reset`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return recordCommand(cmd.Context(), RecordOptions{
			Flags:       recordFlags,
			RenderEvery: recordRenderEvery,
		}, cmd.OutOrStdout())
	},
}

// pluginsCmd lists plugins and their charted items
var pluginsCmd = &cobra.Command{
	Use:   "plugins",
	Short: "List plugins and the items charted for each",
	RunE: func(cmd *cobra.Command, args []string) error {
		return pluginsCommand(cmd.OutOrStdout())
	},
}

// initCmd creates a new .glancehist.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .glancehist.yaml configuration",
	Long: `Create a .glancehist.yaml file in the current directory with the
default settings.

Examples:
  glancehist init
  glancehist init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(InitOptions{
			Dir:            ".",
			Overwrite:      initForce,
			NonInteractive: initNonInteractive || !isInteractive(os.Stdin),
		}, cmd.OutOrStdout())
	},
}

// doctorCmd diagnoses config, plotting, output and metric sources
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check config, plotting backends, output directory and metric sources",
	Long: `Run diagnostic checks and report anything that would keep charts
from being written.

Examples:
  glancehist doctor
  glancehist doctor --fix
  glancehist doctor --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return doctorCommand(cmd.Context(), doctorOpts, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(graphCmd, recordCmd, pluginsCmd, initCmd, doctorCmd)

	AddConfigFlags(graphCmd, &graphFlags)
	graphCmd.Flags().IntVarP(&graphSamples, "samples", "n", DefaultSamples, "number of samples to take before rendering")

	AddConfigFlags(recordCmd, &recordFlags)
	recordCmd.Flags().IntVar(&recordRenderEvery, "render-every", DefaultRenderEvery, "render after this many samples")

	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config")
	initCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false, "never prompt")

	doctorCmd.Flags().BoolVar(&doctorOpts.JSON, "json", false, "output in JSON format")
	doctorCmd.Flags().BoolVar(&doctorOpts.Fix, "fix", false, "attempt automatic fixes where possible")
}
