package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/rileyhilliard/glancehist/internal/logger"
	"github.com/rileyhilliard/glancehist/internal/ui"
	"github.com/rileyhilliard/glancehist/internal/util"
	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile string
	verbose bool
	noColor bool
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "glancehist",
	Short: "Chart system metrics history to PNG files",
	Long: `glancehist samples local system metrics (CPU, load, memory, swap,
network and disk I/O) into a bounded history and renders it as PNG charts,
one chart set per plugin.

Get started:
  glancehist init           Create .glancehist.yaml
  glancehist graph          Sample for a while and write charts
  glancehist record         Sample until Ctrl-C, rendering periodically`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(verbose)
		ui.ConfigureColors(noColor)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .glancehist.yaml, searched upward)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, formatError(err))
		os.Exit(1)
	}
}

// formatError renders a command error for the terminal. Cobra's own usage
// errors get a pointer to --help.
func formatError(err error) string {
	if isUnknownCommandError(err) {
		msg := err.Error()
		hint := ""
		if name := extractUnknownCommand(err); name != "" {
			msg = fmt.Sprintf("'%s' isn't a glancehist command", name)
			hint = util.DidYouMean(util.SuggestSimilar(name, commandNames(), 2))
		}
		if hint != "" {
			hint = "  " + hint + "\n"
		}
		return fmt.Sprintf("%s %s\n\n%s  Run 'glancehist --help' to see what's available.\n",
			ui.ErrorStyle().Render(ui.SymbolFail), msg, hint)
	}

	msg := err.Error()
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	return msg
}

// commandNames lists the visible subcommands.
func commandNames() []string {
	var names []string
	for _, c := range rootCmd.Commands() {
		if !c.Hidden {
			names = append(names, c.Name())
		}
	}
	return names
}

// isUnknownCommandError reports whether err is cobra's unknown command or flag error.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag")
}

// extractUnknownCommand pulls the command name out of
// `unknown command "foo" for "glancehist"`.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	if !strings.HasPrefix(msg, "unknown command") {
		return ""
	}
	start := strings.Index(msg, `"`)
	if start < 0 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end < 0 {
		return ""
	}
	return msg[start+1 : start+1+end]
}
