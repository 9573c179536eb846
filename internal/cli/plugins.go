package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/rileyhilliard/glancehist/internal/collector"
	"github.com/rileyhilliard/glancehist/internal/config"
	"github.com/rileyhilliard/glancehist/internal/history"
	"github.com/rileyhilliard/glancehist/internal/ui"
	"github.com/rileyhilliard/glancehist/internal/util"
)

// pluginsCommand prints every built-in plugin with its charted items, after
// config overrides, and whether the config enables it.
func pluginsCommand(out io.Writer) error {
	cfg, _, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return err
	}

	enabled := make(map[string]bool)
	for _, p := range collector.SelectPlugins(cfg.Plugins, nil) {
		enabled[p.Name] = true
	}

	var rows [][]string
	for _, p := range collector.SelectPlugins(nil, cfg.Items) {
		rows = append(rows, []string{
			p.Name,
			yesNo(enabled[p.Name]),
			yesNo(p.KeepHistory),
			util.JoinOrNone(itemLabels(p.Items)),
			p.Description,
		})
	}

	fmt.Fprintln(out, ui.RenderSimpleTable([]ui.TableColumn{
		{Title: "Plugin"},
		{Title: "Enabled"},
		{Title: "History"},
		{Title: "Items"},
		{Title: "Description"},
	}, rows))
	return nil
}

// itemLabels formats items as "name (unit) #color".
func itemLabels(items []history.Item) []string {
	labels := make([]string, 0, len(items))
	for _, item := range items {
		var b strings.Builder
		b.WriteString(item.Name)
		if item.YUnit != "" {
			fmt.Fprintf(&b, " (%s)", item.YUnit)
		}
		if item.Color != "" {
			b.WriteString(" " + item.Color)
		}
		labels = append(labels, b.String())
	}
	return labels
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
