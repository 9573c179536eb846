package collector

import (
	"sort"

	"github.com/rileyhilliard/glancehist/internal/history"
)

// Plugin names.
const (
	PluginCPU     = "cpu"
	PluginLoad    = "load"
	PluginMem     = "mem"
	PluginMemSwap = "memswap"
	PluginNetwork = "network"
	PluginDiskIO  = "diskio"
	PluginUptime  = "uptime"
)

// Plugin describes one monitored subsystem and the items charted for it.
type Plugin struct {
	Name        string
	Description string
	Items       []history.Item
	KeepHistory bool
}

// DefaultPlugins returns the built-in plugins in display order.
func DefaultPlugins() []Plugin {
	return []Plugin{
		{
			Name:        PluginCPU,
			Description: "CPU time split, percent",
			KeepHistory: true,
			Items: []history.Item{
				{Name: "user", Color: "#00FF00", YUnit: "%"},
				{Name: "system", Color: "#FF0000", YUnit: "%"},
				{Name: "iowait", Color: "#0000FF", YUnit: "%"},
			},
		},
		{
			Name:        PluginLoad,
			Description: "Load averages",
			KeepHistory: true,
			Items: []history.Item{
				{Name: "min1", Color: "#0000FF"},
				{Name: "min5", Color: "#0000AA"},
				{Name: "min15", Color: "#000044"},
			},
		},
		{
			Name:        PluginMem,
			Description: "RAM usage, percent",
			KeepHistory: true,
			Items: []history.Item{
				{Name: "percent", Color: "#00FF00", YUnit: "%"},
			},
		},
		{
			Name:        PluginMemSwap,
			Description: "Swap usage, percent",
			KeepHistory: true,
			Items: []history.Item{
				{Name: "percent", Color: "#FF0000", YUnit: "%"},
			},
		},
		{
			Name:        PluginNetwork,
			Description: "Per-interface throughput",
			KeepHistory: true,
			Items: []history.Item{
				{Name: "rx", Color: "#00FF00", YUnit: "bit/s"},
				{Name: "tx", Color: "#FF0000", YUnit: "bit/s"},
			},
		},
		{
			Name:        PluginDiskIO,
			Description: "Per-disk throughput",
			KeepHistory: true,
			Items: []history.Item{
				{Name: "read_bytes", Color: "#00FF00", YUnit: "B/s"},
				{Name: "write_bytes", Color: "#FF0000", YUnit: "B/s"},
			},
		},
		{
			Name:        PluginUptime,
			Description: "System uptime",
			KeepHistory: false,
		},
	}
}

// PluginNames returns the names of the built-in plugins, sorted.
func PluginNames() []string {
	plugins := DefaultPlugins()
	names := make([]string, 0, len(plugins))
	for _, p := range plugins {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}

// IsPlugin reports whether name is a built-in plugin.
func IsPlugin(name string) bool {
	for _, p := range DefaultPlugins() {
		if p.Name == name {
			return true
		}
	}
	return false
}

// SelectPlugins returns the built-in plugins named in enabled, in display
// order, with item overrides applied. An empty enabled list selects all.
// Unknown names are ignored.
func SelectPlugins(enabled []string, overrides map[string][]history.Item) []Plugin {
	want := make(map[string]bool, len(enabled))
	for _, name := range enabled {
		want[name] = true
	}

	var out []Plugin
	for _, p := range DefaultPlugins() {
		if len(want) > 0 && !want[p.Name] {
			continue
		}
		if items, ok := overrides[p.Name]; ok && len(items) > 0 {
			p.Items = append([]history.Item(nil), items...)
		}
		out = append(out, p)
	}
	return out
}
