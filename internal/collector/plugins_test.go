package collector

import (
	"testing"

	"github.com/rileyhilliard/glancehist/internal/history"
	"github.com/stretchr/testify/assert"
)

func TestPluginNames(t *testing.T) {
	assert.Equal(t,
		[]string{"cpu", "diskio", "load", "mem", "memswap", "network", "uptime"},
		PluginNames())
}

func TestIsPlugin(t *testing.T) {
	assert.True(t, IsPlugin("network"))
	assert.False(t, IsPlugin("sensors"))
}

func TestSelectPlugins(t *testing.T) {
	tests := []struct {
		name      string
		enabled   []string
		overrides map[string][]history.Item
		want      []string
	}{
		{"empty selects all", nil, nil,
			[]string{"cpu", "load", "mem", "memswap", "network", "diskio", "uptime"}},
		{"keeps display order", []string{"network", "cpu"}, nil,
			[]string{"cpu", "network"}},
		{"ignores unknown", []string{"mem", "sensors"}, nil,
			[]string{"mem"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, p := range SelectPlugins(tt.enabled, tt.overrides) {
				got = append(got, p.Name)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectPluginsOverridesItems(t *testing.T) {
	override := []history.Item{{Name: "user", Color: "#123456"}}
	plugins := SelectPlugins([]string{"cpu", "load"}, map[string][]history.Item{
		"cpu":  override,
		"load": {},
	})

	assert.Equal(t, override, plugins[0].Items)
	assert.Len(t, plugins[1].Items, 3, "empty override keeps defaults")

	override[0].Color = "#000000"
	assert.Equal(t, "#123456", plugins[0].Items[0].Color)
}
