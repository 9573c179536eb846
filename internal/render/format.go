package render

import (
	"strings"

	"github.com/rileyhilliard/glancehist/internal/history"
)

// DefaultColor is used for items without a color.
const DefaultColor = "#FFFFFF"

// filePrefix starts every chart file name.
const filePrefix = "glances_"

// ItemColor returns the item's color, or DefaultColor.
func ItemColor(item history.Item) string {
	if item.Color == "" {
		return DefaultColor
	}
	return item.Color
}

// ItemLegend returns the legend label of an item.
func ItemLegend(item history.Item) string {
	return item.Name
}

// YLabel builds a y-axis label: the part of prefix before its first "_"
// followed by " (unit)" when the item declares one.
//
//	YLabel({YUnit: "bit/s"}, "")        -> " (bit/s)"
//	YLabel({YUnit: "bit/s"}, "eth0_tx") -> "eth0 (bit/s)"
func YLabel(item history.Item, prefix string) string {
	unit := ""
	if item.YUnit != "" {
		unit = " (" + item.YUnit + ")"
	}
	label := ""
	if prefix != "" {
		label = strings.SplitN(prefix, "_", 2)[0]
	}
	return label + unit
}

// SharedChartName is the file holding a plugin's exact-match curves.
func SharedChartName(plugin string) string {
	return filePrefix + plugin + ".png"
}

// FamilyChartName is the file holding one item's per-key rows.
func FamilyChartName(plugin, item string) string {
	return filePrefix + plugin + "_" + item + ".png"
}
