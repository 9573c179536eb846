package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline block characters representing 8 vertical levels (lowest to highest).
const sparklineBlocks = "▁▂▃▄▅▆▇█"

// sparklineBlockRunes provides indexed access to block characters.
var sparklineBlockRunes = []rune(sparklineBlocks)

// RenderSparkline draws the most recent width values as block characters
// scaled between their min and max. Missing samples (NaN) are drawn as
// spaces. When percent is true the line is colored by the last value:
//   - 0-60%: green (success)
//   - 60-80%: yellow/amber (warning)
//   - 80-100%: red (error)
//
// Otherwise it uses the info color.
func RenderSparkline(data []float64, width int, percent bool) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}

	if len(data) > width {
		data = data[len(data)-width:]
	}

	minVal, maxVal := math.Inf(1), math.Inf(-1)
	last := math.NaN()
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
		last = v
	}
	if math.IsNaN(last) {
		return strings.Repeat(" ", len(data))
	}

	var sb strings.Builder
	sb.Grow(len(data) * 3)

	numLevels := len(sparklineBlockRunes)
	valueRange := maxVal - minVal

	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			sb.WriteRune(' ')
			continue
		}
		level := numLevels / 2
		if valueRange > 0 {
			level = int((v - minVal) / valueRange * float64(numLevels-1))
			if level < 0 {
				level = 0
			} else if level >= numLevels {
				level = numLevels - 1
			}
		}
		sb.WriteRune(sparklineBlockRunes[level])
	}

	color := ColorInfo
	if percent {
		color = getThresholdColor(last)
	}
	return lipgloss.NewStyle().Foreground(color).Render(sb.String())
}

// getThresholdColor returns a color based on percentage thresholds.
func getThresholdColor(percent float64) lipgloss.Color {
	switch {
	case percent >= 80:
		return ColorError
	case percent >= 60:
		return ColorWarning
	default:
		return ColorSuccess
	}
}
