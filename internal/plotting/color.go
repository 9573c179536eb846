package plotting

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/rileyhilliard/glancehist/internal/errors"
)

// White is the color used for items without a valid color.
var White color.Color = color.White

// ParseColor parses a hex color such as "#FF0000", "#f00" or "00ff00".
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New(errors.ErrConfig, "Empty color", "Use a hex color like #FF0000")
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid color '"+s+"'",
			"Use a hex color like #FF0000")
	}
	return c, nil
}

// ColorOr parses s, returning fallback when s is empty or invalid.
func ColorOr(s string, fallback color.Color) color.Color {
	c, err := ParseColor(s)
	if err != nil {
		return fallback
	}
	return c
}

// rgba8 converts any color to 8-bit channels.
func rgba8(c color.Color) (r, g, b, a uint8) {
	if c == nil {
		c = White
	}
	r32, g32, b32, a32 := c.RGBA()
	return uint8(r32 >> 8), uint8(g32 >> 8), uint8(b32 >> 8), uint8(a32 >> 8)
}
