// Package color converts #RRGGBB strings into Flutter ARGB literals and picks
// readable foreground colors.
package color

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	White = "#FFFFFF"
	Black = "#000000"

	// OpaqueBlack is emitted for any value that is not a well formed hex color.
	OpaqueBlack = "0xFF000000"

	contrastThreshold = 0.5
)

// RGB holds 0-255 channel values.
type RGB struct {
	R, G, B uint8
}

// Hex formats the color as an uppercase #RRGGBB string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHex accepts exactly "#RRGGBB" (case insensitive, surrounding
// whitespace ignored).
func ParseHex(raw string) (RGB, bool) {
	s := strings.TrimSpace(raw)
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, false
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, true
}

// Valid reports whether raw is a well formed #RRGGBB value.
func Valid(raw string) bool {
	_, ok := ParseHex(raw)
	return ok
}

// ToARGB converts raw into a 0xFFRRGGBB literal with full alpha.
func ToARGB(raw string) string {
	c, ok := ParseHex(raw)
	if !ok {
		return OpaqueBlack
	}
	return fmt.Sprintf("0xFF%02X%02X%02X", c.R, c.G, c.B)
}

// Luminance is the weighted channel sum scaled to [0, 1].
func Luminance(c RGB) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

// Contrast returns White for dark backgrounds (luminance at or below 0.5) and
// Black otherwise. Malformed input counts as black.
func Contrast(background string) string {
	c, _ := ParseHex(background)
	if Luminance(c) <= contrastThreshold {
		return White
	}
	return Black
}

// Or returns raw when it parses, fallback otherwise.
func Or(raw, fallback string) string {
	if Valid(raw) {
		return strings.TrimSpace(raw)
	}
	return fallback
}
