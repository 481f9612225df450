package interpret

import (
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-screengen/pkg/color"
)

const (
	// ThemeName is the go-theme manifest name of the builtin palette.
	ThemeName = "screengen"
	// VariantLight and VariantDark name the manifest variants.
	VariantLight = "light"
	VariantDark  = "dark"
)

// Token names carried by the palette manifest.
const (
	TokenScaffold         = "scaffold"
	TokenAppBar           = "appBar"
	TokenAppBarForeground = "appBarForeground"
	TokenCanvas           = "canvas"
	TokenText             = "text"
	TokenTextMuted        = "textMuted"
	TokenLabel            = "label"
	TokenSurface          = "surface"
	TokenSurfaceMuted     = "surfaceMuted"
	TokenPlaceholder      = "placeholder"
	TokenPlaceholderAlt   = "placeholderAlt"
	TokenBorder           = "border"
	TokenInput            = "input"
	TokenTableHeader      = "tableHeader"
	TokenTableBorder      = "tableBorder"
	TokenTableEven        = "tableEven"
	TokenTableOdd         = "tableOdd"
	TokenBubbleUser       = "bubbleUser"
	TokenBubbleOther      = "bubbleOther"
	TokenDanger           = "danger"
)

var lightTokens = map[string]string{
	TokenScaffold:         "#FFFFFF",
	TokenAppBar:           "#FFFFFF",
	TokenAppBarForeground: "#000000",
	TokenCanvas:           "#FFFFFF",
	TokenText:             "#111827",
	TokenTextMuted:        "#6B7280",
	TokenLabel:            "#374151",
	TokenSurface:          "#FFFFFF",
	TokenSurfaceMuted:     "#E5E7EB",
	TokenPlaceholder:      "#D1D5DB",
	TokenPlaceholderAlt:   "#E5E7EB",
	TokenBorder:           "#D1D5DB",
	TokenInput:            "#FFFFFF",
	TokenTableHeader:      "#F3F4F6",
	TokenTableBorder:      "#E5E7EB",
	TokenTableEven:        "#FFFFFF",
	TokenTableOdd:         "#F9FAFB",
	TokenBubbleUser:       "#90CAF9",
	TokenBubbleOther:      "#E0E0E0",
	TokenDanger:           "#EF4444",
}

var darkTokens = map[string]string{
	TokenScaffold:         "#121212",
	TokenAppBar:           "#1E1E1E",
	TokenAppBarForeground: "#FFFFFF",
	TokenCanvas:           "#121212",
	TokenText:             "#F3F4F6",
	TokenTextMuted:        "#9CA3AF",
	TokenLabel:            "#D1D5DB",
	TokenSurface:          "#1F2937",
	TokenSurfaceMuted:     "#374151",
	TokenPlaceholder:      "#374151",
	TokenPlaceholderAlt:   "#4B5563",
	TokenBorder:           "#374151",
	TokenInput:            "#1F2937",
	TokenTableHeader:      "#1F2937",
	TokenTableBorder:      "#E5E7EB",
	TokenTableEven:        "#1F2937",
	TokenTableOdd:         "#111827",
	TokenBubbleUser:       "#90CAF9",
	TokenBubbleOther:      "#E0E0E0",
	TokenDanger:           "#EF4444",
}

// Manifest returns the builtin palette as a go-theme manifest. Base tokens
// are the light palette; the dark variant overrides them.
func Manifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    ThemeName,
		Version: "1.0.0",
		Tokens:  copyTokens(lightTokens),
		Variants: map[string]theme.Variant{
			VariantLight: {Tokens: map[string]string{}},
			VariantDark:  {Tokens: copyTokens(darkTokens)},
		},
	}
}

// ThemeRegistry is the part of a go-theme registry used to publish the
// builtin manifest.
type ThemeRegistry interface {
	Register(*theme.Manifest) error
}

// RegisterTheme adds the builtin manifest to reg.
func RegisterTheme(reg ThemeRegistry) error {
	if reg == nil {
		return fmt.Errorf("interpret: theme registry is nil")
	}
	return reg.Register(Manifest())
}

// VariantName maps the dark flag to a manifest variant.
func VariantName(dark bool) string {
	if dark {
		return VariantDark
	}
	return VariantLight
}

// Palette is the resolved set of theme tokens for one mode.
type Palette struct {
	Dark    bool
	Variant string
	tokens  map[string]string
}

// NewPalette resolves the builtin palette for the given mode.
func NewPalette(dark bool) Palette {
	return paletteFrom(Manifest(), VariantName(dark), dark)
}

// SelectPalette resolves the palette through a go-theme selector, letting
// callers override any token. A nil selector or a nil selection falls back
// to the builtin palette; selector errors are returned with that fallback.
func SelectPalette(selector theme.ThemeSelector, dark bool) (Palette, error) {
	return SelectNamedPalette(selector, ThemeName, dark)
}

// SelectNamedPalette is SelectPalette for a manifest registered under name.
// An empty name selects the builtin manifest name.
func SelectNamedPalette(selector theme.ThemeSelector, name string, dark bool) (Palette, error) {
	if selector == nil {
		return NewPalette(dark), nil
	}
	if name == "" {
		name = ThemeName
	}
	sel, err := selector.Select(name, VariantName(dark))
	if err != nil {
		return NewPalette(dark), fmt.Errorf("interpret: select theme: %w", err)
	}
	if sel == nil || sel.Manifest == nil {
		return NewPalette(dark), nil
	}
	variant := sel.Variant
	if variant == "" {
		variant = VariantName(dark)
	}
	return paletteFrom(sel.Manifest, variant, dark), nil
}

func paletteFrom(m *theme.Manifest, variant string, dark bool) Palette {
	base := lightTokens
	if dark {
		base = darkTokens
	}
	tokens := copyTokens(base)
	overlay := func(src map[string]string) {
		for k, v := range src {
			if color.Valid(v) {
				tokens[k] = v
			}
		}
	}
	// The builtin manifest's base tokens are the light palette.
	if !dark || m.Name != ThemeName {
		overlay(m.Tokens)
	}
	if v, ok := m.Variants[variant]; ok {
		overlay(v.Tokens)
	}
	return Palette{Dark: dark, Variant: variant, tokens: tokens}
}

// Token returns the named token, or an empty string when unknown.
func (p Palette) Token(name string) string {
	if p.tokens == nil {
		return NewPalette(p.Dark).tokens[name]
	}
	return p.tokens[name]
}

// Tokens returns a copy of every resolved token.
func (p Palette) Tokens() map[string]string {
	if p.tokens == nil {
		return NewPalette(p.Dark).Tokens()
	}
	return copyTokens(p.tokens)
}

func copyTokens(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
