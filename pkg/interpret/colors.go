package interpret

import (
	"github.com/goliatone/go-screengen/pkg/color"
	"github.com/goliatone/go-screengen/pkg/schema"
)

// Fallback colors for properties whose stored value is unusable. Both
// consumers resolve colors through these helpers.

// Primary resolves an accent color (button, icon, toggle, chat send).
func Primary(raw string) string {
	return color.Or(raw, schema.PrimaryColor)
}

// Inactive resolves a switch's inactive track color.
func Inactive(raw string) string {
	return color.Or(raw, schema.InactiveColor)
}

// InputBorder resolves the border color of text inputs and dropdowns.
func InputBorder(raw string) string {
	return color.Or(raw, schema.BorderGray)
}

// Surface resolves a card or container background.
func Surface(raw string, p Palette) string {
	return color.Or(raw, p.Token(TokenSurface))
}

// Label resolves the color of a labelled control's text.
func Label(raw string, p Palette) string {
	return color.Or(raw, p.Token(TokenLabel))
}

// DropdownBackground resolves the dropdown field fill.
func DropdownBackground(raw string, p Palette) string {
	return color.Or(raw, p.Token(TokenInput))
}

// TableColors are the resolved colors of a dynamic table.
type TableColors struct {
	Header string
	Border string
	Even   string
	Odd    string
}

// Row returns the background for the row at index i.
func (c TableColors) Row(i int, striped bool) string {
	if striped && i%2 == 1 {
		return c.Odd
	}
	return c.Even
}

// ResolveTableColors applies palette fallbacks to a table's color props.
func ResolveTableColors(p schema.DynamicTableProps, pal Palette) TableColors {
	return TableColors{
		Header: color.Or(p.HeaderColor, pal.Token(TokenTableHeader)),
		Border: color.Or(p.BorderColor, pal.Token(TokenTableBorder)),
		Even:   color.Or(p.EvenRowColor, pal.Token(TokenTableEven)),
		Odd:    color.Or(p.OddRowColor, pal.Token(TokenTableOdd)),
	}
}

// ButtonColors are the resolved fill, foreground and outline of a button.
type ButtonColors struct {
	Background string
	Foreground string
	Border     string
}

// Button variants.
const (
	ButtonPrimary   = "primary"
	ButtonSecondary = "secondary"
	ButtonOutline   = "outline"
)

// ResolveButtonColors derives button colors. Outline buttons draw text and
// border in the accent color on a transparent fill. Filled buttons always
// take the contrast color of their fill; the stored textColor is ignored.
// Secondary buttons fill with the muted surface.
func ResolveButtonColors(p schema.ButtonProps, pal Palette) ButtonColors {
	accent := Primary(p.Color)
	switch p.Variant {
	case ButtonOutline:
		return ButtonColors{Foreground: accent, Border: accent}
	case ButtonSecondary:
		bg := pal.Token(TokenSurfaceMuted)
		return ButtonColors{Background: bg, Foreground: color.Contrast(bg)}
	default:
		return ButtonColors{Background: accent, Foreground: color.Contrast(accent)}
	}
}
