package interpret

import (
	"math"

	"github.com/goliatone/go-screengen/pkg/color"
	"github.com/goliatone/go-screengen/pkg/schema"
)

// DisabledOpacity dims disabled controls.
const DisabledOpacity = 0.6

// SampleTimestamp is the placeholder time shown on chat messages.
const SampleTimestamp = "12:34 PM"

// Radio values. A radio element is a single button of a two-option group:
// value=true stands for the first option.
const (
	RadioFirst  = "option1"
	RadioSecond = "option2"
)

// Length clamps negative paddings, margins, radii and sizes to zero.
func Length(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// Opacity returns DisabledOpacity for disabled controls and 1 otherwise.
func Opacity(disabled bool) float64 {
	if disabled {
		return DisabledOpacity
	}
	return 1
}

// RadioValue maps a radio's boolean value to the option it represents.
func RadioValue(value bool) string {
	if value {
		return RadioFirst
	}
	return RadioSecond
}

// RadioSelected reports whether the radio's option equals its group value.
func RadioSelected(value bool, group string) bool {
	return RadioValue(value) == group
}

// LabelFirst reports whether a labelled control draws its label before the
// control.
func LabelFirst(position string) bool {
	return position != "right"
}

// ListItemsFor parses list data and truncates it to itemCount when that is a
// positive number smaller than the dataset.
func ListItemsFor(p schema.ListProps) []ListItem {
	items := ParseListItems(p.Data)
	if n := int(p.ItemCount); n > 0 && n < len(items) {
		items = items[:n]
	}
	return items
}

// Horizontal reports whether a list scrolls sideways.
func Horizontal(direction string) bool {
	return direction == "horizontal"
}

// BubbleColors returns the fill and text color of a chat message.
func BubbleColors(isUser bool, p Palette) (background, foreground string) {
	background = p.Token(TokenBubbleOther)
	if isUser {
		background = p.Token(TokenBubbleUser)
	}
	return background, color.Contrast(background)
}

// ChatButtonColors resolves the send button of a chat input.
func ChatButtonColors(raw string) (background, foreground string) {
	background = Primary(raw)
	return background, color.Contrast(background)
}

// Foreground resolves a free-standing glyph color such as an icon.
func Foreground(raw string, p Palette) string {
	return color.Or(raw, p.Token(TokenText))
}
