package preview

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-screengen/pkg/color"
	"github.com/goliatone/go-screengen/pkg/interpret"
	"github.com/goliatone/go-screengen/pkg/ir"
	"github.com/goliatone/go-screengen/pkg/schema"
)

var iconGlyphs = map[string]string{
	"star":     "⭐",
	"favorite": "❤️",
	"home":     "🏠",
	"settings": "⚙️",
	"person":   "👤",
	"email":    "📧",
	"phone":    "📞",
	"location": "📍",
	"search":   "🔍",
	"image":    "🖼️",
}

const defaultGlyph = "⚪"

// Glyph returns the emoji standing in for a Material icon name.
func Glyph(name string) string {
	if g, ok := iconGlyphs[strings.TrimSpace(name)]; ok {
		return g
	}
	return defaultGlyph
}

// Render describes el with the builtin palette for the given mode.
func Render(el ir.DesignElement, dark bool) Node {
	return RenderWith(el, interpret.NewPalette(dark))
}

// RenderWith describes el using the resolved palette.
func RenderWith(el ir.DesignElement, pal Palette) Node {
	n := build(schema.Decode(el), pal)
	n.ID = el.ID
	return n
}

// Palette is the resolved theme the preview draws with.
type Palette = interpret.Palette

func build(v schema.Variant, pal Palette) Node {
	switch p := v.(type) {
	case schema.ButtonProps:
		return button(p, pal)
	case schema.TextFieldProps:
		return textField(p, pal)
	case schema.CardProps:
		return card(p, pal)
	case schema.ListProps:
		return list(p, pal)
	case schema.IconProps:
		return Node{Kind: KindIcon, Text: Glyph(p.Name)}.
			attr("name", p.Name).
			with(StyleColor, interpret.Foreground(p.Color, pal)).
			with(StyleFontSize, px(p.Size))
	case schema.FlexProps:
		return flex(p, pal)
	case schema.StackProps:
		return stack(p, pal)
	case schema.SwitchProps:
		return labelledToggle(toggle(p.Value, p.ActiveColor, p.InactiveColor), p.Label, pal)
	case schema.CheckboxProps:
		return labelledToggle(checkbox(p.Value, p.ActiveColor), p.Label, pal)
	case schema.RadioProps:
		return radio(p.Value, p.GroupValue, p.ActiveColor)
	case schema.ChatInputProps:
		return chatInput(p, pal)
	case schema.ChatMessageProps:
		return chatMessage(p, pal)
	case schema.DropdownProps:
		return dropdown(p, pal)
	case schema.InputWithLabelProps:
		return inputWithLabel(p, pal)
	case schema.SwitchWithLabelProps:
		return labelled(toggle(p.Value, p.ActiveColor, p.InactiveColor), p.Label, p.LabelColor, p.LabelPosition, p.Disabled, pal)
	case schema.RadioWithLabelProps:
		return labelled(radio(p.Value, p.GroupValue, p.ActiveColor), p.Label, p.LabelColor, p.LabelPosition, p.Disabled, pal)
	case schema.CheckboxWithLabelProps:
		return labelled(checkbox(p.Value, p.ActiveColor), p.Label, p.LabelColor, p.LabelPosition, p.Disabled, pal)
	case schema.DynamicTableProps:
		return table(p, pal)
	case schema.ContainerProps:
		return container(p, pal)
	default:
		return container(schema.ContainerProps{}, pal)
	}
}

func button(p schema.ButtonProps, pal Palette) Node {
	colors := interpret.ResolveButtonColors(p, pal)
	n := Node{Kind: KindButton, Text: p.Text}.
		with(StyleColor, colors.Foreground).
		with(StylePadding, px(p.Padding)).
		with(StyleFontWeight, "600")
	if colors.Background == "" {
		n = n.with(StyleBackground, "transparent")
	} else {
		n = n.with(StyleBackground, colors.Background)
	}
	if colors.Border != "" {
		n = n.with(StyleBorder, "1px solid "+colors.Border)
	}
	if p.Rounded {
		n = n.with(StyleBorderRadius, "9999px")
	} else {
		n = n.with(StyleBorderRadius, "8px")
	}
	if target := strings.TrimSpace(p.NavigateTo); target != "" {
		n = n.attr("navigateTo", target)
	}
	return n
}

func textField(p schema.TextFieldProps, pal Palette) Node {
	input := Node{Kind: KindInput}.
		attr("placeholder", p.Hint).
		with(StyleBorder, "1px solid "+interpret.InputBorder("")).
		with(StyleBorderRadius, "8px").
		with(StyleBackground, pal.Token(interpret.TokenInput))
	if p.HasIcon {
		input = input.attr("icon", Glyph(p.Icon))
	}
	n := node(KindBox).with(StyleFlexDirection, "column")
	if p.Label != "" {
		n.Children = append(n.Children, textNode(p.Label).with(StyleColor, pal.Token(interpret.TokenLabel)))
	}
	n.Children = append(n.Children, input)
	if p.Validation {
		n.Children = append(n.Children, textNode(p.ValidationMessage).with(StyleColor, pal.Token(interpret.TokenDanger)))
	}
	return n
}

func card(p schema.CardProps, pal Palette) Node {
	elevation := interpret.Length(p.Elevation)
	n := node(KindBox).
		with(StyleFlexDirection, "column").
		with(StyleBackground, interpret.Surface(p.Color, pal)).
		with(StyleBorderRadius, px(p.BorderRadius)).
		with(StylePadding, px(p.Padding)).
		with(StyleBoxShadow, fmt.Sprintf("0 %spx %spx rgba(0, 0, 0, 0.1)",
			interpret.FormatNumber(elevation), interpret.FormatNumber(elevation*2)))
	if p.ShowImage {
		n.Children = append(n.Children, Node{Kind: KindImage, Text: Glyph("image")}.
			with(StyleHeight, px(p.ImageHeight)).
			with(StyleBackground, pal.Token(interpret.TokenPlaceholder)))
	}
	n.Children = append(n.Children, textNode(p.Title).with(StyleFontWeight, "700").with(StyleColor, pal.Token(interpret.TokenText)))
	if p.Subtitle != "" {
		n.Children = append(n.Children, textNode(p.Subtitle).with(StyleColor, pal.Token(interpret.TokenTextMuted)))
	}
	n.Children = append(n.Children, textNode(p.Content).with(StyleColor, pal.Token(interpret.TokenText)))
	return n
}

func list(p schema.ListProps, pal Palette) Node {
	direction := "column"
	if interpret.Horizontal(p.Direction) {
		direction = "row"
	}
	overflow := "hidden"
	if p.Scrollable {
		overflow = "auto"
	}
	n := node(KindList).
		with(StyleFlexDirection, direction).
		with(StyleOverflow, overflow)
	for _, item := range interpret.ListItemsFor(p) {
		n.Children = append(n.Children, Node{Kind: KindItem}.
			attr("icon", item.Icon).
			with(StyleHeight, px(p.ItemHeight)).
			with(StyleBackground, pal.Token(interpret.TokenSurface)).
			withChildren(
				Node{Kind: KindIcon, Text: Glyph(item.Icon)}.with(StyleColor, interpret.Primary("")),
				textNode(item.Title).with(StyleFontWeight, "500").with(StyleColor, pal.Token(interpret.TokenText)),
				textNode(item.Subtitle).with(StyleColor, pal.Token(interpret.TokenTextMuted)),
			))
	}
	return n
}

func (n Node) withChildren(children ...Node) Node {
	n.Children = append(n.Children, children...)
	return n
}

func flex(p schema.FlexProps, pal Palette) Node {
	direction, width := "row", 30.0
	if p.Type == ir.TypeColumn {
		direction, width = "column", 100
	}
	n := node(KindBox).
		with(StyleFlexDirection, direction).
		with(StyleJustifyContent, interpret.ParseMainAxis(p.MainAxisAlignment).CSS()).
		with(StyleAlignItems, interpret.ParseCrossAxis(p.CrossAxisAlignment).CSS()).
		with(StylePadding, px(p.Padding)).
		with(StyleGap, "8px")
	for i := 0; i < 3; i++ {
		n.Children = append(n.Children, placeholder(width, 30, pal.Token(interpret.TokenPlaceholder)))
	}
	return n
}

func stack(p schema.StackProps, pal Palette) Node {
	a := interpret.ParseStackAlignment(p.Alignment)
	return node(KindBox,
		placeholder(60, 60, pal.Token(interpret.TokenPlaceholderAlt)),
		placeholder(40, 40, pal.Token(interpret.TokenPlaceholder)),
	).
		attr("alignment", string(a)).
		with(StyleJustifyContent, a.Horizontal().CSS()).
		with(StyleAlignItems, a.Vertical().CSS()).
		with(StylePadding, px(p.Padding))
}

func placeholder(w, h float64, fill string) Node {
	return node(KindBox).
		with(StyleWidth, px(w)).
		with(StyleHeight, px(h)).
		with(StyleBackground, fill)
}

func toggle(value bool, active, inactive string) Node {
	track := interpret.Inactive(inactive)
	if value {
		track = interpret.Primary(active)
	}
	return Node{Kind: KindToggle}.
		attr("checked", boolAttr(value)).
		with(StyleBackground, track).
		with(StyleBorderRadius, "9999px")
}

func checkbox(value bool, active string) Node {
	n := Node{Kind: KindCheckbox}.
		attr("checked", boolAttr(value)).
		with(StyleBorder, "2px solid "+interpret.Primary(active))
	if value {
		n = n.with(StyleBackground, interpret.Primary(active))
	}
	return n
}

func radio(value bool, group, active string) Node {
	return Node{Kind: KindRadio}.
		attr("value", interpret.RadioValue(value)).
		attr("checked", boolAttr(interpret.RadioSelected(value, group))).
		with(StyleBorder, "2px solid "+interpret.Primary(active)).
		with(StyleBorderRadius, "9999px")
}

func labelledToggle(control Node, label string, pal Palette) Node {
	if label == "" {
		return control
	}
	return node(KindBox,
		textNode(label).with(StyleColor, pal.Token(interpret.TokenText)),
		control,
	).
		with(StyleFlexDirection, "row").
		with(StyleJustifyContent, "space-between").
		with(StyleAlignItems, "center")
}

func labelled(control Node, label, labelColor, position string, disabled bool, pal Palette) Node {
	text := textNode(label).with(StyleColor, interpret.Label(labelColor, pal))
	children := []Node{control, text}
	if interpret.LabelFirst(position) {
		children = []Node{text, control}
	}
	n := node(KindBox, children...).
		with(StyleFlexDirection, "row").
		with(StyleAlignItems, "center").
		with(StyleGap, "8px").
		with(StyleOpacity, interpret.FormatNumber(interpret.Opacity(disabled)))
	if disabled {
		n = n.attr("disabled", "true")
	}
	return n
}

func chatInput(p schema.ChatInputProps, pal Palette) Node {
	bg, fg := interpret.ChatButtonColors(p.ButtonColor)
	return node(KindBox,
		Node{Kind: KindInput}.
			attr("placeholder", p.Placeholder).
			with(StyleBorder, "1px solid "+interpret.InputBorder("")).
			with(StyleBorderRadius, "24px").
			with(StyleBackground, pal.Token(interpret.TokenInput)),
		Node{Kind: KindButton, Text: p.ButtonText}.
			with(StyleBackground, bg).
			with(StyleColor, fg).
			with(StyleBorderRadius, "8px"),
	).
		with(StyleFlexDirection, "row").
		with(StyleGap, "8px")
}

func chatMessage(p schema.ChatMessageProps, pal Palette) Node {
	bg, fg := interpret.BubbleColors(p.IsUser, pal)
	side := "flex-start"
	if p.IsUser {
		side = "flex-end"
	}
	bubble := Node{Kind: KindBubble}.
		attr("sender", sender(p.IsUser)).
		with(StyleBackground, bg).
		with(StyleColor, fg).
		with(StyleBorderRadius, "12px").
		with(StylePadding, "12px").
		withChildren(textNode(p.Text))
	if p.Timestamp {
		bubble.Children = append(bubble.Children, textNode(interpret.SampleTimestamp).with(StyleFontSize, "10px"))
	}
	avatar := Node{Kind: KindIcon, Text: Glyph("person")}
	n := node(KindBox).
		with(StyleFlexDirection, "row").
		with(StyleJustifyContent, side).
		with(StyleAlignSelf, side).
		with(StyleGap, "8px")
	switch {
	case p.Avatar && p.IsUser:
		n.Children = []Node{bubble, avatar}
	case p.Avatar:
		n.Children = []Node{avatar, bubble}
	default:
		n.Children = []Node{bubble}
	}
	return n
}

func sender(isUser bool) string {
	if isUser {
		return "user"
	}
	return "other"
}

func dropdown(p schema.DropdownProps, pal Palette) Node {
	options := interpret.ParseOptions(p.Options)
	sel := Node{Kind: KindSelect}.
		attr("placeholder", p.Placeholder).
		with(StyleBackground, interpret.DropdownBackground(p.BackgroundColor, pal)).
		with(StyleBorder, "1px solid "+interpret.InputBorder(p.BorderColor)).
		with(StyleBorderRadius, "8px").
		with(StyleColor, color.Contrast(interpret.DropdownBackground(p.BackgroundColor, pal)))
	if v, ok := interpret.Selected(options, p.Value); ok {
		sel = sel.attr("value", v)
	}
	if p.Disabled {
		sel = sel.attr("disabled", "true")
	}
	for _, opt := range options {
		sel.Children = append(sel.Children, Node{Kind: KindOption, Text: opt.Label}.attr("value", opt.Value))
	}

	n := node(KindBox).
		with(StyleFlexDirection, "column").
		with(StyleOpacity, interpret.FormatNumber(interpret.Opacity(p.Disabled)))
	if p.Label != "" {
		label := p.Label
		if p.Required {
			label += " *"
		}
		n.Children = append(n.Children, textNode(label).with(StyleColor, pal.Token(interpret.TokenLabel)))
	}
	n.Children = append(n.Children, sel)
	return n
}

func inputWithLabel(p schema.InputWithLabelProps, pal Palette) Node {
	label := p.Label
	if p.Required {
		label += " *"
	}
	input := Node{Kind: KindInput}.
		attr("type", p.InputType).
		attr("placeholder", p.Placeholder).
		with(StyleBorder, "1px solid "+interpret.InputBorder(p.BorderColor)).
		with(StyleBorderRadius, "8px").
		with(StyleBackground, pal.Token(interpret.TokenInput))
	if p.Value != "" {
		input = input.attr("value", p.Value)
	}
	if p.Disabled {
		input = input.attr("disabled", "true")
	}
	return node(KindBox,
		textNode(label).with(StyleColor, interpret.Label(p.LabelColor, pal)).with(StyleFontWeight, "700"),
		input,
	).
		with(StyleFlexDirection, "column").
		with(StyleGap, "4px").
		with(StyleOpacity, interpret.FormatNumber(interpret.Opacity(p.Disabled)))
}

func table(p schema.DynamicTableProps, pal Palette) Node {
	data := interpret.ParseTable(p.Columns, p.Data)
	colors := interpret.ResolveTableColors(p, pal)
	text := pal.Token(interpret.TokenText)

	grid := node(KindTable)
	if p.ShowBorder {
		grid = grid.with(StyleBorder, "1px solid "+colors.Border)
	}
	if p.Sortable {
		grid = grid.attr("sortable", "true")
	}
	if p.ShowHeader {
		header := node(KindRow).with(StyleBackground, colors.Header).attr("header", "true")
		for _, col := range data.Columns {
			header.Children = append(header.Children, Node{Kind: KindCell, Text: col.Title}.
				with(StyleWidth, px(col.Width)).
				with(StyleFontWeight, "600").
				with(StyleColor, color.Contrast(colors.Header)))
		}
		grid.Children = append(grid.Children, header)
	}
	for i, row := range data.Rows {
		bg := colors.Row(i, p.Striped)
		r := node(KindRow).with(StyleBackground, bg)
		for _, col := range data.Columns {
			r.Children = append(r.Children, Node{Kind: KindCell, Text: interpret.Cell(row, col.ID)}.
				with(StyleWidth, px(col.Width)).
				with(StyleColor, color.Contrast(bg)))
		}
		grid.Children = append(grid.Children, r)
	}

	n := node(KindBox).with(StyleFlexDirection, "column")
	if p.Title != "" {
		n.Children = append(n.Children, textNode(p.Title).with(StyleFontWeight, "700").with(StyleColor, text))
	}
	n.Children = append(n.Children, grid)
	return n
}

func container(p schema.ContainerProps, pal Palette) Node {
	return node(KindBox).
		with(StyleBackground, interpret.Surface(p.Color, pal)).
		with(StylePadding, px(p.Padding)).
		with(StyleMargin, px(p.Margin)).
		with(StyleBorderRadius, px(p.BorderRadius))
}
