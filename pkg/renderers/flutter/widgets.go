package flutter

import (
	"sort"
	"strings"

	"github.com/goliatone/go-screengen/pkg/color"
	"github.com/goliatone/go-screengen/pkg/interpret"
	"github.com/goliatone/go-screengen/pkg/ir"
	"github.com/goliatone/go-screengen/pkg/schema"
)

const (
	shapeRounded = "const StadiumBorder()"
	shapeSquare  = "RoundedRectangleBorder(borderRadius: BorderRadius.circular(8.0))"

	physicsScroll = "const AlwaysScrollableScrollPhysics()"
	physicsFixed  = "const NeverScrollableScrollPhysics()"

	noop = "() {}"
)

// widget is a template name plus the view model it renders.
type widget struct {
	template string
	data     map[string]any
}

// widgetContext carries what a snippet needs beyond its own element.
type widgetContext struct {
	index   int
	palette interpret.Palette
	routes  map[string]string
	icons   *iconSet
}

// iconSet collects list icons so the app emits one lookup helper.
type iconSet struct {
	names map[string]struct{}
	used  bool
}

func argb(hex string) string {
	return color.ToARGB(hex)
}

func length(v float64) string {
	return fixed(interpret.Length(v))
}

func (c *widgetContext) navigate(target string) string {
	route, ok := c.routes[strings.TrimSpace(target)]
	if !ok {
		return noop
	}
	return "() => Navigator.of(context).pushNamed(" + route + ")"
}

func (c *widgetContext) state(el ir.DesignElement) string {
	return interpret.StateName(el.Type, c.index)
}

// build maps an element onto its widget template.
func (c *widgetContext) build(el ir.DesignElement) widget {
	switch p := schema.Decode(el).(type) {
	case schema.ButtonProps:
		return c.button(p)
	case schema.TextFieldProps:
		return c.textField(p)
	case schema.CardProps:
		return c.card(p)
	case schema.ListProps:
		return c.list(p)
	case schema.IconProps:
		return widget{"icon", map[string]any{
			"name":  iconIdent(p.Name, "star"),
			"color": argb(interpret.Foreground(p.Color, c.palette)),
			"size":  length(p.Size),
		}}
	case schema.FlexProps:
		return c.flex(p)
	case schema.StackProps:
		return widget{"stack", map[string]any{
			"padding":   length(p.Padding),
			"alignment": interpret.ParseStackAlignment(p.Alignment).Flutter(),
			"back":      argb(c.palette.Token(interpret.TokenPlaceholderAlt)),
			"front":     argb(c.palette.Token(interpret.TokenPlaceholder)),
		}}
	case schema.SwitchProps:
		return c.switchWidget(el, p)
	case schema.CheckboxProps:
		return c.checkbox(el, p)
	case schema.RadioProps:
		return widget{"radio", map[string]any{
			"value":       dartString(interpret.RadioValue(p.Value)),
			"group":       dartString(p.GroupValue),
			"activeColor": argb(interpret.Primary(p.ActiveColor)),
		}}
	case schema.ChatInputProps:
		bg, fg := interpret.ChatButtonColors(p.ButtonColor)
		return widget{"chat_input", map[string]any{
			"placeholder": dartString(p.Placeholder),
			"buttonText":  dartString(p.ButtonText),
			"background":  argb(bg),
			"foreground":  argb(fg),
		}}
	case schema.ChatMessageProps:
		bg, fg := interpret.BubbleColors(p.IsUser, c.palette)
		alignment := interpret.CenterLeft
		if p.IsUser {
			alignment = interpret.CenterRight
		}
		return widget{"chat_message", map[string]any{
			"alignment":      alignment.Flutter(),
			"avatarLeading":  p.Avatar && !p.IsUser,
			"avatarTrailing": p.Avatar && p.IsUser,
			"bubble":         argb(bg),
			"foreground":     argb(fg),
			"text":           dartString(p.Text),
			"timestamp":      p.Timestamp,
			"time":           dartString(interpret.SampleTimestamp),
		}}
	case schema.DropdownProps:
		return c.dropdown(el, p)
	case schema.InputWithLabelProps:
		return c.inputWithLabel(p)
	case schema.SwitchWithLabelProps:
		control := "Switch(value: " + boolLiteral(p.Value) +
			", onChanged: " + changed(p.Disabled, "(value) {}") +
			", activeColor: const Color(" + argb(interpret.Primary(p.ActiveColor)) + ")" +
			", inactiveTrackColor: const Color(" + argb(interpret.Inactive(p.InactiveColor)) + "))"
		return c.labelled(control, p.Label, p.LabelColor, p.LabelPosition, p.Disabled)
	case schema.RadioWithLabelProps:
		control := "Radio<String>(value: " + dartString(interpret.RadioValue(p.Value)) +
			", groupValue: " + dartString(p.GroupValue) +
			", onChanged: " + changed(p.Disabled, "(value) {}") +
			", activeColor: const Color(" + argb(interpret.Primary(p.ActiveColor)) + "))"
		return c.labelled(control, p.Label, p.LabelColor, p.LabelPosition, p.Disabled)
	case schema.CheckboxWithLabelProps:
		control := "Checkbox(value: " + boolLiteral(p.Value) +
			", onChanged: " + changed(p.Disabled, "(value) {}") +
			", activeColor: const Color(" + argb(interpret.Primary(p.ActiveColor)) + "))"
		return c.labelled(control, p.Label, p.LabelColor, p.LabelPosition, p.Disabled)
	case schema.DynamicTableProps:
		return c.table(p)
	case schema.ContainerProps:
		return c.container(p)
	default:
		return c.container(schema.ContainerProps{})
	}
}

func (c *widgetContext) button(p schema.ButtonProps) widget {
	colors := interpret.ResolveButtonColors(p, c.palette)
	shape := shapeSquare
	if p.Rounded {
		shape = shapeRounded
	}
	return widget{"button", map[string]any{
		"outline":    p.Variant == interpret.ButtonOutline,
		"background": argb(colors.Background),
		"foreground": argb(colors.Foreground),
		"border":     argb(colors.Border),
		"shape":      shape,
		"padding":    length(p.Padding),
		"text":       dartString(p.Text),
		"onPressed":  c.navigate(p.NavigateTo),
	}}
}

func (c *widgetContext) textField(p schema.TextFieldProps) widget {
	data := map[string]any{
		"label": dartString(p.Label),
		"hint":  dartString(p.Hint),
	}
	if p.HasIcon {
		data["icon"] = iconIdent(p.Icon, "search")
	}
	if p.Validation {
		data["errorText"] = dartString(p.ValidationMessage)
	}
	return widget{"text_field", data}
}

func (c *widgetContext) card(p schema.CardProps) widget {
	return widget{"card", map[string]any{
		"elevation":    length(p.Elevation),
		"color":        argb(interpret.Surface(p.Color, c.palette)),
		"radius":       length(p.BorderRadius),
		"padding":      length(p.Padding),
		"showImage":    p.ShowImage,
		"imageHeight":  length(p.ImageHeight),
		"imageColor":   argb(c.palette.Token(interpret.TokenPlaceholder)),
		"title":        dartString(p.Title),
		"hasSubtitle":  p.Subtitle != "",
		"subtitle":     dartString(p.Subtitle),
		"mutedColor":   argb(c.palette.Token(interpret.TokenTextMuted)),
		"content":      dartString(p.Content),
		"contentColor": argb(c.palette.Token(interpret.TokenText)),
	}}
}

func (c *widgetContext) list(p schema.ListProps) widget {
	items := interpret.ListItemsFor(p)
	rows := make([]map[string]string, 0, len(items))
	c.icons.used = true
	for _, item := range items {
		c.icons.names[item.Icon] = struct{}{}
		rows = append(rows, map[string]string{
			"title":    dartString(item.Title),
			"subtitle": dartString(item.Subtitle),
			"icon":     dartString(item.Icon),
		})
	}
	physics := physicsFixed
	if p.Scrollable {
		physics = physicsScroll
	}
	return widget{"list", map[string]any{
		"items":      rows,
		"horizontal": interpret.Horizontal(p.Direction),
		"physics":    physics,
		"itemHeight": length(p.ItemHeight),
		"accent":     argb(interpret.Primary("")),
	}}
}

func (c *widgetContext) flex(p schema.FlexProps) widget {
	data := map[string]any{
		"widget":      "Row",
		"gapAxis":     "width",
		"boxWidth":    fixed(30),
		"boxHeight":   fixed(30),
		"padding":     length(p.Padding),
		"main":        interpret.ParseMainAxis(p.MainAxisAlignment).Flutter(),
		"cross":       interpret.ParseCrossAxis(p.CrossAxisAlignment).Flutter(),
		"placeholder": argb(c.palette.Token(interpret.TokenPlaceholder)),
	}
	if p.Type == ir.TypeColumn {
		data["widget"] = "Column"
		data["gapAxis"] = "height"
		data["boxWidth"] = fixed(100)
	}
	return widget{"flex", data}
}

func (c *widgetContext) switchWidget(el ir.DesignElement, p schema.SwitchProps) widget {
	value := boolLiteral(p.Value)
	onChanged := "(value) {}"
	if p.Interactive {
		name := c.state(el)
		value = name
		onChanged = "(value) => setState(() => " + name + " = value)"
	}
	control := "Switch(value: " + value +
		", onChanged: " + onChanged +
		", activeColor: const Color(" + argb(interpret.Primary(p.ActiveColor)) + ")" +
		", inactiveTrackColor: const Color(" + argb(interpret.Inactive(p.InactiveColor)) + "))"
	return widget{"toggle", map[string]any{
		"control":  control,
		"hasLabel": p.Label != "",
		"label":    dartString(p.Label),
		"spread":   true,
	}}
}

func (c *widgetContext) checkbox(el ir.DesignElement, p schema.CheckboxProps) widget {
	value := boolLiteral(p.Value)
	onChanged := "(value) {}"
	if p.Interactive {
		name := c.state(el)
		value = name
		onChanged = "(value) => setState(() => " + name + " = value ?? false)"
	}
	control := "Checkbox(value: " + value +
		", onChanged: " + onChanged +
		", activeColor: const Color(" + argb(interpret.Primary(p.ActiveColor)) + "))"
	return widget{"toggle", map[string]any{
		"control":  control,
		"hasLabel": p.Label != "",
		"label":    dartString(p.Label),
		"spread":   false,
	}}
}

func (c *widgetContext) dropdown(el ir.DesignElement, p schema.DropdownProps) widget {
	options := interpret.ParseOptions(p.Options)
	items := make([]map[string]string, 0, len(options))
	for _, opt := range options {
		items = append(items, map[string]string{
			"value": dartString(opt.Value),
			"label": dartString(opt.Label),
		})
	}

	value := "null"
	if v, ok := interpret.Selected(options, p.Value); ok {
		value = dartString(v)
	}
	onChanged := "(value) {}"
	if p.Interactive {
		name := c.state(el)
		value = name
		onChanged = "(value) => setState(() => " + name + " = value)"
	}
	if p.Disabled {
		onChanged = "null"
	}

	label := p.Label
	if p.Required && label != "" {
		label += " *"
	}
	return widget{"dropdown", map[string]any{
		"value":       value,
		"hasLabel":    label != "",
		"label":       dartString(label),
		"placeholder": dartString(p.Placeholder),
		"background":  argb(interpret.DropdownBackground(p.BackgroundColor, c.palette)),
		"border":      argb(interpret.InputBorder(p.BorderColor)),
		"options":     items,
		"onChanged":   onChanged,
	}}
}

func (c *widgetContext) inputWithLabel(p schema.InputWithLabelProps) widget {
	label := p.Label
	if p.Required {
		label += " *"
	}
	return widget{"input_with_label", map[string]any{
		"label":       dartString(label),
		"labelColor":  argb(interpret.Label(p.LabelColor, c.palette)),
		"hasValue":    p.Value != "",
		"value":       dartString(p.Value),
		"enabled":     boolLiteral(!p.Disabled),
		"obscure":     boolLiteral(p.InputType == "password"),
		"keyboard":    keyboardType(p.InputType),
		"placeholder": dartString(p.Placeholder),
		"border":      argb(interpret.InputBorder(p.BorderColor)),
		"fill":        argb(c.palette.Token(interpret.TokenInput)),
	}}
}

func (c *widgetContext) labelled(control, label, labelColor, position string, disabled bool) widget {
	return widget{"labelled", map[string]any{
		"control":    control,
		"label":      dartString(label),
		"labelColor": argb(interpret.Label(labelColor, c.palette)),
		"labelFirst": interpret.LabelFirst(position),
		"opacity":    fixed(interpret.Opacity(disabled)),
	}}
}

func (c *widgetContext) table(p schema.DynamicTableProps) widget {
	table := interpret.ParseTable(p.Columns, p.Data)
	colors := interpret.ResolveTableColors(p, c.palette)

	columns := make([]map[string]string, 0, len(table.Columns))
	for _, col := range table.Columns {
		columns = append(columns, map[string]string{
			"title": dartString(col.Title),
			"width": length(col.Width),
		})
	}
	rows := make([]map[string]any, 0, len(table.Rows))
	for i, row := range table.Rows {
		cells := make([]string, 0, len(table.Columns))
		for _, col := range table.Columns {
			cells = append(cells, dartString(interpret.Cell(row, col.ID)))
		}
		rows = append(rows, map[string]any{
			"color": argb(colors.Row(i, p.Striped)),
			"cells": cells,
		})
	}
	return widget{"dynamic_table", map[string]any{
		"hasTitle":   p.Title != "",
		"title":      dartString(p.Title),
		"showHeader": p.ShowHeader,
		"showBorder": p.ShowBorder,
		"sortable":   p.Sortable,
		"header":     argb(colors.Header),
		"border":     argb(colors.Border),
		"columns":    columns,
		"rows":       rows,
	}}
}

func (c *widgetContext) container(p schema.ContainerProps) widget {
	return widget{"container", map[string]any{
		"padding": length(p.Padding),
		"margin":  length(p.Margin),
		"color":   argb(interpret.Surface(p.Color, c.palette)),
		"radius":  length(p.BorderRadius),
	}}
}

// iconCases lists the helper's switch cases in a stable order.
func iconCases(icons map[string]struct{}) []map[string]string {
	names := make([]string, 0, len(icons))
	for name := range icons {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]map[string]string, 0, len(names))
	for _, name := range names {
		out = append(out, map[string]string{
			"key":   dartString(name),
			"ident": iconIdent(name, interpret.DefaultListIcon),
		})
	}
	return out
}

func keyboardType(inputType string) string {
	switch inputType {
	case "email":
		return "TextInputType.emailAddress"
	case "number":
		return "TextInputType.number"
	case "tel":
		return "TextInputType.phone"
	case "url":
		return "TextInputType.url"
	default:
		return "TextInputType.text"
	}
}

func boolLiteral(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func changed(disabled bool, handler string) string {
	if disabled {
		return "null"
	}
	return handler
}
