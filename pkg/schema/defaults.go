package schema

import "github.com/goliatone/go-screengen/pkg/ir"

// Shared literals. Renderers fall back to the same values when a bag
// carries something unusable.
const (
	PrimaryColor   = "#2196F3"
	InactiveColor  = "#9E9E9E"
	BorderGray     = "#d1d5db"
	LabelGray      = "#374151"
	TableHeader    = "#f3f4f6"
	TableBorder    = "#e5e7eb"
	TableEvenRow   = "#ffffff"
	TableOddRow    = "#f9fafb"
	DefaultOptions = `[{"label":"Option 1","value":"option1"},{"label":"Option 2","value":"option2"},{"label":"Option 3","value":"option3"}]`
	DefaultColumns = `[{"id":"name","title":"Name","width":120},{"id":"email","title":"Email","width":180},{"id":"role","title":"Role","width":100}]`
	DefaultRows    = `[{"name":"John Doe","email":"john@example.com","role":"Admin"},{"name":"Jane Smith","email":"jane@example.com","role":"User"},{"name":"Bob Johnson","email":"bob@example.com","role":"Editor"}]`
	DefaultList    = `[{"title":"Item 1","subtitle":"Description 1","icon":"star"},{"title":"Item 2","subtitle":"Description 2","icon":"favorite"},{"title":"Item 3","subtitle":"Description 3","icon":"home"},{"title":"Item 4","subtitle":"Description 4","icon":"settings"},{"title":"Item 5","subtitle":"Description 5","icon":"person"}]`
)

var (
	smallFloor   = ir.Size{Width: 20, Height: 20}
	toggleFloor  = ir.Size{Width: 40, Height: 20}
	defaultFloor = ir.Size{Width: 50, Height: 30}
)

var (
	mainAxisOptions = []SelectOption{
		{Label: "Start", Value: "start"},
		{Label: "Center", Value: "center"},
		{Label: "End", Value: "end"},
		{Label: "Space Between", Value: "spaceBetween"},
		{Label: "Space Around", Value: "spaceAround"},
		{Label: "Space Evenly", Value: "spaceEvenly"},
	}
	crossAxisOptions = []SelectOption{
		{Label: "Start", Value: "start"},
		{Label: "Center", Value: "center"},
		{Label: "End", Value: "end"},
		{Label: "Stretch", Value: "stretch"},
	}
	stackAlignmentOptions = []SelectOption{
		{Label: "Top Left", Value: "topLeft"},
		{Label: "Top Center", Value: "topCenter"},
		{Label: "Top Right", Value: "topRight"},
		{Label: "Center Left", Value: "centerLeft"},
		{Label: "Center", Value: "center"},
		{Label: "Center Right", Value: "centerRight"},
		{Label: "Bottom Left", Value: "bottomLeft"},
		{Label: "Bottom Center", Value: "bottomCenter"},
		{Label: "Bottom Right", Value: "bottomRight"},
	}
	labelPositionOptions = []SelectOption{
		{Label: "Left", Value: "left"},
		{Label: "Right", Value: "right"},
	}
)

func text(name, label string) Descriptor { return Descriptor{Name: name, Label: label, Kind: EditorText} }
func number(name, label string) Descriptor { return Descriptor{Name: name, Label: label, Kind: EditorNumber} }
func boolean(name, label string) Descriptor { return Descriptor{Name: name, Label: label, Kind: EditorBoolean} }
func colour(name, label string) Descriptor { return Descriptor{Name: name, Label: label, Kind: EditorColor} }

func choice(name, label string, options []SelectOption) Descriptor {
	return Descriptor{Name: name, Label: label, Kind: EditorSelect, Options: options}
}

func flexDescriptors() []Descriptor {
	return []Descriptor{
		choice("mainAxisAlignment", "Main Axis Alignment", mainAxisOptions),
		choice("crossAxisAlignment", "Cross Axis Alignment", crossAxisOptions),
		number("padding", "Padding"),
	}
}

func builtinEntries() []Entry {
	return []Entry{
		{
			Type: ir.TypeButton, Width: 120, Height: 40, MinSize: defaultFloor,
			Defaults: ButtonProps{
				Text: "Button", Variant: "primary", Rounded: true,
				Color: PrimaryColor, TextColor: "#FFFFFF", Padding: 16,
			},
			Descriptors: []Descriptor{
				text("text", "Text"),
				choice("variant", "Variant", []SelectOption{
					{Label: "Primary", Value: "primary"},
					{Label: "Secondary", Value: "secondary"},
					{Label: "Outline", Value: "outline"},
				}),
				boolean("rounded", "Rounded"),
				colour("color", "Color"),
				colour("textColor", "Text Color"),
				number("padding", "Padding"),
				{Name: "navigateTo", Label: "Navigate To Screen", Kind: EditorScreen},
			},
		},
		{
			Type: ir.TypeTextField, Width: 200, Height: 56, MinSize: defaultFloor,
			Defaults: TextFieldProps{
				Hint: "Enter text", Label: "Label", Icon: "search",
				ValidationMessage: "Please enter a valid value",
			},
			Descriptors: []Descriptor{
				text("hint", "Hint Text"),
				text("label", "Label"),
				boolean("hasIcon", "Has Icon"),
				text("icon", "Icon"),
				boolean("validation", "Enable Validation"),
				text("validationMessage", "Validation Message"),
			},
		},
		{
			Type: ir.TypeCard, Width: 300, Height: 200, MinSize: defaultFloor,
			Defaults: CardProps{
				Elevation:    2,
				BorderRadius: 8,
				Color:        "#FFFFFF",
				Padding:      16,
				Title:        "Card Title",
				Subtitle:     "Card Subtitle",
				Content:      "This is the main content of the card. You can add any text or description here.",
				ShowImage:    true,
				ImageHeight:  120,
			},
			Descriptors: []Descriptor{
				text("title", "Title"),
				text("subtitle", "Subtitle"),
				text("content", "Content"),
				boolean("showImage", "Show Image"),
				number("imageHeight", "Image Height"),
				number("elevation", "Elevation"),
				number("borderRadius", "Border Radius"),
				colour("color", "Background Color"),
				number("padding", "Padding"),
			},
		},
		{
			Type: ir.TypeList, Width: 300, Height: 300, MinSize: defaultFloor,
			Defaults: ListProps{
				Direction: "vertical", Scrollable: true, ItemCount: 5, ItemHeight: 50,
				Data: DefaultList,
			},
			Descriptors: []Descriptor{
				choice("direction", "Direction", []SelectOption{
					{Label: "Vertical", Value: "vertical"},
					{Label: "Horizontal", Value: "horizontal"},
				}),
				boolean("scrollable", "Scrollable"),
				number("itemCount", "Item Count"),
				number("itemHeight", "Item Height"),
				{Name: "data", Label: "List Data", Kind: EditorJSON},
			},
		},
		{
			Type: ir.TypeIcon, Width: 24, Height: 24, MinSize: smallFloor,
			Defaults: IconProps{Name: "star", Color: "#000000", Size: 24},
			Descriptors: []Descriptor{
				text("name", "Icon Name"),
				colour("color", "Color"),
				number("size", "Size"),
			},
		},
		{
			Type: ir.TypeContainer, Width: 200, Height: 200, MinSize: defaultFloor,
			Defaults: ContainerProps{Color: "#E0E0E0", Padding: 16, Margin: 8},
			Descriptors: []Descriptor{
				colour("color", "Color"),
				number("padding", "Padding"),
				number("margin", "Margin"),
				number("borderRadius", "Border Radius"),
			},
		},
		{
			Type: ir.TypeRow, Width: 300, Height: 50, MinSize: defaultFloor,
			Defaults: FlexProps{
				Type: ir.TypeRow, MainAxisAlignment: "start", CrossAxisAlignment: "center", Padding: 8,
			},
			Descriptors: flexDescriptors(),
		},
		{
			Type: ir.TypeColumn, Width: 200, Height: 200, MinSize: defaultFloor,
			Defaults: FlexProps{
				Type: ir.TypeColumn, MainAxisAlignment: "start", CrossAxisAlignment: "center", Padding: 8,
			},
			Descriptors: flexDescriptors(),
		},
		{
			Type: ir.TypeStack, Width: 200, Height: 200, MinSize: defaultFloor,
			Defaults: StackProps{Alignment: "center", Padding: 8},
			Descriptors: []Descriptor{
				choice("alignment", "Alignment", stackAlignmentOptions),
				number("padding", "Padding"),
			},
		},
		{
			Type: ir.TypeSwitch, Width: 60, Height: 24, MinSize: toggleFloor,
			Defaults: SwitchProps{ActiveColor: PrimaryColor, InactiveColor: InactiveColor},
			Descriptors: []Descriptor{
				text("label", "Label"),
				boolean("value", "Initial Value"),
				colour("activeColor", "Active Color"),
				colour("inactiveColor", "Inactive Color"),
				boolean("interactive", "Interactive"),
			},
		},
		{
			Type: ir.TypeCheckbox, Width: 24, Height: 24, MinSize: smallFloor,
			Defaults: CheckboxProps{ActiveColor: PrimaryColor},
			Descriptors: []Descriptor{
				text("label", "Label"),
				boolean("value", "Initial Value"),
				colour("activeColor", "Active Color"),
				boolean("interactive", "Interactive"),
			},
		},
		{
			Type: ir.TypeRadio, Width: 24, Height: 24, MinSize: smallFloor,
			Defaults: RadioProps{ActiveColor: PrimaryColor, GroupValue: "option1"},
			Descriptors: []Descriptor{
				boolean("value", "Value"),
				colour("activeColor", "Active Color"),
				text("groupValue", "Group Value"),
			},
		},
		{
			Type: ir.TypeChatInput, Width: 300, Height: 50, MinSize: defaultFloor,
			Defaults: ChatInputProps{
				Placeholder: "Type a message...", ButtonText: "Send", ButtonColor: PrimaryColor,
			},
			Descriptors: []Descriptor{
				text("placeholder", "Placeholder"),
				text("buttonText", "Button Text"),
				colour("buttonColor", "Button Color"),
			},
		},
		{
			Type: ir.TypeChatMessage, Width: 250, Height: 80, MinSize: defaultFloor,
			Defaults: ChatMessageProps{
				Text: "Hello! This is a sample message.", IsUser: true, Avatar: true, Timestamp: true,
			},
			Descriptors: []Descriptor{
				text("text", "Message Text"),
				boolean("isUser", "Is User Message"),
				boolean("avatar", "Show Avatar"),
				boolean("timestamp", "Show Timestamp"),
			},
		},
		{
			Type: ir.TypeDropdown, Width: 200, Height: 70, MinSize: defaultFloor,
			Defaults: DropdownProps{
				Label: "Select an option", Placeholder: "Choose...", Options: DefaultOptions,
				BorderColor: BorderGray, BackgroundColor: "#ffffff",
			},
			Descriptors: []Descriptor{
				text("label", "Label"),
				text("placeholder", "Placeholder"),
				{Name: "options", Label: "Options", Kind: EditorOptions},
				text("value", "Initial Value"),
				boolean("required", "Required"),
				boolean("disabled", "Disabled"),
				colour("borderColor", "Border Color"),
				colour("backgroundColor", "Background Color"),
				boolean("interactive", "Interactive"),
			},
		},
		{
			Type: ir.TypeInputWithLabel, Width: 200, Height: 70, MinSize: defaultFloor,
			Defaults: InputWithLabelProps{
				Label: "Input Label", Placeholder: "Enter text...", InputType: "text",
				BorderColor: BorderGray, LabelColor: LabelGray,
			},
			Descriptors: []Descriptor{
				text("label", "Label Text"),
				text("placeholder", "Placeholder"),
				text("value", "Value"),
				choice("type", "Input Type", []SelectOption{
					{Label: "Text", Value: "text"},
					{Label: "Email", Value: "email"},
					{Label: "Password", Value: "password"},
					{Label: "Number", Value: "number"},
					{Label: "Tel", Value: "tel"},
				}),
				boolean("required", "Required"),
				boolean("disabled", "Disabled"),
				colour("borderColor", "Border Color"),
				colour("labelColor", "Label Color"),
			},
		},
		{
			Type: ir.TypeSwitchWithLabel, Width: 200, Height: 40, MinSize: defaultFloor,
			Defaults: SwitchWithLabelProps{
				Label: "Toggle Switch", ActiveColor: PrimaryColor, InactiveColor: InactiveColor,
				LabelPosition: "right", LabelColor: LabelGray,
			},
			Descriptors: []Descriptor{
				text("label", "Label Text"),
				boolean("value", "Value"),
				colour("activeColor", "Active Color"),
				colour("inactiveColor", "Inactive Color"),
				choice("labelPosition", "Label Position", labelPositionOptions),
				boolean("disabled", "Disabled"),
				colour("labelColor", "Label Color"),
			},
		},
		{
			Type: ir.TypeRadioWithLabel, Width: 200, Height: 40, MinSize: defaultFloor,
			Defaults: RadioWithLabelProps{
				Label: "Radio Option", ActiveColor: PrimaryColor, GroupValue: "option1",
				LabelPosition: "right", LabelColor: LabelGray,
			},
			Descriptors: []Descriptor{
				text("label", "Label Text"),
				boolean("value", "Value"),
				colour("activeColor", "Active Color"),
				text("groupValue", "Group Value"),
				choice("labelPosition", "Label Position", labelPositionOptions),
				boolean("disabled", "Disabled"),
				colour("labelColor", "Label Color"),
			},
		},
		{
			Type: ir.TypeCheckboxWithLabel, Width: 200, Height: 40, MinSize: defaultFloor,
			Defaults: CheckboxWithLabelProps{
				Label: "Checkbox Option", ActiveColor: PrimaryColor,
				LabelPosition: "right", LabelColor: LabelGray,
			},
			Descriptors: []Descriptor{
				text("label", "Label Text"),
				boolean("value", "Value"),
				colour("activeColor", "Active Color"),
				choice("labelPosition", "Label Position", labelPositionOptions),
				boolean("disabled", "Disabled"),
				colour("labelColor", "Label Color"),
			},
		},
		{
			Type: ir.TypeDynamicTable, Width: 350, Height: 200, MinSize: defaultFloor,
			Defaults: DynamicTableProps{
				Title: "Data Table", Columns: DefaultColumns, Data: DefaultRows,
				ShowHeader: true, ShowBorder: true, Striped: true, Sortable: true,
				HeaderColor: TableHeader, BorderColor: TableBorder,
				EvenRowColor: TableEvenRow, OddRowColor: TableOddRow,
			},
			Descriptors: []Descriptor{
				text("title", "Table Title"),
				{Name: "columns", Label: "Columns", Kind: EditorColumns},
				{Name: "data", Label: "Table Data", Kind: EditorJSON},
				boolean("showHeader", "Show Header"),
				boolean("showBorder", "Show Border"),
				boolean("striped", "Striped Rows"),
				boolean("sortable", "Sortable"),
				colour("headerColor", "Header Color"),
				colour("borderColor", "Border Color"),
				colour("evenRowColor", "Even Row Color"),
				colour("oddRowColor", "Odd Row Color"),
			},
		},
	}
}

var defaultRegistry = mustRegistry(builtinEntries())

func mustRegistry(rows []Entry) *Registry {
	r, err := NewRegistry(rows)
	if err != nil {
		panic(err)
	}
	return r
}

// Default returns the built-in registry.
func Default() *Registry {
	return defaultRegistry
}

// Lookup resolves t in the built-in registry.
func Lookup(t ir.ComponentType) (Entry, bool) {
	return defaultRegistry.Lookup(t)
}

// DefaultProperties returns a fresh default bag for t.
func DefaultProperties(t ir.ComponentType) ir.Properties {
	return defaultRegistry.DefaultProperties(t)
}

// Descriptors returns the property editor descriptors for t.
func Descriptors(t ir.ComponentType) []Descriptor {
	return defaultRegistry.Descriptors(t)
}

// Decode returns the typed view of el using the built-in registry.
func Decode(el ir.DesignElement) Variant {
	return defaultRegistry.Decode(el)
}

// Place creates a default element of type t at (x, y).
func Place(t ir.ComponentType, x, y int) ir.DesignElement {
	return defaultRegistry.Place(t, x, y)
}
