package schema

import "github.com/goliatone/go-screengen/pkg/ir"

// Variant is the typed property record of one component type.
type Variant interface {
	ComponentType() ir.ComponentType
}

type ButtonProps struct {
	Text       string  `prop:"text"`
	Variant    string  `prop:"variant"`
	Rounded    bool    `prop:"rounded"`
	Color      string  `prop:"color"`
	TextColor  string  `prop:"textColor"`
	Padding    float64 `prop:"padding"`
	NavigateTo string  `prop:"navigateTo"`
}

type TextFieldProps struct {
	Hint              string `prop:"hint"`
	Label             string `prop:"label"`
	HasIcon           bool   `prop:"hasIcon"`
	Icon              string `prop:"icon"`
	Validation        bool   `prop:"validation"`
	ValidationMessage string `prop:"validationMessage"`
}

type CardProps struct {
	Elevation    float64 `prop:"elevation"`
	BorderRadius float64 `prop:"borderRadius"`
	Color        string  `prop:"color"`
	Padding      float64 `prop:"padding"`
	Title        string  `prop:"title"`
	Subtitle     string  `prop:"subtitle"`
	Content      string  `prop:"content"`
	ShowImage    bool    `prop:"showImage"`
	ImageHeight  float64 `prop:"imageHeight"`
}

type ListProps struct {
	Direction  string  `prop:"direction"`
	Scrollable bool    `prop:"scrollable"`
	ItemCount  float64 `prop:"itemCount"`
	ItemHeight float64 `prop:"itemHeight"`
	Data       string  `prop:"data,json"`
}

type IconProps struct {
	Name  string  `prop:"name"`
	Color string  `prop:"color"`
	Size  float64 `prop:"size"`
}

type ContainerProps struct {
	Color        string  `prop:"color"`
	Padding      float64 `prop:"padding"`
	Margin       float64 `prop:"margin"`
	BorderRadius float64 `prop:"borderRadius"`
}

// FlexProps backs both row and column.
type FlexProps struct {
	Type               ir.ComponentType `prop:"-"`
	MainAxisAlignment  string           `prop:"mainAxisAlignment"`
	CrossAxisAlignment string           `prop:"crossAxisAlignment"`
	Padding            float64          `prop:"padding"`
}

type StackProps struct {
	Alignment string  `prop:"alignment"`
	Padding   float64 `prop:"padding"`
}

type SwitchProps struct {
	Label         string `prop:"label"`
	Value         bool   `prop:"value"`
	ActiveColor   string `prop:"activeColor"`
	InactiveColor string `prop:"inactiveColor"`
	Interactive   bool   `prop:"interactive"`
}

type CheckboxProps struct {
	Label       string `prop:"label"`
	Value       bool   `prop:"value"`
	ActiveColor string `prop:"activeColor"`
	Interactive bool   `prop:"interactive"`
}

type RadioProps struct {
	Value       bool   `prop:"value"`
	ActiveColor string `prop:"activeColor"`
	GroupValue  string `prop:"groupValue"`
}

type ChatInputProps struct {
	Placeholder string `prop:"placeholder"`
	ButtonText  string `prop:"buttonText"`
	ButtonColor string `prop:"buttonColor"`
}

type ChatMessageProps struct {
	Text      string `prop:"text"`
	IsUser    bool   `prop:"isUser"`
	Avatar    bool   `prop:"avatar"`
	Timestamp bool   `prop:"timestamp"`
}

type DropdownProps struct {
	Label           string `prop:"label"`
	Placeholder     string `prop:"placeholder"`
	Options         string `prop:"options,json"`
	Value           string `prop:"value"`
	Required        bool   `prop:"required"`
	Disabled        bool   `prop:"disabled"`
	BorderColor     string `prop:"borderColor"`
	BackgroundColor string `prop:"backgroundColor"`
	Interactive     bool   `prop:"interactive"`
}

type InputWithLabelProps struct {
	Label       string `prop:"label"`
	Placeholder string `prop:"placeholder"`
	Value       string `prop:"value"`
	InputType   string `prop:"type"`
	Required    bool   `prop:"required"`
	Disabled    bool   `prop:"disabled"`
	BorderColor string `prop:"borderColor"`
	LabelColor  string `prop:"labelColor"`
}

type SwitchWithLabelProps struct {
	Label         string `prop:"label"`
	Value         bool   `prop:"value"`
	ActiveColor   string `prop:"activeColor"`
	InactiveColor string `prop:"inactiveColor"`
	LabelPosition string `prop:"labelPosition"`
	Disabled      bool   `prop:"disabled"`
	LabelColor    string `prop:"labelColor"`
}

type RadioWithLabelProps struct {
	Label         string `prop:"label"`
	Value         bool   `prop:"value"`
	ActiveColor   string `prop:"activeColor"`
	GroupValue    string `prop:"groupValue"`
	LabelPosition string `prop:"labelPosition"`
	Disabled      bool   `prop:"disabled"`
	LabelColor    string `prop:"labelColor"`
}

type CheckboxWithLabelProps struct {
	Label         string `prop:"label"`
	Value         bool   `prop:"value"`
	ActiveColor   string `prop:"activeColor"`
	LabelPosition string `prop:"labelPosition"`
	Disabled      bool   `prop:"disabled"`
	LabelColor    string `prop:"labelColor"`
}

type DynamicTableProps struct {
	Title        string `prop:"title"`
	Columns      string `prop:"columns,json"`
	Data         string `prop:"data,json"`
	ShowHeader   bool   `prop:"showHeader"`
	ShowBorder   bool   `prop:"showBorder"`
	Striped      bool   `prop:"striped"`
	Sortable     bool   `prop:"sortable"`
	HeaderColor  string `prop:"headerColor"`
	BorderColor  string `prop:"borderColor"`
	EvenRowColor string `prop:"evenRowColor"`
	OddRowColor  string `prop:"oddRowColor"`
}

func (ButtonProps) ComponentType() ir.ComponentType { return ir.TypeButton }
func (TextFieldProps) ComponentType() ir.ComponentType { return ir.TypeTextField }
func (CardProps) ComponentType() ir.ComponentType { return ir.TypeCard }
func (ListProps) ComponentType() ir.ComponentType { return ir.TypeList }
func (IconProps) ComponentType() ir.ComponentType { return ir.TypeIcon }
func (ContainerProps) ComponentType() ir.ComponentType { return ir.TypeContainer }
func (p FlexProps) ComponentType() ir.ComponentType { return p.Type }
func (StackProps) ComponentType() ir.ComponentType { return ir.TypeStack }
func (SwitchProps) ComponentType() ir.ComponentType { return ir.TypeSwitch }
func (CheckboxProps) ComponentType() ir.ComponentType { return ir.TypeCheckbox }
func (RadioProps) ComponentType() ir.ComponentType { return ir.TypeRadio }
func (ChatInputProps) ComponentType() ir.ComponentType { return ir.TypeChatInput }
func (ChatMessageProps) ComponentType() ir.ComponentType { return ir.TypeChatMessage }
func (DropdownProps) ComponentType() ir.ComponentType { return ir.TypeDropdown }
func (InputWithLabelProps) ComponentType() ir.ComponentType { return ir.TypeInputWithLabel }
func (SwitchWithLabelProps) ComponentType() ir.ComponentType { return ir.TypeSwitchWithLabel }
func (RadioWithLabelProps) ComponentType() ir.ComponentType { return ir.TypeRadioWithLabel }
func (CheckboxWithLabelProps) ComponentType() ir.ComponentType { return ir.TypeCheckboxWithLabel }
func (DynamicTableProps) ComponentType() ir.ComponentType { return ir.TypeDynamicTable }
