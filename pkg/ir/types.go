package ir

// ComponentType identifies one palette entry. The set is closed; unknown
// values are rewritten to TypeContainer at the sanitizer boundary.
type ComponentType string

const (
	TypeButton            ComponentType = "button"
	TypeTextField         ComponentType = "textField"
	TypeCard              ComponentType = "card"
	TypeList              ComponentType = "list"
	TypeIcon              ComponentType = "icon"
	TypeContainer         ComponentType = "container"
	TypeRow               ComponentType = "row"
	TypeColumn            ComponentType = "column"
	TypeStack             ComponentType = "stack"
	TypeSwitch            ComponentType = "switch"
	TypeCheckbox          ComponentType = "checkbox"
	TypeRadio             ComponentType = "radio"
	TypeChatInput         ComponentType = "chatInput"
	TypeChatMessage       ComponentType = "chatMessage"
	TypeDropdown          ComponentType = "dropdown"
	TypeInputWithLabel    ComponentType = "inputWithLabel"
	TypeSwitchWithLabel   ComponentType = "switchWithLabel"
	TypeRadioWithLabel    ComponentType = "radioWithLabel"
	TypeCheckboxWithLabel ComponentType = "checkboxWithLabel"
	TypeDynamicTable      ComponentType = "dynamicTable"
)

// FallbackType is used whenever an input names a type outside the palette.
const FallbackType = TypeContainer

var palette = []ComponentType{
	TypeButton,
	TypeTextField,
	TypeCard,
	TypeList,
	TypeIcon,
	TypeContainer,
	TypeRow,
	TypeColumn,
	TypeStack,
	TypeSwitch,
	TypeCheckbox,
	TypeRadio,
	TypeChatInput,
	TypeChatMessage,
	TypeDropdown,
	TypeInputWithLabel,
	TypeSwitchWithLabel,
	TypeRadioWithLabel,
	TypeCheckboxWithLabel,
	TypeDynamicTable,
}

var paletteIndex = func() map[ComponentType]struct{} {
	out := make(map[ComponentType]struct{}, len(palette))
	for _, t := range palette {
		out[t] = struct{}{}
	}
	return out
}()

// AllTypes returns every component type in palette order.
func AllTypes() []ComponentType {
	out := make([]ComponentType, len(palette))
	copy(out, palette)
	return out
}

// ParseComponentType reports whether raw names a palette type. Matching is
// exact; "TextField" is not "textField".
func ParseComponentType(raw string) (ComponentType, bool) {
	t := ComponentType(raw)
	if _, ok := paletteIndex[t]; ok {
		return t, true
	}
	return "", false
}

// Valid reports whether t belongs to the palette.
func (t ComponentType) Valid() bool {
	_, ok := paletteIndex[t]
	return ok
}

func (t ComponentType) String() string {
	return string(t)
}

// Interactive reports whether elements of this type may carry generated
// local state when their interactive flag is set.
func (t ComponentType) Interactive() bool {
	switch t {
	case TypeSwitch, TypeCheckbox, TypeDropdown:
		return true
	default:
		return false
	}
}
