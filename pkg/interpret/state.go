package interpret

import (
	"fmt"

	"github.com/goliatone/go-screengen/pkg/ir"
	"github.com/goliatone/go-screengen/pkg/schema"
)

// StateVar is a mutable field backing one interactive element.
type StateVar struct {
	Name  string
	Index int
	Type  ir.ComponentType
	// Initial is a bool for toggles, a string for a dropdown with a valid
	// selection and nil otherwise.
	Initial any
}

// StateName derives the field name from the element's position in its
// screen's element list.
func StateName(t ir.ComponentType, index int) string {
	return fmt.Sprintf("_%s%d", t, index)
}

// StateField reports the state field for an interactive element.
func StateField(index int, el ir.DesignElement) (StateVar, bool) {
	sv := StateVar{Name: StateName(el.Type, index), Index: index, Type: el.Type}
	switch p := schema.Decode(el).(type) {
	case schema.SwitchProps:
		if !p.Interactive {
			return StateVar{}, false
		}
		sv.Initial = p.Value
	case schema.CheckboxProps:
		if !p.Interactive {
			return StateVar{}, false
		}
		sv.Initial = p.Value
	case schema.DropdownProps:
		if !p.Interactive {
			return StateVar{}, false
		}
		if v, ok := Selected(ParseOptions(p.Options), p.Value); ok {
			sv.Initial = v
		}
	default:
		return StateVar{}, false
	}
	return sv, true
}

// StateFields lists the state fields of a screen in element order.
func StateFields(elements []ir.DesignElement) []StateVar {
	var out []StateVar
	for i, el := range elements {
		if sv, ok := StateField(i, el); ok {
			out = append(out, sv)
		}
	}
	return out
}
