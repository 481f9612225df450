package schema

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/goliatone/go-screengen/pkg/ir"
)

// EditorKind tells a property editor which control to show.
type EditorKind string

const (
	EditorText    EditorKind = "text"
	EditorNumber  EditorKind = "number"
	EditorBoolean EditorKind = "boolean"
	EditorSelect  EditorKind = "select"
	EditorColor   EditorKind = "color"
	EditorScreen  EditorKind = "screen"
	EditorOptions EditorKind = "options"
	EditorColumns EditorKind = "columns"
	EditorJSON    EditorKind = "json"
)

// SelectOption is one entry of a select editor.
type SelectOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Descriptor describes one editable property.
type Descriptor struct {
	Name    string         `json:"name"`
	Label   string         `json:"label"`
	Kind    EditorKind     `json:"type"`
	Options []SelectOption `json:"options,omitempty"`
}

// Values returns the option values of a select descriptor.
func (d Descriptor) Values() []string {
	out := make([]string, 0, len(d.Options))
	for _, opt := range d.Options {
		out = append(out, opt.Value)
	}
	return out
}

// ValueKind is the storage kind of a property value inside the bag.
type ValueKind int

const (
	KindString ValueKind = iota
	KindNumber
	KindBool
	// KindJSON values are JSON documents stored as strings.
	KindJSON
)

func (k ValueKind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindJSON:
		return "json"
	default:
		return "string"
	}
}

// Field is one key of a type's property bag.
type Field struct {
	Key   string
	Kind  ValueKind
	index int
}

// Coerce converts raw into the field's storage kind.
func (f Field) Coerce(raw any) (any, bool) {
	return coerceValue(f.Kind, raw)
}

// Entry is the registry row of one component type.
type Entry struct {
	Type        ir.ComponentType
	Width       int
	Height      int
	MinSize     ir.Size
	Defaults    Variant
	Descriptors []Descriptor

	fields []Field
	byKey  map[string]Field
}

// Fields lists the bag keys in declaration order.
func (e Entry) Fields() []Field {
	out := make([]Field, len(e.fields))
	copy(out, e.fields)
	return out
}

// Field looks up a bag key.
func (e Entry) Field(key string) (Field, bool) {
	f, ok := e.byKey[key]
	return f, ok
}

// DefaultProperties returns a fresh copy of the default bag.
func (e Entry) DefaultProperties() ir.Properties {
	return encodeVariant(e.Defaults, e.fields)
}

// Decode overlays props onto the defaults. Keys that are missing or do not
// coerce to the declared kind keep their default value.
func (e Entry) Decode(props ir.Properties) Variant {
	return decodeVariant(e.Defaults, e.fields, props)
}

// Encode converts a typed record back into a property bag.
func (e Entry) Encode(v Variant) ir.Properties {
	return encodeVariant(v, e.fields)
}

// Registry is an immutable lookup table keyed by component type.
type Registry struct {
	entries map[ir.ComponentType]Entry
	order   []ir.ComponentType
}

// NewRegistry validates the rows and builds a registry. Every descriptor must
// name a bag key of a compatible kind and every bag key must be described.
func NewRegistry(rows []Entry) (*Registry, error) {
	r := &Registry{entries: make(map[ir.ComponentType]Entry, len(rows))}
	for _, row := range rows {
		if !row.Type.Valid() {
			return nil, fmt.Errorf("schema: unknown component type %q", row.Type)
		}
		if _, exists := r.entries[row.Type]; exists {
			return nil, fmt.Errorf("schema: duplicate entry for %q", row.Type)
		}
		if row.Defaults == nil || row.Defaults.ComponentType() != row.Type {
			return nil, fmt.Errorf("schema: %s: defaults do not describe the type", row.Type)
		}
		if row.MinSize.Width > row.Width || row.MinSize.Height > row.Height {
			return nil, fmt.Errorf("schema: %s: default size below minimum", row.Type)
		}
		fields, err := variantFields(reflect.TypeOf(row.Defaults))
		if err != nil {
			return nil, fmt.Errorf("schema: %s: %w", row.Type, err)
		}
		row.fields = fields
		row.byKey = make(map[string]Field, len(fields))
		for _, f := range fields {
			row.byKey[f.Key] = f
		}
		if err := checkDescriptors(row); err != nil {
			return nil, fmt.Errorf("schema: %s: %w", row.Type, err)
		}
		r.entries[row.Type] = row
		r.order = append(r.order, row.Type)
	}
	if _, ok := r.entries[ir.FallbackType]; !ok {
		return nil, fmt.Errorf("schema: fallback type %q missing", ir.FallbackType)
	}
	return r, nil
}

func checkDescriptors(row Entry) error {
	seen := make(map[string]struct{}, len(row.Descriptors))
	for _, d := range row.Descriptors {
		f, ok := row.byKey[d.Name]
		if !ok {
			return fmt.Errorf("descriptor %q has no default", d.Name)
		}
		if _, dup := seen[d.Name]; dup {
			return fmt.Errorf("descriptor %q listed twice", d.Name)
		}
		seen[d.Name] = struct{}{}
		if editorKind(d.Kind) != f.Kind {
			return fmt.Errorf("descriptor %q: editor %s cannot edit %s values", d.Name, d.Kind, f.Kind)
		}
		if d.Kind == EditorSelect && len(d.Options) == 0 {
			return fmt.Errorf("descriptor %q: select without options", d.Name)
		}
	}
	for _, f := range row.fields {
		if _, ok := seen[f.Key]; !ok {
			return fmt.Errorf("property %q has no descriptor", f.Key)
		}
	}
	return nil
}

func editorKind(k EditorKind) ValueKind {
	switch k {
	case EditorNumber:
		return KindNumber
	case EditorBoolean:
		return KindBool
	case EditorOptions, EditorColumns, EditorJSON:
		return KindJSON
	default:
		return KindString
	}
}

// Types lists registered types in palette order.
func (r *Registry) Types() []ir.ComponentType {
	out := make([]ir.ComponentType, len(r.order))
	copy(out, r.order)
	return out
}

// Lookup returns the entry for t.
func (r *Registry) Lookup(t ir.ComponentType) (Entry, bool) {
	e, ok := r.entries[t]
	return e, ok
}

// Entry is the total form of Lookup: unknown types resolve to the fallback
// container entry.
func (r *Registry) Entry(t ir.ComponentType) Entry {
	if e, ok := r.entries[t]; ok {
		return e
	}
	return r.entries[ir.FallbackType]
}

func (r *Registry) DefaultSize(t ir.ComponentType) (int, int) {
	e := r.Entry(t)
	return e.Width, e.Height
}

func (r *Registry) MinSize(t ir.ComponentType) ir.Size {
	return r.Entry(t).MinSize
}

func (r *Registry) DefaultProperties(t ir.ComponentType) ir.Properties {
	return r.Entry(t).DefaultProperties()
}

func (r *Registry) Descriptors(t ir.ComponentType) []Descriptor {
	src := r.Entry(t).Descriptors
	out := make([]Descriptor, len(src))
	copy(out, src)
	return out
}

// Descriptor returns the descriptor of one property.
func (r *Registry) Descriptor(t ir.ComponentType, name string) (Descriptor, bool) {
	for _, d := range r.Entry(t).Descriptors {
		if d.Name == name {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Decode returns the typed view of el.
func (r *Registry) Decode(el ir.DesignElement) Variant {
	return r.Entry(el.Type).Decode(el.Properties)
}

// Place creates a canonical element of type t at (x, y) with default size and
// properties and a fresh id.
func (r *Registry) Place(t ir.ComponentType, x, y int) ir.DesignElement {
	e := r.Entry(t)
	rect := ir.Fit(ir.Rect{X: x, Y: y, Width: e.Width, Height: e.Height}, e.MinSize)
	return ir.DesignElement{
		ID:         ir.NewElementID(),
		Type:       e.Type,
		X:          rect.X,
		Y:          rect.Y,
		Width:      rect.Width,
		Height:     rect.Height,
		Properties: e.DefaultProperties(),
	}
}

func variantFields(t reflect.Type) ([]Field, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("defaults must be a struct value, got %s", t.Kind())
	}
	var fields []Field
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag := sf.Tag.Get("prop")
		if tag == "" || tag == "-" {
			continue
		}
		key, opt, _ := strings.Cut(tag, ",")
		f := Field{Key: key, index: i}
		switch sf.Type.Kind() {
		case reflect.String:
			f.Kind = KindString
			if opt == "json" {
				f.Kind = KindJSON
			}
		case reflect.Float64:
			f.Kind = KindNumber
		case reflect.Bool:
			f.Kind = KindBool
		default:
			return nil, fmt.Errorf("field %s: unsupported kind %s", sf.Name, sf.Type.Kind())
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func encodeVariant(v Variant, fields []Field) ir.Properties {
	rv := reflect.ValueOf(v)
	out := make(ir.Properties, len(fields))
	for _, f := range fields {
		fv := rv.Field(f.index)
		switch f.Kind {
		case KindNumber:
			out[f.Key] = fv.Float()
		case KindBool:
			out[f.Key] = fv.Bool()
		default:
			out[f.Key] = fv.String()
		}
	}
	return out
}

func decodeVariant(def Variant, fields []Field, props ir.Properties) Variant {
	rv := reflect.New(reflect.TypeOf(def)).Elem()
	rv.Set(reflect.ValueOf(def))
	for _, f := range fields {
		raw, ok := props[f.Key]
		if !ok {
			continue
		}
		value, ok := coerceValue(f.Kind, raw)
		if !ok {
			continue
		}
		fv := rv.Field(f.index)
		switch f.Kind {
		case KindNumber:
			fv.SetFloat(value.(float64))
		case KindBool:
			fv.SetBool(value.(bool))
		default:
			fv.SetString(value.(string))
		}
	}
	return rv.Interface().(Variant)
}
