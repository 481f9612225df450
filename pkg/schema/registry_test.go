package schema

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-screengen/pkg/ir"
)

func TestRegistryCoversEveryType(t *testing.T) {
	reg := Default()
	if diff := cmp.Diff(ir.AllTypes(), reg.Types()); diff != "" {
		t.Fatalf("registry order mismatch (-want +got):\n%s", diff)
	}
	for _, typ := range ir.AllTypes() {
		entry, ok := reg.Lookup(typ)
		if !ok {
			t.Fatalf("missing entry for %s", typ)
		}
		if entry.Defaults.ComponentType() != typ {
			t.Fatalf("%s: defaults report %s", typ, entry.Defaults.ComponentType())
		}
		if len(entry.DefaultProperties()) == 0 {
			t.Fatalf("%s: empty default bag", typ)
		}
	}
}

func TestDefaultGeometry(t *testing.T) {
	want := map[ir.ComponentType][2]int{
		ir.TypeButton:            {120, 40},
		ir.TypeTextField:         {200, 56},
		ir.TypeCard:              {300, 200},
		ir.TypeList:              {300, 300},
		ir.TypeIcon:              {24, 24},
		ir.TypeContainer:         {200, 200},
		ir.TypeRow:               {300, 50},
		ir.TypeColumn:            {200, 200},
		ir.TypeStack:             {200, 200},
		ir.TypeSwitch:            {60, 24},
		ir.TypeCheckbox:          {24, 24},
		ir.TypeRadio:             {24, 24},
		ir.TypeChatInput:         {300, 50},
		ir.TypeChatMessage:       {250, 80},
		ir.TypeDropdown:          {200, 70},
		ir.TypeInputWithLabel:    {200, 70},
		ir.TypeSwitchWithLabel:   {200, 40},
		ir.TypeRadioWithLabel:    {200, 40},
		ir.TypeCheckboxWithLabel: {200, 40},
		ir.TypeDynamicTable:      {350, 200},
	}
	reg := Default()
	for typ, size := range want {
		w, h := reg.DefaultSize(typ)
		if w != size[0] || h != size[1] {
			t.Fatalf("%s: default size %dx%d, want %dx%d", typ, w, h, size[0], size[1])
		}
	}
}

func TestUnknownTypeResolvesToContainer(t *testing.T) {
	reg := Default()
	if _, ok := reg.Lookup("bogus"); ok {
		t.Fatalf("bogus must not resolve through Lookup")
	}
	entry := reg.Entry("bogus")
	if entry.Type != ir.TypeContainer {
		t.Fatalf("expected container fallback, got %s", entry.Type)
	}
	if got := reg.MinSize("bogus"); got != (ir.Size{Width: 50, Height: 30}) {
		t.Fatalf("unexpected fallback floor %+v", got)
	}
}

func TestDescriptorsMatchDefaultKeys(t *testing.T) {
	for _, typ := range ir.AllTypes() {
		defaults := DefaultProperties(typ)
		descriptors := Descriptors(typ)
		names := make([]string, 0, len(descriptors))
		for _, d := range descriptors {
			names = append(names, d.Name)
		}
		keys := defaults.Keys()
		if len(keys) != len(names) {
			t.Fatalf("%s: %d defaults vs %d descriptors", typ, len(keys), len(names))
		}
		for _, name := range names {
			if _, ok := defaults[name]; !ok {
				t.Fatalf("%s: descriptor %q has no default", typ, name)
			}
		}
	}
}

func TestNewRegistryRejectsInconsistentDescriptors(t *testing.T) {
	rows := builtinEntries()
	for i := range rows {
		if rows[i].Type == ir.TypeIcon {
			rows[i].Descriptors = append(rows[i].Descriptors, text("glyph", "Glyph"))
		}
	}
	if _, err := NewRegistry(rows); err == nil {
		t.Fatalf("expected error for descriptor without default")
	}

	rows = builtinEntries()
	for i := range rows {
		if rows[i].Type == ir.TypeIcon {
			rows[i].Descriptors = rows[i].Descriptors[:1]
		}
	}
	if _, err := NewRegistry(rows); err == nil {
		t.Fatalf("expected error for undescribed default")
	}

	rows = builtinEntries()
	for i := range rows {
		if rows[i].Type == ir.TypeIcon {
			rows[i].Descriptors[2] = text("size", "Size")
		}
	}
	if _, err := NewRegistry(rows); err == nil {
		t.Fatalf("expected error for text editor on numeric property")
	}
}

func TestButtonDefaults(t *testing.T) {
	got := DefaultProperties(ir.TypeButton)
	want := ir.Properties{
		"text":       "Button",
		"variant":    "primary",
		"rounded":    true,
		"color":      "#2196F3",
		"textColor":  "#FFFFFF",
		"padding":    float64(16),
		"navigateTo": "",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("button defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultPropertiesAreFreshCopies(t *testing.T) {
	a := DefaultProperties(ir.TypeCard)
	a["title"] = "mutated"
	b := DefaultProperties(ir.TypeCard)
	if b["title"] != "Card Title" {
		t.Fatalf("defaults leaked mutation: %v", b["title"])
	}
}

func TestStructuredDefaultsAreValidJSON(t *testing.T) {
	for _, raw := range []string{DefaultOptions, DefaultColumns, DefaultRows, DefaultList} {
		var out []map[string]any
		if err := json.Unmarshal([]byte(raw), &out); err != nil {
			t.Fatalf("invalid default json %q: %v", raw, err)
		}
		if len(out) == 0 {
			t.Fatalf("empty default dataset %q", raw)
		}
	}
}

func TestDecodeOverlaysWellTypedValues(t *testing.T) {
	el := ir.DesignElement{
		Type: ir.TypeButton,
		Properties: ir.Properties{
			"text":    "Login",
			"padding": "12",
			"rounded": "nope",
			"extra":   "kept elsewhere",
		},
	}
	got, ok := Decode(el).(ButtonProps)
	if !ok {
		t.Fatalf("expected ButtonProps, got %T", Decode(el))
	}
	want := ButtonProps{
		Text:      "Login",
		Variant:   "primary",
		Rounded:   true,
		Color:     "#2196F3",
		TextColor: "#FFFFFF",
		Padding:   12,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("decode mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeFlexKeepsType(t *testing.T) {
	got, ok := Decode(ir.DesignElement{Type: ir.TypeColumn}).(FlexProps)
	if !ok {
		t.Fatalf("expected FlexProps")
	}
	if got.ComponentType() != ir.TypeColumn {
		t.Fatalf("flex props lost type: %s", got.ComponentType())
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	entry := Default().Entry(ir.TypeDynamicTable)
	props := entry.Encode(DynamicTableProps{Title: "People", Columns: "[]", Data: "[]", Striped: true})
	got := entry.Decode(props)
	if diff := cmp.Diff(DynamicTableProps{Title: "People", Columns: "[]", Data: "[]", Striped: true}, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldCoerce(t *testing.T) {
	entry := Default().Entry(ir.TypeDropdown)

	options, _ := entry.Field("options")
	got, ok := options.Coerce([]any{map[string]any{"label": "A", "value": "a"}})
	if !ok || got != `[{"label":"A","value":"a"}]` {
		t.Fatalf("native options not encoded: %v %v", got, ok)
	}
	if _, ok := options.Coerce(42.0); ok {
		t.Fatalf("number must not coerce to json")
	}

	required, _ := entry.Field("required")
	if v, ok := required.Coerce("TRUE"); !ok || v != true {
		t.Fatalf("bool string not coerced: %v %v", v, ok)
	}
	if _, ok := required.Coerce("yes"); ok {
		t.Fatalf("yes must not coerce")
	}

	label, _ := entry.Field("label")
	if v, ok := label.Coerce(7.0); !ok || v != "7" {
		t.Fatalf("number label not formatted: %v %v", v, ok)
	}
}

func TestToNumber(t *testing.T) {
	cases := []struct {
		in   any
		want float64
		ok   bool
	}{
		{in: 12, want: 12, ok: true},
		{in: " 8.5 ", want: 8.5, ok: true},
		{in: json.Number("3"), want: 3, ok: true},
		{in: "", ok: false},
		{in: "NaN", ok: false},
		{in: "abc", ok: false},
		{in: true, ok: false},
		{in: nil, ok: false},
	}
	for _, tc := range cases {
		got, ok := ToNumber(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ToNumber(%#v) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestPlaceUsesDefaultsAndFitsCanvas(t *testing.T) {
	el := Place(ir.TypeDynamicTable, 100, 600)
	if el.ID == "" {
		t.Fatalf("placed element needs an id")
	}
	if el.Width != 260 || el.X != 100 {
		t.Fatalf("unexpected horizontal geometry %+v", el.Rect())
	}
	if el.Height != 40 || el.Y != 600 {
		t.Fatalf("unexpected vertical geometry %+v", el.Rect())
	}
	if !el.Rect().Contains() {
		t.Fatalf("placed element escapes canvas")
	}
	if diff := cmp.Diff(DefaultProperties(ir.TypeDynamicTable), el.Properties); diff != "" {
		t.Fatalf("placed properties mismatch (-want +got):\n%s", diff)
	}
}

func TestOpenAPIDocumentValidates(t *testing.T) {
	doc := OpenAPI()
	if err := doc.Validate(context.Background()); err != nil {
		t.Fatalf("openapi document invalid: %v", err)
	}
	if got := len(doc.Components.Schemas); got != len(ir.AllTypes()) {
		t.Fatalf("expected %d schemas, got %d", len(ir.AllTypes()), got)
	}
	button := doc.Components.Schemas["button"].Value
	variant := button.Properties["variant"].Value
	if diff := cmp.Diff([]any{"primary", "secondary", "outline"}, variant.Enum); diff != "" {
		t.Fatalf("variant enum mismatch (-want +got):\n%s", diff)
	}
	if variant.Extensions[EditorExtension] != "select" {
		t.Fatalf("missing editor extension: %v", variant.Extensions)
	}
}

func TestValidateProperties(t *testing.T) {
	for _, typ := range ir.AllTypes() {
		if err := ValidateProperties(typ, DefaultProperties(typ)); err != nil {
			t.Fatalf("%s defaults should validate: %v", typ, err)
		}
	}

	props := DefaultProperties(ir.TypeButton)
	props["variant"] = "ghost"
	props["color"] = "blue"
	props["padding"] = "16"
	if err := ValidateProperties(ir.TypeButton, props); err == nil {
		t.Fatalf("expected validation errors")
	}
}
