package interpret

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/goliatone/go-screengen/pkg/schema"
)

// Option is one dropdown entry.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Column is one dynamic table column. A zero width means the column has none
// and is left out when encoded.
type Column struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Width float64 `json:"width,omitempty"`
}

// Row maps column ids to cell values.
type Row map[string]any

// ListItem is one entry of a list element.
type ListItem struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Icon     string `json:"icon"`
}

// Table pairs parsed columns with their rows.
type Table struct {
	Columns []Column
	Rows    []Row
}

// DefaultListIcon is used when a list item names no icon.
const DefaultListIcon = "star"

// FallbackOptions is shown when a dropdown's options cannot be parsed.
func FallbackOptions() []Option {
	return []Option{
		{Label: "Option 1", Value: "option1"},
		{Label: "Option 2", Value: "option2"},
	}
}

// FallbackTable is shown when a table's columns or rows cannot be parsed.
func FallbackTable() Table {
	return Table{
		Columns: []Column{
			{ID: "name", Title: "Name", Width: 120},
			{ID: "email", Title: "Email", Width: 180},
		},
		Rows: []Row{
			{"name": "John Doe", "email": "john@example.com"},
			{"name": "Jane Smith", "email": "jane@example.com"},
		},
	}
}

// FallbackListItems is shown when list data cannot be parsed.
func FallbackListItems() []ListItem {
	return []ListItem{
		{Title: "Item 1", Subtitle: "Description 1", Icon: "star"},
		{Title: "Item 2", Subtitle: "Description 2", Icon: "favorite"},
	}
}

// objects decodes raw into a list of JSON objects. raw may be a JSON string
// or an already decoded slice.
func objects(raw any) ([]map[string]any, bool) {
	var items []any
	switch v := raw.(type) {
	case string:
		if err := json.Unmarshal([]byte(v), &items); err != nil {
			return nil, false
		}
	case []any:
		items = v
	case []map[string]any:
		out := make([]map[string]any, len(v))
		copy(out, v)
		return out, true
	default:
		return nil, false
	}
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, false
		}
		out = append(out, obj)
	}
	return out, true
}

func textField(obj map[string]any, key string) string {
	v, ok := obj[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := schema.ToText(v)
	if !ok {
		return ""
	}
	return s
}

// ParseOptions decodes dropdown options, falling back to FallbackOptions on
// any parse or shape failure.
func ParseOptions(raw any) []Option {
	objs, ok := objects(raw)
	if !ok {
		return FallbackOptions()
	}
	out := make([]Option, 0, len(objs))
	for _, obj := range objs {
		out = append(out, Option{Label: textField(obj, "label"), Value: textField(obj, "value")})
	}
	return out
}

// ParseColumns decodes table columns. A column without an id is a shape error.
func ParseColumns(raw any) ([]Column, bool) {
	objs, ok := objects(raw)
	if !ok {
		return nil, false
	}
	out := make([]Column, 0, len(objs))
	for _, obj := range objs {
		id := textField(obj, "id")
		if id == "" {
			return nil, false
		}
		col := Column{ID: id, Title: textField(obj, "title")}
		if w, ok := obj["width"]; ok {
			col.Width, _ = schema.ToNumber(w)
		}
		out = append(out, col)
	}
	return out, true
}

// ParseRows decodes table rows.
func ParseRows(raw any) ([]Row, bool) {
	objs, ok := objects(raw)
	if !ok {
		return nil, false
	}
	out := make([]Row, 0, len(objs))
	for _, obj := range objs {
		out = append(out, Row(obj))
	}
	return out, true
}

// ParseTable decodes columns and rows together. If either fails both fall
// back, so a table never mixes real columns with canned rows. A table needs
// at least one column, so an empty column list falls back too.
func ParseTable(columns, rows any) Table {
	cols, ok := ParseColumns(columns)
	if !ok || len(cols) == 0 {
		return FallbackTable()
	}
	data, ok := ParseRows(rows)
	if !ok {
		return FallbackTable()
	}
	return Table{Columns: cols, Rows: data}
}

// ParseListItems decodes list data. Missing titles, subtitles and icons are
// filled from the item position.
func ParseListItems(raw any) []ListItem {
	objs, ok := objects(raw)
	if !ok {
		return FallbackListItems()
	}
	out := make([]ListItem, 0, len(objs))
	for i, obj := range objs {
		item := ListItem{
			Title:    textField(obj, "title"),
			Subtitle: textField(obj, "subtitle"),
			Icon:     textField(obj, "icon"),
		}
		if item.Title == "" {
			item.Title = fmt.Sprintf("Item %d", i+1)
		}
		if item.Subtitle == "" {
			item.Subtitle = fmt.Sprintf("Description %d", i+1)
		}
		if item.Icon == "" {
			item.Icon = DefaultListIcon
		}
		out = append(out, item)
	}
	return out
}

// Cell stringifies the value stored under column in row. Missing and null
// values render as the empty string.
func Cell(row Row, column string) string {
	v, ok := row[column]
	if !ok || v == nil {
		return ""
	}
	if s, ok := schema.ToText(v); ok {
		return s
	}
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}

// FormatNumber renders n without a trailing ".0" for whole values.
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func encode(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// EncodeOptions stringifies options in the stored property format.
func EncodeOptions(options []Option) string {
	if options == nil {
		options = []Option{}
	}
	return encode(options)
}

// EncodeColumns stringifies columns in the stored property format.
func EncodeColumns(columns []Column) string {
	if columns == nil {
		columns = []Column{}
	}
	return encode(columns)
}

// EncodeRows stringifies rows in the stored property format.
func EncodeRows(rows []Row) string {
	if rows == nil {
		rows = []Row{}
	}
	return encode(rows)
}

// EncodeListItems stringifies list items in the stored property format.
func EncodeListItems(items []ListItem) string {
	if items == nil {
		items = []ListItem{}
	}
	return encode(items)
}

// Selected returns value when it names one of the options.
func Selected(options []Option, value string) (string, bool) {
	if value == "" {
		return "", false
	}
	for _, opt := range options {
		if opt.Value == value {
			return value, true
		}
	}
	return "", false
}
