package ir

import (
	"sort"
	"strconv"
	"strings"
)

// Properties is the per-element property bag. Values are scalars: string,
// float64 or bool. Structured sub-properties (options, columns, data) are
// stored as JSON strings.
type Properties map[string]any

// Clone returns a shallow copy; values are scalars so the copy is independent.
func (p Properties) Clone() Properties {
	if p == nil {
		return nil
	}
	out := make(Properties, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Keys returns the property names sorted.
func (p Properties) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String returns the string value stored under key. Numbers and booleans are
// formatted; missing keys report false.
func (p Properties) String(key string) (string, bool) {
	v, ok := p[key]
	if !ok || v == nil {
		return "", false
	}
	switch val := v.(type) {
	case string:
		return val, true
	case bool:
		return strconv.FormatBool(val), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case int:
		return strconv.Itoa(val), true
	default:
		return "", false
	}
}

// Number returns the numeric value stored under key, parsing numeric strings.
func (p Properties) Number(key string) (float64, bool) {
	v, ok := p[key]
	if !ok || v == nil {
		return 0, false
	}
	switch val := v.(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Bool returns the boolean stored under key, accepting "true"/"false" strings.
func (p Properties) Bool(key string) (bool, bool) {
	v, ok := p[key]
	if !ok || v == nil {
		return false, false
	}
	switch val := v.(type) {
	case bool:
		return val, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(val))
		if err != nil {
			return false, false
		}
		return b, true
	default:
		return false, false
	}
}

// DesignElement is one absolutely positioned component on a screen.
type DesignElement struct {
	ID         string        `json:"id,omitempty" yaml:"id,omitempty"`
	Type       ComponentType `json:"type" yaml:"type"`
	X          int           `json:"x" yaml:"x"`
	Y          int           `json:"y" yaml:"y"`
	Width      int           `json:"width" yaml:"width"`
	Height     int           `json:"height" yaml:"height"`
	Properties Properties    `json:"properties" yaml:"properties"`
}

// Clone returns an independent copy of the element.
func (e DesignElement) Clone() DesignElement {
	out := e
	out.Properties = e.Properties.Clone()
	return out
}

// Rect returns the element geometry.
func (e DesignElement) Rect() Rect {
	return Rect{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
}

// ToMap converts the element into the untyped record shape accepted by the
// sanitizer. Numbers are float64, matching decoded JSON.
func (e DesignElement) ToMap() map[string]any {
	props := make(map[string]any, len(e.Properties))
	for k, v := range e.Properties {
		props[k] = v
	}
	out := map[string]any{
		"type":       string(e.Type),
		"x":          float64(e.X),
		"y":          float64(e.Y),
		"width":      float64(e.Width),
		"height":     float64(e.Height),
		"properties": props,
	}
	if e.ID != "" {
		out["id"] = e.ID
	}
	return out
}

// Screen is an ordered list of elements. Order decides stacking and the names
// of generated state fields.
type Screen struct {
	ID       string          `json:"id" yaml:"id"`
	Name     string          `json:"name" yaml:"name"`
	Elements []DesignElement `json:"elements" yaml:"elements"`
}

// Clone returns an independent copy of the screen.
func (s Screen) Clone() Screen {
	out := s
	if s.Elements != nil {
		out.Elements = make([]DesignElement, len(s.Elements))
		for i, el := range s.Elements {
			out.Elements[i] = el.Clone()
		}
	}
	return out
}

// Element returns the element with the given id.
func (s Screen) Element(id string) (DesignElement, bool) {
	for _, el := range s.Elements {
		if el.ID == id {
			return el, true
		}
	}
	return DesignElement{}, false
}

// Project is the ordered screen collection handed to renderers.
type Project struct {
	Name     string   `json:"name,omitempty" yaml:"name,omitempty"`
	DarkMode bool     `json:"darkMode,omitempty" yaml:"darkMode,omitempty"`
	Screens  []Screen `json:"screens" yaml:"screens"`
}

// Screen returns the screen with the given id.
func (p Project) Screen(id string) (Screen, bool) {
	for _, s := range p.Screens {
		if s.ID == id {
			return s, true
		}
	}
	return Screen{}, false
}

// HasScreen reports whether a screen with the given id exists.
func (p Project) HasScreen(id string) bool {
	_, ok := p.Screen(id)
	return ok
}

// Clone returns an independent copy of the project.
func (p Project) Clone() Project {
	out := p
	if p.Screens != nil {
		out.Screens = make([]Screen, len(p.Screens))
		for i, s := range p.Screens {
			out.Screens[i] = s.Clone()
		}
	}
	return out
}
