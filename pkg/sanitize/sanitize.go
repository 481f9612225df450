package sanitize

import (
	"encoding/json"
	"math"
	"sort"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-screengen/internal/logger"
	"github.com/goliatone/go-screengen/pkg/ir"
	"github.com/goliatone/go-screengen/pkg/schema"
)

// Geometry used when a coordinate or dimension cannot be read as a number.
const (
	DefaultX      = 20
	DefaultY      = 50
	DefaultWidth  = 100
	DefaultHeight = 50
)

// dimensionLimit keeps absurd inputs inside int range before fitting.
const dimensionLimit = 1 << 20

// IDGenerator returns a fresh element id.
type IDGenerator func() string

// Option configures a Sanitizer.
type Option func(*Sanitizer)

// WithLogger routes coercion warnings to l.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Sanitizer) {
		s.logger = l
	}
}

// WithRegistry swaps the schema registry used for defaults and floors.
func WithRegistry(r *schema.Registry) Option {
	return func(s *Sanitizer) {
		if r != nil {
			s.registry = r
		}
	}
}

// WithIDGenerator sets the id source used by Import.
func WithIDGenerator(fn IDGenerator) Option {
	return func(s *Sanitizer) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// Sanitizer is safe for concurrent use; it holds no mutable state.
type Sanitizer struct {
	registry *schema.Registry
	logger   zerolog.Logger
	newID    IDGenerator
}

// New builds a Sanitizer using the default registry, a warn-level stderr
// logger and UUID based ids unless overridden.
func New(opts ...Option) *Sanitizer {
	s := &Sanitizer{
		registry: schema.Default(),
		logger:   logger.Default(),
		newID:    ir.NewElementID,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Sanitize converts every raw entry into a canonical element, preserving
// order. Ids are not assigned, so sanitizing the output again yields the
// same elements.
func (s *Sanitizer) Sanitize(raw []any) []ir.DesignElement {
	out := make([]ir.DesignElement, 0, len(raw))
	for i, entry := range raw {
		out = append(out, s.Element(i, entry))
	}
	return out
}

// Import sanitizes raw and gives every element a fresh id, ready to be
// appended to a screen.
func (s *Sanitizer) Import(raw []any) []ir.DesignElement {
	out := s.Sanitize(raw)
	for i := range out {
		out[i].ID = s.newID()
	}
	return out
}

// Restore sanitizes a persisted element list. String ids found on the raw
// entries are kept; entries without one, or repeating an earlier id, get a
// fresh id.
func (s *Sanitizer) Restore(raw []any) []ir.DesignElement {
	out := s.Sanitize(raw)
	seen := make(map[string]struct{}, len(out))
	for i := range out {
		id := ""
		if obj, ok := asObject(raw[i]); ok {
			id, _ = obj["id"].(string)
		}
		if _, dup := seen[id]; id == "" || dup {
			id = s.newID()
		}
		seen[id] = struct{}{}
		out[i].ID = id
	}
	return out
}

// Element sanitizes a single entry. index is only used for diagnostics.
func (s *Sanitizer) Element(index int, raw any) ir.DesignElement {
	obj, ok := asObject(raw)
	if !ok {
		s.logger.Warn().Int("index", index).Msg("sanitize: element is not an object, using defaults")
		obj = map[string]any{}
	}

	t := s.componentType(index, obj["type"])
	entry := s.registry.Entry(t)

	x := s.coordinate(obj["x"], DefaultX, ir.CanvasWidth)
	y := s.coordinate(obj["y"], DefaultY, ir.CanvasHeight)
	w := s.dimension(obj["width"], DefaultWidth)
	h := s.dimension(obj["height"], DefaultHeight)
	rect := ir.Fit(ir.Rect{X: x, Y: y, Width: w, Height: h}, entry.MinSize)

	props, ok := asObject(obj["properties"])
	if !ok {
		if _, present := obj["properties"]; present {
			s.logger.Warn().Int("index", index).Msg("sanitize: properties is not an object, using defaults")
		}
		props = nil
	}

	return ir.DesignElement{
		Type:       t,
		X:          rect.X,
		Y:          rect.Y,
		Width:      rect.Width,
		Height:     rect.Height,
		Properties: s.properties(index, entry, props),
	}
}

func (s *Sanitizer) componentType(index int, raw any) ir.ComponentType {
	name, _ := schema.ToText(raw)
	if t, ok := ir.ParseComponentType(name); ok {
		if _, registered := s.registry.Lookup(t); registered {
			return t
		}
	}
	s.logger.Warn().
		Int("index", index).
		Str("type", name).
		Str("fallback", string(ir.FallbackType)).
		Msg("sanitize: unsupported component type")
	return ir.FallbackType
}

func (s *Sanitizer) coordinate(raw any, def, limit int) int {
	f, ok := schema.ToNumber(raw)
	if !ok {
		return def
	}
	return int(math.Round(math.Min(math.Max(f, 0), float64(limit))))
}

func (s *Sanitizer) dimension(raw any, def int) int {
	f, ok := schema.ToNumber(raw)
	if !ok {
		return def
	}
	return int(math.Round(math.Min(math.Max(f, 0), dimensionLimit)))
}

// properties overlays the caller's values on the registry defaults. Declared
// keys keep their declared kind; extra keys survive as scalars.
func (s *Sanitizer) properties(index int, entry schema.Entry, raw map[string]any) ir.Properties {
	out := entry.DefaultProperties()
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := raw[key]
		if field, ok := entry.Field(key); ok {
			coerced, ok := field.Coerce(value)
			if !ok {
				s.logger.Warn().
					Int("index", index).
					Str("type", string(entry.Type)).
					Str("key", key).
					Str("kind", field.Kind.String()).
					Msg("sanitize: property has wrong kind, using default")
				continue
			}
			if text, ok := coerced.(string); ok {
				coerced = CleanText(text)
			}
			out[key] = coerced
			continue
		}
		if extra, ok := extraValue(value); ok {
			out[key] = extra
		}
	}
	return out
}

// extraValue normalises an undeclared property: scalars are kept, nested
// values are JSON encoded and nulls are dropped.
func extraValue(v any) (any, bool) {
	switch val := v.(type) {
	case nil:
		return nil, false
	case string:
		return CleanText(val), true
	case bool:
		return val, true
	}
	if f, ok := schema.ToNumber(v); ok {
		return f, true
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, false
	}
	return CleanText(string(data)), true
}

func asObject(raw any) (map[string]any, bool) {
	switch v := raw.(type) {
	case map[string]any:
		return v, true
	case ir.Properties:
		return map[string]any(v), true
	case ir.DesignElement:
		return v.ToMap(), true
	case *ir.DesignElement:
		if v == nil {
			return nil, false
		}
		return v.ToMap(), true
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[key] = val
		}
		return out, true
	default:
		return nil, false
	}
}

// ToRaw converts canonical elements back into the untyped form accepted by
// Sanitize.
func ToRaw(elements []ir.DesignElement) []any {
	out := make([]any, len(elements))
	for i, el := range elements {
		out[i] = el.ToMap()
	}
	return out
}

var defaultSanitizer = New()

// Sanitize runs the default Sanitizer.
func Sanitize(raw []any) []ir.DesignElement {
	return defaultSanitizer.Sanitize(raw)
}

// Import runs the default Sanitizer and assigns fresh ids.
func Import(raw []any) []ir.DesignElement {
	return defaultSanitizer.Import(raw)
}
