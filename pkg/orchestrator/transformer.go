package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/goliatone/go-screengen/pkg/ir"
	"github.com/goliatone/go-screengen/pkg/sanitize"
)

// Transformer mutates a project copy before rendering. Implementations can
// rename screens, restyle elements, or perform arbitrary rewrites.
type Transformer interface {
	Transform(ctx context.Context, project *ir.Project) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, project *ir.Project) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, project *ir.Project) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, project)
}

// JSONPresetTransformer applies declarative overrides loaded from a JSON file.
// Screens and elements are addressed by id:
//
//	{
//	  "darkMode": true,
//	  "screens": {
//	    "home": {
//	      "name": "Start",
//	      "elements": {
//	        "el-1": {"y": 120, "properties": {"text": "Buy now"}}
//	      }
//	    }
//	  }
//	}
//
// Patched elements are sanitized again, so a preset cannot break geometry or
// property kinds.
type JSONPresetTransformer struct {
	document  jsonTransformDocument
	sanitizer *sanitize.Sanitizer
}

type jsonTransformDocument struct {
	Name     string                     `json:"name"`
	DarkMode *bool                      `json:"darkMode"`
	Screens  map[string]jsonScreenPatch `json:"screens"`
}

type jsonScreenPatch struct {
	Name     string                      `json:"name"`
	Elements map[string]jsonElementPatch `json:"elements"`
}

type jsonElementPatch struct {
	Type       string         `json:"type"`
	X          *float64       `json:"x"`
	Y          *float64       `json:"y"`
	Width      *float64       `json:"width"`
	Height     *float64       `json:"height"`
	Properties map[string]any `json:"properties"`
}

// NewJSONPresetTransformer constructs a transformer from raw JSON bytes.
func NewJSONPresetTransformer(data []byte) (*JSONPresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("json preset transformer: document is empty")
	}
	var document jsonTransformDocument
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("json preset transformer: parse document: %w", err)
	}
	return &JSONPresetTransformer{document: document, sanitizer: sanitize.New()}, nil
}

// NewJSONPresetTransformerFromFS loads a JSON transformer document from the
// provided filesystem path.
func NewJSONPresetTransformerFromFS(fsys fs.FS, path string) (*JSONPresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("json preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("json preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("json preset transformer: read %s: %w", path, err)
	}
	return NewJSONPresetTransformer(data)
}

// WithSanitizer sets the sanitizer used on patched elements.
func (t *JSONPresetTransformer) WithSanitizer(s *sanitize.Sanitizer) *JSONPresetTransformer {
	if s != nil {
		t.sanitizer = s
	}
	return t
}

// Transform applies the declarative patches onto the supplied project.
func (t *JSONPresetTransformer) Transform(ctx context.Context, project *ir.Project) error {
	if project == nil {
		return errors.New("json preset transformer: project is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if name := strings.TrimSpace(t.document.Name); name != "" {
		project.Name = name
	}
	if t.document.DarkMode != nil {
		project.DarkMode = *t.document.DarkMode
	}

	for _, screenID := range sortedKeys(t.document.Screens) {
		if err := ctx.Err(); err != nil {
			return err
		}
		screen := findScreen(project.Screens, screenID)
		if screen == nil {
			return fmt.Errorf("json preset transformer: screen %q not found", screenID)
		}
		patch := t.document.Screens[screenID]
		if name := strings.TrimSpace(patch.Name); name != "" {
			screen.Name = name
		}
		for _, elementID := range sortedKeys(patch.Elements) {
			idx := findElement(screen.Elements, elementID)
			if idx < 0 {
				return fmt.Errorf("json preset transformer: element %q not found on screen %q", elementID, screenID)
			}
			screen.Elements[idx] = t.applyElementPatch(idx, screen.Elements[idx], patch.Elements[elementID])
		}
	}
	return nil
}

func (t *JSONPresetTransformer) applyElementPatch(index int, el ir.DesignElement, patch jsonElementPatch) ir.DesignElement {
	raw := el.ToMap()
	if patch.Type != "" {
		raw["type"] = patch.Type
	}
	setNumber(raw, "x", patch.X)
	setNumber(raw, "y", patch.Y)
	setNumber(raw, "width", patch.Width)
	setNumber(raw, "height", patch.Height)
	if len(patch.Properties) > 0 {
		props, _ := raw["properties"].(map[string]any)
		if props == nil {
			props = make(map[string]any, len(patch.Properties))
		}
		for key, value := range patch.Properties {
			props[key] = value
		}
		raw["properties"] = props
	}

	s := t.sanitizer
	if s == nil {
		s = sanitize.New()
	}
	out := s.Element(index, raw)
	out.ID = el.ID
	return out
}

func setNumber(raw map[string]any, key string, value *float64) {
	if value != nil {
		raw[key] = *value
	}
}

func findScreen(screens []ir.Screen, id string) *ir.Screen {
	for idx := range screens {
		if screens[idx].ID == id {
			return &screens[idx]
		}
	}
	return nil
}

func findElement(elements []ir.DesignElement, id string) int {
	for idx := range elements {
		if elements[idx].ID == id {
			return idx
		}
	}
	return -1
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
