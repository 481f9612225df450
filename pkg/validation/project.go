package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-screengen/pkg/ir"
	"github.com/goliatone/go-screengen/pkg/schema"
)

// Issue is one problem found in a project document.
type Issue struct {
	Path    string `json:"path,omitempty"`
	Screen  string `json:"screen,omitempty"`
	Element string `json:"element,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// Result collects every issue of one validation run.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

func (r *Result) add(issue Issue) {
	r.Valid = false
	r.Issues = append(r.Issues, issue)
}

// Options configures validation.
type Options struct {
	// Registry defaults to schema.Default().
	Registry *schema.Registry
}

// ValidateDocument decodes a JSON or YAML project document as written,
// without sanitizing it, and validates the result. A document that does not
// decode yields a single issue.
func ValidateDocument(data []byte, opts Options) Result {
	project, err := decodeStrict(data)
	if err != nil {
		return Result{Issues: []Issue{{Message: err.Error()}}}
	}
	return ValidateProject(project, opts)
}

func decodeStrict(data []byte) (ir.Project, error) {
	var project ir.Project
	jsonErr := json.Unmarshal(data, &project)
	if jsonErr == nil {
		return project, nil
	}

	// YAML numbers decode as int; a JSON round trip matches what sanitized
	// projects carry.
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return ir.Project{}, fmt.Errorf("decode project: %w", errors.Join(jsonErr, err))
	}
	normalized, err := json.Marshal(doc)
	if err != nil {
		return ir.Project{}, fmt.Errorf("decode project: %w", err)
	}
	project = ir.Project{}
	if err := json.Unmarshal(normalized, &project); err != nil {
		return ir.Project{}, fmt.Errorf("decode project: %w", err)
	}
	return project, nil
}

// ValidateProject reports problems a renderer would silently repair or
// drop: missing or repeated ids, unknown component types, geometry off the
// canvas or under the size floor, navigation to absent screens, and property
// values outside the component's schema.
func ValidateProject(project ir.Project, opts Options) Result {
	registry := opts.Registry
	if registry == nil {
		registry = schema.Default()
	}
	result := Result{Valid: true}
	if len(project.Screens) == 0 {
		result.add(Issue{Path: "/screens", Message: "project has no screens"})
		return result
	}

	screens := make(map[string]struct{}, len(project.Screens))
	for si, screen := range project.Screens {
		path := fmt.Sprintf("/screens/%d", si)
		switch _, dup := screens[screen.ID]; {
		case strings.TrimSpace(screen.ID) == "":
			result.add(Issue{Path: path + "/id", Field: "id", Message: "screen id is empty"})
		case dup:
			result.add(Issue{Path: path + "/id", Screen: screen.ID, Field: "id", Message: fmt.Sprintf("duplicate screen id %q", screen.ID)})
		}
		screens[screen.ID] = struct{}{}
	}

	for si, screen := range project.Screens {
		ids := make(map[string]struct{}, len(screen.Elements))
		for ei, el := range screen.Elements {
			v := elementValidator{
				registry: registry,
				project:  project,
				result:   &result,
				base: Issue{
					Path:    fmt.Sprintf("/screens/%d/elements/%d", si, ei),
					Screen:  screen.ID,
					Element: el.ID,
				},
			}
			if _, dup := ids[el.ID]; dup && el.ID != "" {
				v.report("id", "", fmt.Sprintf("duplicate element id %q", el.ID))
			}
			ids[el.ID] = struct{}{}
			v.validate(el)
		}
	}
	return result
}

type elementValidator struct {
	registry *schema.Registry
	project  ir.Project
	result   *Result
	base     Issue
}

func (v elementValidator) report(field, pointer, message string) {
	issue := v.base
	issue.Field = field
	issue.Message = message
	if pointer != "" {
		issue.Path += pointer
	} else if field != "" {
		issue.Path += "/" + field
	}
	v.result.add(issue)
}

func (v elementValidator) validate(el ir.DesignElement) {
	if el.ID == "" {
		v.report("id", "", "element id is empty")
	}
	entry, ok := v.registry.Lookup(el.Type)
	if !ok {
		v.report("type", "", fmt.Sprintf("unknown component type %q", el.Type))
		return
	}

	rect := el.Rect()
	if !rect.Contains() {
		v.report("", "", fmt.Sprintf("element at %d,%d sized %dx%d leaves the %dx%d canvas",
			rect.X, rect.Y, rect.Width, rect.Height, ir.CanvasWidth, ir.CanvasHeight))
	}
	if el.Width < entry.MinSize.Width || el.Height < entry.MinSize.Height {
		v.report("", "", fmt.Sprintf("element is %dx%d, below the %dx%d minimum",
			el.Width, el.Height, entry.MinSize.Width, entry.MinSize.Height))
	}

	if target, ok := el.Properties["navigateTo"].(string); ok && target != "" && !v.project.HasScreen(target) {
		v.report("navigateTo", "/properties/navigateTo", fmt.Sprintf("navigation target %q is not a screen", target))
	}

	merged := entry.DefaultProperties()
	for k, val := range el.Properties {
		if f, ok := entry.Field(k); ok && f.Kind == schema.KindJSON {
			if _, isText := val.(string); !isText {
				if encoded, err := json.Marshal(val); err == nil {
					val = string(encoded)
				}
			}
		}
		merged[k] = val
	}
	if err := v.registry.ValidateProperties(el.Type, merged); err != nil {
		for _, e := range flatten(err) {
			field, message := describe(e)
			v.report(field, "/properties/"+field, message)
		}
	}
}

func flatten(err error) []error {
	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		out := make([]error, 0, len(multi))
		for _, e := range multi {
			out = append(out, flatten(e)...)
		}
		return out
	}
	return []error{err}
}

func describe(err error) (string, string) {
	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		pointer := schemaErr.JSONPointer()
		field := ""
		if len(pointer) > 0 {
			field = pointer[0]
		}
		return field, strings.TrimSpace(schemaErr.Reason)
	}
	return "", strings.TrimSpace(err.Error())
}
