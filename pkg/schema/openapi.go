package schema

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-screengen/pkg/ir"
)

const (
	openAPIVersion = "3.0.3"
	colorPattern   = `^#[0-9A-Fa-f]{6}$`

	// EditorExtension carries the editor kind on each property schema.
	EditorExtension = "x-editor"
)

// OpenAPI exports the registry as an OpenAPI document. Each component type is
// published as an object schema under components/schemas with typed
// properties, defaults, select enums and the editor kind extension.
func (r *Registry) OpenAPI() *openapi3.T {
	doc := &openapi3.T{
		OpenAPI: openAPIVersion,
		Info: &openapi3.Info{
			Title:   "screengen components",
			Version: "1.0.0",
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: make(openapi3.Schemas, len(r.order)),
		},
	}
	for _, t := range r.order {
		doc.Components.Schemas[string(t)] = openapi3.NewSchemaRef("", r.PropertySchema(t))
	}
	return doc
}

// PropertySchema builds the object schema describing t's property bag.
// Additional keys are allowed.
func (r *Registry) PropertySchema(t ir.ComponentType) *openapi3.Schema {
	e := r.Entry(t)
	defaults := e.DefaultProperties()

	obj := openapi3.NewObjectSchema()
	obj.Title = string(e.Type)
	required := make([]string, 0, len(e.Descriptors))
	for _, d := range e.Descriptors {
		f := e.byKey[d.Name]
		var prop *openapi3.Schema
		switch f.Kind {
		case KindNumber:
			prop = openapi3.NewFloat64Schema()
		case KindBool:
			prop = openapi3.NewBoolSchema()
		default:
			prop = openapi3.NewStringSchema()
		}
		prop.Title = d.Label
		prop.Default = defaults[d.Name]
		prop.Extensions = map[string]any{EditorExtension: string(d.Kind)}
		switch d.Kind {
		case EditorSelect:
			values := make([]any, 0, len(d.Options))
			for _, v := range d.Values() {
				values = append(values, v)
			}
			prop.WithEnum(values...)
		case EditorColor:
			prop.Pattern = colorPattern
		}
		obj.WithProperty(d.Name, prop)
		required = append(required, d.Name)
	}
	obj.Required = required
	return obj.WithAnyAdditionalProperties()
}

// ValidateProperties checks a bag against t's property schema and reports
// every violation.
func (r *Registry) ValidateProperties(t ir.ComponentType, props ir.Properties) error {
	value := make(map[string]any, len(props))
	for k, v := range props {
		value[k] = v
	}
	if err := r.PropertySchema(t).VisitJSON(value, openapi3.MultiErrors()); err != nil {
		return fmt.Errorf("schema: %s properties: %w", t, err)
	}
	return nil
}

// OpenAPI exports the built-in registry.
func OpenAPI() *openapi3.T {
	return defaultRegistry.OpenAPI()
}

// ValidateProperties validates a bag against the built-in registry.
func ValidateProperties(t ir.ComponentType, props ir.Properties) error {
	return defaultRegistry.ValidateProperties(t, props)
}
