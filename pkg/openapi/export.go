// Package openapi renders the calculator registry as an OpenAPI 3 document.
// Each registered calculator becomes one POST operation whose request schema
// is derived from its field specs, so API consumers get the same constraints
// the engine enforces.
package openapi

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/drewTuzson/uqual-financial-calculators/pkg/calculator"
	"github.com/drewTuzson/uqual-financial-calculators/pkg/schema"
)

// Export builds an OpenAPI document covering every calculator in the
// registry. The path layout mirrors the HTTP server: one POST per type under
// /api/v1/calculators.
func Export(registry *calculator.Registry, title, version string) (*openapi3.T, error) {
	if registry == nil {
		return nil, fmt.Errorf("openapi: registry is required")
	}

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   title,
			Version: version,
		},
		Paths: openapi3.NewPaths(),
	}

	for _, calc := range registry.Calculators() {
		requestSchema, err := RequestSchema(calc.Fields())
		if err != nil {
			return nil, fmt.Errorf("openapi: calculator %q: %w", calc.Type(), err)
		}

		op := &openapi3.Operation{
			OperationID: "calculate_" + calc.Type(),
			Summary:     calc.Name(),
			Description: calc.Description(),
			Tags:        []string{"calculators"},
			RequestBody: &openapi3.RequestBodyRef{
				Value: openapi3.NewRequestBody().
					WithRequired(true).
					WithJSONSchema(requestSchema),
			},
			Responses: calculationResponses(),
		}

		doc.Paths.Set("/api/v1/calculators/"+calc.Type(), &openapi3.PathItem{Post: op})
	}

	return doc, nil
}

// RequestSchema maps a calculator's field specs onto a JSON object schema.
func RequestSchema(fields []schema.FieldSpec) (*openapi3.Schema, error) {
	properties := openapi3.Schemas{}
	var required []string

	for _, field := range fields {
		prop, err := fieldSchema(field)
		if err != nil {
			return nil, err
		}
		properties[field.Name] = openapi3.NewSchemaRef("", prop)
		if field.Required {
			required = append(required, field.Name)
		}
	}

	return &openapi3.Schema{
		Type:       &openapi3.Types{openapi3.TypeObject},
		Properties: properties,
		Required:   required,
	}, nil
}

func fieldSchema(field schema.FieldSpec) (*openapi3.Schema, error) {
	s := &openapi3.Schema{
		Title:       field.Label,
		Description: field.Help,
	}

	switch field.Type {
	case schema.FieldNumber, schema.FieldCurrency, schema.FieldRange:
		s.Type = &openapi3.Types{openapi3.TypeNumber}
		s.Min = field.Min
		s.Max = field.Max
	case schema.FieldInteger:
		s.Type = &openapi3.Types{openapi3.TypeInteger}
		s.Min = field.Min
		s.Max = field.Max
	case schema.FieldCheckbox:
		s.Type = &openapi3.Types{openapi3.TypeBoolean}
	case schema.FieldSelect, schema.FieldRadio:
		s.Type = &openapi3.Types{openapi3.TypeString}
		s.Enum = optionValues(field.Options)
	case schema.FieldCheckboxes:
		s.Type = &openapi3.Types{openapi3.TypeArray}
		s.Items = openapi3.NewSchemaRef("", &openapi3.Schema{
			Type: &openapi3.Types{openapi3.TypeString},
			Enum: optionValues(field.Options),
		})
	case schema.FieldText:
		s.Type = &openapi3.Types{openapi3.TypeString}
	default:
		return nil, fmt.Errorf("unsupported field type %q for field %q", field.Type, field.Name)
	}

	if field.Default != nil {
		s.Default = field.Default
	}

	return s, nil
}

func optionValues(options []schema.Option) []any {
	values := make([]any, 0, len(options))
	for _, option := range options {
		values = append(values, option.Value)
	}
	return values
}

// calculationResponses declares the shared response set of every calculate
// operation: a success envelope plus the three error outcomes.
func calculationResponses() *openapi3.Responses {
	responses := openapi3.NewResponses()
	responses.Set("200", responseRef("Calculation result envelope"))
	responses.Set("404", responseRef("Unknown calculator type"))
	responses.Set("422", responseRef("Input failed validation"))
	responses.Set("500", responseRef("Calculation failed"))
	return responses
}

func responseRef(description string) *openapi3.ResponseRef {
	return &openapi3.ResponseRef{
		Value: openapi3.NewResponse().WithDescription(description),
	}
}
