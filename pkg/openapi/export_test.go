package openapi

import (
	"context"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/go-cmp/cmp"

	"github.com/drewTuzson/uqual-financial-calculators/pkg/calculator"
	"github.com/drewTuzson/uqual-financial-calculators/pkg/schema"
)

func TestExportCoversAllCalculators(t *testing.T) {
	registry := calculator.NewDefaultRegistry(calculator.Settings{})

	doc, err := Export(registry, "UQUAL Financial Calculators", "1.0.0")
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}

	if doc.OpenAPI != "3.0.3" {
		t.Errorf("OpenAPI = %q, want 3.0.3", doc.OpenAPI)
	}
	if got, want := doc.Paths.Len(), len(registry.Types()); got != want {
		t.Fatalf("Paths.Len() = %d, want %d", got, want)
	}

	for _, calcType := range registry.Types() {
		path := "/api/v1/calculators/" + calcType
		item := doc.Paths.Value(path)
		if item == nil || item.Post == nil {
			t.Errorf("missing POST operation for %s", path)
			continue
		}
		if item.Post.RequestBody == nil || item.Post.RequestBody.Value == nil {
			t.Errorf("%s: missing request body", path)
		}
	}
}

func TestRequestSchemaFieldMapping(t *testing.T) {
	fields := []schema.FieldSpec{
		{
			Name: "income", Label: "Income", Type: schema.FieldCurrency,
			Min: schema.Float64(0), Required: true,
		},
		{
			Name: "months", Label: "Months", Type: schema.FieldInteger,
			Min: schema.Float64(1), Max: schema.Float64(600), Default: 36,
		},
		{
			Name: "term", Label: "Term", Type: schema.FieldSelect,
			Options: []schema.Option{{Value: "15", Label: "15 Years"}, {Value: "30", Label: "30 Years"}},
		},
		{Name: "agree", Label: "Agree", Type: schema.FieldCheckbox},
		{
			Name: "docs", Label: "Docs", Type: schema.FieldCheckboxes,
			Options: []schema.Option{{Value: "a", Label: "A"}, {Value: "b", Label: "B"}},
		},
	}

	got, err := RequestSchema(fields)
	if err != nil {
		t.Fatalf("RequestSchema() error: %v", err)
	}

	if diff := cmp.Diff([]string{"income"}, got.Required); diff != "" {
		t.Errorf("required mismatch (-want +got):\n%s", diff)
	}

	income := got.Properties["income"].Value
	if income.Type.Slice()[0] != openapi3.TypeNumber {
		t.Errorf("income type = %v, want number", income.Type)
	}
	if income.Min == nil || *income.Min != 0 {
		t.Errorf("income min = %v, want 0", income.Min)
	}

	months := got.Properties["months"].Value
	if months.Type.Slice()[0] != openapi3.TypeInteger {
		t.Errorf("months type = %v, want integer", months.Type)
	}
	if months.Max == nil || *months.Max != 600 {
		t.Errorf("months max = %v, want 600", months.Max)
	}
	if months.Default != 36 {
		t.Errorf("months default = %v, want 36", months.Default)
	}

	term := got.Properties["term"].Value
	if diff := cmp.Diff([]any{"15", "30"}, term.Enum); diff != "" {
		t.Errorf("term enum mismatch (-want +got):\n%s", diff)
	}

	agree := got.Properties["agree"].Value
	if agree.Type.Slice()[0] != openapi3.TypeBoolean {
		t.Errorf("agree type = %v, want boolean", agree.Type)
	}

	docs := got.Properties["docs"].Value
	if docs.Type.Slice()[0] != openapi3.TypeArray {
		t.Errorf("docs type = %v, want array", docs.Type)
	}
	if docs.Items == nil || docs.Items.Value == nil {
		t.Fatal("docs items missing")
	}
	if diff := cmp.Diff([]any{"a", "b"}, docs.Items.Value.Enum); diff != "" {
		t.Errorf("docs items enum mismatch (-want +got):\n%s", diff)
	}
}

func TestRequestSchemaRejectsUnknownType(t *testing.T) {
	_, err := RequestSchema([]schema.FieldSpec{{Name: "x", Type: "mystery"}})
	if err == nil {
		t.Fatal("RequestSchema() succeeded, want error for unknown field type")
	}
}

func TestExportedDocumentValidates(t *testing.T) {
	registry := calculator.NewDefaultRegistry(calculator.Settings{})

	doc, err := Export(registry, "UQUAL Financial Calculators", "1.0.0")
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}

	if err := doc.Validate(context.Background()); err != nil {
		t.Errorf("document failed validation: %v", err)
	}
}
