package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/drewTuzson/uqual-financial-calculators/pkg/calculator"
)

func testServer(t *testing.T) http.Handler {
	t.Helper()
	registry := calculator.NewDefaultRegistry(calculator.Settings{})
	return New(registry, nil, nil).Router()
}

func doJSON(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestCatalogListsAllCalculators(t *testing.T) {
	rec := doJSON(t, testServer(t), http.MethodGet, "/api/v1/calculators", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Calculators []struct {
			Type   string          `json:"type"`
			Name   string          `json:"name"`
			Fields json.RawMessage `json:"fields"`
		} `json:"calculators"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(body.Calculators) != 5 {
		t.Fatalf("len(calculators) = %d, want 5", len(body.Calculators))
	}
	if body.Calculators[0].Type != calculator.TypeLoanReadiness {
		t.Errorf("first type = %q, want %q", body.Calculators[0].Type, calculator.TypeLoanReadiness)
	}
	for _, entry := range body.Calculators {
		if entry.Name == "" || len(entry.Fields) == 0 {
			t.Errorf("calculator %q missing name or fields", entry.Type)
		}
	}
}

func TestCalculateSuccess(t *testing.T) {
	rec := doJSON(t, testServer(t), http.MethodPost, "/api/v1/calculators/dti", `{
		"incomeFrequency": "monthly",
		"grossIncome": "5000",
		"housingPayment": "1000",
		"creditCardMinimums": "200"
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body)
	}

	var body struct {
		Success bool `json:"success"`
		Results struct {
			Ratio          float64 `json:"ratio"`
			Classification string  `json:"classification"`
		} `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if !body.Success {
		t.Error("success = false, want true")
	}
	if body.Results.Ratio != 24.0 {
		t.Errorf("ratio = %v, want 24.0", body.Results.Ratio)
	}
	if body.Results.Classification != "Excellent" {
		t.Errorf("classification = %q, want Excellent", body.Results.Classification)
	}
}

func TestCalculateUnknownType(t *testing.T) {
	rec := doJSON(t, testServer(t), http.MethodPost, "/api/v1/calculators/mystery", `{}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestCalculateValidationFailure(t *testing.T) {
	rec := doJSON(t, testServer(t), http.MethodPost, "/api/v1/calculators/loan_readiness", `{
		"creditScore": "700"
	}`)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422; body: %s", rec.Code, rec.Body)
	}

	var body struct {
		Success bool     `json:"success"`
		Errors  []string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Success {
		t.Error("success = true, want false")
	}
	if len(body.Errors) == 0 {
		t.Error("errors empty, want the missing-field messages")
	}
}

func TestCalculateRejectsMalformedBody(t *testing.T) {
	rec := doJSON(t, testServer(t), http.MethodPost, "/api/v1/calculators/dti", `not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestSchemaEndpoint(t *testing.T) {
	rec := doJSON(t, testServer(t), http.MethodGet, "/api/v1/schema", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var doc struct {
		OpenAPI string                     `json:"openapi"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode document: %v", err)
	}
	if doc.OpenAPI != "3.0.3" {
		t.Errorf("openapi = %q, want 3.0.3", doc.OpenAPI)
	}
	if _, ok := doc.Paths["/api/v1/calculators/savings"]; !ok {
		t.Error("schema missing the savings calculator path")
	}
}

func TestHealthz(t *testing.T) {
	rec := doJSON(t, testServer(t), http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
