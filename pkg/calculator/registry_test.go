package calculator

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/drewTuzson/uqual-financial-calculators/pkg/schema"
)

// stubCalculator records whether Calculate ran so tests can assert the
// pipeline short-circuits.
type stubCalculator struct {
	Definition
	calculated bool
	result     any
	err        error
	panicMsg   string
}

func (s *stubCalculator) Calculate(schema.CleanInput) (any, error) {
	s.calculated = true
	if s.panicMsg != "" {
		panic(s.panicMsg)
	}
	return s.result, s.err
}

func newStub(calcType string) *stubCalculator {
	return &stubCalculator{
		Definition: Definition{
			CalcType:    calcType,
			DisplayName: calcType,
			FieldSpecs: []schema.FieldSpec{
				{Name: "amount", Label: "Amount", Type: schema.FieldCurrency, Required: true},
			},
		},
		result: "ok",
	}
}

func TestRegistryUnknownType(t *testing.T) {
	r := NewRegistry()
	stub := newStub("known")
	r.MustRegister(stub)

	_, err := r.Process("missing", schema.RawInput{"amount": "1"})
	if !errors.Is(err, ErrUnknownCalculatorType) {
		t.Fatalf("Process() error = %v, want ErrUnknownCalculatorType", err)
	}
	if stub.calculated {
		t.Error("Calculate ran for an unknown type lookup")
	}
}

func TestRegistryValidationShortCircuits(t *testing.T) {
	r := NewRegistry()
	stub := newStub("stub")
	r.MustRegister(stub)

	_, err := r.Process("stub", schema.RawInput{})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Process() error = %v, want *ValidationError", err)
	}
	want := []string{"Amount is required"}
	if diff := cmp.Diff(want, verr.Messages); diff != "" {
		t.Errorf("messages mismatch (-want +got):\n%s", diff)
	}
	if stub.calculated {
		t.Error("Calculate ran despite validation failure")
	}
}

func TestRegistryCalculationErrorWrapping(t *testing.T) {
	r := NewRegistry()
	stub := newStub("stub")
	cause := errors.New("boom")
	stub.err = cause
	r.MustRegister(stub)

	_, err := r.Process("stub", schema.RawInput{"amount": "1"})

	var cerr *CalculationError
	if !errors.As(err, &cerr) {
		t.Fatalf("Process() error = %v, want *CalculationError", err)
	}
	if cerr.CalculatorType != "stub" {
		t.Errorf("CalculatorType = %q, want %q", cerr.CalculatorType, "stub")
	}
	if !errors.Is(err, cause) {
		t.Error("root cause not reachable through Unwrap")
	}
}

func TestRegistryRecoversPanic(t *testing.T) {
	r := NewRegistry()
	stub := newStub("stub")
	stub.panicMsg = "division by zero"
	r.MustRegister(stub)

	result, err := r.Process("stub", schema.RawInput{"amount": "1"})
	if result != nil {
		t.Errorf("result = %v, want nil after panic", result)
	}

	var cerr *CalculationError
	if !errors.As(err, &cerr) {
		t.Fatalf("Process() error = %v, want *CalculationError", err)
	}
}

func TestRegistryDuplicateRegistration(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(newStub("dup")); err != nil {
		t.Fatalf("first Register() error: %v", err)
	}
	if err := r.Register(newStub("dup")); err == nil {
		t.Fatal("second Register() succeeded, want duplicate error")
	}
}

func TestRegistryTypesOrder(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"c", "a", "b"} {
		r.MustRegister(newStub(name))
	}

	if diff := cmp.Diff([]string{"c", "a", "b"}, r.Types()); diff != "" {
		t.Errorf("Types() mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultRegistryProcess(t *testing.T) {
	r := NewDefaultRegistry(Settings{})

	want := []string{TypeLoanReadiness, TypeDTI, TypeAffordability, TypeCreditSimulator, TypeSavings}
	if diff := cmp.Diff(want, r.Types()); diff != "" {
		t.Errorf("Types() mismatch (-want +got):\n%s", diff)
	}

	result, err := r.Process(TypeDTI, schema.RawInput{
		"incomeFrequency": "monthly",
		"grossIncome":     "5000",
		"housingPayment":  "1000",
	})
	if err != nil {
		t.Fatalf("Process() error: %v", err)
	}
	dti, ok := result.(DTIResult)
	if !ok {
		t.Fatalf("Process() result = %T, want DTIResult", result)
	}
	if dti.Ratio != 20.0 {
		t.Errorf("Ratio = %v, want 20.0", dti.Ratio)
	}
}
