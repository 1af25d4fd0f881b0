package calculator

import (
	"fmt"
	"sync"

	"github.com/drewTuzson/uqual-financial-calculators/pkg/schema"
)

// Registry stores calculators by type and orchestrates the
// sanitize → validate → calculate pipeline. The set is expected to be
// populated once at startup (registration takes the write lock so a host
// that reloads definitions stays safe), after which every read is
// lock-shared and Process is safe for unbounded concurrent use.
type Registry struct {
	mu          sync.RWMutex
	calculators map[string]Calculator
	order       []string
}

// NewRegistry creates an empty registry. Most callers want
// NewDefaultRegistry instead.
func NewRegistry() *Registry {
	return &Registry{
		calculators: make(map[string]Calculator),
	}
}

// NewDefaultRegistry builds a registry holding the five built-in calculator
// types. Hosts may register additional calculators before first use.
func NewDefaultRegistry(settings Settings) *Registry {
	r := NewRegistry()
	r.MustRegister(NewLoanReadiness(settings))
	r.MustRegister(NewDTI())
	r.MustRegister(NewAffordability())
	r.MustRegister(NewCreditSimulator(nil))
	r.MustRegister(NewSavings())
	return r
}

// Register adds a calculator under its Type. Duplicate types return an
// error.
func (r *Registry) Register(calc Calculator) error {
	if calc == nil {
		return fmt.Errorf("calculator: calculator is required")
	}
	calcType := calc.Type()
	if calcType == "" {
		return fmt.Errorf("calculator: calculator type is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.calculators[calcType]; exists {
		return fmt.Errorf("calculator: type %q already registered", calcType)
	}

	r.calculators[calcType] = calc
	r.order = append(r.order, calcType)
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(calc Calculator) {
	if err := r.Register(calc); err != nil {
		panic(err)
	}
}

// Get retrieves a calculator by type.
func (r *Registry) Get(calcType string) (Calculator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	calc, ok := r.calculators[calcType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCalculatorType, calcType)
	}
	return calc, nil
}

// Has reports whether a calculator type is registered.
func (r *Registry) Has(calcType string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.calculators[calcType]
	return ok
}

// Types returns the registered type keys in registration order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.order...)
}

// Calculators returns the registered calculators in registration order, for
// catalog listings.
func (r *Registry) Calculators() []Calculator {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Calculator, 0, len(r.order))
	for _, calcType := range r.order {
		out = append(out, r.calculators[calcType])
	}
	return out
}

// Process resolves the calculator for calcType and runs the full pipeline on
// a raw submission. Failures follow the package error taxonomy:
// ErrUnknownCalculatorType before any work, *ValidationError when the
// sanitized input violates constraints (calculation is never attempted), and
// *CalculationError for any failure (error or panic) inside Calculate, so
// a partial result can never escape.
func (r *Registry) Process(calcType string, raw schema.RawInput) (result any, err error) {
	calc, err := r.Get(calcType)
	if err != nil {
		return nil, err
	}

	clean := schema.Sanitize(calc.Fields(), raw)
	if v := schema.Validate(calc.Fields(), calc.Rules(), clean); !v.Valid {
		return nil, &ValidationError{Messages: v.Errors}
	}

	defer func() {
		if rec := recover(); rec != nil {
			result = nil
			err = &CalculationError{CalculatorType: calcType, Err: fmt.Errorf("panic: %v", rec)}
		}
	}()

	out, calcErr := calc.Calculate(clean)
	if calcErr != nil {
		return nil, &CalculationError{CalculatorType: calcType, Err: calcErr}
	}
	return out, nil
}
