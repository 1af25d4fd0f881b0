package calculator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCalculatorType is returned (wrapped) when Process is handed a
// type that was never registered. No work is done in that case.
var ErrUnknownCalculatorType = errors.New("calculator: unknown calculator type")

// ValidationError carries the ordered, human-readable messages produced by
// field and cross-field validation. It is always recoverable by the caller;
// re-prompt the user and retry.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "calculator: invalid input: " + strings.Join(e.Messages, ", ")
}

// CalculationError wraps a failure inside a calculator's Calculate step. The
// message is deliberately generic so internals do not leak to external
// callers; the root cause stays reachable through Unwrap for diagnostics.
type CalculationError struct {
	CalculatorType string
	Err            error
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("calculator: %s calculation failed", e.CalculatorType)
}

func (e *CalculationError) Unwrap() error { return e.Err }
