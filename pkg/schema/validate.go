package schema

import (
	"fmt"
	"strconv"
)

// Rule is a calculator-specific cross-field predicate evaluated over the
// entire CleanInput after every per-field check has run. A nil return passes;
// a non-nil error contributes its message to the error list.
type Rule func(input CleanInput) error

// Validation is the structured outcome of Validate. Valid is true iff Errors
// is empty.
type Validation struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Validate checks a CleanInput against the field constraints and then the
// cross-field rules, in declaration order. All per-field errors are collected
// before the rules run; validation never mutates the input and never fails
// with anything other than the returned outcome.
func Validate(fields []FieldSpec, rules []Rule, input CleanInput) Validation {
	var errs []string

	for _, field := range fields {
		value, present := input[field.Name]

		if field.Required && isEmpty(value, present) {
			errs = append(errs, fmt.Sprintf("%s is required", field.Label))
			continue
		}
		if !present {
			continue
		}

		switch field.Type {
		case FieldNumber, FieldRange, FieldCurrency, FieldInteger:
			num := input.Float(field.Name)
			if field.Min != nil && num < *field.Min {
				errs = append(errs, fmt.Sprintf("%s must be at least %s", field.Label, formatBound(*field.Min)))
			}
			if field.Max != nil && num > *field.Max {
				errs = append(errs, fmt.Sprintf("%s must be no more than %s", field.Label, formatBound(*field.Max)))
			}
			if field.Type == FieldInteger {
				if _, ok := value.(int); !ok {
					errs = append(errs, fmt.Sprintf("%s must be a whole number", field.Label))
				}
			}

		case FieldSelect, FieldRadio:
			if key, ok := value.(string); !ok || !field.HasOption(key) {
				errs = append(errs, fmt.Sprintf("Invalid value for %s", field.Label))
			}
		}
	}

	for _, rule := range rules {
		if err := rule(input); err != nil {
			errs = append(errs, err.Error())
		}
	}

	return Validation{Valid: len(errs) == 0, Errors: errs}
}

// isEmpty treats missing values, empty strings, and empty lists as empty.
// Numeric zero and false are legitimate inputs (a borrower can have zero
// monthly debt) and never trip the required check.
func isEmpty(value any, present bool) bool {
	if !present {
		return true
	}
	switch v := value.(type) {
	case string:
		return v == ""
	case []string:
		return len(v) == 0
	default:
		return false
	}
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
