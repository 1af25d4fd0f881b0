package schema

// FieldType enumerates the input kinds a calculator can declare.
type FieldType string

const (
	FieldNumber     FieldType = "number"
	FieldInteger    FieldType = "integer"
	FieldCurrency   FieldType = "currency"
	FieldRange      FieldType = "range"
	FieldSelect     FieldType = "select"
	FieldRadio      FieldType = "radio"
	FieldCheckbox   FieldType = "checkbox"
	FieldCheckboxes FieldType = "checkboxes"
	FieldText       FieldType = "text"
)

// Option is a single selectable value/label pair. Options are ordered; the
// declaration order is the presentation order.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FieldSpec is the declarative description of one input field. Options must
// be present exactly for select, radio and checkboxes fields; Min/Max are
// meaningful only for the numeric kinds.
type FieldSpec struct {
	Name        string    `json:"name"`
	Label       string    `json:"label"`
	Type        FieldType `json:"type"`
	Min         *float64  `json:"min,omitempty"`
	Max         *float64  `json:"max,omitempty"`
	Step        float64   `json:"step,omitempty"`
	Default     any       `json:"default,omitempty"`
	Required    bool      `json:"required"`
	Placeholder string    `json:"placeholder,omitempty"`
	Help        string    `json:"help,omitempty"`
	Options     []Option  `json:"options,omitempty"`
}

// Numeric reports whether the field carries a numeric value after
// sanitization.
func (f FieldSpec) Numeric() bool {
	switch f.Type {
	case FieldNumber, FieldCurrency, FieldRange, FieldInteger:
		return true
	default:
		return false
	}
}

// HasOption reports whether value is one of the declared option keys.
func (f FieldSpec) HasOption(value string) bool {
	for _, opt := range f.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}

// Float64 returns a pointer to v, for declaring optional bounds inline.
func Float64(v float64) *float64 {
	return &v
}

// RawInput is an untrusted field-name to value mapping, typically a decoded
// form submission. Values may be strings, numbers, booleans, slices, or
// absent.
type RawInput map[string]any

// CleanInput is a sanitized, type-coerced mapping ready for validation and
// calculation. Numeric fields hold float64 (int for integer fields), checkbox
// fields hold bool, option fields hold string, checkboxes fields hold
// []string.
type CleanInput map[string]any

// Float returns the named value as a float64, accepting the int values that
// integer fields produce. Missing or non-numeric entries yield 0.
func (c CleanInput) Float(name string) float64 {
	switch v := c[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

// Int returns the named value truncated to an int. Missing or non-numeric
// entries yield 0.
func (c CleanInput) Int(name string) int {
	switch v := c[name].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}

// Bool returns the named value as a bool, false when missing.
func (c CleanInput) Bool(name string) bool {
	v, _ := c[name].(bool)
	return v
}

// String returns the named value as a string, empty when missing.
func (c CleanInput) String(name string) string {
	v, _ := c[name].(string)
	return v
}

// Strings returns the named value as a string slice, nil when missing.
func (c CleanInput) Strings(name string) []string {
	v, _ := c[name].([]string)
	return v
}

// Has reports whether the named field is present.
func (c CleanInput) Has(name string) bool {
	_, ok := c[name]
	return ok
}
