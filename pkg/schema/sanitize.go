package schema

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// sanitizeText strips markup and surrounding whitespace from free-text
// values. The strict policy removes every element, leaving text content only.
func sanitizeText(raw string) string {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(textPolicy.Sanitize(raw))
}

// Sanitize coerces a raw submission into a CleanInput following each field's
// declared type. Coercion is lenient: malformed numeric strings degrade to
// zero rather than failing, unknown option values are dropped silently, and
// absent fields fall back to their declared default or are omitted. Sanitize
// never returns an error; constraint violations are Validate's job.
func Sanitize(fields []FieldSpec, raw RawInput) CleanInput {
	clean := make(CleanInput, len(fields))

	for _, field := range fields {
		value, ok := raw[field.Name]
		if !ok {
			if field.Default != nil {
				clean[field.Name] = field.Default
			}
			continue
		}

		switch field.Type {
		case FieldNumber, FieldRange, FieldCurrency:
			clean[field.Name] = coerceFloat(value)

		case FieldInteger:
			clean[field.Name] = coerceInt(value)

		case FieldCheckbox:
			clean[field.Name] = coerceBool(value)

		case FieldSelect, FieldRadio:
			key := sanitizeText(fmt.Sprint(value))
			if field.HasOption(key) {
				clean[field.Name] = key
			}
			// Unknown option values are omitted; a required field then
			// surfaces as missing at validation time.

		case FieldCheckboxes:
			if values, ok := coerceStrings(value); ok {
				clean[field.Name] = values
			}

		default:
			clean[field.Name] = sanitizeText(fmt.Sprint(value))
		}
	}

	return clean
}

func coerceFloat(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

func coerceInt(value any) int {
	return int(math.Trunc(coerceFloat(value)))
}

func coerceBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "", "0", "false", "no", "off":
			return false
		default:
			return true
		}
	default:
		return coerceFloat(value) != 0
	}
}

func coerceStrings(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, sanitizeText(item))
		}
		return out, true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, sanitizeText(fmt.Sprint(item)))
		}
		return out, true
	default:
		return nil, false
	}
}
