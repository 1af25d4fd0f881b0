package calculator

import (
	"github.com/drewTuzson/uqual-financial-calculators/pkg/schema"
)

// Calculator is the capability every calculator type satisfies. Sanitization
// and validation are shared behavior driven by the field specs (see
// pkg/schema); Calculate holds the type-specific scoring algorithm and is the
// only step allowed to fail.
type Calculator interface {
	// Type is the globally unique dispatch key.
	Type() string
	// Name is the human-readable display name.
	Name() string
	// Description is a one-paragraph summary for catalog listings.
	Description() string
	// Fields returns the declarative input schema, in presentation order.
	Fields() []schema.FieldSpec
	// Rules returns the cross-field validators, evaluated after all
	// per-field checks.
	Rules() []schema.Rule
	// Calculate maps a validated CleanInput to a calculator-specific result.
	Calculate(input schema.CleanInput) (any, error)
}

// Definition carries the static identity and schema of a calculator.
// Concrete calculators embed it and add their Calculate method. Definitions
// are built once at construction and never mutated.
type Definition struct {
	CalcType    string
	DisplayName string
	Summary     string
	FieldSpecs  []schema.FieldSpec
	CrossRules  []schema.Rule
}

func (d Definition) Type() string { return d.CalcType }

func (d Definition) Name() string { return d.DisplayName }

func (d Definition) Description() string { return d.Summary }

func (d Definition) Fields() []schema.FieldSpec { return d.FieldSpecs }

func (d Definition) Rules() []schema.Rule { return d.CrossRules }

// Settings holds the externally configured values the engine reads: the
// call-to-action link emitted on low-score recommendations.
type Settings struct {
	CTAURL  string
	CTAText string
}

const (
	defaultCTAURL  = "/consultation"
	defaultCTAText = "Schedule Free Consultation"
)

func (s Settings) withDefaults() Settings {
	if s.CTAURL == "" {
		s.CTAURL = defaultCTAURL
	}
	if s.CTAText == "" {
		s.CTAText = defaultCTAText
	}
	return s
}

// Recommendation is a single advisory entry attached to a result. Type is
// one of "cta", "improvement" or "action"; Action/ActionText are only set on
// CTA entries.
type Recommendation struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action,omitempty"`
	ActionText  string `json:"action_text,omitempty"`
	Priority    string `json:"priority"`
}
