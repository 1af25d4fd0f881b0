// Command uqual-calc runs a calculator interactively in the terminal. It
// walks the chosen calculator's field specs as prompts, feeds the answers
// through the same pipeline the server uses, and prints the result as JSON.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/AlecAivazis/survey/v2"

	"github.com/drewTuzson/uqual-financial-calculators/pkg/calculator"
	"github.com/drewTuzson/uqual-financial-calculators/pkg/schema"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "uqual-calc:", err)
		os.Exit(1)
	}
}

func run() error {
	registry := calculator.NewDefaultRegistry(calculator.Settings{})

	calc, err := chooseCalculator(registry)
	if err != nil {
		return err
	}

	raw, err := promptFields(calc.Fields())
	if err != nil {
		return err
	}

	result, err := registry.Process(calc.Type(), raw)
	if err != nil {
		var verr *calculator.ValidationError
		if errors.As(err, &verr) {
			for _, msg := range verr.Messages {
				fmt.Fprintln(os.Stderr, " -", msg)
			}
			return errors.New("input failed validation")
		}
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func chooseCalculator(registry *calculator.Registry) (calculator.Calculator, error) {
	calculators := registry.Calculators()
	options := make([]string, 0, len(calculators))
	byName := make(map[string]calculator.Calculator, len(calculators))
	for _, calc := range calculators {
		options = append(options, calc.Name())
		byName[calc.Name()] = calc
	}

	var choice string
	prompt := &survey.Select{
		Message: "Which calculator?",
		Options: options,
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return nil, err
	}
	return byName[choice], nil
}

// promptFields turns each field spec into the matching survey prompt.
// Answers go back as strings; the engine's sanitizer does the coercion.
func promptFields(fields []schema.FieldSpec) (schema.RawInput, error) {
	raw := schema.RawInput{}

	for _, field := range fields {
		switch field.Type {
		case schema.FieldSelect, schema.FieldRadio:
			value, err := promptSelect(field)
			if err != nil {
				return nil, err
			}
			raw[field.Name] = value

		case schema.FieldCheckbox:
			var value bool
			if err := survey.AskOne(&survey.Confirm{Message: field.Label, Help: field.Help}, &value); err != nil {
				return nil, err
			}
			raw[field.Name] = value

		case schema.FieldCheckboxes:
			values, err := promptMultiSelect(field)
			if err != nil {
				return nil, err
			}
			raw[field.Name] = values

		default:
			value, err := promptValue(field)
			if err != nil {
				return nil, err
			}
			if value != "" {
				raw[field.Name] = value
			}
		}
	}

	return raw, nil
}

func promptValue(field schema.FieldSpec) (string, error) {
	prompt := &survey.Input{
		Message: field.Label,
		Help:    field.Help,
	}
	if field.Default != nil {
		prompt.Default = fmt.Sprint(field.Default)
	} else if field.Placeholder != "" {
		prompt.Help = joinHelp(field.Help, "e.g. "+field.Placeholder)
	}

	var value string
	err := survey.AskOne(prompt, &value, survey.WithValidator(fieldValidator(field)))
	return value, err
}

func promptSelect(field schema.FieldSpec) (string, error) {
	options := make([]string, 0, len(field.Options))
	byLabel := make(map[string]string, len(field.Options))
	defaultLabel := ""
	for _, opt := range field.Options {
		options = append(options, opt.Label)
		byLabel[opt.Label] = opt.Value
		if field.Default != nil && fmt.Sprint(field.Default) == opt.Value {
			defaultLabel = opt.Label
		}
	}

	prompt := &survey.Select{
		Message: field.Label,
		Options: options,
		Help:    field.Help,
	}
	if defaultLabel != "" {
		prompt.Default = defaultLabel
	}

	var choice string
	if err := survey.AskOne(prompt, &choice); err != nil {
		return "", err
	}
	return byLabel[choice], nil
}

func promptMultiSelect(field schema.FieldSpec) ([]string, error) {
	options := make([]string, 0, len(field.Options))
	byLabel := make(map[string]string, len(field.Options))
	for _, opt := range field.Options {
		options = append(options, opt.Label)
		byLabel[opt.Label] = opt.Value
	}

	var choices []string
	prompt := &survey.MultiSelect{
		Message: field.Label,
		Options: options,
		Help:    field.Help,
	}
	if err := survey.AskOne(prompt, &choices); err != nil {
		return nil, err
	}

	values := make([]string, 0, len(choices))
	for _, choice := range choices {
		values = append(values, byLabel[choice])
	}
	return values, nil
}

// fieldValidator enforces presence and numeric bounds at prompt time so the
// user gets immediate feedback instead of a validation list at the end.
func fieldValidator(field schema.FieldSpec) survey.Validator {
	return func(ans interface{}) error {
		value, _ := ans.(string)
		if value == "" {
			if field.Required {
				return fmt.Errorf("%s is required", field.Label)
			}
			return nil
		}

		if !field.Numeric() {
			return nil
		}

		number, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%s must be a number", field.Label)
		}
		if field.Min != nil && number < *field.Min {
			return fmt.Errorf("%s must be at least %v", field.Label, *field.Min)
		}
		if field.Max != nil && number > *field.Max {
			return fmt.Errorf("%s must be no more than %v", field.Label, *field.Max)
		}
		return nil
	}
}

func joinHelp(help, extra string) string {
	if help == "" {
		return extra
	}
	return help + " (" + extra + ")"
}
