package calculator

import (
	"errors"
	"math"

	"github.com/drewTuzson/uqual-financial-calculators/pkg/finance"
	"github.com/drewTuzson/uqual-financial-calculators/pkg/schema"
)

// TypeAffordability is the dispatch key of the affordability calculator.
const TypeAffordability = "affordability"

// Monthly PMI accrues at 0.5% of the loan amount annually, charged whenever
// the down payment is below 20%.
const pmiAnnualRate = 0.005

// Affordability derives the maximum affordable home price from income, debts
// and carrying costs, and projects alternate down-payment scenarios.
type Affordability struct {
	Definition
}

// NewAffordability constructs the affordability calculator.
func NewAffordability() *Affordability {
	return &Affordability{
		Definition: Definition{
			CalcType:    TypeAffordability,
			DisplayName: "Mortgage Affordability Plus Calculator",
			Summary:     "Determine how much house you can afford based on your income, debts, down payment, and current interest rates.",
			FieldSpecs: []schema.FieldSpec{
				{
					Name: "grossIncome", Label: "Annual Gross Income", Type: schema.FieldCurrency,
					Min: schema.Float64(0), Required: true, Placeholder: "75000",
					Help: "Your total annual income before taxes",
				},
				{
					Name: "existingDebt", Label: "Monthly Debt Payments", Type: schema.FieldCurrency,
					Min: schema.Float64(0), Placeholder: "500",
					Help: "Total monthly payments for existing debts (excluding housing)",
				},
				{
					Name: "downPayment", Label: "Down Payment Amount", Type: schema.FieldCurrency,
					Min: schema.Float64(0), Required: true, Placeholder: "20000",
					Help: "Amount you have available for down payment",
				},
				{
					Name: "interestRate", Label: "Interest Rate (%)", Type: schema.FieldNumber,
					Min: schema.Float64(0), Max: schema.Float64(20), Step: 0.1,
					Default: 4.5, Required: true,
					Help: "Current mortgage interest rate",
				},
				{
					Name: "loanTerm", Label: "Loan Term (Years)", Type: schema.FieldSelect,
					Default: "30", Required: true,
					Options: []schema.Option{
						{Value: "15", Label: "15 Years"},
						{Value: "30", Label: "30 Years"},
					},
				},
				{
					Name: "propertyTaxRate", Label: "Property Tax Rate (%)", Type: schema.FieldNumber,
					Min: schema.Float64(0), Max: schema.Float64(5), Step: 0.1, Default: 1.2,
					Help: "Annual property tax rate as percentage of home value",
				},
				{
					Name: "insuranceRate", Label: "Homeowners Insurance (Annual)", Type: schema.FieldCurrency,
					Min: schema.Float64(0), Default: float64(1200),
					Help: "Annual homeowners insurance cost",
				},
				{
					Name: "hoaFees", Label: "HOA Fees (Monthly)", Type: schema.FieldCurrency,
					Min: schema.Float64(0), Default: float64(0),
					Help: "Monthly homeowners association fees if applicable",
				},
			},
			CrossRules: []schema.Rule{
				func(input schema.CleanInput) error {
					if input.Float("grossIncome") <= 0 {
						return errors.New("Annual gross income must be greater than 0")
					}
					return nil
				},
			},
		},
	}
}

// AffordabilityScenario is one down-payment-percentage row of the scenario
// table.
type AffordabilityScenario struct {
	DownPaymentPercent float64 `json:"downPaymentPercent"`
	DownPayment        float64 `json:"downPayment"`
	HomePrice          float64 `json:"homePrice"`
	LoanAmount         float64 `json:"loanAmount"`
	MonthlyPayment     float64 `json:"monthlyPayment"`
	PMI                float64 `json:"pmi"`
}

// AffordabilityResult is the structured outcome of an affordability
// calculation. Dollar figures are rounded to whole dollars; the two
// percentages carry one decimal.
type AffordabilityResult struct {
	HomePrice          float64                 `json:"homePrice"`
	LoanAmount         float64                 `json:"loanAmount"`
	MonthlyPayment     float64                 `json:"monthlyPayment"`
	PrincipalInterest  float64                 `json:"principalInterest"`
	PropertyTax        float64                 `json:"propertyTax"`
	Insurance          float64                 `json:"insurance"`
	HOA                float64                 `json:"hoa"`
	PMI                float64                 `json:"pmi"`
	DTIRatio           float64                 `json:"dtiRatio"`
	DownPaymentPercent float64                 `json:"downPaymentPercent"`
	Scenarios          []AffordabilityScenario `json:"scenarios"`
}

// Calculate applies the 28/36 rule, then runs one property-tax feedback
// iteration: the first pass derives a home price ignoring property tax, the
// second subtracts the tax implied by that price and re-derives the loan.
func (c *Affordability) Calculate(input schema.CleanInput) (any, error) {
	monthlyIncome := input.Float("grossIncome") / 12
	existingDebt := input.Float("existingDebt")
	downPayment := input.Float("downPayment")
	interestRate := input.Float("interestRate")
	loanTermYears := atoiTerm(input.String("loanTerm"))
	propertyTaxRate := input.Float("propertyTaxRate")
	monthlyInsurance := input.Float("insuranceRate") / 12
	monthlyHOA := input.Float("hoaFees")

	maxHousingPayment := monthlyIncome * 0.28
	availableForHousing := monthlyIncome*0.36 - existingDebt
	affordablePayment := math.Min(maxHousingPayment, availableForHousing)

	// First pass without property tax.
	availableForPI := affordablePayment - monthlyInsurance - monthlyHOA
	loanAmount := finance.LoanAmount(availableForPI, interestRate, loanTermYears)
	homePrice := loanAmount + downPayment

	// Second pass with the tax implied by the first-pass price.
	monthlyPropertyTax := homePrice * propertyTaxRate / 100 / 12
	availableForPI = affordablePayment - monthlyInsurance - monthlyHOA - monthlyPropertyTax
	loanAmount = finance.LoanAmount(availableForPI, interestRate, loanTermYears)
	homePrice = loanAmount + downPayment

	if homePrice <= 0 {
		return nil, errors.New("income does not support a positive home price")
	}

	principalInterest := finance.MonthlyPayment(loanAmount, interestRate, loanTermYears)
	monthlyPropertyTax = homePrice * propertyTaxRate / 100 / 12
	totalMonthlyPayment := principalInterest + monthlyPropertyTax + monthlyInsurance + monthlyHOA

	dtiRatio := (totalMonthlyPayment + existingDebt) / monthlyIncome * 100

	downPaymentPercent := downPayment / homePrice * 100
	pmiAmount := 0.0
	if downPaymentPercent < 20 {
		pmiAmount = loanAmount * pmiAnnualRate / 12
		totalMonthlyPayment += pmiAmount
	}

	return AffordabilityResult{
		HomePrice:          math.Round(homePrice),
		LoanAmount:         math.Round(loanAmount),
		MonthlyPayment:     math.Round(totalMonthlyPayment),
		PrincipalInterest:  math.Round(principalInterest),
		PropertyTax:        math.Round(monthlyPropertyTax),
		Insurance:          math.Round(monthlyInsurance),
		HOA:                math.Round(monthlyHOA),
		PMI:                math.Round(pmiAmount),
		DTIRatio:           round1(dtiRatio),
		DownPaymentPercent: round1(downPaymentPercent),
		Scenarios:          c.scenarios(downPayment, interestRate, loanTermYears, propertyTaxRate, monthlyInsurance, monthlyHOA),
	}, nil
}

// scenarios fixes the stated down payment amount and solves the home price
// it represents at 5/10/15/20 percent down.
func (c *Affordability) scenarios(downPayment, interestRate float64, loanTermYears int, propertyTaxRate, monthlyInsurance, monthlyHOA float64) []AffordabilityScenario {
	percentages := []float64{5, 10, 15, 20}
	scenarios := make([]AffordabilityScenario, 0, len(percentages))

	for _, percent := range percentages {
		homePrice := downPayment / (percent / 100)
		loanAmount := homePrice - downPayment

		totalPayment := finance.MonthlyPayment(loanAmount, interestRate, loanTermYears) +
			homePrice*propertyTaxRate/100/12 +
			monthlyInsurance + monthlyHOA

		pmiAmount := 0.0
		if percent < 20 {
			pmiAmount = loanAmount * pmiAnnualRate / 12
			totalPayment += pmiAmount
		}

		scenarios = append(scenarios, AffordabilityScenario{
			DownPaymentPercent: percent,
			DownPayment:        downPayment,
			HomePrice:          math.Round(homePrice),
			LoanAmount:         math.Round(loanAmount),
			MonthlyPayment:     math.Round(totalPayment),
			PMI:                math.Round(pmiAmount),
		})
	}

	return scenarios
}

// atoiTerm parses the loan term select value. The options are fixed, so an
// unexpected value falls back to a 30-year term.
func atoiTerm(term string) int {
	if term == "15" {
		return 15
	}
	return 30
}
