package calculator

import (
	"math"

	"github.com/drewTuzson/uqual-financial-calculators/pkg/finance"
	"github.com/drewTuzson/uqual-financial-calculators/pkg/schema"
)

// TypeSavings is the dispatch key of the down payment savings calculator.
const TypeSavings = "savings"

// The month-by-month projection stops after 50 years.
const maxProjectionMonths = 600

// Savings projects a down payment savings plan with monthly compound
// interest.
type Savings struct {
	Definition
}

// NewSavings constructs the savings calculator.
func NewSavings() *Savings {
	return &Savings{
		Definition: Definition{
			CalcType:    TypeSavings,
			DisplayName: "Down Payment Savings Calculator",
			Summary:     "Plan your down payment savings strategy with compound interest calculations.",
			FieldSpecs: []schema.FieldSpec{
				{
					Name: "homePrice", Label: "Target Home Price", Type: schema.FieldCurrency,
					Required: true, Placeholder: "300000",
				},
				{
					Name: "downPaymentPercent", Label: "Down Payment Percentage", Type: schema.FieldRange,
					Min: schema.Float64(3.5), Max: schema.Float64(30), Step: 0.5,
					Default: float64(20),
				},
				{
					Name: "currentSavings", Label: "Current Savings", Type: schema.FieldCurrency,
					Placeholder: "5000",
				},
				{
					Name: "monthlyDeposit", Label: "Monthly Savings", Type: schema.FieldCurrency,
					Required: true, Placeholder: "500",
				},
				{
					Name: "interestRate", Label: "Interest Rate (%)", Type: schema.FieldNumber,
					Min: schema.Float64(0), Max: schema.Float64(10), Step: 0.1,
					Default: 2.5,
				},
				{
					Name: "timelineMonths", Label: "Target Timeline (Months)", Type: schema.FieldInteger,
					Min: schema.Float64(1), Max: schema.Float64(600), Default: 36,
				},
			},
		},
	}
}

// SavingsProjection is returned when the goal is reachable within the
// projection horizon.
type SavingsProjection struct {
	CanReachGoal        bool    `json:"canReachGoal"`
	MonthsToGoal        int     `json:"monthsToGoal"`
	YearsToGoal         float64 `json:"yearsToGoal"`
	FinalAmount         float64 `json:"finalAmount"`
	TargetAmount        float64 `json:"targetAmount"`
	TotalInterestEarned float64 `json:"totalInterestEarned"`
}

// SavingsShortfall is returned when the goal is out of reach at the current
// deposit rate: it states the monthly deposit that would hit the target
// within the requested timeline instead.
type SavingsShortfall struct {
	CanReachGoal           bool    `json:"canReachGoal"`
	RequiredMonthlyPayment float64 `json:"requiredMonthlyPayment"`
	TargetAmount           float64 `json:"targetAmount"`
	CurrentShortfall       float64 `json:"currentShortfall"`
}

// Calculate walks the balance forward month by month: each month earns
// interest, then receives the deposit. The walk is capped at 600 months; if
// the target is still unmet the result switches to the shortfall shape.
func (c *Savings) Calculate(input schema.CleanInput) (any, error) {
	targetAmount := input.Float("homePrice") * input.Float("downPaymentPercent") / 100
	currentSavings := input.Float("currentSavings")
	monthlyDeposit := input.Float("monthlyDeposit")
	annualRatePercent := input.Float("interestRate")
	monthlyRate := annualRatePercent / 100 / 12

	balance := currentSavings
	months := 0
	for balance < targetAmount && months < maxProjectionMonths {
		balance = balance*(1+monthlyRate) + monthlyDeposit
		months++
	}

	if balance < targetAmount {
		timelineMonths := input.Int("timelineMonths")
		required := finance.RequiredDeposit(targetAmount, currentSavings, annualRatePercent, timelineMonths)

		return SavingsShortfall{
			CanReachGoal:           false,
			RequiredMonthlyPayment: math.Round(required),
			TargetAmount:           targetAmount,
			CurrentShortfall:       targetAmount - currentSavings,
		}, nil
	}

	return SavingsProjection{
		CanReachGoal:        true,
		MonthsToGoal:        months,
		YearsToGoal:         round1(float64(months) / 12),
		FinalAmount:         math.Round(balance),
		TargetAmount:        targetAmount,
		TotalInterestEarned: math.Round(balance - currentSavings - monthlyDeposit*float64(months)),
	}, nil
}
