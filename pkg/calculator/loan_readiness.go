package calculator

import (
	"errors"
	"math"

	"github.com/drewTuzson/uqual-financial-calculators/pkg/finance"
	"github.com/drewTuzson/uqual-financial-calculators/pkg/schema"
)

// TypeLoanReadiness is the dispatch key of the loan readiness calculator.
const TypeLoanReadiness = "loan_readiness"

// Component weightings based on industry research.
const (
	weightCreditScore   = 0.30
	weightDTIRatio      = 0.30
	weightDownPayment   = 0.30
	weightDocumentation = 0.10
)

// requiredDocuments are the five documentation-readiness flags.
var requiredDocuments = []schema.Option{
	{Value: "tax_returns", Label: "2 years of tax returns"},
	{Value: "pay_stubs", Label: "Recent pay stubs"},
	{Value: "bank_statements", Label: "Bank statements"},
	{Value: "employment_verification", Label: "Employment verification"},
	{Value: "asset_documentation", Label: "Asset documentation"},
}

// LoanReadiness scores how prepared an applicant is to qualify for a
// mortgage: a weighted blend of credit, debt-to-income, down payment, and
// documentation readiness.
type LoanReadiness struct {
	Definition
	settings Settings
}

// NewLoanReadiness constructs the calculator. The settings provide the
// call-to-action link emitted on low scores.
func NewLoanReadiness(settings Settings) *LoanReadiness {
	return &LoanReadiness{
		settings: settings.withDefaults(),
		Definition: Definition{
			CalcType:    TypeLoanReadiness,
			DisplayName: "Loan Readiness Score Calculator",
			Summary:     "Get your comprehensive loan readiness assessment with our proprietary scoring system that evaluates multiple financial factors.",
			FieldSpecs: []schema.FieldSpec{
				{
					Name: "creditScore", Label: "Credit Score", Type: schema.FieldRange,
					Min: schema.Float64(300), Max: schema.Float64(850), Step: 1,
					Default: float64(650), Required: true,
					Help: "Your current FICO credit score (300-850)",
				},
				{
					Name: "monthlyIncome", Label: "Monthly Gross Income", Type: schema.FieldCurrency,
					Min: schema.Float64(0), Step: 100, Required: true, Placeholder: "5000",
					Help: "Your total monthly income before taxes",
				},
				{
					Name: "monthlyDebt", Label: "Monthly Debt Payments", Type: schema.FieldCurrency,
					Min: schema.Float64(0), Step: 50, Required: true, Placeholder: "1500",
					Help: "Total monthly debt obligations (credit cards, loans, etc.)",
				},
				{
					Name: "downPayment", Label: "Available Down Payment", Type: schema.FieldCurrency,
					Min: schema.Float64(0), Step: 1000, Required: true, Placeholder: "20000",
					Help: "Amount you have saved for down payment",
				},
				{
					Name: "homePrice", Label: "Target Home Price", Type: schema.FieldCurrency,
					Min: schema.Float64(0), Step: 5000, Required: true, Placeholder: "300000",
					Help: "Price range of homes you are considering",
				},
				{
					Name: "documentationReady", Label: "Documentation Readiness", Type: schema.FieldCheckboxes,
					Options: requiredDocuments,
					Help:    "Check all documents you have ready",
				},
			},
			CrossRules: []schema.Rule{
				func(input schema.CleanInput) error {
					if input.Float("monthlyIncome") <= 0 {
						return errors.New("Monthly income must be greater than 0")
					}
					return nil
				},
				func(input schema.CleanInput) error {
					if input.Float("monthlyDebt") >= input.Float("monthlyIncome") {
						return errors.New("Monthly debt cannot exceed monthly income")
					}
					return nil
				},
				func(input schema.CleanInput) error {
					if input.Float("homePrice") <= 0 {
						return errors.New("Home price must be greater than 0")
					}
					return nil
				},
			},
		},
	}
}

// ScoreComponents holds the four 0-100 component scores behind the final
// weighted score.
type ScoreComponents struct {
	CreditScore   float64 `json:"creditScore"`
	DTIRatio      float64 `json:"dtiRatio"`
	DownPayment   float64 `json:"downPayment"`
	Documentation float64 `json:"documentation"`
}

// LoanReadinessInsights are the derived affordability figures reported
// alongside the score.
type LoanReadinessInsights struct {
	MaxAffordablePrice       float64 `json:"maxAffordablePrice"`
	TargetPriceAffordable    bool    `json:"targetPriceAffordable"`
	RequiredIncome           float64 `json:"requiredIncome"`
	IncomeGap                float64 `json:"incomeGap"`
	EstimatedImprovementTime int     `json:"estimatedImprovementTime"`
}

// LoanReadinessSummary echoes the submitted inputs in presentation form.
type LoanReadinessSummary struct {
	CreditScore           int    `json:"creditScore"`
	MonthlyIncome         string `json:"monthlyIncome"`
	MonthlyDebt           string `json:"monthlyDebt"`
	DTIRatio              string `json:"dtiRatio"`
	DownPayment           string `json:"downPayment"`
	HomePrice             string `json:"homePrice"`
	DownPaymentPercent    string `json:"downPaymentPercent"`
	DocumentationComplete bool   `json:"documentationComplete"`
}

// LoanReadinessResult is the structured outcome of a loan readiness
// calculation.
type LoanReadinessResult struct {
	Score           int                   `json:"score"`
	Components      ScoreComponents       `json:"components"`
	Classification  Classification        `json:"classification"`
	Recommendations []Recommendation      `json:"recommendations"`
	Insights        LoanReadinessInsights `json:"insights"`
	InputSummary    LoanReadinessSummary  `json:"inputSummary"`
}

// Calculate runs the weighted scoring model.
func (c *LoanReadiness) Calculate(input schema.CleanInput) (any, error) {
	creditScore := input.Float("creditScore")
	monthlyIncome := input.Float("monthlyIncome")
	monthlyDebt := input.Float("monthlyDebt")
	downPayment := input.Float("downPayment")
	homePrice := input.Float("homePrice")
	documents := input.Strings("documentationReady")

	components := ScoreComponents{
		CreditScore:   creditComponent(creditScore),
		DTIRatio:      dtiComponent(monthlyDebt, monthlyIncome),
		DownPayment:   downPaymentComponent(downPayment, homePrice),
		Documentation: documentationComponent(documents),
	}

	score := int(math.Round(
		components.CreditScore*weightCreditScore +
			components.DTIRatio*weightDTIRatio +
			components.DownPayment*weightDownPayment +
			components.Documentation*weightDocumentation,
	))

	dtiRatio := monthlyDebt / monthlyIncome * 100
	downPaymentPercent := downPayment / homePrice * 100

	return LoanReadinessResult{
		Score:           score,
		Components:      components,
		Classification:  ClassifyScore(score),
		Recommendations: c.recommendations(score, components, creditScore, dtiRatio, downPaymentPercent),
		Insights:        c.insights(monthlyIncome, monthlyDebt, downPayment, homePrice, components),
		InputSummary: LoanReadinessSummary{
			CreditScore:           int(creditScore),
			MonthlyIncome:         formatCurrency(monthlyIncome, 0),
			MonthlyDebt:           formatCurrency(monthlyDebt, 0),
			DTIRatio:              formatPercentage(dtiRatio, 2),
			DownPayment:           formatCurrency(downPayment, 0),
			HomePrice:             formatCurrency(homePrice, 0),
			DownPaymentPercent:    formatPercentage(downPaymentPercent, 2),
			DocumentationComplete: len(documents) == len(requiredDocuments),
		},
	}, nil
}

// creditComponent maps the 300-850 FICO scale onto 0-100, with a bonus above
// 740 and a penalty below 580.
func creditComponent(creditScore float64) float64 {
	normalized := (creditScore - 300) / 550 * 100

	if creditScore >= 740 {
		normalized = math.Min(100, normalized*1.1)
	} else if creditScore < 580 {
		normalized *= 0.8
	}

	return math.Min(100, math.Max(0, math.Round(normalized)))
}

// dtiComponent scores the debt-to-income ratio inversely: lower is better.
func dtiComponent(monthlyDebt, monthlyIncome float64) float64 {
	if monthlyIncome <= 0 {
		return 0
	}

	ratio := monthlyDebt / monthlyIncome * 100
	switch {
	case ratio <= 20:
		return 100
	case ratio <= 28:
		return 90
	case ratio <= 36:
		return 75
	case ratio <= 43:
		return 50
	case ratio <= 50:
		return 25
	default:
		return math.Max(0, 100-ratio*2)
	}
}

// downPaymentComponent scores the down payment as a percentage of the target
// home price, with band boundaries at the common 20/10/5/3.5 percent
// thresholds.
func downPaymentComponent(downPayment, homePrice float64) float64 {
	if homePrice <= 0 {
		return 0
	}

	ratio := downPayment / homePrice * 100
	switch {
	case ratio >= 20:
		return math.Min(100, 80+ratio)
	case ratio >= 10:
		return 60 + (ratio-10)*2
	case ratio >= 5:
		return 40 + (ratio-5)*4
	case ratio >= 3.5:
		return 30 + (ratio-3.5)*6.67
	default:
		return ratio * 8.57
	}
}

// documentationComponent scores the share of the five required documents the
// applicant has ready.
func documentationComponent(documents []string) float64 {
	if len(documents) == 0 {
		return 0
	}

	have := make(map[string]bool, len(documents))
	for _, doc := range documents {
		have[doc] = true
	}

	completed := 0
	for _, required := range requiredDocuments {
		if have[required.Value] {
			completed++
		}
	}

	return math.Round(float64(completed) / float64(len(requiredDocuments)) * 100)
}

func (c *LoanReadiness) recommendations(score int, components ScoreComponents, creditScore, dtiRatio, downPaymentPercent float64) []Recommendation {
	var recs []Recommendation

	if score < 80 {
		recs = append(recs, Recommendation{
			Type:        "cta",
			Title:       "Get Professional Loan Readiness Help",
			Description: "Our experts can help you improve your loan readiness score and qualify for better rates. Schedule a free consultation today.",
			Action:      c.settings.CTAURL,
			ActionText:  c.settings.CTAText,
			Priority:    "high",
		})
	}

	if components.CreditScore < 70 {
		recs = append(recs, Recommendation{
			Type:        "improvement",
			Title:       "Improve Your Credit Score",
			Description: creditImprovementTip(creditScore),
			Priority:    "high",
		})
	}

	if components.DTIRatio < 70 {
		recs = append(recs, Recommendation{
			Type:        "improvement",
			Title:       "Lower Your Debt-to-Income Ratio",
			Description: dtiImprovementTip(dtiRatio),
			Priority:    "high",
		})
	}

	if components.DownPayment < 70 {
		recs = append(recs, Recommendation{
			Type:        "improvement",
			Title:       "Increase Your Down Payment",
			Description: downPaymentTip(downPaymentPercent),
			Priority:    "medium",
		})
	}

	if components.Documentation < 100 {
		recs = append(recs, Recommendation{
			Type:        "action",
			Title:       "Complete Your Documentation",
			Description: "Gather all required documents including tax returns, pay stubs, and bank statements to speed up your loan application.",
			Priority:    "low",
		})
	}

	return recs
}

func creditImprovementTip(creditScore float64) string {
	switch {
	case creditScore < 580:
		return "Your credit score needs significant improvement. Focus on paying off collections, reducing credit utilization below 30%, and making all payments on time. Consider credit repair services."
	case creditScore < 670:
		return "Work on reducing credit card balances, avoid new credit applications, and ensure all payments are made on time. Consider becoming an authorized user on a family member's account."
	default:
		return "Continue making on-time payments and keep credit utilization low. Small improvements can lead to better loan terms."
	}
}

func dtiImprovementTip(dtiRatio float64) string {
	switch {
	case dtiRatio > 43:
		return "Your DTI is too high for most conventional loans. Focus on paying down existing debts or increasing your income. Consider debt consolidation to lower monthly payments."
	case dtiRatio > 36:
		return "Your DTI is acceptable but not ideal. Pay down credit cards and avoid taking on new debt. Even small reductions can improve your loan terms."
	default:
		return "Your DTI is good but there's room for improvement. Lower debt payments will give you more borrowing power."
	}
}

func downPaymentTip(downPaymentPercent float64) string {
	switch {
	case downPaymentPercent < 5:
		return "You need at least 3.5% for an FHA loan or 5% for conventional loans. Consider down payment assistance programs or gifts from family."
	case downPaymentPercent < 10:
		return "A larger down payment reduces your monthly payment and may eliminate PMI. Consider saving for a few more months or exploring down payment assistance."
	case downPaymentPercent < 20:
		return "Reaching 20% down payment eliminates PMI and provides better loan terms. Calculate if waiting to save more is worth the potential home price increases."
	default:
		return "Your down payment is strong. Consider if you want to keep some funds for reserves or home improvements."
	}
}

// Rate and term assumed when projecting affordability in the insights.
const (
	insightRate      = 4.5
	insightTermYears = 30
)

func (c *LoanReadiness) insights(monthlyIncome, monthlyDebt, downPayment, homePrice float64, components ScoreComponents) LoanReadinessInsights {
	maxAffordable := maxAffordablePrice(monthlyIncome, monthlyDebt, downPayment)
	requiredIncome := requiredIncomeFor(homePrice, downPayment, monthlyDebt)

	return LoanReadinessInsights{
		MaxAffordablePrice:       maxAffordable,
		TargetPriceAffordable:    homePrice <= maxAffordable,
		RequiredIncome:           requiredIncome,
		IncomeGap:                math.Max(0, requiredIncome-monthlyIncome),
		EstimatedImprovementTime: estimateImprovementTime(components),
	}
}

// maxAffordablePrice applies the 28/36 rule, reserving a quarter of the
// affordable payment for taxes and insurance.
func maxAffordablePrice(monthlyIncome, monthlyDebt, downPayment float64) float64 {
	maxHousingPayment := monthlyIncome * 0.28
	availableForHousing := monthlyIncome*0.36 - monthlyDebt

	affordablePayment := math.Min(maxHousingPayment, availableForHousing)

	loanAmount := finance.LoanAmount(affordablePayment*0.75, insightRate, insightTermYears)
	return math.Round(loanAmount + downPayment)
}

// requiredIncomeFor inverts the 28/36 rule for the stated target home price.
func requiredIncomeFor(homePrice, downPayment, monthlyDebt float64) float64 {
	loanAmount := homePrice - downPayment
	monthlyPayment := finance.MonthlyPayment(loanAmount, insightRate, insightTermYears)

	// Estimated taxes and insurance add 25% to the payment.
	totalHousingPayment := monthlyPayment * 1.25

	requiredFromHousing := totalHousingPayment / 0.28
	requiredFromDebt := (totalHousingPayment + monthlyDebt) / 0.36

	return math.Round(math.Max(requiredFromHousing, requiredFromDebt))
}

// estimateImprovementTime is the heuristic months-to-improve: the slowest of
// the components that still need work.
func estimateImprovementTime(components ScoreComponents) int {
	months := 0

	if components.CreditScore < 70 {
		months = max(months, 6)
	}
	if components.DTIRatio < 70 {
		months = max(months, 3)
	}
	if components.DownPayment < 70 {
		months = max(months, 12)
	}
	if components.Documentation < 100 {
		months = max(months, 1)
	}

	return months
}
