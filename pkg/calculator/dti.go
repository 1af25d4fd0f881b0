package calculator

import (
	"github.com/drewTuzson/uqual-financial-calculators/pkg/schema"
)

// TypeDTI is the dispatch key of the debt-to-income calculator.
const TypeDTI = "dti"

// DTI computes the back-end debt-to-income ratio from itemized monthly debt
// obligations.
type DTI struct {
	Definition
}

// NewDTI constructs the debt-to-income calculator.
func NewDTI() *DTI {
	return &DTI{
		Definition: Definition{
			CalcType:    TypeDTI,
			DisplayName: "Advanced DTI Calculator",
			Summary:     "Calculate your debt-to-income ratio to understand your borrowing capacity and loan qualification status.",
			FieldSpecs: []schema.FieldSpec{
				{
					Name: "incomeFrequency", Label: "Income Frequency", Type: schema.FieldSelect,
					Default: "annual", Required: true,
					Options: []schema.Option{
						{Value: "annual", Label: "Annual"},
						{Value: "monthly", Label: "Monthly"},
					},
				},
				{
					Name: "grossIncome", Label: "Gross Income", Type: schema.FieldCurrency,
					Min: schema.Float64(0), Required: true, Placeholder: "75000",
					Help: "Your gross income before taxes",
				},
				{
					Name: "housingPayment", Label: "Housing Payment", Type: schema.FieldCurrency,
					Min: schema.Float64(0), Placeholder: "1500",
					Help: "Current or proposed monthly housing payment (rent/mortgage)",
				},
				{
					Name: "creditCardMinimums", Label: "Credit Card Minimum Payments", Type: schema.FieldCurrency,
					Min: schema.Float64(0), Placeholder: "200",
					Help: "Total minimum monthly credit card payments",
				},
				{
					Name: "carLoans", Label: "Car Loan Payments", Type: schema.FieldCurrency,
					Min: schema.Float64(0), Placeholder: "400",
					Help: "Total monthly car loan payments",
				},
				{
					Name: "studentLoans", Label: "Student Loan Payments", Type: schema.FieldCurrency,
					Min: schema.Float64(0), Placeholder: "300",
					Help: "Total monthly student loan payments",
				},
				{
					Name: "personalLoans", Label: "Personal Loan Payments", Type: schema.FieldCurrency,
					Min: schema.Float64(0), Placeholder: "0",
					Help: "Total monthly personal loan payments",
				},
				{
					Name: "otherDebts", Label: "Other Monthly Debts", Type: schema.FieldCurrency,
					Min: schema.Float64(0), Placeholder: "0",
					Help: "Any other monthly debt obligations",
				},
			},
		},
	}
}

// DTIBreakdown itemizes the monthly debt total per category.
type DTIBreakdown struct {
	Housing       float64 `json:"housing"`
	CreditCards   float64 `json:"creditCards"`
	CarLoans      float64 `json:"carLoans"`
	StudentLoans  float64 `json:"studentLoans"`
	PersonalLoans float64 `json:"personalLoans"`
	Other         float64 `json:"other"`
}

// DTIResult is the structured outcome of a debt-to-income calculation.
type DTIResult struct {
	Ratio           float64      `json:"ratio"`
	Classification  string       `json:"classification"`
	MonthlyIncome   float64      `json:"monthlyIncome"`
	TotalDebt       float64      `json:"totalDebt"`
	Recommendations []string     `json:"recommendations"`
	Breakdown       DTIBreakdown `json:"breakdown"`
}

// Calculate totals the debt categories and expresses them as a percentage of
// monthly gross income. A zero income yields a zero ratio rather than an
// error; the field is required so that only happens for explicit zero input.
func (c *DTI) Calculate(input schema.CleanInput) (any, error) {
	monthlyIncome := input.Float("grossIncome")
	if input.String("incomeFrequency") == "annual" {
		monthlyIncome /= 12
	}

	breakdown := DTIBreakdown{
		Housing:       input.Float("housingPayment"),
		CreditCards:   input.Float("creditCardMinimums"),
		CarLoans:      input.Float("carLoans"),
		StudentLoans:  input.Float("studentLoans"),
		PersonalLoans: input.Float("personalLoans"),
		Other:         input.Float("otherDebts"),
	}
	totalDebt := breakdown.Housing + breakdown.CreditCards + breakdown.CarLoans +
		breakdown.StudentLoans + breakdown.PersonalLoans + breakdown.Other

	ratio := 0.0
	if monthlyIncome > 0 {
		ratio = totalDebt / monthlyIncome * 100
	}

	return DTIResult{
		Ratio:           round2(ratio),
		Classification:  classifyDTI(ratio),
		MonthlyIncome:   monthlyIncome,
		TotalDebt:       totalDebt,
		Recommendations: dtiRecommendations(ratio),
		Breakdown:       breakdown,
	}, nil
}

// classifyDTI maps the ratio onto the lender-facing bands. The thresholds
// follow the conventional 28/36/43 underwriting cutoffs; these labels are
// specific to this calculator and are not the shared score bands.
func classifyDTI(ratio float64) string {
	switch {
	case ratio <= 28:
		return "Excellent"
	case ratio <= 36:
		return "Good"
	case ratio <= 43:
		return "Acceptable"
	default:
		return "High Risk"
	}
}

func dtiRecommendations(ratio float64) []string {
	switch {
	case ratio > 43:
		return []string{
			"Your DTI is too high for most conventional loans. Focus on paying down existing debt.",
			"Consider debt consolidation to lower monthly payments.",
			"Look for ways to increase your income through side jobs or salary negotiation.",
		}
	case ratio > 36:
		return []string{
			"Your DTI is acceptable but could be better. Work on reducing credit card balances.",
			"Avoid taking on new debt before applying for a mortgage.",
		}
	case ratio > 28:
		return []string{
			"Your DTI is good. Small improvements could help you qualify for better rates.",
		}
	default:
		return []string{
			"Excellent DTI ratio! You should qualify for the best loan terms.",
			"Maintain your current financial discipline.",
		}
	}
}
