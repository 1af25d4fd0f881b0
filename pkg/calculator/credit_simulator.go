package calculator

import (
	"math/rand"
	"sync"
	"time"

	"github.com/drewTuzson/uqual-financial-calculators/pkg/schema"
)

// TypeCreditSimulator is the dispatch key of the credit score simulator.
const TypeCreditSimulator = "credit_simulator"

// actionImpact is the modelled effect of one improvement action: a point
// gain drawn uniformly from [MinPoints, MaxPoints] and the months it takes
// to materialize.
type actionImpact struct {
	MinPoints int
	MaxPoints int
	Months    int
}

// Impact ranges follow published FICO factor-weighting research.
var creditActionImpacts = map[string]actionImpact{
	"payOffCollection":    {MinPoints: 15, MaxPoints: 25, Months: 2},
	"reduceUtilization10": {MinPoints: 8, MaxPoints: 15, Months: 1},
	"reduceUtilization30": {MinPoints: 20, MaxPoints: 30, Months: 1},
	"payOnTime6Months":    {MinPoints: 5, MaxPoints: 15, Months: 6},
	"addAuthorizedUser":   {MinPoints: 10, MaxPoints: 20, Months: 2},
	"payOffCreditCard":    {MinPoints: 8, MaxPoints: 20, Months: 1},
}

var creditActionTitles = map[string]string{
	"payOffCollection":    "Pay Off Collections",
	"reduceUtilization10": "Reduce Utilization to 10%",
	"reduceUtilization30": "Reduce Utilization to 30%",
	"payOnTime6Months":    "6 Months On-Time Payments",
	"addAuthorizedUser":   "Authorized User Status",
	"payOffCreditCard":    "Pay Off Credit Cards",
}

var creditActionDescriptions = map[string]string{
	"payOffCollection":    "Paying off collection accounts can significantly improve your score.",
	"reduceUtilization10": "Keeping credit utilization below 10% shows excellent credit management.",
	"reduceUtilization30": "Reducing credit utilization below 30% is a key factor in credit scoring.",
	"payOnTime6Months":    "Consistent on-time payments demonstrate creditworthiness.",
	"addAuthorizedUser":   "Being added to an account with good payment history can boost your score.",
	"payOffCreditCard":    "Eliminating credit card debt improves your utilization ratio.",
}

// CreditSimulator projects a credit score after a set of improvement
// actions. The point gain per action is pseudorandom within its modelled
// range; everything else is deterministic.
type CreditSimulator struct {
	Definition

	// rand.Rand is not safe for concurrent use, and Calculate runs from
	// unboundedly many concurrent callers. All draws take the mutex.
	mu  sync.Mutex
	rng *rand.Rand
}

// NewCreditSimulator constructs the simulator. A nil rng gets a time-seeded
// source; tests inject a fixed seed for reproducible draws.
func NewCreditSimulator(rng *rand.Rand) *CreditSimulator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &CreditSimulator{
		rng: rng,
		Definition: Definition{
			CalcType:    TypeCreditSimulator,
			DisplayName: "Credit Score Improvement Simulator",
			Summary:     "Simulate how different actions can improve your credit score over time.",
			FieldSpecs: []schema.FieldSpec{
				{
					Name: "currentScore", Label: "Current Credit Score", Type: schema.FieldRange,
					Min: schema.Float64(300), Max: schema.Float64(850),
					Default: float64(650), Required: true,
				},
				{
					Name: "actions", Label: "Improvement Actions", Type: schema.FieldCheckboxes,
					Options: []schema.Option{
						{Value: "payOffCollection", Label: "Pay off collections"},
						{Value: "reduceUtilization10", Label: "Reduce credit utilization to 10%"},
						{Value: "reduceUtilization30", Label: "Reduce credit utilization to 30%"},
						{Value: "payOnTime6Months", Label: "Make on-time payments for 6 months"},
						{Value: "addAuthorizedUser", Label: "Become authorized user on aged account"},
						{Value: "payOffCreditCard", Label: "Pay off credit card balances"},
					},
				},
			},
		},
	}
}

// CreditAction is one simulated improvement action with its drawn impact.
type CreditAction struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Impact      int    `json:"impact"`
	Description string `json:"description"`
}

// CreditSimulationResult is the structured outcome of a simulation.
type CreditSimulationResult struct {
	CurrentScore   int            `json:"currentScore"`
	ProjectedScore int            `json:"projectedScore"`
	Improvement    int            `json:"improvement"`
	TimelineMonths int            `json:"timelineMonths"`
	Actions        []CreditAction `json:"actions"`
}

func (c *CreditSimulator) intn(n int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rng.Intn(n)
}

// Calculate sums the drawn point gains, caps the projection at 850, and
// reports a timeline of at least three months.
func (c *CreditSimulator) Calculate(input schema.CleanInput) (any, error) {
	currentScore := int(input.Float("currentScore"))
	projectedScore := currentScore
	timelineMonths := 0

	var details []CreditAction
	for _, action := range input.Strings("actions") {
		impact, ok := creditActionImpacts[action]
		if !ok {
			continue
		}

		points := impact.MinPoints + c.intn(impact.MaxPoints-impact.MinPoints+1)
		projectedScore += points
		if impact.Months > timelineMonths {
			timelineMonths = impact.Months
		}

		details = append(details, CreditAction{
			Type:        action,
			Title:       creditActionTitles[action],
			Impact:      points,
			Description: creditActionDescriptions[action],
		})
	}

	if projectedScore > 850 {
		projectedScore = 850
	}
	if timelineMonths < 3 {
		timelineMonths = 3
	}

	return CreditSimulationResult{
		CurrentScore:   currentScore,
		ProjectedScore: projectedScore,
		Improvement:    projectedScore - currentScore,
		TimelineMonths: timelineMonths,
		Actions:        details,
	}, nil
}
