package calculator

import (
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/drewTuzson/uqual-financial-calculators/pkg/schema"
)

func TestCreditSimulatorImpactRanges(t *testing.T) {
	calc := NewCreditSimulator(rand.New(rand.NewSource(1)))

	clean := schema.Sanitize(calc.Fields(), schema.RawInput{
		"currentScore": "620",
		"actions":      []string{"payOffCollection", "reduceUtilization30", "payOnTime6Months"},
	})

	out, err := calc.Calculate(clean)
	if err != nil {
		t.Fatalf("Calculate() error: %v", err)
	}
	result := out.(CreditSimulationResult)

	if result.CurrentScore != 620 {
		t.Errorf("CurrentScore = %d, want 620", result.CurrentScore)
	}
	if len(result.Actions) != 3 {
		t.Fatalf("len(Actions) = %d, want 3", len(result.Actions))
	}

	wantOrder := []string{"payOffCollection", "reduceUtilization30", "payOnTime6Months"}
	total := 0
	for i, action := range result.Actions {
		if action.Type != wantOrder[i] {
			t.Errorf("Actions[%d].Type = %q, want %q (submission order)", i, action.Type, wantOrder[i])
		}
		impact := creditActionImpacts[action.Type]
		if action.Impact < impact.MinPoints || action.Impact > impact.MaxPoints {
			t.Errorf("Actions[%d] %q impact = %d, want within [%d, %d]",
				i, action.Type, action.Impact, impact.MinPoints, impact.MaxPoints)
		}
		if action.Title == "" || action.Description == "" {
			t.Errorf("Actions[%d] %q missing title or description", i, action.Type)
		}
		total += action.Impact
	}

	if result.ProjectedScore != 620+total {
		t.Errorf("ProjectedScore = %d, want current + drawn points = %d", result.ProjectedScore, 620+total)
	}
	if result.Improvement != result.ProjectedScore-result.CurrentScore {
		t.Errorf("Improvement = %d, want %d", result.Improvement, result.ProjectedScore-result.CurrentScore)
	}
	// payOnTime6Months dominates the timeline.
	if result.TimelineMonths != 6 {
		t.Errorf("TimelineMonths = %d, want 6", result.TimelineMonths)
	}
}

func TestCreditSimulatorCapsAt850(t *testing.T) {
	calc := NewCreditSimulator(rand.New(rand.NewSource(7)))

	clean := schema.Sanitize(calc.Fields(), schema.RawInput{
		"currentScore": "845",
		"actions":      []string{"reduceUtilization30", "payOffCollection"},
	})

	out, err := calc.Calculate(clean)
	if err != nil {
		t.Fatalf("Calculate() error: %v", err)
	}
	result := out.(CreditSimulationResult)

	if result.ProjectedScore != 850 {
		t.Errorf("ProjectedScore = %d, want capped at 850", result.ProjectedScore)
	}
	if result.Improvement != 5 {
		t.Errorf("Improvement = %d, want 5 after cap", result.Improvement)
	}
}

func TestCreditSimulatorConcurrentCalculate(t *testing.T) {
	registry := NewDefaultRegistry(Settings{})

	raw := schema.RawInput{
		"currentScore": "640",
		"actions":      []string{"payOffCollection", "payOffCreditCard"},
	}

	const goroutines = 16
	const iterations = 200

	var wg sync.WaitGroup
	errs := make(chan error, goroutines)

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				out, err := registry.Process(TypeCreditSimulator, raw)
				if err != nil {
					errs <- err
					return
				}
				result := out.(CreditSimulationResult)
				if result.ProjectedScore < result.CurrentScore || result.ProjectedScore > 850 {
					errs <- fmt.Errorf("projected score %d out of range", result.ProjectedScore)
					return
				}
			}
		}()
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent Process() failed: %v", err)
	}
}

func TestCreditSimulatorNoActions(t *testing.T) {
	calc := NewCreditSimulator(rand.New(rand.NewSource(1)))

	clean := schema.Sanitize(calc.Fields(), schema.RawInput{"currentScore": "700"})

	out, err := calc.Calculate(clean)
	if err != nil {
		t.Fatalf("Calculate() error: %v", err)
	}
	result := out.(CreditSimulationResult)

	if result.ProjectedScore != 700 || result.Improvement != 0 {
		t.Errorf("ProjectedScore/Improvement = %d/%d, want 700/0", result.ProjectedScore, result.Improvement)
	}
	// The floor applies even when nothing was selected.
	if result.TimelineMonths != 3 {
		t.Errorf("TimelineMonths = %d, want 3", result.TimelineMonths)
	}
	if len(result.Actions) != 0 {
		t.Errorf("Actions = %v, want none", result.Actions)
	}
}
