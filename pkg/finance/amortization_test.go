package finance

import (
	"math"
	"testing"
)

func TestMonthlyPayment_KnownValue(t *testing.T) {
	// $200,000 at 4.5% over 30 years is a well-known ~$1,013.37/month.
	got := MonthlyPayment(200000, 4.5, 30)
	if math.Abs(got-1013.37) > 0.01 {
		t.Fatalf("MonthlyPayment(200000, 4.5, 30) = %.4f, want ~1013.37", got)
	}
}

func TestMonthlyPayment_ZeroRate(t *testing.T) {
	got := MonthlyPayment(120000, 0, 10)
	if got != 1000 {
		t.Fatalf("MonthlyPayment(120000, 0, 10) = %v, want 1000", got)
	}
}

func TestLoanAmount_ZeroRate(t *testing.T) {
	got := LoanAmount(1000, 0, 10)
	if got != 120000 {
		t.Fatalf("LoanAmount(1000, 0, 10) = %v, want 120000", got)
	}
}

func TestAmortizationRoundTrip(t *testing.T) {
	cases := []struct {
		principal float64
		rate      float64
		years     int
	}{
		{100000, 3.0, 15},
		{250000, 4.5, 30},
		{500000, 6.75, 30},
		{75000, 9.99, 5},
	}

	for _, tc := range cases {
		payment := MonthlyPayment(tc.principal, tc.rate, tc.years)
		back := LoanAmount(payment, tc.rate, tc.years)
		if math.Abs(back-tc.principal) > 1e-6 {
			t.Errorf("round trip for (%v, %v, %d): got %v back", tc.principal, tc.rate, tc.years, back)
		}
	}
}

func TestRequiredDeposit_ZeroRate(t *testing.T) {
	got := RequiredDeposit(20000, 2000, 0, 36)
	if got != 500 {
		t.Fatalf("RequiredDeposit(20000, 2000, 0, 36) = %v, want 500", got)
	}
}

func TestRequiredDeposit_ReachesTarget(t *testing.T) {
	const (
		target  = 50000.0
		current = 5000.0
		rate    = 3.0
		months  = 48
	)

	deposit := RequiredDeposit(target, current, rate, months)

	// Simulate the annuity-due schedule: deposit at the start of each month,
	// then a month of growth on the whole balance.
	monthlyRate := rate / 100 / 12
	balance := current
	for i := 0; i < months; i++ {
		balance = (balance + deposit) * (1 + monthlyRate)
	}
	if math.Abs(balance-target) > 0.01 {
		t.Fatalf("deposit %v grows to %v, want %v", deposit, balance, target)
	}
}
