// Package finance holds the shared fixed-rate amortization math. All
// functions work in monthly compounding with monthlyRate =
// annualRatePercent/100/12 and numPayments = termYears*12, and none of them
// round: callers round final presented values so chained calls do not
// compound rounding error.
package finance

import "math"

// MonthlyPayment returns the fixed monthly payment that amortizes principal
// over termYears at the given annual rate. A zero rate degrades to straight
// division of the principal across the payments.
func MonthlyPayment(principal, annualRatePercent float64, termYears int) float64 {
	if annualRatePercent == 0 {
		return principal / (float64(termYears) * 12)
	}

	monthlyRate := annualRatePercent / 100 / 12
	numPayments := float64(termYears) * 12

	growth := math.Pow(1+monthlyRate, numPayments)
	return principal * (monthlyRate * growth) / (growth - 1)
}

// LoanAmount is the algebraic inverse of MonthlyPayment: the principal a
// fixed monthly payment supports over termYears at the given annual rate,
// with the same zero-rate degeneracy.
func LoanAmount(monthlyPayment, annualRatePercent float64, termYears int) float64 {
	if annualRatePercent == 0 {
		return monthlyPayment * float64(termYears) * 12
	}

	monthlyRate := annualRatePercent / 100 / 12
	numPayments := float64(termYears) * 12

	growth := math.Pow(1+monthlyRate, numPayments)
	return monthlyPayment * (growth - 1) / (monthlyRate * growth)
}

// RequiredDeposit solves the annuity-due formula for the monthly deposit
// that grows currentSavings to target over months, with deposits made at the
// start of each month. A zero rate degrades to the remaining shortfall spread
// evenly across the months.
func RequiredDeposit(target, currentSavings, annualRatePercent float64, months int) float64 {
	if months <= 0 {
		return target - currentSavings
	}
	if annualRatePercent == 0 {
		return (target - currentSavings) / float64(months)
	}

	monthlyRate := annualRatePercent / 100 / 12
	growth := math.Pow(1+monthlyRate, float64(months))

	return (target - currentSavings*growth) / ((growth - 1) / monthlyRate * (1 + monthlyRate))
}
