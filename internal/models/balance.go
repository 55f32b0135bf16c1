package models

import "math"

// Balance holds the user's time economy. All fields are minutes and are
// non-negative at rest.
type Balance struct {
	LeisureAvailable float64 `json:"leisureAvailable"` // earned leisure
	DebtMinutes      float64 `json:"debtMinutes"`      // study owed
	LoanedLeisure    float64 `json:"loanedLeisure"`    // borrowed principal, spendable
}

// Net returns leisureAvailable - debtMinutes. Loaned leisure is not part of
// the net balance.
func (b Balance) Net() float64 {
	return b.LeisureAvailable - b.DebtMinutes
}

// TotalAvailable returns how much leisure can be spent right now: earned
// leisure when the net balance is positive, plus everything borrowed.
func (b Balance) TotalAvailable() float64 {
	return math.Max(0, b.Net()) + b.LoanedLeisure
}

// Sanitize clamps negative or non-finite fields to zero.
func (b Balance) Sanitize() Balance {
	b.LeisureAvailable = clampMinutes(b.LeisureAvailable)
	b.DebtMinutes = clampMinutes(b.DebtMinutes)
	b.LoanedLeisure = clampMinutes(b.LoanedLeisure)
	return b
}

func clampMinutes(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
