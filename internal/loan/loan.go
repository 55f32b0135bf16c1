package loan

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/balkashynov/studyplay/internal/models"
)

// MinimumMinutes is the smallest loan that can be taken.
const MinimumMinutes = 1

var (
	ErrBelowMinimum     = errors.New("loan below minimum")
	ErrExceedsDebtLimit = errors.New("loan exceeds debt limit")
	ErrPositiveBalance  = errors.New("loans are only available when net balance is not positive")
)

// Quote is a priced loan that has not been applied yet.
type Quote struct {
	Minutes          float64
	RepaymentDue     float64
	LeisureFactor    float64
	LoanInterestRate float64
	DebtAfter        float64
}

// Repayment returns the study minutes owed for borrowing loanMinutes of
// leisure: loanMinutes × (1/leisureFactor) × (1 + interestRate).
// A non-positive factor has no finite repayment and yields +Inf.
func Repayment(loanMinutes, leisureFactor, interestRate float64) float64 {
	if leisureFactor <= 0 || math.IsNaN(leisureFactor) {
		return math.Inf(1)
	}
	if !finite(loanMinutes) || !finite(leisureFactor) || !finite(interestRate) {
		return math.NaN()
	}
	m := decimal.NewFromFloat(loanMinutes)
	f := decimal.NewFromFloat(leisureFactor)
	r := decimal.NewFromFloat(interestRate)
	// divide last so 10 × (1/0.5) × 1.1 stays 22
	return m.Mul(decimal.NewFromInt(1).Add(r)).Div(f).InexactFloat64()
}

// NewQuote prices loanMinutes against the current balance and config.
// Fractional amounts are truncated to whole minutes. The debt limit is
// checked before the minimum, so an over-limit request reports the limit.
func NewQuote(loanMinutes float64, b models.Balance, cfg models.Config) (Quote, error) {
	if b.Net() > 0 {
		return Quote{}, ErrPositiveBalance
	}
	if !finite(loanMinutes) {
		return Quote{}, fmt.Errorf("%w: %v", ErrBelowMinimum, loanMinutes)
	}

	minutes := math.Trunc(loanMinutes)
	q := Quote{
		Minutes:          minutes,
		RepaymentDue:     Repayment(minutes, cfg.LeisureFactor, cfg.LoanInterestRate),
		LeisureFactor:    cfg.LeisureFactor,
		LoanInterestRate: cfg.LoanInterestRate,
	}
	if math.IsInf(q.RepaymentDue, 0) {
		q.DebtAfter = q.RepaymentDue
	} else {
		q.DebtAfter = decimal.NewFromFloat(b.DebtMinutes).Add(decimal.NewFromFloat(q.RepaymentDue)).InexactFloat64()
	}

	if q.DebtAfter > cfg.MaxDebtLimit {
		return q, fmt.Errorf("%w: %.1f > %.0f", ErrExceedsDebtLimit, q.DebtAfter, cfg.MaxDebtLimit)
	}
	if minutes < MinimumMinutes {
		return q, fmt.Errorf("%w: %v", ErrBelowMinimum, loanMinutes)
	}
	return q, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
