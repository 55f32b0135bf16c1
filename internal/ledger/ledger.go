package ledger

import (
	"log/slog"
	"math"

	"github.com/shopspring/decimal"

	"github.com/balkashynov/studyplay/internal/models"
	"github.com/balkashynov/studyplay/internal/store"
)

// StudyResult is what a study settlement did.
type StudyResult struct {
	LeisureEarned float64
	DebtReduced   float64
}

// LeisureResult is what a leisure settlement did.
type LeisureResult struct {
	LeisureUsed float64
}

// Ledger applies balance transactions. Every operation is one
// load-transform-persist step; nothing spans two calls.
type Ledger struct {
	store  *store.Store
	logger *slog.Logger
}

// New returns a ledger over st.
func New(st *store.Store, logger *slog.Logger) *Ledger {
	return &Ledger{store: st, logger: logger}
}

// Balance returns the persisted balance.
func (l *Ledger) Balance() models.Balance {
	return l.store.Load().Balance
}

// SettleStudy pays debt first and converts the remaining study minutes into
// leisure at leisureFactor.
func (l *Ledger) SettleStudy(studyMinutes, leisureFactor float64) StudyResult {
	var res StudyResult
	st := l.store.Update(func(st *models.State) {
		st.Balance, res = ApplyStudy(st.Balance, studyMinutes, leisureFactor)
	})
	l.logger.Info("study settled",
		"minutes", studyMinutes,
		"debt_reduced", res.DebtReduced,
		"leisure_earned", res.LeisureEarned,
		"net", st.Balance.Net())
	return res
}

// SettleLeisure deducts minutesUsed, loaned leisure first.
func (l *Ledger) SettleLeisure(minutesUsed float64) LeisureResult {
	var res LeisureResult
	st := l.store.Update(func(st *models.State) {
		st.Balance, res = ApplyLeisure(st.Balance, minutesUsed)
	})
	l.logger.Info("leisure settled", "minutes", res.LeisureUsed, "net", st.Balance.Net(), "loaned", st.Balance.LoanedLeisure)
	return res
}

// DeductMinute takes one whole minute during a running leisure session.
func (l *Ledger) DeductMinute() models.Balance {
	st := l.store.Update(func(st *models.State) {
		st.Balance, _ = ApplyLeisure(st.Balance, 1)
	})
	l.logger.Debug("leisure minute deducted", "net", st.Balance.Net(), "loaned", st.Balance.LoanedLeisure)
	return st.Balance
}

// ApplyLoan adds borrowed leisure and the study owed for it. Limits are the
// caller's business.
func (l *Ledger) ApplyLoan(loanMinutes, repaymentDue float64) models.Balance {
	st := l.store.Update(func(st *models.State) {
		st.Balance = ApplyLoan(st.Balance, loanMinutes, repaymentDue)
	})
	l.logger.Info("loan applied", "minutes", loanMinutes, "repayment_due", repaymentDue, "debt", st.Balance.DebtMinutes)
	return st.Balance
}

// ApplyStudy is the pure form of SettleStudy. Each study minute either pays
// a minute of debt or earns leisure, never both.
func ApplyStudy(b models.Balance, studyMinutes, leisureFactor float64) (models.Balance, StudyResult) {
	var res StudyResult
	study := nonNegative(studyMinutes)
	debt := dec(b.DebtMinutes)

	if debt.IsPositive() {
		reduced := decimal.Min(study, debt)
		debt = debt.Sub(reduced)
		study = study.Sub(reduced)
		res.DebtReduced = toFloat(reduced)
	}

	leisure := dec(b.LeisureAvailable)
	if study.IsPositive() {
		earned := study.Mul(nonNegative(leisureFactor))
		leisure = leisure.Add(earned)
		res.LeisureEarned = toFloat(earned)
	}

	b.DebtMinutes = toFloat(debt)
	b.LeisureAvailable = toFloat(leisure)
	return b, res
}

// ApplyLeisure is the pure form of SettleLeisure: loaned leisure is used up
// before earned leisure, and neither goes below zero.
func ApplyLeisure(b models.Balance, minutesUsed float64) (models.Balance, LeisureResult) {
	used := nonNegative(minutesUsed)
	loaned := dec(b.LoanedLeisure)

	fromLoan := decimal.Min(used, loaned)
	loaned = loaned.Sub(fromLoan)
	shortfall := used.Sub(fromLoan)

	earned := dec(b.LeisureAvailable).Sub(shortfall)
	if earned.IsNegative() {
		earned = decimal.Zero
	}

	b.LoanedLeisure = toFloat(loaned)
	b.LeisureAvailable = toFloat(earned)
	return b, LeisureResult{LeisureUsed: toFloat(used)}
}

// ApplyLoan is the pure form of Ledger.ApplyLoan.
func ApplyLoan(b models.Balance, loanMinutes, repaymentDue float64) models.Balance {
	b.LoanedLeisure = toFloat(dec(b.LoanedLeisure).Add(nonNegative(loanMinutes)))
	b.DebtMinutes = toFloat(dec(b.DebtMinutes).Add(nonNegative(repaymentDue)))
	return b
}

func nonNegative(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return decimal.Zero
	}
	return dec(v)
}
