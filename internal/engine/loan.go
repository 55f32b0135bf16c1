package engine

import (
	"github.com/balkashynov/studyplay/internal/loan"
	"github.com/balkashynov/studyplay/internal/models"
)

// QuoteLoan prices a loan of minutes without taking it.
func (e *Engine) QuoteLoan(minutes float64) (loan.Quote, error) {
	st := e.store.Load()
	return loan.NewQuote(minutes, st.Balance, st.Config)
}

// TakeLoan borrows minutes of leisure against future study. Loans are only
// offered between sessions.
func (e *Engine) TakeLoan(minutes float64) (loan.Quote, models.HistoryEntry, error) {
	if err := e.checkIdle(); err != nil {
		return loan.Quote{}, models.HistoryEntry{}, err
	}
	q, err := e.QuoteLoan(minutes)
	if err != nil {
		return q, models.HistoryEntry{}, err
	}

	netBefore := e.Balance().Net()
	after := e.ledger.ApplyLoan(q.Minutes, q.RepaymentDue)
	rate := q.LoanInterestRate
	entry := e.addHistory(models.HistoryEntry{
		Type:             models.EntryLoan,
		LoanMinutes:      q.Minutes,
		RepaymentDue:     q.RepaymentDue,
		LeisureFactor:    q.LeisureFactor,
		LoanInterestRate: &rate,
		NetBalanceBefore: netBefore,
		NetBalanceAfter:  after.Net(),
	})
	return q, entry, nil
}
