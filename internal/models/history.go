package models

import "time"

// MaxHistoryEntries caps the history log; older entries are dropped.
const MaxHistoryEntries = 50

// EntryType is the kind of transaction a history entry records.
type EntryType string

const (
	EntryStudy   EntryType = "study"
	EntryLeisure EntryType = "leisure"
	EntryLoan    EntryType = "loan"
)

// HistoryEntry is an immutable record of one settled transaction.
type HistoryEntry struct {
	ID   string    `json:"id"`
	Date time.Time `json:"date"`
	Type EntryType `json:"type"`

	// study and leisure
	DurationMinutes float64 `json:"durationMinutes,omitempty"`
	LeisureEarned   float64 `json:"leisureEarned,omitempty"`
	DebtReduced     float64 `json:"debtReduced,omitempty"`
	LeisureUsed     float64 `json:"leisureUsed,omitempty"`

	// loan
	LoanMinutes  float64 `json:"loanMinutes,omitempty"`
	RepaymentDue float64 `json:"repaymentDue,omitempty"`

	// settings snapshot at the time of the transaction
	LeisureFactor    float64  `json:"leisureFactor,omitempty"`
	LoanInterestRate *float64 `json:"loanInterestRate,omitempty"` // 0 is a valid rate

	NetBalanceBefore float64 `json:"netBalanceBefore"`
	NetBalanceAfter  float64 `json:"netBalanceAfter"`
	Recovered        bool    `json:"recovered,omitempty"`
}
