package models

import "time"

// Mode is what the session timer is doing.
type Mode string

const (
	ModeIdle    Mode = "idle"
	ModeStudy   Mode = "study"
	ModeLeisure Mode = "leisure"
)

// Valid reports whether m names an active session mode.
func (m Mode) Valid() bool {
	return m == ModeStudy || m == ModeLeisure
}

// SessionSnapshot is the durable recovery record of the running session.
// It is written on start and at every elapsed-minute boundary and removed
// when the session ends.
type SessionSnapshot struct {
	Mode                Mode      `json:"mode"`
	StartTimestamp      time.Time `json:"startTimestamp"`
	LeisureStartMinutes float64   `json:"leisureStartMinutes"`
	SavedAt             time.Time `json:"savedAt"`

	// Whole minutes already deducted from the balance in real time.
	SettledMinutes int `json:"settledMinutes,omitempty"`
	// Net balance when the session began, used for the history entry.
	NetBalanceAtStart float64 `json:"netBalanceAtStart,omitempty"`
}

// Complete reports whether the snapshot carries everything recovery needs.
func (s SessionSnapshot) Complete() bool {
	if !s.Mode.Valid() || s.StartTimestamp.IsZero() {
		return false
	}
	if s.Mode == ModeLeisure && s.LeisureStartMinutes <= 0 {
		return false
	}
	return s.SettledMinutes >= 0
}
