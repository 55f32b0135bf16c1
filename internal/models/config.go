package models

import (
	"fmt"
	"math"
)

// Config bounds
const (
	MinLeisureFactor    = 0.1
	MaxLeisureFactor    = 1.0
	MinLoanInterestRate = 0.0
	MaxLoanInterestRate = 0.5
	MinDebtLimit        = 0
	MaxDebtLimit        = 180
)

// Config is the economy configuration: how study converts to leisure and
// what loans cost.
type Config struct {
	LeisureFactor    float64 `json:"leisureFactor"`    // leisure minutes per study minute
	LoanInterestRate float64 `json:"loanInterestRate"` // 0.1 = 10% extra study on loans
	MaxDebtLimit     float64 `json:"maxDebtLimit"`     // study minutes
}

// DefaultConfig returns the factory economy settings.
func DefaultConfig() Config {
	return Config{
		LeisureFactor:    0.5,
		LoanInterestRate: 0.1,
		MaxDebtLimit:     60,
	}
}

// Validate reports the first out-of-range field. It never modifies c.
func (c Config) Validate() error {
	if !inRange(c.LeisureFactor, MinLeisureFactor, MaxLeisureFactor) {
		return fmt.Errorf("%w: leisureFactor must be between %.1f and %.1f", ErrInvalidConfig, MinLeisureFactor, MaxLeisureFactor)
	}
	if !inRange(c.LoanInterestRate, MinLoanInterestRate, MaxLoanInterestRate) {
		return fmt.Errorf("%w: loanInterestRate must be between %.1f and %.1f", ErrInvalidConfig, MinLoanInterestRate, MaxLoanInterestRate)
	}
	if !inRange(c.MaxDebtLimit, MinDebtLimit, MaxDebtLimit) {
		return fmt.Errorf("%w: maxDebtLimit must be between %d and %d", ErrInvalidConfig, MinDebtLimit, MaxDebtLimit)
	}
	return nil
}

func inRange(v, lo, hi float64) bool {
	return !math.IsNaN(v) && v >= lo && v <= hi
}
