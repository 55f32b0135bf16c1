package engine

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/balkashynov/studyplay/internal/alarm"
	"github.com/balkashynov/studyplay/internal/ledger"
	"github.com/balkashynov/studyplay/internal/logging"
	"github.com/balkashynov/studyplay/internal/models"
	"github.com/balkashynov/studyplay/internal/store"
	"github.com/balkashynov/studyplay/internal/timer"
)

// Engine runs one user's sessions against the persisted state. It owns the
// session timer and is not safe for concurrent use: callers step it from a
// single goroutine.
type Engine struct {
	store   *store.Store
	ledger  *ledger.Ledger
	machine *timer.Machine
	clock   timer.Clock
	alarm   alarm.Player
	logger  *slog.Logger

	// recovery record of the running session
	snapshot models.SessionSnapshot
	newID    func() string
}

// New returns an idle engine. Call Recover to pick up a session left
// running by a previous process.
func New(st *store.Store, clock timer.Clock, player alarm.Player, logger *slog.Logger) *Engine {
	if clock == nil {
		clock = timer.RealClock{}
	}
	if player == nil {
		player = alarm.Nop{}
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Engine{
		store:   st,
		ledger:  ledger.New(st, logger),
		machine: timer.NewMachine(clock),
		clock:   clock,
		alarm:   player,
		logger:  logger,
		newID:   uuid.NewString,
	}
}

// Balance returns the persisted balance.
func (e *Engine) Balance() models.Balance {
	return e.store.Load().Balance
}

// Config returns the persisted economy config.
func (e *Engine) Config() models.Config {
	return e.store.Load().Config
}

// History returns all history entries, newest first.
func (e *Engine) History() []models.HistoryEntry {
	return e.store.Load().History
}

// Session returns the timer reading as of the last step.
func (e *Engine) Session() timer.Reading {
	return e.machine.State()
}

// Alarm returns the player rung on completion.
func (e *Engine) Alarm() alarm.Player {
	return e.alarm
}

// UpdateConfig validates and stores cfg. An invalid config is rejected and
// the stored one kept.
func (e *Engine) UpdateConfig(cfg models.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	e.store.Update(func(st *models.State) { st.Config = cfg })
	e.logger.Info("config updated",
		"leisure_factor", cfg.LeisureFactor,
		"loan_interest_rate", cfg.LoanInterestRate,
		"max_debt_limit", cfg.MaxDebtLimit)
	return nil
}

// ResetConfig restores the default config.
func (e *Engine) ResetConfig() models.Config {
	cfg := models.DefaultConfig()
	e.store.Update(func(st *models.State) { st.Config = cfg })
	e.logger.Info("config reset")
	return cfg
}

// ClearHistory empties the history log. It refuses while the net balance is
// negative, so outstanding debt stays traceable.
func (e *Engine) ClearHistory() error {
	if net := e.Balance().Net(); net < 0 {
		return fmt.Errorf("%w (net balance %.1f)", ErrHistoryLocked, net)
	}
	e.store.ClearHistory()
	e.logger.Info("history cleared")
	return nil
}

// Reset discards any running session and restores defaults for everything.
func (e *Engine) Reset() {
	if e.machine.Active() {
		_, _ = e.machine.Stop()
	}
	e.alarm.Stop()
	e.snapshot = models.SessionSnapshot{}
	e.store.Reset()
	e.logger.Warn("all data reset")
}

func (e *Engine) addHistory(entry models.HistoryEntry) models.HistoryEntry {
	entry.ID = e.newID()
	entry.Date = e.clock.Now()
	e.store.AddHistoryEntry(entry)
	return entry
}
