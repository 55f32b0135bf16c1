package engine

import (
	"fmt"
	"math"

	"github.com/balkashynov/studyplay/internal/ledger"
	"github.com/balkashynov/studyplay/internal/models"
	"github.com/balkashynov/studyplay/internal/timer"
)

// OutcomeKind says how a session ended.
type OutcomeKind int

const (
	// OutcomeStudySettled: study minutes were credited.
	OutcomeStudySettled OutcomeKind = iota + 1
	// OutcomeTooShort: study stopped before one whole minute, nothing credited.
	OutcomeTooShort
	// OutcomeLeisureSettled: leisure stopped early and the used time charged.
	OutcomeLeisureSettled
	// OutcomeLeisureStopped: leisure stopped before any time was used.
	OutcomeLeisureStopped
	// OutcomeLeisureCompleted: the countdown ran out.
	OutcomeLeisureCompleted
)

// Outcome is the result of a finished session.
type Outcome struct {
	Kind OutcomeKind
	Mode models.Mode

	StudyMinutes  float64
	LeisureEarned float64
	DebtReduced   float64
	LeisureUsed   float64

	// Recovered is set when the session finished while no process was running.
	Recovered bool
	// Entry is the history entry written, nil when nothing was settled.
	Entry   *models.HistoryEntry
	Balance models.Balance
}

// StartStudy begins a study session.
func (e *Engine) StartStudy() error {
	if err := e.checkIdle(); err != nil {
		return err
	}
	net := e.Balance().Net()
	if err := e.machine.StartStudy(); err != nil {
		return err
	}
	e.beginSnapshot(net)
	e.logger.Info("study started", "net", net)
	return nil
}

// StartLeisure begins a countdown of minutes. minutes must be at least one
// and no more than the spendable leisure.
func (e *Engine) StartLeisure(minutes float64) error {
	if err := e.checkIdle(); err != nil {
		return err
	}
	if math.IsNaN(minutes) || minutes < 1 {
		return fmt.Errorf("%w: need at least 1 minute, got %v", timer.ErrInvalidDuration, minutes)
	}

	b := e.Balance()
	if available := b.TotalAvailable(); minutes > available {
		return fmt.Errorf("%w: requested %.1f min, have %.1f min", ErrNotEnoughLeisure, minutes, available)
	}
	if err := e.machine.StartLeisure(minutes); err != nil {
		return err
	}
	e.beginSnapshot(b.Net())
	e.logger.Info("leisure started", "minutes", minutes, "net", b.Net(), "loaned", b.LoanedLeisure)
	return nil
}

// StartLeisureAll spends everything available in one session.
func (e *Engine) StartLeisureAll() (float64, error) {
	if err := e.checkIdle(); err != nil {
		return 0, err
	}
	available := e.Balance().TotalAvailable()
	if available < 1 {
		return 0, fmt.Errorf("%w: have %.1f min", ErrNotEnoughLeisure, available)
	}
	return available, e.StartLeisure(available)
}

// Tick steps the session timer to now and settles what it reports: a whole
// leisure minute per elapsed minute and the remainder on completion. The
// returned outcome is non-nil only when the session completed.
func (e *Engine) Tick() ([]timer.Event, *Outcome) {
	events := e.machine.Tick()
	return events, e.apply(events, false)
}

// Step is Tick without the outcome, for timer.Drive.
func (e *Engine) Step() []timer.Event {
	events, _ := e.Tick()
	return events
}

// Stop ends the running session and settles it. If the session had already
// run out, the completion is returned instead.
func (e *Engine) Stop() (*Outcome, error) {
	if !e.machine.Active() {
		return nil, timer.ErrNoActiveSession
	}
	if _, out := e.Tick(); out != nil {
		return out, nil
	}

	r, err := e.machine.Stop()
	if err != nil {
		return nil, err
	}
	e.store.ClearSnapshot()
	netBefore := e.snapshot.NetBalanceAtStart
	e.snapshot = models.SessionSnapshot{}

	switch r.Mode {
	case models.ModeStudy:
		return e.settleStudy(r), nil
	default:
		return e.settleLeisureStop(r, netBefore), nil
	}
}

func (e *Engine) settleStudy(r timer.Reading) *Outcome {
	minutes := r.Seconds / 60
	if minutes < 1 {
		e.logger.Info("study too short", "seconds", r.Seconds)
		return &Outcome{Kind: OutcomeTooShort, Mode: models.ModeStudy, Balance: e.Balance()}
	}

	st := e.store.Load()
	netBefore := st.Balance.Net()
	factor := st.Config.LeisureFactor
	res := e.ledger.SettleStudy(float64(minutes), factor)
	after := e.Balance()

	entry := e.addHistory(models.HistoryEntry{
		Type:             models.EntryStudy,
		DurationMinutes:  float64(minutes),
		LeisureEarned:    res.LeisureEarned,
		DebtReduced:      res.DebtReduced,
		LeisureFactor:    factor,
		NetBalanceBefore: netBefore,
		NetBalanceAfter:  after.Net(),
	})
	return &Outcome{
		Kind:          OutcomeStudySettled,
		Mode:          models.ModeStudy,
		StudyMinutes:  float64(minutes),
		LeisureEarned: res.LeisureEarned,
		DebtReduced:   res.DebtReduced,
		Entry:         &entry,
		Balance:       after,
	}
}

func (e *Engine) settleLeisureStop(r timer.Reading, netBefore float64) *Outcome {
	used := ledger.UsedMinutes(r.StartMinutes, r.Seconds)
	if used <= 0 {
		e.logger.Info("leisure stopped unused")
		return &Outcome{Kind: OutcomeLeisureStopped, Mode: models.ModeLeisure, Balance: e.Balance()}
	}

	// whole minutes were deducted as they elapsed
	if partial := ledger.Fraction(used); partial > 0 {
		e.ledger.SettleLeisure(partial)
	}
	after := e.Balance()

	entry := e.addHistory(models.HistoryEntry{
		Type:             models.EntryLeisure,
		DurationMinutes:  used,
		LeisureUsed:      used,
		NetBalanceBefore: netBefore,
		NetBalanceAfter:  after.Net(),
	})
	return &Outcome{
		Kind:        OutcomeLeisureSettled,
		Mode:        models.ModeLeisure,
		LeisureUsed: used,
		Entry:       &entry,
		Balance:     after,
	}
}

// apply settles the events of one machine step in order.
func (e *Engine) apply(events []timer.Event, recovered bool) *Outcome {
	var out *Outcome
	for _, ev := range events {
		switch ev.Kind {
		case timer.EventMinuteElapsed:
			if ev.Mode == models.ModeLeisure {
				e.ledger.DeductMinute()
				e.snapshot.SettledMinutes = ev.Minute
			}
			e.snapshot.SavedAt = e.clock.Now()
			e.store.SaveSnapshot(e.snapshot)

		case timer.EventCompleted:
			out = e.complete(ev, recovered)
		}
	}
	return out
}

func (e *Engine) complete(ev timer.Event, recovered bool) *Outcome {
	remainder := ledger.Sub(ev.StartMinutes, float64(ev.Minutes))
	if remainder > 0 {
		e.ledger.SettleLeisure(remainder)
	}
	netBefore := e.snapshot.NetBalanceAtStart
	e.store.ClearSnapshot()
	e.snapshot = models.SessionSnapshot{}
	after := e.Balance()

	entry := e.addHistory(models.HistoryEntry{
		Type:             models.EntryLeisure,
		DurationMinutes:  ev.StartMinutes,
		LeisureUsed:      ev.StartMinutes,
		NetBalanceBefore: netBefore,
		NetBalanceAfter:  after.Net(),
		Recovered:        recovered,
	})
	e.logger.Info("leisure completed", "minutes", ev.StartMinutes, "recovered", recovered, "net", after.Net())

	if !recovered {
		e.alarm.Play()
	}
	return &Outcome{
		Kind:        OutcomeLeisureCompleted,
		Mode:        models.ModeLeisure,
		LeisureUsed: ev.StartMinutes,
		Recovered:   recovered,
		Entry:       &entry,
		Balance:     after,
	}
}

func (e *Engine) checkIdle() error {
	if e.machine.Active() {
		return fmt.Errorf("%w: %s", timer.ErrSessionActive, e.machine.State().Mode)
	}
	return nil
}

func (e *Engine) beginSnapshot(net float64) {
	r := e.machine.State()
	e.snapshot = models.SessionSnapshot{
		Mode:                r.Mode,
		StartTimestamp:      r.StartedAt,
		LeisureStartMinutes: r.StartMinutes,
		SavedAt:             e.clock.Now(),
		SettledMinutes:      r.Minutes,
		NetBalanceAtStart:   net,
	}
	e.store.SaveSnapshot(e.snapshot)
}
