package engine

import (
	"github.com/balkashynov/studyplay/internal/models"
)

// Recover resumes the session recorded by a previous process, if any.
//
// A study session continues counting from its original start. A leisure
// session is charged for the whole minutes that passed while nothing was
// running; if its time ran out meanwhile it is settled in full, recorded as
// recovered, and returned as the outcome. Running Recover again is a no-op.
func (e *Engine) Recover() (*Outcome, error) {
	if e.machine.Active() {
		return nil, nil
	}
	snap, ok := e.store.LoadSnapshot()
	if !ok {
		return nil, nil
	}
	e.snapshot = snap

	switch snap.Mode {
	case models.ModeStudy:
		if err := e.machine.ResumeStudy(snap.StartTimestamp); err != nil {
			return nil, e.discardSnapshot(err)
		}
		e.logger.Info("study session resumed", "started_at", snap.StartTimestamp, "elapsed_seconds", e.machine.State().Seconds)
		return nil, nil

	default:
		events, err := e.machine.ResumeLeisure(snap.StartTimestamp, snap.LeisureStartMinutes, snap.SettledMinutes)
		if err != nil {
			return nil, e.discardSnapshot(err)
		}
		out := e.apply(events, true)
		if out == nil {
			e.logger.Info("leisure session resumed",
				"started_at", snap.StartTimestamp,
				"remaining_seconds", e.machine.State().Seconds,
				"settled_minutes", e.snapshot.SettledMinutes)
		}
		return out, nil
	}
}

func (e *Engine) discardSnapshot(err error) error {
	e.logger.Warn("discarding unrecoverable session", "error", err)
	e.store.ClearSnapshot()
	e.snapshot = models.SessionSnapshot{}
	return err
}
