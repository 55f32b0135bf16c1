package timer

import (
	"errors"
	"math"
	"time"

	"github.com/balkashynov/studyplay/internal/models"
)

var (
	ErrSessionActive   = errors.New("a session is already running")
	ErrNoActiveSession = errors.New("no session is running")
	ErrInvalidDuration = errors.New("invalid leisure duration")
)

// Reading is the state of a Machine at its last tick.
type Reading struct {
	Mode         models.Mode
	Seconds      int
	StartedAt    time.Time
	StartMinutes float64
	// Minutes counts whole minutes already reported as elapsed.
	Minutes int
}

// Elapsed returns the seconds that have passed since the session started.
func (r Reading) Elapsed() int {
	if r.Mode == models.ModeLeisure {
		return TotalSeconds(r.StartMinutes) - r.Seconds
	}
	return r.Seconds
}

// Machine is a study count-up or leisure countdown. It does nothing on its
// own: every reading is taken when Tick is called, from the injected clock,
// so a late tick catches up instead of drifting.
type Machine struct {
	clock   Clock
	reading Reading
}

// NewMachine returns an idle machine reading time from clock.
func NewMachine(clock Clock) *Machine {
	if clock == nil {
		clock = RealClock{}
	}
	return &Machine{clock: clock, reading: Reading{Mode: models.ModeIdle}}
}

// TotalSeconds is the length of a countdown of minutes.
func TotalSeconds(minutes float64) int {
	return int(math.Floor(minutes * 60))
}

// State returns the last reading.
func (m *Machine) State() Reading {
	return m.reading
}

// Active reports whether a session is running.
func (m *Machine) Active() bool {
	return m.reading.Mode != models.ModeIdle
}

// StartStudy begins a count-up now.
func (m *Machine) StartStudy() error {
	return m.ResumeStudy(m.clock.Now())
}

// ResumeStudy continues a count-up that began at startedAt. Minutes that
// elapsed before the call are not reported again.
func (m *Machine) ResumeStudy(startedAt time.Time) error {
	if m.Active() {
		return ErrSessionActive
	}
	elapsed := m.elapsedSince(startedAt)
	m.reading = Reading{
		Mode:      models.ModeStudy,
		Seconds:   elapsed,
		StartedAt: startedAt,
		Minutes:   elapsed / 60,
	}
	return nil
}

// StartLeisure begins a countdown of minutes now.
func (m *Machine) StartLeisure(minutes float64) error {
	_, err := m.ResumeLeisure(m.clock.Now(), minutes, 0)
	return err
}

// ResumeLeisure continues a countdown of startMinutes that began at
// startedAt, of which settled whole minutes were already reported. It
// returns the first step's events: one MinuteElapsed for each minute that
// passed since, and Completed if the countdown ran out meanwhile.
func (m *Machine) ResumeLeisure(startedAt time.Time, startMinutes float64, settled int) ([]Event, error) {
	if m.Active() {
		return nil, ErrSessionActive
	}
	total := TotalSeconds(startMinutes)
	if math.IsNaN(startMinutes) || math.IsInf(startMinutes, 0) || total < 1 {
		return nil, ErrInvalidDuration
	}
	settled = max(0, min(settled, total/60))
	m.reading = Reading{
		Mode:         models.ModeLeisure,
		Seconds:      total,
		StartedAt:    startedAt,
		StartMinutes: startMinutes,
		Minutes:      settled,
	}
	return m.Tick(), nil
}

// Tick advances the machine to the clock's current time and returns what
// happened, in order. An idle machine returns nil.
func (m *Machine) Tick() []Event {
	r := &m.reading
	switch r.Mode {
	case models.ModeStudy:
		elapsed := m.elapsedSince(r.StartedAt)
		r.Seconds = elapsed
		events := []Event{{Kind: EventTick, Mode: r.Mode, Seconds: r.Seconds}}
		return m.minuteEvents(events, elapsed)

	case models.ModeLeisure:
		total := TotalSeconds(r.StartMinutes)
		elapsed := min(m.elapsedSince(r.StartedAt), total)
		r.Seconds = total - elapsed
		events := []Event{{Kind: EventTick, Mode: r.Mode, Seconds: r.Seconds}}
		events = m.minuteEvents(events, elapsed)
		if r.Seconds <= 0 {
			events = append(events, Event{
				Kind:         EventCompleted,
				Mode:         r.Mode,
				StartMinutes: r.StartMinutes,
				Minutes:      r.Minutes,
			})
			m.reading = Reading{Mode: models.ModeIdle}
		}
		return events
	}
	return nil
}

// Stop ends the session and returns its last reading. It does not tick
// first; callers that want an up-to-date reading tick before stopping.
func (m *Machine) Stop() (Reading, error) {
	if !m.Active() {
		return Reading{Mode: models.ModeIdle}, ErrNoActiveSession
	}
	r := m.reading
	m.reading = Reading{Mode: models.ModeIdle}
	return r, nil
}

func (m *Machine) minuteEvents(events []Event, elapsed int) []Event {
	r := &m.reading
	for r.Minutes < elapsed/60 {
		r.Minutes++
		events = append(events, Event{
			Kind:    EventMinuteElapsed,
			Mode:    r.Mode,
			Seconds: r.Seconds,
			Minute:  r.Minutes,
		})
	}
	return events
}

func (m *Machine) elapsedSince(t time.Time) int {
	d := m.clock.Now().Sub(t)
	if d < 0 {
		return 0
	}
	return int(d / time.Second)
}
