package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/balkashynov/studyplay/internal/loan"
	"github.com/balkashynov/studyplay/internal/logging"
	"github.com/balkashynov/studyplay/internal/models"
	"github.com/balkashynov/studyplay/internal/store"
	"github.com/balkashynov/studyplay/internal/timer"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type recordingPlayer struct {
	plays   int
	playing bool
}

func (p *recordingPlayer) Play()           { p.plays++; p.playing = true }
func (p *recordingPlayer) Stop()           { p.playing = false }
func (p *recordingPlayer) IsPlaying() bool { return p.playing }

type harness struct {
	kv     *store.MemoryKV
	clock  *fakeClock
	store  *store.Store
	player *recordingPlayer
	engine *Engine
}

func newHarness(t *testing.T, b models.Balance) *harness {
	t.Helper()
	h := &harness{
		kv:    store.NewMemoryKV(),
		clock: &fakeClock{now: time.Date(2025, 3, 12, 18, 0, 0, 0, time.UTC)},
	}
	h.restart()
	h.store.Update(func(st *models.State) { st.Balance = b })
	return h
}

// restart simulates a new process over the same storage.
func (h *harness) restart() *Engine {
	h.store = store.New(h.kv, logging.Discard())
	h.player = &recordingPlayer{}
	h.engine = New(h.store, h.clock, h.player, logging.Discard())
	return h.engine
}

func TestStudySettlement(t *testing.T) {
	tests := []struct {
		name        string
		start       models.Balance
		elapsed     time.Duration
		wantKind    OutcomeKind
		wantEarned  float64
		wantReduced float64
		wantBalance models.Balance
	}{
		{
			name:        "earns at factor",
			elapsed:     10*time.Minute + 40*time.Second,
			wantKind:    OutcomeStudySettled,
			wantEarned:  5,
			wantBalance: models.Balance{LeisureAvailable: 5},
		},
		{
			name:        "six minutes at half",
			elapsed:     6 * time.Minute,
			wantKind:    OutcomeStudySettled,
			wantEarned:  3,
			wantBalance: models.Balance{LeisureAvailable: 3},
		},
		{
			name:        "repays debt first",
			start:       models.Balance{DebtMinutes: 4},
			elapsed:     10 * time.Minute,
			wantKind:    OutcomeStudySettled,
			wantEarned:  3,
			wantReduced: 4,
			wantBalance: models.Balance{LeisureAvailable: 3},
		},
		{
			name:        "too short",
			start:       models.Balance{LeisureAvailable: 2},
			elapsed:     59 * time.Second,
			wantKind:    OutcomeTooShort,
			wantBalance: models.Balance{LeisureAvailable: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, tt.start)
			if err := h.engine.StartStudy(); err != nil {
				t.Fatalf("StartStudy() error: %v", err)
			}
			h.clock.Advance(tt.elapsed)

			out, err := h.engine.Stop()
			if err != nil {
				t.Fatalf("Stop() error: %v", err)
			}
			if out.Kind != tt.wantKind {
				t.Fatalf("Kind = %v, want %v", out.Kind, tt.wantKind)
			}
			if out.LeisureEarned != tt.wantEarned || out.DebtReduced != tt.wantReduced {
				t.Errorf("earned/reduced = %v/%v, want %v/%v", out.LeisureEarned, out.DebtReduced, tt.wantEarned, tt.wantReduced)
			}
			if got := h.engine.Balance(); got != tt.wantBalance {
				t.Errorf("Balance = %+v, want %+v", got, tt.wantBalance)
			}

			history := h.engine.History()
			if tt.wantKind == OutcomeTooShort {
				if len(history) != 0 {
					t.Errorf("history has %d entries after a too-short session", len(history))
				}
				return
			}
			if len(history) != 1 || history[0].Type != models.EntryStudy {
				t.Fatalf("history = %+v, want one study entry", history)
			}
			if history[0].LeisureFactor != 0.5 || history[0].ID == "" {
				t.Errorf("entry = %+v, want factor 0.5 and an id", history[0])
			}
			if history[0].NetBalanceAfter != tt.wantBalance.Net() {
				t.Errorf("NetBalanceAfter = %v, want %v", history[0].NetBalanceAfter, tt.wantBalance.Net())
			}
			if _, ok := h.store.LoadSnapshot(); ok {
				t.Error("snapshot left after Stop")
			}
		})
	}
}

func TestLeisureWholeMinutesThenFraction(t *testing.T) {
	h := newHarness(t, models.Balance{LeisureAvailable: 10})
	if err := h.engine.StartLeisure(10); err != nil {
		t.Fatalf("StartLeisure() error: %v", err)
	}

	h.clock.Advance(3*time.Minute + 30*time.Second)
	if _, out := h.engine.Tick(); out != nil {
		t.Fatalf("Tick() completed early: %+v", out)
	}
	if got := h.engine.Balance().LeisureAvailable; got != 7 {
		t.Errorf("after 3.5 min LeisureAvailable = %v, want 7", got)
	}
	snap, ok := h.store.LoadSnapshot()
	if !ok || snap.SettledMinutes != 3 {
		t.Errorf("snapshot = %+v, %v, want 3 settled minutes", snap, ok)
	}

	out, err := h.engine.Stop()
	if err != nil {
		t.Fatal(err)
	}
	if out.Kind != OutcomeLeisureSettled || out.LeisureUsed != 3.5 {
		t.Errorf("outcome = %+v, want 3.5 min used", out)
	}
	if got := h.engine.Balance().LeisureAvailable; got != 6.5 {
		t.Errorf("LeisureAvailable = %v, want 6.5", got)
	}
	entry := h.engine.History()[0]
	if entry.LeisureUsed != 3.5 || entry.NetBalanceBefore != 10 || entry.NetBalanceAfter != 6.5 {
		t.Errorf("entry = %+v, want used 3.5, net 10 → 6.5", entry)
	}
	if h.player.plays != 0 {
		t.Error("alarm played on manual stop")
	}
}

func TestLeisureStoppedImmediately(t *testing.T) {
	h := newHarness(t, models.Balance{LeisureAvailable: 5})
	_ = h.engine.StartLeisure(5)

	out, err := h.engine.Stop()
	if err != nil {
		t.Fatal(err)
	}
	if out.Kind != OutcomeLeisureStopped {
		t.Errorf("Kind = %v, want OutcomeLeisureStopped", out.Kind)
	}
	if got := h.engine.Balance().LeisureAvailable; got != 5 {
		t.Errorf("LeisureAvailable = %v, want 5", got)
	}
	if len(h.engine.History()) != 0 {
		t.Error("history written for unused leisure")
	}
}

func TestLeisureCompletionUsesLoanedFirst(t *testing.T) {
	h := newHarness(t, models.Balance{LeisureAvailable: 10, LoanedLeisure: 3})
	if err := h.engine.StartLeisure(5); err != nil {
		t.Fatal(err)
	}

	var done *Outcome
	for i := 0; i < 5*60 && done == nil; i++ {
		h.clock.Advance(time.Second)
		_, done = h.engine.Tick()
	}
	if done == nil || done.Kind != OutcomeLeisureCompleted {
		t.Fatalf("outcome = %+v, want completion", done)
	}
	want := models.Balance{LeisureAvailable: 8}
	if got := h.engine.Balance(); got != want {
		t.Errorf("Balance = %+v, want %+v", got, want)
	}
	if h.player.plays != 1 {
		t.Errorf("alarm plays = %d, want 1", h.player.plays)
	}
	if h.engine.Session().Mode != models.ModeIdle {
		t.Error("session still running after completion")
	}
	entry := h.engine.History()[0]
	if entry.LeisureUsed != 5 || entry.Recovered {
		t.Errorf("entry = %+v, want 5 used, not recovered", entry)
	}
}

func TestFractionalLeisureCompletionSettlesRemainder(t *testing.T) {
	h := newHarness(t, models.Balance{LeisureAvailable: 2.5})
	if _, err := h.engine.StartLeisureAll(); err != nil {
		t.Fatal(err)
	}
	h.clock.Advance(2*time.Minute + 30*time.Second)
	_, out := h.engine.Tick()
	if out == nil {
		t.Fatal("Tick() did not complete")
	}
	if got := h.engine.Balance(); got != (models.Balance{}) {
		t.Errorf("Balance = %+v, want zero", got)
	}
}

func TestStopAfterCountdownRanOutCompletes(t *testing.T) {
	h := newHarness(t, models.Balance{LeisureAvailable: 4})
	_ = h.engine.StartLeisure(1)
	h.clock.Advance(2 * time.Minute)

	out, err := h.engine.Stop()
	if err != nil {
		t.Fatal(err)
	}
	if out.Kind != OutcomeLeisureCompleted || out.LeisureUsed != 1 {
		t.Errorf("outcome = %+v, want completion of 1 min", out)
	}
	if got := h.engine.Balance().LeisureAvailable; got != 3 {
		t.Errorf("LeisureAvailable = %v, want 3", got)
	}
}

func TestStartLeisureValidation(t *testing.T) {
	h := newHarness(t, models.Balance{LeisureAvailable: 0.5})

	if err := h.engine.StartLeisure(1); !errors.Is(err, ErrNotEnoughLeisure) {
		t.Errorf("StartLeisure(1) error = %v, want %v", err, ErrNotEnoughLeisure)
	}
	if err := h.engine.StartLeisure(0.5); !errors.Is(err, timer.ErrInvalidDuration) {
		t.Errorf("StartLeisure(0.5) error = %v, want %v", err, timer.ErrInvalidDuration)
	}
	if _, err := h.engine.StartLeisureAll(); !errors.Is(err, ErrNotEnoughLeisure) {
		t.Errorf("StartLeisureAll() error = %v, want %v", err, ErrNotEnoughLeisure)
	}
	if h.engine.Session().Mode != models.ModeIdle {
		t.Error("session started despite validation errors")
	}
}

func TestStartLeisureSpendsLoanedWithNegativeNet(t *testing.T) {
	h := newHarness(t, models.Balance{DebtMinutes: 22, LoanedLeisure: 10})
	if err := h.engine.StartLeisure(10); err != nil {
		t.Errorf("StartLeisure(10) with 10 loaned: %v", err)
	}
}

func TestStartWhileActiveIsRejected(t *testing.T) {
	h := newHarness(t, models.Balance{LeisureAvailable: 10})
	_ = h.engine.StartStudy()

	if err := h.engine.StartLeisure(5); !errors.Is(err, timer.ErrSessionActive) {
		t.Errorf("StartLeisure() error = %v, want %v", err, timer.ErrSessionActive)
	}
	if err := h.engine.StartStudy(); !errors.Is(err, timer.ErrSessionActive) {
		t.Errorf("StartStudy() error = %v, want %v", err, timer.ErrSessionActive)
	}
	if _, err := h.engine.Stop(); err != nil {
		t.Fatal(err)
	}
	if _, err := h.engine.Stop(); !errors.Is(err, timer.ErrNoActiveSession) {
		t.Errorf("second Stop() error = %v, want %v", err, timer.ErrNoActiveSession)
	}
}

func TestRecoverFinishedLeisure(t *testing.T) {
	h := newHarness(t, models.Balance{LeisureAvailable: 10})
	if err := h.engine.StartLeisure(10); err != nil {
		t.Fatal(err)
	}

	h.clock.Advance(12 * time.Minute)
	e := h.restart()
	out, err := e.Recover()
	if err != nil {
		t.Fatalf("Recover() error: %v", err)
	}
	if out == nil || out.Kind != OutcomeLeisureCompleted || !out.Recovered {
		t.Fatalf("Recover() = %+v, want a recovered completion", out)
	}
	if got := e.Balance(); got != (models.Balance{}) {
		t.Errorf("Balance = %+v, want 10 minutes deducted", got)
	}
	history := e.History()
	if len(history) != 1 || !history[0].Recovered || history[0].LeisureUsed != 10 {
		t.Fatalf("history = %+v, want one recovered entry of 10 min", history)
	}
	if h.player.plays != 0 {
		t.Error("alarm played for a recovered session")
	}
	if _, ok := h.store.LoadSnapshot(); ok {
		t.Error("snapshot left after recovery")
	}

	e = h.restart()
	out, err = e.Recover()
	if out != nil || err != nil {
		t.Errorf("second Recover() = %+v, %v, want nothing", out, err)
	}
	if got := len(e.History()); got != 1 {
		t.Errorf("history entries after second recovery = %d, want 1", got)
	}
	if got := e.Balance(); got != (models.Balance{}) {
		t.Errorf("Balance after second recovery = %+v, want zero", got)
	}
}

func TestRecoverRunningLeisureCatchesUp(t *testing.T) {
	h := newHarness(t, models.Balance{LeisureAvailable: 10})
	_ = h.engine.StartLeisure(10)
	h.clock.Advance(2 * time.Minute)
	h.engine.Tick()

	h.clock.Advance(3*time.Minute + 30*time.Second)
	e := h.restart()
	out, err := e.Recover()
	if err != nil || out != nil {
		t.Fatalf("Recover() = %+v, %v, want a resumed session", out, err)
	}
	if got := e.Balance().LeisureAvailable; got != 5 {
		t.Errorf("LeisureAvailable = %v, want 5", got)
	}
	if r := e.Session(); r.Mode != models.ModeLeisure || r.Seconds != 270 {
		t.Errorf("Session() = %+v, want leisure with 270s left", r)
	}

	stop, err := e.Stop()
	if err != nil {
		t.Fatal(err)
	}
	if stop.LeisureUsed != 5.5 {
		t.Errorf("LeisureUsed = %v, want 5.5", stop.LeisureUsed)
	}
	if got := e.Balance().LeisureAvailable; got != 4.5 {
		t.Errorf("LeisureAvailable = %v, want 4.5", got)
	}
	if got := e.History()[0].NetBalanceBefore; got != 10 {
		t.Errorf("NetBalanceBefore = %v, want 10", got)
	}
}

func TestRecoverStudyKeepsOriginalStart(t *testing.T) {
	h := newHarness(t, models.Balance{})
	_ = h.engine.StartStudy()

	h.clock.Advance(25 * time.Minute)
	e := h.restart()
	if out, err := e.Recover(); out != nil || err != nil {
		t.Fatalf("Recover() = %+v, %v", out, err)
	}
	if r := e.Session(); r.Mode != models.ModeStudy || r.Seconds != 1500 {
		t.Fatalf("Session() = %+v, want study at 1500s", r)
	}

	out, err := e.Stop()
	if err != nil {
		t.Fatal(err)
	}
	if out.StudyMinutes != 25 || out.LeisureEarned != 12.5 {
		t.Errorf("outcome = %+v, want 25 min studied, 12.5 earned", out)
	}
}

func TestRecoverDiscardsInvalidSnapshot(t *testing.T) {
	h := newHarness(t, models.Balance{LeisureAvailable: 3})
	_ = h.kv.Set(store.SessionKey, `{"mode":"leisure"}`)

	e := h.restart()
	out, err := e.Recover()
	if out != nil || err != nil {
		t.Errorf("Recover() = %+v, %v, want nothing", out, err)
	}
	if e.Session().Mode != models.ModeIdle {
		t.Error("session resumed from an incomplete snapshot")
	}
	if _, ok, _ := h.kv.Get(store.SessionKey); ok {
		t.Error("incomplete snapshot not removed")
	}
}

func TestLoans(t *testing.T) {
	h := newHarness(t, models.Balance{})

	q, entry, err := h.engine.TakeLoan(10)
	if err != nil {
		t.Fatalf("TakeLoan(10) error: %v", err)
	}
	if q.RepaymentDue != 22 {
		t.Errorf("RepaymentDue = %v, want 22", q.RepaymentDue)
	}
	want := models.Balance{DebtMinutes: 22, LoanedLeisure: 10}
	if got := h.engine.Balance(); got != want {
		t.Errorf("Balance = %+v, want %+v", got, want)
	}
	if entry.Type != models.EntryLoan || entry.LoanInterestRate == nil || *entry.LoanInterestRate != 0.1 {
		t.Errorf("entry = %+v, want a loan entry with rate 0.1", entry)
	}
	if entry.NetBalanceBefore != 0 || entry.NetBalanceAfter != -22 {
		t.Errorf("entry net = %v → %v, want 0 → -22", entry.NetBalanceBefore, entry.NetBalanceAfter)
	}

	if _, _, err := h.engine.TakeLoan(20); !errors.Is(err, loan.ErrExceedsDebtLimit) {
		t.Errorf("TakeLoan(20) error = %v, want %v", err, loan.ErrExceedsDebtLimit)
	}
	if got := h.engine.Balance(); got != want {
		t.Errorf("Balance after refused loan = %+v, want %+v", got, want)
	}

	h.store.Update(func(st *models.State) { st.Balance = models.Balance{LeisureAvailable: 1} })
	if _, _, err := h.engine.TakeLoan(5); !errors.Is(err, loan.ErrPositiveBalance) {
		t.Errorf("TakeLoan() with positive balance error = %v, want %v", err, loan.ErrPositiveBalance)
	}
}

func TestLoanRefusedDuringSession(t *testing.T) {
	h := newHarness(t, models.Balance{})
	_ = h.engine.StartStudy()
	if _, _, err := h.engine.TakeLoan(5); !errors.Is(err, timer.ErrSessionActive) {
		t.Errorf("TakeLoan() during study error = %v, want %v", err, timer.ErrSessionActive)
	}
}

func TestClearHistoryBlockedInDebt(t *testing.T) {
	h := newHarness(t, models.Balance{})
	if _, _, err := h.engine.TakeLoan(5); err != nil {
		t.Fatal(err)
	}
	if err := h.engine.ClearHistory(); !errors.Is(err, ErrHistoryLocked) {
		t.Fatalf("ClearHistory() error = %v, want %v", err, ErrHistoryLocked)
	}
	if len(h.engine.History()) != 1 {
		t.Error("history changed by a refused clear")
	}

	h.store.Update(func(st *models.State) { st.Balance = models.Balance{} })
	if err := h.engine.ClearHistory(); err != nil {
		t.Fatalf("ClearHistory() error: %v", err)
	}
	if len(h.engine.History()) != 0 {
		t.Error("history not cleared")
	}
}

func TestUpdateConfig(t *testing.T) {
	h := newHarness(t, models.Balance{})
	cfg := models.Config{LeisureFactor: 0.25, LoanInterestRate: 0.2, MaxDebtLimit: 120}
	if err := h.engine.UpdateConfig(cfg); err != nil {
		t.Fatalf("UpdateConfig() error: %v", err)
	}

	bad := cfg
	bad.LeisureFactor = 2
	if err := h.engine.UpdateConfig(bad); !errors.Is(err, models.ErrInvalidConfig) {
		t.Errorf("UpdateConfig(invalid) error = %v, want %v", err, models.ErrInvalidConfig)
	}
	if got := h.engine.Config(); got != cfg {
		t.Errorf("Config = %+v, want %+v kept", got, cfg)
	}

	if got := h.engine.ResetConfig(); got != models.DefaultConfig() {
		t.Errorf("ResetConfig() = %+v, want defaults", got)
	}
}

func TestReset(t *testing.T) {
	h := newHarness(t, models.Balance{LeisureAvailable: 9})
	_ = h.engine.StartLeisure(5)
	h.engine.Reset()

	if h.engine.Session().Mode != models.ModeIdle {
		t.Error("session running after Reset")
	}
	if got := h.engine.Balance(); got != (models.Balance{}) {
		t.Errorf("Balance = %+v, want zero", got)
	}
	if _, ok := h.store.LoadSnapshot(); ok {
		t.Error("snapshot left after Reset")
	}
}

func TestDriveWithEngine(t *testing.T) {
	h := newHarness(t, models.Balance{LeisureAvailable: 2})
	_ = h.engine.StartLeisure(2)

	ticks := make(chan time.Time, 200)
	for i := 0; i < 200; i++ {
		ticks <- time.Time{}
	}
	close(ticks)
	step := func() []timer.Event {
		h.clock.Advance(time.Second)
		return h.engine.Step()
	}

	minutes := 0
	for ev := range timer.Drive(context.Background(), step, ticks) {
		if ev.Kind == timer.EventMinuteElapsed {
			minutes++
		}
	}
	if minutes != 2 {
		t.Errorf("minute events = %d, want 2", minutes)
	}
	if got := h.engine.Balance(); got != (models.Balance{}) {
		t.Errorf("Balance = %+v, want zero", got)
	}
}
