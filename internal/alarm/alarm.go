package alarm

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/balkashynov/studyplay/internal/logging"
	"github.com/balkashynov/studyplay/internal/settings"
)

// Player rings until stopped. Implementations never fail loudly: a player
// that cannot make a sound simply stays quiet.
type Player interface {
	Play()
	Stop()
	IsPlaying() bool
}

// New returns the player described by cfg, writing bells to w.
func New(cfg settings.AlarmSettings, w io.Writer, logger *slog.Logger) Player {
	if !cfg.Enabled || w == nil {
		return Nop{}
	}
	return NewBell(w, time.Duration(cfg.IntervalMS)*time.Millisecond, time.Duration(cfg.MaxSeconds)*time.Second, logger)
}

// Nop is a silent player.
type Nop struct{}

func (Nop) Play()           {}
func (Nop) Stop()           {}
func (Nop) IsPlaying() bool { return false }

// Bell rings the terminal bell every interval until Stop is called or
// maxDuration has passed.
type Bell struct {
	w           io.Writer
	interval    time.Duration
	maxDuration time.Duration
	logger      *slog.Logger

	mu   sync.Mutex
	stop chan struct{}
}

func NewBell(w io.Writer, interval, maxDuration time.Duration, logger *slog.Logger) *Bell {
	if interval <= 0 {
		interval = time.Second
	}
	if maxDuration <= 0 {
		maxDuration = 5 * time.Minute
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Bell{w: w, interval: interval, maxDuration: maxDuration, logger: logger}
}

// Play starts ringing. A bell that is already ringing starts over.
func (b *Bell) Play() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stop != nil {
		close(b.stop)
	}
	stop := make(chan struct{})
	b.stop = stop
	go b.ring(stop)
}

// Stop silences the bell.
func (b *Bell) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stop != nil {
		close(b.stop)
		b.stop = nil
	}
}

func (b *Bell) IsPlaying() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stop != nil
}

func (b *Bell) ring(stop chan struct{}) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Warn("alarm failed", "panic", r)
		}
		b.release(stop)
	}()

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()
	deadline := time.NewTimer(b.maxDuration)
	defer deadline.Stop()

	b.beep()
	for {
		select {
		case <-stop:
			return
		case <-deadline.C:
			b.logger.Info("alarm auto-stopped", "after", b.maxDuration)
			return
		case <-ticker.C:
			b.beep()
		}
	}
}

func (b *Bell) beep() {
	if _, err := io.WriteString(b.w, "\a"); err != nil {
		b.logger.Debug("alarm write failed", "err", err)
	}
}

// release clears the running state if stop still belongs to the current run.
func (b *Bell) release(stop chan struct{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stop == stop {
		close(b.stop)
		b.stop = nil
	}
}
