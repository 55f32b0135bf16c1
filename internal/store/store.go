package store

import (
	"encoding/json"
	"log/slog"

	"github.com/balkashynov/studyplay/internal/logging"
	"github.com/balkashynov/studyplay/internal/models"
)

// Storage keys
const (
	StateKey   = "studyTrackerState"
	SessionKey = "studyTrackerActiveSession"
)

// Store persists the application state and the session snapshot as JSON
// blobs in a KV. It keeps the last known values in memory so that reads keep
// working and writes are not lost for the lifetime of the process when the
// KV fails.
type Store struct {
	kv     KV
	logger *slog.Logger

	state    models.State
	snapshot *models.SessionSnapshot
}

// New creates a store over kv. A nil kv means in-memory only.
func New(kv KV, logger *slog.Logger) *Store {
	if kv == nil {
		kv = NewMemoryKV()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Store{kv: kv, logger: logger, state: models.DefaultState()}
}

// Load returns the current state. Unavailable storage yields the last known
// in-memory state; corrupt data yields defaults.
func (s *Store) Load() models.State {
	raw, ok, err := s.kv.Get(StateKey)
	if err != nil {
		s.logger.Warn("storage not available, using in-memory state", "error", err)
		return s.state.Clone()
	}
	if !ok {
		return models.DefaultState()
	}

	st := models.DefaultState()
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		s.logger.Warn("invalid state in storage, using defaults", "error", err)
		return models.DefaultState()
	}
	return s.sanitize(st)
}

// Save persists st. Failures are logged, never returned.
func (s *Store) Save(st models.State) {
	s.state = st.Clone()
	data, err := json.Marshal(st)
	if err != nil {
		s.logger.Error("failed to encode state", "error", err)
		return
	}
	if err := s.kv.Set(StateKey, string(data)); err != nil {
		s.logger.Warn("storage not available, state not persisted", "error", err)
	}
}

// Update loads the state, applies fn and saves the result in one step.
func (s *Store) Update(fn func(*models.State)) models.State {
	st := s.Load()
	fn(&st)
	s.Save(st)
	return st.Clone()
}

// Reset replaces everything with defaults and drops the session snapshot.
func (s *Store) Reset() models.State {
	st := models.DefaultState()
	s.Save(st)
	s.ClearSnapshot()
	return st
}

func (s *Store) sanitize(st models.State) models.State {
	if err := st.Config.Validate(); err != nil {
		s.logger.Warn("invalid config in storage, using defaults", "error", err)
		st.Config = models.DefaultConfig()
	}
	st.Balance = st.Balance.Sanitize()
	if st.History == nil {
		st.History = []models.HistoryEntry{}
	}
	if len(st.History) > models.MaxHistoryEntries {
		st.History = st.History[:models.MaxHistoryEntries]
	}
	return st
}
