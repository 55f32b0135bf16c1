package store

import (
	"encoding/json"

	"github.com/balkashynov/studyplay/internal/models"
)

// SaveSnapshot persists the running session's recovery record.
func (s *Store) SaveSnapshot(snap models.SessionSnapshot) {
	cp := snap
	s.snapshot = &cp
	data, err := json.Marshal(snap)
	if err != nil {
		s.logger.Error("failed to encode session", "error", err)
		return
	}
	if err := s.kv.Set(SessionKey, string(data)); err != nil {
		s.logger.Warn("failed to save active session", "error", err)
	}
}

// LoadSnapshot returns the persisted session, if any. Malformed or
// incomplete snapshots are discarded.
func (s *Store) LoadSnapshot() (models.SessionSnapshot, bool) {
	raw, ok, err := s.kv.Get(SessionKey)
	if err != nil {
		s.logger.Warn("failed to load active session", "error", err)
		if s.snapshot == nil {
			return models.SessionSnapshot{}, false
		}
		return *s.snapshot, true
	}
	if !ok {
		return models.SessionSnapshot{}, false
	}

	var snap models.SessionSnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil || !snap.Complete() {
		s.logger.Warn("discarding invalid session snapshot", "error", err, "raw", raw)
		s.ClearSnapshot()
		return models.SessionSnapshot{}, false
	}
	return snap, true
}

// ClearSnapshot deletes the session recovery record.
func (s *Store) ClearSnapshot() {
	s.snapshot = nil
	if err := s.kv.Remove(SessionKey); err != nil {
		s.logger.Warn("failed to clear active session", "error", err)
	}
}
