package store

import "github.com/balkashynov/studyplay/internal/models"

// AddHistoryEntry prepends entry and drops the oldest entries beyond the cap.
func (s *Store) AddHistoryEntry(entry models.HistoryEntry) {
	s.Update(func(st *models.State) {
		st.History = PrependHistory(st.History, entry)
	})
}

// ClearHistory removes every history entry.
func (s *Store) ClearHistory() {
	s.Update(func(st *models.State) {
		st.History = []models.HistoryEntry{}
	})
}

// PrependHistory returns history with entry in front, capped at
// models.MaxHistoryEntries.
func PrependHistory(history []models.HistoryEntry, entry models.HistoryEntry) []models.HistoryEntry {
	n := len(history) + 1
	if n > models.MaxHistoryEntries {
		n = models.MaxHistoryEntries
	}
	out := make([]models.HistoryEntry, 0, n)
	out = append(out, entry)
	out = append(out, history[:n-1]...)
	return out
}
