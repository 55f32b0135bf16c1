package models

// State is the persisted application record: config, balance and history
// (newest first).
type State struct {
	Config  Config         `json:"config"`
	Balance Balance        `json:"balance"`
	History []HistoryEntry `json:"history"`
}

// DefaultState returns a zero balance, default config and empty history.
func DefaultState() State {
	return State{
		Config:  DefaultConfig(),
		History: []HistoryEntry{},
	}
}

// Clone returns a copy that shares no slices with s.
func (s State) Clone() State {
	out := s
	out.History = make([]HistoryEntry, len(s.History))
	copy(out.History, s.History)
	return out
}
