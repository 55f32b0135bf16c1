package commands

import (
	"testing"

	"github.com/balkashynov/studyplay/internal/i18n"
	"github.com/balkashynov/studyplay/internal/models"
)

func sampleHistory() []models.HistoryEntry {
	rate := 0.1
	return []models.HistoryEntry{
		{ID: "4", Type: models.EntryLeisure, LeisureUsed: 7},
		{ID: "3", Type: models.EntryStudy, DurationMinutes: 10, LeisureEarned: 5},
		{ID: "2", Type: models.EntryLoan, LoanMinutes: 10, RepaymentDue: 22, LoanInterestRate: &rate},
		{ID: "1", Type: models.EntryStudy, DurationMinutes: 30, LeisureEarned: 15},
	}
}

func TestFilterHistory(t *testing.T) {
	tests := []struct {
		name    string
		typ     string
		limit   int
		wantIDs []string
		wantErr bool
	}{
		{"all", "", 0, []string{"4", "3", "2", "1"}, false},
		{"study", "study", 0, []string{"3", "1"}, false},
		{"case insensitive", " Loan ", 0, []string{"2"}, false},
		{"limit", "", 2, []string{"4", "3"}, false},
		{"limit after filter", "study", 1, []string{"3"}, false},
		{"invalid type", "rest", 0, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := filterHistory(sampleHistory(), tt.typ, tt.limit)
			if (err != nil) != tt.wantErr {
				t.Fatalf("filterHistory() error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("filterHistory() = %d entries, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("entry %d = %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestEntryDetails(t *testing.T) {
	tr := i18n.New("en")
	h := sampleHistory()

	tests := []struct {
		entry models.HistoryEntry
		want  string
	}{
		{h[0], "7 min used"},
		{h[1], "10 min → 5 min leisure"},
		{h[2], "10 min borrowed, 22 min to repay (interest 10%)"},
	}
	for _, tt := range tests {
		if got := entryDetails(tr, tt.entry); got != tt.want {
			t.Errorf("entryDetails(%s) = %q, want %q", tt.entry.Type, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is..."},
		{"→→→→→→→→→→→→", 6, "→→→..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
