package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/studyplay/internal/engine"
	"github.com/balkashynov/studyplay/internal/i18n"
	"github.com/balkashynov/studyplay/internal/models"
)

func TestOutcomeMessage(t *testing.T) {
	tr := i18n.New("en")
	tests := []struct {
		name string
		out  *engine.Outcome
		want string
	}{
		{"nil", nil, ""},
		{"too short", &engine.Outcome{Kind: engine.OutcomeTooShort}, "⚠️ Session too short (min 1 min)"},
		{"study", &engine.Outcome{Kind: engine.OutcomeStudySettled, LeisureEarned: 5}, "✅ Earned 5.0 min leisure"},
		{"study paying debt", &engine.Outcome{Kind: engine.OutcomeStudySettled, LeisureEarned: 2.5, DebtReduced: 5}, "✅ Earned 2.5 min leisure (5.0 min debt paid)"},
		{"stopped", &engine.Outcome{Kind: engine.OutcomeLeisureStopped}, "🎮 Leisure session stopped"},
		{"settled", &engine.Outcome{Kind: engine.OutcomeLeisureSettled, LeisureUsed: 6.5}, "🎮 Used 6.5 min leisure"},
		{"recovered", &engine.Outcome{Kind: engine.OutcomeLeisureCompleted, LeisureUsed: 10, Recovered: true}, "🎮 Used 10.0 min leisure (recovered)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutcomeMessage(tr, tt.out); got != tt.want {
				t.Errorf("OutcomeMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBalanceLines(t *testing.T) {
	tr := i18n.New("en")

	rows := BalanceLines(tr, models.Balance{LeisureAvailable: 0, DebtMinutes: 22, LoanedLeisure: 10})
	want := [][2]string{
		{"Net Balance", "-22 min"},
		{"Earned", "0 min"},
		{"Debt", "22 min"},
		{"Loaned", "10 min"},
		{"Available", "10 min"},
	}
	if len(rows) != len(want) {
		t.Fatalf("BalanceLines() = %d rows, want %d", len(rows), len(want))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d = %v, want %v", i, rows[i], want[i])
		}
	}

	rows = BalanceLines(tr, models.Balance{LeisureAvailable: 12.5})
	if rows[0][1] != "+12.5 min" {
		t.Errorf("net = %q, want %q", rows[0][1], "+12.5 min")
	}
	for _, row := range rows {
		if row[0] == "Loaned" {
			t.Error("loaned row shown with nothing borrowed")
		}
	}
}

func TestBalanceTextAligned(t *testing.T) {
	text := BalanceText(i18n.New("en"), models.Balance{LeisureAvailable: 5})
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	col := -1
	for _, line := range lines {
		i := strings.Index(line, "min")
		v := strings.LastIndex(line[:i-1], " ") + 1
		if col == -1 {
			col = v
		}
		if v != col && !strings.HasPrefix(line[v:], "+") {
			t.Errorf("line %q value at %d, want %d", line, v, col)
		}
	}
}

func submit(m PromptModel, value string) PromptModel {
	m.input.SetValue(value)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(PromptModel)
}

func TestPromptModel(t *testing.T) {
	tr := i18n.New("en")

	tests := []struct {
		name      string
		value     string
		completed bool
		all       bool
		minutes   float64
	}{
		{"plain minutes", "12", true, false, 12},
		{"duration", "1h", false, false, 0},
		{"within limit", "29.5", true, false, 29.5},
		{"all keyword", "all", true, true, 30},
		{"too small", "0.5", false, false, 0},
		{"garbage", "soon", false, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := submit(NewPromptModel(tr, 30), tt.value)
			if m.completed != tt.completed {
				t.Fatalf("completed = %v, want %v (err %q)", m.completed, tt.completed, m.validationErr)
			}
			if !tt.completed {
				if m.validationErr == "" {
					t.Error("expected a validation message")
				}
				return
			}
			if m.all != tt.all || m.minutes != tt.minutes {
				t.Errorf("got all=%v minutes=%v, want all=%v minutes=%v", m.all, m.minutes, tt.all, tt.minutes)
			}
		})
	}
}

func TestPromptModelKeys(t *testing.T) {
	tr := i18n.New("en")

	next, _ := NewPromptModel(tr, 8).Update(tea.KeyMsg{Type: tea.KeyTab})
	m := next.(PromptModel)
	if !m.completed || !m.all || m.minutes != 8 {
		t.Errorf("tab: completed=%v all=%v minutes=%v, want use all 8", m.completed, m.all, m.minutes)
	}

	next, _ = NewPromptModel(tr, 8).Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m := next.(PromptModel); !m.cancelled || m.completed {
		t.Errorf("esc: cancelled=%v completed=%v, want cancelled", m.cancelled, m.completed)
	}
}

func TestRenderBigClock(t *testing.T) {
	clock := renderBigClock(65, ColorStudy)
	if got := len(strings.Split(clock, "\n")); got != 5 {
		t.Errorf("renderBigClock() = %d lines, want 5", got)
	}
}
