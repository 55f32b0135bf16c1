package ledger

import (
	"math"
	"testing"

	"github.com/balkashynov/studyplay/internal/logging"
	"github.com/balkashynov/studyplay/internal/models"
	"github.com/balkashynov/studyplay/internal/store"
)

func newTestLedger(b models.Balance) (*Ledger, *store.Store) {
	st := store.New(store.NewMemoryKV(), logging.Discard())
	st.Update(func(s *models.State) { s.Balance = b })
	return New(st, logging.Discard()), st
}

func TestSettleStudyScenarios(t *testing.T) {
	tests := []struct {
		name        string
		start       models.Balance
		minutes     float64
		factor      float64
		wantEarned  float64
		wantReduced float64
		wantBalance models.Balance
	}{
		{
			name:        "no debt",
			start:       models.Balance{},
			minutes:     10,
			factor:      0.5,
			wantEarned:  5,
			wantBalance: models.Balance{LeisureAvailable: 5},
		},
		{
			name:        "debt paid first",
			start:       models.Balance{DebtMinutes: 4},
			minutes:     10,
			factor:      0.5,
			wantEarned:  3,
			wantReduced: 4,
			wantBalance: models.Balance{LeisureAvailable: 3},
		},
		{
			name:        "debt larger than study",
			start:       models.Balance{LeisureAvailable: 1, DebtMinutes: 22},
			minutes:     10,
			factor:      0.5,
			wantReduced: 10,
			wantBalance: models.Balance{LeisureAvailable: 1, DebtMinutes: 12},
		},
		{
			name:        "fractional debt",
			start:       models.Balance{DebtMinutes: 2.2},
			minutes:     3,
			factor:      0.3,
			wantEarned:  0.24,
			wantReduced: 2.2,
			wantBalance: models.Balance{LeisureAvailable: 0.24},
		},
		{
			name:        "negative minutes ignored",
			start:       models.Balance{LeisureAvailable: 2, DebtMinutes: 1},
			minutes:     -5,
			factor:      0.5,
			wantBalance: models.Balance{LeisureAvailable: 2, DebtMinutes: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _ := newTestLedger(tt.start)
			res := l.SettleStudy(tt.minutes, tt.factor)
			if res.LeisureEarned != tt.wantEarned {
				t.Errorf("LeisureEarned = %v, want %v", res.LeisureEarned, tt.wantEarned)
			}
			if res.DebtReduced != tt.wantReduced {
				t.Errorf("DebtReduced = %v, want %v", res.DebtReduced, tt.wantReduced)
			}
			if got := l.Balance(); got != tt.wantBalance {
				t.Errorf("Balance = %+v, want %+v", got, tt.wantBalance)
			}
		})
	}
}

func TestDebtPriorityInvariant(t *testing.T) {
	for _, debt := range []float64{0, 0.5, 3, 10, 45.5} {
		for _, study := range []float64{1, 2, 10, 60} {
			b := models.Balance{DebtMinutes: debt, LeisureAvailable: 1}
			after, res := ApplyStudy(b, study, 0.5)

			wantReduced := math.Min(study, debt)
			if res.DebtReduced != wantReduced {
				t.Errorf("debt=%v study=%v: DebtReduced = %v, want %v", debt, study, res.DebtReduced, wantReduced)
			}
			wantEarned := Sub(study, wantReduced) * 0.5
			if math.Abs(res.LeisureEarned-wantEarned) > 1e-9 {
				t.Errorf("debt=%v study=%v: LeisureEarned = %v, want %v", debt, study, res.LeisureEarned, wantEarned)
			}
			if res.DebtReduced < study && after.DebtMinutes != 0 {
				t.Errorf("debt=%v study=%v: leisure earned while debt %v remains", debt, study, after.DebtMinutes)
			}
		}
	}
}

func TestSettleLeisureLoanedFirst(t *testing.T) {
	l, _ := newTestLedger(models.Balance{LeisureAvailable: 10, LoanedLeisure: 3})
	res := l.SettleLeisure(5)
	if res.LeisureUsed != 5 {
		t.Errorf("LeisureUsed = %v, want 5", res.LeisureUsed)
	}
	want := models.Balance{LeisureAvailable: 8, LoanedLeisure: 0}
	if got := l.Balance(); got != want {
		t.Errorf("Balance = %+v, want %+v", got, want)
	}
}

func TestSettleLeisureFloorsAtZero(t *testing.T) {
	l, _ := newTestLedger(models.Balance{LeisureAvailable: 1.5, LoanedLeisure: 0.5})
	l.SettleLeisure(4)
	want := models.Balance{}
	if got := l.Balance(); got != want {
		t.Errorf("Balance = %+v, want %+v", got, want)
	}
}

func TestDeductMinute(t *testing.T) {
	tests := []struct {
		name  string
		start models.Balance
		want  models.Balance
	}{
		{"from loaned", models.Balance{LeisureAvailable: 4, LoanedLeisure: 2}, models.Balance{LeisureAvailable: 4, LoanedLeisure: 1}},
		{"split loaned and earned", models.Balance{LeisureAvailable: 4, LoanedLeisure: 0.4}, models.Balance{LeisureAvailable: 3.4}},
		{"from earned", models.Balance{LeisureAvailable: 4}, models.Balance{LeisureAvailable: 3}},
		{"never negative", models.Balance{LeisureAvailable: 0.2}, models.Balance{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _ := newTestLedger(tt.start)
			if got := l.DeductMinute(); got != tt.want {
				t.Errorf("DeductMinute() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestApplyLoan(t *testing.T) {
	l, _ := newTestLedger(models.Balance{LeisureAvailable: 1, DebtMinutes: 3})
	got := l.ApplyLoan(10, 22)
	want := models.Balance{LeisureAvailable: 1, DebtMinutes: 25, LoanedLeisure: 10}
	if got != want {
		t.Errorf("ApplyLoan() = %+v, want %+v", got, want)
	}
	if persisted := l.Balance(); persisted != want {
		t.Errorf("persisted balance = %+v, want %+v", persisted, want)
	}
}

func TestNonNegativity(t *testing.T) {
	b := models.Balance{LeisureAvailable: 2, DebtMinutes: 1, LoanedLeisure: 1}
	ops := []func(models.Balance) models.Balance{
		func(b models.Balance) models.Balance { b, _ = ApplyLeisure(b, 100); return b },
		func(b models.Balance) models.Balance { b, _ = ApplyStudy(b, 100, 1); return b },
		func(b models.Balance) models.Balance { return ApplyLoan(b, -5, -5) },
		func(b models.Balance) models.Balance { b, _ = ApplyLeisure(b, math.NaN()); return b },
		func(b models.Balance) models.Balance { b, _ = ApplyStudy(b, math.Inf(1), 0.5); return b },
	}
	for i, op := range ops {
		b = op(b)
		if b.LeisureAvailable < 0 || b.DebtMinutes < 0 || b.LoanedLeisure < 0 {
			t.Fatalf("op %d produced negative balance %+v", i, b)
		}
	}
}

func TestFractionAndUsedMinutes(t *testing.T) {
	if got := Fraction(2.5); got != 0.5 {
		t.Errorf("Fraction(2.5) = %v, want 0.5", got)
	}
	if got := Fraction(3); got != 0 {
		t.Errorf("Fraction(3) = %v, want 0", got)
	}
	if got := UsedMinutes(10, 450); got != 2.5 {
		t.Errorf("UsedMinutes(10, 450) = %v, want 2.5", got)
	}
	if got := Sub(2.51, 2); got != 0.51 {
		t.Errorf("Sub(2.51, 2) = %v, want 0.51", got)
	}
}
