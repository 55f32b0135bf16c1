package engine

import (
	"time"

	"github.com/balkashynov/studyplay/internal/models"
)

// DayTotals sums one day's history.
type DayTotals struct {
	Study    float64
	Earned   float64
	Leisure  float64
	Borrowed float64
}

// Week is a Monday-to-Sunday summary of the history log.
type Week struct {
	Start time.Time
	// Days is indexed Monday = 0 … Sunday = 6.
	Days  [7]DayTotals
	Total DayTotals
}

// WeekStart returns midnight of the Monday of t's calendar week.
func WeekStart(t time.Time) time.Time {
	daysFromMonday := (int(t.Weekday()) + 6) % 7
	start := t.AddDate(0, 0, -daysFromMonday)
	return time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
}

// WeekSummary groups the entries dated in now's calendar week by weekday.
func WeekSummary(history []models.HistoryEntry, now time.Time) Week {
	w := Week{Start: WeekStart(now)}
	end := w.Start.AddDate(0, 0, 7)

	for _, entry := range history {
		date := entry.Date.In(now.Location())
		if date.Before(w.Start) || !date.Before(end) {
			continue
		}
		day := &w.Days[(int(date.Weekday())+6)%7]
		switch entry.Type {
		case models.EntryStudy:
			day.Study += entry.DurationMinutes
			day.Earned += entry.LeisureEarned
		case models.EntryLeisure:
			day.Leisure += entry.LeisureUsed
		case models.EntryLoan:
			day.Borrowed += entry.LoanMinutes
		}
	}

	for _, day := range w.Days {
		w.Total.Study += day.Study
		w.Total.Earned += day.Earned
		w.Total.Leisure += day.Leisure
		w.Total.Borrowed += day.Borrowed
	}
	return w
}
