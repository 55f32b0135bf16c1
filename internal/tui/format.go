package tui

import (
	"strings"

	"github.com/balkashynov/studyplay/internal/engine"
	"github.com/balkashynov/studyplay/internal/i18n"
	"github.com/balkashynov/studyplay/internal/models"
	"github.com/balkashynov/studyplay/internal/parser"
)

// OutcomeMessage is the one-line report of a finished session.
func OutcomeMessage(tr *i18n.Translator, out *engine.Outcome) string {
	if out == nil {
		return ""
	}
	switch out.Kind {
	case engine.OutcomeTooShort:
		return tr.T(i18n.SessionTooShort)
	case engine.OutcomeStudySettled:
		msg := tr.T(i18n.EarnedLeisure, out.LeisureEarned)
		if out.DebtReduced > 0 {
			msg += " " + tr.T(i18n.DebtPaid, out.DebtReduced)
		}
		return msg
	case engine.OutcomeLeisureStopped:
		return tr.T(i18n.LeisureStopped)
	case engine.OutcomeLeisureCompleted:
		msg := tr.T(i18n.UsedLeisure, out.LeisureUsed)
		if out.Recovered {
			msg += " (" + tr.T(i18n.Recovered) + ")"
		}
		return msg
	default:
		return tr.T(i18n.UsedLeisure, out.LeisureUsed)
	}
}

// ModeLabel names a session mode in the current language.
func ModeLabel(tr *i18n.Translator, mode models.Mode) string {
	switch mode {
	case models.ModeStudy:
		return tr.T(i18n.Studying)
	case models.ModeLeisure:
		return tr.T(i18n.Leisure)
	default:
		return tr.T(i18n.Ready)
	}
}

// BalanceLines lists the balance as label/value rows.
func BalanceLines(tr *i18n.Translator, b models.Balance) [][2]string {
	rows := [][2]string{
		{tr.T(i18n.NetBalance), signedMinutes(b.Net())},
		{tr.T(i18n.Earned), minutesText(b.LeisureAvailable)},
		{tr.T(i18n.Debt), minutesText(b.DebtMinutes)},
	}
	if b.LoanedLeisure > 0 {
		rows = append(rows, [2]string{tr.T(i18n.Loaned), minutesText(b.LoanedLeisure)})
	}
	rows = append(rows, [2]string{tr.T(i18n.Spendable), minutesText(b.TotalAvailable())})
	return rows
}

// BalanceText renders BalanceLines as aligned plain text.
func BalanceText(tr *i18n.Translator, b models.Balance) string {
	rows := BalanceLines(tr, b)
	width := 0
	for _, row := range rows {
		width = max(width, len([]rune(row[0])))
	}
	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(row[0])
		sb.WriteString(strings.Repeat(" ", width-len([]rune(row[0]))+2))
		sb.WriteString(row[1])
		sb.WriteString("\n")
	}
	return sb.String()
}

func minutesText(v float64) string {
	return parser.FormatMinutes(v) + " min"
}

func signedMinutes(v float64) string {
	if v > 0 {
		return "+" + minutesText(v)
	}
	return minutesText(v)
}
