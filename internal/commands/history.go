package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/studyplay/internal/engine"
	"github.com/balkashynov/studyplay/internal/i18n"
	"github.com/balkashynov/studyplay/internal/models"
	"github.com/balkashynov/studyplay/internal/parser"
)

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"log"},
	Short:   "List settled sessions and loans",
	Long:    "List the most recent transactions, newest first, with optional filters by type",
	Args:    cobra.NoArgs,
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		typ, _ := cmd.Flags().GetString("type")
		limit, _ := cmd.Flags().GetInt("limit")
		asJSON, _ := cmd.Flags().GetBool("json")

		entries, err := filterHistory(a.engine.History(), typ, limit)
		if err != nil {
			printError(err)
			return
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(entries); err != nil {
				printError(err)
			}
			return
		}

		if len(entries) == 0 {
			fmt.Println(a.tr.T(i18n.NoHistory))
			return
		}

		// Print table header
		fmt.Printf("%-16s %-8s %-52s %s\n", "DATE", "TYPE", "DETAILS", strings.ToUpper(a.tr.T(i18n.Balance)))
		fmt.Println(strings.Repeat("-", 90))

		for _, e := range entries {
			details := truncate(entryDetails(a.tr, e), 50)
			fmt.Printf("%-16s %-8s %-52s %s → %s\n",
				e.Date.Local().Format("2006-01-02 15:04"),
				entryLabel(a.tr, e.Type),
				details,
				signed(e.NetBalanceBefore),
				signed(e.NetBalanceAfter))
		}
	}),
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the history log",
	Long:  "Clear all history entries. Not allowed while you owe study time.",
	Args:  cobra.NoArgs,
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		if a.engine.Balance().Net() < 0 {
			fmt.Println(a.tr.T(i18n.CannotClearDebt))
			return
		}
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Println(a.tr.T(i18n.ClearHistoryConfirm))
			return
		}
		if err := a.engine.ClearHistory(); err != nil {
			if errors.Is(err, engine.ErrHistoryLocked) {
				fmt.Println(a.tr.T(i18n.CannotClearDebt))
				return
			}
			printError(err)
			return
		}
		fmt.Println(a.tr.T(i18n.HistoryCleared))
	}),
}

func init() {
	historyCmd.Flags().StringP("type", "t", "", "Filter by type: study, leisure, loan")
	historyCmd.Flags().IntP("limit", "n", 0, "Show at most N entries")
	historyCmd.Flags().Bool("json", false, "JSON output")
	historyClearCmd.Flags().BoolP("yes", "y", false, "Confirm clearing")
	historyCmd.AddCommand(historyClearCmd)
}

// filterHistory keeps entries of typ (all when empty), newest first, up to limit
func filterHistory(history []models.HistoryEntry, typ string, limit int) ([]models.HistoryEntry, error) {
	typ = strings.ToLower(strings.TrimSpace(typ))
	switch models.EntryType(typ) {
	case "", models.EntryStudy, models.EntryLeisure, models.EntryLoan:
	default:
		return nil, fmt.Errorf("invalid type %q: must be study, leisure or loan", typ)
	}

	entries := make([]models.HistoryEntry, 0, len(history))
	for _, e := range history {
		if typ != "" && e.Type != models.EntryType(typ) {
			continue
		}
		entries = append(entries, e)
		if limit > 0 && len(entries) == limit {
			break
		}
	}
	return entries, nil
}

func entryLabel(tr *i18n.Translator, t models.EntryType) string {
	switch t {
	case models.EntryStudy:
		return tr.T(i18n.StudyEntry)
	case models.EntryLeisure:
		return tr.T(i18n.LeisureEntry)
	default:
		return tr.T(i18n.LoanEntry)
	}
}

// entryDetails describes what an entry settled
func entryDetails(tr *i18n.Translator, e models.HistoryEntry) string {
	switch e.Type {
	case models.EntryStudy:
		s := fmt.Sprintf("%s min → %s %s", parser.FormatMinutes(e.DurationMinutes),
			parser.FormatMinutes(e.LeisureEarned), tr.T(i18n.MinLeisure))
		if e.DebtReduced > 0 {
			s += " " + tr.T(i18n.DebtPaid, e.DebtReduced)
		}
		return s
	case models.EntryLeisure:
		s := fmt.Sprintf("%s %s", parser.FormatMinutes(e.LeisureUsed), tr.T(i18n.MinUsed))
		if e.Recovered {
			s += " (" + tr.T(i18n.Recovered) + ")"
		}
		return s
	default:
		return loanSummary(tr, e)
	}
}

func signed(v float64) string {
	if v > 0 {
		return "+" + parser.FormatMinutes(v)
	}
	return parser.FormatMinutes(v)
}

// truncate shortens s to n runes
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
