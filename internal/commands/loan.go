package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/studyplay/internal/i18n"
	"github.com/balkashynov/studyplay/internal/loan"
	"github.com/balkashynov/studyplay/internal/models"
	"github.com/balkashynov/studyplay/internal/parser"
	"github.com/balkashynov/studyplay/internal/timer"
	"github.com/balkashynov/studyplay/internal/tui"
)

var loanCmd = &cobra.Command{
	Use:   "loan <minutes>",
	Short: "Borrow leisure against future study",
	Long: `Borrow leisure minutes now and owe study minutes later:
repayment = minutes / leisure factor × (1 + interest rate).

Loans are only available when your net balance is zero or negative, and the
resulting debt must stay within the configured debt limit. Without --yes the
loan is only quoted.

Examples:
  studyplay loan 10          # Show what 10 minutes would cost
  studyplay loan 10 --yes    # Take it`,
	Args: cobra.ExactArgs(1),
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		minutes, err := parser.ParseMinutes(args[0])
		if err != nil {
			fmt.Println(a.tr.T(i18n.InvalidAmount, args[0]))
			return
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			q, err := a.engine.QuoteLoan(minutes)
			if err != nil {
				a.printLoanError(err)
				return
			}
			fmt.Printf("%s: %s min\n", a.tr.T(i18n.RequestLoan), parser.FormatMinutes(q.Minutes))
			fmt.Println(a.tr.T(i18n.RepaymentRequired, q.RepaymentDue))
			fmt.Println(a.tr.T(i18n.ConfirmLoanHint))
			return
		}

		q, _, err := a.engine.TakeLoan(minutes)
		if err != nil {
			a.printLoanError(err)
			return
		}
		fmt.Println(a.tr.T(i18n.Borrowed, q.Minutes, q.RepaymentDue))
		fmt.Print(tui.BalanceText(a.tr, a.engine.Balance()))
	}),
}

func init() {
	loanCmd.Flags().BoolP("yes", "y", false, "Take the loan instead of quoting it")
}

// printLoanError maps loan refusals to localized lines
func (a *app) printLoanError(err error) {
	switch {
	case errors.Is(err, loan.ErrPositiveBalance):
		fmt.Println(a.tr.T(i18n.CannotLoanPositive))
	case errors.Is(err, loan.ErrExceedsDebtLimit):
		fmt.Println(a.tr.T(i18n.ExceedsDebtLimit, a.engine.Config().MaxDebtLimit))
	case errors.Is(err, loan.ErrBelowMinimum):
		fmt.Println(a.tr.T(i18n.MinimumLoan))
	case errors.Is(err, timer.ErrSessionActive):
		fmt.Println(a.tr.T(i18n.SessionActive, string(a.engine.Session().Mode)))
	default:
		printError(err)
	}
}

// loanSummary is the one-line description of a loan entry
func loanSummary(tr *i18n.Translator, e models.HistoryEntry) string {
	s := fmt.Sprintf("%s %s, %s %s",
		parser.FormatMinutes(e.LoanMinutes), tr.T(i18n.MinBorrowed),
		parser.FormatMinutes(e.RepaymentDue), tr.T(i18n.MinToRepay))
	if e.LoanInterestRate != nil {
		s += fmt.Sprintf(" (%s %.0f%%)", tr.T(i18n.Interest), *e.LoanInterestRate*100)
	}
	return s
}
