package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for studyplay",
	Long:  `Display detailed help for all studyplay commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("studyplay %s (commit %s, built %s)\n", version, commit, date)
	},
}

func showCustomHelp() {
	fmt.Print(`
███████╗████████╗██╗   ██╗██████╗ ██╗   ██╗██████╗ ██╗      █████╗ ██╗   ██╗
██╔════╝╚══██╔══╝██║   ██║██╔══██╗╚██╗ ██╔╝██╔══██╗██║     ██╔══██╗╚██╗ ██╔╝
███████╗   ██║   ██║   ██║██║  ██║ ╚████╔╝ ██████╔╝██║     ███████║ ╚████╔╝
╚════██║   ██║   ██║   ██║██║  ██║  ╚██╔╝  ██╔═══╝ ██║     ██╔══██║  ╚██╔╝
███████║   ██║   ╚██████╔╝██████╔╝   ██║   ██║     ███████╗██║  ██║   ██║
╚══════╝   ╚═╝    ╚═════╝ ╚═════╝    ╚═╝   ╚═╝     ╚══════╝╚═╝  ╚═╝   ╚═╝

studyplay - study to earn leisure time

COMMANDS:

  study                   Start a study session
    --no-ui               Start without interactive timer

    Every whole minute studied pays off debt first, then earns leisure at
    the leisure factor (default 0.5: 10 min study = 5 min leisure).

  leisure [minutes|all]   Spend leisure on a countdown
    --no-ui               Start without interactive timer

    Amounts: 25, 12.5, 25m, 90 min, 1h, 1.5h, 1h30m, all
    Without an amount an input prompt opens.

  stop                    Stop the running session and settle it
  watch                   Reopen the interactive timer
  status                  Show balance and running session
    -f, --follow          Stream the session until it ends

  loan <minutes>          Quote a loan of leisure minutes
    -y, --yes             Take the loan

    Repayment = minutes / leisure factor x (1 + interest rate)
    Only available with a zero or negative balance, within the debt limit.

  history                 List settled sessions and loans
    -t, --type            Filter by type: study|leisure|loan
    -n, --limit           Show at most N entries
    --json                JSON output
  history clear           Clear the history (not while in debt)
    -y, --yes             Confirm

  week                    This week's minutes per day

  config show             Show economy settings
  config set              Change settings
    --leisure-factor      0.1 - 1.0
    --interest-rate       0.0 - 0.5
    --debt-limit          0 - 180 study minutes
    --language            en|es|fr
  config reset            Restore default settings

  reset --yes             Reset balance, history, settings and session
  version                 Show version
  help                    Show this help

Timer keys:
  s             Stop and settle
  esc/q         Leave the session running in the background

Global flags:
  --settings <path>       Settings file (env STUDYPLAY_SETTINGS)

`)
}
