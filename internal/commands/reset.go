package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/studyplay/internal/i18n"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset balance, history, settings and any running session",
	Args:  cobra.NoArgs,
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Println(a.tr.T(i18n.ConfirmWithYes))
			return
		}
		a.engine.Reset()
		fmt.Println(a.tr.T(i18n.ResetDone))
	}),
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Confirm the reset")
}
