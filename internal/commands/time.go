package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/studyplay/internal/engine"
	"github.com/balkashynov/studyplay/internal/i18n"
	"github.com/balkashynov/studyplay/internal/models"
	"github.com/balkashynov/studyplay/internal/parser"
	"github.com/balkashynov/studyplay/internal/timer"
	"github.com/balkashynov/studyplay/internal/tui"
)

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Start a study session",
	Long: `Start a study session. Every whole minute studied pays off debt first,
then earns leisure at the configured leisure factor. Opens the interactive
timer by default, use --no-ui to start it in the background.

Examples:
  studyplay study          # Start with the interactive timer
  studyplay study --no-ui  # Start and return; settle later with 'studyplay stop'`,
	Args: cobra.NoArgs,
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		if err := a.engine.StartStudy(); err != nil {
			a.printSessionError(err)
			return
		}
		a.afterStart(cmd, a.tr.T(i18n.StudyStarted, a.engine.Session().StartedAt.Local().Format("15:04:05")))
	}),
}

var leisureCmd = &cobra.Command{
	Use:   "leisure [minutes|all]",
	Short: "Spend leisure time on a countdown",
	Long: `Start a leisure countdown. Each minute that passes is charged to your
balance, borrowed leisure first. Without an amount an input prompt opens.

Amounts: 25, 12.5, 25m, 90 min, 1h, 1.5h, 1h30m, or "all".

Examples:
  studyplay leisure 30
  studyplay leisure 1h30m --no-ui
  studyplay leisure all`,
	Args: cobra.MaximumNArgs(1),
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		available := a.engine.Balance().TotalAvailable()

		var (
			minutes float64
			all     bool
		)
		if len(args) == 0 {
			if available < 1 {
				fmt.Println(a.tr.T(i18n.NotEnoughLeisure, available))
				return
			}
			res, err := tui.RunLeisurePrompt(a.tr, available)
			if err != nil {
				printError(err)
				return
			}
			if res.Cancelled {
				return
			}
			minutes, all = res.Minutes, res.All
		} else {
			m, err := parser.ParseLeisureAmount(args[0])
			switch {
			case errors.Is(err, parser.ErrAll):
				all = true
			case err != nil:
				fmt.Println(a.tr.T(i18n.InvalidAmount, args[0]))
				return
			default:
				minutes = m
			}
		}

		var err error
		if all {
			minutes, err = a.engine.StartLeisureAll()
		} else {
			err = a.engine.StartLeisure(minutes)
		}
		if err != nil {
			if errors.Is(err, timer.ErrInvalidDuration) && len(args) > 0 {
				fmt.Println(a.tr.T(i18n.InvalidAmount, args[0]))
				return
			}
			a.printSessionError(err)
			return
		}
		a.afterStart(cmd, a.tr.T(i18n.LeisureStarted, minutes))
	}),
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running session and settle it",
	Args:  cobra.NoArgs,
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		out, err := a.engine.Stop()
		if err != nil {
			a.printSessionError(err)
			return
		}
		a.engine.Alarm().Stop()
		fmt.Println(tui.OutcomeMessage(a.tr, out))
		fmt.Print(tui.BalanceText(a.tr, out.Balance))
	}),
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Open the interactive timer for the running session",
	Args:  cobra.NoArgs,
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		if a.engine.Session().Mode == models.ModeIdle {
			fmt.Println(a.tr.T(i18n.NoSession))
			return
		}
		if err := tui.RunTimerTUI(a.engine, a.tr); err != nil {
			printError(err)
		}
	}),
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the balance and the running session",
	Long: `Show the balance and the running session, if any.
With --follow the session is stepped once a second and printed until it
completes or you press Ctrl-C.`,
	Args: cobra.NoArgs,
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		fmt.Print(tui.BalanceText(a.tr, a.engine.Balance()))

		r := a.engine.Session()
		if r.Mode == models.ModeIdle {
			fmt.Println(a.tr.T(i18n.NoSession))
			return
		}
		fmt.Println()
		printReading(a.tr, r)

		follow, _ := cmd.Flags().GetBool("follow")
		if follow {
			a.follow()
		}
	}),
}

func init() {
	studyCmd.Flags().Bool("no-ui", false, "Start without the interactive timer")
	leisureCmd.Flags().Bool("no-ui", false, "Start without the interactive timer")
	statusCmd.Flags().BoolP("follow", "f", false, "Stream the running session until it ends")
}

// afterStart opens the timer TUI unless --no-ui was given
func (a *app) afterStart(cmd *cobra.Command, started string) {
	noUI, _ := cmd.Flags().GetBool("no-ui")
	if noUI {
		fmt.Println(started)
		fmt.Println("   Use 'studyplay status' to check the timer or 'studyplay stop' to settle it.")
		return
	}
	if err := tui.RunTimerTUI(a.engine, a.tr); err != nil {
		printError(err)
	}
}

// follow steps the session once a second and prints each minute boundary
// until the session completes or the user interrupts.
func (a *app) follow() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	var completed *engine.Outcome
	step := func() []timer.Event {
		events, out := a.engine.Tick()
		if out != nil {
			completed = out
		}
		return events
	}

	for ev := range timer.Drive(ctx, step, ticker.C) {
		switch ev.Kind {
		case timer.EventTick:
			fmt.Printf("\r%s %s   ", tui.ModeLabel(a.tr, ev.Mode), parser.FormatClock(ev.Seconds))
		case timer.EventMinuteElapsed:
			if ev.Mode == models.ModeLeisure {
				b := a.engine.Balance()
				fmt.Printf("\n%s: %s min\n", a.tr.T(i18n.Spendable), parser.FormatMinutes(b.TotalAvailable()))
			}
		case timer.EventCompleted:
			fmt.Println()
			fmt.Println(a.tr.T(i18n.LeisureFinished))
		}
	}

	if completed == nil {
		fmt.Println()
		return
	}
	fmt.Println(tui.OutcomeMessage(a.tr, completed))
	fmt.Print(tui.BalanceText(a.tr, completed.Balance))
	a.waitForDismiss(ctx)
}

// waitForDismiss keeps the alarm ringing until Enter, Ctrl-C or auto-stop
func (a *app) waitForDismiss(ctx context.Context) {
	player := a.engine.Alarm()
	if !player.IsPlaying() {
		return
	}
	fmt.Println(a.tr.T(i18n.AlarmDismiss))

	dismissed := make(chan struct{})
	go func() {
		var buf [1]byte
		os.Stdin.Read(buf[:])
		close(dismissed)
	}()

	poll := time.NewTicker(250 * time.Millisecond)
	defer poll.Stop()
	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			player.Stop()
		case <-dismissed:
			player.Stop()
		case <-poll.C:
		}
	}
}

// printReading prints the running session
func printReading(tr *i18n.Translator, r timer.Reading) {
	label := tr.T(i18n.Elapsed)
	if r.Mode == models.ModeLeisure {
		label = tr.T(i18n.Remaining)
	}
	fmt.Println(tui.ModeLabel(tr, r.Mode))
	fmt.Printf("%s: %s\n", tr.T(i18n.StartedAt), r.StartedAt.Local().Format("15:04:05"))
	fmt.Printf("%s: %s\n", label, parser.FormatClock(r.Seconds))
}

// printSessionError maps engine errors to localized lines
func (a *app) printSessionError(err error) {
	switch {
	case errors.Is(err, timer.ErrSessionActive):
		fmt.Println(a.tr.T(i18n.SessionActive, strings.ToLower(string(a.engine.Session().Mode))))
		fmt.Println("   Use 'studyplay watch' to open it or 'studyplay stop' to settle it.")
	case errors.Is(err, timer.ErrNoActiveSession):
		fmt.Println(a.tr.T(i18n.NoSession))
	case errors.Is(err, engine.ErrNotEnoughLeisure), errors.Is(err, timer.ErrInvalidDuration):
		fmt.Println(a.tr.T(i18n.NotEnoughLeisure, a.engine.Balance().TotalAvailable()))
	default:
		printError(err)
	}
}
