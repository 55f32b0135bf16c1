package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/studyplay/internal/engine"
	"github.com/balkashynov/studyplay/internal/i18n"
	"github.com/balkashynov/studyplay/internal/parser"
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show this week's study and leisure by day",
	Long: `Show minutes studied, earned, spent and borrowed per day for the current
calendar week (Monday to Sunday).

Example output:
  Day       Study  Earned  Leisure  Borrowed
  Mon          60      30       20         -
  Tue          25    12.5        -        10
  Total        85    42.5       20        10`,
	Args: cobra.NoArgs,
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		w := engine.WeekSummary(a.engine.History(), time.Now())
		if w.Total == (engine.DayTotals{}) {
			fmt.Println(a.tr.T(i18n.NoHistory))
			return
		}
		displayWeek(a.tr, w)
	}),
}

// displayWeek outputs the week table, skipping empty weekend days
func displayWeek(tr *i18n.Translator, w engine.Week) {
	dayNames := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	headers := []string{tr.T(i18n.StudyCol), tr.T(i18n.Earned), tr.T(i18n.LeisureCol), tr.T(i18n.Loaned)}

	nameWidth := 10
	colWidth := 9
	for _, h := range headers {
		colWidth = max(colWidth, len([]rune(h))+1)
	}

	fmt.Printf("%s %s\n", tr.T(i18n.Week), w.Start.Format("2006-01-02"))
	fmt.Printf("%-*s", nameWidth, "")
	for _, h := range headers {
		fmt.Printf("%*s", colWidth, h)
	}
	fmt.Println()
	fmt.Println(strings.Repeat("-", nameWidth+colWidth*len(headers)))

	for i, day := range w.Days {
		if i >= 5 && day == (engine.DayTotals{}) {
			continue
		}
		printWeekRow(dayNames[i], day, nameWidth, colWidth)
	}

	fmt.Println(strings.Repeat("-", nameWidth+colWidth*len(headers)))
	printWeekRow(tr.T(i18n.Total), w.Total, nameWidth, colWidth)
}

func printWeekRow(name string, d engine.DayTotals, nameWidth, colWidth int) {
	fmt.Printf("%-*s", nameWidth, name)
	for _, v := range []float64{d.Study, d.Earned, d.Leisure, d.Borrowed} {
		cell := "-"
		if v > 0 {
			cell = parser.FormatMinutes(v)
		}
		fmt.Printf("%*s", colWidth, cell)
	}
	fmt.Println()
}
