package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/studyplay/internal/engine"
	"github.com/balkashynov/studyplay/internal/i18n"
	"github.com/balkashynov/studyplay/internal/models"
	"github.com/balkashynov/studyplay/internal/parser"
	"github.com/balkashynov/studyplay/internal/timer"
)

// timerKeyMap lists the timer screen's bindings for the help bar
type timerKeyMap struct {
	Stop  key.Binding
	Leave key.Binding
}

func (k timerKeyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Stop, k.Leave} }
func (k timerKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

// TimerModel represents the TUI model for a running session
type TimerModel struct {
	width  int
	height int

	engine *engine.Engine
	tr     *i18n.Translator

	// Session state as of the last tick
	reading timer.Reading
	balance models.Balance
	config  models.Config

	// Animation state
	timerAnimation int
	shimmer        *Shimmer

	progress progress.Model
	help     help.Model
	keys     timerKeyMap

	// Set when the countdown ran out; the alarm rings until a key is pressed
	outcome *engine.Outcome

	// UI state
	stopping bool // True when user pressed S and we're stopping
	exiting  bool // True when user pressed ESC/Q and we're exiting without stopping
}

// timerTickMsg is sent every second to step the session
type timerTickMsg struct{}

// animationTickMsg is sent for faster animations
type animationTickMsg struct{}

// NewTimerModel creates a timer model for the engine's running session
func NewTimerModel(e *engine.Engine, tr *i18n.Translator) TimerModel {
	return TimerModel{
		engine:   e,
		tr:       tr,
		reading:  e.Session(),
		balance:  e.Balance(),
		config:   e.Config(),
		shimmer:  NewShimmer(8, 4),
		progress: progress.New(progress.WithGradient(ColorAccentMain, ColorLeisure), progress.WithoutPercentage()),
		help:     help.New(),
		keys: timerKeyMap{
			Stop:  key.NewBinding(key.WithKeys("s", "S"), key.WithHelp("s", tr.T(i18n.KeyStop))),
			Leave: key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc/q", tr.T(i18n.KeyLeave))),
		},
	}
}

func timerTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg{}
	})
}

func animationTick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return animationTickMsg{}
	})
}

// Init initializes the timer model
func (m TimerModel) Init() tea.Cmd {
	return tea.Batch(timerTick(), animationTick())
}

// Update handles messages
func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if m.stopping || m.exiting || m.outcome != nil {
			return m, nil
		}
		_, out := m.engine.Tick()
		m.reading = m.engine.Session()
		m.balance = m.engine.Balance()
		if out != nil {
			m.outcome = out
			return m, nil
		}
		return m, timerTick()

	case animationTickMsg:
		m.timerAnimation = (m.timerAnimation + 1) % 4
		m.shimmer.Advance()
		if !m.stopping && !m.exiting {
			return m, animationTick()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		// Any key dismisses the alarm
		if m.outcome != nil {
			m.engine.Alarm().Stop()
			m.exiting = true
			return m, tea.Quit
		}
		switch {
		case key.Matches(msg, m.keys.Stop):
			m.stopping = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Leave):
			m.exiting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the timer TUI
func (m TimerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.outcome != nil {
		return m.renderAlarm()
	}

	helpBar := m.renderHelpBar()
	contentHeight := m.height - lipgloss.Height(helpBar) - 1

	if m.width < 90 {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.renderTimerPanel(m.width, contentHeight),
			helpBar,
		)
	}

	leftWidth := m.width / 2
	rightWidth := m.width - leftWidth - 2

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderTimerPanel(leftWidth, contentHeight),
		"  ",
		m.renderBalancePanel(rightWidth, contentHeight),
	)
	return lipgloss.JoinVertical(lipgloss.Left, content, helpBar)
}

func (m TimerModel) modeColor() string {
	if m.reading.Mode == models.ModeLeisure {
		return ColorLeisure
	}
	return ColorStudy
}

// renderTimerPanel renders the clock side
func (m TimerModel) renderTimerPanel(width, height int) string {
	var components []string
	center := lipgloss.NewStyle().Align(lipgloss.Center).Width(width)

	animChars := []string{"⏱", "⏲", "⏱", "⏲"}
	animChar := animChars[m.timerAnimation]
	header := fmt.Sprintf("%s  %s  %s", animChar, strings.ToUpper(ModeLabel(m.tr, m.reading.Mode)), animChar)
	components = append(components, center.
		Foreground(lipgloss.Color(m.modeColor())).
		Bold(true).
		Render(header))

	clockLines := strings.Split(renderBigClock(m.reading.Seconds, m.modeColor()), "\n")
	for i, line := range clockLines {
		clockLines[i] = center.Render(line)
	}
	components = append(components, strings.Join(clockLines, "\n"))

	if m.reading.Mode == models.ModeLeisure {
		total := timer.TotalSeconds(m.reading.StartMinutes)
		percent := 0.0
		if total > 0 {
			percent = float64(m.reading.Seconds) / float64(total)
		}
		m.progress.Width = min(width-8, 60)
		components = append(components, center.Render(m.progress.ViewAs(percent)))
	}

	label := m.tr.T(i18n.Elapsed)
	if m.reading.Mode == models.ModeLeisure {
		label = m.tr.T(i18n.Remaining)
	}
	info := fmt.Sprintf("%s %s · %s %s",
		m.tr.T(i18n.StartedAt), m.reading.StartedAt.Local().Format("15:04:05"),
		label, parser.FormatClock(m.reading.Seconds))
	components = append(components, center.
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Italic(true).
		Render(info))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(strings.Join(components, "\n\n"))
}

// bigDigits holds 5-row ASCII art per clock glyph
var bigDigits = map[rune][5]string{
	'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
	'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
	'2': {" ███ ", "█   █", "   █ ", "  █  ", "█████"},
	'3': {" ███ ", "█   █", "  ██ ", "█   █", " ███ "},
	'4': {"█   █", "█   █", "█████", "    █", "    █"},
	'5': {"█████", "█    ", "████ ", "    █", "████ "},
	'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
	'7': {"█████", "    █", "   █ ", "  █  ", " █   "},
	'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
	'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
	':': {"     ", "  █  ", "     ", "  █  ", "     "},
}

// renderBigClock renders seconds as an ASCII art clock
func renderBigClock(seconds int, color string) string {
	var lines [5]strings.Builder
	for _, char := range parser.FormatClock(seconds) {
		art, ok := bigDigits[char]
		if !ok {
			continue
		}
		for i := range art {
			lines[i].WriteString(art[i])
			lines[i].WriteString(" ")
		}
	}

	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true)

	rendered := make([]string, len(lines))
	for i := range lines {
		rendered[i] = clockStyle.Render(lines[i].String())
	}
	return strings.Join(rendered, "\n")
}

// renderBalancePanel renders the balance side
func (m TimerModel) renderBalancePanel(width, height int) string {
	var b strings.Builder
	inner := width - 8

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Width(width-12).
		Padding(0, 1)
	b.WriteString(titleStyle.Render(m.tr.T(i18n.AppTitle)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Align(lipgloss.Center).Width(inner).
		Render(m.shimmer.Render(m.tr.T(i18n.AppSubtitle))))
	b.WriteString("\n\n")

	separator := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBorder)).
		Align(lipgloss.Center).
		Width(inner).
		Render(strings.Repeat("─", max(0, min(width-12, 40))))
	b.WriteString(separator)
	b.WriteString("\n\n")

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	rowStyle := lipgloss.NewStyle().Align(lipgloss.Center).Width(inner)
	for i, row := range BalanceLines(m.tr, m.balance) {
		valueColor := ColorPrimaryText
		if i == 0 {
			valueColor = ColorSuccess
			if m.balance.Net() < 0 {
				valueColor = ColorError
			}
		}
		line := fmt.Sprintf("%s: %s", labelStyle.Render(row[0]),
			lipgloss.NewStyle().Foreground(lipgloss.Color(valueColor)).Bold(i == 0).Render(row[1]))
		b.WriteString(rowStyle.Render(line))
		b.WriteString("\n")
	}

	hint := m.tr.T(i18n.Positive)
	if m.balance.Net() < 0 {
		hint = m.tr.T(i18n.Negative)
	}
	b.WriteString("\n")
	b.WriteString(rowStyle.Foreground(lipgloss.Color(ColorDisabledText)).Italic(true).Render(hint))
	b.WriteString("\n")
	b.WriteString(rowStyle.Foreground(lipgloss.Color(ColorDisabledText)).Render(
		fmt.Sprintf("%s: %g", m.tr.T(i18n.Factor), m.config.LeisureFactor)))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}

// renderAlarm renders the overlay shown when leisure time runs out
func (m TimerModel) renderAlarm() string {
	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(ColorWarning)).
		Padding(1, 4).
		Align(lipgloss.Center)

	body := lipgloss.JoinVertical(
		lipgloss.Center,
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).Bold(true).Render(m.tr.T(i18n.LeisureFinished)),
		"",
		OutcomeMessage(m.tr, m.outcome),
		"",
		m.shimmer.Render(m.tr.T(i18n.AlarmDismiss)),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box.Render(body))
}

// renderHelpBar renders the help bar at the bottom
func (m TimerModel) renderHelpBar() string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Align(lipgloss.Center).
		Width(m.width).
		Render(m.help.View(m.keys))
}

// RunTimerTUI shows the running session until it is stopped, left running
// or, for leisure, runs out.
func RunTimerTUI(e *engine.Engine, tr *i18n.Translator) error {
	p := tea.NewProgram(NewTimerModel(e, tr), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	m := finalModel.(TimerModel)
	switch {
	case m.outcome != nil:
		e.Alarm().Stop()
		fmt.Println(OutcomeMessage(tr, m.outcome))
		fmt.Print(BalanceText(tr, m.outcome.Balance))
	case m.stopping:
		out, err := e.Stop()
		if err != nil {
			return fmt.Errorf("failed to stop session: %w", err)
		}
		fmt.Println(OutcomeMessage(tr, out))
		fmt.Print(BalanceText(tr, out.Balance))
	case m.exiting:
		fmt.Printf("\n💡 %s · %s %s\n", ModeLabel(tr, m.reading.Mode), tr.T(i18n.StartedAt), m.reading.StartedAt.Local().Format("15:04:05"))
		fmt.Println("   Use 'studyplay status' to check the timer or 'studyplay stop' to settle it.")
	}
	return nil
}
