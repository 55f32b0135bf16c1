package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/studyplay/internal/i18n"
	"github.com/balkashynov/studyplay/internal/parser"
)

type promptKeyMap struct {
	Confirm key.Binding
	All     key.Binding
	Cancel  key.Binding
}

func (k promptKeyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Confirm, k.All, k.Cancel} }
func (k promptKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

// PromptModel asks how many leisure minutes to spend
type PromptModel struct {
	input     textinput.Model
	help      help.Model
	keys      promptKeyMap
	tr        *i18n.Translator
	available float64
	width     int
	height    int

	// Result
	minutes       float64
	all           bool
	completed     bool
	cancelled     bool
	validationErr string
}

// NewPromptModel creates a prompt bounded by the spendable leisure
func NewPromptModel(tr *i18n.Translator, available float64) PromptModel {
	input := textinput.New()
	input.Placeholder = "25, 12.5, 1h30m"
	input.CharLimit = 20
	input.Width = 30
	input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
	input.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	input.Focus()

	return PromptModel{
		input:     input,
		help:      help.New(),
		tr:        tr,
		available: available,
		keys: promptKeyMap{
			Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", tr.T(i18n.KeyEnter))),
			All:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", tr.T(i18n.KeyAll))),
			Cancel:  key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", tr.T(i18n.KeyQuit))),
		},
	}
}

// Init initializes the model
func (m PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.All):
			m.all = true
			m.minutes = m.available
			m.completed = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Confirm):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.validationErr = ""
	return m, cmd
}

// submit validates the typed amount against the spendable balance
func (m PromptModel) submit() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())
	minutes, err := parser.ParseLeisureAmount(value)
	switch {
	case errors.Is(err, parser.ErrAll):
		m.all = true
		m.minutes = m.available
	case err != nil:
		m.validationErr = m.tr.T(i18n.InvalidAmount, value)
		return m, nil
	case minutes < 1:
		m.validationErr = m.tr.T(i18n.SessionTooShort)
		return m, nil
	case minutes > m.available:
		m.validationErr = m.tr.T(i18n.InvalidAmount, value) + " · " + m.tr.T(i18n.UseAll, m.available)
		return m, nil
	default:
		m.minutes = minutes
	}
	m.completed = true
	return m, tea.Quit
}

// View renders the prompt
func (m PromptModel) View() string {
	if m.completed || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorLeisure)).
		Render(m.tr.T(i18n.LeisureMinutesToUse)))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Render(m.tr.T(i18n.UseAll, m.available)))
	if m.validationErr != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Render("⚠ " + m.validationErr))
	}
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText)).Render(m.help.View(m.keys)))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2).
		Render(b.String())

	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
