package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/studyplay/internal/i18n"
)

// PromptResult is what the leisure prompt returned
type PromptResult struct {
	Minutes   float64
	All       bool
	Cancelled bool
}

// RunLeisurePrompt asks how many of the available leisure minutes to spend
func RunLeisurePrompt(tr *i18n.Translator, available float64) (PromptResult, error) {
	p := tea.NewProgram(NewPromptModel(tr, available))
	finalModel, err := p.Run()
	if err != nil {
		return PromptResult{}, err
	}

	m, ok := finalModel.(PromptModel)
	if !ok || m.cancelled || !m.completed {
		return PromptResult{Cancelled: true}, nil
	}
	return PromptResult{Minutes: m.minutes, All: m.all}, nil
}
