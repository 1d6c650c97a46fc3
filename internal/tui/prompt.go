package tui

import "github.com/charmbracelet/huh"

// Prompter abstracts interactive prompts for testability.
type Prompter interface {
	Confirm(title, description string) (bool, error)
}

// TUIPrompter implements Prompter with huh forms.
type TUIPrompter struct{}

// NewPrompter creates a new TUIPrompter.
func NewPrompter() Prompter {
	return &TUIPrompter{}
}

// Confirm shows a yes/no confirmation prompt.
func (p *TUIPrompter) Confirm(title, description string) (bool, error) {
	var confirmed bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	).WithTheme(currentThemeOrDefault())

	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}
