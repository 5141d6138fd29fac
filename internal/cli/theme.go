package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/focusflow/internal/cli/formatter"
	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// focusflowHuhTheme returns a huh theme using the formatter palette.
func focusflowHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// timerSetupForm collects the subject and duration for a timer run.
func timerSetupForm(subject, duration *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Subject").
				Placeholder("Organic Chemistry").
				Value(subject),
			huh.NewInput().
				Title("Duration (minutes)").
				Description(fmt.Sprintf("Split into %d-minute cycles of %d min study and %d min break.",
					domain.CycleMinutes, domain.CycleStudyMinutes, domain.CycleBreakMinutes)).
				Placeholder(*duration).
				Value(duration).
				Validate(validateTimerMinutes),
		),
	).WithTheme(focusflowHuhTheme()).WithShowHelp(false)
}

// validateTimerMinutes accepts empty input or a duration long enough for
// at least one cycle.
func validateTimerMinutes(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a whole number of minutes")
	}
	if v < domain.CycleMinutes {
		return fmt.Errorf("need at least %d minutes for one cycle", domain.CycleMinutes)
	}
	return nil
}
