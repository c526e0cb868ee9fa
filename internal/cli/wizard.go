package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/prodplan/internal/cli/formatter"
	"github.com/alexanderramin/prodplan/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// prodplanHuhTheme returns the huh theme for order entry: orange accents on
// the focused field, everything else dimmed.
func prodplanHuhTheme() *huh.Theme {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	accent, dim, text := formatter.ColorHeader, formatter.ColorDim, formatter.ColorFg

	t := huh.ThemeBase()

	f := &t.Focused
	f.Base = f.Base.BorderForeground(accent)
	f.Title = fg(accent).Bold(true)
	f.Description = fg(dim)
	f.ErrorIndicator = fg(formatter.ColorRed)
	f.ErrorMessage = fg(formatter.ColorRed)
	f.SelectSelector = fg(accent)
	f.SelectedOption = fg(formatter.ColorGreen)
	f.UnselectedOption = fg(text)
	f.FocusedButton = fg(text).Background(accent).Padding(0, 1)
	f.BlurredButton = fg(dim).Padding(0, 1)
	f.TextInput.Cursor = fg(accent)
	f.TextInput.Prompt = fg(accent)
	f.TextInput.Text = fg(text)
	f.TextInput.Placeholder = fg(dim)

	b := &t.Blurred
	b.Base = b.Base.BorderForeground(dim)
	for _, st := range []*lipgloss.Style{
		&b.Title, &b.SelectSelector, &b.SelectedOption, &b.UnselectedOption,
		&b.TextInput.Prompt, &b.TextInput.Text,
	} {
		*st = fg(dim)
	}

	return t
}

// validateRequired rejects blank input for the named field.
func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// validateNonNegativeInt accepts empty or a non-negative integer.
func validateNonNegativeInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

// validateRequiredDate accepts a YYYY-MM-DD date and rejects blank input.
func validateRequiredDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("date is required")
	}
	if _, err := domain.ParseDate(s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(prodplanHuhTheme()).WithShowHelp(false)
}
