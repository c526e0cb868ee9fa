package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/prodplan/internal/domain"
	"github.com/alexanderramin/prodplan/internal/scheduler"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorOrange = lipgloss.Color("#fe8019")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = ColorOrange
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleOrange = lipgloss.NewStyle().Foreground(ColorOrange)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusColor returns the style for a status bucket: late is red, due today
// and due soon are orange, on track is green.
func StatusColor(bucket domain.StatusBucket) lipgloss.Style {
	switch bucket {
	case domain.StatusLate:
		return StyleRed
	case domain.StatusDueToday, domain.StatusDueSoon:
		return StyleOrange
	case domain.StatusOnTrack:
		return StyleGreen
	default:
		return StyleDim
	}
}

// StatusIndicator returns a colored status label such as "● late by 3d".
func StatusIndicator(days int) string {
	s := scheduler.ClassifyStatus(days)
	return StatusColor(s.Bucket).Render("● " + s.Label())
}

// DaysLeft renders the signed day count in its status color.
func DaysLeft(days int) string {
	s := scheduler.ClassifyStatus(days)
	return StatusColor(s.Bucket).Render(fmt.Sprintf("%d", days))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
