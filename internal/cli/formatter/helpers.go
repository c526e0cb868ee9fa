package formatter

import (
	"strings"

	"github.com/alexanderramin/prodplan/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// DisplayDate renders a date as dd/mm/yyyy, or a dim "--" when unset.
func DisplayDate(d domain.Date) string {
	if d.IsZero() {
		return StyleDim.Render("--")
	}
	return d.Display()
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	if id == "" {
		id = "--------"
	}
	return StyleDim.Render(id)
}

// LineBadge renders a production line in the accent color.
func LineBadge(l domain.ProductionLine) string {
	if l == "" {
		return StyleDim.Render("--")
	}
	return StyleBlue.Render(string(l))
}

// Truncate shortens s to max visible runes, ending with an ellipsis.
func Truncate(s string, max int) string {
	r := []rune(s)
	if max <= 0 || len(r) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}
