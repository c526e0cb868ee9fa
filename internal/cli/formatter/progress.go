package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/prodplan/internal/scheduler"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// SlackWindow is the number of days between order receipt and the
// production entry deadline: negotiated minus manufacturing days.
func SlackWindow(negotiated, manufacturing int) int {
	return negotiated - manufacturing
}

// RenderSlack renders how much of the pre-production window is left, like
// [████░░░░] 6/15d. The bar takes the status color of daysLeft. A window of
// zero or less renders "--".
func RenderSlack(daysLeft, window, width int) string {
	if window <= 0 {
		return "--"
	}
	if width < 2 {
		width = 2
	}

	pct := float64(daysLeft) / float64(window)
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	filled := int(pct * float64(width))
	empty := width - filled
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, empty)

	style := StatusColor(scheduler.ClassifyStatus(daysLeft).Bucket)
	return fmt.Sprintf("[%s] %d/%dd", style.Render(bar), daysLeft, window)
}
