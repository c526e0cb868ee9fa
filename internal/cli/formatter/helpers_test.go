package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/prodplan/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRenderTable_Alignment(t *testing.T) {
	got := stripANSI(RenderTable([]string{"A", "BB"}, [][]string{{"xxx", "y"}}))
	assert.Equal(t, "A    BB\n───  ──\nxxx  y\n", got)
}

func TestRenderTable_RightAlign(t *testing.T) {
	got := stripANSI(RenderTable([]string{"NAME", "DAYS"}, [][]string{{"a", "5"}, {"bb", "-12"}}, RightAlign(1)))
	assert.Equal(t, "NAME  DAYS\n────  ────\na        5\nbb     -12\n", got)
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, [][]string{{"x"}}))
}

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "05/03/2024", stripANSI(DisplayDate(domain.NewDate(2024, time.March, 5))))
	assert.Equal(t, "--", stripANSI(DisplayDate(domain.Date{})))
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "550e8400", stripANSI(TruncID("550e8400-e29b-41d4-a716-446655440000")))
	assert.Equal(t, "abc", stripANSI(TruncID("abc")))
	assert.Equal(t, "--------", stripANSI(TruncID("")))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "Joinvi…", Truncate("Joinville", 7))
	assert.Equal(t, "São…", Truncate("São Paulo", 4))
}

func TestStatusColor(t *testing.T) {
	assert.Equal(t, StyleRed, StatusColor(domain.StatusLate))
	assert.Equal(t, StyleOrange, StatusColor(domain.StatusDueToday))
	assert.Equal(t, StyleOrange, StatusColor(domain.StatusDueSoon))
	assert.Equal(t, StyleGreen, StatusColor(domain.StatusOnTrack))
}

func TestStatusIndicator(t *testing.T) {
	assert.Equal(t, "● late by 5d", stripANSI(StatusIndicator(-5)))
	assert.Equal(t, "● due today", stripANSI(StatusIndicator(0)))
	assert.Equal(t, "● due in 2d", stripANSI(StatusIndicator(2)))
	assert.Equal(t, "● on track (3d)", stripANSI(StatusIndicator(3)))
}
