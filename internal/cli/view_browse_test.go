package cli

import (
	"testing"

	"github.com/alexanderramin/prodplan/internal/domain"
	"github.com/alexanderramin/prodplan/internal/teatest"
	"github.com/alexanderramin/prodplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBrowseDriver(t *testing.T) (*teatest.Driver, *App) {
	t.Helper()
	app, _ := testApp(t,
		testutil.NewTestPlan("Acme", testutil.WithID("aaaa1111-0000"), testutil.WithLine(domain.LineMTL01)),
		testutil.NewTestPlan("Globex", testutil.WithID("bbbb2222-0000"), testutil.WithLine(domain.LineMCO01),
			testutil.WithDaysUntilProduction(-2)),
	)
	d := teatest.New(t, newBrowseView(app), teatest.WithSize(120, 40))
	d.DrainInit()
	return d, app
}

func TestBrowse_LoadsPlans(t *testing.T) {
	d, _ := newBrowseDriver(t)
	assert.True(t, d.ViewContains("PRODUCTION PLANNING", "Acme", "Globex", "2 of 2 plan(s)", "all lines"))
}

func TestBrowse_Empty(t *testing.T) {
	app, _ := testApp(t)
	d := teatest.New(t, newBrowseView(app), teatest.WithSize(120, 40))
	d.DrainInit()
	assert.True(t, d.ViewContains("No production plans found.", "0 of 0 plan(s)"))
}

func TestBrowse_CustomerFilter(t *testing.T) {
	d, _ := newBrowseDriver(t)

	d.PressKey('/')
	d.Type("GLOB")
	assert.True(t, d.ViewContains("1 of 2 plan(s)", "Globex"))
	assert.NotContains(t, d.View(), "Acme")

	d.PressBackspace()
	d.PressBackspace()
	d.PressBackspace()
	d.PressBackspace()
	assert.True(t, d.ViewContains("2 of 2 plan(s)"))

	d.Type("zzz")
	assert.True(t, d.ViewContains("No production plans found."))

	d.PressEsc()
	assert.True(t, d.ViewContains("2 of 2 plan(s)"))
}

func TestBrowse_FilterModeSwallowsQuit(t *testing.T) {
	d, _ := newBrowseDriver(t)
	d.PressKey('/')
	d.PressKey('q')
	assert.False(t, d.Quitting)
	d.PressEnter()

	d.PressKey('q')
	assert.True(t, d.Quitting)
}

func TestBrowse_CycleLine(t *testing.T) {
	d, _ := newBrowseDriver(t)

	d.PressKey('l')
	assert.True(t, d.ViewContains("line MTL-01", "1 of 2 plan(s)", "Acme"))

	for range domain.ProductionLines[1:] {
		d.PressKey('l')
	}
	assert.True(t, d.ViewContains("line MTP-01", "No production plans found."))

	d.PressKey('l')
	assert.True(t, d.ViewContains("all lines", "2 of 2 plan(s)"))
}

func TestBrowse_DetailToggle(t *testing.T) {
	d, _ := newBrowseDriver(t)
	d.PressEnter()
	assert.True(t, d.ViewContains("Days until production", "aaaa1111-0000"))
	d.PressEnter()
	assert.NotContains(t, d.View(), "aaaa1111-0000")
}

func TestBrowse_DeleteConfirmed(t *testing.T) {
	d, app := newBrowseDriver(t)

	d.PressDown()
	d.PressKey('x')
	require.True(t, d.ViewContains("Delete plan bbbb2222", "[y/n]"))

	d.PressKey('y')
	assert.True(t, d.ViewContains("Deleted plan bbbb2222", "1 of 1 plan(s)"))

	plans := listPlans(t, app)
	require.Len(t, plans, 1)
	assert.Equal(t, "aaaa1111-0000", plans[0].ID)
}

func TestBrowse_DeleteCancelled(t *testing.T) {
	d, app := newBrowseDriver(t)

	d.PressKey('x')
	require.True(t, d.ViewContains("Delete plan aaaa1111"))
	d.PressKey('n')
	assert.True(t, d.ViewContains("Deletion cancelled.", "2 of 2 plan(s)"))
	assert.NotContains(t, d.View(), "[y/n]")
	assert.Len(t, listPlans(t, app), 2)
}

func TestBrowse_PendingIgnoresOtherKeys(t *testing.T) {
	d, app := newBrowseDriver(t)

	d.PressKey('x')
	d.PressKey('q')
	assert.False(t, d.Quitting)
	assert.True(t, d.ViewContains("[y/n]"))

	d.PressEsc()
	assert.Len(t, listPlans(t, app), 2)
}

func TestBrowse_ShowsSelectedStatus(t *testing.T) {
	d, _ := newBrowseDriver(t)
	d.PressDown()
	assert.True(t, d.ViewContains("late by 2d"))
}

func TestNextLine(t *testing.T) {
	assert.Equal(t, domain.LineMTL01, nextLine(""))
	assert.Equal(t, domain.ProductionLines[1], nextLine(domain.LineMTL01))
	assert.Equal(t, domain.ProductionLine(""), nextLine(domain.ProductionLines[len(domain.ProductionLines)-1]))
}

func TestBrowse_CtrlCQuits(t *testing.T) {
	d, _ := newBrowseDriver(t)
	d.PressCtrlC()
	assert.True(t, d.Quitting)
}
