package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/prodplan/internal/cli/formatter"
	"github.com/alexanderramin/prodplan/internal/contract"
	"github.com/alexanderramin/prodplan/internal/domain"
	"github.com/alexanderramin/prodplan/internal/scheduler"
	"github.com/alexanderramin/prodplan/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

// plansLoadedMsg signals that the plan list has been (re)loaded.
type plansLoadedMsg struct {
	plans []*domain.ProductionPlan
	err   error
}

// deleteRequestedMsg carries a staged deletion awaiting y/n.
type deleteRequestedMsg struct {
	pending *service.PendingConfirmation
	err     error
}

// deleteDoneMsg reports the result of a confirmed deletion.
type deleteDoneMsg struct {
	outcome *service.ConfirmationOutcome
	err     error
}

type browseKeyMap struct {
	Filter  key.Binding
	Line    key.Binding
	Detail  key.Binding
	Delete  key.Binding
	Reload  key.Binding
	Quit    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

var browseKeys = browseKeyMap{
	Filter:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "customer filter")),
	Line:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "cycle line")),
	Detail:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
	Delete:  key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "delete")),
	Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Confirm: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "confirm")),
	Cancel:  key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "cancel")),
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Filter, k.Line, k.Detail, k.Delete, k.Reload, k.Quit}
}

var browseColumns = []table.Column{
	{Title: "ID", Width: 8},
	{Title: "Customer", Width: 22},
	{Title: "Product", Width: 14},
	{Title: "City", Width: 14},
	{Title: "Line", Width: 8},
	{Title: "Receipt", Width: 10},
	{Title: "Delivery", Width: 10},
	{Title: "Entry", Width: 10},
	{Title: "Days", Width: 5},
	{Title: "Status", Width: 16},
}

// browseView is the records browser: a table of plans with customer and
// line filters, a detail pane and confirm-gated deletion.
type browseView struct {
	app   *App
	table table.Model

	plans   []*domain.ProductionPlan
	visible []*domain.ProductionPlan
	loading bool
	err     error
	notice  string

	filtering  bool
	customer   string
	line       domain.ProductionLine
	showDetail bool
	pending    *service.PendingConfirmation
}

func newBrowseView(app *App) *browseView {
	t := table.New(
		table.WithColumns(browseColumns),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	return &browseView{app: app, table: t, loading: true}
}

func (v *browseView) Init() tea.Cmd {
	return v.loadPlans()
}

func (v *browseView) loadPlans() tea.Cmd {
	plans := v.app.Plans
	return func() tea.Msg {
		list, err := plans.List(context.Background())
		return plansLoadedMsg{plans: list, err: err}
	}
}

func (v *browseView) requestDelete(id string) tea.Cmd {
	confirmSvc := v.app.Confirm
	return func() tea.Msg {
		pending, err := confirmSvc.RequestDelete(context.Background(), id)
		return deleteRequestedMsg{pending: pending, err: err}
	}
}

func (v *browseView) confirmDelete(token string) tea.Cmd {
	confirmSvc := v.app.Confirm
	return func() tea.Msg {
		out, err := confirmSvc.Confirm(context.Background(), token)
		return deleteDoneMsg{outcome: out, err: err}
	}
}

func (v *browseView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if h := msg.Height - 8; h > 3 {
			v.table.SetHeight(h)
		}
		return v, nil

	case plansLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.plans = msg.plans
			v.refresh()
		}
		return v, nil

	case deleteRequestedMsg:
		if msg.err != nil {
			v.notice = formatter.StyleRed.Render("Error: " + msg.err.Error())
			return v, nil
		}
		v.pending = msg.pending
		return v, nil

	case deleteDoneMsg:
		if msg.err != nil {
			v.notice = formatter.StyleRed.Render("Error: " + msg.err.Error())
			return v, nil
		}
		v.notice = formatter.StyleGreen.Render("Deleted plan " + shortID(msg.outcome.RemovedID))
		return v, v.loadPlans()

	case tea.KeyMsg:
		switch {
		case v.pending != nil:
			return v.updateConfirm(msg)
		case v.filtering:
			return v.updateFilter(msg)
		default:
			return v.updateNormal(msg)
		}
	}
	return v, nil
}

func (v *browseView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, browseKeys.Quit):
		return v, tea.Quit
	case key.Matches(msg, browseKeys.Filter):
		v.filtering = true
		return v, nil
	case key.Matches(msg, browseKeys.Line):
		v.line = nextLine(v.line)
		v.refresh()
		return v, nil
	case key.Matches(msg, browseKeys.Detail):
		v.showDetail = !v.showDetail
		return v, nil
	case key.Matches(msg, browseKeys.Reload):
		v.notice = ""
		return v, v.loadPlans()
	case key.Matches(msg, browseKeys.Delete):
		if p := v.selected(); p != nil {
			return v, v.requestDelete(p.ID)
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

func (v *browseView) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, browseKeys.Confirm):
		token := v.pending.Token
		v.pending = nil
		return v, v.confirmDelete(token)
	case key.Matches(msg, browseKeys.Cancel):
		_ = v.app.Confirm.Cancel(v.pending.Token)
		v.pending = nil
		v.notice = formatter.Dim("Deletion cancelled.")
	}
	return v, nil
}

func (v *browseView) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.filtering = false
		v.customer = ""
	case tea.KeyEnter:
		v.filtering = false
	case tea.KeyBackspace:
		if r := []rune(v.customer); len(r) > 0 {
			v.customer = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		v.customer += " "
	case tea.KeyRunes:
		v.customer += string(msg.Runes)
	}
	v.refresh()
	return v, nil
}

// refresh recomputes the visible plans and table rows from the filters.
func (v *browseView) refresh() {
	v.visible = service.FilterPlans(v.plans, contract.PlanFilter{
		Customer: v.customer,
		Line:     v.line,
	}, v.app.Plans.Location())

	rows := make([]table.Row, 0, len(v.visible))
	for _, p := range v.visible {
		rows = append(rows, table.Row{
			p.DisplayID(),
			p.Customer,
			p.ProductType,
			p.City,
			string(p.ProductionLine),
			p.OrderReceiptDate.Display(),
			p.ExpectedDeliveryDate.Display(),
			p.ProductionEntryDeadline.Display(),
			strconv.Itoa(p.DaysUntilProduction),
			scheduler.ClassifyStatus(p.DaysUntilProduction).Label(),
		})
	}
	v.table.SetRows(rows)
	if v.table.Cursor() >= len(rows) {
		v.table.SetCursor(max(len(rows)-1, 0))
	}
}

func (v *browseView) selected() *domain.ProductionPlan {
	i := v.table.Cursor()
	if i < 0 || i >= len(v.visible) {
		return nil
	}
	return v.visible[i]
}

// nextLine cycles "all" -> each production line -> "all".
func nextLine(current domain.ProductionLine) domain.ProductionLine {
	if current == "" {
		return domain.ProductionLines[0]
	}
	for i, l := range domain.ProductionLines {
		if l == current && i+1 < len(domain.ProductionLines) {
			return domain.ProductionLines[i+1]
		}
	}
	return ""
}

func (v *browseView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading plans...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	var b strings.Builder
	b.WriteString("\n  " + formatter.StyleHeader.Render("PRODUCTION PLANNING") + "\n")

	line := "all lines"
	if v.line != "" {
		line = "line " + string(v.line)
	}
	filterText := v.customer
	if v.filtering {
		filterText += "█"
	}
	b.WriteString(fmt.Sprintf("  %s %s  %s %s  %s\n\n",
		formatter.StyleYellow.Render("/"), filterText,
		formatter.Dim("·"), line,
		formatter.Dim(fmt.Sprintf("%d of %d plan(s)", len(v.visible), len(v.plans)))))

	if len(v.visible) == 0 {
		b.WriteString("  " + formatter.Dim("No production plans found.") + "\n")
	} else {
		b.WriteString(v.table.View() + "\n")
	}

	if p := v.selected(); p != nil {
		b.WriteString("\n  " + formatter.StatusIndicator(p.DaysUntilProduction) + "  " + formatter.Bold(p.Customer) + "\n")
		if v.showDetail {
			b.WriteString(formatter.FormatPlanDetail(p) + "\n")
		}
	}

	if v.pending != nil {
		b.WriteString("\n  " + formatter.StyleYellow.Render(v.pending.Summary) + formatter.Dim("  [y/n]") + "\n")
	} else if v.notice != "" {
		b.WriteString("\n  " + v.notice + "\n")
	}

	var help []string
	for _, k := range browseKeys.ShortHelp() {
		h := k.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	b.WriteString("\n  " + formatter.Dim(strings.Join(help, " · ")) + "\n")
	return b.String()
}
