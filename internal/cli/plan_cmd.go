package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/prodplan/internal/cli/formatter"
	"github.com/alexanderramin/prodplan/internal/contract"
	"github.com/alexanderramin/prodplan/internal/domain"
	"github.com/alexanderramin/prodplan/internal/scheduler"
	"github.com/alexanderramin/prodplan/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "plan",
		Aliases: []string{"plans"},
		Short:   "Manage production plans",
	}

	cmd.AddCommand(
		newPlanAddCmd(app),
		newPlanEditCmd(app),
		newPlanListCmd(app),
		newPlanShowCmd(app),
		newPlanRemoveCmd(app),
		newPlanDeriveCmd(app),
	)

	return cmd
}

// planFlags are the editable plan fields shared by add and edit.
type planFlags struct {
	customer, product, city string
	receipt                 string
	deadlineDays, mfgDays   int
	line                    string

	delivery, entry, forecast string
	daysLeft                  int
}

func (f *planFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.customer, "customer", "", "Customer name")
	fs.StringVar(&f.product, "product", "", "Product type")
	fs.StringVar(&f.city, "city", "", "Destination city")
	fs.StringVar(&f.receipt, "receipt", "", "Order receipt date (YYYY-MM-DD, required for add)")
	fs.IntVar(&f.deadlineDays, "deadline-days", 0, "Negotiated deadline in days")
	fs.IntVar(&f.mfgDays, "mfg-days", 0, "Manufacturing time in days")
	fs.StringVar(&f.line, "line", string(domain.DefaultLine), "Production line (see 'prodplan lines')")
	fs.StringVar(&f.delivery, "delivery", "", "Override expected delivery date (YYYY-MM-DD)")
	fs.StringVar(&f.entry, "entry", "", "Override production entry deadline (YYYY-MM-DD)")
	fs.StringVar(&f.forecast, "forecast", "", "Override completion forecast (YYYY-MM-DD)")
	fs.IntVar(&f.daysLeft, "days-left", 0, "Override days until production")
}

// applySource copies the changed source fields onto p.
func (f *planFlags) applySource(fs *pflag.FlagSet, p *domain.ProductionPlan) error {
	if fs.Changed("customer") {
		p.Customer = strings.TrimSpace(f.customer)
	}
	if fs.Changed("product") {
		p.ProductType = strings.TrimSpace(f.product)
	}
	if fs.Changed("city") {
		p.City = strings.TrimSpace(f.city)
	}
	if fs.Changed("receipt") {
		d, err := domain.ParseDate(f.receipt)
		if err != nil {
			return err
		}
		p.OrderReceiptDate = d
	}
	if fs.Changed("deadline-days") {
		p.NegotiatedDeadlineDays = f.deadlineDays
	}
	if fs.Changed("mfg-days") {
		p.ManufacturingTimeDays = f.mfgDays
	}
	if fs.Changed("line") || p.ProductionLine == "" {
		line, err := parseLine(f.line)
		if err != nil {
			return err
		}
		p.ProductionLine = line
	}
	return nil
}

// applyOverrides copies explicitly given derived values onto p.
func (f *planFlags) applyOverrides(fs *pflag.FlagSet, p *domain.ProductionPlan) error {
	dates := []struct {
		flag, value string
		dst         *domain.Date
	}{
		{"delivery", f.delivery, &p.ExpectedDeliveryDate},
		{"entry", f.entry, &p.ProductionEntryDeadline},
		{"forecast", f.forecast, &p.CompletionForecast},
	}
	for _, d := range dates {
		if !fs.Changed(d.flag) {
			continue
		}
		parsed, err := domain.ParseDate(d.value)
		if err != nil {
			return fmt.Errorf("--%s: %w", d.flag, err)
		}
		*d.dst = parsed
	}
	if fs.Changed("days-left") {
		p.DaysUntilProduction = f.daysLeft
	}
	return nil
}

func parseLine(s string) (domain.ProductionLine, error) {
	line := domain.ProductionLine(strings.ToUpper(strings.TrimSpace(s)))
	if !line.IsValid() {
		return "", fmt.Errorf("%q: %w", s, domain.ErrInvalidLine)
	}
	return line, nil
}

func newPlanAddCmd(app *App) *cobra.Command {
	var flags planFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new production plan",
		Long: "Register a new production plan. Delivery date, production entry deadline,\n" +
			"days until production and completion forecast are derived from the receipt\n" +
			"date unless given explicitly. Without flags on a terminal an interactive\n" +
			"form is shown.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			fs := cmd.Flags()

			var p *domain.ProductionPlan
			if fs.NFlag() == 0 && app.IsInteractive {
				values := newPlanFormValues(app.Plans.Today())
				if err := planForm(values).Run(); err != nil {
					return err
				}
				var err error
				if p, err = values.toPlan(); err != nil {
					return err
				}
				scheduler.ApplyDerived(p, app.Plans.Today())
			} else {
				p = &domain.ProductionPlan{}
				if err := flags.applySource(fs, p); err != nil {
					return err
				}
				scheduler.ApplyDerived(p, app.Plans.Today())
				if err := flags.applyOverrides(fs, p); err != nil {
					return err
				}
			}

			if err := app.Plans.Add(ctx, p); err != nil {
				if errors.Is(err, domain.ErrMissingField) {
					return fmt.Errorf("cannot save plan: %w", err)
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved plan %s for %s on %s (%s)\n",
				p.DisplayID(), p.Customer, p.ProductionLine,
				formatter.StatusIndicator(p.DaysUntilProduction))
			return nil
		},
	}

	flags.register(cmd.Flags())

	return cmd
}

func newPlanEditCmd(app *App) *cobra.Command {
	var (
		flags  planFlags
		derive bool
	)

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Update fields of an existing plan",
		Long: "Update fields of an existing plan. Only the given flags change. With\n" +
			"--derive the derived dates are recomputed from the (updated) receipt date\n" +
			"and day counts before explicit overrides are applied.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			fs := cmd.Flags()

			p, err := app.Plans.Get(ctx, args[0])
			if err != nil {
				return err
			}
			if err := flags.applySource(fs, p); err != nil {
				return err
			}
			if derive {
				scheduler.ApplyDerived(p, app.Plans.Today())
			}
			if err := flags.applyOverrides(fs, p); err != nil {
				return err
			}

			if err := app.Plans.Update(ctx, p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated plan %s (%s)\n", p.DisplayID(), p.Customer)
			return nil
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().BoolVar(&derive, "derive", false, "Recompute derived dates")

	return cmd
}

// filterFlags are the records-table filters shared by list and report.
type filterFlags struct {
	date, customer, line string
}

func (f *filterFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.date, "date", "", "Only plans created on this day (YYYY-MM-DD)")
	fs.StringVar(&f.customer, "customer", "", "Only customers containing this text")
	fs.StringVar(&f.line, "line", "", "Only plans on this production line")
}

func (f *filterFlags) toFilter() (contract.PlanFilter, error) {
	var out contract.PlanFilter
	if f.date != "" {
		d, err := domain.ParseDate(f.date)
		if err != nil {
			return out, err
		}
		out.Date = d
	}
	out.Customer = f.customer
	if f.line != "" {
		line, err := parseLine(f.line)
		if err != nil {
			return out, err
		}
		out.Line = line
	}
	return out, nil
}

func newPlanListCmd(app *App) *cobra.Command {
	var (
		filters filterFlags
		sortBy  string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List production plans, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := filters.toFilter()
			if err != nil {
				return err
			}
			plans, err := app.Plans.List(cmd.Context())
			if err != nil {
				return err
			}
			plans = service.FilterPlans(plans, filter, app.Plans.Location())
			switch sortBy {
			case "", "created":
			case "urgency":
				scheduler.UrgencySort(plans)
			default:
				return fmt.Errorf("unknown sort %q (use created or urgency)", sortBy)
			}

			if len(plans) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No production plans found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlanList(plans))
			return nil
		},
	}

	filters.register(cmd.Flags())
	cmd.Flags().StringVar(&sortBy, "sort", "created", "Order: created (newest first) or urgency")

	return cmd
}

func newPlanShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show all fields of a plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Plans.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPlanDetail(p))
			return nil
		},
	}
}

func newPlanRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Delete a plan",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pending, err := app.Confirm.RequestDelete(ctx, args[0])
			if err != nil {
				return err
			}

			if !yes {
				ok, err := confirm(app, pending.Summary)
				if err != nil || !ok {
					_ = app.Confirm.Cancel(pending.Token)
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), "Deletion cancelled.")
					return nil
				}
			}

			out, err := app.Confirm.Confirm(ctx, pending.Token)
			if err != nil {
				return err
			}
			if !out.Removed {
				fmt.Fprintln(cmd.OutOrStdout(), "Plan was already gone; nothing deleted.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted plan %s\n", shortID(out.RemovedID))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func newPlanDeriveCmd(app *App) *cobra.Command {
	var (
		receipt               string
		deadlineDays, mfgDays int
	)

	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Preview the dates derived from a receipt date and day counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := app.Plans.Today()
			if receipt != "" {
				var err error
				if r, err = domain.ParseDate(receipt); err != nil {
					return err
				}
			}
			if deadlineDays < 0 || mfgDays < 0 {
				return domain.ErrNegativeDays
			}
			d, _ := scheduler.DeriveDates(r, deadlineDays, mfgDays, app.Plans.Today())
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDerivation(r, deadlineDays, mfgDays, d))
			return nil
		},
	}

	cmd.Flags().StringVar(&receipt, "receipt", "", "Order receipt date (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&deadlineDays, "deadline-days", 0, "Negotiated deadline in days")
	cmd.Flags().IntVar(&mfgDays, "mfg-days", 0, "Manufacturing time in days")

	return cmd
}

func shortID(id string) string {
	return (&domain.ProductionPlan{ID: id}).DisplayID()
}
