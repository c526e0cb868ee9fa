package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/prodplan/internal/contract"
	"github.com/alexanderramin/prodplan/internal/importer"
	"github.com/alexanderramin/prodplan/internal/report"
)

// ErrNothingToExport is returned when a report would have no rows.
var ErrNothingToExport = errors.New("no records to export")

// SnapshotFileName names a backup taken at now.
func SnapshotFileName(now time.Time) string {
	return "production_backup_" + now.Format("2006-01-02") + ".json"
}

// ReportFileName names a report generated at now.
func ReportFileName(now time.Time, format report.Format) string {
	return "production_report_" + now.Format("20060102_1504") + "." + string(format)
}

type exportService struct {
	plans    PlanService
	observer UseCaseObserver
}

func NewExportService(plans PlanService, observers ...UseCaseObserver) ExportService {
	return &exportService{
		plans:    plans,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *exportService) Snapshot(ctx context.Context, w io.Writer) (n int, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observe(ctx, "export-snapshot", startedAt, err, map[string]any{"records": n})
	}()

	plans, err := s.plans.List(ctx)
	if err != nil {
		return 0, err
	}
	if err := importer.EncodeSnapshot(w, plans); err != nil {
		return 0, err
	}
	return len(plans), nil
}

func (s *exportService) Report(ctx context.Context, filter contract.PlanFilter, format report.Format, w io.Writer) (n int, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observe(ctx, "export-report", startedAt, err, map[string]any{
			"format":   string(format),
			"rows":     n,
			"filtered": !filter.IsEmpty(),
		})
	}()

	renderer, err := report.NewRenderer(format)
	if err != nil {
		return 0, err
	}
	plans, err := s.plans.List(ctx)
	if err != nil {
		return 0, err
	}
	selected := FilterPlans(plans, filter, s.plans.Location())
	if len(selected) == 0 {
		return 0, ErrNothingToExport
	}

	table := report.BuildTable(selected, s.plans.Now())
	if err := renderer.Render(w, table); err != nil {
		return 0, fmt.Errorf("exporting %s report: %w", format, err)
	}
	return len(selected), nil
}

func (s *exportService) observe(ctx context.Context, name string, startedAt time.Time, err error, fields map[string]any) {
	observeUseCase(ctx, s.observer, name, startedAt, err, fields)
}
