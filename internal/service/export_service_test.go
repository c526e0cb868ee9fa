package service

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/alexanderramin/prodplan/internal/contract"
	"github.com/alexanderramin/prodplan/internal/domain"
	"github.com/alexanderramin/prodplan/internal/importer"
	"github.com/alexanderramin/prodplan/internal/report"
	"github.com/alexanderramin/prodplan/internal/repository"
	"github.com/alexanderramin/prodplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestFileNames(t *testing.T) {
	now := time.Date(2024, time.June, 10, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, "production_backup_2024-06-10.json", SnapshotFileName(now))
	assert.Equal(t, "production_report_20240610_0905.pdf", ReportFileName(now, report.FormatPDF))
	assert.Equal(t, "production_report_20240610_0905.xlsx", ReportFileName(now, report.FormatXLSX))
}

func TestExportService_SnapshotEmpty(t *testing.T) {
	svc := NewExportService(newTestPlanService(t, repository.NewMemorySlotRepo()))
	var buf bytes.Buffer
	n, err := svc.Snapshot(context.Background(), &buf)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, "[]", buf.String())
}

func TestExportService_SnapshotThenImportDuplicates(t *testing.T) {
	ctx := context.Background()
	slot := repository.NewMemorySlotRepo()
	seedPlans(t, slot,
		testutil.NewTestPlan("A", testutil.WithID("a")),
		testutil.NewTestPlan("B", testutil.WithID("b")),
		testutil.NewTestPlan("C", testutil.WithID("c")),
	)
	plans := newTestPlanService(t, slot)
	export := NewExportService(plans)

	var buf bytes.Buffer
	n, err := export.Snapshot(ctx, &buf)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	batch, err := importer.ParseSnapshot(buf.Bytes())
	require.NoError(t, err)
	_, err = plans.ImportMerge(ctx, batch, domain.MergeDuplicate)
	require.NoError(t, err)

	all, _ := plans.List(ctx)
	assert.Equal(t, []string{"a", "b", "c", "a", "b", "c"}, ids(all))
}

func TestExportService_NonArrayImportLeavesCollection(t *testing.T) {
	ctx := context.Background()
	slot := repository.NewMemorySlotRepo()
	seedPlans(t, slot, testutil.NewTestPlan("A", testutil.WithID("a")))
	plans := newTestPlanService(t, slot)

	_, err := importer.ParseSnapshot([]byte(`{"plans": []}`))
	require.ErrorIs(t, err, importer.ErrNotArray)

	all, _ := plans.List(ctx)
	assert.Equal(t, []string{"a"}, ids(all))
	assert.Equal(t, 0, slot.Writes())
}

func TestExportService_ReportEmptySelection(t *testing.T) {
	ctx := context.Background()
	slot := repository.NewMemorySlotRepo()
	seedPlans(t, slot, testutil.NewTestPlan("Acme", testutil.WithID("a")))
	export := NewExportService(newTestPlanService(t, slot))

	var buf bytes.Buffer
	_, err := export.Report(ctx, contract.PlanFilter{Customer: "globex"}, report.FormatPDF, &buf)
	assert.ErrorIs(t, err, ErrNothingToExport)
	assert.Zero(t, buf.Len())

	empty := NewExportService(newTestPlanService(t, repository.NewMemorySlotRepo()))
	_, err = empty.Report(ctx, contract.PlanFilter{}, report.FormatXLSX, &buf)
	assert.ErrorIs(t, err, ErrNothingToExport)
}

func TestExportService_ReportPDF(t *testing.T) {
	ctx := context.Background()
	slot := repository.NewMemorySlotRepo()
	seedPlans(t, slot, testutil.NewTestPlan("Acme", testutil.WithID("a")))
	export := NewExportService(newTestPlanService(t, slot))

	var buf bytes.Buffer
	n, err := export.Report(ctx, contract.PlanFilter{}, report.FormatPDF, &buf)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestExportService_ReportXLSXFiltered(t *testing.T) {
	ctx := context.Background()
	slot := repository.NewMemorySlotRepo()
	seedPlans(t, slot,
		testutil.NewTestPlan("Acme", testutil.WithID("a"), testutil.WithLine(domain.LineMTL02)),
		testutil.NewTestPlan("Globex", testutil.WithID("g"), testutil.WithLine(domain.LineMTP01)),
	)
	export := NewExportService(newTestPlanService(t, slot))

	var buf bytes.Buffer
	n, err := export.Report(ctx, contract.PlanFilter{Line: domain.LineMTP01}, report.FormatXLSX, &buf)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(report.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Globex", rows[3][0])
	assert.Equal(t, "Generated at 10/06/2024 12:00", rows[1][0])
}

func TestExportService_UnknownFormat(t *testing.T) {
	export := NewExportService(newTestPlanService(t, repository.NewMemorySlotRepo()))
	_, err := export.Report(context.Background(), contract.PlanFilter{}, report.Format("csv"), &bytes.Buffer{})
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestExportService_ObservesReport(t *testing.T) {
	var logs bytes.Buffer
	slot := repository.NewMemorySlotRepo()
	seedPlans(t, slot, testutil.NewTestPlan("Acme"))
	export := NewExportService(newTestPlanService(t, slot),
		NewLogUseCaseObserver(slog.New(slog.NewTextHandler(&logs, nil))))

	_, err := export.Report(context.Background(), contract.PlanFilter{Customer: "acme"}, report.FormatXLSX, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "use_case=export-report")
	assert.Contains(t, logs.String(), "filtered=true")
	assert.Contains(t, logs.String(), "format=xlsx")
	assert.Contains(t, logs.String(), "rows=1")
}
