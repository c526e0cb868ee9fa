package cli

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/alexanderramin/prodplan/internal/cli/formatter"
	"github.com/alexanderramin/prodplan/internal/report"
	"github.com/alexanderramin/prodplan/internal/service"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate printable reports",
	}

	cmd.AddCommand(newReportExportCmd(app))

	return cmd
}

func newReportExportCmd(app *App) *cobra.Command {
	var (
		format  string
		out     string
		filters filterFlags
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the (filtered) plans as a PDF or XLSX report",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}
			filter, err := filters.toFilter()
			if err != nil {
				return err
			}

			stop := func() {}
			if app.IsInteractive {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Rendering "+string(f)+" report...")
			}
			var buf bytes.Buffer
			n, err := app.Export.Report(cmd.Context(), filter, f, &buf)
			stop()
			if errors.Is(err, service.ErrNothingToExport) {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleYellow.Render("No records match the current filter; nothing exported."))
				return nil
			}
			if err != nil {
				return err
			}

			path := out
			if path == "" {
				path = filepath.Join(app.ExportDir, service.ReportFileName(app.Plans.Now(), f))
			}
			if err := writeFile(path, buf.Bytes()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d row(s) to %s\n", n, path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(report.FormatPDF), "Report format: pdf or xlsx")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default production_report_YYYYMMDD_HHMM.<format> in the export directory)")
	filters.register(cmd.Flags())

	return cmd
}
