package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/prodplan/internal/cli/formatter"
	"github.com/alexanderramin/prodplan/internal/domain"
	"github.com/alexanderramin/prodplan/internal/importer"
	"github.com/alexanderramin/prodplan/internal/service"
	"github.com/spf13/cobra"
)

func newBackupCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or import a JSON backup of all plans",
	}

	cmd.AddCommand(
		newBackupExportCmd(app),
		newBackupImportCmd(app),
	)

	return cmd
}

func newBackupExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every plan to a JSON backup file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "-" {
				_, err := app.Export.Snapshot(cmd.Context(), cmd.OutOrStdout())
				return err
			}

			var buf bytes.Buffer
			n, err := app.Export.Snapshot(cmd.Context(), &buf)
			if err != nil {
				return err
			}
			path := out
			if path == "" {
				path = filepath.Join(app.ExportDir, service.SnapshotFileName(app.Plans.Now()))
			}
			if err := writeFile(path, buf.Bytes()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d record(s) to %s\n", n, path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default production_backup_YYYY-MM-DD.json in the export directory; - for stdout)")

	return cmd
}

func newBackupImportCmd(app *App) *cobra.Command {
	var (
		strategy string
		yes      bool
	)

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Merge a JSON backup into the current plans",
		Long: "Merge a JSON backup into the current plans. Imported records are placed\n" +
			"before the existing ones. --strategy decides what happens to records whose\n" +
			"id already exists: duplicate (keep both), skip-existing or overwrite.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, ok := domain.ParseMergeStrategy(strategy)
			if !ok {
				return fmt.Errorf("unknown strategy %q (use %s)", strategy, strategyNames())
			}

			batch, err := importer.LoadSnapshotFile(args[0])
			if err != nil {
				return fmt.Errorf("import rejected: %w", err)
			}

			pending, err := app.Confirm.RequestImport(ctx, batch, s)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, note := range pending.Details {
				fmt.Fprintf(w, "%s %s\n", formatter.StyleYellow.Render("!"), note)
			}

			if !yes {
				ok, err := confirm(app, pending.Summary)
				if err != nil || !ok {
					_ = app.Confirm.Cancel(pending.Token)
					if err != nil {
						return err
					}
					fmt.Fprintln(w, "Import cancelled.")
					return nil
				}
			}

			outcome, err := app.Confirm.Confirm(ctx, pending.Token)
			if err != nil {
				return err
			}
			writeImportResult(w, outcome.Import)
			return nil
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", string(domain.MergeDuplicate), "How to treat existing ids: "+strategyNames())
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func writeImportResult(w io.Writer, res *service.ImportResult) {
	fmt.Fprintf(w, "Imported %d record(s)", res.Added)
	if res.Overwritten > 0 {
		fmt.Fprintf(w, ", overwrote %d", res.Overwritten)
	}
	if res.Skipped > 0 {
		fmt.Fprintf(w, ", skipped %d existing", res.Skipped)
	}
	fmt.Fprintln(w, ".")
	if res.Strategy == domain.MergeDuplicate && len(res.CollidingIDs) > 0 {
		fmt.Fprintln(w, formatter.Dim(fmt.Sprintf(
			"%d imported id(s) were already present and now appear twice.", len(res.CollidingIDs))))
	}
}

func strategyNames() string {
	names := make([]string, len(domain.ValidMergeStrategies))
	for i, s := range domain.ValidMergeStrategies {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// writeFile creates path's directory and writes data to it.
func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
