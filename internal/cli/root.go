package cli

import (
	"errors"

	"github.com/alexanderramin/prodplan/internal/service"
	"github.com/spf13/cobra"
)

// errNeedsConfirmation is returned when a destructive command runs without
// --yes and there is no terminal to ask on.
var errNeedsConfirmation = errors.New("confirmation required: re-run with --yes")

// App holds references to the services and settings used by CLI commands.
type App struct {
	Plans   service.PlanService
	Confirm service.ConfirmationService
	Export  service.ExportService

	// ExportDir is where backups and reports go when --out is not given.
	ExportDir string

	// IsInteractive enables huh forms and confirmation prompts.
	IsInteractive bool

	// Prompt asks a yes/no question. Nil falls back to a huh confirm form.
	Prompt func(title string) (bool, error)
}

// NewRootCmd creates the top-level "prodplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "prodplan",
		Short:         "Production planning tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newPlanCmd(app),
		newLinesCmd(app),
		newBackupCmd(app),
		newReportCmd(app),
		newBrowseCmd(app),
	)

	return root
}

// confirm asks title through app.Prompt or a huh form. Without a terminal
// it fails with errNeedsConfirmation.
func confirm(app *App, title string) (bool, error) {
	if app.Prompt != nil {
		return app.Prompt(title)
	}
	if !app.IsInteractive {
		return false, errNeedsConfirmation
	}
	var ok bool
	if err := wizardConfirm(title, &ok).Run(); err != nil {
		return false, err
	}
	return ok, nil
}
