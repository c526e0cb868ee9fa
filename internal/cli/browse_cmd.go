package cli

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse, filter and delete plans interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.IsInteractive {
				return errors.New("browse needs an interactive terminal (use 'prodplan plan list')")
			}
			_, err := tea.NewProgram(newBrowseView(app), tea.WithAltScreen()).Run()
			return err
		},
	}
}
