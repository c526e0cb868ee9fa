package cli

import (
	"fmt"

	"github.com/alexanderramin/prodplan/internal/cli/formatter"
	"github.com/alexanderramin/prodplan/internal/domain"
	"github.com/spf13/cobra"
)

func newLinesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "lines",
		Short: "List the production lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLines(domain.ProductionLines, domain.DefaultLine))
			return nil
		},
	}
}
