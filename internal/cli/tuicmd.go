package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/gridview"
	"github.com/example/gridview/internal/tui"
)

// TuiCmd returns the command starting the interactive terminal grid.
func TuiCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive client grid",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			st, closeStore, err := openStore(ctx, dbPath)
			if err != nil {
				return err
			}
			defer func() { _ = closeStore() }()

			grid, err := gridview.NewBuilder().
				WithColumns(gridview.ClientColumns()...).
				WithStore(st).
				Build(ctx)
			if err != nil {
				return err
			}
			if err := grid.Reload(ctx); err != nil {
				return err
			}
			return tui.Run(grid)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (default: built-in sample data)")
	return cmd
}
