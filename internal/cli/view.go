package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/gridview"
)

// ViewCmd returns the command rendering the grid to the terminal.
func ViewCmd() *cobra.Command {
	var (
		dbPath   string
		sorts    []string
		filters  []string
		global   string
		nested   bool
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Render the client grid as a table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			st, closeStore, err := openStore(ctx, dbPath)
			if err != nil {
				return err
			}
			defer func() { _ = closeStore() }()

			grid, err := buildGrid(ctx, st, sorts, filters, global, nested, page, pageSize)
			if err != nil {
				return err
			}
			grid.RenderText(cmd.OutOrStdout())
			return nil
		},
	}

	addViewFlags(cmd, &dbPath, &sorts, &filters, &global)
	cmd.Flags().BoolVar(&nested, "nested", false, "group rows by the active sort keys")
	cmd.Flags().IntVar(&page, "page", 0, "zero-based page of the flat view")
	cmd.Flags().IntVar(&pageSize, "page-size", gridview.DefaultPageSize, "rows per page")
	return cmd
}
