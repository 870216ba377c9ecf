package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/gridview/store"
)

// SeedCmd returns the command creating a SQLite database populated with
// the sample client set.
func SeedCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create a SQLite database with sample clients",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if dbPath == "" {
				return fmt.Errorf("--db is required")
			}
			s, err := store.OpenSQLite(ctx, dbPath, store.ClientSchema())
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			for _, row := range store.SeedClients() {
				if _, err := s.CreateRow(ctx, row.Fields); err != nil {
					return err
				}
			}
			color.Green("seeded %d clients into %s", len(store.SeedClients()), dbPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path")
	return cmd
}
