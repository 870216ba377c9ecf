package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/gridview/internal/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gridview",
		Short: "gridview - a client-side tabular view engine demo",
		Long: `gridview renders, filters, sorts, groups, and exports a CRM client
table from the terminal. Data comes from a SQLite database or a
built-in sample set.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(cli.ViewCmd())
	rootCmd.AddCommand(cli.ExportCmd())
	rootCmd.AddCommand(cli.SeedCmd())
	rootCmd.AddCommand(cli.TuiCmd())
	rootCmd.AddCommand(cli.ConfigCmd())

	if err := rootCmd.Execute(); err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}
}
