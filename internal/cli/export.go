package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/gridview"
)

// ExportCmd returns the command writing the current view to a file in
// one of the five export formats.
func ExportCmd() *cobra.Command {
	var (
		dbPath    string
		sorts     []string
		filters   []string
		global    string
		format    string
		output    string
		limit     int
		noHeaders bool
		compress  string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the filtered, sorted client set",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			f, err := gridview.ParseExportFormat(format)
			if err != nil {
				return fmt.Errorf("unknown format %q", format)
			}
			opts := gridview.NewExportOptions().
				WithFormat(f).
				WithRowLimit(limit)
			if noHeaders {
				opts = opts.WithoutHeaders()
			}
			switch compress {
			case "":
			case "gz":
				opts = opts.WithCompression(gridview.CompressionGZ)
			case "xz":
				opts = opts.WithCompression(gridview.CompressionXZ)
			case "zstd", "zst":
				opts = opts.WithCompression(gridview.CompressionZSTD)
			default:
				return fmt.Errorf("unknown compression %q", compress)
			}

			st, closeStore, err := openStore(ctx, dbPath)
			if err != nil {
				return err
			}
			defer func() { _ = closeStore() }()

			grid, err := buildGrid(ctx, st, sorts, filters, global, false, 0, gridview.DefaultPageSize)
			if err != nil {
				return err
			}

			if output == "" {
				output = opts.FileName()
			}
			out, err := os.Create(output)
			if err != nil {
				return err
			}
			defer func() { _ = out.Close() }()

			if err := grid.Export(out, opts); err != nil {
				return err
			}
			color.Green("wrote %s", output)
			return nil
		},
	}

	addViewFlags(cmd, &dbPath, &sorts, &filters, &global)
	cmd.Flags().StringVarP(&format, "format", "f", "csv", "export format: csv, xlsx, html, json, xml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: clients.<ext>)")
	cmd.Flags().IntVar(&limit, "limit", 0, "cap exported rows, 0 = unlimited")
	cmd.Flags().BoolVar(&noHeaders, "no-headers", false, "omit the header/metadata block")
	cmd.Flags().StringVar(&compress, "compress", "", "compress the artifact: gz, xz, zstd")
	return cmd
}
