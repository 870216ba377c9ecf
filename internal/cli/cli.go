// Package cli implements the gridview subcommands.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/gridview"
	"github.com/example/gridview/store"
)

// openStore returns the configured row store: the SQLite database at
// dbPath, or the in-memory seed set when no path is given.
func openStore(ctx context.Context, dbPath string) (gridview.RowStore, func() error, error) {
	if dbPath == "" {
		return store.NewMemoryWithRows(store.SeedClients()), func() error { return nil }, nil
	}
	s, err := store.OpenSQLite(ctx, dbPath, store.ClientSchema())
	if err != nil {
		return nil, nil, err
	}
	return s, s.Close, nil
}

// buildGrid constructs a loaded grid and applies the sort/filter flags.
func buildGrid(ctx context.Context, st gridview.RowStore, sorts, filters []string, global string, nested bool, page, pageSize int) (*gridview.Grid, error) {
	grid, err := gridview.NewBuilder().
		WithColumns(gridview.ClientColumns()...).
		WithStore(st).
		WithPageSize(pageSize).
		Build(ctx)
	if err != nil {
		return nil, err
	}
	if err := grid.Reload(ctx); err != nil {
		return nil, err
	}

	state := grid.State()
	for _, s := range sorts {
		col, dir, err := parseSortFlag(s)
		if err != nil {
			return nil, err
		}
		if _, ok := grid.Column(col); !ok {
			return nil, fmt.Errorf("%w: %s", gridview.ErrUnknownColumn, col)
		}
		state.AppendSortKey(col)
		if dir == gridview.SortDesc {
			// Second toggle flips the appended ascending key.
			state.ToggleSort(col)
		}
	}
	for _, f := range filters {
		col, op, text, err := parseFilterFlag(f)
		if err != nil {
			return nil, err
		}
		if _, ok := grid.Column(col); !ok {
			return nil, fmt.Errorf("%w: %s", gridview.ErrUnknownColumn, col)
		}
		state.SetColumnFilter(col, op, text)
	}
	state.SetGlobalFilter(global)
	if nested && !state.Nested {
		state.ToggleNested()
	}
	state.SetPage(page)
	return grid, nil
}

// parseSortFlag parses "column" or "column:desc".
func parseSortFlag(s string) (string, gridview.SortDirection, error) {
	parts := strings.SplitN(s, ":", 2)
	col := parts[0]
	if col == "" {
		return "", gridview.SortAsc, fmt.Errorf("invalid sort %q, want column[:asc|desc]", s)
	}
	if len(parts) == 1 || parts[1] == "asc" {
		return col, gridview.SortAsc, nil
	}
	if parts[1] == "desc" {
		return col, gridview.SortDesc, nil
	}
	return "", gridview.SortAsc, fmt.Errorf("invalid sort direction %q", parts[1])
}

// parseFilterFlag parses "column:operator:text", e.g.
// "name:contains:smith".
func parseFilterFlag(s string) (string, gridview.FilterOperator, string, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 || parts[0] == "" || parts[2] == "" {
		return "", 0, "", fmt.Errorf("invalid filter %q, want column:operator:text", s)
	}
	var op gridview.FilterOperator
	switch parts[1] {
	case "contains":
		op = gridview.OpContains
	case "startsWith", "startswith":
		op = gridview.OpStartsWith
	case "endsWith", "endswith":
		op = gridview.OpEndsWith
	case "equals", "eq":
		op = gridview.OpEquals
	case "notEquals", "ne":
		op = gridview.OpNotEquals
	default:
		return "", 0, "", fmt.Errorf("unknown filter operator %q", parts[1])
	}
	return parts[0], op, parts[2], nil
}

// addViewFlags registers the flags shared by view and export.
func addViewFlags(cmd *cobra.Command, dbPath *string, sorts, filters *[]string, global *string) {
	cmd.Flags().StringVar(dbPath, "db", "", "SQLite database path (default: built-in sample data)")
	cmd.Flags().StringArrayVar(sorts, "sort", nil, "sort key column[:asc|desc], repeatable")
	cmd.Flags().StringArrayVar(filters, "filter", nil, "column filter column:operator:text, repeatable")
	cmd.Flags().StringVar(global, "search", "", "global free-text filter")
}
