// Package gridview provides a client-side tabular view engine: a
// declarative, lazily-evaluated projection of row records through
// filter, sort, grouping, and pagination stages, driven by a mutable
// view state.
//
// gridview does not own its data. Rows are supplied by a data-access
// layer implementing the RowStore interface; the grid holds a read-only
// copy and recomputes its derived projection wholesale from the current
// view state on every relevant change. Visual editing state is isolated
// from the underlying rows until explicitly committed.
//
// # Features
//
//   - Multi-column stable sort with a header-click toggle cycle and a
//     drag-to-sort "sort zone"
//   - Per-column text filtering with operator selection (contains,
//     startsWith, endsWith, equals, notEquals) plus a global free-text
//     filter across all filterable columns
//   - Column reordering and resizing, with synthetic boundary columns
//     pinned at the ends
//   - Row selection that survives re-filtering and re-sorting
//   - A hierarchical "nested view" grouping rows by the active sort
//     key sequence, with per-group collapse state
//   - Inline row editing through a draft that never touches the row
//     until saved
//   - Export to CSV, XLSX, print-oriented HTML, JSON, and XML, with
//     optional gzip/xz/zstd compression of the artifact
//
// # Basic Usage
//
// Build a grid from column definitions and a row store:
//
//	grid, err := gridview.NewBuilder().
//		WithColumns(gridview.ClientColumns()...).
//		WithStore(store).
//		Build(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := grid.Reload(ctx); err != nil {
//		log.Fatal(err)
//	}
//
//	grid.State().ToggleSort("company")
//	grid.State().SetColumnFilter("name", gridview.OpContains, "smith")
//	p := grid.Project()
//
// The projection contains either a flat page of rows or, when nested
// view is active with at least one sort key, a tree of group nodes over
// the complete filtered set.
//
// # Export
//
//	opts := gridview.NewExportOptions().
//		WithFormat(gridview.ExportXLSX).
//		WithRowLimit(100)
//	err = grid.Export(w, opts)
//
// All formats resolve cell values through the same rendering rules used
// on screen, so exported values match displayed values.
package gridview
