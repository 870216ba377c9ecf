package gridview

import "github.com/example/gridview/domain/model"

// Projection is the derived render state: the filtered, sorted row set
// shaped as either a flat page or a group tree. It is recomputed
// wholesale from the view state on every relevant change.
type Projection struct {
	// Columns are the visible columns in display order.
	Columns []Column
	// Rows is the current page of the flat view. Empty when grouped.
	Rows []model.Row
	// Groups is the nested-view tree. Nil unless nested view is active
	// with at least one sort key.
	Groups []*GroupNode
	// TotalRows is the filtered row count before pagination.
	TotalRows int
	// Page is the clamped pagination cursor.
	Page int
	// PageCount is the number of pages of the flat view. Zero when
	// grouped, where pagination is disabled and the full set renders.
	PageCount int
}

// Grouped reports whether the projection carries a group tree instead
// of a flat page.
func (p Projection) Grouped() bool {
	return p.Groups != nil
}

// Project recomputes the derived projection from the current rows and
// view state: filter, then stable sort, then either grouping (nested
// view with sort keys) or pagination.
func (g *Grid) Project() Projection {
	s := g.state
	filtered := filterRows(g.rows, g.columns, s.Filters, s.GlobalFilter)
	sorted := sortRows(filtered, g.colByID, s.SortSpec)

	p := Projection{
		Columns:   g.VisibleColumns(),
		TotalRows: len(sorted),
	}

	if s.Nested && len(s.SortSpec) > 0 {
		p.Groups = buildTree(sorted, g.colByID, s.SortSpec)
		return p
	}

	pageCount := (len(sorted) + s.PageSize - 1) / s.PageSize
	if pageCount < 1 {
		pageCount = 1
	}
	page := s.Page
	if page >= pageCount {
		page = pageCount - 1
	}
	if page < 0 {
		page = 0
	}
	start := page * s.PageSize
	end := start + s.PageSize
	if end > len(sorted) {
		end = len(sorted)
	}
	if start > len(sorted) {
		start = len(sorted)
	}

	p.Rows = sorted[start:end]
	p.Page = page
	p.PageCount = pageCount
	return p
}

// exportView returns the filtered, sorted row set and visible
// non-synthetic columns the export formatter consumes. Export bypasses
// pagination entirely.
func (g *Grid) exportView() ([]model.Row, []Column) {
	s := g.state
	filtered := filterRows(g.rows, g.columns, s.Filters, s.GlobalFilter)
	sorted := sortRows(filtered, g.colByID, s.SortSpec)

	cols := make([]Column, 0, len(s.ColumnOrder))
	for _, id := range s.ColumnOrder {
		c, ok := g.colByID[id]
		if !ok || c.Synthetic || s.IsHidden(id) {
			continue
		}
		cols = append(cols, c)
	}
	return sorted, cols
}
