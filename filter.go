package gridview

import (
	"strings"

	"github.com/example/gridview/domain/model"
)

// matchOperator evaluates one filter operator case-insensitively
// against a rendered cell value. An unrecognized operator passes; by
// construction inputs are limited to the enumerated operators, so no
// further validation exists.
func matchOperator(op FilterOperator, cell, query string) bool {
	cell = strings.ToLower(cell)
	query = strings.ToLower(query)
	switch op {
	case OpContains:
		return strings.Contains(cell, query)
	case OpStartsWith:
		return strings.HasPrefix(cell, query)
	case OpEndsWith:
		return strings.HasSuffix(cell, query)
	case OpEquals:
		return cell == query
	case OpNotEquals:
		return cell != query
	default:
		return true
	}
}

// matchRow reports whether the row passes the full filter spec: every
// present column filter (ANDed) plus, when the global text is
// non-empty, a contains match on at least one filterable column.
//
// Matching operates on each column's rendered representation, not the
// raw value, so a date filters the same way it displays.
func matchRow(row model.Row, columns []Column, filters map[string]ColumnFilter, globalText string) bool {
	for _, c := range columns {
		f, ok := filters[c.ID]
		if !ok {
			continue
		}
		if !matchOperator(f.Operator, c.RenderCell(row), f.Text) {
			return false
		}
	}
	if globalText == "" {
		return true
	}
	for _, c := range columns {
		if !c.Filterable {
			continue
		}
		if matchOperator(OpContains, c.RenderCell(row), globalText) {
			return true
		}
	}
	return false
}

// filterRows returns the rows passing the filter spec, preserving
// input order.
func filterRows(rows []model.Row, columns []Column, filters map[string]ColumnFilter, globalText string) []model.Row {
	if len(filters) == 0 && globalText == "" {
		return rows
	}
	out := make([]model.Row, 0, len(rows))
	for _, r := range rows {
		if matchRow(r, columns, filters, globalText) {
			out = append(out, r)
		}
	}
	return out
}
