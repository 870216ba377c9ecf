package gridview

import (
	"sort"

	"github.com/example/gridview/domain/model"
)

// compareRows applies the sort spec as a multi-key comparator: the
// first key on which the rows differ decides, negated for descending
// keys. Returns 0 when every key ties.
func compareRows(a, b model.Row, columns map[string]Column, spec []SortKey) int {
	for _, key := range spec {
		c, ok := columns[key.ColumnID]
		if !ok {
			continue
		}
		cmp := model.Compare(c.CellValue(a), c.CellValue(b))
		if cmp == 0 {
			continue
		}
		if key.Direction == SortDesc {
			return -cmp
		}
		return cmp
	}
	return 0
}

// sortRows returns a sorted copy of rows per the sort spec. The sort is
// stable: ties keep their prior relative order, which both makes
// multi-sort deterministic and lets grouping nest correctly.
func sortRows(rows []model.Row, columns map[string]Column, spec []SortKey) []model.Row {
	if len(spec) == 0 {
		return rows
	}
	out := make([]model.Row, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		return compareRows(out[i], out[j], columns, spec) < 0
	})
	return out
}
