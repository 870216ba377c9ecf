package gridview

// SortDirection is the direction of one sort key.
type SortDirection int

const (
	// SortAsc sorts ascending
	SortAsc SortDirection = iota
	// SortDesc sorts descending
	SortDesc
)

// String returns the string representation of SortDirection
func (d SortDirection) String() string {
	if d == SortDesc {
		return "desc"
	}
	return "asc"
}

// SortKey is one (column, direction) pair of the sort specification.
type SortKey struct {
	ColumnID  string
	Direction SortDirection
}

// FilterOperator is the matching rule of a column filter.
type FilterOperator int

const (
	// OpContains matches when the cell contains the filter text
	OpContains FilterOperator = iota
	// OpStartsWith matches when the cell starts with the filter text
	OpStartsWith
	// OpEndsWith matches when the cell ends with the filter text
	OpEndsWith
	// OpEquals matches when the cell equals the filter text
	OpEquals
	// OpNotEquals matches when the cell does not equal the filter text
	OpNotEquals
)

// String returns the string representation of FilterOperator
func (op FilterOperator) String() string {
	switch op {
	case OpContains:
		return "contains"
	case OpStartsWith:
		return "startsWith"
	case OpEndsWith:
		return "endsWith"
	case OpEquals:
		return "equals"
	case OpNotEquals:
		return "notEquals"
	default:
		return "contains"
	}
}

// ColumnFilter is one column's (operator, text) filter entry.
type ColumnFilter struct {
	Operator FilterOperator
	Text     string
}

// ViewState holds the mutable presentation state of a grid: sort spec,
// filter spec, column order and sizing, row selection, pagination
// cursor, and the nested-view collapse set. It is pure data with
// controlled mutation; the derived row projection is recomputed from it
// wholesale, never patched incrementally.
//
// Selection deliberately survives re-filtering, re-sorting, and
// refetching. Identifiers of rows that no longer exist are not pruned;
// ClearSelection is the explicit escape hatch.
type ViewState struct {
	// SortSpec is the ordered multi-sort specification; the first entry
	// is the primary key. Column ids are unique within it.
	SortSpec []SortKey
	// Filters maps column id to its filter entry. Entries with empty
	// text are never stored.
	Filters map[string]ColumnFilter
	// GlobalFilter is the free-text filter applied across all
	// filterable columns via contains.
	GlobalFilter string
	// ColumnOrder is a permutation of all column ids.
	ColumnOrder []string
	// ColumnWidths holds per-column pixel widths.
	ColumnWidths map[string]int
	// Hidden is the set of column ids excluded from the visible set.
	Hidden map[string]struct{}
	// Selection is the set of selected row ids.
	Selection map[string]struct{}
	// Page is the zero-based pagination cursor for the flat view.
	Page int
	// PageSize is the number of rows per page in the flat view.
	PageSize int
	// Nested reports whether the grouped view is active.
	Nested bool
	// Collapsed is the set of collapsed group-node keys.
	Collapsed map[string]struct{}
}

// DefaultPageSize is the flat-view page size unless configured.
const DefaultPageSize = 10

// NewViewState creates view state with the column order and widths
// taken from the column definitions.
func NewViewState(columns []Column) *ViewState {
	s := &ViewState{
		Filters:      make(map[string]ColumnFilter),
		ColumnOrder:  make([]string, 0, len(columns)),
		ColumnWidths: make(map[string]int, len(columns)),
		Hidden:       make(map[string]struct{}),
		Selection:    make(map[string]struct{}),
		Collapsed:    make(map[string]struct{}),
		PageSize:     DefaultPageSize,
	}
	for _, c := range columns {
		s.ColumnOrder = append(s.ColumnOrder, c.ID)
		s.ColumnWidths[c.ID] = c.Width
	}
	return s
}

// SortIndex returns the position of the column in the sort spec, or -1.
func (s *ViewState) SortIndex(columnID string) int {
	for i, k := range s.SortSpec {
		if k.ColumnID == columnID {
			return i
		}
	}
	return -1
}

// ToggleSort advances the column through the header-click cycle:
// unsorted -> ascending (appended) -> descending (same position) ->
// removed.
func (s *ViewState) ToggleSort(columnID string) {
	i := s.SortIndex(columnID)
	switch {
	case i < 0:
		s.SortSpec = append(s.SortSpec, SortKey{ColumnID: columnID, Direction: SortAsc})
	case s.SortSpec[i].Direction == SortAsc:
		s.SortSpec[i].Direction = SortDesc
	default:
		s.SortSpec = append(s.SortSpec[:i], s.SortSpec[i+1:]...)
	}
}

// AppendSortKey appends the column as a new ascending sort key. Used by
// the drag-to-sort-zone path; a column already present is a no-op.
// Reports whether the spec changed.
func (s *ViewState) AppendSortKey(columnID string) bool {
	if s.SortIndex(columnID) >= 0 {
		return false
	}
	s.SortSpec = append(s.SortSpec, SortKey{ColumnID: columnID, Direction: SortAsc})
	return true
}

// RemoveSortKey removes the column from the sort spec if present.
func (s *ViewState) RemoveSortKey(columnID string) {
	if i := s.SortIndex(columnID); i >= 0 {
		s.SortSpec = append(s.SortSpec[:i], s.SortSpec[i+1:]...)
	}
}

// MoveSortKey splices the fromID key out of the sort spec and reinserts
// it at toID's position. Reports whether the spec changed.
func (s *ViewState) MoveSortKey(fromID, toID string) bool {
	from := s.SortIndex(fromID)
	to := s.SortIndex(toID)
	if from < 0 || to < 0 || from == to {
		return false
	}
	key := s.SortSpec[from]
	s.SortSpec = append(s.SortSpec[:from], s.SortSpec[from+1:]...)
	s.SortSpec = append(s.SortSpec[:to], append([]SortKey{key}, s.SortSpec[to:]...)...)
	return true
}

// SetColumnFilter sets the column's filter entry. Empty text removes
// the entry entirely; the filter spec never holds empty filters.
func (s *ViewState) SetColumnFilter(columnID string, op FilterOperator, text string) {
	if text == "" {
		delete(s.Filters, columnID)
		return
	}
	s.Filters[columnID] = ColumnFilter{Operator: op, Text: text}
}

// SetGlobalFilter sets the cross-column free-text filter.
func (s *ViewState) SetGlobalFilter(text string) {
	s.GlobalFilter = text
}

// ColumnIndex returns the position of the column in the column order,
// or -1.
func (s *ViewState) ColumnIndex(columnID string) int {
	for i, id := range s.ColumnOrder {
		if id == columnID {
			return i
		}
	}
	return -1
}

// MoveColumn splices fromID out of the column order and reinserts it at
// toID's position, preserving the relative order of all other columns.
// Reports whether the order changed.
func (s *ViewState) MoveColumn(fromID, toID string) bool {
	from := s.ColumnIndex(fromID)
	to := s.ColumnIndex(toID)
	if from < 0 || to < 0 || from == to {
		return false
	}
	id := s.ColumnOrder[from]
	s.ColumnOrder = append(s.ColumnOrder[:from], s.ColumnOrder[from+1:]...)
	s.ColumnOrder = append(s.ColumnOrder[:to], append([]string{id}, s.ColumnOrder[to:]...)...)
	return true
}

// SetColumnWidth records a resized column width in pixels.
func (s *ViewState) SetColumnWidth(columnID string, px int) {
	if px < 1 {
		px = 1
	}
	s.ColumnWidths[columnID] = px
}

// SetColumnHidden marks a column hidden or visible.
func (s *ViewState) SetColumnHidden(columnID string, hidden bool) {
	if hidden {
		s.Hidden[columnID] = struct{}{}
		return
	}
	delete(s.Hidden, columnID)
}

// IsHidden reports whether the column is hidden.
func (s *ViewState) IsHidden(columnID string) bool {
	_, ok := s.Hidden[columnID]
	return ok
}

// ToggleSelected flips the row's membership in the selection set.
func (s *ViewState) ToggleSelected(rowID string) {
	if _, ok := s.Selection[rowID]; ok {
		delete(s.Selection, rowID)
		return
	}
	s.Selection[rowID] = struct{}{}
}

// SelectAll adds all given row ids to the selection set.
func (s *ViewState) SelectAll(rowIDs []string) {
	for _, id := range rowIDs {
		s.Selection[id] = struct{}{}
	}
}

// ClearSelection empties the selection set.
func (s *ViewState) ClearSelection() {
	s.Selection = make(map[string]struct{})
}

// IsSelected reports whether the row is selected.
func (s *ViewState) IsSelected(rowID string) bool {
	_, ok := s.Selection[rowID]
	return ok
}

// ToggleNested switches the nested (grouped) view on or off. Either
// toggle direction resets all group collapse state; entering nested
// view always starts fully expanded.
func (s *ViewState) ToggleNested() {
	s.Nested = !s.Nested
	s.Collapsed = make(map[string]struct{})
}

// ToggleCollapsed flips the collapse state of one group node key.
func (s *ViewState) ToggleCollapsed(groupKey string) {
	if _, ok := s.Collapsed[groupKey]; ok {
		delete(s.Collapsed, groupKey)
		return
	}
	s.Collapsed[groupKey] = struct{}{}
}

// IsCollapsed reports whether the group node key is collapsed.
func (s *ViewState) IsCollapsed(groupKey string) bool {
	_, ok := s.Collapsed[groupKey]
	return ok
}

// SetPage moves the pagination cursor. Negative pages clamp to zero;
// the upper bound is clamped at projection time against the filtered
// row count.
func (s *ViewState) SetPage(page int) {
	if page < 0 {
		page = 0
	}
	s.Page = page
}
