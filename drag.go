package gridview

// DragKind distinguishes the two drag sources: a column header cell and
// an active-sort chip in the sort zone.
type DragKind int

const (
	// DragHeader is a drag starting on a column header cell
	DragHeader DragKind = iota
	// DragChip is a drag starting on a sort-zone chip
	DragChip
)

// String returns the string representation of DragKind
func (k DragKind) String() string {
	if k == DragChip {
		return "chip"
	}
	return "header"
}

// DragCoordinator is the explicit finite-state machine behind
// drag-and-drop reordering. States: idle -> dragging(kind, columnID) ->
// dropped or cancelled -> idle. At most one drag is active; the
// coordinator tracks only the active drag's source identity and kind.
//
// A completed drop that changed state sets a one-shot flag so the
// click-to-sort handler sharing the same pointer gesture can tell a
// drag from a click; ConsumeDrop reads and clears it.
type DragCoordinator struct {
	state   *ViewState
	columns map[string]Column

	dragging bool
	kind     DragKind
	sourceID string
	dropped  bool
}

// NewDragCoordinator creates a coordinator mutating the given view
// state, with column definitions used to refuse synthetic and
// non-reorderable drag sources and targets.
func NewDragCoordinator(state *ViewState, columns []Column) *DragCoordinator {
	byID := make(map[string]Column, len(columns))
	for _, c := range columns {
		byID[c.ID] = c
	}
	return &DragCoordinator{state: state, columns: byID}
}

// Dragging reports whether a drag is in progress.
func (d *DragCoordinator) Dragging() bool {
	return d.dragging
}

// Source returns the active drag's kind and column id. ok is false when
// idle.
func (d *DragCoordinator) Source() (kind DragKind, columnID string, ok bool) {
	return d.kind, d.sourceID, d.dragging
}

// draggable reports whether the column may act as a drag source or
// drop target for header reordering.
func (d *DragCoordinator) draggable(columnID string) bool {
	c, ok := d.columns[columnID]
	return ok && !c.Synthetic && c.Reorderable
}

// Start begins a drag from a header cell or sort chip. Returns false
// without entering the dragging state when the column is synthetic,
// non-reorderable, unknown, or (for chips) not an active sort key, or
// when a drag is already in progress.
func (d *DragCoordinator) Start(kind DragKind, columnID string) bool {
	if d.dragging {
		return false
	}
	switch kind {
	case DragHeader:
		if !d.draggable(columnID) {
			return false
		}
	case DragChip:
		if d.state.SortIndex(columnID) < 0 {
			return false
		}
	}
	d.dragging = true
	d.kind = kind
	d.sourceID = columnID
	return true
}

// CanDropOnHeader reports whether the hovered header is a valid drop
// target for the active drag, for target highlighting.
func (d *DragCoordinator) CanDropOnHeader(targetID string) bool {
	return d.dragging && d.kind == DragHeader && targetID != d.sourceID && d.draggable(targetID)
}

// CanDropOnChip reports whether the hovered sort chip is a valid drop
// target for the active drag.
func (d *DragCoordinator) CanDropOnChip(targetID string) bool {
	return d.dragging && d.kind == DragChip && targetID != d.sourceID && d.state.SortIndex(targetID) >= 0
}

// CanDropOnSortZone reports whether the sort zone is a valid drop
// target for the active drag.
func (d *DragCoordinator) CanDropOnSortZone() bool {
	return d.dragging && d.kind == DragHeader
}

// DropOnHeader completes a header-to-header drag by splicing the
// dragged column out of the column order and reinserting it at the
// target's position. Reports whether the order changed.
func (d *DragCoordinator) DropOnHeader(targetID string) bool {
	if !d.CanDropOnHeader(targetID) {
		d.Cancel()
		return false
	}
	changed := d.state.MoveColumn(d.sourceID, targetID)
	d.finish(changed)
	return changed
}

// DropOnChip completes a chip-to-chip drag by splice-reordering within
// the sort spec. Reports whether the spec changed.
func (d *DragCoordinator) DropOnChip(targetID string) bool {
	if !d.CanDropOnChip(targetID) {
		d.Cancel()
		return false
	}
	changed := d.state.MoveSortKey(d.sourceID, targetID)
	d.finish(changed)
	return changed
}

// DropOnSortZone completes a header-to-sort-zone drag by appending the
// column as a new ascending sort key. Dropping an already-sorted column
// is a no-op. Reports whether the spec changed.
func (d *DragCoordinator) DropOnSortZone() bool {
	if !d.CanDropOnSortZone() {
		d.Cancel()
		return false
	}
	changed := d.state.AppendSortKey(d.sourceID)
	d.finish(changed)
	return changed
}

// Cancel abandons the active drag with no state change, as when the
// pointer leaves every drop target before release.
func (d *DragCoordinator) Cancel() {
	d.dragging = false
	d.sourceID = ""
}

// ConsumeDrop reports whether the gesture that just ended was a
// state-changing drop, and clears the flag. The header click handler
// calls this first and skips its sort toggle when it returns true.
func (d *DragCoordinator) ConsumeDrop() bool {
	was := d.dropped
	d.dropped = false
	return was
}

func (d *DragCoordinator) finish(changed bool) {
	d.dragging = false
	d.sourceID = ""
	if changed {
		d.dropped = true
	}
}
