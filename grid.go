package gridview

import (
	"context"
	"fmt"

	"github.com/example/gridview/domain/model"
)

// RowStore is the external data-access collaborator. The grid treats it
// as the single owner of row records: it never mutates rows locally
// until a store call has succeeded. Implementations are expected to
// return the complete row set from ListRows as one logical result, even
// if they page internally.
type RowStore interface {
	// ListRows fetches all rows.
	ListRows(ctx context.Context) ([]model.Row, error)
	// CreateRow persists a new row built from the given fields and
	// returns it with its assigned identifier.
	CreateRow(ctx context.Context, fields map[string]model.Value) (model.Row, error)
	// UpdateRow overwrites the given fields of an existing row.
	UpdateRow(ctx context.Context, id string, fields map[string]model.Value) error
	// DeleteRow removes a row.
	DeleteRow(ctx context.Context, id string) error
}

// Builder configures and validates a Grid before use.
//
// The typical usage pattern is:
//
//	grid, err := gridview.NewBuilder().
//		WithColumns(gridview.ClientColumns()...).
//		WithStore(store).
//		Build(ctx)
type Builder struct {
	columns  []Column
	store    RowStore
	pageSize int
}

// NewBuilder creates a new grid builder.
func NewBuilder() *Builder {
	return &Builder{pageSize: DefaultPageSize}
}

// WithColumns sets the grid's column definitions, in initial display
// order. Returns the builder for method chaining.
func (b *Builder) WithColumns(columns ...Column) *Builder {
	b.columns = append(b.columns, columns...)
	return b
}

// WithStore sets the data-access collaborator rows are fetched from and
// committed to. Returns the builder for method chaining.
func (b *Builder) WithStore(store RowStore) *Builder {
	b.store = store
	return b
}

// WithPageSize sets the flat-view page size. Returns the builder for
// method chaining.
func (b *Builder) WithPageSize(n int) *Builder {
	b.pageSize = n
	return b
}

// Build validates the configuration and constructs the grid. The grid
// holds no rows until Reload is called.
func (b *Builder) Build(_ context.Context) (*Grid, error) {
	if len(b.columns) == 0 {
		return nil, ErrNoColumns
	}
	if b.store == nil {
		return nil, ErrNoStore
	}
	byID := make(map[string]Column, len(b.columns))
	for _, c := range b.columns {
		if _, dup := byID[c.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateColumn, c.ID)
		}
		byID[c.ID] = c
	}
	if b.pageSize < 1 {
		b.pageSize = DefaultPageSize
	}

	state := NewViewState(b.columns)
	state.PageSize = b.pageSize
	g := &Grid{
		columns: b.columns,
		colByID: byID,
		store:   b.store,
		state:   state,
	}
	g.edit = NewEditSession(b.store, b.columns)
	g.drag = NewDragCoordinator(state, b.columns)
	return g, nil
}

// Grid ties the engine together: column definitions, the canonical row
// copy, view state, and the coordinators. All methods are meant for a
// single goroutine; the engine assumes the event-driven, one-writer
// model of an interactive front-end.
type Grid struct {
	columns []Column
	colByID map[string]Column
	store   RowStore
	state   *ViewState
	rows    []model.Row
	edit    *EditSession
	drag    *DragCoordinator
}

// Columns returns the column definitions in their declaration order.
// Display order is the view state's ColumnOrder.
func (g *Grid) Columns() []Column {
	return g.columns
}

// Column returns the column definition for the given id.
func (g *Grid) Column(id string) (Column, bool) {
	c, ok := g.colByID[id]
	return c, ok
}

// State returns the mutable view state.
func (g *Grid) State() *ViewState {
	return g.state
}

// Rows returns the grid's current row copy.
func (g *Grid) Rows() []model.Row {
	return g.rows
}

// Edit returns the grid's inline edit session.
func (g *Grid) Edit() *EditSession {
	return g.edit
}

// Drag returns the grid's drag-reorder coordinator.
func (g *Grid) Drag() *DragCoordinator {
	return g.drag
}

// Reload fetches the complete row set from the store, replacing the
// local copy. On failure the local copy is left unchanged. Selection is
// deliberately not reconciled against the new row set; stale selected
// identifiers persist until ClearSelection.
func (g *Grid) Reload(ctx context.Context) error {
	rows, err := g.store.ListRows(ctx)
	if err != nil {
		return fmt.Errorf("gridview: load rows: %w", err)
	}
	g.rows = rows
	return nil
}

// Insert creates a row through the store and, only on success, appends
// it to the local copy.
func (g *Grid) Insert(ctx context.Context, fields map[string]model.Value) (model.Row, error) {
	row, err := g.store.CreateRow(ctx, fields)
	if err != nil {
		return model.Row{}, fmt.Errorf("gridview: create row: %w", err)
	}
	g.rows = append(g.rows, row)
	return row, nil
}

// Delete removes a row through the store and, only on success, from the
// local copy. The selection set is left alone even if it held the id.
func (g *Grid) Delete(ctx context.Context, id string) error {
	if err := g.store.DeleteRow(ctx, id); err != nil {
		return fmt.Errorf("gridview: delete row %s: %w", id, err)
	}
	for i, r := range g.rows {
		if r.ID == id {
			g.rows = append(g.rows[:i], g.rows[i+1:]...)
			break
		}
	}
	return nil
}

// SaveEdit commits the active edit session and applies the updated row
// to the local copy on success.
func (g *Grid) SaveEdit(ctx context.Context) error {
	updated, err := g.edit.Save(ctx)
	if err != nil {
		return err
	}
	for i, r := range g.rows {
		if r.ID == updated.ID {
			g.rows[i] = updated
			break
		}
	}
	return nil
}

// VisibleColumns returns the columns in display order, skipping hidden
// ones. Synthetic columns are included; export filters them separately.
func (g *Grid) VisibleColumns() []Column {
	out := make([]Column, 0, len(g.state.ColumnOrder))
	for _, id := range g.state.ColumnOrder {
		c, ok := g.colByID[id]
		if !ok || g.state.IsHidden(id) {
			continue
		}
		out = append(out, c)
	}
	return out
}
