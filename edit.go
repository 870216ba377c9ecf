package gridview

import (
	"context"
	"fmt"

	"github.com/example/gridview/domain/model"
)

// EditSession holds the inline-edit draft for at most one row at a
// time. The draft is a snapshot of the row's editable field values as
// display strings; edits mutate only the draft until Save commits them
// through the row store. Beginning an edit on another row silently
// abandons any in-progress draft; that is intended behavior, not a
// missing confirmation.
type EditSession struct {
	store   RowStore
	columns []Column

	active bool
	rowID  string
	row    model.Row
	draft  map[string]string
}

// NewEditSession creates an edit session committing through the given
// store.
func NewEditSession(store RowStore, columns []Column) *EditSession {
	return &EditSession{store: store, columns: columns}
}

// Active reports whether a row is under edit.
func (e *EditSession) Active() bool {
	return e.active
}

// RowID returns the identifier of the row under edit, or "".
func (e *EditSession) RowID() string {
	if !e.active {
		return ""
	}
	return e.rowID
}

// Begin starts editing the row, copying its editable field values into
// a fresh draft. Any prior draft is discarded unconditionally.
func (e *EditSession) Begin(row model.Row) error {
	draft := make(map[string]string)
	for _, c := range e.columns {
		if !c.Editable() {
			continue
		}
		draft[c.ID] = c.RenderCell(row)
	}
	if len(draft) == 0 {
		return ErrRowNotEditable
	}
	e.active = true
	e.rowID = row.ID
	e.row = row
	e.draft = draft
	return nil
}

// SetField updates one pending field value in the draft. Unknown or
// non-editable field names are ignored.
func (e *EditSession) SetField(name, value string) {
	if !e.active {
		return
	}
	if _, ok := e.draft[name]; !ok {
		return
	}
	e.draft[name] = value
}

// Field returns the pending value for the named field.
func (e *EditSession) Field(name string) (string, bool) {
	if !e.active {
		return "", false
	}
	v, ok := e.draft[name]
	return v, ok
}

// Fields returns a copy of the full draft.
func (e *EditSession) Fields() map[string]string {
	out := make(map[string]string, len(e.draft))
	for k, v := range e.draft {
		out[k] = v
	}
	return out
}

// Save parses the draft per each column's declared type and commits the
// merged row through the store's update operation. The session is
// cleared only on success; on any failure it stays active with the
// draft intact so the user can correct and retry.
func (e *EditSession) Save(ctx context.Context) (model.Row, error) {
	if !e.active {
		return model.Row{}, ErrNoEditSession
	}
	fields := make(map[string]model.Value, len(e.draft))
	for _, c := range e.columns {
		text, ok := e.draft[c.ID]
		if !ok {
			continue
		}
		v, err := model.ParseValue(text, c.Type)
		if err != nil {
			return model.Row{}, fmt.Errorf("gridview: invalid %s value %q: %w", c.ID, text, err)
		}
		fields[c.ID] = v
	}
	if err := e.store.UpdateRow(ctx, e.rowID, fields); err != nil {
		return model.Row{}, fmt.Errorf("gridview: update row %s: %w", e.rowID, err)
	}
	updated := e.row.Merge(fields)
	e.clear()
	return updated, nil
}

// Cancel discards the draft and ends the session without touching the
// store. All pending field values revert together.
func (e *EditSession) Cancel() {
	e.clear()
}

func (e *EditSession) clear() {
	e.active = false
	e.rowID = ""
	e.row = model.Row{}
	e.draft = nil
}
