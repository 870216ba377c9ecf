package gridview

import (
	"time"

	"github.com/example/gridview/domain/model"
)

// Identifiers of the two synthetic boundary columns. They carry no row
// data, cannot be sorted, filtered, or dragged, and stay pinned at the
// logical ends of the column order.
const (
	ColumnSelect  = "select"
	ColumnActions = "actions"
)

// RendererKind selects how a column's cells are rendered. The kind is
// fixed at column-definition time.
type RendererKind int

const (
	// RendererPlain renders the value's default display form
	RendererPlain RendererKind = iota
	// RendererDate renders timestamps as MM/DD/YYYY
	RendererDate
	// RendererEditable renders as a text input while the row is under edit
	RendererEditable
	// RendererActions renders the per-row action buttons
	RendererActions
)

// String returns the string representation of RendererKind
func (rk RendererKind) String() string {
	switch rk {
	case RendererPlain:
		return "plain"
	case RendererDate:
		return "date"
	case RendererEditable:
		return "editable"
	case RendererActions:
		return "actions"
	default:
		return "plain"
	}
}

// Column describes one grid column: identity, display label, declared
// field type, renderer kind, initial width, and capability flags.
type Column struct {
	ID       string
	Label    string
	Type     model.FieldType
	Renderer RendererKind
	Width    int

	Sortable    bool
	Filterable  bool
	Resizable   bool
	Reorderable bool

	// Synthetic marks the select/actions boundary columns.
	Synthetic bool
}

// Editable reports whether cells of this column may be edited inline.
func (c Column) Editable() bool {
	return c.Renderer == RendererEditable && !c.Synthetic
}

// CellValue returns the row's raw value for this column. Synthetic
// columns have no value.
func (c Column) CellValue(row model.Row) model.Value {
	if c.Synthetic {
		return model.Value{}
	}
	v, _ := row.Value(c.ID)
	return v
}

// RenderCell returns the display string for the row's cell in this
// column. Filtering, grouping, and export all see this same form.
func (c Column) RenderCell(row model.Row) string {
	return c.CellValue(row).Render()
}

// SelectColumn returns the synthetic row-selection column.
func SelectColumn() Column {
	return Column{
		ID:        ColumnSelect,
		Label:     "",
		Width:     40,
		Synthetic: true,
	}
}

// ActionsColumn returns the synthetic per-row actions column.
func ActionsColumn() Column {
	return Column{
		ID:        ColumnActions,
		Label:     "Actions",
		Renderer:  RendererActions,
		Width:     120,
		Synthetic: true,
	}
}

// TextColumn returns an editable text column with the standard
// capability set.
func TextColumn(id, label string, width int) Column {
	return Column{
		ID:          id,
		Label:       label,
		Type:        model.FieldTypeText,
		Renderer:    RendererEditable,
		Width:       width,
		Sortable:    true,
		Filterable:  true,
		Resizable:   true,
		Reorderable: true,
	}
}

// DateColumn returns a date column rendered as MM/DD/YYYY.
func DateColumn(id, label string, width int) Column {
	return Column{
		ID:          id,
		Label:       label,
		Type:        model.FieldTypeTimestamp,
		Renderer:    RendererDate,
		Width:       width,
		Sortable:    true,
		Filterable:  true,
		Resizable:   true,
		Reorderable: true,
	}
}

// ClientColumns returns the standard CRM client column set, including
// the synthetic boundary columns.
func ClientColumns() []Column {
	return []Column{
		SelectColumn(),
		TextColumn("name", "Name", 160),
		TextColumn("email", "Email", 220),
		TextColumn("phone", "Phone", 140),
		TextColumn("company", "Company", 160),
		TextColumn("status", "Status", 110),
		DateColumn("created_at", "Created", 110),
		ActionsColumn(),
	}
}

// ClientRow builds a client row from its field values. Mainly a seed
// and test helper.
func ClientRow(id, name, email, phone, company, status string, createdAt time.Time) model.Row {
	return model.NewRow(id, map[string]model.Value{
		"name":       model.Text(name),
		"email":      model.Text(email),
		"phone":      model.Text(phone),
		"company":    model.Text(company),
		"status":     model.Text(status),
		"created_at": model.Timestamp(createdAt),
	})
}
