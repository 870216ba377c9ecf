package model

// Row is a single record held by the grid. The grid keeps a read-only
// copy of rows owned by the data-access layer; only an inline edit
// session ever produces a modified version, and only through the
// data-access layer's update operation.
type Row struct {
	// ID is the stable row identifier assigned by the data-access layer.
	ID string
	// Fields maps field names to cell values.
	Fields map[string]Value
}

// NewRow creates a row with the given identifier and fields.
func NewRow(id string, fields map[string]Value) Row {
	if fields == nil {
		fields = make(map[string]Value)
	}
	return Row{ID: id, Fields: fields}
}

// Value returns the named field value and whether it is present.
func (r Row) Value(name string) (Value, bool) {
	v, ok := r.Fields[name]
	return v, ok
}

// Clone returns a deep copy of the row.
func (r Row) Clone() Row {
	fields := make(map[string]Value, len(r.Fields))
	for k, v := range r.Fields {
		fields[k] = v
	}
	return Row{ID: r.ID, Fields: fields}
}

// Merge returns a copy of the row with the given fields overlaid.
func (r Row) Merge(fields map[string]Value) Row {
	merged := r.Clone()
	for k, v := range fields {
		merged.Fields[k] = v
	}
	return merged
}
