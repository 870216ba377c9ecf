package gridview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMatchOperator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		op    FilterOperator
		cell  string
		query string
		want  bool
	}{
		{name: "contains match", op: OpContains, cell: "Acme Corp", query: "corp", want: true},
		{name: "contains miss", op: OpContains, cell: "Acme Corp", query: "globex", want: false},
		{name: "startsWith match", op: OpStartsWith, cell: "Acme Corp", query: "acme", want: true},
		{name: "startsWith miss", op: OpStartsWith, cell: "Acme Corp", query: "corp", want: false},
		{name: "endsWith match", op: OpEndsWith, cell: "Acme Corp", query: "CORP", want: true},
		{name: "endsWith miss", op: OpEndsWith, cell: "Acme Corp", query: "acme", want: false},
		{name: "equals match", op: OpEquals, cell: "Lead", query: "lead", want: true},
		{name: "equals miss", op: OpEquals, cell: "Lead", query: "leader", want: false},
		{name: "notEquals match", op: OpNotEquals, cell: "Lead", query: "leader", want: true},
		{name: "notEquals miss", op: OpNotEquals, cell: "Lead", query: "LEAD", want: false},
		{name: "unrecognized operator passes", op: FilterOperator(99), cell: "x", query: "y", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, matchOperator(tt.op, tt.cell, tt.query))
		})
	}
}

func TestMatchOperator_EqualsNotEqualsComplement(t *testing.T) {
	t.Parallel()

	cells := []string{"Acme", "acme", "Globex", ""}
	queries := []string{"acme", "globex", "x", ""}
	for _, cell := range cells {
		for _, query := range queries {
			eq := matchOperator(OpEquals, cell, query)
			ne := matchOperator(OpNotEquals, cell, query)
			assert.NotEqual(t, eq, ne, "cell=%q query=%q", cell, query)
		}
	}
}

func TestMatchRow_ColumnFiltersAreANDed(t *testing.T) {
	t.Parallel()

	cols := ClientColumns()
	row := ClientRow("r1", "Alice", "alice@acme.test", "1", "Acme", "lead", time.Time{})

	filters := map[string]ColumnFilter{
		"company": {Operator: OpEquals, Text: "acme"},
		"status":  {Operator: OpContains, Text: "lead"},
	}
	assert.True(t, matchRow(row, cols, filters, ""))

	filters["status"] = ColumnFilter{Operator: OpContains, Text: "active"}
	assert.False(t, matchRow(row, cols, filters, ""))
}

func TestMatchRow_GlobalFilterORsAcrossColumns(t *testing.T) {
	t.Parallel()

	cols := ClientColumns()
	row := ClientRow("r1", "Alice", "alice@acme.test", "555", "Globex", "lead", time.Time{})

	// Matches via the email column only.
	assert.True(t, matchRow(row, cols, nil, "acme"))
	assert.False(t, matchRow(row, cols, nil, "umbrella"))

	// Global text ANDs with per-column filters.
	filters := map[string]ColumnFilter{
		"company": {Operator: OpEquals, Text: "globex"},
	}
	assert.True(t, matchRow(row, cols, filters, "acme"))
	filters["company"] = ColumnFilter{Operator: OpEquals, Text: "acme"}
	assert.False(t, matchRow(row, cols, filters, "acme"))
}

func TestMatchRow_DateFiltersUseRenderedForm(t *testing.T) {
	t.Parallel()

	cols := ClientColumns()
	row := ClientRow("r1", "Alice", "a@a.test", "1", "Acme", "lead",
		time.Date(2024, time.March, 7, 10, 30, 0, 0, time.UTC))

	// The cell renders as 03/07/2024, so that is what filters see.
	filters := map[string]ColumnFilter{
		"created_at": {Operator: OpStartsWith, Text: "03/07"},
	}
	assert.True(t, matchRow(row, cols, filters, ""))

	filters["created_at"] = ColumnFilter{Operator: OpContains, Text: "2024-03-07"}
	assert.False(t, matchRow(row, cols, filters, ""))
}

func TestFilterRows(t *testing.T) {
	t.Parallel()

	rows := testRows()
	cols := ClientColumns()

	got := filterRows(rows, cols, map[string]ColumnFilter{
		"company": {Operator: OpEquals, Text: "globex"},
	}, "")
	assert.Len(t, got, 2)

	// No filters returns the input as-is.
	got = filterRows(rows, cols, nil, "")
	assert.Len(t, got, len(rows))

	got = filterRows(rows, cols, nil, "acme")
	assert.Len(t, got, 2)
}

func TestFilterRows_PreservesOrder(t *testing.T) {
	t.Parallel()

	rows := testRows()
	got := filterRows(rows, ClientColumns(), map[string]ColumnFilter{
		"status": {Operator: OpEquals, Text: "active"},
	}, "")
	ids := []string{got[0].ID, got[1].ID}
	assert.Equal(t, []string{"r1", "r3"}, ids)
}
