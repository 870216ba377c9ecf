package gridview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewState_ToggleSortCycle(t *testing.T) {
	t.Parallel()

	s := NewViewState(ClientColumns())

	s.ToggleSort("name")
	require.Equal(t, []SortKey{{ColumnID: "name", Direction: SortAsc}}, s.SortSpec)

	s.ToggleSort("name")
	require.Equal(t, []SortKey{{ColumnID: "name", Direction: SortDesc}}, s.SortSpec)

	s.ToggleSort("name")
	assert.Empty(t, s.SortSpec)
}

func TestViewState_ToggleSortKeepsPosition(t *testing.T) {
	t.Parallel()

	s := NewViewState(ClientColumns())
	s.ToggleSort("company")
	s.ToggleSort("name")

	// Toggling the primary key to descending must not reorder the spec.
	s.ToggleSort("company")
	require.Len(t, s.SortSpec, 2)
	assert.Equal(t, SortKey{ColumnID: "company", Direction: SortDesc}, s.SortSpec[0])
	assert.Equal(t, SortKey{ColumnID: "name", Direction: SortAsc}, s.SortSpec[1])
}

func TestViewState_AppendSortKey(t *testing.T) {
	t.Parallel()

	s := NewViewState(ClientColumns())
	assert.True(t, s.AppendSortKey("company"))
	// Dropping an already-sorted column onto the sort zone is a no-op.
	assert.False(t, s.AppendSortKey("company"))
	require.Len(t, s.SortSpec, 1)
	assert.Equal(t, SortAsc, s.SortSpec[0].Direction)
}

func TestViewState_MoveSortKey(t *testing.T) {
	t.Parallel()

	s := NewViewState(ClientColumns())
	s.AppendSortKey("company")
	s.AppendSortKey("name")
	s.AppendSortKey("status")

	require.True(t, s.MoveSortKey("status", "company"))
	got := make([]string, len(s.SortSpec))
	for i, k := range s.SortSpec {
		got[i] = k.ColumnID
	}
	assert.Equal(t, []string{"status", "company", "name"}, got)

	assert.False(t, s.MoveSortKey("status", "status"))
	assert.False(t, s.MoveSortKey("missing", "company"))
}

func TestViewState_SetColumnFilter(t *testing.T) {
	t.Parallel()

	s := NewViewState(ClientColumns())
	s.SetColumnFilter("name", OpContains, "al")
	require.Contains(t, s.Filters, "name")

	// Empty text removes the entry; the spec never holds empty filters.
	s.SetColumnFilter("name", OpContains, "")
	assert.NotContains(t, s.Filters, "name")
}

func TestViewState_MoveColumn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		from string
		to   string
		want []string
	}{
		{
			name: "forward move",
			from: "name",
			to:   "company",
			want: []string{"select", "email", "phone", "name", "company", "status", "created_at", "actions"},
		},
		{
			name: "backward move",
			from: "status",
			to:   "email",
			want: []string{"select", "name", "status", "email", "phone", "company", "created_at", "actions"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := NewViewState(ClientColumns())
			require.True(t, s.MoveColumn(tt.from, tt.to))
			assert.Equal(t, tt.want, s.ColumnOrder)
			// Always a permutation of the full id set.
			assert.Len(t, s.ColumnOrder, len(ClientColumns()))
		})
	}
}

func TestViewState_Selection(t *testing.T) {
	t.Parallel()

	s := NewViewState(ClientColumns())
	s.ToggleSelected("r1")
	s.ToggleSelected("r2")
	assert.True(t, s.IsSelected("r1"))

	s.ToggleSelected("r1")
	assert.False(t, s.IsSelected("r1"))

	s.SelectAll([]string{"a", "b"})
	assert.True(t, s.IsSelected("a"))

	s.ClearSelection()
	assert.False(t, s.IsSelected("a"))
	assert.False(t, s.IsSelected("r2"))
}

func TestViewState_ToggleNestedResetsCollapse(t *testing.T) {
	t.Parallel()

	s := NewViewState(ClientColumns())
	s.ToggleNested()
	require.True(t, s.Nested)

	s.ToggleCollapsed("company=Acme")
	require.True(t, s.IsCollapsed("company=Acme"))

	// Collapse state survives ordinary re-renders but not a view toggle.
	s.ToggleNested()
	s.ToggleNested()
	assert.True(t, s.Nested)
	assert.False(t, s.IsCollapsed("company=Acme"))
}

func TestViewState_SetPage(t *testing.T) {
	t.Parallel()

	s := NewViewState(ClientColumns())
	s.SetPage(-5)
	assert.Zero(t, s.Page)
	s.SetPage(3)
	assert.Equal(t, 3, s.Page)
}

func TestViewState_ColumnWidth(t *testing.T) {
	t.Parallel()

	s := NewViewState(ClientColumns())
	s.SetColumnWidth("name", 240)
	assert.Equal(t, 240, s.ColumnWidths["name"])
	s.SetColumnWidth("name", -10)
	assert.Equal(t, 1, s.ColumnWidths["name"])
}
