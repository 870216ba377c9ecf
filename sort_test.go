package gridview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/gridview/domain/model"
)

func sortTestColumns() (cols []Column, byID map[string]Column) {
	cols = []Column{
		TextColumn("company", "Company", 100),
		TextColumn("name", "Name", 100),
		DateColumn("joined", "Joined", 100),
		{ID: "score", Label: "Score", Type: model.FieldTypeNumber, Sortable: true, Filterable: true},
	}
	byID = make(map[string]Column)
	for _, c := range cols {
		byID[c.ID] = c
	}
	return cols, byID
}

func sortTestRow(id, company, name string, score float64) model.Row {
	return model.NewRow(id, map[string]model.Value{
		"company": model.Text(company),
		"name":    model.Text(name),
		"score":   model.Number(score),
	})
}

func TestSortRows_MultiKey(t *testing.T) {
	t.Parallel()

	_, byID := sortTestColumns()
	rows := []model.Row{
		sortTestRow("b2", "B", "2", 0),
		sortTestRow("a1", "A", "1", 0),
		sortTestRow("b1", "B", "1", 0),
	}

	got := sortRows(rows, byID, []SortKey{
		{ColumnID: "company", Direction: SortAsc},
		{ColumnID: "name", Direction: SortAsc},
	})

	ids := []string{got[0].ID, got[1].ID, got[2].ID}
	assert.Equal(t, []string{"a1", "b1", "b2"}, ids)
}

func TestSortRows_Stable(t *testing.T) {
	t.Parallel()

	_, byID := sortTestColumns()
	rows := []model.Row{
		sortTestRow("first", "Acme", "Zed", 1),
		sortTestRow("second", "Acme", "Amy", 2),
		sortTestRow("third", "Acme", "Mia", 3),
	}

	// All rows tie on the only sort key; order must be preserved.
	got := sortRows(rows, byID, []SortKey{{ColumnID: "company", Direction: SortAsc}})
	ids := []string{got[0].ID, got[1].ID, got[2].ID}
	assert.Equal(t, []string{"first", "second", "third"}, ids)
}

func TestSortRows_Descending(t *testing.T) {
	t.Parallel()

	_, byID := sortTestColumns()
	rows := []model.Row{
		sortTestRow("low", "A", "x", 1),
		sortTestRow("high", "B", "y", 9),
		sortTestRow("mid", "C", "z", 5),
	}

	got := sortRows(rows, byID, []SortKey{{ColumnID: "score", Direction: SortDesc}})
	ids := []string{got[0].ID, got[1].ID, got[2].ID}
	assert.Equal(t, []string{"high", "mid", "low"}, ids)
}

func TestSortRows_NumericNotLexicographic(t *testing.T) {
	t.Parallel()

	_, byID := sortTestColumns()
	rows := []model.Row{
		sortTestRow("ten", "A", "x", 10),
		sortTestRow("two", "B", "y", 2),
	}

	got := sortRows(rows, byID, []SortKey{{ColumnID: "score", Direction: SortAsc}})
	assert.Equal(t, "two", got[0].ID)
}

func TestSortRows_Timestamps(t *testing.T) {
	t.Parallel()

	_, byID := sortTestColumns()
	day := func(d int) model.Value {
		return model.Timestamp(time.Date(2024, time.June, d, 0, 0, 0, 0, time.UTC))
	}
	rows := []model.Row{
		model.NewRow("late", map[string]model.Value{"joined": day(20)}),
		model.NewRow("early", map[string]model.Value{"joined": day(3)}),
	}

	got := sortRows(rows, byID, []SortKey{{ColumnID: "joined", Direction: SortAsc}})
	assert.Equal(t, "early", got[0].ID)
}

func TestSortRows_EmptySpecReturnsInput(t *testing.T) {
	t.Parallel()

	_, byID := sortTestColumns()
	rows := []model.Row{sortTestRow("a", "A", "1", 0)}
	got := sortRows(rows, byID, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestSortRows_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	_, byID := sortTestColumns()
	rows := []model.Row{
		sortTestRow("z", "Z", "1", 0),
		sortTestRow("a", "A", "1", 0),
	}
	_ = sortRows(rows, byID, []SortKey{{ColumnID: "company", Direction: SortAsc}})
	assert.Equal(t, "z", rows[0].ID)
}
