package gridview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestColumn_Editable(t *testing.T) {
	t.Parallel()

	assert.True(t, TextColumn("name", "Name", 100).Editable())
	assert.False(t, DateColumn("created_at", "Created", 100).Editable())
	assert.False(t, SelectColumn().Editable())
	assert.False(t, ActionsColumn().Editable())
}

func TestColumn_RenderCell(t *testing.T) {
	t.Parallel()

	row := ClientRow("r1", "Bob", "bob@acme.test", "1", "Acme", "active",
		time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "Bob", TextColumn("name", "Name", 100).RenderCell(row))
	assert.Equal(t, "03/07/2024", DateColumn("created_at", "Created", 100).RenderCell(row))
	// Synthetic columns carry no row data.
	assert.Equal(t, "", SelectColumn().RenderCell(row))
	assert.Equal(t, "", TextColumn("missing", "Missing", 100).RenderCell(row))
}

func TestRendererKind_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind RendererKind
		want string
	}{
		{kind: RendererPlain, want: "plain"},
		{kind: RendererDate, want: "date"},
		{kind: RendererEditable, want: "editable"},
		{kind: RendererActions, want: "actions"},
		{kind: RendererKind(99), want: "plain"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}
