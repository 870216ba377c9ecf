package gridview

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/example/gridview/domain/model"
)

// RenderText writes the current projection as a plain-text table, used
// by the CLI view command. Grouped projections render each group header
// as a spanning row; collapsed groups render header-only with their
// descendant row count.
func (g *Grid) RenderText(w io.Writer) {
	p := g.Project()

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, 0, len(p.Columns))
	for _, c := range p.Columns {
		label := c.Label
		if i := g.state.SortIndex(c.ID); i >= 0 {
			arrow := "^"
			if g.state.SortSpec[i].Direction == SortDesc {
				arrow = "v"
			}
			label = fmt.Sprintf("%s %s%d", label, arrow, i+1)
		}
		header = append(header, label)
	}
	t.AppendHeader(header)

	if p.Grouped() {
		g.appendGroupRows(t, p.Columns, p.Groups)
	} else {
		for _, r := range p.Rows {
			t.AppendRow(g.bodyRow(p.Columns, r))
		}
	}
	t.Render()

	if p.Grouped() {
		fmt.Fprintf(w, "(%d rows, grouped)\n", p.TotalRows)
		return
	}
	fmt.Fprintf(w, "(%d rows, page %d/%d)\n", p.TotalRows, p.Page+1, p.PageCount)
}

func (g *Grid) appendGroupRows(t table.Writer, cols []Column, nodes []*GroupNode) {
	for _, n := range nodes {
		marker := "-"
		if g.state.IsCollapsed(n.Key) {
			marker = "+"
		}
		headerCell := fmt.Sprintf("%s%s %s: %s (%d)",
			strings.Repeat("  ", n.Depth), marker, n.Label, n.Value, n.LeafCount())

		row := make(table.Row, len(cols))
		row[0] = headerCell
		for i := 1; i < len(cols); i++ {
			row[i] = ""
		}
		t.AppendRow(row)

		if g.state.IsCollapsed(n.Key) {
			continue
		}
		if n.Children != nil {
			g.appendGroupRows(t, cols, n.Children)
			continue
		}
		for _, r := range n.Rows {
			t.AppendRow(g.bodyRow(cols, r))
		}
	}
}

func (g *Grid) bodyRow(cols []Column, r model.Row) table.Row {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		switch c.ID {
		case ColumnSelect:
			if g.state.IsSelected(r.ID) {
				row[i] = "[x]"
			} else {
				row[i] = "[ ]"
			}
		case ColumnActions:
			row[i] = ""
		default:
			row[i] = c.RenderCell(r)
		}
	}
	return row
}
