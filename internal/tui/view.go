package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/example/gridview"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8"))
	cursorStyle = lipgloss.NewStyle().Background(lipgloss.Color("4")).Foreground(lipgloss.Color("15"))
	groupStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	chipStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("14"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// cellWidth converts the column's pixel width into terminal cells.
const pxPerCell = 8

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(" Clients"))
	b.WriteString("  ")
	b.WriteString(m.sortZone())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(" error: "+m.err.Error()) + "\n")
	}
	if m.mode == modeFilter {
		b.WriteString(" filter: " + m.filterInput.View() + "\n")
	} else if g := m.grid.State().GlobalFilter; g != "" {
		b.WriteString(dimStyle.Render(" filter: "+g) + "\n")
	}

	cols := m.grid.VisibleColumns()
	b.WriteString(m.headerLine(cols))
	b.WriteString("\n")

	lines := m.bodyLines()
	visible := m.height - 7
	if visible < 1 {
		visible = 1
	}
	scroll := m.scrollY
	if m.cy < scroll {
		scroll = m.cy
	}
	if m.cy >= scroll+visible {
		scroll = m.cy - visible + 1
	}

	for i := scroll; i < len(lines) && i < scroll+visible; i++ {
		b.WriteString(m.bodyLine(cols, lines[i], i == m.cy))
		b.WriteString("\n")
	}
	if len(lines) == 0 {
		b.WriteString(dimStyle.Render(" (no rows)\n"))
	}

	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

// sortZone renders the active sort keys as chips, the drop target for
// dragged headers.
func (m Model) sortZone() string {
	spec := m.grid.State().SortSpec
	if len(spec) == 0 {
		return dimStyle.Render("[ sort zone ]")
	}
	chips := make([]string, len(spec))
	for i, k := range spec {
		arrow := "^"
		if k.Direction == gridview.SortDesc {
			arrow = "v"
		}
		chips[i] = chipStyle.Render(fmt.Sprintf(" %s %s ", k.ColumnID, arrow))
	}
	return strings.Join(chips, " ")
}

func (m Model) headerLine(cols []gridview.Column) string {
	cells := make([]string, len(cols))
	for i, c := range cols {
		label := c.Label
		if idx := m.grid.State().SortIndex(c.ID); idx >= 0 {
			arrow := "^"
			if m.grid.State().SortSpec[idx].Direction == gridview.SortDesc {
				arrow = "v"
			}
			label = fmt.Sprintf("%s %s%d", label, arrow, idx+1)
		}
		cell := pad(label, m.colWidth(c))
		if i == m.cx {
			cell = cursorStyle.Render(cell)
		} else {
			cell = headerStyle.Render(cell)
		}
		cells[i] = cell
	}
	return " " + strings.Join(cells, " ")
}

func (m Model) bodyLine(cols []gridview.Column, ln line, underCursor bool) string {
	if !ln.isRow {
		n := ln.group
		marker := "v"
		if m.grid.State().IsCollapsed(n.Key) {
			marker = ">"
		}
		text := fmt.Sprintf(" %s%s %s: %s (%d)",
			strings.Repeat("  ", n.Depth), marker, n.Label, n.Value, n.LeafCount())
		if underCursor {
			return cursorStyle.Render(text)
		}
		return groupStyle.Render(text)
	}

	cells := make([]string, len(cols))
	for i, c := range cols {
		var text string
		switch c.ID {
		case gridview.ColumnSelect:
			if m.grid.State().IsSelected(ln.row.ID) {
				text = "[x]"
			} else {
				text = "[ ]"
			}
		case gridview.ColumnActions:
			text = "edit del"
		default:
			text = c.RenderCell(ln.row)
		}
		if m.mode == modeEdit && underCursor && i == m.cx {
			text = m.editInput.View()
		}
		cell := pad(text, m.colWidth(c))
		if underCursor && i == m.cx {
			cell = cursorStyle.Render(cell)
		}
		cells[i] = cell
	}
	return " " + strings.Join(cells, " ")
}

func (m Model) colWidth(c gridview.Column) int {
	px := m.grid.State().ColumnWidths[c.ID]
	if px == 0 {
		px = c.Width
	}
	w := px / pxPerCell
	if w < 4 {
		w = 4
	}
	return w
}

func (m Model) footer() string {
	help := " s sort  S sort-zone  </> move col  / filter  n nested  z fold  x select  e edit  D delete  1-5 export  r reload  q quit"
	out := dimStyle.Render(help)
	if m.status != "" {
		out += "\n" + statusStyle.Render(" "+m.status)
	}
	return out
}

func pad(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
