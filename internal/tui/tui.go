// Package tui is the interactive terminal front-end over a gridview
// grid: cursor navigation, sorting, filtering, nested view, selection,
// inline editing, and export, all driven from the keyboard.
package tui

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/gridview"
	"github.com/example/gridview/domain/model"
)

type mode int

const (
	modeNormal mode = iota
	modeFilter
	modeEdit
)

// filterDebounce is how long typed filter text sits before it commits.
// Each keystroke supersedes the pending commit.
const filterDebounce = 300 * time.Millisecond

func debounceTick(seq int) tea.Cmd {
	return tea.Tick(filterDebounce, func(time.Time) tea.Msg {
		return filterCommitMsg{seq: seq}
	})
}

// line is one renderable body line of the grid: either a group header
// or a data row.
type line struct {
	group *gridview.GroupNode
	row   model.Row
	isRow bool
}

// Model is the bubbletea model. All grid mutation happens inside
// Update; bubbletea delivers events one at a time, so the single-writer
// assumption of the engine holds.
type Model struct {
	grid *gridview.Grid

	width  int
	height int
	mode   mode

	cx      int // cursor column index into visible columns
	cy      int // cursor line index into body lines
	scrollY int

	filterInput textinput.Model
	filterSeq   int

	editInput textinput.Model

	status string
	err    error
}

type filterCommitMsg struct{ seq int }

// New creates the TUI model over a loaded grid.
func New(grid *gridview.Grid) Model {
	fi := textinput.New()
	fi.Placeholder = "filter all columns"
	fi.CharLimit = 64

	ei := textinput.New()
	ei.CharLimit = 128

	return Model{grid: grid, filterInput: fi, editInput: ei}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case filterCommitMsg:
		// Stale commits from earlier keystrokes are dropped; only the
		// latest pending value lands.
		if m.mode == modeFilter && msg.seq == m.filterSeq {
			m.grid.State().SetGlobalFilter(m.filterInput.Value())
			m.clampCursor()
		}
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeFilter:
			return m.updateFilter(msg)
		case modeEdit:
			return m.updateEdit(msg)
		default:
			return m.updateNormal(msg)
		}
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cols := m.grid.VisibleColumns()
	lines := m.bodyLines()

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		if m.cx > 0 {
			m.cx--
		}
	case "right", "l":
		if m.cx < len(cols)-1 {
			m.cx++
		}
	case "up", "k":
		if m.cy > 0 {
			m.cy--
		}
	case "down", "j":
		if m.cy < len(lines)-1 {
			m.cy++
		}
	case "s":
		if c, ok := m.cursorColumn(); ok && c.Sortable {
			m.grid.State().ToggleSort(c.ID)
			m.status = "sort: " + sortSummary(m.grid.State())
		}
	case "S":
		// The drag path: header dragged onto the sort zone.
		if c, ok := m.cursorColumn(); ok {
			d := m.grid.Drag()
			if d.Start(gridview.DragHeader, c.ID) {
				if d.DropOnSortZone() {
					d.ConsumeDrop()
					m.status = "sort: " + sortSummary(m.grid.State())
				}
			}
		}
	case "<":
		m.moveColumn(-1)
	case ">":
		m.moveColumn(1)
	case "/":
		m.mode = modeFilter
		m.filterInput.SetValue(m.grid.State().GlobalFilter)
		m.filterInput.Focus()
		return m, textinput.Blink
	case "x":
		if r, ok := m.cursorRow(); ok {
			m.grid.State().ToggleSelected(r.ID)
		}
	case "C":
		m.grid.State().ClearSelection()
		m.status = "selection cleared"
	case "n":
		m.grid.State().ToggleNested()
		m.cy = 0
		m.scrollY = 0
	case "z":
		if g, ok := m.cursorGroup(); ok {
			m.grid.State().ToggleCollapsed(g.Key)
		}
	case "[":
		m.grid.State().SetPage(m.grid.State().Page - 1)
		m.cy = 0
	case "]":
		m.grid.State().SetPage(m.grid.State().Page + 1)
		m.cy = 0
	case "enter", "e":
		if g, ok := m.cursorGroup(); ok {
			m.grid.State().ToggleCollapsed(g.Key)
			break
		}
		m.beginEdit()
	case "D":
		if r, ok := m.cursorRow(); ok {
			if err := m.grid.Delete(context.Background(), r.ID); err != nil {
				m.err = err
				break
			}
			m.status = "deleted " + r.ID
			m.clampCursor()
		}
	case "r":
		if err := m.grid.Reload(context.Background()); err != nil {
			m.err = err
			break
		}
		m.status = "reloaded"
		m.clampCursor()
	case "1", "2", "3", "4", "5":
		m.export(msg.String())
	}
	return m, nil
}

func (m *Model) moveColumn(delta int) {
	cols := m.grid.VisibleColumns()
	target := m.cx + delta
	if target < 0 || target >= len(cols) {
		return
	}
	d := m.grid.Drag()
	if !d.Start(gridview.DragHeader, cols[m.cx].ID) {
		return
	}
	if d.DropOnHeader(cols[target].ID) {
		d.ConsumeDrop()
		m.cx = target
	}
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.grid.State().SetGlobalFilter(m.filterInput.Value())
		m.mode = modeNormal
		m.filterInput.Blur()
		m.clampCursor()
		return m, nil
	case "esc":
		m.mode = modeNormal
		m.filterInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.filterSeq++
	seq := m.filterSeq
	return m, tea.Batch(cmd, debounceTick(seq))
}

func (m *Model) beginEdit() {
	c, ok := m.cursorColumn()
	if !ok || !c.Editable() {
		return
	}
	r, ok := m.cursorRow()
	if !ok {
		return
	}
	if err := m.grid.Edit().Begin(r); err != nil {
		m.err = err
		return
	}
	v, _ := m.grid.Edit().Field(c.ID)
	m.editInput.SetValue(v)
	m.editInput.Focus()
	m.mode = modeEdit
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		c, ok := m.cursorColumn()
		if !ok {
			m.mode = modeNormal
			return m, nil
		}
		m.grid.Edit().SetField(c.ID, m.editInput.Value())
		if err := m.grid.SaveEdit(context.Background()); err != nil {
			// Session stays active with the draft intact; surface the
			// error and let the user correct and retry.
			m.err = err
			return m, nil
		}
		m.err = nil
		m.status = "saved"
		m.mode = modeNormal
		m.editInput.Blur()
		return m, nil
	case "esc":
		m.grid.Edit().Cancel()
		m.mode = modeNormal
		m.editInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

func (m *Model) export(key string) {
	var format gridview.ExportFormat
	switch key {
	case "1":
		format = gridview.ExportCSV
	case "2":
		format = gridview.ExportXLSX
	case "3":
		format = gridview.ExportHTML
	case "4":
		format = gridview.ExportJSON
	case "5":
		format = gridview.ExportXML
	}
	opts := gridview.NewExportOptions().WithFormat(format)
	f, err := os.Create(opts.FileName())
	if err != nil {
		m.err = err
		return
	}
	defer func() { _ = f.Close() }()
	if err := m.grid.Export(f, opts); err != nil {
		m.err = err
		return
	}
	m.status = "exported " + opts.FileName()
}

// bodyLines flattens the current projection into renderable lines:
// rows for the flat view, group headers interleaved with rows for the
// nested view, honoring collapse state.
func (m Model) bodyLines() []line {
	p := m.grid.Project()
	if !p.Grouped() {
		out := make([]line, len(p.Rows))
		for i, r := range p.Rows {
			out[i] = line{row: r, isRow: true}
		}
		return out
	}
	var out []line
	var walk func(nodes []*gridview.GroupNode)
	walk = func(nodes []*gridview.GroupNode) {
		for _, n := range nodes {
			out = append(out, line{group: n})
			if m.grid.State().IsCollapsed(n.Key) {
				continue
			}
			if n.Children != nil {
				walk(n.Children)
				continue
			}
			for _, r := range n.Rows {
				out = append(out, line{row: r, isRow: true})
			}
		}
	}
	walk(p.Groups)
	return out
}

func (m Model) cursorColumn() (gridview.Column, bool) {
	cols := m.grid.VisibleColumns()
	if m.cx < 0 || m.cx >= len(cols) {
		return gridview.Column{}, false
	}
	return cols[m.cx], true
}

func (m Model) cursorRow() (model.Row, bool) {
	lines := m.bodyLines()
	if m.cy < 0 || m.cy >= len(lines) || !lines[m.cy].isRow {
		return model.Row{}, false
	}
	return lines[m.cy].row, true
}

func (m Model) cursorGroup() (*gridview.GroupNode, bool) {
	lines := m.bodyLines()
	if m.cy < 0 || m.cy >= len(lines) || lines[m.cy].isRow {
		return nil, false
	}
	return lines[m.cy].group, true
}

func (m *Model) clampCursor() {
	if n := len(m.bodyLines()); m.cy >= n {
		m.cy = n - 1
	}
	if m.cy < 0 {
		m.cy = 0
	}
}

func sortSummary(s *gridview.ViewState) string {
	if len(s.SortSpec) == 0 {
		return "none"
	}
	out := ""
	for i, k := range s.SortSpec {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s %s", k.ColumnID, k.Direction)
	}
	return out
}

// Run starts the TUI program over the grid.
func Run(grid *gridview.Grid) error {
	p := tea.NewProgram(New(grid), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
