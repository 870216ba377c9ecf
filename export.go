package gridview

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/example/gridview/domain/model"
)

// exportNow is stubbed in tests to pin the metadata timestamp.
var exportNow = time.Now

// Export serializes the current view into the requested format:
// the filtered, sorted row set (pagination bypassed) across the
// visible, non-synthetic columns, every value resolved through the same
// rendering rules used on screen.
func (g *Grid) Export(w io.Writer, opts ExportOptions) error {
	rows, cols := g.exportView()
	rows = restrictRows(rows, g.state, opts)

	cw, closeWriter, err := newCompressionWriter(w, opts.Compression)
	if err != nil {
		return err
	}
	if err := writeExport(cw, cols, rows, opts); err != nil {
		_ = closeWriter()
		return err
	}
	return closeWriter()
}

func writeExport(w io.Writer, cols []Column, rows []model.Row, opts ExportOptions) error {
	switch opts.Format {
	case ExportCSV:
		return writeCSV(w, cols, rows, opts)
	case ExportXLSX:
		return writeXLSX(w, cols, rows, opts)
	case ExportHTML:
		return writeHTML(w, cols, rows, opts)
	case ExportJSON:
		return writeJSON(w, cols, rows, opts)
	case ExportXML:
		return writeXML(w, cols, rows, opts)
	default:
		return ErrUnsupportedFormat
	}
}

// restrictRows applies the selected-only restriction and the row cap.
func restrictRows(rows []model.Row, state *ViewState, opts ExportOptions) []model.Row {
	if opts.SelectedOnly {
		kept := make([]model.Row, 0, len(rows))
		for _, r := range rows {
			if state.IsSelected(r.ID) {
				kept = append(kept, r)
			}
		}
		rows = kept
	}
	if opts.RowLimit > 0 && len(rows) > opts.RowLimit {
		rows = rows[:opts.RowLimit]
	}
	return rows
}

func writeCSV(w io.Writer, cols []Column, rows []model.Row, opts ExportOptions) error {
	cw := csv.NewWriter(w)
	if !opts.ExcludeHeaders {
		labels := make([]string, len(cols))
		for i, c := range cols {
			labels[i] = c.Label
		}
		if err := cw.Write(labels); err != nil {
			return fmt.Errorf("gridview: write csv header: %w", err)
		}
	}
	record := make([]string, len(cols))
	for _, r := range rows {
		for i, c := range cols {
			record[i] = c.RenderCell(r)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("gridview: write csv record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeXLSX(w io.Writer, cols []Column, rows []model.Row, opts ExportOptions) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Sheet1"
	rowNum := 1
	if !opts.ExcludeHeaders {
		for i, c := range cols {
			cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
			if err != nil {
				return fmt.Errorf("gridview: xlsx cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, c.Label); err != nil {
				return fmt.Errorf("gridview: write xlsx header: %w", err)
			}
		}
		rowNum++
	}
	for _, r := range rows {
		for i, c := range cols {
			cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
			if err != nil {
				return fmt.Errorf("gridview: xlsx cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, c.RenderCell(r)); err != nil {
				return fmt.Errorf("gridview: write xlsx cell: %w", err)
			}
		}
		rowNum++
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("gridview: write xlsx: %w", err)
	}
	return nil
}

// writeHTML emits the print-oriented document handed to the browser's
// print dialog on the PDF path.
func writeHTML(w io.Writer, cols []Column, rows []model.Row, opts ExportOptions) error {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("<title>Clients</title>\n")
	b.WriteString("<style>\n")
	b.WriteString("table { border-collapse: collapse; width: 100%; font-family: sans-serif; }\n")
	b.WriteString("th, td { border: 1px solid #999; padding: 4px 8px; text-align: left; }\n")
	b.WriteString("th { background: #eee; }\n")
	b.WriteString("</style>\n</head>\n<body>\n<table>\n")

	if !opts.ExcludeHeaders {
		b.WriteString("<thead>\n<tr>")
		for _, c := range cols {
			b.WriteString("<th>")
			b.WriteString(html.EscapeString(c.Label))
			b.WriteString("</th>")
		}
		b.WriteString("</tr>\n</thead>\n")
	}

	b.WriteString("<tbody>\n")
	for _, r := range rows {
		b.WriteString("<tr>")
		for _, c := range cols {
			b.WriteString("<td>")
			b.WriteString(html.EscapeString(c.RenderCell(r)))
			b.WriteString("</td>")
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody>\n</table>\n</body>\n</html>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// jsonColumn is one entry of the JSON envelope's column manifest.
type jsonColumn struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// jsonEnvelope wraps the exported rows with metadata unless headers are
// excluded.
type jsonEnvelope struct {
	ExportedAt string              `json:"exportedAt"`
	Count      int                 `json:"count"`
	Columns    []jsonColumn        `json:"columns"`
	Rows       []map[string]string `json:"rows"`
}

func writeJSON(w io.Writer, cols []Column, rows []model.Row, opts ExportOptions) error {
	records := make([]map[string]string, 0, len(rows))
	for _, r := range rows {
		rec := make(map[string]string, len(cols))
		for _, c := range cols {
			rec[c.ID] = c.RenderCell(r)
		}
		records = append(records, rec)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if opts.ExcludeHeaders {
		return enc.Encode(records)
	}

	manifest := make([]jsonColumn, len(cols))
	for i, c := range cols {
		manifest[i] = jsonColumn{ID: c.ID, Label: c.Label}
	}
	return enc.Encode(jsonEnvelope{
		ExportedAt: exportNow().Format(time.RFC3339),
		Count:      len(records),
		Columns:    manifest,
		Rows:       records,
	})
}

func writeXML(w io.Writer, cols []Column, rows []model.Row, opts ExportOptions) error {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString("<clients>\n")

	if !opts.ExcludeHeaders {
		fmt.Fprintf(&b, "  <meta exportedAt=%q count=%q/>\n",
			exportNow().Format(time.RFC3339), fmt.Sprintf("%d", len(rows)))
	}

	for _, r := range rows {
		fmt.Fprintf(&b, "  <client id=%q>\n", xmlEscape(r.ID))
		for _, c := range cols {
			tag := xmlTag(c.ID)
			fmt.Fprintf(&b, "    <%s>%s</%s>\n", tag, xmlEscape(c.RenderCell(r)), tag)
		}
		b.WriteString("  </client>\n")
	}
	b.WriteString("</clients>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func xmlEscape(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return r.Replace(s)
}

// xmlTag sanitizes a column id into a safe element name.
func xmlTag(id string) string {
	var b strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
			b.WriteRune(r)
		case r >= '0' && r <= '9' && b.Len() > 0:
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "field"
	}
	return b.String()
}
