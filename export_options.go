package gridview

// ExportFormat represents the export output format
type ExportFormat int

const (
	// ExportCSV represents comma-separated output
	ExportCSV ExportFormat = iota
	// ExportXLSX represents Excel spreadsheet output
	ExportXLSX
	// ExportHTML represents the print-oriented HTML document (the PDF path)
	ExportHTML
	// ExportJSON represents structured JSON output
	ExportJSON
	// ExportXML represents tagged XML output
	ExportXML
)

// String returns the string representation of ExportFormat
func (f ExportFormat) String() string {
	switch f {
	case ExportCSV:
		return "csv"
	case ExportXLSX:
		return "xlsx"
	case ExportHTML:
		return "html"
	case ExportJSON:
		return "json"
	case ExportXML:
		return "xml"
	default:
		return "csv"
	}
}

// Extension returns the file extension for the format
func (f ExportFormat) Extension() string {
	switch f {
	case ExportCSV:
		return ".csv"
	case ExportXLSX:
		return ".xlsx"
	case ExportHTML:
		return ".html"
	case ExportJSON:
		return ".json"
	case ExportXML:
		return ".xml"
	default:
		return ".csv"
	}
}

// ParseExportFormat parses a format name as used on the CLI.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch s {
	case "csv":
		return ExportCSV, nil
	case "xlsx", "excel":
		return ExportXLSX, nil
	case "html", "pdf":
		return ExportHTML, nil
	case "json":
		return ExportJSON, nil
	case "xml":
		return ExportXML, nil
	default:
		return ExportCSV, ErrUnsupportedFormat
	}
}

// Compression represents the optional export artifact compression
type Compression int

const (
	// CompressionNone represents no compression
	CompressionNone Compression = iota
	// CompressionGZ represents gzip compression
	CompressionGZ
	// CompressionXZ represents xz compression
	CompressionXZ
	// CompressionZSTD represents zstd compression
	CompressionZSTD
)

// String returns the string representation of Compression
func (c Compression) String() string {
	switch c {
	case CompressionGZ:
		return "gz"
	case CompressionXZ:
		return "xz"
	case CompressionZSTD:
		return "zstd"
	default:
		return "none"
	}
}

// Extension returns the file extension for the compression type
func (c Compression) Extension() string {
	switch c {
	case CompressionGZ:
		return ".gz"
	case CompressionXZ:
		return ".xz"
	case CompressionZSTD:
		return ".zst"
	default:
		return ""
	}
}

// exportBaseName is the fixed default artifact name.
const exportBaseName = "clients"

// ExportOptions configures how the current grid view is exported.
//
// Example:
//
//	options := gridview.NewExportOptions().
//		WithFormat(gridview.ExportJSON).
//		WithRowLimit(100).
//		WithSelectedOnly()
//
//	err := grid.Export(w, options)
type ExportOptions struct {
	// Format specifies the output format
	Format ExportFormat
	// Compression specifies the optional artifact compression
	Compression Compression
	// ExcludeHeaders omits the header/metadata block from the output.
	// Formats with a structural header (JSON envelope, XML meta
	// element, HTML table head) omit the block entirely rather than
	// emitting an empty one.
	ExcludeHeaders bool
	// RowLimit caps the number of exported rows; 0 means unlimited
	RowLimit int
	// SelectedOnly restricts output to rows in the selection set
	SelectedOnly bool
}

// NewExportOptions creates default export options (CSV, headers
// included, unlimited rows, no compression).
func NewExportOptions() ExportOptions {
	return ExportOptions{Format: ExportCSV}
}

// WithFormat sets the output format.
func (o ExportOptions) WithFormat(format ExportFormat) ExportOptions {
	o.Format = format
	return o
}

// WithCompression adds compression to the exported artifact.
func (o ExportOptions) WithCompression(c Compression) ExportOptions {
	o.Compression = c
	return o
}

// WithoutHeaders omits the header/metadata block from the output.
func (o ExportOptions) WithoutHeaders() ExportOptions {
	o.ExcludeHeaders = true
	return o
}

// WithRowLimit caps the number of exported rows. 0 means unlimited.
func (o ExportOptions) WithRowLimit(n int) ExportOptions {
	o.RowLimit = n
	return o
}

// WithSelectedOnly restricts the export to selected rows.
func (o ExportOptions) WithSelectedOnly() ExportOptions {
	o.SelectedOnly = true
	return o
}

// FileName returns the default artifact filename for the options,
// e.g. "clients.csv" or "clients.json.gz".
func (o ExportOptions) FileName() string {
	return exportBaseName + o.Format.Extension() + o.Compression.Extension()
}
