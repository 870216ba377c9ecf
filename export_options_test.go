package gridview

import (
	"testing"
)

func TestExportFormat_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format ExportFormat
		want   string
	}{
		{name: "CSV format", format: ExportCSV, want: "csv"},
		{name: "XLSX format", format: ExportXLSX, want: "xlsx"},
		{name: "HTML format", format: ExportHTML, want: "html"},
		{name: "JSON format", format: ExportJSON, want: "json"},
		{name: "XML format", format: ExportXML, want: "xml"},
		{name: "Unknown format defaults to csv", format: ExportFormat(999), want: "csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.format.String(); got != tt.want {
				t.Errorf("ExportFormat.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExportFormat_Extension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format ExportFormat
		want   string
	}{
		{name: "CSV extension", format: ExportCSV, want: ".csv"},
		{name: "XLSX extension", format: ExportXLSX, want: ".xlsx"},
		{name: "HTML extension", format: ExportHTML, want: ".html"},
		{name: "JSON extension", format: ExportJSON, want: ".json"},
		{name: "XML extension", format: ExportXML, want: ".xml"},
		{name: "Unknown format defaults to csv", format: ExportFormat(999), want: ".csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.format.Extension(); got != tt.want {
				t.Errorf("ExportFormat.Extension() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseExportFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    ExportFormat
		wantErr bool
	}{
		{name: "csv", input: "csv", want: ExportCSV},
		{name: "excel alias", input: "excel", want: ExportXLSX},
		{name: "pdf alias maps to html", input: "pdf", want: ExportHTML},
		{name: "json", input: "json", want: ExportJSON},
		{name: "xml", input: "xml", want: ExportXML},
		{name: "unknown", input: "yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseExportFormat(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseExportFormat(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseExportFormat(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseExportFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCompression_Extension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		compression Compression
		want        string
	}{
		{name: "no compression", compression: CompressionNone, want: ""},
		{name: "gzip", compression: CompressionGZ, want: ".gz"},
		{name: "xz", compression: CompressionXZ, want: ".xz"},
		{name: "zstd", compression: CompressionZSTD, want: ".zst"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.compression.Extension(); got != tt.want {
				t.Errorf("Compression.Extension() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewExportOptions(t *testing.T) {
	t.Parallel()

	opts := NewExportOptions()
	if opts.Format != ExportCSV {
		t.Errorf("default format = %v, want csv", opts.Format)
	}
	if opts.ExcludeHeaders || opts.SelectedOnly {
		t.Error("headers and selection restriction must default off")
	}
	if opts.RowLimit != 0 {
		t.Errorf("default row limit = %d, want 0 (unlimited)", opts.RowLimit)
	}
}

func TestExportOptions_Chaining(t *testing.T) {
	t.Parallel()

	opts := NewExportOptions().
		WithFormat(ExportJSON).
		WithCompression(CompressionGZ).
		WithRowLimit(5).
		WithSelectedOnly().
		WithoutHeaders()

	if opts.Format != ExportJSON || opts.Compression != CompressionGZ {
		t.Errorf("unexpected options %+v", opts)
	}
	if opts.RowLimit != 5 || !opts.SelectedOnly || !opts.ExcludeHeaders {
		t.Errorf("unexpected options %+v", opts)
	}
}

func TestExportOptions_FileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts ExportOptions
		want string
	}{
		{name: "csv default", opts: NewExportOptions(), want: "clients.csv"},
		{name: "xlsx", opts: NewExportOptions().WithFormat(ExportXLSX), want: "clients.xlsx"},
		{name: "json gzipped", opts: NewExportOptions().WithFormat(ExportJSON).WithCompression(CompressionGZ), want: "clients.json.gz"},
		{name: "xml zstd", opts: NewExportOptions().WithFormat(ExportXML).WithCompression(CompressionZSTD), want: "clients.xml.zst"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.opts.FileName(); got != tt.want {
				t.Errorf("FileName() = %v, want %v", got, tt.want)
			}
		})
	}
}
