package model

import (
	"testing"
	"time"
)

func TestFieldType_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ft   FieldType
		want string
	}{
		{name: "text", ft: FieldTypeText, want: "text"},
		{name: "number", ft: FieldTypeNumber, want: "number"},
		{name: "timestamp", ft: FieldTypeTimestamp, want: "timestamp"},
		{name: "unknown defaults to text", ft: FieldType(99), want: "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.ft.String(); got != tt.want {
				t.Errorf("FieldType.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValue_Render(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{name: "text", value: Text("hello"), want: "hello"},
		{name: "zero value is empty text", value: Value{}, want: ""},
		{name: "integer number drops trailing zeros", value: Number(42), want: "42"},
		{name: "fractional number", value: Number(3.5), want: "3.5"},
		{name: "negative number", value: Number(-0.25), want: "-0.25"},
		{
			name:  "timestamp renders as MM/DD/YYYY",
			value: Timestamp(time.Date(2024, time.March, 7, 15, 4, 5, 0, time.UTC)),
			want:  "03/07/2024",
		},
		{name: "zero timestamp renders empty", value: Timestamp(time.Time{}), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.value.Render(); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b Value
		want int
	}{
		{name: "text ascending", a: Text("apple"), b: Text("banana"), want: -1},
		{name: "text case-insensitive equal ranks", a: Text("Apple"), b: Text("apple"), want: -1},
		{name: "text equal", a: Text("apple"), b: Text("apple"), want: 0},
		{name: "number ten after two", a: Number(10), b: Number(2), want: 1},
		{name: "number equal", a: Number(5), b: Number(5), want: 0},
		{
			name: "timestamp chronological",
			a:    Timestamp(time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)),
			b:    Timestamp(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)),
			want: -1,
		},
		{
			name: "mixed types compare rendered form",
			a:    Number(10),
			b:    Text("2"),
			want: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
			if tt.want != 0 {
				if got := Compare(tt.b, tt.a); got != -tt.want {
					t.Errorf("Compare() reversed = %d, want %d", got, -tt.want)
				}
			}
		})
	}
}

func TestParseValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		ft      FieldType
		want    Value
		wantErr bool
	}{
		{name: "text passes through", input: " Bob ", ft: FieldTypeText, want: Text(" Bob ")},
		{name: "number", input: "3.5", ft: FieldTypeNumber, want: Number(3.5)},
		{name: "number with spaces", input: " 42 ", ft: FieldTypeNumber, want: Number(42)},
		{name: "empty number is zero", input: "", ft: FieldTypeNumber, want: Number(0)},
		{name: "bad number", input: "abc", ft: FieldTypeNumber, wantErr: true},
		{
			name:  "timestamp display format",
			input: "03/07/2024",
			ft:    FieldTypeTimestamp,
			want:  Timestamp(time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC)),
		},
		{name: "empty timestamp is zero time", input: "", ft: FieldTypeTimestamp, want: Timestamp(time.Time{})},
		{name: "bad timestamp", input: "2024-03-07", ft: FieldTypeTimestamp, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseValue(tt.input, tt.ft)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseValue(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseValue(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseValue(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValue_IsZero(t *testing.T) {
	t.Parallel()

	if !(Value{}).IsZero() {
		t.Error("zero Value must report IsZero")
	}
	if !Text("").IsZero() {
		t.Error("empty text is the zero Value")
	}
	if Number(0).IsZero() {
		t.Error("zero number is still a tagged number value")
	}
	if Text("x").IsZero() {
		t.Error("non-empty text is not zero")
	}
}
