// Package model provides domain model for gridview.
package model

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the display layout for timestamp fields. Filtering,
// grouping, and export all operate on this rendered form so that results
// match what the user sees on screen.
const DateLayout = "01/02/2006"

// FieldType represents the declared type of a row field.
type FieldType int

const (
	// FieldTypeText represents free-form text fields
	FieldTypeText FieldType = iota
	// FieldTypeNumber represents numeric fields
	FieldTypeNumber
	// FieldTypeTimestamp represents date/time fields rendered as MM/DD/YYYY
	FieldTypeTimestamp
)

// String returns the string representation of FieldType
func (ft FieldType) String() string {
	switch ft {
	case FieldTypeText:
		return "text"
	case FieldTypeNumber:
		return "number"
	case FieldTypeTimestamp:
		return "timestamp"
	default:
		return "text"
	}
}

// Value is a tagged scalar cell value. The zero Value is empty text.
type Value struct {
	typ  FieldType
	text string
	num  float64
	ts   time.Time
}

// Text creates a text Value.
func Text(s string) Value {
	return Value{typ: FieldTypeText, text: s}
}

// Number creates a numeric Value.
func Number(f float64) Value {
	return Value{typ: FieldTypeNumber, num: f}
}

// Timestamp creates a timestamp Value.
func Timestamp(t time.Time) Value {
	return Value{typ: FieldTypeTimestamp, ts: t}
}

// Type returns the field type tag of the value.
func (v Value) Type() FieldType {
	return v.typ
}

// IsZero reports whether the value is the zero Value.
func (v Value) IsZero() bool {
	return v == Value{}
}

// Float returns the numeric payload; zero for non-number values.
func (v Value) Float() float64 {
	return v.num
}

// Time returns the timestamp payload; zero for non-timestamp values.
func (v Value) Time() time.Time {
	return v.ts
}

// Render returns the display representation of the value. Timestamps
// render as MM/DD/YYYY, numbers without trailing zeros.
func (v Value) Render() string {
	switch v.typ {
	case FieldTypeNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case FieldTypeTimestamp:
		if v.ts.IsZero() {
			return ""
		}
		return v.ts.Format(DateLayout)
	default:
		return v.text
	}
}

// Compare orders two values naturally per their declared type: numeric
// for numbers, chronological for timestamps, case-insensitive
// lexicographic for text. Values of differing types compare by their
// rendered form.
func Compare(a, b Value) int {
	if a.typ != b.typ {
		return compareText(a.Render(), b.Render())
	}
	switch a.typ {
	case FieldTypeNumber:
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		default:
			return 0
		}
	case FieldTypeTimestamp:
		switch {
		case a.ts.Before(b.ts):
			return -1
		case a.ts.After(b.ts):
			return 1
		default:
			return 0
		}
	default:
		return compareText(a.text, b.text)
	}
}

// compareText compares case-insensitively, falling back to a
// case-sensitive comparison to keep the order deterministic.
func compareText(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// ParseValue parses a display-format string back into a Value of the
// given type. Used when committing edited field text.
func ParseValue(s string, ft FieldType) (Value, error) {
	switch ft {
	case FieldTypeNumber:
		if strings.TrimSpace(s) == "" {
			return Number(0), nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return Value{}, err
		}
		return Number(f), nil
	case FieldTypeTimestamp:
		if strings.TrimSpace(s) == "" {
			return Timestamp(time.Time{}), nil
		}
		t, err := time.Parse(DateLayout, strings.TrimSpace(s))
		if err != nil {
			return Value{}, err
		}
		return Timestamp(t), nil
	default:
		return Text(s), nil
	}
}
