package model

import "fmt"

// ParseError reports a row whose shape does not match the schema.
type ParseError struct {
	Line   int // 1-based input line
	Fields int // Fields found
	Want   int // Fields required by the schema
	Detail string
}

func (e *ParseError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Detail)
	}
	return fmt.Sprintf("line %d: row has %d fields, want %d", e.Line, e.Fields, e.Want)
}

// FormatError reports a price field that is not numeric after currency
// symbols and surrounding whitespace/quotes have been stripped.
type FormatError struct {
	Line int    // 1-based input line (0 when unknown)
	Raw  string // Original price text
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: price %q is not numeric", e.Line, e.Raw)
	}
	return fmt.Sprintf("price %q is not numeric", e.Raw)
}
