package normalize

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/rickgao/salesclean/internal/model"
)

// surrounding characters allowed to decorate a price besides the "$" symbol
const priceCutset = " \t\"'"

// CleanPrice strips currency decoration from a raw price field and parses
// the remainder as a decimal number.
//
// "$10.50", " 10.50 " and "10.50" all yield 10.50. Stripping happens
// strictly before parsing; a remainder that is not a non-negative number
// fails with *model.FormatError.
func CleanPrice(raw string) (float64, error) {
	s := strings.ReplaceAll(raw, "$", "")
	s = strings.Trim(s, priceCutset)

	if s == "" {
		return 0, &model.FormatError{Raw: raw}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &model.FormatError{Raw: raw}
	}
	// ParseFloat also accepts "NaN" and "Inf"; prices are finite and
	// non-negative.
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, &model.FormatError{Raw: raw}
	}

	return f, nil
}

// CleanProduct removes stray quote characters, trims whitespace, and applies
// Unicode NFC so canonically equal product names compare (and dedup) equal.
func CleanProduct(raw string) string {
	s := strings.ReplaceAll(raw, `"`, "")
	s = strings.TrimSpace(s)
	return norm.NFC.String(s)
}

// CleanCountry trims whitespace around a country code.
func CleanCountry(raw string) string {
	return strings.TrimSpace(raw)
}

// ParseID coerces the raw id field to an integer. A non-integer id is a
// malformed row and reports as *model.ParseError.
func ParseID(raw string, line int) (int64, error) {
	s := strings.TrimSpace(raw)
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &model.ParseError{Line: line, Detail: "id " + strconv.Quote(raw) + " is not an integer"}
	}
	return id, nil
}
