package normalize

import (
	"errors"
	"testing"

	"github.com/rickgao/salesclean/internal/model"
)

func TestCleanPrice(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"10.50", 10.50},
		{"$10.50", 10.50},
		{" $10.50 ", 10.50},
		{"$ 10.50", 10.50},
		{"\t$5.00\t", 5.00},
		{`"$3.25"`, 3.25},
		{"5", 5},
		{"0", 0},
		{"0.001", 0.001},
	}

	for _, tt := range tests {
		got, err := CleanPrice(tt.raw)
		if err != nil {
			t.Errorf("CleanPrice(%q) error = %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("CleanPrice(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

// Decoration with "$" or whitespace must not change the parsed value.
func TestCleanPriceDecorationInvariant(t *testing.T) {
	variants := []string{"10.50", "$10.50", " 10.50", "10.50 ", " $10.50 ", "$ 10.50"}

	base, err := CleanPrice(variants[0])
	if err != nil {
		t.Fatalf("CleanPrice(%q) error = %v", variants[0], err)
	}
	for _, v := range variants[1:] {
		got, err := CleanPrice(v)
		if err != nil {
			t.Errorf("CleanPrice(%q) error = %v", v, err)
			continue
		}
		if got != base {
			t.Errorf("CleanPrice(%q) = %v, want %v", v, got, base)
		}
	}
}

func TestCleanPriceInvalid(t *testing.T) {
	invalid := []string{"", "$", "  ", "abc", "$abc", "10.5.0", "NaN", "Inf", "-3.50", "10,50"}

	for _, raw := range invalid {
		_, err := CleanPrice(raw)
		if err == nil {
			t.Errorf("CleanPrice(%q) succeeded, want FormatError", raw)
			continue
		}
		var fe *model.FormatError
		if !errors.As(err, &fe) {
			t.Errorf("CleanPrice(%q) error type = %T, want *model.FormatError", raw, err)
		}
	}
}

func TestCleanProduct(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`"Widget A"`, "Widget A"},
		{`  Widget B `, "Widget B"},
		{`Wid"get C`, "Widget C"},
		{"Widget D", "Widget D"},
	}

	for _, tt := range tests {
		if got := CleanProduct(tt.raw); got != tt.want {
			t.Errorf("CleanProduct(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestCleanProductUnicodeNFC(t *testing.T) {
	// "Café" composed vs decomposed (e + combining acute accent)
	composed := "Café"
	decomposed := "Café"

	if CleanProduct(composed) != CleanProduct(decomposed) {
		t.Errorf("NFC normalization missing: %q != %q",
			CleanProduct(composed), CleanProduct(decomposed))
	}
}

func TestParseID(t *testing.T) {
	id, err := ParseID(" 42 ", 1)
	if err != nil {
		t.Fatalf("ParseID error = %v", err)
	}
	if id != 42 {
		t.Errorf("ParseID = %d, want 42", id)
	}

	_, err = ParseID("abc", 3)
	if err == nil {
		t.Fatal("ParseID(\"abc\") succeeded, want ParseError")
	}
	var pe *model.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error type = %T, want *model.ParseError", err)
	}
	if pe.Line != 3 {
		t.Errorf("ParseError.Line = %d, want 3", pe.Line)
	}
}
