package model

// -----------------------------------------------------------------------------
// Record Types
// -----------------------------------------------------------------------------

// RawRecord is one input row after positional splitting but before any
// coercion. Fields are kept as raw text so errors can report the offending
// value and line.
type RawRecord struct {
	Line    int    // 1-based input line
	ID      string // Raw id field
	Product string // Raw product name (may contain stray quotes)
	Price   string // Raw price text (may contain "$", whitespace, quotes)
	Country string // Raw country code
}

// CleanRecord is a fully normalized sales record. For any two CleanRecords
// in a pipeline's output, the (Product, PriceUSD) pair is unique.
type CleanRecord struct {
	ID       int64   `json:"id"`
	Product  string  `json:"product"`
	PriceUSD float64 `json:"price_usd"`
	PriceINR float64 `json:"price_inr"`
	Country  string  `json:"country"`
}

// RecordKey is the business key identifying duplicate sales entries.
// Two records with equal keys describe the same sale regardless of
// differences in ID or Country.
type RecordKey struct {
	Product  string
	PriceUSD float64
}

// Key returns the record's business key.
func (r CleanRecord) Key() RecordKey {
	return RecordKey{Product: r.Product, PriceUSD: r.PriceUSD}
}

// RejectedRow describes an input row dropped under the "skip" error policy.
type RejectedRow struct {
	Line   int      `json:"line"`
	Fields []string `json:"fields"`
	Reason string   `json:"reason"`
}

// -----------------------------------------------------------------------------
// Schema
// -----------------------------------------------------------------------------

// Schema names the positional columns of the headerless input file. Field
// names are supplied by the caller, never read from the file.
type Schema struct {
	Fields []string
}

// DefaultSchema returns the fixed four-column sales schema.
func DefaultSchema() Schema {
	return Schema{Fields: []string{"id", "product", "price", "country"}}
}

// Width returns the number of columns the schema expects.
func (s Schema) Width() int {
	return len(s.Fields)
}

// -----------------------------------------------------------------------------
// Run Accounting
// -----------------------------------------------------------------------------

// RunStats counts what happened to the input rows over one pipeline run.
type RunStats struct {
	RowsRead   int // Rows read from the input file
	Rejected   int // Rows dropped by the "skip" error policy
	Duplicates int // Rows dropped as business-key duplicates
	Written    int // Records in the final output
}
