package reader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rickgao/salesclean/internal/model"
)

// Row is one raw CSV row before schema checks.
type Row struct {
	Line   int // 1-based input line
	Fields []string
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadFile loads the whole input file into memory and splits it into rows.
// A UTF-8 BOM is tolerated, quoted fields are unquoted by the CSV layer,
// and leading whitespace after a comma is trimmed.
func ReadFile(path string) ([]Row, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input file: %w", err)
	}
	return ReadAll(bytes.NewReader(bytes.TrimPrefix(b, utf8BOM)))
}

// ReadAll splits CSV data into rows. Rows are not validated against a
// schema here; field-count checks belong to ParseRow so the error policy
// can decide per row.
func ReadAll(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	var rows []Row
	line := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		line++
		rows = append(rows, Row{Line: line, Fields: rec})
	}
	return rows, nil
}

// ParseRow checks a row against the schema and maps it to a RawRecord.
// A row whose field count does not match the schema width fails with
// *model.ParseError.
func ParseRow(row Row, schema model.Schema) (model.RawRecord, error) {
	if len(row.Fields) != schema.Width() {
		return model.RawRecord{}, &model.ParseError{
			Line:   row.Line,
			Fields: len(row.Fields),
			Want:   schema.Width(),
		}
	}
	return model.RawRecord{
		Line:    row.Line,
		ID:      row.Fields[0],
		Product: row.Fields[1],
		Price:   row.Fields[2],
		Country: row.Fields[3],
	}, nil
}

// Parse maps all rows to RawRecords, failing on the first malformed row.
func Parse(rows []Row, schema model.Schema) ([]model.RawRecord, error) {
	records := make([]model.RawRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := ParseRow(row, schema)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
