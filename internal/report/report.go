package report

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rickgao/salesclean/internal/model"
)

// DefaultIndent matches the reference report formatting.
const DefaultIndent = 4

// Marshal renders records as an indented top-level JSON array. An empty
// record set renders as "[]", never null.
func Marshal(records []model.CleanRecord, indent int) ([]byte, error) {
	if records == nil {
		records = []model.CleanRecord{}
	}
	if indent < 0 {
		indent = 0
	}

	data, err := json.MarshalIndent(records, "", strings.Repeat(" ", indent))
	if err != nil {
		return nil, fmt.Errorf("marshal records: %w", err)
	}
	return data, nil
}

// Write serializes records and writes the report file in a single write.
func Write(path string, records []model.CleanRecord, indent int) error {
	data, err := Marshal(records, indent)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// WriteRejects writes rejected rows as JSON lines, one object per row.
// Nothing is written when there are no rejects.
func WriteRejects(path string, rejects []model.RejectedRow) error {
	if len(rejects) == 0 {
		return nil
	}

	var buf strings.Builder
	enc := json.NewEncoder(&buf)
	for _, r := range rejects {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("marshal rejected row: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(buf.String()), 0o644); err != nil {
		return fmt.Errorf("write rejects: %w", err)
	}
	return nil
}
