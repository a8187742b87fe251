package dedup

import "github.com/rickgao/salesclean/internal/model"

// Deduplicate keeps the first record seen for each distinct business key,
// preserving input order. Applying it to already-deduplicated input is a
// no-op.
func Deduplicate(records []model.CleanRecord) []model.CleanRecord {
	seen := make(map[model.RecordKey]struct{}, len(records))
	out := make([]model.CleanRecord, 0, len(records))

	for _, rec := range records {
		key := rec.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, rec)
	}
	return out
}
