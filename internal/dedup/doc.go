// Package dedup removes duplicate sales records.
//
// Duplicates are identified by the business key (product, price_usd), not
// by full-row equality: two rows with different ids or countries but the
// same product and price describe the same sale. The first occurrence in
// input order survives.
package dedup
