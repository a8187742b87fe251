// Package reader ingests the headerless sales CSV.
//
// The input carries no header row; column names come from the caller's
// model.Schema. Rows are split positionally and returned with their
// 1-based line numbers so later stages can report where a value came from.
package reader
