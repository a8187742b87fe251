// Package store implements optional export sinks for cleaned records.
//
// Sinks:
//   - SQLite: local archive database (clean_sales table + runs provenance)
//   - Postgres: warehouse insert with ON CONFLICT DO NOTHING on the
//     business key
//
// Sinks run after the transformation completes; the JSON report remains
// the canonical artifact.
package store
