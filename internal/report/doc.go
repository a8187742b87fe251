// Package report serializes surviving records to the JSON report and
// writes the rejected-rows side channel.
//
// The report is a top-level JSON array, one object per record in row
// order. The file is written in one shot after serialization completes;
// there are no partial or incremental writes.
package report
