// Package pipeline runs the cleaning stages in order:
// read, parse, normalize, deduplicate, derive INR, serialize.
//
// The whole input is loaded before any transformation; stages are
// synchronous. Under the "abort" error policy the first malformed row
// fails the run with no output written; under "skip" malformed rows go
// to the rejects side channel and the run continues.
package pipeline
