// Package model defines the shared data types used across the sales cleaning
// pipeline.
//
// Conventions:
//   - Prices: float64 dollars (price_usd) and rupees (price_inr)
//   - Line numbers: 1-based position in the input file
//   - IDs: int64 record ids, uuid.UUID for pipeline run ids
package model
