// Package convert derives secondary-currency prices.
//
// The USD to INR rate is an explicit value carried by the Converter, never
// a package-level constant, so runs (and tests) can use different rates.
package convert
