package convert

import "github.com/rickgao/salesclean/internal/model"

// DefaultUSDToINR is the reference conversion rate.
const DefaultUSDToINR = 83

// Converter derives INR prices from USD prices at a fixed rate.
type Converter struct {
	rate float64
}

// New returns a Converter for the given USD to INR rate.
func New(rate float64) Converter {
	return Converter{rate: rate}
}

// Rate returns the configured conversion rate.
func (c Converter) Rate() float64 {
	return c.rate
}

// DeriveINR converts a USD price to INR. Pure multiplication; precision is
// whatever float64 gives.
func (c Converter) DeriveINR(priceUSD float64) float64 {
	return priceUSD * c.rate
}

// Apply fills PriceINR on every record, returning the same slice.
func (c Converter) Apply(records []model.CleanRecord) []model.CleanRecord {
	for i := range records {
		records[i].PriceINR = c.DeriveINR(records[i].PriceUSD)
	}
	return records
}
