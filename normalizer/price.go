package normalizer

import (
	"fmt"

	"events-server/models"
)

const DEFAULT_CURRENCY = "USD"

// PriceRange formats the first price range as "min - max CURRENCY". Both
// bounds must be present.
func PriceRange(ranges []models.PriceRange) *string {
	if len(ranges) == 0 {
		return nil
	}
	r := ranges[0]
	if r.Min == nil || r.Max == nil {
		return nil
	}
	currency := DEFAULT_CURRENCY
	if r.Currency != nil && *r.Currency != "" {
		currency = *r.Currency
	}
	return strPtr(fmt.Sprintf("%s - %s %s", r.Min.String(), r.Max.String(), currency))
}
