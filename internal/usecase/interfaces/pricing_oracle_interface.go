package interfaces

import (
	"context"
	"quoteforge/internal/domain/entities"
)

// IPricingOracle abstracts the external advisory pricing service (e.g. an
// OpenAI-backed model). One call maps a feature set to a recommended price
// range; the result is advisory and never gates wizard progression.
type IPricingOracle interface {
	RequestPricing(ctx context.Context, features entities.FeatureSet) (entities.PricingRecommendation, error)
}
