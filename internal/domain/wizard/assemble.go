package wizard

import (
	"errors"
	"time"

	"quoteforge/internal/domain/entities"
)

var ErrNoLineItems = errors.New("quote requires at least one line item")

// Assemble produces the immutable quote snapshot from collected wizard data.
//
// The returned quote is a deep, independent copy: mutating the session
// afterwards never alters an already-assembled record. Step-level validation
// is the controller's job and is not repeated here; only the structural
// non-empty items precondition is enforced.
func Assemble(d Data, id string, now time.Time) (entities.Quote, error) {
	if len(d.Items) == 0 {
		return entities.Quote{}, ErrNoLineItems
	}

	items := make([]entities.LineItem, len(d.Items))
	copy(items, d.Items)
	for i := range items {
		items[i].RecomputeTotal()
	}

	var rec *entities.PricingRecommendation
	if d.Recommendation != nil {
		r := *d.Recommendation
		rec = &r
	}

	return entities.Quote{
		ID:             id,
		Features:       d.Features,
		Client:         d.Client,
		Items:          items,
		Terms:          d.Terms,
		ValidityDays:   d.ValidityDays,
		Recommendation: rec,
		GrandTotal:     entities.GrandTotal(items),
		Status:         entities.QuoteStatusSubmitted,
		CreatedAt:      now.UTC(),
	}, nil
}
