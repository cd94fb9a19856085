package entities

import "time"

// QuoteStatus represents the lifecycle of a quote.
//
// Domain notes:
//   - The wizard owns a draft in memory; only submitted quotes reach storage.

type QuoteStatus string

const (
	QuoteStatusDraft     QuoteStatus = "draft"
	QuoteStatusSubmitted QuoteStatus = "submitted"
)

// ClientInfo is the billing contact collected by the wizard. Only Name is
// mandatory before the client step can be advanced past.
type ClientInfo struct {
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// LineItem is one billable row of a quote.
//
// Total is derived and must be recomputed eagerly on every mutation of
// Quantity or UnitPrice; a stale total must never be observable.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

func (li *LineItem) RecomputeTotal() {
	li.Total = li.Quantity * li.UnitPrice
}

// GrandTotal sums the item totals. Callers recompute it whenever the item
// sequence changes.
func GrandTotal(items []LineItem) float64 {
	sum := 0.0
	for _, it := range items {
		sum += it.Total
	}
	return sum
}

// Quote is the immutable record assembled at submission time and persisted
// in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - GrandTotal is the sum of all item totals at assembly time.
//
// Recommendation is carried only when it was computed from the exact feature
// set present at submission; it is nil when pricing was unavailable.

type Quote struct {
	ID             string                 `json:"id"`
	Features       FeatureSet             `json:"features"`
	Client         ClientInfo             `json:"client"`
	Items          []LineItem             `json:"items"`
	Terms          string                 `json:"terms"`
	ValidityDays   int                    `json:"validity_days"`
	Recommendation *PricingRecommendation `json:"recommendation,omitempty"`
	GrandTotal     float64                `json:"grand_total"`
	Status         QuoteStatus            `json:"status"`
	CreatedAt      time.Time              `json:"created_at"`
}
