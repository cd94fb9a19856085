package response

import (
	"time"

	"quoteforge/internal/domain/entities"
)

type QuoteResponse struct {
	ID             string                  `json:"id"`
	Features       entities.FeatureSet     `json:"features"`
	Client         entities.ClientInfo     `json:"client"`
	Items          []LineItemResponse      `json:"items"`
	Terms          string                  `json:"terms"`
	ValidityDays   int                     `json:"validity_days"`
	Recommendation *RecommendationResponse `json:"recommendation,omitempty"`
	GrandTotal     float64                 `json:"grand_total"`
	Status         string                  `json:"status"`
	CreatedAt      time.Time               `json:"created_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:             q.ID,
		Features:       q.Features,
		Client:         q.Client,
		Items:          fromLineItems(q.Items),
		Terms:          q.Terms,
		ValidityDays:   q.ValidityDays,
		Recommendation: fromRecommendation(q.Recommendation),
		GrandTotal:     q.GrandTotal,
		Status:         string(q.Status),
		CreatedAt:      q.CreatedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}
