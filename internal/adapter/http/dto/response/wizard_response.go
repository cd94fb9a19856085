package response

import (
	"quoteforge/internal/domain/entities"
	"quoteforge/internal/domain/wizard"
)

type FieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type LineItemResponse struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

type RecommendationResponse struct {
	MinPrice   float64 `json:"min_price"`
	MaxPrice   float64 `json:"max_price"`
	Confidence float64 `json:"confidence"`
	Rationale  string  `json:"rationale"`
}

// WizardSessionResponse is the full session view: position, collected data,
// derived totals and the validation errors from the last refused advance. A
// thin front end can render the wizard from this alone.
type WizardSessionResponse struct {
	SessionID        string                  `json:"session_id"`
	Step             int                     `json:"step"`
	StepName         string                  `json:"step_name"`
	StepCount        int                     `json:"step_count"`
	Submitted        bool                    `json:"submitted"`
	Busy             bool                    `json:"busy"`
	QuoteID          string                  `json:"quote_id,omitempty"`
	Features         entities.FeatureSet     `json:"features"`
	Recommendation   *RecommendationResponse `json:"recommendation,omitempty"`
	Client           entities.ClientInfo     `json:"client"`
	Items            []LineItemResponse      `json:"items"`
	Terms            string                  `json:"terms"`
	ValidityDays     int                     `json:"validity_days"`
	GrandTotal       float64                 `json:"grand_total"`
	ValidationErrors []FieldErrorResponse    `json:"validation_errors,omitempty"`
}

func FromSnapshot(s wizard.Snapshot) WizardSessionResponse {
	return WizardSessionResponse{
		SessionID:        s.ID,
		Step:             int(s.Step),
		StepName:         s.Step.Name(),
		StepCount:        s.StepCount,
		Submitted:        s.Submitted,
		Busy:             s.Busy,
		QuoteID:          s.QuoteID,
		Features:         s.Data.Features,
		Recommendation:   fromRecommendation(s.Data.Recommendation),
		Client:           s.Data.Client,
		Items:            fromLineItems(s.Data.Items),
		Terms:            s.Data.Terms,
		ValidityDays:     s.Data.ValidityDays,
		GrandTotal:       s.GrandTotal,
		ValidationErrors: fromFieldErrors(s.LastErrors),
	}
}

// FromAdvanceOutcome reports an advance attempt; the attempt's validation
// errors replace whatever the snapshot last recorded.
func FromAdvanceOutcome(s wizard.Snapshot, errs []wizard.FieldError) WizardSessionResponse {
	resp := FromSnapshot(s)
	resp.ValidationErrors = fromFieldErrors(errs)
	return resp
}

func fromLineItems(items []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, LineItemResponse{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		})
	}
	return out
}

func fromRecommendation(rec *entities.PricingRecommendation) *RecommendationResponse {
	if rec == nil {
		return nil
	}
	return &RecommendationResponse{
		MinPrice:   rec.MinPrice,
		MaxPrice:   rec.MaxPrice,
		Confidence: rec.Confidence,
		Rationale:  rec.Rationale,
	}
}

func fromFieldErrors(errs []wizard.FieldError) []FieldErrorResponse {
	if len(errs) == 0 {
		return nil
	}
	out := make([]FieldErrorResponse, 0, len(errs))
	for _, e := range errs {
		out = append(out, FieldErrorResponse{Field: e.Field, Message: e.Message})
	}
	return out
}
