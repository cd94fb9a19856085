package request

import (
	"strings"

	"quoteforge/internal/domain/entities"
)

// FeatureSetRequest carries the pricing features step payload. Enum and
// range checking is the wizard's job so refusals surface as field-level
// validation errors, not bind failures; the DTO only normalizes.
type FeatureSetRequest struct {
	Industry        string  `json:"industry"`
	Location        string  `json:"location"`
	ExperienceLevel string  `json:"experience_level"`
	Complexity      string  `json:"complexity"`
	DurationHours   float64 `json:"duration_hours"`
	JobTitle        string  `json:"job_title"`
}

func (r FeatureSetRequest) ToEntity() entities.FeatureSet {
	return entities.FeatureSet{
		Industry:        entities.Industry(strings.TrimSpace(strings.ToLower(r.Industry))),
		Location:        entities.Location(strings.TrimSpace(strings.ToLower(r.Location))),
		ExperienceLevel: entities.ExperienceLevel(strings.TrimSpace(strings.ToLower(r.ExperienceLevel))),
		Complexity:      entities.Complexity(strings.TrimSpace(strings.ToLower(r.Complexity))),
		DurationHours:   r.DurationHours,
		JobTitle:        strings.TrimSpace(r.JobTitle),
	}
}

type ClientInfoRequest struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (r ClientInfoRequest) ToEntity() entities.ClientInfo {
	return entities.ClientInfo{
		Name:    strings.TrimSpace(r.Name),
		Company: strings.TrimSpace(r.Company),
		Email:   strings.TrimSpace(r.Email),
		Phone:   strings.TrimSpace(r.Phone),
		Address: strings.TrimSpace(r.Address),
	}
}

// LineItemRequest never carries a total; totals are derived server-side on
// every mutation.
type LineItemRequest struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

func (r LineItemRequest) ToEntity() entities.LineItem {
	return entities.LineItem{
		Description: strings.TrimSpace(r.Description),
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
	}
}

type TermsRequest struct {
	Terms        string `json:"terms"`
	ValidityDays int    `json:"validity_days"`
}
