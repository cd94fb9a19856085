package wizard

import (
	"errors"
	"strconv"
	"strings"

	"quoteforge/internal/domain/entities"
)

var ErrInvalidStepIndex = errors.New("invalid step index")

// Step identifies a position in the fixed wizard sequence. The sequence is
// immutable for the lifetime of a session.

type Step int

const (
	StepFeatures Step = iota
	StepPricing
	StepClient
	StepItems
	StepTerms

	stepCount
)

func StepCount() int { return int(stepCount) }

func (s Step) Valid() bool { return s >= 0 && s < stepCount }

func (s Step) Name() string {
	switch s {
	case StepFeatures:
		return "features"
	case StepPricing:
		return "pricing"
	case StepClient:
		return "client"
	case StepItems:
		return "items"
	case StepTerms:
		return "terms"
	default:
		return "unknown"
	}
}

// FieldError is a field-level validation message scoped to a single step.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Data is the accumulated wizard state validated step by step and assembled
// into a Quote at submission.
type Data struct {
	Features       entities.FeatureSet
	Recommendation *entities.PricingRecommendation
	Client         entities.ClientInfo
	Items          []entities.LineItem
	Terms          string
	ValidityDays   int
}

// Validate runs the validator for the given step against the collected data.
// It is pure: repeated calls never change state. An out-of-range step is a
// programming error and reported as ErrInvalidStepIndex.
func Validate(step Step, d *Data) ([]FieldError, error) {
	if !step.Valid() {
		return nil, ErrInvalidStepIndex
	}

	var errs []FieldError
	switch step {
	case StepFeatures:
		if !d.Features.Industry.Valid() {
			errs = append(errs, FieldError{Field: "industry", Message: "industry is required"})
		}
		if !d.Features.Location.Valid() {
			errs = append(errs, FieldError{Field: "location", Message: "location is required"})
		}
		if !d.Features.ExperienceLevel.Valid() {
			errs = append(errs, FieldError{Field: "experience_level", Message: "experience level is required"})
		}
		if !d.Features.Complexity.Valid() {
			errs = append(errs, FieldError{Field: "complexity", Message: "complexity is required"})
		}
		if d.Features.DurationHours <= 0 {
			errs = append(errs, FieldError{Field: "duration_hours", Message: "duration must be greater than zero"})
		}
		if strings.TrimSpace(d.Features.JobTitle) == "" {
			errs = append(errs, FieldError{Field: "job_title", Message: "job title is required"})
		}
	case StepPricing:
		// Pricing is advisory. The step is always passable, with or without a
		// recommendation, so an oracle outage never blocks the wizard.
	case StepClient:
		if strings.TrimSpace(d.Client.Name) == "" {
			errs = append(errs, FieldError{Field: "name", Message: "client name is required"})
		}
	case StepItems:
		if len(d.Items) == 0 {
			errs = append(errs, FieldError{Field: "items", Message: "at least one line item is required"})
		}
		for i, it := range d.Items {
			if strings.TrimSpace(it.Description) == "" {
				errs = append(errs, FieldError{Field: itemField(i, "description"), Message: "description is required"})
			}
			if it.Quantity <= 0 {
				errs = append(errs, FieldError{Field: itemField(i, "quantity"), Message: "quantity must be greater than zero"})
			}
			if it.UnitPrice < 0 {
				errs = append(errs, FieldError{Field: itemField(i, "unit_price"), Message: "unit price cannot be negative"})
			}
		}
	case StepTerms:
		if d.ValidityDays <= 0 {
			errs = append(errs, FieldError{Field: "validity_days", Message: "validity days must be greater than zero"})
		}
	}
	return errs, nil
}

func itemField(index int, field string) string {
	return "items[" + strconv.Itoa(index) + "]." + field
}
