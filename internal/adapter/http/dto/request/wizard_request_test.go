package request

import (
	"testing"

	"quoteforge/internal/domain/entities"
)

func TestFeatureSetRequest_ToEntity_Normalizes(t *testing.T) {
	r := FeatureSetRequest{
		Industry:        "  Web_Development ",
		Location:        "GAUTENG",
		ExperienceLevel: "Mid",
		Complexity:      " Standard",
		DurationHours:   8,
		JobTitle:        "  Landing page  ",
	}

	got := r.ToEntity()
	if got.Industry != entities.IndustryWebDevelopment {
		t.Fatalf("expected normalized industry, got %q", got.Industry)
	}
	if got.Location != entities.LocationGauteng || got.ExperienceLevel != entities.ExperienceMid {
		t.Fatalf("unexpected entity: %+v", got)
	}
	if got.Complexity != entities.ComplexityStandard {
		t.Fatalf("unexpected complexity: %q", got.Complexity)
	}
	if got.JobTitle != "Landing page" {
		t.Fatalf("expected trimmed job title, got %q", got.JobTitle)
	}
}

func TestFeatureSetRequest_ToEntity_KeepsUnknownValues(t *testing.T) {
	// Unknown enum values pass through so the wizard can refuse them with a
	// field error instead of a bind failure.
	got := FeatureSetRequest{Industry: "quantum_plumbing"}.ToEntity()
	if got.Industry != entities.Industry("quantum_plumbing") {
		t.Fatalf("unexpected industry: %q", got.Industry)
	}
	if got.Industry.Valid() {
		t.Fatal("unknown industry must not be valid")
	}
}

func TestLineItemRequest_ToEntity_NoClientTotal(t *testing.T) {
	got := LineItemRequest{Description: " Landing page ", Quantity: 8, UnitPrice: 625}.ToEntity()
	if got.Description != "Landing page" {
		t.Fatalf("expected trimmed description, got %q", got.Description)
	}
	if got.Total != 0 {
		t.Fatalf("total must be derived later, got %v", got.Total)
	}
}

func TestClientInfoRequest_ToEntity_Trims(t *testing.T) {
	got := ClientInfoRequest{Name: "  Acme Ltd  ", Email: " billing@acme.test "}.ToEntity()
	if got.Name != "Acme Ltd" || got.Email != "billing@acme.test" {
		t.Fatalf("unexpected entity: %+v", got)
	}
}
