package wizard

import (
	"errors"
	"testing"

	"quoteforge/internal/domain/entities"
)

func validFeatures() entities.FeatureSet {
	return entities.FeatureSet{
		Industry:        entities.IndustryWebDevelopment,
		Location:        entities.LocationGauteng,
		ExperienceLevel: entities.ExperienceMid,
		Complexity:      entities.ComplexityStandard,
		DurationHours:   8,
		JobTitle:        "Landing page",
	}
}

func TestValidate_InvalidStepIndex(t *testing.T) {
	d := &Data{}
	if _, err := Validate(Step(-1), d); !errors.Is(err, ErrInvalidStepIndex) {
		t.Fatalf("expected ErrInvalidStepIndex, got %v", err)
	}
	if _, err := Validate(Step(StepCount()), d); !errors.Is(err, ErrInvalidStepIndex) {
		t.Fatalf("expected ErrInvalidStepIndex, got %v", err)
	}
}

func TestValidate_IsPure(t *testing.T) {
	d := &Data{Features: validFeatures()}
	for i := 0; i < 3; i++ {
		errs, err := Validate(StepFeatures, d)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(errs) != 0 {
			t.Fatalf("expected no errors, got %v", errs)
		}
	}
}

func TestValidate_Features(t *testing.T) {
	t.Run("complete", func(t *testing.T) {
		d := &Data{Features: validFeatures()}
		errs, err := Validate(StepFeatures, d)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(errs) != 0 {
			t.Fatalf("expected no errors, got %v", errs)
		}
	})

	t.Run("empty feature set reports every field", func(t *testing.T) {
		d := &Data{}
		errs, err := Validate(StepFeatures, d)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(errs) != 6 {
			t.Fatalf("expected 6 field errors, got %d: %v", len(errs), errs)
		}
	})

	t.Run("zero duration", func(t *testing.T) {
		f := validFeatures()
		f.DurationHours = 0
		errs, _ := Validate(StepFeatures, &Data{Features: f})
		if len(errs) != 1 || errs[0].Field != "duration_hours" {
			t.Fatalf("expected duration_hours error, got %v", errs)
		}
	})

	t.Run("blank job title", func(t *testing.T) {
		f := validFeatures()
		f.JobTitle = "   "
		errs, _ := Validate(StepFeatures, &Data{Features: f})
		if len(errs) != 1 || errs[0].Field != "job_title" {
			t.Fatalf("expected job_title error, got %v", errs)
		}
	})
}

func TestValidate_PricingAlwaysPassable(t *testing.T) {
	// No recommendation, no problem: pricing is advisory.
	errs, err := Validate(StepPricing, &Data{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidate_Client(t *testing.T) {
	errs, _ := Validate(StepClient, &Data{Client: entities.ClientInfo{Name: "  "}})
	if len(errs) != 1 || errs[0].Field != "name" {
		t.Fatalf("expected name error, got %v", errs)
	}

	errs, _ = Validate(StepClient, &Data{Client: entities.ClientInfo{Name: "Acme"}})
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidate_Items(t *testing.T) {
	t.Run("valid item", func(t *testing.T) {
		d := &Data{Items: []entities.LineItem{{Description: "Landing page", Quantity: 8, UnitPrice: 625}}}
		errs, _ := Validate(StepItems, d)
		if len(errs) != 0 {
			t.Fatalf("expected no errors, got %v", errs)
		}
	})

	t.Run("empty sequence", func(t *testing.T) {
		errs, _ := Validate(StepItems, &Data{})
		if len(errs) != 1 || errs[0].Field != "items" {
			t.Fatalf("expected items error, got %v", errs)
		}
	})

	t.Run("bad item fields", func(t *testing.T) {
		d := &Data{Items: []entities.LineItem{{Description: "", Quantity: 0, UnitPrice: -1}}}
		errs, _ := Validate(StepItems, d)
		if len(errs) != 3 {
			t.Fatalf("expected 3 errors, got %v", errs)
		}
		if errs[0].Field != "items[0].description" {
			t.Fatalf("unexpected field name: %q", errs[0].Field)
		}
	})
}

func TestValidate_Terms(t *testing.T) {
	errs, _ := Validate(StepTerms, &Data{ValidityDays: 0})
	if len(errs) != 1 || errs[0].Field != "validity_days" {
		t.Fatalf("expected validity_days error, got %v", errs)
	}

	errs, _ = Validate(StepTerms, &Data{ValidityDays: 30})
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestStepNames(t *testing.T) {
	want := []string{"features", "pricing", "client", "items", "terms"}
	if StepCount() != len(want) {
		t.Fatalf("expected %d steps, got %d", len(want), StepCount())
	}
	for i, name := range want {
		if got := Step(i).Name(); got != name {
			t.Fatalf("step %d: expected %q, got %q", i, name, got)
		}
	}
}
