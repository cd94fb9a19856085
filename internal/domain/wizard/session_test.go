package wizard

import (
	"errors"
	"testing"

	"quoteforge/internal/domain/entities"
)

func advanceOK(t *testing.T, s *Session) {
	t.Helper()
	errs, pending, err := s.Advance()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(errs) != 0 {
		t.Fatalf("unexpected validation errors: %v", errs)
	}
	if pending != nil {
		t.Fatalf("did not expect a pending submission")
	}
}

// Walks a session to the given step with valid data filled in along the way.
func sessionAtStep(t *testing.T, target Step) *Session {
	t.Helper()
	s := NewSession("sess-1")
	if target == StepFeatures {
		return s
	}
	if err := s.SetFeatures(validFeatures()); err != nil {
		t.Fatalf("set features: %v", err)
	}
	advanceOK(t, s) // features -> pricing
	if target == StepPricing {
		return s
	}
	advanceOK(t, s) // pricing -> client
	if target == StepClient {
		return s
	}
	if err := s.SetClient(entities.ClientInfo{Name: "Acme"}); err != nil {
		t.Fatalf("set client: %v", err)
	}
	advanceOK(t, s) // client -> items
	if target == StepItems {
		return s
	}
	if err := s.UpdateItem(0, entities.LineItem{Description: "Landing page", Quantity: 8, UnitPrice: 625}); err != nil {
		t.Fatalf("update item: %v", err)
	}
	advanceOK(t, s) // items -> terms
	return s
}

func TestSession_StartsAtFirstStepWithOneItem(t *testing.T) {
	s := NewSession("sess-1")
	snap := s.Snapshot()
	if snap.Step != StepFeatures {
		t.Fatalf("expected step 0, got %d", snap.Step)
	}
	if len(snap.Data.Items) != 1 {
		t.Fatalf("expected one seeded line item, got %d", len(snap.Data.Items))
	}
	if snap.Submitted || snap.Busy {
		t.Fatalf("unexpected state: %+v", snap)
	}
}

func TestSession_AdvanceRefusedOnInvalidStep(t *testing.T) {
	s := NewSession("sess-1")
	errs, pending, err := s.Advance()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pending != nil {
		t.Fatalf("did not expect a pending submission")
	}
	if len(errs) == 0 {
		t.Fatalf("expected validation errors on empty feature set")
	}
	if got := s.Snapshot().Step; got != StepFeatures {
		t.Fatalf("step must be unchanged after refusal, got %d", got)
	}
	if got := s.Snapshot().LastErrors; len(got) == 0 {
		t.Fatalf("expected last errors to be recorded")
	}
}

func TestSession_AdvanceSucceedsIffValidationPasses(t *testing.T) {
	s := NewSession("sess-1")
	if err := s.SetFeatures(validFeatures()); err != nil {
		t.Fatalf("set features: %v", err)
	}
	advanceOK(t, s)
	if got := s.Snapshot().Step; got != StepPricing {
		t.Fatalf("expected pricing step, got %d", got)
	}
}

func TestSession_RetreatThenAdvanceReturnsToSameStep(t *testing.T) {
	s := sessionAtStep(t, StepClient)
	if err := s.Retreat(); err != nil {
		t.Fatalf("retreat: %v", err)
	}
	if got := s.Snapshot().Step; got != StepPricing {
		t.Fatalf("expected pricing step, got %d", got)
	}
	// The features already satisfied validation; coming forward again must
	// not re-trigger errors.
	advanceOK(t, s)
	if got := s.Snapshot().Step; got != StepClient {
		t.Fatalf("expected client step, got %d", got)
	}
}

func TestSession_RetreatAtFirstStep(t *testing.T) {
	s := NewSession("sess-1")
	if err := s.Retreat(); !errors.Is(err, ErrAtFirstStep) {
		t.Fatalf("expected ErrAtFirstStep, got %v", err)
	}
}

func TestSession_LineItemTotalsNeverStale(t *testing.T) {
	s := sessionAtStep(t, StepItems)

	if err := s.UpdateItem(0, entities.LineItem{Description: "Landing page", Quantity: 8, UnitPrice: 625}); err != nil {
		t.Fatalf("update item: %v", err)
	}
	snap := s.Snapshot()
	if got := snap.Data.Items[0].Total; got != 5000 {
		t.Fatalf("expected total 5000, got %v", got)
	}
	if snap.GrandTotal != 5000 {
		t.Fatalf("expected grand total 5000, got %v", snap.GrandTotal)
	}

	// A sneaky total in the input must be overwritten by the recompute.
	if err := s.UpdateItem(0, entities.LineItem{Description: "Landing page", Quantity: 2, UnitPrice: 100, Total: 999}); err != nil {
		t.Fatalf("update item: %v", err)
	}
	if got := s.Snapshot().Data.Items[0].Total; got != 200 {
		t.Fatalf("expected total 200, got %v", got)
	}
}

func TestSession_GrandTotalTracksAddEditRemove(t *testing.T) {
	s := sessionAtStep(t, StepItems)
	if err := s.UpdateItem(0, entities.LineItem{Description: "A", Quantity: 2, UnitPrice: 100}); err != nil {
		t.Fatalf("update item: %v", err)
	}
	if err := s.AddItem(entities.LineItem{Description: "B", Quantity: 3, UnitPrice: 50}); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if got := s.Snapshot().GrandTotal; got != 350 {
		t.Fatalf("expected grand total 350, got %v", got)
	}
	if err := s.RemoveItem(1); err != nil {
		t.Fatalf("remove item: %v", err)
	}
	if got := s.Snapshot().GrandTotal; got != 200 {
		t.Fatalf("expected grand total 200, got %v", got)
	}
}

func TestSession_RemovingLastItemRejected(t *testing.T) {
	s := NewSession("sess-1")
	if err := s.RemoveItem(0); !errors.Is(err, ErrLastLineItem) {
		t.Fatalf("expected ErrLastLineItem, got %v", err)
	}
	if got := len(s.Snapshot().Data.Items); got != 1 {
		t.Fatalf("item sequence length must never drop below 1, got %d", got)
	}
}

func TestSession_ItemIndexOutOfRange(t *testing.T) {
	s := NewSession("sess-1")
	if err := s.UpdateItem(5, entities.LineItem{}); !errors.Is(err, ErrLineItemOutOfRange) {
		t.Fatalf("expected ErrLineItemOutOfRange, got %v", err)
	}
	if err := s.RemoveItem(-1); !errors.Is(err, ErrLineItemOutOfRange) {
		t.Fatalf("expected ErrLineItemOutOfRange, got %v", err)
	}
}

func TestSession_FeatureEditClearsRecommendation(t *testing.T) {
	s := NewSession("sess-1")
	if err := s.SetFeatures(validFeatures()); err != nil {
		t.Fatalf("set features: %v", err)
	}
	fs, epoch, err := s.BeginPricing()
	if err != nil {
		t.Fatalf("begin pricing: %v", err)
	}
	if fs != validFeatures() {
		t.Fatalf("unexpected feature set: %+v", fs)
	}
	if err := s.CompletePricing(epoch, entities.PricingRecommendation{MinPrice: 4000, MaxPrice: 6000, Confidence: 0.8}); err != nil {
		t.Fatalf("complete pricing: %v", err)
	}
	if s.Snapshot().Data.Recommendation == nil {
		t.Fatalf("expected recommendation to be stored")
	}

	edited := validFeatures()
	edited.DurationHours = 12
	if err := s.SetFeatures(edited); err != nil {
		t.Fatalf("set features: %v", err)
	}
	if s.Snapshot().Data.Recommendation != nil {
		t.Fatalf("recommendation must be cleared after a feature edit")
	}
}

func TestSession_UnchangedFeatureSetKeepsRecommendation(t *testing.T) {
	s := NewSession("sess-1")
	if err := s.SetFeatures(validFeatures()); err != nil {
		t.Fatalf("set features: %v", err)
	}
	_, epoch, err := s.BeginPricing()
	if err != nil {
		t.Fatalf("begin pricing: %v", err)
	}
	if err := s.CompletePricing(epoch, entities.PricingRecommendation{MinPrice: 1, MaxPrice: 2, Confidence: 0.5}); err != nil {
		t.Fatalf("complete pricing: %v", err)
	}
	if err := s.SetFeatures(validFeatures()); err != nil {
		t.Fatalf("set features: %v", err)
	}
	if s.Snapshot().Data.Recommendation == nil {
		t.Fatalf("re-submitting identical features must not clear the recommendation")
	}
}

func TestSession_StalePricingResultDiscarded(t *testing.T) {
	s := NewSession("sess-1")
	if err := s.SetFeatures(validFeatures()); err != nil {
		t.Fatalf("set features: %v", err)
	}
	_, epoch, err := s.BeginPricing()
	if err != nil {
		t.Fatalf("begin pricing: %v", err)
	}
	// Oracle call fails over; features change before a late result lands.
	s.FailPricing()
	edited := validFeatures()
	edited.Complexity = entities.ComplexityExpert
	if err := s.SetFeatures(edited); err != nil {
		t.Fatalf("set features: %v", err)
	}
	if err := s.CompletePricing(epoch, entities.PricingRecommendation{MinPrice: 1, MaxPrice: 2}); !errors.Is(err, ErrStalePricingResult) {
		t.Fatalf("expected ErrStalePricingResult, got %v", err)
	}
	if s.Snapshot().Data.Recommendation != nil {
		t.Fatalf("stale result must not be applied")
	}
}

func TestSession_BeginPricingRequiresCompleteFeatures(t *testing.T) {
	s := NewSession("sess-1")
	if _, _, err := s.BeginPricing(); !errors.Is(err, ErrFeaturesIncomplete) {
		t.Fatalf("expected ErrFeaturesIncomplete, got %v", err)
	}
}

func TestSession_BusyGuards(t *testing.T) {
	s := NewSession("sess-1")
	if err := s.SetFeatures(validFeatures()); err != nil {
		t.Fatalf("set features: %v", err)
	}
	if _, _, err := s.BeginPricing(); err != nil {
		t.Fatalf("begin pricing: %v", err)
	}

	if _, _, err := s.Advance(); !errors.Is(err, ErrEngineBusy) {
		t.Fatalf("expected ErrEngineBusy on advance, got %v", err)
	}
	if err := s.Retreat(); !errors.Is(err, ErrEngineBusy) {
		t.Fatalf("expected ErrEngineBusy on retreat, got %v", err)
	}
	if err := s.SetFeatures(validFeatures()); !errors.Is(err, ErrEngineBusy) {
		t.Fatalf("expected ErrEngineBusy on mutation, got %v", err)
	}
	if !s.Snapshot().Busy {
		t.Fatalf("expected busy flag while pricing is in flight")
	}

	s.FailPricing()
	if s.Snapshot().Busy {
		t.Fatalf("expected busy flag cleared")
	}
}

func TestSession_SubmissionLifecycle(t *testing.T) {
	s := sessionAtStep(t, StepTerms)
	if err := s.SetTerms("Net 30", 30); err != nil {
		t.Fatalf("set terms: %v", err)
	}

	errs, pending, err := s.Advance()
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if len(errs) != 0 {
		t.Fatalf("unexpected validation errors: %v", errs)
	}
	if pending == nil {
		t.Fatalf("expected a pending submission at the last step")
	}

	// A second submit while one is outstanding must be rejected distinctly.
	if _, _, err := s.Advance(); !errors.Is(err, ErrSubmissionInProgress) {
		t.Fatalf("expected ErrSubmissionInProgress, got %v", err)
	}

	// Failure preserves the pre-submission state for a retry.
	s.FailSubmission()
	snap := s.Snapshot()
	if snap.Submitted || snap.Busy {
		t.Fatalf("failed submission must leave the session open: %+v", snap)
	}
	if snap.Step != StepTerms {
		t.Fatalf("expected terms step after failure, got %d", snap.Step)
	}
	if snap.Data.Client.Name != "Acme" || len(snap.Data.Items) != 1 {
		t.Fatalf("collected data must survive a failed submission")
	}

	// Retry succeeds.
	_, pending, err = s.Advance()
	if err != nil || pending == nil {
		t.Fatalf("expected retry to reach submission, err=%v", err)
	}
	s.CompleteSubmission("quote-1")
	snap = s.Snapshot()
	if !snap.Submitted || snap.QuoteID != "quote-1" {
		t.Fatalf("expected submitted state, got %+v", snap)
	}

	// The terminal state refuses everything.
	if err := s.SetClient(entities.ClientInfo{Name: "Other"}); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed, got %v", err)
	}
	if _, _, err := s.Advance(); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed, got %v", err)
	}
	if err := s.Retreat(); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed, got %v", err)
	}
}

func TestSession_CloseDiscardsInFlightPricing(t *testing.T) {
	s := NewSession("sess-1")
	if err := s.SetFeatures(validFeatures()); err != nil {
		t.Fatalf("set features: %v", err)
	}
	_, epoch, err := s.BeginPricing()
	if err != nil {
		t.Fatalf("begin pricing: %v", err)
	}
	s.Close()
	if err := s.CompletePricing(epoch, entities.PricingRecommendation{MinPrice: 1, MaxPrice: 2}); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed, got %v", err)
	}
}

func TestSession_CloseDiscardsInFlightSubmission(t *testing.T) {
	s := sessionAtStep(t, StepTerms)
	if err := s.SetTerms("Net 30", 30); err != nil {
		t.Fatalf("set terms: %v", err)
	}
	_, pending, err := s.Advance()
	if err != nil || pending == nil {
		t.Fatalf("expected a pending submission, err=%v", err)
	}

	// Abandoned mid-flight: the late result must not resurrect the session.
	s.Close()
	s.CompleteSubmission("quote-1")

	snap := s.Snapshot()
	if snap.Submitted || snap.QuoteID != "" {
		t.Fatalf("closed session must drop the submission result, got %+v", snap)
	}
	if snap.Busy {
		t.Fatalf("in-flight marker must clear on completion")
	}
}

func TestSession_SnapshotIsIndependentCopy(t *testing.T) {
	s := sessionAtStep(t, StepItems)
	snap := s.Snapshot()
	snap.Data.Items[0] = entities.LineItem{Description: "tampered", Quantity: 1, UnitPrice: 1, Total: 1}
	if got := s.Snapshot().Data.Items[0].Description; got == "tampered" {
		t.Fatalf("snapshot mutation leaked into the session")
	}
}
