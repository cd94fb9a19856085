package wizard

import (
	"errors"
	"sync"

	"quoteforge/internal/domain/entities"
)

var (
	ErrSessionClosed        = errors.New("session closed")
	ErrEngineBusy           = errors.New("engine busy")
	ErrSubmissionInProgress = errors.New("submission in progress")
	ErrAtFirstStep          = errors.New("at first step")
	ErrLastLineItem         = errors.New("cannot remove the last line item")
	ErrLineItemOutOfRange   = errors.New("line item index out of range")
	ErrFeaturesIncomplete   = errors.New("feature set incomplete")
	ErrStalePricingResult   = errors.New("stale pricing result")
)

type activity int

const (
	activityIdle activity = iota
	activityPricing
	activitySubmitting
)

// Session is the wizard state machine for one quoting flow.
//
// States are the ordered steps plus a terminal submitted state. Forward
// navigation is gated on the current step's validator; retreating never
// re-validates. A single in-flight external call (pricing or submission) is
// allowed at a time; navigation and mutation attempts made while one is
// outstanding are rejected rather than interleaved.
//
// All methods are safe for concurrent use, but the session models one logical
// user interaction stream; the mutex exists to keep the busy guard and the
// epoch bookkeeping coherent, not to support parallel drivers.

type Session struct {
	mu sync.Mutex

	id        string
	current   Step
	submitted bool
	closed    bool
	quoteID   string
	activity  activity

	// epoch increments whenever the feature set changes or the session is
	// abandoned, so a pricing result computed from stale features is never
	// applied.
	epoch uint64

	data       Data
	lastErrors []FieldError
}

// Snapshot is an immutable view of a session, safe to hand to callers.
type Snapshot struct {
	ID         string
	Step       Step
	StepCount  int
	Submitted  bool
	Busy       bool
	QuoteID    string
	Data       Data
	GrandTotal float64
	LastErrors []FieldError
}

func NewSession(id string) *Session {
	return &Session{
		id: id,
		data: Data{
			// A session always owns at least one line item.
			Items: []entities.LineItem{{}},
		},
	}
}

func (s *Session) ID() string { return s.id }

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		ID:         s.id,
		Step:       s.current,
		StepCount:  StepCount(),
		Submitted:  s.submitted,
		Busy:       s.activity != activityIdle,
		QuoteID:    s.quoteID,
		Data:       cloneData(s.data),
		GrandTotal: entities.GrandTotal(s.data.Items),
		LastErrors: append([]FieldError(nil), s.lastErrors...),
	}
}

// guardMutationLocked rejects edits after submission or while an external
// call is outstanding.
func (s *Session) guardMutationLocked() error {
	if s.submitted || s.closed {
		return ErrSessionClosed
	}
	switch s.activity {
	case activitySubmitting:
		return ErrSubmissionInProgress
	case activityPricing:
		return ErrEngineBusy
	}
	return nil
}

// SetFeatures replaces the feature set. Any stored recommendation becomes
// stale the moment a field changes and is cleared; the epoch bump discards
// pricing results still in flight for the previous features.
func (s *Session) SetFeatures(f entities.FeatureSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guardMutationLocked(); err != nil {
		return err
	}
	if f != s.data.Features {
		s.data.Recommendation = nil
		s.epoch++
	}
	s.data.Features = f
	return nil
}

func (s *Session) SetClient(c entities.ClientInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guardMutationLocked(); err != nil {
		return err
	}
	s.data.Client = c
	return nil
}

func (s *Session) SetTerms(terms string, validityDays int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guardMutationLocked(); err != nil {
		return err
	}
	s.data.Terms = terms
	s.data.ValidityDays = validityDays
	return nil
}

func (s *Session) AddItem(it entities.LineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guardMutationLocked(); err != nil {
		return err
	}
	it.RecomputeTotal()
	s.data.Items = append(s.data.Items, it)
	return nil
}

func (s *Session) UpdateItem(index int, it entities.LineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guardMutationLocked(); err != nil {
		return err
	}
	if index < 0 || index >= len(s.data.Items) {
		return ErrLineItemOutOfRange
	}
	it.RecomputeTotal()
	s.data.Items[index] = it
	return nil
}

func (s *Session) RemoveItem(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guardMutationLocked(); err != nil {
		return err
	}
	if index < 0 || index >= len(s.data.Items) {
		return ErrLineItemOutOfRange
	}
	if len(s.data.Items) == 1 {
		return ErrLastLineItem
	}
	s.data.Items = append(s.data.Items[:index], s.data.Items[index+1:]...)
	return nil
}

// Advance validates the current step. With validation errors it stays put and
// returns them. Otherwise it moves one step forward, except at the last step
// where it marks a submission in flight and hands back an independent copy of
// the collected data for assembly; the caller completes or fails the
// submission afterwards.
func (s *Session) Advance() ([]FieldError, *Data, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guardMutationLocked(); err != nil {
		return nil, nil, err
	}

	errs, err := Validate(s.current, &s.data)
	if err != nil {
		return nil, nil, err
	}
	if len(errs) > 0 {
		s.lastErrors = errs
		return append([]FieldError(nil), errs...), nil, nil
	}

	s.lastErrors = nil
	if s.current < StepTerms {
		s.current++
		return nil, nil, nil
	}

	s.activity = activitySubmitting
	pending := cloneData(s.data)
	return nil, &pending, nil
}

// Retreat moves one step back without re-validating the step being left.
func (s *Session) Retreat() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guardMutationLocked(); err != nil {
		return err
	}
	if s.current == StepFeatures {
		return ErrAtFirstStep
	}
	s.current--
	s.lastErrors = nil
	return nil
}

// BeginPricing marks a pricing call in flight and returns the feature set to
// price plus the epoch the result must match on completion. The feature set
// must validate first; pricing garbage is not a recoverable oracle problem.
func (s *Session) BeginPricing() (entities.FeatureSet, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guardMutationLocked(); err != nil {
		return entities.FeatureSet{}, 0, err
	}
	errs, err := Validate(StepFeatures, &s.data)
	if err != nil {
		return entities.FeatureSet{}, 0, err
	}
	if len(errs) > 0 {
		return entities.FeatureSet{}, 0, ErrFeaturesIncomplete
	}
	s.activity = activityPricing
	return s.data.Features, s.epoch, nil
}

// CompletePricing stores the recommendation if the session is still live and
// the features are unchanged since BeginPricing. A stale or abandoned result
// is discarded.
func (s *Session) CompletePricing(epoch uint64, rec entities.PricingRecommendation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activity == activityPricing {
		s.activity = activityIdle
	}
	if s.closed || s.submitted {
		return ErrSessionClosed
	}
	if epoch != s.epoch {
		return ErrStalePricingResult
	}
	r := rec
	s.data.Recommendation = &r
	return nil
}

// FailPricing clears the in-flight marker; the session keeps whatever
// recommendation state it had.
func (s *Session) FailPricing() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activity == activityPricing {
		s.activity = activityIdle
	}
}

// CompleteSubmission transitions to the terminal submitted state. A result
// landing after the session was abandoned is discarded, like a stale pricing
// result.
func (s *Session) CompleteSubmission(quoteID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activity == activitySubmitting {
		s.activity = activityIdle
	}
	if s.closed {
		return
	}
	s.submitted = true
	s.quoteID = quoteID
}

// FailSubmission returns the session to its pre-submission state with all
// collected data intact, so the caller can retry without re-entering anything.
func (s *Session) FailSubmission() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activity == activitySubmitting {
		s.activity = activityIdle
	}
}

// Close tears the session down. Results of calls still in flight are
// discarded when they complete.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.epoch++
}

func cloneData(d Data) Data {
	out := d
	out.Items = append([]entities.LineItem(nil), d.Items...)
	if d.Recommendation != nil {
		r := *d.Recommendation
		out.Recommendation = &r
	}
	return out
}
