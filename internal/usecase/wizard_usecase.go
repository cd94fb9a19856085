package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"quoteforge/internal/domain/entities"
	"quoteforge/internal/domain/wizard"
	"quoteforge/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidSessionID         = errors.New("invalid session id")
	ErrSessionNotFound          = errors.New("wizard session not found")
	ErrPricingUnavailable       = errors.New("pricing unavailable")
	ErrSubmissionRejected       = errors.New("submission rejected")
	ErrSubmissionUnauthorized   = errors.New("submission unauthorized")
	ErrSubmissionNetworkFailure = errors.New("submission network failure")
)

const defaultPricingTimeout = 30 * time.Second

// AdvanceResult reports the outcome of a forward navigation attempt. With a
// non-empty ValidationErrors the session stayed on its step; otherwise the
// snapshot reflects the new position, including the terminal submitted state
// with its persisted quote id.
type AdvanceResult struct {
	Session          wizard.Snapshot
	ValidationErrors []wizard.FieldError
}

// IWizardUseCase exposes the wizard engine operations.
//
// One session per quoting flow:
//   - start/read/abandon session lifecycle
//   - per-step data mutation (features, client, items, terms)
//   - navigation (advance validates; the final advance submits)
//   - explicit pricing oracle invocation at the pricing step

type IWizardUseCase interface {
	StartSession(ctx context.Context) (wizard.Snapshot, error)
	GetSession(ctx context.Context, sessionID string) (wizard.Snapshot, error)
	AbandonSession(ctx context.Context, sessionID string) error

	SetFeatures(ctx context.Context, sessionID string, f entities.FeatureSet) (wizard.Snapshot, error)
	SetClient(ctx context.Context, sessionID string, c entities.ClientInfo) (wizard.Snapshot, error)
	SetTerms(ctx context.Context, sessionID string, terms string, validityDays int) (wizard.Snapshot, error)
	AddItem(ctx context.Context, sessionID string, it entities.LineItem) (wizard.Snapshot, error)
	UpdateItem(ctx context.Context, sessionID string, index int, it entities.LineItem) (wizard.Snapshot, error)
	RemoveItem(ctx context.Context, sessionID string, index int) (wizard.Snapshot, error)

	RequestPricing(ctx context.Context, sessionID string) (wizard.Snapshot, error)
	Advance(ctx context.Context, sessionID string) (AdvanceResult, error)
	Retreat(ctx context.Context, sessionID string) (wizard.Snapshot, error)
}

type WizardUseCase struct {
	sessions       interfaces.IWizardSessionRepository
	quotes         interfaces.IQuoteRepository
	oracle         interfaces.IPricingOracle
	pricingTimeout time.Duration
}

var _ IWizardUseCase = (*WizardUseCase)(nil)

func NewWizardUseCase(
	sessions interfaces.IWizardSessionRepository,
	quotes interfaces.IQuoteRepository,
	oracle interfaces.IPricingOracle,
) *WizardUseCase {
	return &WizardUseCase{
		sessions:       sessions,
		quotes:         quotes,
		oracle:         oracle,
		pricingTimeout: pricingTimeoutFromEnv(),
	}
}

func (u *WizardUseCase) StartSession(ctx context.Context) (wizard.Snapshot, error) {
	sess := wizard.NewSession(uuid.NewString())
	if err := u.sessions.Put(ctx, sess); err != nil {
		return wizard.Snapshot{}, err
	}
	log.Printf("[wizard][usecase] session started session_id=%s steps=%d", sess.ID(), wizard.StepCount())
	return sess.Snapshot(), nil
}

func (u *WizardUseCase) GetSession(ctx context.Context, sessionID string) (wizard.Snapshot, error) {
	sess, err := u.loadSession(ctx, sessionID)
	if err != nil {
		return wizard.Snapshot{}, err
	}
	return sess.Snapshot(), nil
}

func (u *WizardUseCase) AbandonSession(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrInvalidSessionID
	}
	sess, err := u.sessions.Delete(ctx, sessionID)
	if err != nil {
		return err
	}
	if sess == nil {
		return ErrSessionNotFound
	}
	sess.Close()
	log.Printf("[wizard][usecase] session abandoned session_id=%s", sessionID)
	return nil
}

func (u *WizardUseCase) SetFeatures(ctx context.Context, sessionID string, f entities.FeatureSet) (wizard.Snapshot, error) {
	return u.mutate(ctx, sessionID, func(sess *wizard.Session) error {
		return sess.SetFeatures(f)
	})
}

func (u *WizardUseCase) SetClient(ctx context.Context, sessionID string, c entities.ClientInfo) (wizard.Snapshot, error) {
	return u.mutate(ctx, sessionID, func(sess *wizard.Session) error {
		return sess.SetClient(c)
	})
}

func (u *WizardUseCase) SetTerms(ctx context.Context, sessionID string, terms string, validityDays int) (wizard.Snapshot, error) {
	return u.mutate(ctx, sessionID, func(sess *wizard.Session) error {
		return sess.SetTerms(terms, validityDays)
	})
}

func (u *WizardUseCase) AddItem(ctx context.Context, sessionID string, it entities.LineItem) (wizard.Snapshot, error) {
	return u.mutate(ctx, sessionID, func(sess *wizard.Session) error {
		return sess.AddItem(it)
	})
}

func (u *WizardUseCase) UpdateItem(ctx context.Context, sessionID string, index int, it entities.LineItem) (wizard.Snapshot, error) {
	return u.mutate(ctx, sessionID, func(sess *wizard.Session) error {
		return sess.UpdateItem(index, it)
	})
}

func (u *WizardUseCase) RemoveItem(ctx context.Context, sessionID string, index int) (wizard.Snapshot, error) {
	return u.mutate(ctx, sessionID, func(sess *wizard.Session) error {
		return sess.RemoveItem(index)
	})
}

// RequestPricing invokes the oracle for the session's current feature set.
// Timeouts are retried once; any other failure, including a service started
// without a configured oracle, is surfaced as ErrPricingUnavailable with its
// cause. The session itself is untouched on failure, so the wizard can
// proceed with manually priced line items.
func (u *WizardUseCase) RequestPricing(ctx context.Context, sessionID string) (wizard.Snapshot, error) {
	sess, err := u.loadSession(ctx, sessionID)
	if err != nil {
		return wizard.Snapshot{}, err
	}
	if u.oracle == nil {
		log.Printf("[wizard][usecase] pricing skipped session_id=%s: oracle not configured", sessionID)
		return sess.Snapshot(), fmt.Errorf("%w: oracle not configured", ErrPricingUnavailable)
	}

	features, epoch, err := sess.BeginPricing()
	if err != nil {
		return wizard.Snapshot{}, err
	}
	// Clear the in-flight marker on every exit that did not hand the result
	// to the session, a panicking oracle included; a stuck marker would
	// answer ErrEngineBusy to the session forever.
	completed := false
	defer func() {
		if !completed {
			sess.FailPricing()
		}
	}()
	log.Printf("[wizard][usecase] pricing start session_id=%s industry=%s complexity=%s hours=%.1f",
		sessionID, features.Industry, features.Complexity, features.DurationHours)

	rec, err := u.callOracle(ctx, features)
	if err != nil {
		completed = true
		sess.FailPricing()
		log.Printf("[wizard][usecase] pricing failed session_id=%s err=%v", sessionID, err)
		return sess.Snapshot(), fmt.Errorf("%w: %v", ErrPricingUnavailable, err)
	}
	if rec.MinPrice < 0 || rec.MaxPrice < rec.MinPrice || rec.Confidence < 0 || rec.Confidence > 1 {
		completed = true
		sess.FailPricing()
		log.Printf("[wizard][usecase] pricing discarded session_id=%s min=%.2f max=%.2f confidence=%.2f",
			sessionID, rec.MinPrice, rec.MaxPrice, rec.Confidence)
		return sess.Snapshot(), fmt.Errorf("%w: oracle returned an invalid recommendation", ErrPricingUnavailable)
	}

	err = sess.CompletePricing(epoch, rec)
	completed = true
	if err != nil {
		if errors.Is(err, wizard.ErrStalePricingResult) {
			log.Printf("[wizard][usecase] stale pricing result discarded session_id=%s", sessionID)
			return sess.Snapshot(), nil
		}
		return wizard.Snapshot{}, err
	}
	log.Printf("[wizard][usecase] pricing success session_id=%s min=%.2f max=%.2f confidence=%.2f",
		sessionID, rec.MinPrice, rec.MaxPrice, rec.Confidence)
	return sess.Snapshot(), nil
}

// Advance validates the current step and moves forward. On the last step a
// clean validation submits the assembled quote; a submission failure leaves
// the session exactly where it was so the user can retry.
func (u *WizardUseCase) Advance(ctx context.Context, sessionID string) (AdvanceResult, error) {
	sess, err := u.loadSession(ctx, sessionID)
	if err != nil {
		return AdvanceResult{}, err
	}

	fieldErrs, pending, err := sess.Advance()
	if err != nil {
		return AdvanceResult{}, err
	}
	if len(fieldErrs) > 0 {
		return AdvanceResult{Session: sess.Snapshot(), ValidationErrors: fieldErrs}, nil
	}
	if pending == nil {
		return AdvanceResult{Session: sess.Snapshot()}, nil
	}

	quote, err := wizard.Assemble(*pending, uuid.NewString(), time.Now())
	if err != nil {
		sess.FailSubmission()
		return AdvanceResult{}, err
	}

	log.Printf("[wizard][usecase] submission start session_id=%s quote_id=%s grand_total=%.2f",
		sessionID, quote.ID, quote.GrandTotal)
	created, err := u.quotes.Create(ctx, quote)
	if err != nil {
		sess.FailSubmission()
		classified := classifySubmissionError(err)
		log.Printf("[wizard][usecase] submission failed session_id=%s err=%v", sessionID, err)
		return AdvanceResult{}, classified
	}

	sess.CompleteSubmission(created.ID)
	log.Printf("[wizard][usecase] submission success session_id=%s quote_id=%s", sessionID, created.ID)
	return AdvanceResult{Session: sess.Snapshot()}, nil
}

func (u *WizardUseCase) Retreat(ctx context.Context, sessionID string) (wizard.Snapshot, error) {
	return u.mutate(ctx, sessionID, func(sess *wizard.Session) error {
		return sess.Retreat()
	})
}

func (u *WizardUseCase) mutate(ctx context.Context, sessionID string, fn func(*wizard.Session) error) (wizard.Snapshot, error) {
	sess, err := u.loadSession(ctx, sessionID)
	if err != nil {
		return wizard.Snapshot{}, err
	}
	if err := fn(sess); err != nil {
		return wizard.Snapshot{}, err
	}
	return sess.Snapshot(), nil
}

func (u *WizardUseCase) loadSession(ctx context.Context, sessionID string) (*wizard.Session, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}
	sess, err := u.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (u *WizardUseCase) callOracle(ctx context.Context, features entities.FeatureSet) (entities.PricingRecommendation, error) {
	cctx, cancel := context.WithTimeout(ctx, u.pricingTimeout)
	rec, err := u.oracle.RequestPricing(cctx, features)
	cancel()
	if err == nil {
		return rec, nil
	}
	if !isTimeout(err) {
		return entities.PricingRecommendation{}, err
	}

	// Oracle contract allows one automatic retry on timeout.
	log.Printf("[wizard][usecase] pricing timed out, retrying once err=%v", err)
	cctx, cancel = context.WithTimeout(ctx, u.pricingTimeout)
	defer cancel()
	return u.oracle.RequestPricing(cctx, features)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "timeout")
}

// classifySubmissionError maps persistence failures onto the three submission
// outcomes the engine reports. Anything unrecognized counts as a network
// failure: it is the retryable bucket and the session state is preserved
// either way.
func classifySubmissionError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "conditionalcheckfailed") || strings.Contains(msg, "validationexception"):
		return fmt.Errorf("%w: %v", ErrSubmissionRejected, err)
	case strings.Contains(msg, "unrecognizedclient") || strings.Contains(msg, "accessdenied") ||
		strings.Contains(msg, "invalidsignature") || strings.Contains(msg, "not authorized"):
		return fmt.Errorf("%w: %v", ErrSubmissionUnauthorized, err)
	default:
		return fmt.Errorf("%w: %v", ErrSubmissionNetworkFailure, err)
	}
}

func pricingTimeoutFromEnv() time.Duration {
	v := strings.TrimSpace(os.Getenv("PRICING_TIMEOUT_SECONDS"))
	if v == "" {
		return defaultPricingTimeout
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		log.Printf("[wizard][usecase] invalid PRICING_TIMEOUT_SECONDS=%q, using default", v)
		return defaultPricingTimeout
	}
	return time.Duration(secs) * time.Second
}
