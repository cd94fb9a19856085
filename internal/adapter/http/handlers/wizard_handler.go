package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "quoteforge/internal/adapter/http/dto/request"
	response "quoteforge/internal/adapter/http/dto/response"
	"quoteforge/internal/domain/wizard"
	"quoteforge/internal/usecase"
	"quoteforge/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidWizardPayload = pkg.NewDomainErrorSimple("INVALID_WIZARD_INPUT", "Invalid wizard payload", http.StatusBadRequest)
	errInvalidItemIndex     = pkg.NewDomainErrorSimple("INVALID_ITEM_INDEX", "Invalid line item index", http.StatusBadRequest)
)

// WizardHandler drives one wizard session per request stream: start/read/
// abandon, per-step data writes, navigation and the pricing oracle call.

type WizardHandler struct {
	usecase usecase.IWizardUseCase
}

func NewWizardHandler(uc usecase.IWizardUseCase) *WizardHandler {
	return &WizardHandler{usecase: uc}
}

func (h *WizardHandler) StartSession(c *gin.Context) {
	snap, err := h.usecase.StartSession(c.Request.Context())
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromSnapshot(snap))
}

func (h *WizardHandler) GetSession(c *gin.Context) {
	snap, err := h.usecase.GetSession(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

func (h *WizardHandler) AbandonSession(c *gin.Context) {
	if err := h.usecase.AbandonSession(c.Request.Context(), c.Param("session_id")); err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WizardHandler) SetFeatures(c *gin.Context) {
	var payload request.FeatureSetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}
	h.respondSnapshot(c, func() (wizard.Snapshot, error) {
		return h.usecase.SetFeatures(c.Request.Context(), c.Param("session_id"), payload.ToEntity())
	})
}

func (h *WizardHandler) SetClient(c *gin.Context) {
	var payload request.ClientInfoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}
	h.respondSnapshot(c, func() (wizard.Snapshot, error) {
		return h.usecase.SetClient(c.Request.Context(), c.Param("session_id"), payload.ToEntity())
	})
}

func (h *WizardHandler) SetTerms(c *gin.Context) {
	var payload request.TermsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}
	h.respondSnapshot(c, func() (wizard.Snapshot, error) {
		return h.usecase.SetTerms(c.Request.Context(), c.Param("session_id"), payload.Terms, payload.ValidityDays)
	})
}

func (h *WizardHandler) AddItem(c *gin.Context) {
	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}
	h.respondSnapshot(c, func() (wizard.Snapshot, error) {
		return h.usecase.AddItem(c.Request.Context(), c.Param("session_id"), payload.ToEntity())
	})
}

func (h *WizardHandler) UpdateItem(c *gin.Context) {
	index, ok := itemIndex(c)
	if !ok {
		return
	}
	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}
	h.respondSnapshot(c, func() (wizard.Snapshot, error) {
		return h.usecase.UpdateItem(c.Request.Context(), c.Param("session_id"), index, payload.ToEntity())
	})
}

func (h *WizardHandler) RemoveItem(c *gin.Context) {
	index, ok := itemIndex(c)
	if !ok {
		return
	}
	h.respondSnapshot(c, func() (wizard.Snapshot, error) {
		return h.usecase.RemoveItem(c.Request.Context(), c.Param("session_id"), index)
	})
}

func (h *WizardHandler) RequestPricing(c *gin.Context) {
	h.respondSnapshot(c, func() (wizard.Snapshot, error) {
		return h.usecase.RequestPricing(c.Request.Context(), c.Param("session_id"))
	})
}

// Advance validates and moves forward; the final advance submits the quote.
// A validation refusal is reported as 422 with the field errors and the
// unchanged step, not as an opaque failure.
func (h *WizardHandler) Advance(c *gin.Context) {
	result, err := h.usecase.Advance(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if len(result.ValidationErrors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, response.FromAdvanceOutcome(result.Session, result.ValidationErrors))
		return
	}
	c.JSON(http.StatusOK, response.FromAdvanceOutcome(result.Session, nil))
}

func (h *WizardHandler) Retreat(c *gin.Context) {
	h.respondSnapshot(c, func() (wizard.Snapshot, error) {
		return h.usecase.Retreat(c.Request.Context(), c.Param("session_id"))
	})
}

func (h *WizardHandler) respondSnapshot(c *gin.Context, op func() (wizard.Snapshot, error)) {
	snap, err := op()
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSnapshot(snap))
}

func itemIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		c.JSON(errInvalidItemIndex.HTTPStatus, errInvalidItemIndex.ToHTTPError())
		return 0, false
	}
	return index, true
}

func mapWizardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_SESSION_ID", "Invalid session id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Wizard session not found", http.StatusNotFound)
	case errors.Is(err, wizard.ErrSessionClosed):
		return pkg.NewDomainErrorSimple("SESSION_CLOSED", "Session already submitted or abandoned", http.StatusConflict)
	case errors.Is(err, wizard.ErrSubmissionInProgress):
		return pkg.NewDomainErrorSimple("SUBMISSION_IN_PROGRESS", "A submission is already in flight", http.StatusConflict)
	case errors.Is(err, wizard.ErrEngineBusy):
		return pkg.NewDomainErrorSimple("ENGINE_BUSY", "An external call is in flight", http.StatusConflict)
	case errors.Is(err, wizard.ErrAtFirstStep):
		return pkg.NewDomainErrorSimple("AT_FIRST_STEP", "Already at the first step", http.StatusConflict)
	case errors.Is(err, wizard.ErrLastLineItem):
		return pkg.NewDomainErrorSimple("LAST_LINE_ITEM", "A quote must keep at least one line item", http.StatusConflict)
	case errors.Is(err, wizard.ErrLineItemOutOfRange):
		return pkg.NewDomainErrorSimple("INVALID_ITEM_INDEX", "Invalid line item index", http.StatusBadRequest)
	case errors.Is(err, wizard.ErrFeaturesIncomplete):
		return pkg.NewDomainErrorSimple("FEATURES_INCOMPLETE", "Feature set must be complete before pricing", http.StatusUnprocessableEntity)
	case errors.Is(err, wizard.ErrInvalidStepIndex):
		return pkg.NewDomainErrorSimple("INVALID_STEP_INDEX", "Invalid step index", http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrPricingUnavailable):
		return pkg.NewDomainError("PRICING_UNAVAILABLE", "Pricing is temporarily unavailable", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrSubmissionRejected):
		return pkg.NewDomainError("SUBMISSION_REJECTED", "Quote was rejected by persistence", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrSubmissionUnauthorized):
		return pkg.NewDomainError("SUBMISSION_UNAUTHORIZED", "Not authorized to persist quotes", err, http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrSubmissionNetworkFailure):
		return pkg.NewDomainError("SUBMISSION_NETWORK_FAILURE", "Could not reach quote storage", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
