package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"quoteforge/internal/adapter/http/handlers/mocks"
	"quoteforge/internal/domain/entities"
	"quoteforge/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newQuoteRouter(h *QuoteHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/quotes/:id", h.GetQuote)
	r.GET("/quotes", h.ListQuotes)
	return r
}

func submittedQuote() entities.Quote {
	return entities.Quote{
		ID:     "q-1",
		Client: entities.ClientInfo{Name: "Acme Ltd"},
		Items: []entities.LineItem{
			{Description: "Landing page", Quantity: 8, UnitPrice: 625, Total: 5000},
		},
		GrandTotal: 5000,
		Status:     entities.QuoteStatusSubmitted,
		CreatedAt:  time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestQuoteHandler_GetQuote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	r := newQuoteRouter(NewQuoteHandler(uc))

	t.Run("found", func(t *testing.T) {
		uc.EXPECT().GetByID(gomock.Any(), "q-1").Return(submittedQuote(), nil)

		w := performJSON(t, r, http.MethodGet, "/quotes/q-1", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var body struct {
			ID         string  `json:"id"`
			GrandTotal float64 `json:"grand_total"`
			Status     string  `json:"status"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if body.ID != "q-1" || body.GrandTotal != 5000 || body.Status != "submitted" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		w := performJSON(t, r, http.MethodGet, "/quotes/missing", nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		uc.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, errors.New("dynamo down"))

		w := performJSON(t, r, http.MethodGet, "/quotes/q-1", nil)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_ListQuotes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	r := newQuoteRouter(NewQuoteHandler(uc))

	t.Run("by client", func(t *testing.T) {
		uc.EXPECT().ListByClientName(gomock.Any(), "Acme Ltd").Return([]entities.Quote{submittedQuote()}, nil)

		w := performJSON(t, r, http.MethodGet, "/quotes?client=Acme+Ltd", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body []struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if len(body) != 1 || body[0].ID != "q-1" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("missing filter", func(t *testing.T) {
		uc.EXPECT().ListByClientName(gomock.Any(), "").Return(nil, usecase.ErrInvalidClientName)

		w := performJSON(t, r, http.MethodGet, "/quotes", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
