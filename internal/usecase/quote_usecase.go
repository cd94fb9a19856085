package usecase

import (
	"context"
	"errors"
	"strings"

	"quoteforge/internal/domain/entities"
	"quoteforge/internal/usecase/interfaces"
)

var (
	ErrQuoteNotFound     = errors.New("quote not found")
	ErrInvalidQuoteID    = errors.New("invalid quote id")
	ErrInvalidClientName = errors.New("invalid client name")
)

// IQuoteUseCase exposes the read side of persisted quotes.

type IQuoteUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByClientName(ctx context.Context, clientName string) ([]entities.Quote, error)
}

type QuoteUseCase struct {
	repo interfaces.IQuoteRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo}
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) ListByClientName(ctx context.Context, clientName string) ([]entities.Quote, error) {
	clientName = strings.TrimSpace(clientName)
	if clientName == "" {
		return nil, ErrInvalidClientName
	}
	return u.repo.ListByClientName(ctx, clientName)
}
