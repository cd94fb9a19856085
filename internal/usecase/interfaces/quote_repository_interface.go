package interfaces

import (
	"context"
	"quoteforge/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for submitted quotes.
//
// The wizard engine must be able to:
//   - persist the assembled quote exactly once at submission
//   - read a quote back by id
//   - list quotes for a client (dashboard view)

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByClientName(ctx context.Context, clientName string) ([]entities.Quote, error)
}
