package interfaces

import (
	"context"
	"quoteforge/internal/domain/wizard"
)

// IWizardSessionRepository stores live wizard sessions. Sessions are
// in-process interaction state, not durable records; implementations return
// nil (not an error) when a session id is unknown.
type IWizardSessionRepository interface {
	Put(ctx context.Context, s *wizard.Session) error
	Get(ctx context.Context, id string) (*wizard.Session, error)
	Delete(ctx context.Context, id string) (*wizard.Session, error)
}
