package intake

import (
	"context"

	"github.com/google/uuid"
)

// SessionRepository stores running questionnaire sessions. The service is the
// only writer; there is no persistence requirement, so the shipped
// implementation is in-memory and sessions vanish at process exit.
type SessionRepository interface {
	Create(ctx context.Context, s *Session) error
	GetByID(ctx context.Context, id uuid.UUID) (*Session, error)
	Update(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Session, int, error)
}
