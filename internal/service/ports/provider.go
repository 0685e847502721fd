package ports

import (
	"context"

	"github.com/yseddiki/ohIPlay/internal/domain"
)

// CheckoutProvider is the external payment gateway. Both calls are network
// round trips and must respect the context deadline.
type CheckoutProvider interface {
	CreateSession(ctx context.Context, input domain.CreateSessionInput) (*domain.CheckoutSession, error)
	CheckSession(ctx context.Context, sessionID string) (*domain.SessionStatus, error)
}
