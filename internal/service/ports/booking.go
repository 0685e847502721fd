package ports

import (
	"context"
	"time"

	"github.com/yseddiki/ohIPlay/internal/domain"
)

// BookingRepo owns persisted booking state. The Mark*/Attach/Override methods
// are guarded writes: each one is a single atomic UPDATE conditioned on the
// expected current state, so concurrent callers can never both succeed
// against a stale read. A false return means the guard did not match and
// nothing was written.
type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetBySessionID(ctx context.Context, sessionID string) (*domain.Booking, error)

	AttachSession(ctx context.Context, bookingID, sessionID string) error
	MarkPaid(ctx context.Context, bookingID, providerPaymentID string) (bool, error)
	MarkExpired(ctx context.Context, bookingID string) (bool, error)
	OverrideStatus(ctx context.Context, bookingID string, newStatus domain.BookingStatus) (bool, error)

	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	ListStaleSessions(ctx context.Context, cutoff time.Time) ([]*domain.Booking, error)
}
