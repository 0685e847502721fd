package ports

import (
	"context"

	"github.com/yseddiki/ohIPlay/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingConfirmed(ctx context.Context, b *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, b *domain.Booking)
}
