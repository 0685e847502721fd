package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
	"github.com/yseddiki/ohIPlay/internal/domain"
)

type sessionReconciler interface {
	ReconcileStaleSessions(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler periodically reconciles bookings whose checkout session outcome
// never arrived as a webhook. It only relays what the gateway reports; it
// never expires a booking on its own clock.
type Scheduler struct {
	reconciler sessionReconciler
	interval   time.Duration
	logger     logger.Logger
}

func New(
	reconciler sessionReconciler,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reconciler: reconciler,
		interval:   interval,
		logger:     logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("reconciler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("reconciler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	reconciled, err := s.reconciler.ReconcileStaleSessions(ctx)
	if err != nil {
		s.logger.Error("failed to reconcile stale sessions",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range reconciled {
		s.logger.Info("booking reconciled",
			logger.String("booking_id", b.ID),
			logger.String("status", string(b.Status)),
			logger.String("payment_status", string(b.PaymentStatus)),
		)
	}
}
