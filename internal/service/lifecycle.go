package service

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/logger"
	"github.com/yseddiki/ohIPlay/internal/domain"
	"github.com/yseddiki/ohIPlay/internal/metrics"
	"github.com/yseddiki/ohIPlay/internal/service/ports"
)

// LifecycleService is the single authority over booking status transitions.
// Every caller - checkout, webhook, reconciler, operator - funnels through
// Apply, so the transition table lives in exactly one place. Persistence is
// delegated to the repo's guarded writes, which serialize concurrent
// transitions per booking.
type LifecycleService struct {
	repo     ports.BookingRepo
	notifier ports.BookingNotifier
	logger   logger.Logger
}

func NewLifecycleService(repo ports.BookingRepo, notifier ports.BookingNotifier, logger logger.Logger) *LifecycleService {
	return &LifecycleService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

// Apply runs one transition event against a booking and returns the booking
// as stored afterwards. The applied flag is false when the event was absorbed
// as an already-handled or late delivery; absorption is not an error.
func (s *LifecycleService) Apply(ctx context.Context, bookingID string, event domain.TransitionEvent) (*domain.Booking, bool, error) {
	switch e := event.(type) {
	case domain.SessionOpened:
		return s.applySessionOpened(ctx, bookingID, e)
	case domain.PaymentCompleted:
		return s.applyPaymentCompleted(ctx, bookingID, e)
	case domain.SessionExpired:
		return s.applySessionExpired(ctx, bookingID)
	case domain.OperatorOverride:
		return s.applyOverride(ctx, bookingID, e)
	default:
		return nil, false, fmt.Errorf("%w: unsupported event %T", domain.ErrIllegalTransition, event)
	}
}

func (s *LifecycleService) applySessionOpened(ctx context.Context, bookingID string, e domain.SessionOpened) (*domain.Booking, bool, error) {
	if err := s.repo.AttachSession(ctx, bookingID, e.SessionID); err != nil {
		metrics.Transitions.WithLabelValues("session_opened", metrics.OutcomeRejected).Inc()
		return nil, false, err
	}

	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, false, err
	}

	metrics.Transitions.WithLabelValues("session_opened", metrics.OutcomeApplied).Inc()
	s.logger.Info("checkout session attached",
		logger.String("booking_id", bookingID),
		logger.String("session_id", e.SessionID),
	)

	return b, true, nil
}

func (s *LifecycleService) applyPaymentCompleted(ctx context.Context, bookingID string, e domain.PaymentCompleted) (*domain.Booking, bool, error) {
	applied, err := s.repo.MarkPaid(ctx, bookingID, e.ProviderPaymentID)
	if err != nil {
		return nil, false, err
	}

	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, false, err
	}

	if !applied {
		metrics.Transitions.WithLabelValues("payment_completed", metrics.OutcomeAbsorbed).Inc()
		s.logger.Debug("payment completed absorbed",
			logger.String("booking_id", bookingID),
			logger.String("status", string(b.Status)),
			logger.String("payment_status", string(b.PaymentStatus)),
		)
		return b, false, nil
	}

	metrics.Transitions.WithLabelValues("payment_completed", metrics.OutcomeApplied).Inc()
	s.logger.Info("booking paid",
		logger.String("booking_id", bookingID),
		logger.String("provider_payment_id", e.ProviderPaymentID),
	)

	go s.notifier.NotifyBookingConfirmed(context.WithoutCancel(ctx), b)

	return b, true, nil
}

func (s *LifecycleService) applySessionExpired(ctx context.Context, bookingID string) (*domain.Booking, bool, error) {
	applied, err := s.repo.MarkExpired(ctx, bookingID)
	if err != nil {
		return nil, false, err
	}

	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, false, err
	}

	if !applied {
		// Late expiry after the booking was paid, or a redelivery against a
		// terminal booking. Never downgrades a paid booking.
		metrics.Transitions.WithLabelValues("session_expired", metrics.OutcomeAbsorbed).Inc()
		s.logger.Debug("session expired absorbed",
			logger.String("booking_id", bookingID),
			logger.String("status", string(b.Status)),
			logger.String("payment_status", string(b.PaymentStatus)),
		)
		return b, false, nil
	}

	metrics.Transitions.WithLabelValues("session_expired", metrics.OutcomeApplied).Inc()
	s.logger.Info("booking cancelled after session expiry",
		logger.String("booking_id", bookingID),
	)

	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), b)

	return b, true, nil
}

func (s *LifecycleService) applyOverride(ctx context.Context, bookingID string, e domain.OperatorOverride) (*domain.Booking, bool, error) {
	if e.NewStatus != domain.BookingStatusCompleted && e.NewStatus != domain.BookingStatusCancelled {
		return nil, false, fmt.Errorf("%w: operator may only set completed or cancelled", domain.ErrIllegalTransition)
	}

	applied, err := s.repo.OverrideStatus(ctx, bookingID, e.NewStatus)
	if err != nil {
		return nil, false, err
	}
	if !applied {
		// Unlike webhook events, operator mistakes are surfaced, not absorbed.
		metrics.Transitions.WithLabelValues("operator_override", metrics.OutcomeRejected).Inc()
		return nil, false, fmt.Errorf("%w: booking is not confirmed and paid", domain.ErrIllegalTransition)
	}

	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, false, err
	}

	metrics.Transitions.WithLabelValues("operator_override", metrics.OutcomeApplied).Inc()
	s.logger.Info("booking status overridden",
		logger.String("booking_id", bookingID),
		logger.String("new_status", string(e.NewStatus)),
	)

	return b, true, nil
}
