package service

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"
	"github.com/yseddiki/ohIPlay/internal/domain"
	"github.com/yseddiki/ohIPlay/internal/payment"
	"github.com/yseddiki/ohIPlay/internal/service/ports"
)

type CheckoutService struct {
	bookingRepo  ports.BookingRepo
	offeringRepo ports.OfferingRepo
	provider     ports.CheckoutProvider
	lifecycle    *LifecycleService
	staleAfter   time.Duration
	logger       logger.Logger
}

func NewCheckoutService(
	bookingRepo ports.BookingRepo,
	offeringRepo ports.OfferingRepo,
	provider ports.CheckoutProvider,
	lifecycle *LifecycleService,
	staleAfter time.Duration,
	logger logger.Logger,
) *CheckoutService {
	return &CheckoutService{
		bookingRepo:  bookingRepo,
		offeringRepo: offeringRepo,
		provider:     provider,
		lifecycle:    lifecycle,
		staleAfter:   staleAfter,
		logger:       logger,
	}
}

// OpenSession creates a checkout session with the gateway for a pending
// booking and attaches the session id. The booking is persisted before the
// provider round trip and updated only after it returns, so a slow gateway
// never blocks other operations on the booking. The metadata booking_id is
// what the webhook later uses to find its way back.
func (s *CheckoutService) OpenSession(ctx context.Context, bookingID string) (*domain.CheckoutSession, error) {
	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	// Advisory pre-checks for early, friendly errors. AttachSession below
	// re-checks the same conditions atomically.
	if b.PaymentStatus == domain.PaymentStatusPaid {
		return nil, domain.ErrBookingAlreadyPaid
	}
	if b.Status != domain.BookingStatusPending || b.PaymentStatus != domain.PaymentStatusPending {
		return nil, fmt.Errorf("%w: booking is not awaiting payment", domain.ErrIllegalTransition)
	}
	if b.ProviderSessionID != "" {
		return nil, domain.ErrSessionAlreadyOpen
	}

	offering, err := s.offeringRepo.GetByID(ctx, b.OfferingID)
	if err != nil {
		return nil, fmt.Errorf("get offering: %w", err)
	}

	session, err := s.provider.CreateSession(ctx, domain.CreateSessionInput{
		AmountCents:   b.TotalAmountCents,
		Currency:      b.Currency,
		Description:   fmt.Sprintf("%s, %d participant(s)", offering.Title, b.NumberOfParticipants),
		CustomerEmail: b.Customer.Email,
		Metadata: map[string]string{
			payment.MetadataBookingID: b.ID,
		},
	})
	if err != nil {
		s.logger.Error("failed to create checkout session",
			logger.String("booking_id", b.ID),
			logger.String("error", err.Error()),
		)
		return nil, err
	}

	if _, _, err = s.lifecycle.Apply(ctx, b.ID, domain.SessionOpened{SessionID: session.SessionID}); err != nil {
		// The booking changed under us between the read and the attach,
		// e.g. a concurrent checkout won the race. The orphaned session
		// expires on the provider side on its own.
		return nil, err
	}

	return session, nil
}

// ReconcileStaleSessions sweeps bookings stuck in (pending, pending) with an
// open session and asks the gateway what actually happened. Outcomes go
// through the same lifecycle authority as webhooks, so a webhook landing
// concurrently is harmless. A session the gateway still reports pending, or
// one it cannot report on at all, is left alone: expiry is the provider's
// call, never a local timer's.
func (s *CheckoutService) ReconcileStaleSessions(ctx context.Context) ([]*domain.Booking, error) {
	stale, err := s.bookingRepo.ListStaleSessions(ctx, time.Now().UTC().Add(-s.staleAfter))
	if err != nil {
		return nil, fmt.Errorf("list stale sessions: %w", err)
	}

	var reconciled []*domain.Booking
	for _, b := range stale {
		status, err := s.provider.CheckSession(ctx, b.ProviderSessionID)
		if err != nil {
			s.logger.Warn("failed to check session",
				logger.String("booking_id", b.ID),
				logger.String("session_id", b.ProviderSessionID),
				logger.String("error", err.Error()),
			)
			continue
		}

		var event domain.TransitionEvent
		switch status.State {
		case domain.SessionStateCompleted:
			event = domain.PaymentCompleted{ProviderPaymentID: status.PaymentID}
		case domain.SessionStateExpired:
			event = domain.SessionExpired{}
		default:
			continue
		}

		updated, applied, err := s.lifecycle.Apply(ctx, b.ID, event)
		if err != nil {
			s.logger.Error("failed to reconcile session",
				logger.String("booking_id", b.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		if applied {
			reconciled = append(reconciled, updated)
		}
	}

	return reconciled, nil
}
