package service

import (
	"context"
	"errors"

	"github.com/wb-go/wbf/logger"
	"github.com/yseddiki/ohIPlay/internal/domain"
	"github.com/yseddiki/ohIPlay/internal/metrics"
	"github.com/yseddiki/ohIPlay/internal/payment"
	"github.com/yseddiki/ohIPlay/internal/service/ports"
)

type SignatureVerifier interface {
	Verify(payload []byte, header string) error
}

// WebhookService turns gateway deliveries into lifecycle transitions.
// Deliveries are at-least-once and possibly reordered, so everything after
// the signature check must be safe to run any number of times. Only an
// unverifiable signature is reported back as a failure; every other outcome
// is acknowledged so the gateway stops redelivering an event this system has
// already handled or can never use.
type WebhookService struct {
	verifier    SignatureVerifier
	bookingRepo ports.BookingRepo
	lifecycle   *LifecycleService
	logger      logger.Logger
}

func NewWebhookService(
	verifier SignatureVerifier,
	bookingRepo ports.BookingRepo,
	lifecycle *LifecycleService,
	logger logger.Logger,
) *WebhookService {
	return &WebhookService{
		verifier:    verifier,
		bookingRepo: bookingRepo,
		lifecycle:   lifecycle,
		logger:      logger,
	}
}

// HandleEvent returns domain.ErrInvalidSignature on an authenticity failure,
// nil for every delivery that was applied, absorbed or deliberately ignored,
// and a storage error only when the event could not be durably handled and a
// redelivery is wanted.
func (s *WebhookService) HandleEvent(ctx context.Context, payload []byte, signature string) error {
	if err := s.verifier.Verify(payload, signature); err != nil {
		metrics.WebhookEvents.WithLabelValues("unknown", metrics.OutcomeRejected).Inc()
		s.logger.Warn("webhook signature rejected",
			logger.String("error", err.Error()),
		)
		return err
	}

	ev, err := payment.ParseEvent(payload)
	if err != nil {
		// Authenticated but unparseable. Redelivery would not help.
		metrics.WebhookEvents.WithLabelValues("unknown", metrics.OutcomeMalformed).Inc()
		s.logger.Warn("malformed webhook payload",
			logger.String("error", err.Error()),
		)
		return nil
	}

	var event domain.TransitionEvent
	switch ev.Type {
	case payment.EventSessionCompleted:
		event = domain.PaymentCompleted{ProviderPaymentID: ev.Data.Object.PaymentID}
	case payment.EventSessionExpired:
		event = domain.SessionExpired{}
	default:
		// Unknown event types are acknowledged for forward compatibility.
		metrics.WebhookEvents.WithLabelValues(string(ev.Type), metrics.OutcomeIgnored).Inc()
		s.logger.Debug("unhandled webhook event type",
			logger.String("event_id", ev.ID),
			logger.String("type", string(ev.Type)),
		)
		return nil
	}

	bookingID, err := s.resolveBooking(ctx, ev)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			metrics.WebhookEvents.WithLabelValues(string(ev.Type), metrics.OutcomeUnmatched).Inc()
			s.logger.Warn("webhook references unknown booking",
				logger.String("event_id", ev.ID),
				logger.String("session_id", ev.Data.Object.ID),
			)
			return nil
		}
		return err
	}

	_, applied, err := s.lifecycle.Apply(ctx, bookingID, event)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			metrics.WebhookEvents.WithLabelValues(string(ev.Type), metrics.OutcomeUnmatched).Inc()
			return nil
		}
		return err
	}

	outcome := metrics.OutcomeAbsorbed
	if applied {
		outcome = metrics.OutcomeApplied
	}
	metrics.WebhookEvents.WithLabelValues(string(ev.Type), outcome).Inc()
	s.logger.Info("webhook event processed",
		logger.String("event_id", ev.ID),
		logger.String("type", string(ev.Type)),
		logger.String("booking_id", bookingID),
		logger.String("outcome", outcome),
	)

	return nil
}

// resolveBooking prefers the caller-assigned metadata and falls back to the
// provider-assigned session id for events created before metadata was set.
func (s *WebhookService) resolveBooking(ctx context.Context, ev *payment.Event) (string, error) {
	if id := ev.Data.Object.Metadata[payment.MetadataBookingID]; id != "" {
		return id, nil
	}

	if ev.Data.Object.ID == "" {
		return "", domain.ErrBookingNotFound
	}

	b, err := s.bookingRepo.GetBySessionID(ctx, ev.Data.Object.ID)
	if err != nil {
		return "", err
	}

	return b.ID, nil
}
