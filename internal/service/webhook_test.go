package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yseddiki/ohIPlay/internal/domain"
	"github.com/yseddiki/ohIPlay/internal/payment"
	"github.com/yseddiki/ohIPlay/internal/service/ports/mocks"
)

const webhookSecret = "whsec_test"

func newWebhookService(t *testing.T) (*mocks.MockBookingRepo, *mocks.MockBookingNotifier, *WebhookService) {
	t.Helper()
	bookingRepo := mocks.NewMockBookingRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	lifecycle := NewLifecycleService(bookingRepo, notifier, log)
	verifier := payment.NewSignatureVerifier(webhookSecret, 5*time.Minute)
	svc := NewWebhookService(verifier, bookingRepo, lifecycle, log)

	return bookingRepo, notifier, svc
}

func signedPayload(t *testing.T, eventType, sessionID, paymentID, bookingID string) ([]byte, string) {
	t.Helper()
	meta := ""
	if bookingID != "" {
		meta = fmt.Sprintf(`"booking_id":%q`, bookingID)
	}
	payload := []byte(fmt.Sprintf(
		`{"id":"evt_1","type":%q,"data":{"object":{"id":%q,"payment_id":%q,"metadata":{%s}}}}`,
		eventType, sessionID, paymentID, meta,
	))
	return payload, payment.Sign(webhookSecret, time.Now(), payload)
}

func TestWebhook_SessionCompleted_Applied(t *testing.T) {
	bookingRepo, notifier, svc := newWebhookService(t)

	paid := &domain.Booking{ID: "b1", Status: domain.BookingStatusConfirmed, PaymentStatus: domain.PaymentStatusPaid}

	bookingRepo.EXPECT().MarkPaid(mock.Anything, "b1", "pay_1").Return(true, nil)
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(paid, nil)
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, paid).Return()

	payload, sig := signedPayload(t, "checkout.session.completed", "sess_1", "pay_1", "b1")
	err := svc.HandleEvent(context.Background(), payload, sig)

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestWebhook_Redelivery_Acked(t *testing.T) {
	bookingRepo, _, svc := newWebhookService(t)

	paid := &domain.Booking{ID: "b1", Status: domain.BookingStatusConfirmed, PaymentStatus: domain.PaymentStatusPaid}

	bookingRepo.EXPECT().MarkPaid(mock.Anything, "b1", "pay_1").Return(false, nil)
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(paid, nil)

	payload, sig := signedPayload(t, "checkout.session.completed", "sess_1", "pay_1", "b1")

	require.NoError(t, svc.HandleEvent(context.Background(), payload, sig))
	require.NoError(t, svc.HandleEvent(context.Background(), payload, sig))
}

func TestWebhook_LateExpiry_DoesNotDowngradePaid(t *testing.T) {
	bookingRepo, notifier, svc := newWebhookService(t)

	paid := &domain.Booking{ID: "b1", Status: domain.BookingStatusConfirmed, PaymentStatus: domain.PaymentStatusPaid}

	bookingRepo.EXPECT().MarkExpired(mock.Anything, "b1").Return(false, nil)
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(paid, nil)

	payload, sig := signedPayload(t, "checkout.session.expired", "sess_1", "", "b1")
	err := svc.HandleEvent(context.Background(), payload, sig)

	require.NoError(t, err)
	notifier.AssertNotCalled(t, "NotifyBookingCancelled", mock.Anything, mock.Anything)
}

func TestWebhook_InvalidSignature_Rejected(t *testing.T) {
	_, _, svc := newWebhookService(t)

	payload, _ := signedPayload(t, "checkout.session.completed", "sess_1", "pay_1", "b1")
	forged := payment.Sign("wrong-secret", time.Now(), payload)

	err := svc.HandleEvent(context.Background(), payload, forged)

	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
}

func TestWebhook_MissingSignature_Rejected(t *testing.T) {
	_, _, svc := newWebhookService(t)

	payload, _ := signedPayload(t, "checkout.session.completed", "sess_1", "pay_1", "b1")

	err := svc.HandleEvent(context.Background(), payload, "")

	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
}

func TestWebhook_MalformedPayload_Acked(t *testing.T) {
	_, _, svc := newWebhookService(t)

	payload := []byte(`{"id":"evt_1"`)
	sig := payment.Sign(webhookSecret, time.Now(), payload)

	assert.NoError(t, svc.HandleEvent(context.Background(), payload, sig))
}

func TestWebhook_UnknownEventType_Acked(t *testing.T) {
	bookingRepo, _, svc := newWebhookService(t)

	payload, sig := signedPayload(t, "checkout.session.async_payment_failed", "sess_1", "", "b1")

	assert.NoError(t, svc.HandleEvent(context.Background(), payload, sig))
	bookingRepo.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything)
	bookingRepo.AssertNotCalled(t, "MarkExpired", mock.Anything, mock.Anything)
}

func TestWebhook_UnknownBooking_Acked(t *testing.T) {
	bookingRepo, _, svc := newWebhookService(t)

	bookingRepo.EXPECT().MarkPaid(mock.Anything, "ghost", "pay_1").Return(false, domain.ErrBookingNotFound)

	payload, sig := signedPayload(t, "checkout.session.completed", "sess_1", "pay_1", "ghost")

	assert.NoError(t, svc.HandleEvent(context.Background(), payload, sig))
}

func TestWebhook_SessionIDFallback(t *testing.T) {
	bookingRepo, notifier, svc := newWebhookService(t)

	b := &domain.Booking{ID: "b1", ProviderSessionID: "sess_1", Status: domain.BookingStatusPending, PaymentStatus: domain.PaymentStatusPending}
	paid := &domain.Booking{ID: "b1", Status: domain.BookingStatusConfirmed, PaymentStatus: domain.PaymentStatusPaid}

	bookingRepo.EXPECT().GetBySessionID(mock.Anything, "sess_1").Return(b, nil)
	bookingRepo.EXPECT().MarkPaid(mock.Anything, "b1", "pay_1").Return(true, nil)
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(paid, nil)
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, paid).Return()

	payload, sig := signedPayload(t, "checkout.session.completed", "sess_1", "pay_1", "")
	err := svc.HandleEvent(context.Background(), payload, sig)

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestWebhook_UnmatchedSession_Acked(t *testing.T) {
	bookingRepo, _, svc := newWebhookService(t)

	bookingRepo.EXPECT().GetBySessionID(mock.Anything, "sess_x").Return(nil, domain.ErrBookingNotFound)

	payload, sig := signedPayload(t, "checkout.session.expired", "sess_x", "", "")

	assert.NoError(t, svc.HandleEvent(context.Background(), payload, sig))
}

func TestWebhook_StorageError_Redelivered(t *testing.T) {
	bookingRepo, _, svc := newWebhookService(t)

	bookingRepo.EXPECT().MarkPaid(mock.Anything, "b1", "pay_1").Return(false, errors.New("db down"))

	payload, sig := signedPayload(t, "checkout.session.completed", "sess_1", "pay_1", "b1")
	err := svc.HandleEvent(context.Background(), payload, sig)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidSignature)
}

func TestWebhook_OutOfOrderSequence(t *testing.T) {
	bookingRepo, notifier, svc := newWebhookService(t)

	paid := &domain.Booking{ID: "b1", Status: domain.BookingStatusConfirmed, PaymentStatus: domain.PaymentStatusPaid}

	// completed lands first and wins; the late expired event is absorbed.
	bookingRepo.EXPECT().MarkPaid(mock.Anything, "b1", "pay_1").Return(true, nil)
	bookingRepo.EXPECT().MarkExpired(mock.Anything, "b1").Return(false, nil)
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(paid, nil)
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, paid).Return()

	completed, completedSig := signedPayload(t, "checkout.session.completed", "sess_1", "pay_1", "b1")
	expired, expiredSig := signedPayload(t, "checkout.session.expired", "sess_1", "", "b1")

	require.NoError(t, svc.HandleEvent(context.Background(), completed, completedSig))
	require.NoError(t, svc.HandleEvent(context.Background(), expired, expiredSig))

	time.Sleep(50 * time.Millisecond) // goroutine notify
}
