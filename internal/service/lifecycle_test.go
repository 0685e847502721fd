package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"github.com/yseddiki/ohIPlay/internal/domain"
	"github.com/yseddiki/ohIPlay/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func pendingBooking(id string) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		OfferingID:    "o1",
		Status:        domain.BookingStatusPending,
		PaymentStatus: domain.PaymentStatusPending,
	}
}

func TestLifecycle_SessionOpened_Applied(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewLifecycleService(repo, notifier, newTestLogger(t))

	b := pendingBooking("b1")
	b.ProviderSessionID = "sess_1"

	repo.EXPECT().AttachSession(mock.Anything, "b1", "sess_1").Return(nil)
	repo.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)

	got, applied, err := svc.Apply(context.Background(), "b1", domain.SessionOpened{SessionID: "sess_1"})

	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, "sess_1", got.ProviderSessionID)
}

func TestLifecycle_SessionOpened_AlreadyOpen(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewLifecycleService(repo, notifier, newTestLogger(t))

	repo.EXPECT().AttachSession(mock.Anything, "b1", "sess_2").Return(domain.ErrSessionAlreadyOpen)

	_, applied, err := svc.Apply(context.Background(), "b1", domain.SessionOpened{SessionID: "sess_2"})

	assert.False(t, applied)
	assert.ErrorIs(t, err, domain.ErrSessionAlreadyOpen)
}

func TestLifecycle_PaymentCompleted_Applied(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewLifecycleService(repo, notifier, newTestLogger(t))

	paid := &domain.Booking{
		ID:                "b1",
		Status:            domain.BookingStatusConfirmed,
		PaymentStatus:     domain.PaymentStatusPaid,
		ProviderPaymentID: "pay_1",
	}

	repo.EXPECT().MarkPaid(mock.Anything, "b1", "pay_1").Return(true, nil)
	repo.EXPECT().GetByID(mock.Anything, "b1").Return(paid, nil)
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, paid).Return()

	got, applied, err := svc.Apply(context.Background(), "b1", domain.PaymentCompleted{ProviderPaymentID: "pay_1"})

	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, domain.BookingStatusConfirmed, got.Status)
	assert.Equal(t, domain.PaymentStatusPaid, got.PaymentStatus)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestLifecycle_PaymentCompleted_Redelivery_Absorbed(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewLifecycleService(repo, notifier, newTestLogger(t))

	paid := &domain.Booking{
		ID:            "b1",
		Status:        domain.BookingStatusConfirmed,
		PaymentStatus: domain.PaymentStatusPaid,
	}

	repo.EXPECT().MarkPaid(mock.Anything, "b1", "pay_1").Return(false, nil)
	repo.EXPECT().GetByID(mock.Anything, "b1").Return(paid, nil)

	got, applied, err := svc.Apply(context.Background(), "b1", domain.PaymentCompleted{ProviderPaymentID: "pay_1"})

	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, domain.PaymentStatusPaid, got.PaymentStatus)
	notifier.AssertNotCalled(t, "NotifyBookingConfirmed", mock.Anything, mock.Anything)
}

func TestLifecycle_SessionExpired_Applied(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewLifecycleService(repo, notifier, newTestLogger(t))

	cancelled := &domain.Booking{
		ID:            "b1",
		Status:        domain.BookingStatusCancelled,
		PaymentStatus: domain.PaymentStatusFailed,
	}

	repo.EXPECT().MarkExpired(mock.Anything, "b1").Return(true, nil)
	repo.EXPECT().GetByID(mock.Anything, "b1").Return(cancelled, nil)
	notifier.EXPECT().NotifyBookingCancelled(mock.Anything, cancelled).Return()

	got, applied, err := svc.Apply(context.Background(), "b1", domain.SessionExpired{})

	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, domain.BookingStatusCancelled, got.Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestLifecycle_SessionExpired_NeverDowngradesPaid(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewLifecycleService(repo, notifier, newTestLogger(t))

	paid := &domain.Booking{
		ID:            "b1",
		Status:        domain.BookingStatusConfirmed,
		PaymentStatus: domain.PaymentStatusPaid,
	}

	repo.EXPECT().MarkExpired(mock.Anything, "b1").Return(false, nil)
	repo.EXPECT().GetByID(mock.Anything, "b1").Return(paid, nil)

	got, applied, err := svc.Apply(context.Background(), "b1", domain.SessionExpired{})

	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, domain.BookingStatusConfirmed, got.Status)
	assert.Equal(t, domain.PaymentStatusPaid, got.PaymentStatus)
	notifier.AssertNotCalled(t, "NotifyBookingCancelled", mock.Anything, mock.Anything)
}

func TestLifecycle_Override_Completed(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewLifecycleService(repo, notifier, newTestLogger(t))

	completed := &domain.Booking{
		ID:            "b1",
		Status:        domain.BookingStatusCompleted,
		PaymentStatus: domain.PaymentStatusPaid,
	}

	repo.EXPECT().OverrideStatus(mock.Anything, "b1", domain.BookingStatusCompleted).Return(true, nil)
	repo.EXPECT().GetByID(mock.Anything, "b1").Return(completed, nil)

	got, applied, err := svc.Apply(context.Background(), "b1", domain.OperatorOverride{NewStatus: domain.BookingStatusCompleted})

	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, domain.BookingStatusCompleted, got.Status)
}

func TestLifecycle_Override_IllegalTarget(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewLifecycleService(repo, notifier, newTestLogger(t))

	_, _, err := svc.Apply(context.Background(), "b1", domain.OperatorOverride{NewStatus: domain.BookingStatusPending})

	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
	repo.AssertNotCalled(t, "OverrideStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestLifecycle_Override_RejectedWhenNotPaid(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewLifecycleService(repo, notifier, newTestLogger(t))

	repo.EXPECT().OverrideStatus(mock.Anything, "b1", domain.BookingStatusCancelled).Return(false, nil)

	_, _, err := svc.Apply(context.Background(), "b1", domain.OperatorOverride{NewStatus: domain.BookingStatusCancelled})

	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
}

func TestLifecycle_RepoError_Propagates(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewLifecycleService(repo, notifier, newTestLogger(t))

	repoErr := errors.New("connection reset")
	repo.EXPECT().MarkPaid(mock.Anything, "b1", "pay_1").Return(false, repoErr)

	_, _, err := svc.Apply(context.Background(), "b1", domain.PaymentCompleted{ProviderPaymentID: "pay_1"})

	assert.ErrorIs(t, err, repoErr)
}
