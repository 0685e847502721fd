package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yseddiki/ohIPlay/internal/domain"
	"github.com/yseddiki/ohIPlay/internal/service/ports/mocks"
)

func validCreateInput() domain.CreateBookingInput {
	return domain.CreateBookingInput{
		OfferingID: "o1",
		Customer: domain.CustomerInfo{
			FullName: "Alice Martin",
			Email:    "alice@example.com",
			Phone:    "+33612345678",
		},
		NumberOfParticipants: 3,
		BookingDate:          time.Now().Add(30 * 24 * time.Hour),
	}
}

func newBookingService(t *testing.T) (*mocks.MockBookingRepo, *mocks.MockOfferingRepo, *BookingService) {
	t.Helper()
	bookingRepo := mocks.NewMockBookingRepo(t)
	offeringRepo := mocks.NewMockOfferingRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	lifecycle := NewLifecycleService(bookingRepo, notifier, log)
	svc := NewBookingService(bookingRepo, offeringRepo, lifecycle, log)

	return bookingRepo, offeringRepo, svc
}

func TestBookingService_Create_SnapshotsPrice(t *testing.T) {
	bookingRepo, offeringRepo, svc := newBookingService(t)

	offering := &domain.Offering{
		ID:         "o1",
		Title:      "Surf Bootcamp",
		PriceCents: 5000,
		Currency:   "EUR",
		Active:     true,
	}

	offeringRepo.EXPECT().GetByID(mock.Anything, "o1").Return(offering, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	booking, err := svc.Create(context.Background(), validCreateInput())

	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, int64(15000), booking.TotalAmountCents)
	assert.Equal(t, "EUR", booking.Currency)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, domain.PaymentStatusPending, booking.PaymentStatus)
}

func TestBookingService_Create_InactiveOffering(t *testing.T) {
	bookingRepo, offeringRepo, svc := newBookingService(t)

	offering := &domain.Offering{ID: "o1", PriceCents: 5000, Active: false}
	offeringRepo.EXPECT().GetByID(mock.Anything, "o1").Return(offering, nil)

	_, err := svc.Create(context.Background(), validCreateInput())

	assert.ErrorIs(t, err, domain.ErrValidation)
	bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookingService_Create_OfferingNotFound(t *testing.T) {
	_, offeringRepo, svc := newBookingService(t)

	offeringRepo.EXPECT().GetByID(mock.Anything, "o1").Return(nil, domain.ErrOfferingNotFound)

	_, err := svc.Create(context.Background(), validCreateInput())

	assert.ErrorIs(t, err, domain.ErrOfferingNotFound)
}

func TestBookingService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.CreateBookingInput)
	}{
		{"missing offering", func(in *domain.CreateBookingInput) { in.OfferingID = "" }},
		{"missing name", func(in *domain.CreateBookingInput) { in.Customer.FullName = "  " }},
		{"missing email", func(in *domain.CreateBookingInput) { in.Customer.Email = "" }},
		{"missing phone", func(in *domain.CreateBookingInput) { in.Customer.Phone = "" }},
		{"zero participants", func(in *domain.CreateBookingInput) { in.NumberOfParticipants = 0 }},
		{"past date", func(in *domain.CreateBookingInput) { in.BookingDate = time.Now().Add(-time.Hour) }},
		{"oversized special requests", func(in *domain.CreateBookingInput) {
			in.SpecialRequests = string(make([]byte, maxSpecialRequestsLen+1))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, svc := newBookingService(t)

			input := validCreateInput()
			tt.mutate(&input)

			_, err := svc.Create(context.Background(), input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestBookingService_Override_UnknownStatus(t *testing.T) {
	_, _, svc := newBookingService(t)

	_, err := svc.Override(context.Background(), "b1", domain.BookingStatus("archived"))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Override_Completed(t *testing.T) {
	bookingRepo, _, svc := newBookingService(t)

	completed := &domain.Booking{
		ID:            "b1",
		Status:        domain.BookingStatusCompleted,
		PaymentStatus: domain.PaymentStatusPaid,
	}

	bookingRepo.EXPECT().OverrideStatus(mock.Anything, "b1", domain.BookingStatusCompleted).Return(true, nil)
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(completed, nil)

	booking, err := svc.Override(context.Background(), "b1", domain.BookingStatusCompleted)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCompleted, booking.Status)
}

func TestBookingService_Override_PendingBookingRejected(t *testing.T) {
	bookingRepo, _, svc := newBookingService(t)

	bookingRepo.EXPECT().OverrideStatus(mock.Anything, "b1", domain.BookingStatusCancelled).Return(false, nil)

	_, err := svc.Override(context.Background(), "b1", domain.BookingStatusCancelled)

	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
}
