package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
	"github.com/yseddiki/ohIPlay/internal/domain"
	"github.com/yseddiki/ohIPlay/internal/service/ports"
)

const maxSpecialRequestsLen = 500

type BookingService struct {
	bookingRepo  ports.BookingRepo
	offeringRepo ports.OfferingRepo
	lifecycle    *LifecycleService
	logger       logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	offeringRepo ports.OfferingRepo,
	lifecycle *LifecycleService,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		offeringRepo: offeringRepo,
		lifecycle:    lifecycle,
		logger:       logger,
	}
}

// Create validates the request, snapshots the offering price into the total
// amount and stores the booking in (pending, pending). The total reflects the
// price at booking time; later offering edits never touch it.
func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	offering, err := s.offeringRepo.GetByID(ctx, input.OfferingID)
	if err != nil {
		return nil, fmt.Errorf("check offering: %w", err)
	}
	if !offering.Active {
		return nil, fmt.Errorf("%w: offering is not open for booking", domain.ErrValidation)
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:                   uuid.New().String(),
		OfferingID:           offering.ID,
		Customer:             input.Customer,
		NumberOfParticipants: input.NumberOfParticipants,
		TotalAmountCents:     offering.PriceCents * int64(input.NumberOfParticipants),
		Currency:             offering.Currency,
		BookingDate:          input.BookingDate,
		SpecialRequests:      input.SpecialRequests,
		Status:               domain.BookingStatusPending,
		PaymentStatus:        domain.PaymentStatusPending,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("offering_id", offering.ID),
		logger.Int("participants", booking.NumberOfParticipants),
		logger.Int64("total_amount_cents", booking.TotalAmountCents),
	)

	return booking, nil
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	return s.bookingRepo.List(ctx, filter)
}

// Override is the operator path into the lifecycle. Authorization is the
// caller's responsibility.
func (s *BookingService) Override(ctx context.Context, id string, newStatus domain.BookingStatus) (*domain.Booking, error) {
	if !newStatus.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, newStatus)
	}

	b, _, err := s.lifecycle.Apply(ctx, id, domain.OperatorOverride{NewStatus: newStatus})
	if err != nil {
		return nil, err
	}

	return b, nil
}

func validateCreateInput(input domain.CreateBookingInput) error {
	if input.OfferingID == "" {
		return fmt.Errorf("%w: offering_id is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Customer.FullName) == "" {
		return fmt.Errorf("%w: full_name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Customer.Email) == "" {
		return fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Customer.Phone) == "" {
		return fmt.Errorf("%w: phone is required", domain.ErrValidation)
	}
	if input.NumberOfParticipants < 1 {
		return fmt.Errorf("%w: number_of_participants must be at least 1", domain.ErrValidation)
	}
	if !input.BookingDate.After(time.Now()) {
		return fmt.Errorf("%w: booking_date must be in the future", domain.ErrValidation)
	}
	if len(input.SpecialRequests) > maxSpecialRequestsLen {
		return fmt.Errorf("%w: special_requests cannot exceed %d characters", domain.ErrValidation, maxSpecialRequestsLen)
	}

	return nil
}
