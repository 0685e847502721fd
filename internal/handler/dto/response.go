package dto

import (
	"time"

	"github.com/yseddiki/ohIPlay/internal/domain"
)

type BookingResponse struct {
	ID                   string              `json:"id"`
	OfferingID           string              `json:"offering_id"`
	Customer             CustomerInfoRequest `json:"customer"`
	NumberOfParticipants int                 `json:"number_of_participants"`
	TotalAmountCents     int64               `json:"total_amount_cents"`
	Currency             string              `json:"currency"`
	BookingDate          string              `json:"booking_date"`
	SpecialRequests      string              `json:"special_requests,omitempty"`
	Status               string              `json:"status"`
	PaymentStatus        string              `json:"payment_status"`
	ProviderSessionID    string              `json:"provider_session_id,omitempty"`
	CreatedAt            string              `json:"created_at"`
	UpdatedAt            string              `json:"updated_at"`
}

type CheckoutResponse struct {
	SessionID   string `json:"session_id"`
	RedirectURL string `json:"redirect_url"`
}

type OfferingResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	PriceCents      int64  `json:"price_cents"`
	Currency        string `json:"currency"`
	Location        string `json:"location"`
	DurationDays    int    `json:"duration_days"`
	MaxParticipants int    `json:"max_participants"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		OfferingID: b.OfferingID,
		Customer: CustomerInfoRequest{
			FullName: b.Customer.FullName,
			Email:    b.Customer.Email,
			Phone:    b.Customer.Phone,
		},
		NumberOfParticipants: b.NumberOfParticipants,
		TotalAmountCents:     b.TotalAmountCents,
		Currency:             b.Currency,
		BookingDate:          b.BookingDate.Format(time.RFC3339),
		SpecialRequests:      b.SpecialRequests,
		Status:               string(b.Status),
		PaymentStatus:        string(b.PaymentStatus),
		ProviderSessionID:    b.ProviderSessionID,
		CreatedAt:            b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            b.UpdatedAt.Format(time.RFC3339),
	}
}

func ToCheckoutResponse(s *domain.CheckoutSession) CheckoutResponse {
	return CheckoutResponse{
		SessionID:   s.SessionID,
		RedirectURL: s.RedirectURL,
	}
}

func ToOfferingResponse(o *domain.Offering) OfferingResponse {
	return OfferingResponse{
		ID:              o.ID,
		Title:           o.Title,
		Description:     o.Description,
		PriceCents:      o.PriceCents,
		Currency:        o.Currency,
		Location:        o.Location,
		DurationDays:    o.DurationDays,
		MaxParticipants: o.MaxParticipants,
	}
}
