package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// IsTerminal reports whether no further lifecycle event may move the booking.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCancelled || s == BookingStatusCompleted
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type CustomerInfo struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// Booking is a reservation against an offering. Customer info and the total
// amount are snapshots taken at creation time: later edits to the offering or
// its price never change an existing booking.
type Booking struct {
	ID                   string        `json:"id"`
	OfferingID           string        `json:"offering_id"`
	Customer             CustomerInfo  `json:"customer"`
	NumberOfParticipants int           `json:"number_of_participants"`
	TotalAmountCents     int64         `json:"total_amount_cents"`
	Currency             string        `json:"currency"`
	BookingDate          time.Time     `json:"booking_date"`
	SpecialRequests      string        `json:"special_requests,omitempty"`
	Status               BookingStatus `json:"status"`
	PaymentStatus        PaymentStatus `json:"payment_status"`
	ProviderSessionID    string        `json:"provider_session_id,omitempty"`
	ProviderPaymentID    string        `json:"provider_payment_id,omitempty"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}

type CreateBookingInput struct {
	OfferingID           string
	Customer             CustomerInfo
	NumberOfParticipants int
	BookingDate          time.Time
	SpecialRequests      string
}

type BookingFilter struct {
	Status *BookingStatus
	Email  string
}
