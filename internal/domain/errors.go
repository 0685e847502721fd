package domain

import "errors"

var (
	ErrOfferingNotFound = errors.New("offering not found")
	ErrBookingNotFound  = errors.New("booking not found")
)

var (
	ErrIllegalTransition  = errors.New("illegal booking transition")
	ErrSessionAlreadyOpen = errors.New("checkout session already open")
	ErrBookingAlreadyPaid = errors.New("booking already paid")
)

var (
	ErrInvalidSignature    = errors.New("invalid webhook signature")
	ErrProviderUnavailable = errors.New("payment provider unavailable")
)

var (
	ErrValidation = errors.New("validation error")
)
