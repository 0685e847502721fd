package domain

// TransitionEvent is the tagged set of inputs accepted by the booking
// lifecycle. Provider payloads are resolved into one of these variants once,
// at the boundary, and dispatched from a single place.
type TransitionEvent interface {
	transitionEvent()
}

// SessionOpened attaches a checkout session to a pending booking. It does not
// move the status pair.
type SessionOpened struct {
	SessionID string
}

// PaymentCompleted moves (pending, pending) to (confirmed, paid). Redelivery
// against an already paid or terminal booking is absorbed as a no-op.
type PaymentCompleted struct {
	ProviderPaymentID string
}

// SessionExpired moves (pending, pending) to (cancelled, failed). A late
// expiry arriving after the booking was paid is absorbed, never downgrading
// a paid booking.
type SessionExpired struct{}

// OperatorOverride sets the status directly, bypassing payment state. Only
// completed and cancelled from (confirmed, paid) are legal; payment status is
// never auto-reverted, refunds are a separate process.
type OperatorOverride struct {
	NewStatus BookingStatus
}

func (SessionOpened) transitionEvent()    {}
func (PaymentCompleted) transitionEvent() {}
func (SessionExpired) transitionEvent()   {}
func (OperatorOverride) transitionEvent() {}
