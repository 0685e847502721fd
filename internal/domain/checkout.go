package domain

// CheckoutSession is the provider's handle for a single checkout attempt.
type CheckoutSession struct {
	SessionID   string `json:"session_id"`
	RedirectURL string `json:"redirect_url"`
}

type CreateSessionInput struct {
	AmountCents   int64
	Currency      string
	Description   string
	CustomerEmail string
	Metadata      map[string]string
}

type SessionState string

const (
	SessionStatePending   SessionState = "pending"
	SessionStateCompleted SessionState = "completed"
	SessionStateExpired   SessionState = "expired"
)

type SessionStatus struct {
	SessionID string
	State     SessionState
	PaymentID string
}
