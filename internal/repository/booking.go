package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
	"github.com/yseddiki/ohIPlay/internal/domain"
)

const bookingColumns = `id, offering_id, full_name, email, phone, number_of_participants,
	total_amount_cents, currency, booking_date, special_requests, status, payment_status,
	provider_session_id, provider_payment_id, created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (id, offering_id, full_name, email, phone, number_of_participants,
				total_amount_cents, currency, booking_date, special_requests, status, payment_status,
				created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.OfferingID, b.Customer.FullName, b.Customer.Email, b.Customer.Phone,
		b.NumberOfParticipants, b.TotalAmountCents, b.Currency, b.BookingDate,
		b.SpecialRequests, b.Status, b.PaymentStatus, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	return scanBooking(row)
}

func (r *BookingRepository) GetBySessionID(ctx context.Context, sessionID string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE provider_session_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get booking by session: %w", err)
	}

	return scanBooking(row)
}

// AttachSession records the provider session id on a booking that is still
// awaiting payment and has no session yet. The WHERE clause is the guard: a
// concurrent webhook or a second checkout attempt makes it match zero rows.
func (r *BookingRepository) AttachSession(ctx context.Context, bookingID, sessionID string) error {
	query := `UPDATE bookings
			  SET provider_session_id = $2, updated_at = now()
			  WHERE id = $1
			    AND status = $3
			    AND payment_status = $4
			    AND provider_session_id IS NULL`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		bookingID, sessionID,
		domain.BookingStatusPending, domain.PaymentStatusPending,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: session %s belongs to another booking", domain.ErrSessionAlreadyOpen, sessionID)
		}
		return fmt.Errorf("attach session: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("attach session rows affected: %w", err)
	}
	if rows == 0 {
		b, err := r.GetByID(ctx, bookingID)
		if err != nil {
			return err
		}
		if b.ProviderSessionID != "" {
			return domain.ErrSessionAlreadyOpen
		}
		return domain.ErrIllegalTransition
	}

	return nil
}

// MarkPaid advances (pending, pending) to (confirmed, paid) and records the
// provider payment id. Returns false without writing when the booking is not
// in the expected state, which is how redelivered events become no-ops.
func (r *BookingRepository) MarkPaid(ctx context.Context, bookingID, providerPaymentID string) (bool, error) {
	query := `UPDATE bookings
			  SET status = $2, payment_status = $3, provider_payment_id = $4, updated_at = now()
			  WHERE id = $1
			    AND status = $5
			    AND payment_status = $6`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		bookingID,
		domain.BookingStatusConfirmed, domain.PaymentStatusPaid, providerPaymentID,
		domain.BookingStatusPending, domain.PaymentStatusPending,
	)
	if err != nil {
		return false, fmt.Errorf("mark paid: %w", err)
	}

	return r.appliedOrExists(ctx, bookingID, res)
}

// MarkExpired advances (pending, pending) to (cancelled, failed). A booking
// that already moved on, paid included, is left untouched.
func (r *BookingRepository) MarkExpired(ctx context.Context, bookingID string) (bool, error) {
	query := `UPDATE bookings
			  SET status = $2, payment_status = $3, updated_at = now()
			  WHERE id = $1
			    AND status = $4
			    AND payment_status = $5`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		bookingID,
		domain.BookingStatusCancelled, domain.PaymentStatusFailed,
		domain.BookingStatusPending, domain.PaymentStatusPending,
	)
	if err != nil {
		return false, fmt.Errorf("mark expired: %w", err)
	}

	return r.appliedOrExists(ctx, bookingID, res)
}

// OverrideStatus applies an operator status change. Only a confirmed, paid
// booking qualifies; payment status stays as it is.
func (r *BookingRepository) OverrideStatus(ctx context.Context, bookingID string, newStatus domain.BookingStatus) (bool, error) {
	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE id = $1
			    AND status = $3
			    AND payment_status = $4`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		bookingID, newStatus,
		domain.BookingStatusConfirmed, domain.PaymentStatusPaid,
	)
	if err != nil {
		return false, fmt.Errorf("override status: %w", err)
	}

	return r.appliedOrExists(ctx, bookingID, res)
}

func (r *BookingRepository) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings`
	var (
		conds []string
		args  []any
	)
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conds = append(conds, "status = $"+strconv.Itoa(len(args)))
	}
	if filter.Email != "" {
		args = append(args, filter.Email)
		conds = append(conds, "email = $"+strconv.Itoa(len(args)))
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListStaleSessions returns bookings still awaiting payment whose checkout
// session was opened before the cutoff. The reconciler uses it to catch up
// on webhook deliveries the provider never managed to land.
func (r *BookingRepository) ListStaleSessions(ctx context.Context, cutoff time.Time) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE status = $1
			    AND payment_status = $2
			    AND provider_session_id IS NOT NULL
			    AND updated_at < $3
			  ORDER BY updated_at
			  LIMIT 100`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusPending, domain.PaymentStatusPending, cutoff,
	)
	if err != nil {
		return nil, fmt.Errorf("list stale sessions: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// appliedOrExists turns a guarded UPDATE result into (applied, error):
// one row means the transition happened, zero rows against an existing
// booking means the guard rejected it, a missing booking is an error.
func (r *BookingRepository) appliedOrExists(ctx context.Context, bookingID string, res sql.Result) (bool, error) {
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	if rows > 0 {
		return true, nil
	}

	if _, err = r.GetByID(ctx, bookingID); err != nil {
		return false, err
	}

	return false, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b                 domain.Booking
		specialRequests   sql.NullString
		providerSessionID sql.NullString
		providerPaymentID sql.NullString
	)
	err := row.Scan(
		&b.ID, &b.OfferingID, &b.Customer.FullName, &b.Customer.Email, &b.Customer.Phone,
		&b.NumberOfParticipants, &b.TotalAmountCents, &b.Currency, &b.BookingDate,
		&specialRequests, &b.Status, &b.PaymentStatus,
		&providerSessionID, &providerPaymentID, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}
	b.SpecialRequests = specialRequests.String
	b.ProviderSessionID = providerSessionID.String
	b.ProviderPaymentID = providerPaymentID.String

	return &b, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, b)
	}

	return res, rows.Err()
}
