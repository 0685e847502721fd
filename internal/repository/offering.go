package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
	"github.com/yseddiki/ohIPlay/internal/domain"
)

type OfferingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewOfferingRepo(db *dbpg.DB) *OfferingRepository {
	return &OfferingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *OfferingRepository) GetByID(ctx context.Context, id string) (*domain.Offering, error) {
	query := `SELECT id, title, description, price_cents, currency, location, duration_days,
					 max_participants, active, created_at, updated_at
			  FROM offerings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get offering: %w", err)
	}

	var o domain.Offering
	if err = row.Scan(
		&o.ID, &o.Title, &o.Description, &o.PriceCents, &o.Currency, &o.Location,
		&o.DurationDays, &o.MaxParticipants, &o.Active, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOfferingNotFound
		}
		return nil, fmt.Errorf("scan offering: %w", err)
	}

	return &o, nil
}

func (r *OfferingRepository) List(ctx context.Context) ([]*domain.Offering, error) {
	query := `SELECT id, title, description, price_cents, currency, location, duration_days,
					 max_participants, active, created_at, updated_at
			  FROM offerings
			  WHERE active
			  ORDER BY title`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list offerings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Offering
	for rows.Next() {
		var o domain.Offering
		if err = rows.Scan(
			&o.ID, &o.Title, &o.Description, &o.PriceCents, &o.Currency, &o.Location,
			&o.DurationDays, &o.MaxParticipants, &o.Active, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan offering: %w", err)
		}
		res = append(res, &o)
	}

	return res, rows.Err()
}
