package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrLedgerNotFound is returned when a ledger ID resolves to no row.
var ErrLedgerNotFound = errors.New("ledger not found")

// LedgerService provides ledger master data reads. Ledger CRUD itself
// happens elsewhere; the statement engine only needs identifiers and
// display fields.
type LedgerService interface {
	// ListLedgers returns all ledgers ordered by business name.
	ListLedgers(ctx context.Context) ([]Ledger, error)

	// GetLedger returns one ledger by ID.
	GetLedger(ctx context.Context, id string) (*Ledger, error)
}

type ledgerService struct {
	pool *pgxpool.Pool
}

// NewLedgerService constructs a LedgerService backed by PostgreSQL.
func NewLedgerService(pool *pgxpool.Pool) LedgerService {
	return &ledgerService{pool: pool}
}

func (s *ledgerService) ListLedgers(ctx context.Context) ([]Ledger, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, business_name, contact_name, mobile, address, gst_number, created_at
		FROM ledgers
		ORDER BY business_name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list ledgers: %w", err)
	}
	defer rows.Close()

	var ledgers []Ledger
	for rows.Next() {
		var l Ledger
		if err := rows.Scan(&l.ID, &l.BusinessName, &l.ContactName, &l.Mobile, &l.Address, &l.GSTNumber, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger: %w", err)
		}
		ledgers = append(ledgers, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledgers: %w", err)
	}
	return ledgers, nil
}

func (s *ledgerService) GetLedger(ctx context.Context, id string) (*Ledger, error) {
	l := &Ledger{}
	err := s.pool.QueryRow(ctx, `
		SELECT id, business_name, contact_name, mobile, address, gst_number, created_at
		FROM ledgers
		WHERE id = $1`,
		id,
	).Scan(&l.ID, &l.BusinessName, &l.ContactName, &l.Mobile, &l.Address, &l.GSTNumber, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("ledger %s: %w", id, ErrLedgerNotFound)
		}
		return nil, fmt.Errorf("get ledger %s: %w", id, err)
	}
	return l, nil
}
