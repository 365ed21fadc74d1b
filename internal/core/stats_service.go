package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DashboardStats holds the record counts shown on the dashboard landing page.
type DashboardStats struct {
	Ledgers         int
	WeaverChallans  int
	PaymentVouchers int
}

// StatsService reports aggregate record counts.
type StatsService interface {
	LoadStats(ctx context.Context) (*DashboardStats, error)
}

type statsService struct {
	pool *pgxpool.Pool
}

// NewStatsService constructs a StatsService backed by PostgreSQL.
func NewStatsService(pool *pgxpool.Pool) StatsService {
	return &statsService{pool: pool}
}

func (s *statsService) LoadStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	err := s.pool.QueryRow(ctx, `
		SELECT
			(SELECT count(*) FROM ledgers),
			(SELECT count(*) FROM weaver_challans),
			(SELECT count(*) FROM payment_vouchers)`,
	).Scan(&stats.Ledgers, &stats.WeaverChallans, &stats.PaymentVouchers)
	if err != nil {
		return nil, fmt.Errorf("load dashboard stats: %w", err)
	}
	return stats, nil
}
