package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type pgSource struct {
	pool *pgxpool.Pool
}

// NewPgSource constructs a TransactionSource backed by PostgreSQL.
func NewPgSource(pool *pgxpool.Pool) TransactionSource {
	return &pgSource{pool: pool}
}

const challanColumns = `
	id, ledger_id, challan_no, challan_date,
	COALESCE(transport_charge, 0), COALESCE(vendor_amount, 0),
	sgst, cgst, igst, vendor_ledger_id, vendor_invoice_number`

func (s *pgSource) ProductionChallans(ctx context.Context, ledgerID string) ([]WeaverChallan, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+challanColumns+`
		FROM weaver_challans
		WHERE ledger_id = $1`,
		ledgerID,
	)
	if err != nil {
		return nil, fmt.Errorf("query production challans: %w", err)
	}
	defer rows.Close()
	return scanChallans(rows)
}

func (s *pgSource) VendorChallans(ctx context.Context, ledgerID string) ([]WeaverChallan, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+challanColumns+`
		FROM weaver_challans
		WHERE vendor_ledger_id = $1`,
		ledgerID,
	)
	if err != nil {
		return nil, fmt.Errorf("query vendor challans: %w", err)
	}
	defer rows.Close()
	return scanChallans(rows)
}

func (s *pgSource) PaymentVouchers(ctx context.Context, ledgerID string) ([]PaymentVoucher, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, ledger_id, date, payment_for, payment_type, COALESCE(amount, 0)
		FROM payment_vouchers
		WHERE ledger_id = $1`,
		ledgerID,
	)
	if err != nil {
		return nil, fmt.Errorf("query payment vouchers: %w", err)
	}
	defer rows.Close()

	var vouchers []PaymentVoucher
	for rows.Next() {
		var v PaymentVoucher
		var paymentType string
		if err := rows.Scan(&v.ID, &v.LedgerID, &v.Date, &v.PaymentFor, &paymentType, &v.Amount); err != nil {
			return nil, fmt.Errorf("scan payment voucher: %w", err)
		}
		v.PaymentType = PaymentType(paymentType)
		vouchers = append(vouchers, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payment vouchers: %w", err)
	}
	return vouchers, nil
}

// rowScanner matches both pgx.Rows iteration and single-row scans.
type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanChallans(rows rowScanner) ([]WeaverChallan, error) {
	var challans []WeaverChallan
	for rows.Next() {
		var c WeaverChallan
		if err := rows.Scan(
			&c.ID, &c.LedgerID, &c.ChallanNo, &c.ChallanDate,
			&c.TransportCharge, &c.VendorAmount,
			&c.SGST, &c.CGST, &c.IGST, &c.VendorLedgerID, &c.VendorInvoiceNumber,
		); err != nil {
			return nil, fmt.Errorf("scan weaver challan: %w", err)
		}
		challans = append(challans, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate weaver challans: %w", err)
	}
	return challans, nil
}
