package core_test

import (
	"context"
	"os"
	"testing"

	"textile-ledger/internal/core"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const (
	weaverLedgerID = "11111111-1111-1111-1111-111111111111"
	vendorLedgerID = "22222222-2222-2222-2222-222222222222"
)

func setupTestDB(t *testing.T) *pgxpool.Pool {
	_ = godotenv.Load("../../.env")

	// Use a dedicated TEST database to avoid wiping the live app database.
	// Set TEST_DATABASE_URL in your .env or environment to run integration tests.
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set — skipping integration test to protect live database")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	_, err = pool.Exec(ctx, `
		TRUNCATE TABLE payment_vouchers, weaver_challans, ledgers, users CASCADE;

		INSERT INTO ledgers (id, business_name, gst_number) VALUES
		('`+weaverLedgerID+`', 'Shree Weaving Works', '24AAAAA0000A1Z5'),
		('`+vendorLedgerID+`', 'Patel Yarn Traders', NULL);

		INSERT INTO weaver_challans
			(ledger_id, challan_no, challan_date, transport_charge, vendor_amount, sgst, cgst, igst, vendor_ledger_id, vendor_invoice_number)
		VALUES
		('`+weaverLedgerID+`', 'BNG-CH-20240110-001', '2024-01-10', 50, 1000, '9%', '9%', NULL, NULL, NULL),
		('`+weaverLedgerID+`', 'BNG-CH-20240205-002', '2024-02-05', NULL, 500, 'Not Applicable', NULL, '18%', '`+vendorLedgerID+`', 'INV-2024-07');

		INSERT INTO payment_vouchers (ledger_id, date, payment_for, payment_type, amount) VALUES
		('`+weaverLedgerID+`', '2024-01-15', 'Advance payment', 'Credit', 200),
		('`+weaverLedgerID+`', '2024-03-01', 'Settlement', 'Debit', 400);
	`)
	if err != nil {
		t.Fatalf("Failed to seed test database: %v", err)
	}

	return pool
}

func TestStatement_Postgres(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	svc := core.NewStatementService(core.NewPgSource(pool))
	ctx := context.Background()

	rows, err := svc.BuildStatement(ctx, weaverLedgerID)
	if err != nil {
		t.Fatalf("BuildStatement failed: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(rows))
	}

	// Chronological fold: +1230 challan, +200 voucher, +590 challan,
	// -400 voucher. Presented newest-first.
	wantBalances := []string{"1620", "2020", "1430", "1230"}
	for i, want := range wantBalances {
		if !rows[i].Balance.Equal(decimal.RequireFromString(want)) {
			t.Errorf("rows[%d].Balance = %s, want %s", i, rows[i].Balance, want)
		}
	}
	if rows[0].Remark != "VCH-D-202403001" {
		t.Errorf("debit voucher remark = %q, want VCH-D-202403001", rows[0].Remark)
	}
	if rows[2].Remark != "VCH-C-202401001" {
		t.Errorf("credit voucher remark = %q, want VCH-C-202401001", rows[2].Remark)
	}

	summary, err := svc.Summarize(ctx, weaverLedgerID)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if !summary.Balance.Equal(rows[0].Balance) {
		t.Errorf("summary.Balance = %s, newest row balance = %s", summary.Balance, rows[0].Balance)
	}
}

func TestStatement_Postgres_VendorRole(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	svc := core.NewStatementService(core.NewPgSource(pool))
	ctx := context.Background()

	// The vendor ledger sees the linked challan as its only row: a debit
	// of 500 + 18% IGST, remarked with the vendor invoice number.
	rows, err := svc.BuildStatement(ctx, vendorLedgerID)
	if err != nil {
		t.Fatalf("BuildStatement failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].Detail != core.DetailVendorChallan || rows[0].Remark != "INV-2024-07" {
		t.Errorf("row = %+v, want vendor challan remarked INV-2024-07", rows[0].Transaction)
	}
	if !rows[0].Debit.Equal(decimal.NewFromInt(590)) || !rows[0].Balance.Equal(decimal.NewFromInt(-590)) {
		t.Errorf("debit/balance = %s/%s, want 590/-590", rows[0].Debit, rows[0].Balance)
	}

	summary, err := svc.Summarize(ctx, vendorLedgerID)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if !summary.Balance.Equal(decimal.NewFromInt(-590)) {
		t.Errorf("summary.Balance = %s, want -590", summary.Balance)
	}
}

func TestLedgerService_Postgres(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	svc := core.NewLedgerService(pool)
	ctx := context.Background()

	ledgers, err := svc.ListLedgers(ctx)
	if err != nil {
		t.Fatalf("ListLedgers failed: %v", err)
	}
	if len(ledgers) != 2 {
		t.Fatalf("got %d ledgers, want 2", len(ledgers))
	}
	if ledgers[0].BusinessName != "Patel Yarn Traders" {
		t.Errorf("ledgers[0] = %q, want alphabetical order", ledgers[0].BusinessName)
	}

	ledger, err := svc.GetLedger(ctx, weaverLedgerID)
	if err != nil {
		t.Fatalf("GetLedger failed: %v", err)
	}
	if ledger.BusinessName != "Shree Weaving Works" {
		t.Errorf("GetLedger name = %q", ledger.BusinessName)
	}

	if _, err := svc.GetLedger(ctx, "33333333-3333-3333-3333-333333333333"); err == nil {
		t.Error("expected error for unknown ledger, got nil")
	}
}

func TestVoucherService_Postgres(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	svc := core.NewVoucherService(core.NewPgSource(pool))
	vouchers, err := svc.ListVouchers(context.Background(), weaverLedgerID)
	if err != nil {
		t.Fatalf("ListVouchers failed: %v", err)
	}
	if len(vouchers) != 2 {
		t.Fatalf("got %d vouchers, want 2", len(vouchers))
	}

	// Newest first, references recomputed on read.
	if vouchers[0].Reference != "VCH-D-202403001" {
		t.Errorf("vouchers[0].Reference = %q, want VCH-D-202403001", vouchers[0].Reference)
	}
	if vouchers[1].Reference != "VCH-C-202401001" {
		t.Errorf("vouchers[1].Reference = %q, want VCH-C-202401001", vouchers[1].Reference)
	}
}
