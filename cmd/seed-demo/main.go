// seed-demo is a one-shot tool to load a small demo dataset: a few
// party ledgers, weaver challans (including one with a vendor link),
// payment vouchers, and a dashboard user.
//
// Usage: go run ./cmd/seed-demo
package main

import (
	"context"
	"log"
	"os"

	"textile-ledger/internal/db"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer pool.Close()

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatalf("Failed to begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)

	log.Println("Clearing demo transaction data...")
	_, err = tx.Exec(ctx, `
		DELETE FROM payment_vouchers WHERE ledger_id IN (
			SELECT id FROM ledgers WHERE gst_number LIKE 'DEMO%'
		);
		DELETE FROM weaver_challans WHERE ledger_id IN (
			SELECT id FROM ledgers WHERE gst_number LIKE 'DEMO%'
		);
	`)
	if err != nil {
		log.Fatalf("Failed to clear demo transactions: %v", err)
	}

	log.Println("Restoring demo ledgers...")
	_, err = tx.Exec(ctx, `
		INSERT INTO ledgers (id, business_name, contact_name, mobile, address, gst_number)
		VALUES
		  ('11111111-1111-1111-1111-111111111111', 'Balaji Weaving Works', 'R. Subramani', '9876543210', 'Erode, Tamil Nadu',   'DEMO33AAAA0001A1Z1'),
		  ('22222222-2222-2222-2222-222222222222', 'Sri Textile Traders',  'K. Meena',     '9876500011', 'Salem, Tamil Nadu',   'DEMO33BBBB0002B2Z2'),
		  ('33333333-3333-3333-3333-333333333333', 'Kumar Yarn Agency',    'P. Kumar',     '9845012345', 'Tiruppur, Tamil Nadu','DEMO33CCCC0003C3Z3')
		ON CONFLICT (id) DO UPDATE
		  SET business_name = EXCLUDED.business_name,
		      contact_name  = EXCLUDED.contact_name,
		      mobile        = EXCLUDED.mobile,
		      address       = EXCLUDED.address,
		      gst_number    = EXCLUDED.gst_number;
	`)
	if err != nil {
		log.Fatalf("Failed to restore ledgers: %v", err)
	}

	log.Println("Restoring demo challans...")
	_, err = tx.Exec(ctx, `
		INSERT INTO weaver_challans
		  (ledger_id, challan_no, challan_date, transport_charge, vendor_amount,
		   sgst, cgst, igst, vendor_ledger_id, vendor_invoice_number)
		VALUES
		  ('11111111-1111-1111-1111-111111111111', 'DEMO-CH-20240110-001', '2024-01-10',  50.00, 1000.00, '9%',  '9%', NULL, NULL, NULL),
		  ('11111111-1111-1111-1111-111111111111', 'DEMO-CH-20240205-002', '2024-02-05',   0.00,  500.00, NULL, NULL, '18%',
		   '22222222-2222-2222-2222-222222222222', 'INV-2024-07'),
		  ('33333333-3333-3333-3333-333333333333', 'DEMO-CH-20240312-003', '2024-03-12', 120.00, 2400.00, 'Not Applicable', 'Not Applicable', NULL, NULL, NULL)
		ON CONFLICT (challan_no) DO NOTHING;
	`)
	if err != nil {
		log.Fatalf("Failed to restore challans: %v", err)
	}

	log.Println("Restoring demo payment vouchers...")
	_, err = tx.Exec(ctx, `
		INSERT INTO payment_vouchers (ledger_id, date, payment_for, payment_type, amount)
		VALUES
		  ('11111111-1111-1111-1111-111111111111', '2024-01-15', 'Advance received',      'Credit', 200.00),
		  ('11111111-1111-1111-1111-111111111111', '2024-03-01', 'Payment to weaver',     'Debit',  400.00),
		  ('33333333-3333-3333-3333-333333333333', '2024-03-20', 'Yarn purchase settled', 'Debit', 1500.00);
	`)
	if err != nil {
		log.Fatalf("Failed to restore vouchers: %v", err)
	}

	log.Println("Restoring demo user...")
	password := os.Getenv("DEMO_USER_PASSWORD")
	if password == "" {
		password = "demo-password"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO users (username, email, password_hash, role, is_active)
		VALUES ('demo', 'demo@example.com', $1, 'admin', true)
		ON CONFLICT (username) DO UPDATE
		  SET password_hash = EXCLUDED.password_hash,
		      is_active = true;
	`, string(hash))
	if err != nil {
		log.Fatalf("Failed to restore demo user: %v", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Fatalf("Failed to commit: %v", err)
	}

	log.Println("Demo data restored successfully.")
}
