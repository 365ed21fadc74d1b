// verify-db checks database connectivity and schema, then runs a
// consistency probe over live data: for every ledger, the aggregated
// summary balance must equal the newest statement row's running balance.
//
// Usage: go run ./cmd/verify-db
package main

import (
	"context"
	"log"
	"time"

	"textile-ledger/internal/core"
	"textile-ledger/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("[CONNECT] %v", err)
	}
	defer pool.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		log.Fatalf("[CONNECT] ping failed: %v", err)
	}
	log.Println("[CONNECT] success")

	for _, table := range []string{"ledgers", "weaver_challans", "payment_vouchers", "users"} {
		var count int
		if err := pool.QueryRow(ctx, "SELECT count(*) FROM "+table).Scan(&count); err != nil {
			log.Fatalf("[SCHEMA] table %s: %v", table, err)
		}
		log.Printf("[SCHEMA] %s: %d rows", table, count)
	}

	source := core.NewPgSource(pool)
	statements := core.NewStatementService(source)
	ledgers := core.NewLedgerService(pool)

	all, err := ledgers.ListLedgers(ctx)
	if err != nil {
		log.Fatalf("[PROBE] list ledgers: %v", err)
	}

	mismatches := 0
	for _, l := range all {
		rows, err := statements.BuildStatement(ctx, l.ID)
		if err != nil {
			log.Fatalf("[PROBE] ledger %s: build statement: %v", l.ID, err)
		}
		summary, err := statements.Summarize(ctx, l.ID)
		if err != nil {
			log.Fatalf("[PROBE] ledger %s: summarize: %v", l.ID, err)
		}
		if len(rows) == 0 {
			if !summary.Balance.IsZero() {
				mismatches++
				log.Printf("[PROBE] ledger %s (%s): no rows but summary balance %s",
					l.ID, l.BusinessName, summary.Balance)
			}
			continue
		}
		newest := rows[0].Balance
		if !summary.Balance.Equal(newest) {
			mismatches++
			log.Printf("[PROBE] ledger %s (%s): summary balance %s != newest row balance %s",
				l.ID, l.BusinessName, summary.Balance, newest)
			continue
		}
		log.Printf("[PROBE] ledger %s (%s): %d rows, balance %s ok",
			l.ID, l.BusinessName, len(rows), newest)
	}

	if mismatches > 0 {
		log.Fatalf("[DONE] %d ledger(s) with balance mismatch", mismatches)
	}
	log.Println("[DONE] All ledgers consistent.")
}
