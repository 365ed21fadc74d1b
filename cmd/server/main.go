package main

import (
	"context"
	"log"
	"net/http"
	"os"

	webAdapter "textile-ledger/internal/adapters/web"
	"textile-ledger/internal/app"
	"textile-ledger/internal/core"
	"textile-ledger/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	source := core.NewPgSource(pool)
	ledgerService := core.NewLedgerService(pool)
	statementService := core.NewStatementService(source)
	voucherService := core.NewVoucherService(source)
	userService := core.NewUserService(pool)
	statsService := core.NewStatsService(pool)

	svc := app.NewAppService(ledgerService, statementService, voucherService, userService, statsService, source)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	handler := webAdapter.NewHandler(svc, allowedOrigins, jwtSecret)

	log.Printf("server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
