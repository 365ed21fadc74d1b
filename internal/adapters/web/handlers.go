package web

import (
	"net/http"

	"textile-ledger/internal/app"

	"github.com/go-chi/chi/v5"
)

// Handler holds the ApplicationService and the chi router.
type Handler struct {
	svc       app.ApplicationService
	jwtSecret string
}

// NewHandler creates and wires the chi router with all routes.
func NewHandler(svc app.ApplicationService, allowedOrigins, jwtSecret string) http.Handler {
	h := &Handler{svc: svc, jwtSecret: jwtSecret}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))

	// ── Public ────────────────────────────────────────────────────────────────
	r.Get("/api/health", h.health)
	r.Post("/api/auth/login", h.login)
	r.Post("/api/auth/logout", h.logout)

	// ── Protected API (401 JSON if unauthenticated) ──────────────────────────
	r.Group(func(r chi.Router) {
		r.Use(h.RequireAuth)
		r.Use(RequestBodyLimit(1 << 20)) // 1 MB

		r.Get("/api/auth/me", h.me)

		r.Get("/api/stats", h.stats)

		r.Get("/api/ledgers", h.listLedgers)
		r.Get("/api/ledgers/{id}", h.getLedger)
		r.Get("/api/ledgers/{id}/passbook", h.passbook)
		r.Get("/api/ledgers/{id}/vendor-passbook", h.vendorPassbook)
		r.Get("/api/ledgers/{id}/summary", h.ledgerSummary)
		r.Get("/api/ledgers/{id}/payment-vouchers", h.paymentVouchers)
	})

	return r
}

// health handles GET /api/health.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// stats handles GET /api/stats.
func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.LoadStats(r.Context())
	if err != nil {
		writeError(w, r, "failed to load stats", "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}

	type statsJSON struct {
		Ledgers         int `json:"ledgers"`
		WeaverChallans  int `json:"weaver_challans"`
		PaymentVouchers int `json:"payment_vouchers"`
	}
	writeJSON(w, statsJSON{
		Ledgers:         result.Stats.Ledgers,
		WeaverChallans:  result.Stats.WeaverChallans,
		PaymentVouchers: result.Stats.PaymentVouchers,
	})
}
