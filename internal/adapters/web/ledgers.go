package web

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"textile-ledger/internal/app"
	"textile-ledger/internal/core"

	"github.com/go-chi/chi/v5"
)

// dateLayout is the wire format for all statement dates.
const dateLayout = "2006-01-02"

// ledgerJSON is the wire shape of a ledger record.
type ledgerJSON struct {
	ID           string  `json:"id"`
	BusinessName string  `json:"business_name"`
	ContactName  *string `json:"contact_name,omitempty"`
	Mobile       *string `json:"mobile,omitempty"`
	Address      *string `json:"address,omitempty"`
	GSTNumber    *string `json:"gst_number,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

// statementRowJSON is the wire shape of one passbook row. Amounts are
// rounded to two decimals here, at the presentation boundary; the engine
// keeps them exact so the running balance never accumulates rounding error.
type statementRowJSON struct {
	Date    string `json:"date"`
	Detail  string `json:"detail"`
	Remark  string `json:"remark"`
	Credit  string `json:"credit"`
	Debit   string `json:"debit"`
	Balance string `json:"balance"`
}

type passbookJSON struct {
	LedgerID   string             `json:"ledger_id"`
	Rows       []statementRowJSON `json:"rows"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalRows  int                `json:"total_rows"`
	TotalPages int                `json:"total_pages"`
}

func toLedgerJSON(l core.Ledger) ledgerJSON {
	return ledgerJSON{
		ID:           l.ID,
		BusinessName: l.BusinessName,
		ContactName:  l.ContactName,
		Mobile:       l.Mobile,
		Address:      l.Address,
		GSTNumber:    l.GSTNumber,
		CreatedAt:    l.CreatedAt.Format(dateLayout),
	}
}

func toPassbookJSON(result *app.PassbookResult) passbookJSON {
	rows := make([]statementRowJSON, len(result.Rows))
	for i, row := range result.Rows {
		rows[i] = statementRowJSON{
			Date:    row.Date.Format(dateLayout),
			Detail:  row.Detail,
			Remark:  row.Remark,
			Credit:  row.Credit.StringFixed(2),
			Debit:   row.Debit.StringFixed(2),
			Balance: row.Balance.StringFixed(2),
		}
	}
	return passbookJSON{
		LedgerID:   result.LedgerID,
		Rows:       rows,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalRows:  result.TotalRows,
		TotalPages: result.TotalPages,
	}
}

// statementUnavailable maps any statement build failure to the generic
// unavailable state. A partial or inconsistent balance is never rendered.
func statementUnavailable(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("statement unavailable: %v", err)
	writeError(w, r, "statement unavailable", "DATA_UNAVAILABLE", http.StatusServiceUnavailable)
}

// pageParams reads page and page_size query parameters with defaults.
func pageParams(r *http.Request) (page, pageSize int) {
	page, pageSize = 1, 10
	if raw := r.URL.Query().Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			page = n
		}
	}
	if raw := r.URL.Query().Get("page_size"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 100 {
			pageSize = n
		}
	}
	return page, pageSize
}

// listLedgers handles GET /api/ledgers.
func (h *Handler) listLedgers(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListLedgers(r.Context())
	if err != nil {
		writeError(w, r, "failed to list ledgers", "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	out := make([]ledgerJSON, len(result.Ledgers))
	for i, l := range result.Ledgers {
		out[i] = toLedgerJSON(l)
	}
	writeJSON(w, out)
}

// getLedger handles GET /api/ledgers/{id}.
func (h *Handler) getLedger(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetLedger(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, core.ErrLedgerNotFound) {
			writeError(w, r, "ledger not found", "NOT_FOUND", http.StatusNotFound)
			return
		}
		writeError(w, r, "failed to load ledger", "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeJSON(w, toLedgerJSON(*result.Ledger))
}

// passbook handles GET /api/ledgers/{id}/passbook?page=&page_size=.
func (h *Handler) passbook(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pageParams(r)
	result, err := h.svc.GetPassbook(r.Context(), chi.URLParam(r, "id"), page, pageSize)
	if err != nil {
		statementUnavailable(w, r, err)
		return
	}
	writeJSON(w, toPassbookJSON(result))
}

// vendorPassbook handles GET /api/ledgers/{id}/vendor-passbook?page=&page_size=.
func (h *Handler) vendorPassbook(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pageParams(r)
	result, err := h.svc.GetVendorPassbook(r.Context(), chi.URLParam(r, "id"), page, pageSize)
	if err != nil {
		statementUnavailable(w, r, err)
		return
	}
	writeJSON(w, toPassbookJSON(result))
}

// ledgerSummary handles GET /api/ledgers/{id}/summary.
func (h *Handler) ledgerSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetLedgerSummary(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		statementUnavailable(w, r, err)
		return
	}

	type summaryJSON struct {
		LedgerID    string `json:"ledger_id"`
		TotalCredit string `json:"total_credit"`
		TotalDebit  string `json:"total_debit"`
		Balance     string `json:"balance"`
	}
	writeJSON(w, summaryJSON{
		LedgerID:    result.LedgerID,
		TotalCredit: result.Summary.TotalCredit.StringFixed(2),
		TotalDebit:  result.Summary.TotalDebit.StringFixed(2),
		Balance:     result.Summary.Balance.StringFixed(2),
	})
}

// paymentVouchers handles GET /api/ledgers/{id}/payment-vouchers.
func (h *Handler) paymentVouchers(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListPaymentVouchers(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		statementUnavailable(w, r, err)
		return
	}

	type voucherJSON struct {
		Reference   string `json:"reference"`
		Date        string `json:"date"`
		PaymentFor  string `json:"payment_for"`
		PaymentType string `json:"payment_type"`
		Amount      string `json:"amount"`
	}
	out := make([]voucherJSON, len(result.Vouchers))
	for i, v := range result.Vouchers {
		out[i] = voucherJSON{
			Reference:   v.Reference,
			Date:        v.Date.Format(dateLayout),
			PaymentFor:  v.PaymentFor,
			PaymentType: string(v.PaymentType),
			Amount:      v.Amount.StringFixed(2),
		}
	}
	writeJSON(w, out)
}
