package app

import "textile-ledger/internal/core"

// LedgerListResult is returned by ListLedgers.
type LedgerListResult struct {
	Ledgers []core.Ledger
}

// LedgerResult is returned by GetLedger.
type LedgerResult struct {
	Ledger *core.Ledger
}

// PassbookResult is one page of a ledger statement.
type PassbookResult struct {
	LedgerID   string
	Rows       []core.StatementRow
	Page       int
	PageSize   int
	TotalRows  int
	TotalPages int
}

// SummaryResult is returned by GetLedgerSummary.
type SummaryResult struct {
	LedgerID string
	Summary  core.LedgerSummary
}

// VoucherListResult is returned by ListPaymentVouchers.
type VoucherListResult struct {
	LedgerID string
	Vouchers []core.VoucherWithReference
}

// UserSession identifies an authenticated user.
type UserSession struct {
	UserID   int
	Username string
	Role     string
}

// UserResult is returned by GetUser.
type UserResult struct {
	User *core.User
}

// StatsResult is returned by LoadStats.
type StatsResult struct {
	Stats *core.DashboardStats
}
