package app

import (
	"context"
)

// ApplicationService is the single interface all UI adapters call.
// It decouples presentation from business logic. Implementations must
// contain no display logic of any kind; amounts stay exact decimals and
// rounding happens in the adapter rendering them.
type ApplicationService interface {
	// ListLedgers returns all business partner ledgers.
	ListLedgers(ctx context.Context) (*LedgerListResult, error)

	// GetLedger returns one ledger by ID.
	GetLedger(ctx context.Context, ledgerID string) (*LedgerResult, error)

	// GetPassbook returns one page of the merged statement for a ledger,
	// newest-first. page is 1-based; a page past the end is empty.
	GetPassbook(ctx context.Context, ledgerID string, page, pageSize int) (*PassbookResult, error)

	// GetVendorPassbook returns one page of the debit-only sub-statement
	// built from the challans where the ledger is the vendor party.
	GetVendorPassbook(ctx context.Context, ledgerID string, page, pageSize int) (*PassbookResult, error)

	// GetLedgerSummary returns total credit, total debit, and net balance
	// for the ledger's dashboard tiles.
	GetLedgerSummary(ctx context.Context, ledgerID string) (*SummaryResult, error)

	// ListPaymentVouchers returns the ledger's payment vouchers
	// newest-first with their recomputed references.
	ListPaymentVouchers(ctx context.Context, ledgerID string) (*VoucherListResult, error)

	// AuthenticateUser verifies credentials and returns a session on success.
	AuthenticateUser(ctx context.Context, username, password string) (*UserSession, error)

	// GetUser returns a user profile by ID.
	GetUser(ctx context.Context, userID int) (*UserResult, error)

	// LoadStats returns the record counts for the dashboard landing page.
	LoadStats(ctx context.Context) (*StatsResult, error)
}
