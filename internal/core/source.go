package core

import "context"

// TransactionSource is the read-only data-access collaborator the
// statement engine consumes. Implementations return fully materialized
// record sets already filtered to one ledger; the engine itself never
// touches storage.
type TransactionSource interface {
	// ProductionChallans returns challans where the ledger is the weaver party.
	ProductionChallans(ctx context.Context, ledgerID string) ([]WeaverChallan, error)

	// VendorChallans returns challans where the ledger is the vendor party.
	VendorChallans(ctx context.Context, ledgerID string) ([]WeaverChallan, error)

	// PaymentVouchers returns all payment vouchers for the ledger.
	PaymentVouchers(ctx context.Context, ledgerID string) ([]PaymentVoucher, error)
}
