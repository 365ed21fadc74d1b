package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ledger is a business partner account (weaver, trader, or vendor).
// A single ledger can appear as the weaver party on some challans and
// as the vendor party on others; that is a role distinction carried by
// the challan row, not a property of the ledger itself.
type Ledger struct {
	ID           string
	BusinessName string
	ContactName  *string
	Mobile       *string
	Address      *string
	GSTNumber    *string
	CreatedAt    time.Time
}

// WeaverChallan is a production/delivery document. LedgerID links the
// weaver party (credited); VendorLedgerID, when set, links the vendor
// party (debited) for the same physical document.
type WeaverChallan struct {
	ID                  int
	LedgerID            string
	ChallanNo           string
	ChallanDate         time.Time
	TransportCharge     decimal.Decimal
	VendorAmount        decimal.Decimal
	SGST                *string
	CGST                *string
	IGST                *string
	VendorLedgerID      *string
	VendorInvoiceNumber *string
}

// PaymentType is the polarity of a payment voucher.
type PaymentType string

const (
	PaymentCredit PaymentType = "Credit"
	PaymentDebit  PaymentType = "Debit"
)

// PaymentVoucher is a manually entered payment against a ledger.
// The numeric ID orders same-date vouchers for reference generation;
// it is never displayed.
type PaymentVoucher struct {
	ID          int
	LedgerID    string
	Date        time.Time
	PaymentFor  string
	PaymentType PaymentType
	Amount      decimal.Decimal
}

// Transaction is the common shape every source row is normalized into.
// Exactly one of Credit/Debit is non-zero per record.
type Transaction struct {
	Date   time.Time
	Detail string
	Remark string
	Credit decimal.Decimal
	Debit  decimal.Decimal
}

// StatementRow is a Transaction plus the running balance up to and
// including this row in chronological order.
type StatementRow struct {
	Transaction
	Balance decimal.Decimal
}

// LedgerSummary holds the passbook totals for one ledger.
type LedgerSummary struct {
	TotalCredit decimal.Decimal
	TotalDebit  decimal.Decimal
	Balance     decimal.Decimal
}
