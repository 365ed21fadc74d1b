package core

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Transaction detail labels for challan-backed rows. Payment vouchers
// carry their own purpose text instead.
const (
	DetailWeaverChallan = "Weaver Challan"
	DetailVendorChallan = "Vendor Challan"
)

// ErrUnknownPaymentType marks a payment voucher whose payment_type is
// neither "Credit" nor "Debit". Polarity is never guessed for such rows.
var ErrUnknownPaymentType = errors.New("unknown payment type")

// sourceKind tags the origin of a raw row flowing into normalization.
type sourceKind int

const (
	kindWeaverChallan sourceKind = iota
	kindVendorChallan
	kindPaymentVoucher
)

// sourceRecord is the tagged variant over the three raw source shapes.
// Keeping normalization as one exhaustive switch over the tag keeps the
// credit/debit polarity invariant enforceable in a single place.
type sourceRecord struct {
	kind       sourceKind
	challan    *WeaverChallan
	voucher    *PaymentVoucher
	voucherRef string
}

func normalize(rec sourceRecord) (Transaction, error) {
	switch rec.kind {
	case kindWeaverChallan:
		c := rec.challan
		credit := c.TransportCharge.Add(TaxInclusiveAmount(c.VendorAmount, c.SGST, c.CGST, c.IGST))
		return Transaction{
			Date:   c.ChallanDate,
			Detail: DetailWeaverChallan,
			Remark: c.ChallanNo,
			Credit: credit,
			Debit:  decimal.Zero,
		}, nil

	case kindVendorChallan:
		// The weaver side records money owed to the ledger's party (credit);
		// the vendor side records money routed out to an external vendor (debit).
		c := rec.challan
		remark := c.ChallanNo
		if c.VendorInvoiceNumber != nil && *c.VendorInvoiceNumber != "" {
			remark = *c.VendorInvoiceNumber
		}
		return Transaction{
			Date:   c.ChallanDate,
			Detail: DetailVendorChallan,
			Remark: remark,
			Credit: decimal.Zero,
			Debit:  TaxInclusiveAmount(c.VendorAmount, c.SGST, c.CGST, c.IGST),
		}, nil

	case kindPaymentVoucher:
		v := rec.voucher
		tx := Transaction{
			Date:   v.Date,
			Detail: v.PaymentFor,
			Remark: rec.voucherRef,
			Credit: decimal.Zero,
			Debit:  decimal.Zero,
		}
		switch v.PaymentType {
		case PaymentCredit:
			tx.Credit = v.Amount
		case PaymentDebit:
			tx.Debit = v.Amount
		default:
			return Transaction{}, fmt.Errorf("payment voucher %d: %w: %q", v.ID, ErrUnknownPaymentType, v.PaymentType)
		}
		return tx, nil
	}
	return Transaction{}, fmt.Errorf("unhandled source kind %d", rec.kind)
}

// NormalizeWeaverChallan maps a challan's weaver side to a credit transaction.
func NormalizeWeaverChallan(c WeaverChallan) Transaction {
	tx, _ := normalize(sourceRecord{kind: kindWeaverChallan, challan: &c})
	return tx
}

// NormalizeVendorChallan maps a challan's vendor side to a debit transaction.
func NormalizeVendorChallan(c WeaverChallan) Transaction {
	tx, _ := normalize(sourceRecord{kind: kindVendorChallan, challan: &c})
	return tx
}

// NormalizeVoucher maps a payment voucher to a transaction. ref is the
// recomputed voucher reference used as the remark; the summary path
// passes an empty string since it discards per-row detail anyway.
func NormalizeVoucher(v PaymentVoucher, ref string) (Transaction, error) {
	return normalize(sourceRecord{kind: kindPaymentVoucher, voucher: &v, voucherRef: ref})
}
