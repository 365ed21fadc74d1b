package core

import (
	"fmt"
	"sort"
)

// AssignVoucherReferences derives the display reference for every payment
// voucher of one ledger, keyed by voucher ID. References have the form
// VCH-<C|D>-<YYYY><MM><seq>, where the year/month come from the voucher's
// own date and seq is a 3-digit 1-based counter kept separately for
// Credit and Debit vouchers.
//
// The counters run over the lifetime of the ledger and do not reset at
// month boundaries; only the label's month portion follows the voucher
// date. References are recomputed on every read instead of being stored,
// so the derivation must be deterministic: vouchers are stably sorted by
// date with ties broken by ID before the counters run.
func AssignVoucherReferences(vouchers []PaymentVoucher) (map[int]string, error) {
	sorted := make([]PaymentVoucher, len(vouchers))
	copy(sorted, vouchers)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		return sorted[i].ID < sorted[j].ID
	})

	refs := make(map[int]string, len(sorted))
	creditSeq, debitSeq := 0, 0
	for _, v := range sorted {
		var typeCode string
		var seq int
		switch v.PaymentType {
		case PaymentCredit:
			creditSeq++
			typeCode, seq = "C", creditSeq
		case PaymentDebit:
			debitSeq++
			typeCode, seq = "D", debitSeq
		default:
			return nil, fmt.Errorf("payment voucher %d: %w: %q", v.ID, ErrUnknownPaymentType, v.PaymentType)
		}
		refs[v.ID] = fmt.Sprintf("VCH-%s-%d%02d%03d", typeCode, v.Date.Year(), int(v.Date.Month()), seq)
	}
	return refs, nil
}
