package core

import (
	"context"
	"fmt"
	"sort"
)

// VoucherWithReference pairs a payment voucher with its recomputed
// display reference.
type VoucherWithReference struct {
	PaymentVoucher
	Reference string
}

// VoucherService lists payment vouchers with their derived references.
// References are never stored; they are recomputed from the ledger's
// full voucher set on every read.
type VoucherService interface {
	// ListVouchers returns all payment vouchers for the ledger,
	// newest-first, each carrying its reference.
	ListVouchers(ctx context.Context, ledgerID string) ([]VoucherWithReference, error)
}

type voucherService struct {
	source TransactionSource
}

// NewVoucherService constructs a VoucherService over the given source.
func NewVoucherService(source TransactionSource) VoucherService {
	return &voucherService{source: source}
}

func (s *voucherService) ListVouchers(ctx context.Context, ledgerID string) ([]VoucherWithReference, error) {
	vouchers, err := s.source.PaymentVouchers(ctx, ledgerID)
	if err != nil {
		return nil, fmt.Errorf("ledger %s: fetch payment vouchers: %w", ledgerID, err)
	}

	refs, err := AssignVoucherReferences(vouchers)
	if err != nil {
		return nil, fmt.Errorf("ledger %s: %w", ledgerID, err)
	}

	out := make([]VoucherWithReference, len(vouchers))
	for i, v := range vouchers {
		out[i] = VoucherWithReference{PaymentVoucher: v, Reference: refs[v.ID]}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}
