// Package memory provides an in-memory core.TransactionSource used by
// the pure engine tests. It is thread-safe for concurrent reads and
// writes.
package memory

import (
	"context"
	"sync"

	"textile-ledger/internal/core"
)

// Source holds challan and voucher rows in memory.
type Source struct {
	mu       sync.Mutex
	challans []core.WeaverChallan
	vouchers []core.PaymentVoucher
}

// NewSource returns an empty Source.
func NewSource() *Source {
	return &Source{}
}

// AddChallan registers a weaver challan row.
func (s *Source) AddChallan(c core.WeaverChallan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.challans = append(s.challans, c)
}

// AddVoucher registers a payment voucher row.
func (s *Source) AddVoucher(v core.PaymentVoucher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vouchers = append(s.vouchers, v)
}

func (s *Source) ProductionChallans(ctx context.Context, ledgerID string) ([]core.WeaverChallan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []core.WeaverChallan
	for _, c := range s.challans {
		if c.LedgerID == ledgerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *Source) VendorChallans(ctx context.Context, ledgerID string) ([]core.WeaverChallan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []core.WeaverChallan
	for _, c := range s.challans {
		if c.VendorLedgerID != nil && *c.VendorLedgerID == ledgerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *Source) PaymentVouchers(ctx context.Context, ledgerID string) ([]core.PaymentVoucher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []core.PaymentVoucher
	for _, v := range s.vouchers {
		if v.LedgerID == ledgerID {
			out = append(out, v)
		}
	}
	return out, nil
}

var _ core.TransactionSource = (*Source)(nil)
