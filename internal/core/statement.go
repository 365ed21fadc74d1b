package core

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// StatementService reconstructs the passbook view for a ledger: a
// chronologically folded, newest-first statement with running balances,
// plus the matching totals summary.
type StatementService interface {
	// BuildStatement merges production challans, vendor-role challans, and
	// payment vouchers for the ledger into a single statement. Rows are
	// returned newest-first; each Balance is the value from the ascending
	// chronological fold, not recomputed after reversal.
	BuildStatement(ctx context.Context, ledgerID string) ([]StatementRow, error)

	// VendorStatement builds a debit-only sub-statement from a caller
	// supplied set of vendor challans. No other source is consulted.
	VendorStatement(challans []WeaverChallan) []StatementRow

	// Summarize folds the same sources as BuildStatement into totals
	// without materializing per-row detail. Its Balance always equals the
	// newest row's Balance from BuildStatement over the same inputs.
	Summarize(ctx context.Context, ledgerID string) (LedgerSummary, error)
}

type statementService struct {
	source TransactionSource
}

// NewStatementService constructs a StatementService over the given source.
func NewStatementService(source TransactionSource) StatementService {
	return &statementService{source: source}
}

// gather fans out the three independent source reads and waits for all of
// them. A failed fetch aborts the whole build; computing a statement over
// a partial source set would corrupt the financial total.
func (s *statementService) gather(ctx context.Context, ledgerID string) (production, vendor []WeaverChallan, vouchers []PaymentVoucher, err error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		production, err = s.source.ProductionChallans(gctx, ledgerID)
		return err
	})
	g.Go(func() error {
		var err error
		vendor, err = s.source.VendorChallans(gctx, ledgerID)
		return err
	})
	g.Go(func() error {
		var err error
		vouchers, err = s.source.PaymentVouchers(gctx, ledgerID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, nil, fmt.Errorf("ledger %s: fetch sources: %w", ledgerID, err)
	}
	return production, vendor, vouchers, nil
}

func (s *statementService) BuildStatement(ctx context.Context, ledgerID string) ([]StatementRow, error) {
	production, vendor, vouchers, err := s.gather(ctx, ledgerID)
	if err != nil {
		return nil, err
	}

	txs := make([]Transaction, 0, len(production)+len(vendor)+len(vouchers))
	for _, c := range production {
		txs = append(txs, NormalizeWeaverChallan(c))
	}
	for _, c := range vendor {
		txs = append(txs, NormalizeVendorChallan(c))
	}

	refs, err := AssignVoucherReferences(vouchers)
	if err != nil {
		return nil, fmt.Errorf("ledger %s: %w", ledgerID, err)
	}
	for _, v := range vouchers {
		tx, err := NormalizeVoucher(v, refs[v.ID])
		if err != nil {
			return nil, fmt.Errorf("ledger %s: %w", ledgerID, err)
		}
		txs = append(txs, tx)
	}

	return foldStatement(txs), nil
}

func (s *statementService) VendorStatement(challans []WeaverChallan) []StatementRow {
	txs := make([]Transaction, 0, len(challans))
	for _, c := range challans {
		txs = append(txs, NormalizeVendorChallan(c))
	}
	return foldStatement(txs)
}

func (s *statementService) Summarize(ctx context.Context, ledgerID string) (LedgerSummary, error) {
	production, vendor, vouchers, err := s.gather(ctx, ledgerID)
	if err != nil {
		return LedgerSummary{}, err
	}

	totalCredit, totalDebit := decimal.Zero, decimal.Zero
	for _, c := range production {
		totalCredit = totalCredit.Add(NormalizeWeaverChallan(c).Credit)
	}
	for _, c := range vendor {
		totalDebit = totalDebit.Add(NormalizeVendorChallan(c).Debit)
	}
	for _, v := range vouchers {
		// The remark is discarded here, so no reference is derived.
		tx, err := NormalizeVoucher(v, "")
		if err != nil {
			return LedgerSummary{}, fmt.Errorf("ledger %s: %w", ledgerID, err)
		}
		totalCredit = totalCredit.Add(tx.Credit)
		totalDebit = totalDebit.Add(tx.Debit)
	}

	return LedgerSummary{
		TotalCredit: totalCredit,
		TotalDebit:  totalDebit,
		Balance:     totalCredit.Sub(totalDebit),
	}, nil
}

// foldStatement sorts transactions by date ascending (stable, so rows
// sharing a date keep their source order), folds the running balance from
// a zero seed, and reverses the result for newest-first presentation.
func foldStatement(txs []Transaction) []StatementRow {
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.Before(txs[j].Date)
	})

	rows := make([]StatementRow, len(txs))
	running := decimal.Zero
	for i, tx := range txs {
		running = running.Add(tx.Credit).Sub(tx.Debit)
		rows[i] = StatementRow{Transaction: tx, Balance: running}
	}

	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows
}

// Page returns the 1-based page of rows for the given page size. Pages
// past the end of the statement yield an empty slice, not an error.
func Page(rows []StatementRow, page, pageSize int) []StatementRow {
	if page < 1 || pageSize < 1 {
		return []StatementRow{}
	}
	start := (page - 1) * pageSize
	if start >= len(rows) {
		return []StatementRow{}
	}
	end := start + pageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}
