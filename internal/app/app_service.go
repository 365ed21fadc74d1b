package app

import (
	"context"
	"fmt"

	"textile-ledger/internal/core"

	"golang.org/x/crypto/bcrypt"
)

const defaultPageSize = 10

type appService struct {
	ledgers    core.LedgerService
	statements core.StatementService
	vouchers   core.VoucherService
	users      core.UserService
	stats      core.StatsService
	source     core.TransactionSource
}

// NewAppService constructs an appService that satisfies ApplicationService.
func NewAppService(
	ledgers core.LedgerService,
	statements core.StatementService,
	vouchers core.VoucherService,
	users core.UserService,
	stats core.StatsService,
	source core.TransactionSource,
) ApplicationService {
	return &appService{
		ledgers:    ledgers,
		statements: statements,
		vouchers:   vouchers,
		users:      users,
		stats:      stats,
		source:     source,
	}
}

func (s *appService) ListLedgers(ctx context.Context) (*LedgerListResult, error) {
	ledgers, err := s.ledgers.ListLedgers(ctx)
	if err != nil {
		return nil, err
	}
	return &LedgerListResult{Ledgers: ledgers}, nil
}

func (s *appService) GetLedger(ctx context.Context, ledgerID string) (*LedgerResult, error) {
	ledger, err := s.ledgers.GetLedger(ctx, ledgerID)
	if err != nil {
		return nil, err
	}
	return &LedgerResult{Ledger: ledger}, nil
}

func (s *appService) GetPassbook(ctx context.Context, ledgerID string, page, pageSize int) (*PassbookResult, error) {
	rows, err := s.statements.BuildStatement(ctx, ledgerID)
	if err != nil {
		return nil, err
	}
	return paginate(ledgerID, rows, page, pageSize), nil
}

func (s *appService) GetVendorPassbook(ctx context.Context, ledgerID string, page, pageSize int) (*PassbookResult, error) {
	// The vendor sub-view consumes a pre-fetched challan set; the engine
	// itself only folds what it is given.
	challans, err := s.source.VendorChallans(ctx, ledgerID)
	if err != nil {
		return nil, fmt.Errorf("ledger %s: fetch vendor challans: %w", ledgerID, err)
	}
	rows := s.statements.VendorStatement(challans)
	return paginate(ledgerID, rows, page, pageSize), nil
}

func (s *appService) GetLedgerSummary(ctx context.Context, ledgerID string) (*SummaryResult, error) {
	summary, err := s.statements.Summarize(ctx, ledgerID)
	if err != nil {
		return nil, err
	}
	return &SummaryResult{LedgerID: ledgerID, Summary: summary}, nil
}

func (s *appService) ListPaymentVouchers(ctx context.Context, ledgerID string) (*VoucherListResult, error) {
	vouchers, err := s.vouchers.ListVouchers(ctx, ledgerID)
	if err != nil {
		return nil, err
	}
	return &VoucherListResult{LedgerID: ledgerID, Vouchers: vouchers}, nil
}

func (s *appService) AuthenticateUser(ctx context.Context, username, password string) (*UserSession, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}
	return &UserSession{UserID: user.ID, Username: user.Username, Role: user.Role}, nil
}

func (s *appService) LoadStats(ctx context.Context) (*StatsResult, error) {
	stats, err := s.stats.LoadStats(ctx)
	if err != nil {
		return nil, err
	}
	return &StatsResult{Stats: stats}, nil
}

func (s *appService) GetUser(ctx context.Context, userID int) (*UserResult, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &UserResult{User: user}, nil
}

// paginate slices the statement and fills page metadata.
func paginate(ledgerID string, rows []core.StatementRow, page, pageSize int) *PassbookResult {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	totalPages := (len(rows) + pageSize - 1) / pageSize
	return &PassbookResult{
		LedgerID:   ledgerID,
		Rows:       core.Page(rows, page, pageSize),
		Page:       page,
		PageSize:   pageSize,
		TotalRows:  len(rows),
		TotalPages: totalPages,
	}
}
