package usecases

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"accountsforge/internal/application/report/dto"
	"accountsforge/internal/domain/authz"
	"accountsforge/internal/domain/expense"
	expensevo "accountsforge/internal/domain/expense/valueobjects"
	"accountsforge/internal/domain/revenue"
	revenuevo "accountsforge/internal/domain/revenue/valueobjects"
	apperrors "accountsforge/internal/shared/errors"
	"accountsforge/internal/shared/logger"
)

type ProfitLossQuery struct {
	Actor authz.Actor
	From  *time.Time
	To    *time.Time
}

// ProfitLossUseCase computes the approved-ledger summary: approved revenue
// minus approved expenses over an optional period. Pending and rejected
// records never count.
type ProfitLossUseCase struct {
	expenseRepo expense.Repository
	revenueRepo revenue.Repository
	printer     *message.Printer
	logger      logger.Interface
}

func NewProfitLossUseCase(expenseRepo expense.Repository, revenueRepo revenue.Repository, logger logger.Interface) *ProfitLossUseCase {
	return &ProfitLossUseCase{
		expenseRepo: expenseRepo,
		revenueRepo: revenueRepo,
		printer:     message.NewPrinter(language.English),
		logger:      logger,
	}
}

func (uc *ProfitLossUseCase) Execute(ctx context.Context, query ProfitLossQuery) (*dto.ProfitLossDTO, error) {
	if !query.Actor.Role.IsAdmin() {
		return nil, apperrors.NewForbiddenError("only admins can view profit and loss reports", string(authz.ReasonAdminOnly))
	}

	if query.From != nil && query.To != nil && query.To.Before(*query.From) {
		return nil, apperrors.NewValidationError("period end must not precede period start")
	}

	totalRevenue, err := uc.revenueRepo.SumAmountByStatus(ctx, revenuevo.StatusApproved.String(), query.From, query.To)
	if err != nil {
		uc.logger.Errorw("failed to sum approved revenue", "error", err)
		return nil, apperrors.NewInternalError("failed to compute report")
	}

	totalExpense, err := uc.expenseRepo.SumAmountByStatus(ctx, expensevo.StatusApproved.String(), query.From, query.To)
	if err != nil {
		uc.logger.Errorw("failed to sum approved expenses", "error", err)
		return nil, apperrors.NewInternalError("failed to compute report")
	}

	net := totalRevenue.Sub(totalExpense)

	return &dto.ProfitLossDTO{
		From:             query.From,
		To:               query.To,
		TotalRevenue:     totalRevenue.StringFixed(2),
		TotalExpense:     totalExpense.StringFixed(2),
		NetProfit:        net.StringFixed(2),
		FormattedRevenue: uc.formatAmount(totalRevenue),
		FormattedExpense: uc.formatAmount(totalExpense),
		FormattedNet:     uc.formatAmount(net),
	}, nil
}

// formatAmount renders a decimal with locale digit grouping, e.g.
// "1,234,567.89".
func (uc *ProfitLossUseCase) formatAmount(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return uc.printer.Sprintf("%.2f", f)
}
