package usecases

import (
	"context"

	"accountsforge/internal/application/report/dto"
)

type ProfitLossExecutor interface {
	Execute(ctx context.Context, query ProfitLossQuery) (*dto.ProfitLossDTO, error)
}
