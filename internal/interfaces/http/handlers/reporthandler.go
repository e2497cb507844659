package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"accountsforge/internal/application/report/usecases"
	"accountsforge/internal/shared/errors"
	"accountsforge/internal/shared/logger"
	"accountsforge/internal/shared/utils"
)

type ReportHandler struct {
	profitLoss usecases.ProfitLossExecutor
	logger     logger.Interface
}

func NewReportHandler(profitLoss usecases.ProfitLossExecutor, logger logger.Interface) *ReportHandler {
	return &ReportHandler{
		profitLoss: profitLoss,
		logger:     logger,
	}
}

// ProfitLoss godoc
// @Summary Profit and loss report
// @Description Approved revenue minus approved expenses over an optional RFC 3339 period
// @Security Bearer
// @Tags reports
// @Produce json
// @Param from query string false "Period start (RFC 3339)"
// @Param to query string false "Period end (RFC 3339)"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /reports/profit-loss [get]
func (h *ReportHandler) ProfitLoss(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	query := usecases.ProfitLossQuery{Actor: actor}

	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.HandleAppError(c, errors.NewValidationError("invalid from timestamp"))
			return
		}
		query.From = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.HandleAppError(c, errors.NewValidationError("invalid to timestamp"))
			return
		}
		query.To = &t
	}

	result, err := h.profitLoss.Execute(c.Request.Context(), query)
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	utils.OKResponse(c, result)
}
