package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"accountsforge/internal/application/revenue/usecases"
	"accountsforge/internal/shared/errors"
	"accountsforge/internal/shared/logger"
	"accountsforge/internal/shared/utils"
)

type CreateRevenueRequest struct {
	Amount         string `json:"amount" binding:"required"`
	Customer       string `json:"customer" binding:"required"`
	InvoiceNumber  string `json:"invoice_number"`
	CommissionRate string `json:"commission_rate" binding:"required"`
}

type UpdateRevenueRequest struct {
	Amount         string `json:"amount" binding:"required"`
	Customer       string `json:"customer" binding:"required"`
	InvoiceNumber  string `json:"invoice_number"`
	CommissionRate string `json:"commission_rate" binding:"required"`
}

type RevenueHandler struct {
	createRevenue   usecases.CreateRevenueExecutor
	getRevenue      usecases.GetRevenueExecutor
	listRevenues    usecases.ListRevenuesExecutor
	updateRevenue   usecases.UpdateRevenueExecutor
	deleteRevenue   usecases.DeleteRevenueExecutor
	approveRevenue  usecases.ApproveRevenueExecutor
	rejectRevenue   usecases.RejectRevenueExecutor
	listCommissions usecases.ListCommissionsExecutor
	logger          logger.Interface
}

func NewRevenueHandler(
	createRevenue usecases.CreateRevenueExecutor,
	getRevenue usecases.GetRevenueExecutor,
	listRevenues usecases.ListRevenuesExecutor,
	updateRevenue usecases.UpdateRevenueExecutor,
	deleteRevenue usecases.DeleteRevenueExecutor,
	approveRevenue usecases.ApproveRevenueExecutor,
	rejectRevenue usecases.RejectRevenueExecutor,
	listCommissions usecases.ListCommissionsExecutor,
	logger logger.Interface,
) *RevenueHandler {
	return &RevenueHandler{
		createRevenue:   createRevenue,
		getRevenue:      getRevenue,
		listRevenues:    listRevenues,
		updateRevenue:   updateRevenue,
		deleteRevenue:   deleteRevenue,
		approveRevenue:  approveRevenue,
		rejectRevenue:   rejectRevenue,
		listCommissions: listCommissions,
		logger:          logger,
	}
}

// Create godoc
// @Summary Record revenue
// @Description Salesmen and admins record revenue with a commission rate fixed at creation
// @Security Bearer
// @Tags revenues
// @Accept json
// @Produce json
// @Param request body CreateRevenueRequest true "Revenue data"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /revenues [post]
func (h *RevenueHandler) Create(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	var req CreateRevenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create revenue", "error", err)
		utils.HandleAppError(c, errors.NewValidationError("invalid request body"))
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		utils.HandleAppError(c, errors.NewValidationError("invalid amount"))
		return
	}
	rate, err := decimal.NewFromString(req.CommissionRate)
	if err != nil {
		utils.HandleAppError(c, errors.NewValidationError("invalid commission rate"))
		return
	}

	result, err := h.createRevenue.Execute(c.Request.Context(), usecases.CreateRevenueCommand{
		Actor:          actor,
		OwnerID:        actor.ProfileID,
		Amount:         amount,
		Customer:       req.Customer,
		InvoiceNumber:  req.InvoiceNumber,
		CommissionRate: rate,
	})
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Revenue)
}

// Get godoc
// @Summary Get revenue
// @Security Bearer
// @Tags revenues
// @Produce json
// @Param id path int true "Revenue ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /revenues/{id} [get]
func (h *RevenueHandler) Get(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	revenueID, err := utils.ParseIDParam(c, "id", "revenue")
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	result, err := h.getRevenue.Execute(c.Request.Context(), usecases.GetRevenueQuery{
		Actor:     actor,
		RevenueID: revenueID,
	})
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// List godoc
// @Summary List revenues
// @Security Bearer
// @Tags revenues
// @Produce json
// @Param owner_id query int false "Owner filter (admin only)"
// @Param status query string false "Status filter"
// @Param customer query string false "Customer filter"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /revenues [get]
func (h *RevenueHandler) List(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	pagination := utils.ParsePagination(c)

	query := usecases.ListRevenuesQuery{
		Actor:    actor,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}
	if ownerID, ok := utils.ParseQueryUint(c, "owner_id"); ok {
		query.OwnerID = &ownerID
	}
	if status := c.Query("status"); status != "" {
		query.Status = &status
	}
	if customer := c.Query("customer"); customer != "" {
		query.Customer = &customer
	}

	result, err := h.listRevenues.Execute(c.Request.Context(), query)
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	utils.PaginatedResponse(c, result.Revenues, result.Total, pagination.Page, pagination.PageSize)
}

// Update godoc
// @Summary Update revenue
// @Security Bearer
// @Tags revenues
// @Accept json
// @Produce json
// @Param id path int true "Revenue ID"
// @Param request body UpdateRevenueRequest true "Updated revenue data"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /revenues/{id} [put]
func (h *RevenueHandler) Update(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	revenueID, err := utils.ParseIDParam(c, "id", "revenue")
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	var req UpdateRevenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update revenue", "revenue_id", revenueID, "error", err)
		utils.HandleAppError(c, errors.NewValidationError("invalid request body"))
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		utils.HandleAppError(c, errors.NewValidationError("invalid amount"))
		return
	}
	rate, err := decimal.NewFromString(req.CommissionRate)
	if err != nil {
		utils.HandleAppError(c, errors.NewValidationError("invalid commission rate"))
		return
	}

	result, err := h.updateRevenue.Execute(c.Request.Context(), usecases.UpdateRevenueCommand{
		Actor:          actor,
		RevenueID:      revenueID,
		Amount:         amount,
		Customer:       req.Customer,
		InvoiceNumber:  req.InvoiceNumber,
		CommissionRate: rate,
	})
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	utils.OKResponse(c, result.Revenue)
}

// Delete godoc
// @Summary Delete revenue
// @Security Bearer
// @Tags revenues
// @Param id path int true "Revenue ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /revenues/{id} [delete]
func (h *RevenueHandler) Delete(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	revenueID, err := utils.ParseIDParam(c, "id", "revenue")
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	if err := h.deleteRevenue.Execute(c.Request.Context(), usecases.DeleteRevenueCommand{
		Actor:     actor,
		RevenueID: revenueID,
	}); err != nil {
		utils.HandleAppError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "revenue deleted", nil)
}

// Approve godoc
// @Summary Approve revenue
// @Description Admin review; creates the commission record atomically with the status change
// @Security Bearer
// @Tags revenues
// @Accept json
// @Produce json
// @Param id path int true "Revenue ID"
// @Param request body ReviewRequest false "Review note"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /revenues/{id}/approve [post]
func (h *RevenueHandler) Approve(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	revenueID, err := utils.ParseIDParam(c, "id", "revenue")
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	var req ReviewRequest
	_ = c.ShouldBindJSON(&req)

	result, err := h.approveRevenue.Execute(c.Request.Context(), usecases.ApproveRevenueCommand{
		Actor:     actor,
		RevenueID: revenueID,
		Note:      req.Note,
	})
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// Reject godoc
// @Summary Reject revenue
// @Security Bearer
// @Tags revenues
// @Accept json
// @Produce json
// @Param id path int true "Revenue ID"
// @Param request body ReviewRequest false "Rejection reason"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /revenues/{id}/reject [post]
func (h *RevenueHandler) Reject(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	revenueID, err := utils.ParseIDParam(c, "id", "revenue")
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	var req ReviewRequest
	_ = c.ShouldBindJSON(&req)

	result, err := h.rejectRevenue.Execute(c.Request.Context(), usecases.RejectRevenueCommand{
		Actor:     actor,
		RevenueID: revenueID,
		Reason:    req.Note,
	})
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	utils.OKResponse(c, result.Revenue)
}

// ListCommissions godoc
// @Summary List commission records
// @Description Owners see their own payouts; admins may query any owner
// @Security Bearer
// @Tags commissions
// @Produce json
// @Param owner_id query int false "Owner filter (defaults to self)"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /commissions [get]
func (h *RevenueHandler) ListCommissions(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	pagination := utils.ParsePagination(c)

	ownerID := actor.ProfileID
	if id, ok := utils.ParseQueryUint(c, "owner_id"); ok {
		ownerID = id
	}

	result, err := h.listCommissions.Execute(c.Request.Context(), usecases.ListCommissionsQuery{
		Actor:   actor,
		OwnerID: ownerID,
		Limit:   pagination.PageSize,
		Offset:  pagination.Offset(),
	})
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	utils.PaginatedResponse(c, result.Commissions, result.Total, pagination.Page, pagination.PageSize)
}
