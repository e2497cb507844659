package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"accountsforge/internal/application/expense/usecases"
	"accountsforge/internal/shared/errors"
	"accountsforge/internal/shared/logger"
	"accountsforge/internal/shared/utils"
)

type CreateExpenseRequest struct {
	Amount      string `json:"amount" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description"`
}

type UpdateExpenseRequest struct {
	Amount      string `json:"amount" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description"`
}

type ReviewRequest struct {
	Note string `json:"note"`
}

type ExpenseHandler struct {
	createExpense  usecases.CreateExpenseExecutor
	getExpense     usecases.GetExpenseExecutor
	listExpenses   usecases.ListExpensesExecutor
	updateExpense  usecases.UpdateExpenseExecutor
	deleteExpense  usecases.DeleteExpenseExecutor
	approveExpense usecases.ApproveExpenseExecutor
	rejectExpense  usecases.RejectExpenseExecutor
	logger         logger.Interface
}

func NewExpenseHandler(
	createExpense usecases.CreateExpenseExecutor,
	getExpense usecases.GetExpenseExecutor,
	listExpenses usecases.ListExpensesExecutor,
	updateExpense usecases.UpdateExpenseExecutor,
	deleteExpense usecases.DeleteExpenseExecutor,
	approveExpense usecases.ApproveExpenseExecutor,
	rejectExpense usecases.RejectExpenseExecutor,
	logger logger.Interface,
) *ExpenseHandler {
	return &ExpenseHandler{
		createExpense:  createExpense,
		getExpense:     getExpense,
		listExpenses:   listExpenses,
		updateExpense:  updateExpense,
		deleteExpense:  deleteExpense,
		approveExpense: approveExpense,
		rejectExpense:  rejectExpense,
		logger:         logger,
	}
}

// Create godoc
// @Summary Create expense
// @Description Record a new expense owned by the authenticated profile
// @Security Bearer
// @Tags expenses
// @Accept json
// @Produce json
// @Param request body CreateExpenseRequest true "Expense data"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create expense", "error", err)
		utils.HandleAppError(c, errors.NewValidationError("invalid request body"))
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		utils.HandleAppError(c, errors.NewValidationError("invalid amount"))
		return
	}

	result, err := h.createExpense.Execute(c.Request.Context(), usecases.CreateExpenseCommand{
		Actor:       actor,
		OwnerID:     actor.ProfileID,
		Amount:      amount,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Expense)
}

// Get godoc
// @Summary Get expense
// @Security Bearer
// @Tags expenses
// @Produce json
// @Param id path int true "Expense ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /expenses/{id} [get]
func (h *ExpenseHandler) Get(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	expenseID, err := utils.ParseIDParam(c, "id", "expense")
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	result, err := h.getExpense.Execute(c.Request.Context(), usecases.GetExpenseQuery{
		Actor:     actor,
		ExpenseID: expenseID,
	})
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// List godoc
// @Summary List expenses
// @Description Non-admins see only their own expenses
// @Security Bearer
// @Tags expenses
// @Produce json
// @Param owner_id query int false "Owner filter (admin only)"
// @Param status query string false "Status filter"
// @Param category query string false "Category filter"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	pagination := utils.ParsePagination(c)

	query := usecases.ListExpensesQuery{
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
	if category := c.Query("category"); category != "" {
		query.Category = &category
	}

	result, err := h.listExpenses.Execute(c.Request.Context(), query)
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	utils.PaginatedResponse(c, result.Expenses, result.Total, pagination.Page, pagination.PageSize)
}

// Update godoc
// @Summary Update expense
// @Description Owners may edit while pending; admins anytime
// @Security Bearer
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path int true "Expense ID"
// @Param request body UpdateExpenseRequest true "Updated expense data"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /expenses/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	expenseID, err := utils.ParseIDParam(c, "id", "expense")
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update expense", "expense_id", expenseID, "error", err)
		utils.HandleAppError(c, errors.NewValidationError("invalid request body"))
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		utils.HandleAppError(c, errors.NewValidationError("invalid amount"))
		return
	}

	result, err := h.updateExpense.Execute(c.Request.Context(), usecases.UpdateExpenseCommand{
		Actor:       actor,
		ExpenseID:   expenseID,
		Amount:      amount,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	utils.OKResponse(c, result.Expense)
}

// Delete godoc
// @Summary Delete expense
// @Security Bearer
// @Tags expenses
// @Param id path int true "Expense ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	expenseID, err := utils.ParseIDParam(c, "id", "expense")
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	if err := h.deleteExpense.Execute(c.Request.Context(), usecases.DeleteExpenseCommand{
		Actor:     actor,
		ExpenseID: expenseID,
	}); err != nil {
		utils.HandleAppError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "expense deleted", nil)
}

// Approve godoc
// @Summary Approve expense
// @Description Admin review; approving an already-approved expense is a no-op
// @Security Bearer
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path int true "Expense ID"
// @Param request body ReviewRequest false "Review note"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /expenses/{id}/approve [post]
func (h *ExpenseHandler) Approve(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	expenseID, err := utils.ParseIDParam(c, "id", "expense")
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	var req ReviewRequest
	_ = c.ShouldBindJSON(&req)

	result, err := h.approveExpense.Execute(c.Request.Context(), usecases.ApproveExpenseCommand{
		Actor:     actor,
		ExpenseID: expenseID,
		Note:      req.Note,
	})
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	utils.OKResponse(c, result.Expense)
}

// Reject godoc
// @Summary Reject expense
// @Security Bearer
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path int true "Expense ID"
// @Param request body ReviewRequest false "Rejection reason"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /expenses/{id}/reject [post]
func (h *ExpenseHandler) Reject(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	expenseID, err := utils.ParseIDParam(c, "id", "expense")
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	var req ReviewRequest
	_ = c.ShouldBindJSON(&req)

	result, err := h.rejectExpense.Execute(c.Request.Context(), usecases.RejectExpenseCommand{
		Actor:     actor,
		ExpenseID: expenseID,
		Reason:    req.Note,
	})
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	utils.OKResponse(c, result.Expense)
}
