package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"accountsforge/internal/application/claim/usecases"
	"accountsforge/internal/shared/errors"
	"accountsforge/internal/shared/logger"
	"accountsforge/internal/shared/utils"
)

type CreateClaimRequest struct {
	Amount      string `json:"amount" binding:"required"`
	ClaimType   string `json:"claim_type" binding:"required"`
	Description string `json:"description"`
	ExpenseID   *uint  `json:"expense_id"`
	RevenueID   *uint  `json:"revenue_id"`
}

type UpdateClaimRequest struct {
	Amount      string `json:"amount" binding:"required"`
	ClaimType   string `json:"claim_type" binding:"required"`
	Description string `json:"description"`
}

type PayClaimRequest struct {
	PaymentMethod    string `json:"payment_method" binding:"required"`
	PaymentReference string `json:"payment_reference" binding:"required"`
}

type ClaimHandler struct {
	createClaim  usecases.CreateClaimExecutor
	getClaim     usecases.GetClaimExecutor
	listClaims   usecases.ListClaimsExecutor
	updateClaim  usecases.UpdateClaimExecutor
	deleteClaim  usecases.DeleteClaimExecutor
	approveClaim usecases.ApproveClaimExecutor
	rejectClaim  usecases.RejectClaimExecutor
	payClaim     usecases.PayClaimExecutor
	logger       logger.Interface
}

func NewClaimHandler(
	createClaim usecases.CreateClaimExecutor,
	getClaim usecases.GetClaimExecutor,
	listClaims usecases.ListClaimsExecutor,
	updateClaim usecases.UpdateClaimExecutor,
	deleteClaim usecases.DeleteClaimExecutor,
	approveClaim usecases.ApproveClaimExecutor,
	rejectClaim usecases.RejectClaimExecutor,
	payClaim usecases.PayClaimExecutor,
	logger logger.Interface,
) *ClaimHandler {
	return &ClaimHandler{
		createClaim:  createClaim,
		getClaim:     getClaim,
		listClaims:   listClaims,
		updateClaim:  updateClaim,
		deleteClaim:  deleteClaim,
		approveClaim: approveClaim,
		rejectClaim:  rejectClaim,
		payClaim:     payClaim,
		logger:       logger,
	}
}

// Create godoc
// @Summary Create claim
// @Description File a reimbursement or payout claim, optionally linked to an owned expense or revenue
// @Security Bearer
// @Tags claims
// @Accept json
// @Produce json
// @Param request body CreateClaimRequest true "Claim data"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /claims [post]
func (h *ClaimHandler) Create(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	var req CreateClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create claim", "error", err)
		utils.HandleAppError(c, errors.NewValidationError("invalid request body"))
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		utils.HandleAppError(c, errors.NewValidationError("invalid amount"))
		return
	}

	result, err := h.createClaim.Execute(c.Request.Context(), usecases.CreateClaimCommand{
		Actor:       actor,
		OwnerID:     actor.ProfileID,
		Amount:      amount,
		ClaimType:   req.ClaimType,
		Description: req.Description,
		ExpenseID:   req.ExpenseID,
		RevenueID:   req.RevenueID,
	})
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Claim)
}

// Get godoc
// @Summary Get claim
// @Security Bearer
// @Tags claims
// @Produce json
// @Param id path int true "Claim ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /claims/{id} [get]
func (h *ClaimHandler) Get(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	claimID, err := utils.ParseIDParam(c, "id", "claim")
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	result, err := h.getClaim.Execute(c.Request.Context(), usecases.GetClaimQuery{
		Actor:   actor,
		ClaimID: claimID,
	})
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// List godoc
// @Summary List claims
// @Security Bearer
// @Tags claims
// @Produce json
// @Param owner_id query int false "Owner filter (admin only)"
// @Param status query string false "Status filter"
// @Param claim_type query string false "Claim type filter"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /claims [get]
func (h *ClaimHandler) List(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	pagination := utils.ParsePagination(c)

	query := usecases.ListClaimsQuery{
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
	if claimType := c.Query("claim_type"); claimType != "" {
		query.ClaimType = &claimType
	}

	result, err := h.listClaims.Execute(c.Request.Context(), query)
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	utils.PaginatedResponse(c, result.Claims, result.Total, pagination.Page, pagination.PageSize)
}

// Update godoc
// @Summary Update claim
// @Security Bearer
// @Tags claims
// @Accept json
// @Produce json
// @Param id path int true "Claim ID"
// @Param request body UpdateClaimRequest true "Updated claim data"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /claims/{id} [put]
func (h *ClaimHandler) Update(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	claimID, err := utils.ParseIDParam(c, "id", "claim")
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	var req UpdateClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update claim", "claim_id", claimID, "error", err)
		utils.HandleAppError(c, errors.NewValidationError("invalid request body"))
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		utils.HandleAppError(c, errors.NewValidationError("invalid amount"))
		return
	}

	result, err := h.updateClaim.Execute(c.Request.Context(), usecases.UpdateClaimCommand{
		Actor:       actor,
		ClaimID:     claimID,
		Amount:      amount,
		ClaimType:   req.ClaimType,
		Description: req.Description,
	})
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	utils.OKResponse(c, result.Claim)
}

// Delete godoc
// @Summary Delete claim
// @Description Owners may withdraw pending claims; admins may delete any claim
// @Security Bearer
// @Tags claims
// @Param id path int true "Claim ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /claims/{id} [delete]
func (h *ClaimHandler) Delete(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	claimID, err := utils.ParseIDParam(c, "id", "claim")
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	if err := h.deleteClaim.Execute(c.Request.Context(), usecases.DeleteClaimCommand{
		Actor:   actor,
		ClaimID: claimID,
	}); err != nil {
		utils.HandleAppError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "claim deleted", nil)
}

// Approve godoc
// @Summary Approve claim
// @Description Admin review; payment is a separate step
// @Security Bearer
// @Tags claims
// @Accept json
// @Produce json
// @Param id path int true "Claim ID"
// @Param request body ReviewRequest false "Review note"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /claims/{id}/approve [post]
func (h *ClaimHandler) Approve(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	claimID, err := utils.ParseIDParam(c, "id", "claim")
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	var req ReviewRequest
	_ = c.ShouldBindJSON(&req)

	result, err := h.approveClaim.Execute(c.Request.Context(), usecases.ApproveClaimCommand{
		Actor:   actor,
		ClaimID: claimID,
		Note:    req.Note,
	})
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	utils.OKResponse(c, result.Claim)
}

// Reject godoc
// @Summary Reject claim
// @Security Bearer
// @Tags claims
// @Accept json
// @Produce json
// @Param id path int true "Claim ID"
// @Param request body ReviewRequest false "Rejection reason"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /claims/{id}/reject [post]
func (h *ClaimHandler) Reject(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	claimID, err := utils.ParseIDParam(c, "id", "claim")
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	var req ReviewRequest
	_ = c.ShouldBindJSON(&req)

	result, err := h.rejectClaim.Execute(c.Request.Context(), usecases.RejectClaimCommand{
		Actor:   actor,
		ClaimID: claimID,
		Reason:  req.Note,
	})
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	utils.OKResponse(c, result.Claim)
}

// Pay godoc
// @Summary Pay claim
// @Description Admin settles an approved claim; method and reference are required and land with the transition
// @Security Bearer
// @Tags claims
// @Accept json
// @Produce json
// @Param id path int true "Claim ID"
// @Param request body PayClaimRequest true "Payment details"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /claims/{id}/pay [post]
func (h *ClaimHandler) Pay(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	claimID, err := utils.ParseIDParam(c, "id", "claim")
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	var req PayClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for pay claim", "claim_id", claimID, "error", err)
		utils.HandleAppError(c, errors.NewValidationError("payment method and reference are required"))
		return
	}

	result, err := h.payClaim.Execute(c.Request.Context(), usecases.PayClaimCommand{
		Actor:            actor,
		ClaimID:          claimID,
		PaymentMethod:    req.PaymentMethod,
		PaymentReference: req.PaymentReference,
	})
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	utils.OKResponse(c, result.Claim)
}
