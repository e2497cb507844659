package handlers

import (
	"github.com/gin-gonic/gin"

	"accountsforge/internal/application/profile/usecases"
	"accountsforge/internal/shared/errors"
	"accountsforge/internal/shared/logger"
	"accountsforge/internal/shared/utils"
)

type UpdateProfileRequest struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Password *string `json:"password"`
}

type ProfileHandler struct {
	getProfile       usecases.GetProfileExecutor
	listProfiles     usecases.ListProfilesExecutor
	updateProfile    usecases.UpdateProfileExecutor
	removeDuplicates usecases.RemoveDuplicateProfilesExecutor
	logger           logger.Interface
}

func NewProfileHandler(
	getProfile usecases.GetProfileExecutor,
	listProfiles usecases.ListProfilesExecutor,
	updateProfile usecases.UpdateProfileExecutor,
	removeDuplicates usecases.RemoveDuplicateProfilesExecutor,
	logger logger.Interface,
) *ProfileHandler {
	return &ProfileHandler{
		getProfile:       getProfile,
		listProfiles:     listProfiles,
		updateProfile:    updateProfile,
		removeDuplicates: removeDuplicates,
		logger:           logger,
	}
}

// Me godoc
// @Summary Get own profile
// @Security Bearer
// @Tags profiles
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /profiles/me [get]
func (h *ProfileHandler) Me(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	result, err := h.getProfile.Execute(c.Request.Context(), usecases.GetProfileQuery{
		Actor:     actor,
		ProfileID: actor.ProfileID,
	})
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// Get godoc
// @Summary Get profile
// @Description Self or admin only
// @Security Bearer
// @Tags profiles
// @Produce json
// @Param id path int true "Profile ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /profiles/{id} [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	profileID, err := utils.ParseIDParam(c, "id", "profile")
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	result, err := h.getProfile.Execute(c.Request.Context(), usecases.GetProfileQuery{
		Actor:     actor,
		ProfileID: profileID,
	})
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// List godoc
// @Summary List profiles
// @Description Admin directory view
// @Security Bearer
// @Tags profiles
// @Produce json
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Failure 403 {object} utils.APIResponse
// @Router /profiles [get]
func (h *ProfileHandler) List(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	pagination := utils.ParsePagination(c)

	result, err := h.listProfiles.Execute(c.Request.Context(), usecases.ListProfilesQuery{
		Actor:  actor,
		Limit:  pagination.PageSize,
		Offset: pagination.Offset(),
	})
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	utils.PaginatedResponse(c, result.Profiles, result.Total, pagination.Page, pagination.PageSize)
}

// Update godoc
// @Summary Update profile
// @Description Display and password changes for self or admin; role changes admin only
// @Security Bearer
// @Tags profiles
// @Accept json
// @Produce json
// @Param id path int true "Profile ID"
// @Param request body UpdateProfileRequest true "Profile changes"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /profiles/{id} [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	profileID, err := utils.ParseIDParam(c, "id", "profile")
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update profile", "profile_id", profileID, "error", err)
		utils.HandleAppError(c, errors.NewValidationError("invalid request body"))
		return
	}

	result, err := h.updateProfile.Execute(c.Request.Context(), usecases.UpdateProfileCommand{
		Actor:     actor,
		ProfileID: profileID,
		Name:      req.Name,
		Role:      req.Role,
		Password:  req.Password,
	})
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	utils.OKResponse(c, result.Profile)
}

// RemoveDuplicates godoc
// @Summary Remove duplicate profiles
// @Description Admin cleanup for rows predating the unique subject index; keeps the earliest row per subject
// @Security Bearer
// @Tags profiles
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /profiles/duplicates [delete]
func (h *ProfileHandler) RemoveDuplicates(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	result, err := h.removeDuplicates.Execute(c.Request.Context(), usecases.RemoveDuplicateProfilesCommand{
		Actor: actor,
	})
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"removed": result.Removed})
}
