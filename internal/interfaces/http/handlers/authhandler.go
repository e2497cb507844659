package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"accountsforge/internal/application/profile/usecases"
	"accountsforge/internal/shared/errors"
	"accountsforge/internal/shared/logger"
	"accountsforge/internal/shared/utils"
)

const codeVerifierCookie = "oauth_code_verifier"

type PasswordLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type AuthHandler struct {
	passwordLogin usecases.PasswordLoginExecutor
	getOAuthURL   usecases.GetOAuthURLExecutor
	oauthLogin    usecases.OAuthLoginExecutor
	refreshToken  usecases.RefreshTokenExecutor
	logger        logger.Interface
}

func NewAuthHandler(
	passwordLogin usecases.PasswordLoginExecutor,
	getOAuthURL usecases.GetOAuthURLExecutor,
	oauthLogin usecases.OAuthLoginExecutor,
	refreshToken usecases.RefreshTokenExecutor,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		passwordLogin: passwordLogin,
		getOAuthURL:   getOAuthURL,
		oauthLogin:    oauthLogin,
		refreshToken:  refreshToken,
		logger:        logger,
	}
}

// Login godoc
// @Summary Password login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body PasswordLoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req PasswordLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleAppError(c, errors.NewValidationError("invalid request body"))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.HandleAppError(c, err)
		return
	}

	result, err := h.passwordLogin.Execute(c.Request.Context(), usecases.PasswordLoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// OAuthURL godoc
// @Summary Start OAuth sign-in
// @Description Returns the provider authorization URL; the PKCE verifier is held in a short-lived cookie
// @Tags auth
// @Produce json
// @Param state query string true "Opaque CSRF state"
// @Success 200 {object} utils.APIResponse
// @Router /auth/oauth/url [get]
func (h *AuthHandler) OAuthURL(c *gin.Context) {
	state := c.Query("state")
	if state == "" {
		utils.HandleAppError(c, errors.NewValidationError("state is required"))
		return
	}

	result, err := h.getOAuthURL.Execute(c.Request.Context(), state)
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(codeVerifierCookie, result.CodeVerifier, 600, "/", "", true, true)

	utils.OKResponse(c, gin.H{"auth_url": result.AuthURL})
}

// OAuthCallback godoc
// @Summary Complete OAuth sign-in
// @Description Exchanges the authorization code, provisioning a profile on first sign-in
// @Tags auth
// @Produce json
// @Param code query string true "Authorization code"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/oauth/callback [get]
func (h *AuthHandler) OAuthCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		utils.HandleAppError(c, errors.NewValidationError("code is required"))
		return
	}

	codeVerifier, err := c.Cookie(codeVerifierCookie)
	if err != nil || codeVerifier == "" {
		utils.HandleAppError(c, errors.NewUnauthorizedError("missing code verifier"))
		return
	}
	c.SetCookie(codeVerifierCookie, "", -1, "/", "", true, true)

	result, err := h.oauthLogin.Execute(c.Request.Context(), usecases.OAuthLoginCommand{
		Code:         code,
		CodeVerifier: codeVerifier,
	})
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// Refresh godoc
// @Summary Refresh tokens
// @Description Rotates the refresh token and issues a new pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest true "Refresh token"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleAppError(c, errors.NewValidationError("invalid request body"))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.HandleAppError(c, err)
		return
	}

	result, err := h.refreshToken.Execute(c.Request.Context(), usecases.RefreshTokenCommand{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		utils.HandleAppError(c, err)
		return
	}

	utils.OKResponse(c, result.Tokens)
}
