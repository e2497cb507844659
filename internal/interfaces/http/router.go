// Package http wires the gin engine: middleware order, route groups, and
// the coarse permission gate per route.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"accountsforge/internal/interfaces/http/handlers"
	"accountsforge/internal/interfaces/http/middleware"
	"accountsforge/internal/shared/logger"
	"accountsforge/internal/shared/version"
)

type RouterConfig struct {
	AllowedOrigins []string
	EnableSwagger  bool
}

type Router struct {
	config RouterConfig

	authMW       *middleware.AuthMiddleware
	permissionMW *middleware.PermissionMiddleware
	rateLimitMW  *middleware.RateLimitMiddleware

	authHandler         *handlers.AuthHandler
	profileHandler      *handlers.ProfileHandler
	expenseHandler      *handlers.ExpenseHandler
	revenueHandler      *handlers.RevenueHandler
	claimHandler        *handlers.ClaimHandler
	notificationHandler *handlers.NotificationHandler
	reportHandler       *handlers.ReportHandler
}

func NewRouter(
	config RouterConfig,
	authMW *middleware.AuthMiddleware,
	permissionMW *middleware.PermissionMiddleware,
	rateLimitMW *middleware.RateLimitMiddleware,
	authHandler *handlers.AuthHandler,
	profileHandler *handlers.ProfileHandler,
	expenseHandler *handlers.ExpenseHandler,
	revenueHandler *handlers.RevenueHandler,
	claimHandler *handlers.ClaimHandler,
	notificationHandler *handlers.NotificationHandler,
	reportHandler *handlers.ReportHandler,
) *Router {
	return &Router{
		config:              config,
		authMW:              authMW,
		permissionMW:        permissionMW,
		rateLimitMW:         rateLimitMW,
		authHandler:         authHandler,
		profileHandler:      profileHandler,
		expenseHandler:      expenseHandler,
		revenueHandler:      revenueHandler,
		claimHandler:        claimHandler,
		notificationHandler: notificationHandler,
		reportHandler:       reportHandler,
	}
}

func (r *Router) Setup(engine *gin.Engine, log logger.Interface) {
	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(r.config.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": version.Version})
	})

	if r.config.EnableSwagger {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := engine.Group("/api/v1")
	if r.rateLimitMW != nil {
		api.Use(r.rateLimitMW.Limit())
	}

	auth := api.Group("/auth")
	{
		auth.POST("/login", r.authHandler.Login)
		auth.GET("/oauth/url", r.authHandler.OAuthURL)
		auth.GET("/oauth/callback", r.authHandler.OAuthCallback)
		auth.POST("/refresh", r.authHandler.Refresh)
	}

	authed := api.Group("")
	authed.Use(r.authMW.RequireAuth())

	profiles := authed.Group("/profiles")
	{
		profiles.GET("/me", r.profileHandler.Me)
		profiles.GET("", r.permissionMW.RequirePermission("profile", "list"), r.profileHandler.List)
		profiles.GET("/:id", r.profileHandler.Get)
		profiles.PUT("/:id", r.profileHandler.Update)
		profiles.DELETE("/duplicates", r.permissionMW.RequirePermission("profile", "manage"), r.profileHandler.RemoveDuplicates)
	}

	expenses := authed.Group("/expenses")
	expenses.Use(r.permissionMW.RequirePermission("expense", "access"))
	{
		expenses.POST("", r.expenseHandler.Create)
		expenses.GET("", r.expenseHandler.List)
		expenses.GET("/:id", r.expenseHandler.Get)
		expenses.PUT("/:id", r.expenseHandler.Update)
		expenses.DELETE("/:id", r.expenseHandler.Delete)
		expenses.POST("/:id/approve", r.permissionMW.RequirePermission("expense", "review"), r.expenseHandler.Approve)
		expenses.POST("/:id/reject", r.permissionMW.RequirePermission("expense", "review"), r.expenseHandler.Reject)
	}

	revenues := authed.Group("/revenues")
	revenues.Use(r.permissionMW.RequirePermission("revenue", "access"))
	{
		revenues.POST("", r.revenueHandler.Create)
		revenues.GET("", r.revenueHandler.List)
		revenues.GET("/:id", r.revenueHandler.Get)
		revenues.PUT("/:id", r.revenueHandler.Update)
		revenues.DELETE("/:id", r.revenueHandler.Delete)
		revenues.POST("/:id/approve", r.permissionMW.RequirePermission("revenue", "review"), r.revenueHandler.Approve)
		revenues.POST("/:id/reject", r.permissionMW.RequirePermission("revenue", "review"), r.revenueHandler.Reject)
	}

	authed.GET("/commissions", r.permissionMW.RequirePermission("revenue", "access"), r.revenueHandler.ListCommissions)

	claims := authed.Group("/claims")
	claims.Use(r.permissionMW.RequirePermission("claim", "access"))
	{
		claims.POST("", r.claimHandler.Create)
		claims.GET("", r.claimHandler.List)
		claims.GET("/:id", r.claimHandler.Get)
		claims.PUT("/:id", r.claimHandler.Update)
		claims.DELETE("/:id", r.claimHandler.Delete)
		claims.POST("/:id/approve", r.permissionMW.RequirePermission("claim", "review"), r.claimHandler.Approve)
		claims.POST("/:id/reject", r.permissionMW.RequirePermission("claim", "review"), r.claimHandler.Reject)
		claims.POST("/:id/pay", r.permissionMW.RequirePermission("claim", "review"), r.claimHandler.Pay)
	}

	notifications := authed.Group("/notifications")
	{
		notifications.GET("", r.notificationHandler.List)
		notifications.POST("/:id/read", r.notificationHandler.MarkRead)
		notifications.POST("/read-all", r.notificationHandler.MarkAllRead)
	}

	reports := authed.Group("/reports")
	reports.Use(r.permissionMW.RequirePermission("report", "read"))
	{
		reports.GET("/profit-loss", r.reportHandler.ProfitLoss)
	}
}
