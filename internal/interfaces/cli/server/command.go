// Package server implements the HTTP server command.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	claimUC "accountsforge/internal/application/claim/usecases"
	expenseUC "accountsforge/internal/application/expense/usecases"
	notificationUC "accountsforge/internal/application/notification/usecases"
	"accountsforge/internal/application/notifier"
	profileUC "accountsforge/internal/application/profile/usecases"
	reportUC "accountsforge/internal/application/report/usecases"
	revenueUC "accountsforge/internal/application/revenue/usecases"
	vo "accountsforge/internal/domain/profile/valueobjects"
	"accountsforge/internal/infrastructure/auth"
	"accountsforge/internal/infrastructure/config"
	"accountsforge/internal/infrastructure/database"
	"accountsforge/internal/infrastructure/email"
	"accountsforge/internal/infrastructure/migration"
	"accountsforge/internal/infrastructure/permission"
	"accountsforge/internal/infrastructure/ratelimit"
	"accountsforge/internal/infrastructure/repository"
	httpRouter "accountsforge/internal/interfaces/http"
	"accountsforge/internal/interfaces/http/handlers"
	"accountsforge/internal/interfaces/http/middleware"
	"accountsforge/internal/shared/constants"
	"accountsforge/internal/shared/db"
	"accountsforge/internal/shared/goroutine"
	"accountsforge/internal/shared/logger"
	"accountsforge/internal/shared/services/markdown"
	"accountsforge/internal/shared/version"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()
	log.Infow("starting server", "environment", env, "version", version.Version, "auto_migrate", autoMigrate)

	gin.SetMode(mapEnvToGinMode(env))
	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if autoMigrate {
		if env == constants.EnvProduction {
			log.Warnw("auto-migration enabled in production")
		}
		manager := migration.NewManager(env)
		if err := manager.Migrate(database.Get()); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		log.Infow("auto-migration completed")
	}

	gormDB := database.Get()
	txManager := db.NewTransactionManager(gormDB)

	profileRepo := repository.NewProfileRepository(gormDB)
	expenseRepo := repository.NewExpenseRepository(gormDB)
	revenueRepo := repository.NewRevenueRepository(gormDB)
	claimRepo := repository.NewClaimRepository(gormDB)
	commissionRepo := repository.NewCommissionRepository(gormDB)
	notificationRepo := repository.NewNotificationRepository(gormDB)

	enforcer, err := permission.NewEnforcer(gormDB, cfg.Permission.ModelPath, log)
	if err != nil {
		return fmt.Errorf("failed to initialize permission enforcer: %w", err)
	}
	if cfg.Permission.PolicySeedPath != "" {
		if err := enforcer.SeedFromFile(cfg.Permission.PolicySeedPath, log); err != nil {
			return fmt.Errorf("failed to seed policies: %w", err)
		}
	}

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	oauthClient := auth.NewGoogleOAuthClient(cfg.OAuth.Google)

	emailService := email.NewSMTPEmailService(cfg.Email)
	markdownService := markdown.NewMarkdownService()
	mailer := notifier.NewMailer(profileRepo, emailService, markdownService, log)

	defaultRole, err := vo.NewRole(cfg.Workflow.DefaultRole)
	if err != nil {
		return fmt.Errorf("invalid workflow.default_role: %w", err)
	}

	// Use cases.
	ensureProfile := profileUC.NewEnsureProfileUseCase(profileRepo, defaultRole, log)

	authHandler := handlers.NewAuthHandler(
		profileUC.NewPasswordLoginUseCase(profileRepo, hasher, jwtService, log),
		profileUC.NewGetOAuthURLUseCase(oauthClient, log),
		profileUC.NewOAuthLoginUseCase(oauthClient, ensureProfile, jwtService, log),
		profileUC.NewRefreshTokenUseCase(jwtService, log),
		log,
	)

	profileHandler := handlers.NewProfileHandler(
		profileUC.NewGetProfileUseCase(profileRepo, log),
		profileUC.NewListProfilesUseCase(profileRepo, log),
		profileUC.NewUpdateProfileUseCase(profileRepo, hasher, log),
		profileUC.NewRemoveDuplicateProfilesUseCase(profileRepo, log),
		log,
	)

	expenseHandler := handlers.NewExpenseHandler(
		expenseUC.NewCreateExpenseUseCase(expenseRepo, log),
		expenseUC.NewGetExpenseUseCase(expenseRepo, log),
		expenseUC.NewListExpensesUseCase(expenseRepo, log),
		expenseUC.NewUpdateExpenseUseCase(expenseRepo, log),
		expenseUC.NewDeleteExpenseUseCase(expenseRepo, log),
		expenseUC.NewApproveExpenseUseCase(expenseRepo, notificationRepo, txManager, mailer, log),
		expenseUC.NewRejectExpenseUseCase(expenseRepo, notificationRepo, txManager, mailer, log),
		log,
	)

	revenueHandler := handlers.NewRevenueHandler(
		revenueUC.NewCreateRevenueUseCase(revenueRepo, log),
		revenueUC.NewGetRevenueUseCase(revenueRepo, log),
		revenueUC.NewListRevenuesUseCase(revenueRepo, log),
		revenueUC.NewUpdateRevenueUseCase(revenueRepo, log),
		revenueUC.NewDeleteRevenueUseCase(revenueRepo, log),
		revenueUC.NewApproveRevenueUseCase(revenueRepo, commissionRepo, notificationRepo, txManager, mailer, log),
		revenueUC.NewRejectRevenueUseCase(revenueRepo, notificationRepo, txManager, mailer, log),
		revenueUC.NewListCommissionsUseCase(commissionRepo, log),
		log,
	)

	claimHandler := handlers.NewClaimHandler(
		claimUC.NewCreateClaimUseCase(claimRepo, expenseRepo, revenueRepo, log),
		claimUC.NewGetClaimUseCase(claimRepo, log),
		claimUC.NewListClaimsUseCase(claimRepo, log),
		claimUC.NewUpdateClaimUseCase(claimRepo, log),
		claimUC.NewDeleteClaimUseCase(claimRepo, log),
		claimUC.NewApproveClaimUseCase(claimRepo, log),
		claimUC.NewRejectClaimUseCase(claimRepo, notificationRepo, txManager, mailer, log),
		claimUC.NewPayClaimUseCase(claimRepo, notificationRepo, txManager, mailer, log),
		log,
	)

	notificationHandler := handlers.NewNotificationHandler(
		notificationUC.NewListNotificationsUseCase(notificationRepo, log),
		notificationUC.NewMarkNotificationReadUseCase(notificationRepo, log),
		notificationUC.NewMarkAllNotificationsReadUseCase(notificationRepo, log),
		log,
	)

	reportHandler := handlers.NewReportHandler(
		reportUC.NewProfitLossUseCase(expenseRepo, revenueRepo, log),
		log,
	)

	authMW := middleware.NewAuthMiddleware(jwtService, profileRepo, log)
	permissionMW := middleware.NewPermissionMiddleware(enforcer, log)

	var rateLimitMW *middleware.RateLimitMiddleware
	if cfg.Redis.Host != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		limiter := ratelimit.NewRedisRateLimiter(redisClient)
		rateLimitMW = middleware.NewRateLimitMiddleware(limiter, ratelimit.Config{
			RequestsPerMinute: 120,
			RequestsPerHour:   3000,
		}, log)
	}

	router := httpRouter.NewRouter(
		httpRouter.RouterConfig{
			AllowedOrigins: []string{"http://localhost:3000"},
			EnableSwagger:  env != constants.EnvProduction,
		},
		authMW,
		permissionMW,
		rateLimitMW,
		authHandler,
		profileHandler,
		expenseHandler,
		revenueHandler,
		claimHandler,
		notificationHandler,
		reportHandler,
	)

	engine := gin.New()
	router.Setup(engine, log)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	goroutine.SafeGo(log, "http-server", func() {
		log.Infow("server listening", "address", cfg.Server.GetAddr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case constants.EnvProduction:
		return gin.ReleaseMode
	case constants.EnvTest:
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
