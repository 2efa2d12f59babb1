package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"dealerdesk/internal/auth"
	"dealerdesk/internal/cache"
	"dealerdesk/internal/config"
	"dealerdesk/internal/database"
	"dealerdesk/internal/handler"
	"dealerdesk/internal/middleware"
	"dealerdesk/internal/repository"
	"dealerdesk/internal/router"
	"dealerdesk/internal/service"
)

type App struct {
	server       *http.Server
	db           *database.DB
	cleanupFuncs []func()
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.UsesDefaultSecret() {
		slog.Warn("JWT_SECRET is not set; using the built-in default. Set a real secret before deploying.")
	}

	slog.Info("connecting to PostgreSQL")
	db, err := database.New(context.Background(), cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.EnsureSchema(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure database schema: %w", err)
	}

	pool := db.Pool
	userRepo := repository.NewUserRepository(pool)
	leadRepo := repository.NewLeadRepository(pool)
	jobCardRepo := repository.NewJobCardRepository(pool)
	partRepo := repository.NewPartRepository(pool)
	customerRepo := repository.NewCustomerRepository(pool)
	analyticsRepo := repository.NewAnalyticsRepository(pool)
	slog.Info("database ready")

	var statsCache *cache.Cache
	if cfg.RedisAddr != "" {
		statsCache = cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	}

	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, hasher, tokens)
	analyticsService := service.NewAnalyticsService(analyticsRepo, statsCache, cfg.CacheTTL)

	authMiddleware := middleware.NewAuthMiddleware(tokens)
	validate := validator.New()

	appRouter := router.New(cfg, authMiddleware, router.Handlers{
		Auth:      handler.NewAuthHandler(authService, validate),
		User:      handler.NewUserHandler(authService),
		Lead:      handler.NewLeadHandler(leadRepo, validate),
		JobCard:   handler.NewJobCardHandler(jobCardRepo, validate),
		Part:      handler.NewPartHandler(partRepo, validate),
		Customer:  handler.NewCustomerHandler(customerRepo, validate),
		Analytics: handler.NewAnalyticsHandler(analyticsService),
	})

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      appRouter,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  cfg.ServerIdleTimeout,
	}

	return &App{
		server: server,
		db:     db,
		cleanupFuncs: []func(){
			func() { statsCache.Close() },
			func() { db.Close() },
		},
	}, nil
}

func (a *App) Run() error {
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if serveErr := a.server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("server failed", "error", serveErr)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	for _, cleanup := range a.cleanupFuncs {
		cleanup()
	}

	slog.Info("server stopped")
	return nil
}
