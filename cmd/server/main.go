package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polidog/web/internal/auth"
	"github.com/polidog/web/internal/cache"
	"github.com/polidog/web/internal/config"
	"github.com/polidog/web/internal/domain"
	"github.com/polidog/web/internal/handler"
	"github.com/polidog/web/internal/logger"
	"github.com/polidog/web/internal/metrics"
	"github.com/polidog/web/internal/render"
	"github.com/polidog/web/internal/repository"
	"github.com/polidog/web/internal/service"
	"github.com/polidog/web/internal/validator"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.SetLogger(logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat))

	// Open the store selected by APP_ENV and DATABASE_URL
	store, err := repository.Open(context.Background(), cfg, cfg.AutoMigrate)
	if err != nil {
		logger.Fatal("Failed to open store",
			slog.String("mode", string(cfg.StoreMode())),
			slog.String("error", err.Error()))
	}
	defer store.Close()

	// Start database pool metrics collector
	if statsCollector := poolStats(store); statsCollector != nil {
		statsCollector.Start(15 * time.Second)
		defer statsCollector.Stop()
	}

	// Authentication
	allowList := auth.NewAllowList(cfg.AllowedEmails)
	gateway, err := auth.NewGateway(store, auth.Config{
		Secret:       []byte(cfg.SessionSecret),
		TTL:          cfg.SessionTTL,
		SecureCookie: cfg.IsProduction(),
		AllowList:    allowList,
		Google: auth.GoogleConfig{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.BaseURL + auth.CallbackPath,
		},
	})
	if err != nil {
		logger.Fatal("Failed to create auth gateway",
			slog.String("error", err.Error()))
	}
	if !cfg.OAuthConfigured() {
		logger.Warn("GOOGLE_CLIENT_ID or GOOGLE_CLIENT_SECRET not set; sign-in is unavailable")
	}

	sweeper := auth.NewSweeper(store.Sessions())
	sweeper.Start(time.Hour)
	defer sweeper.Stop()

	// Page cache
	var pages *cache.PageCache
	var invalidator cache.Invalidator = cache.Nop{}
	if cfg.PageCacheEnabled {
		pages = cache.NewPageCache(cfg.PageCacheSize)
		invalidator = pages
	}

	// Initialize services
	v := validator.NewValidator()
	loc := cfg.Location()
	links := render.Links{Location: loc}
	blogService := service.NewBlogService(store, render.NewMarkdown())
	postService := service.NewPostService(store, v, invalidator, loc)
	categoryService := service.NewTermService(domain.TermCategory, store, v, invalidator)
	tagService := service.NewTermService(domain.TermTag, store, v, invalidator)
	userService := service.NewUserService(store.Users(), v, allowList)

	// Setup Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router, err := handler.NewRouter(handler.RouterDeps{
		Gateway:   gateway,
		Public:    handler.NewPublicHandler(blogService, links),
		Admin:     handler.NewAdminHandler(postService, categoryService, tagService, blogService, loc),
		Users:     handler.NewUserAPIHandler(userService),
		Health:    handler.NewHealthHandler(store, version),
		Posts:     store.Posts(),
		PageCache: pages,
		Links:     links,
		AccessLog: !cfg.IsProduction(),
	})
	if err != nil {
		logger.Fatal("Failed to build router",
			slog.String("error", err.Error()))
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("env", cfg.Env),
			slog.String("store", string(cfg.StoreMode())),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}

// poolStats returns a collector for the connection pool behind store.
func poolStats(store repository.Store) *metrics.PoolStatsCollector {
	switch s := store.(type) {
	case *repository.PostgresStore:
		return metrics.NewPoolStatsCollector(s.Pool())
	case *repository.GormStore:
		sqlDB, err := s.DB().DB()
		if err != nil {
			return nil
		}
		return metrics.NewSQLStatsCollector(sqlDB)
	}
	return nil
}
