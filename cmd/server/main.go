package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"

	"github.com/verdante/import-service/config"
	_ "github.com/verdante/import-service/docs"
	"github.com/verdante/import-service/internal/database"
	"github.com/verdante/import-service/internal/handlers"
	"github.com/verdante/import-service/internal/middleware"
	"github.com/verdante/import-service/internal/parsers/xlsx"
	"github.com/verdante/import-service/internal/pipeline"
	"github.com/verdante/import-service/internal/storage"
	"github.com/verdante/import-service/internal/telemetry"
)

// @title Import Service API
// @version 1.0
// @description Internal admin API for bulk product and blog imports and site settings.
// @BasePath /internal
// @securityDefinitions.apikey InternalAPIKey
// @in header
// @name X-Internal-API-Key
func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := initLogger(cfg.Logging)
	log.Logger = *logger

	logger.Info().Msg("Starting import service")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("Import service stopped with error")
	}
	logger.Info().Msg("Server exited")
}

func run(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) error {
	shutdownTelemetry, err := telemetry.Init(ctx, telemetry.Config{
		Enabled:     cfg.Telemetry.Enabled,
		Endpoint:    cfg.Telemetry.Endpoint,
		ServiceName: cfg.Telemetry.ServiceName,
		Environment: cfg.Telemetry.Environment,
	})
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(flushCtx); err != nil {
			logger.Warn().Err(err).Msg("Failed to flush telemetry")
		}
	}()

	if cfg.Database.URL == "" {
		return errors.New("DATABASE_URL not set")
	}
	if err := database.Connect(ctx, database.PoolConfig{
		URL:             cfg.Database.URL,
		MaxConns:        cfg.Database.MaxConnections,
		MinConns:        cfg.Database.MinConnections,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
	}); err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer database.Close()
	logger.Info().Msg("Database connected")

	if err := database.EnsureSchema(ctx, database.Pool()); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	repo := database.NewRepository(database.Pool())

	opts := []pipeline.Option{
		pipeline.WithXLSXOptions(xlsx.Options{Sheet: cfg.Import.XLSXSheet}),
	}
	var archive storage.Storage
	if cfg.Import.ArchiveUploads {
		local, err := storage.NewLocalStorage(cfg.Storage.BasePath)
		if err != nil {
			return fmt.Errorf("open upload archive: %w", err)
		}
		archive = local
		opts = append(opts, pipeline.WithArchive(local))
		logger.Info().Str("path", cfg.Storage.BasePath).Msg("Archiving uploads")
	}
	importer := pipeline.New(repo, *logger, opts...)

	limiter := middleware.NewIPRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: cfg.RateLimit.PerClientRPS,
		BurstSize:         cfg.RateLimit.PerClientBurst,
		IdleTTL:           middleware.DefaultRateLimiterConfig().IdleTTL,
	})
	router := newRouter(cfg, logger, limiter, handlers.Admin{
		Imports:  handlers.NewImportHandler(importer, cfg.Import.MaxUploadBytes),
		Uploads:  handlers.NewUploadsHandler(archive),
		Settings: handlers.NewSettingsHandler(repo),
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Str("addr", addr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		limiter.Run(gctx)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func newRouter(cfg *config.Config, logger *zerolog.Logger, limiter *middleware.IPRateLimiter, admin handlers.Admin) *gin.Engine {
	if cfg.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))

	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	internal := router.Group("/internal")
	internal.Use(middleware.InternalAuthMiddleware(cfg.Auth.InternalAPIKey))
	internal.Use(middleware.ServiceRateLimitMiddleware(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
	internal.Use(limiter.Middleware())
	handlers.RegisterRoutes(internal, admin)

	return router
}

func initLogger(cfg config.LoggingConfig) *zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var output io.Writer
	if cfg.Format == "json" {
		output = os.Stdout
	} else {
		output = zerolog.ConsoleWriter{Out: os.Stdout, NoColor: cfg.NoColor}
	}

	logger := zerolog.New(output).Level(level).With().Timestamp().Str("service", handlers.ServiceName).Logger()
	return &logger
}
