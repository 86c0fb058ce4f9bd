package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fadilmartias/placement-portal/internal/config"
	"github.com/fadilmartias/placement-portal/internal/database"
	"github.com/fadilmartias/placement-portal/internal/domain/fiber/handler"
	"github.com/fadilmartias/placement-portal/internal/logger"
	"github.com/fadilmartias/placement-portal/internal/repository"
	"github.com/fadilmartias/placement-portal/internal/seed"
	"github.com/fadilmartias/placement-portal/internal/service"
	"github.com/fadilmartias/placement-portal/internal/storage"
	"github.com/fadilmartias/placement-portal/internal/usecase"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	logger.Configure(logger.Config{
		Level:  appConfig.LogLevel,
		Pretty: !appConfig.IsProduction(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(config.LoadDBConfig(), appConfig)
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not connect to database")
	}

	userRepo := repository.NewUserRepository(db)
	driveRepo := repository.NewDriveRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)

	if _, err := seed.Run(ctx, userRepo, driveRepo, logger.With("component", "seed")); err != nil {
		logger.Fatal().Err(err).Msg("Seeding failed")
	}

	storageConfig := config.LoadStorageConfig()
	files, err := storage.New(ctx, storageConfig)
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not initialise resume storage")
	}

	ai, err := service.NewTextGenerator(ctx, config.LoadGeminiConfig(), config.LoadSambaNovaConfig())
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not initialise AI client")
	}
	if ai == nil {
		logger.Warn().Msg("No AI API key set, analysis endpoints are disabled")
	} else {
		logger.Info().Str("provider", ai.Provider()).Msg("AI analysis enabled")
	}

	validate := validator.New()
	maxUpload := int64(storageConfig.MaxUploadMiB) << 20

	handlers := handler.Handlers{
		Auth:        handler.NewAuthHandler(usecase.NewAuthUsecase(userRepo, validate)),
		Drive:       handler.NewDriveHandler(usecase.NewDriveUsecase(driveRepo, userRepo, applicationRepo)),
		Application: handler.NewApplicationHandler(usecase.NewApplicationUsecase(applicationRepo, validate)),
		Upload:      handler.NewUploadHandler(usecase.NewResumeUsecase(userRepo, files), maxUpload),
		Analysis:    handler.NewAnalysisHandler(usecase.NewAnalysisUsecase(ai, validate), appConfig.AIRateLimit),
	}

	opts := handler.AppOptions{
		Config:    appConfig,
		DB:        db,
		BodyLimit: int(maxUpload) + 1<<20,
		RateLimit: appConfig.RateLimit,
		AccessLog: true,
	}
	if local, ok := files.(*storage.LocalStorage); ok {
		opts.UploadDir = local.BasePath()
	}
	app := handler.NewApp(opts, handlers)

	// Monitor goroutine count
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				logger.Debug().Int("goroutines", runtime.NumGoroutine()).Msg("Active goroutines")
			}
		}
	}()

	go func() {
		<-ctx.Done()
		logger.Info().Msg("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), appConfig.ShutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			logger.Error().Err(err).Msg("Graceful shutdown failed")
		}
	}()

	logger.Info().Str("port", appConfig.Port).Str("storage", files.Driver()).Msg("Server running")
	if err := app.Listen(appConfig.Port); err != nil {
		logger.Fatal().Err(err).Msg("Server stopped")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info().Msg("Server exited")
}
