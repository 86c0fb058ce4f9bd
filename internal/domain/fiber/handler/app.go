package handler

import (
	"errors"
	"time"

	"github.com/fadilmartias/placement-portal/internal/config"
	"github.com/fadilmartias/placement-portal/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

type AppOptions struct {
	Config *config.AppConfig
	DB     *gorm.DB

	// BodyLimit is in bytes. Multipart uploads count against it.
	BodyLimit int

	// RateLimit is requests per minute per IP across /api.
	RateLimit int

	// UploadDir is served under /uploads when set.
	UploadDir string

	AccessLog bool
}

type Handlers struct {
	Auth        *AuthHandler
	Drive       *DriveHandler
	Application *ApplicationHandler
	Upload      *UploadHandler
	Analysis    *AnalysisHandler
}

func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	message := err.Error()
	if message == "" {
		message = "Internal Server Error"
	}

	return c.Status(code).JSON(fiber.Map{"error": message})
}

// NewApp builds the fiber app with the full middleware stack and mounts every handler under /api.
func NewApp(opts AppOptions, h Handlers) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      opts.Config.Name,
		BodyLimit:    opts.BodyLimit,
		ErrorHandler: ErrorHandler,
	})

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	if opts.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		}))
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !opts.Config.IsProduction(),
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return opts.Config.IsProduction()
		},
	}))
	app.Use(healthcheck.New(healthcheck.Config{
		ReadinessProbe: func(c *fiber.Ctx) bool {
			if opts.DB == nil {
				return false
			}
			sqlDB, err := opts.DB.DB()
			return err == nil && sqlDB.PingContext(c.UserContext()) == nil
		},
	}))
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.Metrics())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	if opts.UploadDir != "" {
		app.Static("/uploads", opts.UploadDir)
	}

	api := app.Group("/api", middleware.RateLimiter(opts.RateLimit, time.Minute))
	if opts.DB != nil {
		api.Use(middleware.DBSession(opts.DB))
	}
	h.Auth.RegisterRoutes(api)
	h.Drive.RegisterRoutes(api)
	h.Application.RegisterRoutes(api)
	h.Upload.RegisterRoutes(api)
	h.Analysis.RegisterRoutes(api)

	return app
}
