package routes

import (
	"io"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"stockroom/config"
	"stockroom/controllers"
	"stockroom/inventory"
	"stockroom/middleware"
)

// NewApp wires the HTTP surface around store. Access logs go to accessLog.
func NewApp(store *inventory.Store, cfg config.Config, log *slog.Logger, accessLog io.Writer) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "stockroom",
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Output: accessLog,
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.HTTP.AllowOrigins, ","),
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
		AllowHeaders: "Content-Type, Authorization",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "stockroom is running"})
	})

	api := app.Group("/api")
	if cfg.Auth.Enabled {
		RegisterAuthRoutes(api, controllers.NewAuthController(cfg.Auth, log), cfg.Auth)
		api.Use(middleware.JWT([]byte(cfg.Auth.JWTSecret), log))
	}
	RegisterProductRoutes(api, controllers.NewProductController(store, log))
	RegisterReportRoutes(api, controllers.NewReportController(store, log))

	return app
}
