package routes

import (
	"github.com/gofiber/fiber/v2"

	"stockroom/config"
	"stockroom/controllers"
	"stockroom/middleware"
)

// RegisterAuthRoutes must run before the JWT gate is installed on api.
func RegisterAuthRoutes(api fiber.Router, ac *controllers.AuthController, cfg config.Auth) {
	api.Post("/login", middleware.RateLimit(cfg.LoginRPS, cfg.LoginBurst), ac.Login)
}
