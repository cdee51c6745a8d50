package controllers

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"stockroom/config"
	"stockroom/middleware"
	"stockroom/models"
)

type AuthController struct {
	cfg config.Auth
	log *slog.Logger
	now func() time.Time
}

func NewAuthController(cfg config.Auth, log *slog.Logger) *AuthController {
	return &AuthController{cfg: cfg, log: log, now: time.Now}
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login checks the operator credentials and hands out a signed token.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var creds Credentials
	if err := c.BodyParser(&creds); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}

	operator := models.Operator{Username: ac.cfg.Username, PasswordHash: ac.cfg.PasswordHash}
	if !operator.CheckCredentials(creds.Username, creds.Password) {
		ac.log.Warn("failed login", "username", creds.Username, "ip", c.IP())
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid username or password"})
	}

	token, expiresAt, err := middleware.IssueToken([]byte(ac.cfg.JWTSecret), ac.cfg.Username, ac.now(), ac.cfg.TokenTTL)
	if err != nil {
		ac.log.Error("failed to sign token", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not generate token"})
	}

	ac.log.Info("operator logged in", "username", ac.cfg.Username)
	return c.JSON(LoginResponse{Token: token, Username: ac.cfg.Username, ExpiresAt: expiresAt})
}
