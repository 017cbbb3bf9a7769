package handler

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/auth"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/config"
)

// Deps carries what handlers need to register their routes.
type Deps struct {
	Config *config.Config
	DB     *gorm.DB
	Auth   *auth.Service
	// RequireAuth rejects requests without a valid access token.
	RequireAuth fiber.Handler
	// LoginLimiter throttles login attempts. Nil disables throttling.
	LoginLimiter fiber.Handler
}

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, deps Deps) error
}
