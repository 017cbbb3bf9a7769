// Package logout provides the logout endpoint. Logout is stateless: it expires
// the token cookies, tokens already handed out stay valid until they expire.
package logout

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/web/handler"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/web/session"
)

// Path is the path of the logout endpoint.
const Path = handler.APIPath + "/auth/logout"

// Service is the logout handler service.
type Service struct {
	handler.Service
}

// Handler is the logout handler.
var Handler = Service{}

// Init registers the logout route.
func (s *Service) Init(app *fiber.App, _ handler.Deps) error {
	if app == nil {
		return errors.New(handler.ErrNilDepsFatalLogMsg)
	}

	app.Post(Path, s.Logout)

	return nil
}

// Logout clears the token cookies.
func (s *Service) Logout(c *fiber.Ctx) error {
	session.Clear(c)

	return c.SendStatus(fiber.StatusNoContent)
}
