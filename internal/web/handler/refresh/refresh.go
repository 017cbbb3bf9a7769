// Package refresh provides the token refresh endpoint.
package refresh

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/auth"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/web/handler"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/web/session"
)

// Path is the path of the refresh endpoint.
const Path = handler.APIPath + "/auth/refresh"

// Service is the refresh handler service.
type Service struct {
	handler.Service
	auth *auth.Service
}

// Handler is the refresh handler.
var Handler = Service{}

// Init registers the refresh route.
func (s *Service) Init(app *fiber.App, deps handler.Deps) error {
	if app == nil || deps.Auth == nil {
		return errors.New(handler.ErrNilDepsFatalLogMsg)
	}

	s.auth = deps.Auth

	app.Post(Path, s.Post)

	return nil
}

// Post exchanges the refresh token cookie for a new token pair.
// The cookies are cleared when the refresh token or the account is no longer good.
func (s *Service) Post(c *fiber.Ctx) error {
	token := session.RefreshToken(c)
	if token == "" {
		return handler.WriteError(c, auth.ErrAuthenticationMissing)
	}

	sess, err := s.auth.Refresh(c.UserContext(), token)
	if err != nil {
		if _, ok := auth.AsError(err); ok {
			session.Clear(c)
		}

		return handler.WriteError(c, err)
	}

	session.SetTokens(c, sess.Tokens)

	return c.JSON(handler.NewSessionResponse(sess))
}
