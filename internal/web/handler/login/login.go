// Package login provides the login endpoint of the JSON API.
//
// A successful login sets the access and refresh token cookies and answers
// with the capability snapshot of the default branch.
package login

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/auth"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/web/handler"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/web/session"
)

const (
	// Path is the path of the login endpoint.
	Path = handler.APIPath + "/auth/login"
)

// ErrNilDeps is returned by Init when app or the auth service is nil.
var ErrNilDeps = errors.New(handler.ErrNilDepsFatalLogMsg)

// Request is the login body.
type Request struct {
	Email    string `json:"email" validate:"required,email,max=320"`
	Password string `json:"password" validate:"required,max=1024"`
}

// Service is the login handler service.
type Service struct {
	handler.Service
	auth *auth.Service
}

// Handler is the login handler.
var Handler = Service{}

// Init registers the login route.
func (s *Service) Init(app *fiber.App, deps handler.Deps) error {
	if app == nil || deps.Auth == nil {
		return ErrNilDeps
	}

	s.auth = deps.Auth

	chain := make([]fiber.Handler, 0, 2) //nolint:mnd
	if deps.LoginLimiter != nil {
		chain = append(chain, deps.LoginLimiter)
	}

	app.Post(Path, append(chain, s.Post)...)

	return nil
}

// Post handles the login request.
func (s *Service) Post(c *fiber.Ctx) error {
	req := new(Request)
	if err := c.BodyParser(req); err != nil {
		return handler.WriteError(c, handler.ErrInvalidRequest)
	}

	req.Email = auth.NormalizeEmail(req.Email)

	if err := handler.Validate(req); err != nil {
		return handler.WriteError(c, err)
	}

	sess, err := s.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if _, ok := auth.AsError(err); !ok {
			log.Error().Err(err).Msg("login failed")
		}

		return handler.WriteError(c, err)
	}

	session.SetTokens(c, sess.Tokens)

	log.Info().Int64("user_id", sess.Snapshot.ID).Str("user_type", string(sess.Snapshot.UserType)).
		Int64("branch_id", sess.Snapshot.ActiveBranchID).Msg("login")

	return c.JSON(handler.NewSessionResponse(sess))
}
