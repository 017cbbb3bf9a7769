// Package branch provides the branch context switch endpoint.
package branch

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/auth"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/web/handler"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/web/session"
)

// Path is the path of the branch switch endpoint.
const Path = handler.APIPath + "/auth/branch"

// Request is the branch switch body.
type Request struct {
	BranchID int64 `json:"branchId" validate:"required,gt=0"`
}

// Service is the branch switch handler service.
type Service struct {
	handler.Service
	auth *auth.Service
}

// Handler is the branch switch handler.
var Handler = Service{}

// Init registers the branch switch route.
func (s *Service) Init(app *fiber.App, deps handler.Deps) error {
	if app == nil || deps.Auth == nil || deps.RequireAuth == nil {
		return errors.New(handler.ErrNilDepsFatalLogMsg)
	}

	s.auth = deps.Auth

	app.Post(Path, deps.RequireAuth, s.Post)

	return nil
}

// Post makes the requested branch the active one and reissues the tokens.
func (s *Service) Post(c *fiber.Ctx) error {
	current, ok := auth.FromCtx(c)
	if !ok {
		return handler.WriteError(c, auth.ErrAuthenticationMissing)
	}

	req := new(Request)
	if err := handler.Bind(c, req); err != nil {
		return handler.WriteError(c, err)
	}

	sess, err := s.auth.SwitchBranch(c.UserContext(), current, req.BranchID)
	if err != nil {
		return handler.WriteError(c, err)
	}

	session.SetTokens(c, sess.Tokens)

	log.Info().Int64("user_id", sess.Snapshot.ID).Str("user_type", string(sess.Snapshot.UserType)).
		Int64("branch_id", sess.Snapshot.ActiveBranchID).Msg("branch switched")

	return c.JSON(handler.NewSessionResponse(sess))
}
