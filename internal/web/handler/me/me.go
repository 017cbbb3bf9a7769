// Package me answers who the caller is and what the caller may do in the active branch.
package me

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/auth"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/web/handler"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/web/navigation"
)

// Path is the path of the endpoint.
const Path = handler.APIPath + "/auth/me"

// Response is the body of the endpoint.
type Response struct {
	User       *auth.Snapshot     `json:"user"`
	Navigation []navigation.Entry `json:"navigation"`
}

// Service is the handler service.
type Service struct {
	handler.Service
}

// Handler is the handler.
var Handler = Service{}

// Init registers the route.
func (s *Service) Init(app *fiber.App, deps handler.Deps) error {
	if app == nil || deps.RequireAuth == nil {
		return errors.New(handler.ErrNilDepsFatalLogMsg)
	}

	app.Get(Path, deps.RequireAuth, s.Get)

	return nil
}

// Get returns the snapshot of the access token and the module menu.
func (s *Service) Get(c *fiber.Ctx) error {
	snap, ok := auth.FromCtx(c)
	if !ok {
		return handler.WriteError(c, auth.ErrAuthenticationMissing)
	}

	return c.JSON(Response{User: snap, Navigation: navigation.Build(snap)})
}
