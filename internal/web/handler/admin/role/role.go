// Package role provides the role administration endpoints.
//
// Every route works on the active branch of the caller and is guarded by the
// users-and-roles permissions.
package role

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/auth"
	rolecontroller "github.com/SchoolHub-Admin/SchoolHub-Admin/internal/db/controller/role"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/db/models"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/web/handler"
)

// Path is the base path for role handlers.
const Path = handler.APIPath + "/admin/roles"

// ErrInvalidRoleID is returned when the :id path parameter is not a number.
var ErrInvalidRoleID = handler.NewProblem(fiber.StatusBadRequest, "INVALID_ROLE_ID", "invalid role id")

// Service is the role handler service.
type Service struct {
	handler.Service
	db *gorm.DB
}

// Handler is the role handler.
var Handler = Service{}

// Init registers the role routes.
func (s *Service) Init(app *fiber.App, deps handler.Deps) error {
	if app == nil || deps.DB == nil || deps.RequireAuth == nil {
		return errors.New(handler.ErrNilDepsFatalLogMsg)
	}

	s.db = deps.DB

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, deps.RequireAuth,
			auth.RequirePermission(auth.ModuleUsersAndRoles, auth.ActionRead), s.List)
		router.Post(handler.RouterRootPath, deps.RequireAuth,
			auth.RequirePermission(auth.ModuleUsersAndRoles, auth.ActionWrite), s.Create)
		router.Put("/:id/permissions", deps.RequireAuth,
			auth.RequirePermission(auth.ModuleUsersAndRoles, auth.ActionWrite), s.SetPermissions)
		router.Delete("/:id", deps.RequireAuth,
			auth.RequirePermission(auth.ModuleUsersAndRoles, auth.ActionDelete), s.Delete)
	})

	return nil
}

// List returns the roles of the active branch and the system roles.
func (s *Service) List(c *fiber.Ctx) error {
	branchID, err := activeBranch(c)
	if err != nil {
		return handler.WriteError(c, err)
	}

	roles, err := rolecontroller.List(s.db, branchID)
	if err != nil {
		return handler.WriteError(c, err)
	}

	out := make([]Response, 0, len(roles))
	for i := range roles {
		out = append(out, toResponse(&roles[i]))
	}

	return c.JSON(out)
}

// Create adds a role to the active branch.
func (s *Service) Create(c *fiber.Ctx) error {
	branchID, err := activeBranch(c)
	if err != nil {
		return handler.WriteError(c, err)
	}

	req := new(CreateRequest)
	if err = handler.Bind(c, req); err != nil {
		return handler.WriteError(c, err)
	}

	if req.Module != "" && !auth.Module(req.Module).Valid() {
		return handler.WriteError(c, problem(rolecontroller.ErrUnknownPermission))
	}

	r := &models.Role{
		Name:        req.Name,
		Description: req.Description,
		Code:        models.RoleCode(req.Code),
		Module:      req.Module,
	}

	var created *models.Role

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := rolecontroller.Create(tx, branchID, r); err != nil {
			return err //nolint:wrapcheck
		}

		created, err = rolecontroller.SetPermissions(tx, branchID, r.ID, grants(req.Permissions))

		return err //nolint:wrapcheck
	})
	if err != nil {
		return handler.WriteError(c, problem(err))
	}

	s.audit(c, "role created", created.ID)

	return c.Status(fiber.StatusCreated).JSON(toResponse(created))
}

// SetPermissions replaces the grants of a role of the active branch.
func (s *Service) SetPermissions(c *fiber.Ctx) error {
	branchID, err := activeBranch(c)
	if err != nil {
		return handler.WriteError(c, err)
	}

	id, err := roleID(c)
	if err != nil {
		return handler.WriteError(c, err)
	}

	req := new(PermissionsRequest)
	if err = handler.Bind(c, req); err != nil {
		return handler.WriteError(c, err)
	}

	updated, err := rolecontroller.SetPermissions(s.db, branchID, id, grants(req.Permissions))
	if err != nil {
		return handler.WriteError(c, problem(err))
	}

	s.audit(c, "role permissions replaced", id)

	return c.JSON(toResponse(updated))
}

// Delete removes a role of the active branch.
func (s *Service) Delete(c *fiber.Ctx) error {
	branchID, err := activeBranch(c)
	if err != nil {
		return handler.WriteError(c, err)
	}

	id, err := roleID(c)
	if err != nil {
		return handler.WriteError(c, err)
	}

	if err = rolecontroller.Delete(s.db, branchID, id); err != nil {
		return handler.WriteError(c, problem(err))
	}

	s.audit(c, "role deleted", id)

	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Service) audit(c *fiber.Ctx, msg string, roleID int64) {
	snap, ok := auth.FromCtx(c)
	if !ok {
		return
	}

	log.Info().Int64("user_id", snap.ID).Str("user_type", string(snap.UserType)).
		Int64("branch_id", snap.ActiveBranchID).Int64("role_id", roleID).Msg(msg)
}

func activeBranch(c *fiber.Ctx) (int64, error) {
	snap, ok := auth.FromCtx(c)
	if !ok {
		return 0, auth.ErrAuthenticationMissing
	}

	if snap.ActiveBranchID == auth.NoBranch {
		return 0, handler.ErrNoActiveBranch
	}

	return snap.ActiveBranchID, nil
}

func roleID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidRoleID
	}

	return id, nil
}

func grants(in []GrantRequest) []rolecontroller.Grant {
	out := make([]rolecontroller.Grant, 0, len(in))
	for _, g := range in {
		out = append(out, rolecontroller.Grant{Module: g.Module, Action: g.Action})
	}

	return out
}

// problem maps controller errors to their HTTP form.
func problem(err error) error {
	switch {
	case errors.Is(err, rolecontroller.ErrRoleNotFound):
		return handler.NewProblem(fiber.StatusNotFound, "ROLE_NOT_FOUND", err.Error())
	case errors.Is(err, rolecontroller.ErrRoleExists):
		return handler.NewProblem(fiber.StatusConflict, "ROLE_EXISTS", err.Error())
	case errors.Is(err, rolecontroller.ErrSystemRole):
		return handler.NewProblem(fiber.StatusForbidden, "SYSTEM_ROLE", err.Error())
	case errors.Is(err, rolecontroller.ErrRoleNameEmpty),
		errors.Is(err, rolecontroller.ErrReservedCode),
		errors.Is(err, rolecontroller.ErrModuleRequired),
		errors.Is(err, rolecontroller.ErrUnknownPermission):
		return handler.NewProblem(fiber.StatusBadRequest, "INVALID_ROLE", err.Error())
	default:
		return err
	}
}
