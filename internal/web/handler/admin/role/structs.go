package role

import (
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/db/models"
)

// GrantRequest names one catalog permission.
type GrantRequest struct {
	Module string `json:"module" validate:"required,max=100"`
	Action string `json:"action" validate:"required,oneof=read write delete"`
}

// CreateRequest is the body of a role creation.
type CreateRequest struct {
	Name        string         `json:"name" validate:"required,max=100"`
	Description string         `json:"description" validate:"max=255"`
	Code        string         `json:"code" validate:"omitempty,oneof=BRANCH_MANAGER MODULE_MANAGER STAFF TEACHER"`
	Module      string         `json:"module" validate:"required_if=Code MODULE_MANAGER,max=100"`
	Permissions []GrantRequest `json:"permissions" validate:"dive"`
}

// PermissionsRequest replaces the grants of a role.
type PermissionsRequest struct {
	Permissions []GrantRequest `json:"permissions" validate:"dive"`
}

// Response is the JSON form of a role.
type Response struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	BranchID    *int64          `json:"branchId"`
	IsSystem    bool            `json:"isSystem"`
	Code        models.RoleCode `json:"code,omitempty"`
	Module      string          `json:"module,omitempty"`
	Permissions []string        `json:"permissions"`
}

func toResponse(r *models.Role) Response {
	perms := make([]string, 0, len(r.Permissions))
	for _, p := range r.Permissions {
		perms = append(perms, p.Module+":"+p.Action)
	}

	return Response{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		BranchID:    r.BranchID,
		IsSystem:    r.IsSystem,
		Code:        r.Code,
		Module:      r.Module,
		Permissions: perms,
	}
}
