package daemon

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/auth"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/config"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/db/models"
)

const (
	defaultCompanyName = "SchoolHub"
	defaultBranchName  = "Main"
	superAdminRoleName = "Super Admin"
)

// seed makes sure the permission catalog and the super admin role exist and
// creates the first company, branch and operator on an empty database.
func seed(cfg *config.Config, db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error { //nolint:wrapcheck
		if err := seedPermissions(tx); err != nil {
			return err
		}

		superAdmin := models.Role{}
		if err := tx.Where(models.Role{Code: models.RoleCodeSuperAdmin, IsSystem: true}).
			Attrs(models.Role{Name: superAdminRoleName, Description: "Full access to every branch"}).
			FirstOrCreate(&superAdmin).Error; err != nil {
			return fmt.Errorf("failed to seed super admin role: %w", err)
		}

		var users int64
		if err := tx.Model(&models.User{}).Count(&users).Error; err != nil {
			return fmt.Errorf("failed to count users: %w", err)
		}

		if users > 0 {
			return nil
		}

		return seedAdmin(tx, cfg.Seed, superAdmin)
	})
}

func seedPermissions(tx *gorm.DB) error {
	for _, m := range auth.Modules() {
		for _, a := range auth.Actions() {
			p := models.Permission{}
			if err := tx.Where(models.Permission{Module: string(m), Action: string(a)}).
				Attrs(models.Permission{Description: string(a) + " access to " + string(m)}).
				FirstOrCreate(&p).Error; err != nil {
				return fmt.Errorf("failed to seed permission %s:%s: %w", m, a, err)
			}
		}
	}

	return nil
}

func seedAdmin(tx *gorm.DB, s config.Seed, superAdmin models.Role) error {
	if s.AdminEmail == "" || s.AdminPassword == "" {
		log.Warn().Msg("user table is empty and no seed admin is configured")

		return nil
	}

	company := models.Company{}

	err := tx.Preload("Branches").Order("id").First(&company).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		company = models.Company{
			Name:   orDefault(s.CompanyName, defaultCompanyName),
			Status: models.OrgActive,
			Branches: []models.Branch{
				{Name: orDefault(s.BranchName, defaultBranchName), Status: models.OrgActive},
			},
		}
		err = tx.Create(&company).Error
	}

	if err != nil {
		return fmt.Errorf("failed to seed company: %w", err)
	}

	hash, err := models.HashPassword(s.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash seed admin password: %w", err)
	}

	admin := models.User{
		CompanyID: company.ID,
		Email:     auth.NormalizeEmail(s.AdminEmail),
		Password:  hash,
		FirstName: "Super",
		LastName:  "Admin",
		Status:    models.StatusActive,
		Branches:  company.Branches,
		Roles:     []models.Role{superAdmin},
	}

	if err = tx.Omit("Branches.*", "Roles.*").Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	log.Warn().Str("email", admin.Email).Msg("created initial super admin, change its password")

	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}

	return v
}
