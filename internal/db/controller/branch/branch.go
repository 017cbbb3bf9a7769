// Package branch manages companies, branches and branch memberships.
package branch

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/db/models"
)

var (
	// ErrCompanyNotFound is returned when a company does not exist.
	ErrCompanyNotFound = errors.New("company not found")
	// ErrBranchNotFound is returned when a branch does not exist.
	ErrBranchNotFound = errors.New("branch not found")
	// ErrCompanySuspended is returned when activating a branch of a suspended company.
	ErrCompanySuspended = errors.New("company is suspended")
)

// SuspendCompany suspends the company and every branch it owns.
// It returns the number of branches that were suspended.
func SuspendCompany(db *gorm.DB, companyID int64) (int64, error) {
	var suspended int64

	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Company{}).Where("id = ?", companyID).Update("status", models.OrgSuspended)
		if res.Error != nil {
			return fmt.Errorf("failed to suspend company: %w", res.Error)
		}

		if res.RowsAffected == 0 {
			return ErrCompanyNotFound
		}

		res = tx.Model(&models.Branch{}).
			Where("company_id = ? AND status <> ?", companyID, models.OrgSuspended).
			Update("status", models.OrgSuspended)
		if res.Error != nil {
			return fmt.Errorf("failed to suspend branches: %w", res.Error)
		}

		suspended = res.RowsAffected

		return nil
	})

	return suspended, err //nolint:wrapcheck
}

// ActivateCompany reactivates a company. Its branches stay as they are.
func ActivateCompany(db *gorm.DB, companyID int64) error {
	res := db.Model(&models.Company{}).Where("id = ?", companyID).Update("status", models.OrgActive)
	if res.Error != nil {
		return fmt.Errorf("failed to activate company: %w", res.Error)
	}

	if res.RowsAffected == 0 {
		return ErrCompanyNotFound
	}

	return nil
}

// SetBranchStatus suspends or activates one branch.
// A branch of a suspended company can not be activated.
func SetBranchStatus(db *gorm.DB, branchID int64, status models.OrgStatus) error {
	var b models.Branch

	err := db.First(&b, branchID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrBranchNotFound
	}

	if err != nil {
		return fmt.Errorf("failed to load branch: %w", err)
	}

	if status == models.OrgActive {
		var company models.Company
		if err = db.First(&company, b.CompanyID).Error; err != nil {
			return fmt.Errorf("failed to load company: %w", err)
		}

		if company.Status == models.OrgSuspended {
			return ErrCompanySuspended
		}
	}

	if err = db.Model(&b).Update("status", status).Error; err != nil {
		return fmt.Errorf("failed to update branch: %w", err)
	}

	return nil
}

// AddMember makes userID a member of branchID.
func AddMember(db *gorm.DB, userID, branchID int64) error {
	if err := db.Where(models.UserBranch{UserID: userID, BranchID: branchID}).
		FirstOrCreate(&models.UserBranch{}).Error; err != nil {
		return fmt.Errorf("failed to add branch member: %w", err)
	}

	return nil
}

// RemoveMember removes userID from branchID.
func RemoveMember(db *gorm.DB, userID, branchID int64) error {
	if err := db.Where("user_id = ? AND branch_id = ?", userID, branchID).
		Delete(&models.UserBranch{}).Error; err != nil {
		return fmt.Errorf("failed to remove branch member: %w", err)
	}

	return nil
}
