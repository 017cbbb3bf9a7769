package app

import (
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/db/controller/role"
)

func init() { //nolint: gochecknoinits
	roleCmd.AddCommand(roleAssignCmd, roleUnassignCmd)
	rootCmd.AddCommand(roleCmd)
}

var (
	roleCmd = &cobra.Command{
		Use:   "role",
		Short: "Assign roles to users",
	}

	roleAssignCmd = &cobra.Command{
		Use:   "assign <user-id> <role-id>",
		Short: "Give a user a role, effective from the next login or refresh",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: withDB(func(cmd *cobra.Command, db *gorm.DB, ids []int64) error {
			if err := role.Assign(db, ids[0], ids[1]); err != nil {
				return err //nolint:wrapcheck
			}

			return printf(cmd, "role %d assigned to user %d\n", ids[1], ids[0])
		}),
	}

	roleUnassignCmd = &cobra.Command{
		Use:   "unassign <user-id> <role-id>",
		Short: "Take a role away from a user",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: withDB(func(cmd *cobra.Command, db *gorm.DB, ids []int64) error {
			if err := role.Unassign(db, ids[0], ids[1]); err != nil {
				return err //nolint:wrapcheck
			}

			return printf(cmd, "role %d removed from user %d\n", ids[1], ids[0])
		}),
	}
)
