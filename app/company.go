package app

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/daemon"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/db/controller/branch"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/db/models"
)

func init() { //nolint: gochecknoinits
	companyCmd.AddCommand(companySuspendCmd, companyActivateCmd)
	branchCmd.AddCommand(branchSuspendCmd, branchActivateCmd, branchAddMemberCmd, branchRemoveMemberCmd)
	rootCmd.AddCommand(companyCmd, branchCmd)
}

var (
	companyCmd = &cobra.Command{
		Use:   "company",
		Short: "Manage companies",
	}

	companySuspendCmd = &cobra.Command{
		Use:   "suspend <company-id>",
		Short: "Suspend a company and all of its branches",
		Args:  cobra.ExactArgs(1),
		RunE: withDB(func(cmd *cobra.Command, db *gorm.DB, ids []int64) error {
			branches, err := branch.SuspendCompany(db, ids[0])
			if err != nil {
				return err //nolint:wrapcheck
			}

			log.Info().Int64("company_id", ids[0]).Int64("branches", branches).Msg("company suspended")

			return printf(cmd, "company %d suspended with %d branches\n", ids[0], branches)
		}),
	}

	companyActivateCmd = &cobra.Command{
		Use:   "activate <company-id>",
		Short: "Reactivate a company, its branches stay as they are",
		Args:  cobra.ExactArgs(1),
		RunE: withDB(func(cmd *cobra.Command, db *gorm.DB, ids []int64) error {
			if err := branch.ActivateCompany(db, ids[0]); err != nil {
				return err //nolint:wrapcheck
			}

			return printf(cmd, "company %d activated\n", ids[0])
		}),
	}

	branchCmd = &cobra.Command{
		Use:   "branch",
		Short: "Manage branches and branch memberships",
	}

	branchSuspendCmd = &cobra.Command{
		Use:   "suspend <branch-id>",
		Short: "Suspend a branch",
		Args:  cobra.ExactArgs(1),
		RunE:  setBranchStatus(models.OrgSuspended),
	}

	branchActivateCmd = &cobra.Command{
		Use:   "activate <branch-id>",
		Short: "Activate a branch of an active company",
		Args:  cobra.ExactArgs(1),
		RunE:  setBranchStatus(models.OrgActive),
	}

	branchAddMemberCmd = &cobra.Command{
		Use:   "add-member <user-id> <branch-id>",
		Short: "Make a user a member of a branch",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: withDB(func(cmd *cobra.Command, db *gorm.DB, ids []int64) error {
			if err := branch.AddMember(db, ids[0], ids[1]); err != nil {
				return err //nolint:wrapcheck
			}

			return printf(cmd, "user %d added to branch %d\n", ids[0], ids[1])
		}),
	}

	branchRemoveMemberCmd = &cobra.Command{
		Use:   "remove-member <user-id> <branch-id>",
		Short: "Remove a user from a branch",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: withDB(func(cmd *cobra.Command, db *gorm.DB, ids []int64) error {
			if err := branch.RemoveMember(db, ids[0], ids[1]); err != nil {
				return err //nolint:wrapcheck
			}

			return printf(cmd, "user %d removed from branch %d\n", ids[0], ids[1])
		}),
	}
)

func setBranchStatus(status models.OrgStatus) func(*cobra.Command, []string) error {
	return withDB(func(cmd *cobra.Command, db *gorm.DB, ids []int64) error {
		if err := branch.SetBranchStatus(db, ids[0], status); err != nil {
			return err //nolint:wrapcheck
		}

		log.Info().Int64("branch_id", ids[0]).Str("status", string(status)).Msg("branch status changed")

		return printf(cmd, "branch %d is now %s\n", ids[0], status)
	})
}

// withDB parses every argument as an id and runs fn against the configured database.
func withDB(fn func(cmd *cobra.Command, db *gorm.DB, ids []int64) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ids := make([]int64, 0, len(args))

		for _, a := range args {
			id, err := strconv.ParseInt(a, 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid id %q", a)
			}

			ids = append(ids, id)
		}

		db, err := daemon.OpenDB(&cfg)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}

		return fn(cmd, db, ids)
	}
}

func printf(cmd *cobra.Command, format string, a ...any) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), format, a...)

	return err //nolint:wrapcheck
}
