package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/db/models"
)

// AccountStore loads accounts. Lookups return ErrAccountNotFound when nothing matches.
type AccountStore interface {
	FindUserByEmail(ctx context.Context, email string) (*Operator, error)
	FindStudentByEmail(ctx context.Context, email string) (*Student, error)
	FindParentByEmail(ctx context.Context, email string) (*Guardian, error)
	FindAccount(ctx context.Context, kind Kind, id int64) (Account, error)
}

// Resolver turns login credentials into an account.
type Resolver struct {
	store AccountStore
}

// NewResolver creates a new Resolver.
func NewResolver(store AccountStore) *Resolver {
	return &Resolver{store: store}
}

// NormalizeEmail is the form emails are stored and looked up in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Resolve looks email up as user, student and parent at the same time.
// Emails are expected to be unique across the three kinds; if they are not, the
// user wins over the student and the student over the parent.
func (r *Resolver) Resolve(ctx context.Context, email string) (Account, error) {
	var (
		operator *Operator
		student  *Student
		guardian *Guardian
	)

	email = NormalizeEmail(email)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		found, err := r.store.FindUserByEmail(gctx, email)
		operator = found

		return ignoreNotFound(err)
	})

	g.Go(func() error {
		found, err := r.store.FindStudentByEmail(gctx, email)
		student = found

		return ignoreNotFound(err)
	})

	g.Go(func() error {
		found, err := r.store.FindParentByEmail(gctx, email)
		guardian = found

		return ignoreNotFound(err)
	})

	if err := g.Wait(); err != nil {
		return nil, err //nolint:wrapcheck
	}

	var matches []Account

	if operator != nil {
		matches = append(matches, operator)
	}

	if student != nil {
		matches = append(matches, student)
	}

	if guardian != nil {
		matches = append(matches, guardian)
	}

	if len(matches) == 0 {
		return nil, ErrAccountNotFound
	}

	if len(matches) > 1 {
		kinds := make([]string, 0, len(matches))
		for _, m := range matches {
			kinds = append(kinds, string(m.Kind()))
		}

		log.Warn().Str("email", email).Strs("kinds", kinds).
			Msg("email matches more than one account kind")
	}

	return matches[0], nil
}

// Login resolves email, applies the status gates and verifies password.
// Status is checked before the password so a disabled account never reveals
// whether the password was right.
func (r *Resolver) Login(ctx context.Context, email, password string) (Account, error) {
	account, err := r.Resolve(ctx, email)
	if err != nil {
		return nil, err
	}

	if err = CheckStatus(account); err != nil {
		return nil, err
	}

	if !models.VerifyPassword(account.profile().PasswordHash, password) {
		return nil, ErrWrongPassword
	}

	return account, nil
}

// CheckStatus applies the lifecycle gates in order: suspended, invited, then for
// students anything but active.
func CheckStatus(a Account) error {
	status := a.profile().Status

	switch status { //nolint:exhaustive
	case models.StatusSuspended:
		return ErrAccountSuspended
	case models.StatusInvited:
		return ErrInvitationNotCompleted
	}

	if _, ok := a.(*Student); ok {
		switch status { //nolint:exhaustive
		case models.StatusActive:
			return nil
		case models.StatusRejected:
			return ErrStudentRejected
		default:
			return ErrStudentNotApprovedYet
		}
	}

	return nil
}

func ignoreNotFound(err error) error {
	if errors.Is(err, ErrAccountNotFound) {
		return nil
	}

	return err
}
