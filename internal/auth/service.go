package auth

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
)

// Session is the result of a login, refresh or branch switch.
type Session struct {
	Snapshot Snapshot
	Tokens   TokenPair
}

// Service ties the resolver, the account store and the issuer together.
type Service struct {
	resolver *Resolver
	store    AccountStore
	issuer   *Issuer
}

// NewService creates a new auth service.
func NewService(store AccountStore, issuer *Issuer) *Service {
	return &Service{
		resolver: NewResolver(store),
		store:    store,
		issuer:   issuer,
	}
}

// Login authenticates email and password and issues a token pair for the default branch.
func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	account, err := s.resolver.Login(ctx, email, password)
	loginTotal.WithLabelValues(outcome(err)).Inc()

	if err != nil {
		return Session{}, err
	}

	return s.issue(account, nil, "login")
}

// SwitchBranch issues a new pair with branchID as the active branch.
// The account is loaded fresh; branchID must be one of its current memberships.
// Tokens issued earlier stay valid until they expire.
func (s *Service) SwitchBranch(ctx context.Context, current *Snapshot, branchID int64) (Session, error) {
	if current == nil {
		return Session{}, ErrAuthenticationMissing
	}

	account, err := s.reload(ctx, current)
	if err != nil {
		return Session{}, err
	}

	if !IsMember(account, branchID) {
		log.Warn().Int64("user_id", current.ID).Str("user_type", string(current.UserType)).
			Int64("branch_id", branchID).Msg("branch switch to a branch without membership")

		return Session{}, ErrAuthenticationMissing
	}

	return s.issue(account, &branchID, "switch")
}

// Refresh verifies a refresh token and issues a new pair from the current account state.
// The previous active branch is kept while the account is still a member of it.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (Session, error) {
	current, err := s.issuer.Verify(refreshToken, TokenRefresh)
	if err != nil {
		return Session{}, err
	}

	account, err := s.reload(ctx, current)
	if err != nil {
		return Session{}, err
	}

	var active *int64
	if IsMember(account, current.ActiveBranchID) {
		active = &current.ActiveBranchID
	}

	return s.issue(account, active, "refresh")
}

// Authenticate verifies an access token.
func (s *Service) Authenticate(accessToken string) (*Snapshot, error) {
	return s.issuer.Verify(accessToken, TokenAccess)
}

// reload fetches the account behind snap and re-applies the status gates.
func (s *Service) reload(ctx context.Context, snap *Snapshot) (Account, error) {
	account, err := s.store.FindAccount(ctx, snap.UserType, snap.ID)
	if errors.Is(err, ErrAccountNotFound) {
		return nil, ErrAuthenticationMissing
	}

	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if err = CheckStatus(account); err != nil {
		return nil, err
	}

	return account, nil
}

func (s *Service) issue(account Account, active *int64, reason string) (Session, error) {
	snap, err := BuildSnapshot(account, active)
	if err != nil {
		return Session{}, err
	}

	tokens, err := s.issuer.IssuePair(snap)
	if err != nil {
		log.Error().Err(err).Int64("user_id", snap.ID).Msg("failed to sign tokens")

		return Session{}, err
	}

	tokensIssuedTotal.WithLabelValues(reason).Inc()

	return Session{Snapshot: snap, Tokens: tokens}, nil
}
