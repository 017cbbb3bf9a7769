package handler

import (
	"time"

	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/auth"
)

// SessionResponse is the body of login, refresh and branch switch.
// The tokens themselves only travel in cookies.
type SessionResponse struct {
	User                  auth.Snapshot `json:"user"`
	AccessTokenExpiresAt  time.Time     `json:"accessTokenExpiresAt"`
	RefreshTokenExpiresAt time.Time     `json:"refreshTokenExpiresAt"`
}

// NewSessionResponse builds the body for s.
func NewSessionResponse(s auth.Session) SessionResponse {
	return SessionResponse{
		User:                  s.Snapshot,
		AccessTokenExpiresAt:  s.Tokens.Access.ExpiresAt,
		RefreshTokenExpiresAt: s.Tokens.Refresh.ExpiresAt,
	}
}
