package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/auth"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/web/session"
)

// Authenticator verifies access tokens.
type Authenticator interface {
	Authenticate(accessToken string) (*auth.Snapshot, error)
}

// New returns a middleware that requires a valid access token cookie.
func New(a Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := session.AccessToken(c)
		if token == "" {
			return auth.Reply(c, auth.ErrAuthenticationMissing)
		}

		snap, err := a.Authenticate(token)
		if err != nil {
			e, ok := auth.AsError(err)
			if !ok {
				log.Error().Err(err).Msg("access token verification failed")

				e = auth.ErrInvalidToken
			}

			return auth.Reply(c, e)
		}

		auth.SetSnapshot(c, snap)

		return c.Next()
	}
}
