// Package session moves capability tokens between the auth service and the browser.
//
// Tokens travel in two cookies. Both are HttpOnly and Secure with SameSite=None,
// so the back office front end can run on its own origin.
package session

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/auth"
)

const (
	// AccessCookie carries the access token.
	AccessCookie = "Authorization"

	// RefreshCookie carries the refresh token.
	RefreshCookie = "RefreshToken"
)

// SetTokens writes both tokens of pair as cookies that live as long as the token.
func SetTokens(c *fiber.Ctx, pair auth.TokenPair) {
	c.Cookie(cookie(AccessCookie, pair.Access.Value, pair.Access.TTL))
	c.Cookie(cookie(RefreshCookie, pair.Refresh.Value, pair.Refresh.TTL))
}

// Clear expires both token cookies.
func Clear(c *fiber.Ctx) {
	for _, name := range []string{AccessCookie, RefreshCookie} {
		ck := cookie(name, "", 0)
		ck.MaxAge = -1
		ck.Expires = time.Unix(0, 0)
		c.Cookie(ck)
	}
}

// AccessToken returns the access token of the request, if any.
func AccessToken(c *fiber.Ctx) string {
	return c.Cookies(AccessCookie)
}

// RefreshToken returns the refresh token of the request, if any.
func RefreshToken(c *fiber.Ctx) string {
	return c.Cookies(RefreshCookie)
}

func cookie(name, value string, ttl time.Duration) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		Secure:   true,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteNoneMode,
	}
}
