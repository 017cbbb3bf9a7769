package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

const localsSnapshot = "auth.snapshot"

// SetSnapshot stores s for the rest of the request.
func SetSnapshot(c *fiber.Ctx, s *Snapshot) {
	c.Locals(localsSnapshot, s)
}

// FromCtx returns the snapshot of an authenticated request.
func FromCtx(c *fiber.Ctx) (*Snapshot, bool) {
	s, ok := c.Locals(localsSnapshot).(*Snapshot)

	return s, ok && s != nil
}

// Reply writes e as JSON with its HTTP status.
func Reply(c *fiber.Ctx, e *Error) error {
	return c.Status(e.Status).JSON(e)
}

// RequirePermission lets the request through only if the authenticated snapshot
// may perform action on module in its active branch.
func RequirePermission(module Module, action Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, ok := FromCtx(c)
		if !ok {
			return Reply(c, ErrAuthenticationMissing)
		}

		if !HasPermission(s, module, action) {
			authorizationDeniedTotal.WithLabelValues(string(module), string(action)).Inc()
			log.Warn().Int64("user_id", s.ID).Str("user_type", string(s.UserType)).
				Int64("branch_id", s.ActiveBranchID).Str("module", string(module)).
				Str("action", string(action)).Msg("permission denied")

			return Reply(c, ErrForbidden)
		}

		return c.Next()
	}
}
