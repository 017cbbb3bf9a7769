// Package auth provides the authentication middleware of the JSON API.
//
// The middleware reads the access token cookie, verifies it and stores the
// resulting snapshot in fiber.Locals, where auth.FromCtx and
// auth.RequirePermission pick it up. Requests without a valid token are
// answered with 401 and a bilingual error body.
//
// Usage:
//
//	api.Use(authmiddleware.New(authService))
package auth
