package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.url is empty.
	ErrEmptyURL = errors.New("config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("config webserver.port listening port can not be 0")

	// ErrAccessSecretMissing is returned when no access token secret is configured.
	ErrAccessSecretMissing = errors.New("access token secret is not set (" + EnvAccessTokenSecret + ")")

	// ErrRefreshSecretMissing is returned when no refresh token secret is configured.
	ErrRefreshSecretMissing = errors.New("refresh token secret is not set (" + EnvRefreshTokenSecret + ")")

	// ErrSecretsNotDistinct is returned when access and refresh tokens would share a secret.
	ErrSecretsNotDistinct = errors.New("access and refresh token secrets must differ")

	// ErrUnknownGormEngine is returned for an unsupported db.gormEngine.
	ErrUnknownGormEngine = errors.New("config db.gormEngine must be mysql, postgres or sqlite")
)
