// Package config reads etc/main.toml and the environment into Config.
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// EnvConfigJSON holds a JSON document merged over the file config.
	EnvConfigJSON = "SCHOOLHUB_ADMIN_CONFIG_JSON"

	// EnvAccessTokenSecret holds the access token signing secret.
	EnvAccessTokenSecret = "SCHOOLHUB_ACCESS_TOKEN_SECRET" //nolint:gosec

	// EnvRefreshTokenSecret holds the refresh token signing secret.
	EnvRefreshTokenSecret = "SCHOOLHUB_REFRESH_TOKEN_SECRET" //nolint:gosec

	// DefaultAccessTTL is the lifetime of an access token.
	DefaultAccessTTL = 6 * time.Hour

	// DefaultRefreshTTL is the lifetime of a refresh token.
	DefaultRefreshTTL = 7 * 24 * time.Hour

	defaultShutDownTime = 5
	masked              = "********"
)

// ReadConfig reads main.toml from path and applies the environment overrides.
func ReadConfig(path string) (Config, error) {
	var c Config

	if path == "" {
		path = "./etc/"
	}

	v := viper.New()
	v.SetConfigFile(filepath.Join(path, "main.toml"))
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	if err := v.BindEnv("token.accessSecret", EnvAccessTokenSecret); err != nil {
		return Config{}, errors.Wrap(err, "failed to bind env")
	}

	if err := v.BindEnv("token.refreshSecret", EnvRefreshTokenSecret); err != nil {
		return Config{}, errors.Wrap(err, "failed to bind env")
	}

	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode main config file")
	}

	if override := os.Getenv(EnvConfigJSON); override != "" {
		if err := json.Unmarshal([]byte(override), &c); err != nil {
			return Config{}, errors.Wrap(err, "failed to decode "+EnvConfigJSON)
		}
	}

	return c, validate(&c)
}

// DumpConfigJSON returns c as indented JSON with secrets masked.
func DumpConfigJSON(c Config) (string, error) {
	if c.Token.AccessSecret != "" {
		c.Token.AccessSecret = masked
	}

	if c.Token.RefreshSecret != "" {
		c.Token.RefreshSecret = masked
	}

	if c.DB.Password != "" {
		c.DB.Password = masked
	}

	if c.Seed.AdminPassword != "" {
		c.Seed.AdminPassword = masked
	}

	var buffer bytes.Buffer

	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint:wrapcheck
	}

	return buffer.String(), nil
}

// validate checks the settings the service can not start without and fills in defaults.
func validate(c *Config) error {
	const invalid = "invalid config"

	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalid)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalid)
	}

	switch c.DB.GormEngine {
	case EngineMySQL, EnginePostgres, EngineSQLite:
	default:
		return errors.Wrap(ErrUnknownGormEngine, invalid)
	}

	if c.Token.AccessSecret == "" {
		return errors.Wrap(ErrAccessSecretMissing, invalid)
	}

	if c.Token.RefreshSecret == "" {
		return errors.Wrap(ErrRefreshSecretMissing, invalid)
	}

	if c.Token.AccessSecret == c.Token.RefreshSecret {
		return errors.Wrap(ErrSecretsNotDistinct, invalid)
	}

	if c.Token.AccessTTL <= 0 {
		c.Token.AccessTTL = DefaultAccessTTL
	}

	if c.Token.RefreshTTL <= 0 {
		c.Token.RefreshTTL = DefaultRefreshTTL
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = defaultShutDownTime
	}

	return nil
}
