package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func etcPath(t *testing.T) string {
	t.Helper()

	root, err := filepath.Abs("../../")
	require.NoError(t, err)

	return filepath.Join(root, "etc") + string(filepath.Separator)
}

func TestReadConfig(t *testing.T) {
	t.Setenv(EnvAccessTokenSecret, "access-secret")
	t.Setenv(EnvRefreshTokenSecret, "refresh-secret")

	cfg, err := ReadConfig(etcPath(t))
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Title)
	assert.Equal(t, 8080, cfg.Webserver.Port)
	assert.NotEmpty(t, cfg.Webserver.URL)
	assert.Equal(t, EngineMySQL, cfg.DB.GormEngine)
	assert.Equal(t, "schoolhub-admin", cfg.Log.AppName)
	assert.Equal(t, "access.log", cfg.Log.File.Access.Name)
	assert.Equal(t, time.Minute, cfg.Webserver.LoginLimit.Expiration)

	assert.Equal(t, "access-secret", cfg.Token.AccessSecret)
	assert.Equal(t, "refresh-secret", cfg.Token.RefreshSecret)
	assert.Equal(t, 6*time.Hour, cfg.Token.AccessTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Token.RefreshTTL)
}

func TestReadConfigMissingSecret(t *testing.T) {
	t.Setenv(EnvAccessTokenSecret, "")
	t.Setenv(EnvRefreshTokenSecret, "refresh-secret")

	_, err := ReadConfig(etcPath(t))
	require.ErrorIs(t, err, ErrAccessSecretMissing)
}

func TestReadConfigJSONOverride(t *testing.T) {
	t.Setenv(EnvAccessTokenSecret, "access-secret")
	t.Setenv(EnvRefreshTokenSecret, "refresh-secret")
	t.Setenv(EnvConfigJSON, `{"title":"Override","db":{"gormEngine":"sqlite","name":"dev.db"}}`)

	cfg, err := ReadConfig(etcPath(t))
	require.NoError(t, err)

	assert.Equal(t, "Override", cfg.Title)
	assert.Equal(t, EngineSQLite, cfg.DB.GormEngine)
	assert.Equal(t, "dev.db", cfg.DB.Name)
	// untouched fields survive the merge
	assert.Equal(t, 8080, cfg.Webserver.Port)
}

func TestReadConfigMissingFile(t *testing.T) {
	_, err := ReadConfig(t.TempDir())
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			DB:        DB{GormEngine: EngineSQLite},
			Webserver: Webserver{Port: 8080, URL: "http://localhost"},
			Token:     Token{AccessSecret: "a", RefreshSecret: "r"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "port zero", mutate: func(c *Config) { c.Webserver.Port = 0 }, wantErr: ErrWebServerPortCanNotBeZero},
		{name: "empty url", mutate: func(c *Config) { c.Webserver.URL = "" }, wantErr: ErrEmptyURL},
		{name: "unknown engine", mutate: func(c *Config) { c.DB.GormEngine = "oracle" }, wantErr: ErrUnknownGormEngine},
		{name: "no access secret", mutate: func(c *Config) { c.Token.AccessSecret = "" }, wantErr: ErrAccessSecretMissing},
		{name: "no refresh secret", mutate: func(c *Config) { c.Token.RefreshSecret = "" }, wantErr: ErrRefreshSecretMissing},
		{name: "shared secret", mutate: func(c *Config) { c.Token.RefreshSecret = "a" }, wantErr: ErrSecretsNotDistinct},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)

			err := validate(&c)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, DefaultAccessTTL, c.Token.AccessTTL)
			assert.Equal(t, DefaultRefreshTTL, c.Token.RefreshTTL)
			assert.Equal(t, defaultShutDownTime, c.Webserver.ShutDownTime)
		})
	}
}

func TestDumpConfigJSON(t *testing.T) {
	out, err := DumpConfigJSON(Config{
		Title: "dump",
		DB:    DB{Password: "db-pass"},
		Token: Token{AccessSecret: "a-secret", RefreshSecret: "r-secret"},
	})
	require.NoError(t, err)

	assert.True(t, strings.Contains(out, `"title": "dump"`))
	assert.NotContains(t, out, "a-secret")
	assert.NotContains(t, out, "r-secret")
	assert.NotContains(t, out, "db-pass")
}
