package config

import (
	"time"

	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool       `mapstructure:"devMode" json:"devMode"` // enable dev mode for development
	Title     string     `mapstructure:"title" json:"title"`
	DB        DB         `mapstructure:"db" json:"db"`
	Log       logger.Log `mapstructure:"log" json:"log"`
	Webserver Webserver  `mapstructure:"webserver" json:"webserver"`
	Token     Token      `mapstructure:"token" json:"token"`
	Seed      Seed       `mapstructure:"seed" json:"seed"`
}

// Webserver implement webserver settings.
type Webserver struct {
	Port           int       `mapstructure:"port" json:"port"`                     // listening port
	URL            string    `mapstructure:"url" json:"url"`                       // public base url
	ShutDownTime   int       `mapstructure:"shutDownTime" json:"shutDownTime"`     // seconds to wait on shutdown
	DisableRecover bool      `mapstructure:"disableRecover" json:"disableRecover"` // disable recover middleware
	AllowOrigins   string    `mapstructure:"allowOrigins" json:"allowOrigins"`     // comma separated CORS origins
	LoginLimit     RateLimit `mapstructure:"loginLimit" json:"loginLimit"`
}

// RateLimit throttles a route per client ip.
type RateLimit struct {
	Max        int           `mapstructure:"max" json:"max"`
	Expiration time.Duration `mapstructure:"expiration" json:"expiration"`
	Table      string        `mapstructure:"table" json:"table"` // storage table, database engines only
}

// Token holds the signing material for capability tokens.
// The secrets should come from the environment, see EnvAccessTokenSecret.
type Token struct {
	Issuer        string        `mapstructure:"issuer" json:"issuer"`
	AccessSecret  string        `mapstructure:"accessSecret" json:"accessSecret"`
	RefreshSecret string        `mapstructure:"refreshSecret" json:"refreshSecret"`
	AccessTTL     time.Duration `mapstructure:"accessTTL" json:"accessTTL"`
	RefreshTTL    time.Duration `mapstructure:"refreshTTL" json:"refreshTTL"`
}

// Seed describes the records created on an empty database.
type Seed struct {
	CompanyName   string `mapstructure:"companyName" json:"companyName"`
	BranchName    string `mapstructure:"branchName" json:"branchName"`
	AdminEmail    string `mapstructure:"adminEmail" json:"adminEmail"`
	AdminPassword string `mapstructure:"adminPassword" json:"adminPassword"`
}
