// Package dsn builds connection strings from the database configuration.
package dsn

import (
	"fmt"
	"strings"

	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/config"
)

// Create builds the MySQL Data Source Name from the configuration.
func Create(cfg *config.Config) string {
	out := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s",
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Host,
		cfg.DB.Port,
		cfg.DB.Name,
	)

	if cfg.DB.Extras != "" {
		out += "?" + cfg.DB.Extras
	}

	return out
}

// Postgres builds a keyword/value connection string for PostgreSQL.
// Extras are "&" separated key=value pairs, as for MySQL.
func Postgres(cfg *config.Config) string {
	out := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s",
		cfg.DB.Host,
		cfg.DB.Port,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
	)

	if cfg.DB.Extras != "" {
		out += " " + strings.ReplaceAll(cfg.DB.Extras, "&", " ")
	}

	return out
}
