// Package daemon opens the database, seeds it and runs the web service.
package daemon

import (
	"fmt"
	"strconv"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	storagemysql "github.com/gofiber/storage/mysql/v2"
	storagepostgres "github.com/gofiber/storage/postgres/v3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/auth"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/config"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/db/controller/account"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/db/dsn"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/db/models"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/web"
)

const defaultLimiterTable = "login_limits"

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
}

// Start serves until SIGINT or SIGTERM.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(":" + strconv.Itoa(d.cfg.Webserver.Port))
}

// New migrates and seeds the database and builds the web service.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	db, err := OpenDB(cfg)
	if err != nil {
		return nil, err
	}

	if err = db.AutoMigrate(models.All()...); err != nil {
		return nil, errors.Wrap(err, "failed to migrate database")
	}

	if err = seed(cfg, db); err != nil {
		return nil, errors.Wrap(err, "failed to seed database")
	}

	issuer, err := auth.NewIssuer(auth.Keys{
		Issuer:        cfg.Token.Issuer,
		AccessSecret:  []byte(cfg.Token.AccessSecret),
		RefreshSecret: []byte(cfg.Token.RefreshSecret),
		AccessTTL:     cfg.Token.AccessTTL,
		RefreshTTL:    cfg.Token.RefreshTTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create token issuer")
	}

	authService := auth.NewService(account.New(db), issuer)

	return &Daemon{
		cfg:        cfg,
		webService: web.New(cfg, db, authService, limiterStorage(cfg)),
	}, nil
}

// OpenDB connects gorm to the configured engine.
func OpenDB(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DB.GormEngine {
	case config.EngineMySQL:
		dialector = gormmysql.Open(dsn.Create(cfg))
	case config.EnginePostgres:
		dialector = gormpostgres.Open(dsn.Postgres(cfg))
	case config.EngineSQLite:
		dialector = sqlite.Open(cfg.DB.Name)
	default:
		return nil, fmt.Errorf("%w: %s", config.ErrUnknownGormEngine, cfg.DB.GormEngine)
	}

	gormCfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}
	if cfg.DevMode {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Info)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	return db, nil
}

// limiterStorage keeps the login limiter counters in the database so every
// instance sees the same counts. SQLite keeps them in memory.
func limiterStorage(cfg *config.Config) fiber.Storage {
	table := cfg.Webserver.LoginLimit.Table
	if table == "" {
		table = defaultLimiterTable
	}

	switch cfg.DB.GormEngine {
	case config.EngineMySQL:
		return storagemysql.New(storagemysql.Config{
			ConnectionURI: dsn.Create(cfg),
			Table:         table,
		})
	case config.EnginePostgres:
		return storagepostgres.New(storagepostgres.Config{
			ConnectionURI: dsn.Postgres(cfg),
			Table:         table,
		})
	default:
		log.Info().Str("engine", cfg.DB.GormEngine).Msg("login limiter counters are kept in memory")

		return nil
	}
}
