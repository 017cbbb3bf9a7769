// Package web wires the fiber application: middleware, auth and the JSON handlers.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/auth"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/config"
	fiberlogger "github.com/SchoolHub-Admin/SchoolHub-Admin/internal/logger/adapter/fiber"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/web/handler"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/web/handler/admin/role"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/web/handler/branch"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/web/handler/login"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/web/handler/logout"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/web/handler/me"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/web/handler/refresh"
	authmiddleware "github.com/SchoolHub-Admin/SchoolHub-Admin/internal/web/middleware/auth"
)

const (
	// HealthPath answers 200 while the service takes traffic and 503 while it shuts down.
	HealthPath = handler.APIPath + "/health"

	// MetricsPath serves the Prometheus metrics.
	MetricsPath = "/metrics"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
	authService  *auth.Service
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for SIGINT or SIGTERM and shuts the server down gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so the health check returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		if err := s.App.Shutdown(); err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// Health answers the load balancer health check.
func (s *Service) Health(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	return c.JSON(fiber.Map{"status": "ok"})
}

// New creates a new web service. limiterStorage keeps the login rate limiter
// counters; nil keeps them in memory.
func New(cfg *config.Config, db *gorm.DB, authService *auth.Service, limiterStorage fiber.Storage) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	if authService == nil {
		panic("auth service cannot be nil")
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize:        8192,
			AppName:               appName(cfg),
			CaseSensitive:         true,
			Prefork:               false,
			Immutable:             true,
			DisableStartupMessage: !cfg.DevMode,
			ErrorHandler: func(c *fiber.Ctx, err error) error {
				return handler.WriteError(c, err)
			},
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New())
	}

	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: HealthPath,
		Identity:      identity,
	}))

	if cfg.Webserver.AllowOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.Webserver.AllowOrigins,
			AllowCredentials: true,
		}))
	}

	service := &Service{
		cfg:         cfg,
		App:         app,
		db:          db,
		authService: authService,
	}
	service.alive.Store(true)

	app.Get(HealthPath, service.Health)
	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	deps := handler.Deps{
		Config:       cfg,
		DB:           db,
		Auth:         authService,
		RequireAuth:  authmiddleware.New(authService),
		LoginLimiter: loginLimiter(cfg.Webserver.LoginLimit, limiterStorage),
	}

	for _, h := range []handler.Service{
		&login.Handler,
		&logout.Handler,
		&refresh.Handler,
		&branch.Handler,
		&me.Handler,
		&role.Handler,
	} {
		if err := h.Init(app, deps); err != nil {
			log.Fatal().Err(err).Msg("failed to init handler")
		}
	}

	return service
}

func appName(cfg *config.Config) string {
	if cfg.Title != "" {
		return cfg.Title
	}

	return "SchoolHub-Admin"
}

// loginLimiter returns nil when rate limiting is disabled.
func loginLimiter(rl config.RateLimit, storage fiber.Storage) fiber.Handler {
	if rl.Max <= 0 {
		return nil
	}

	return limiter.New(limiter.Config{
		Max:        rl.Max,
		Expiration: rl.Expiration,
		Storage:    storage,
		LimitReached: func(c *fiber.Ctx) error {
			log.Warn().Str("ip", c.IP()).Msg("login rate limit reached")

			return c.Status(fiber.StatusTooManyRequests).
				JSON(handler.NewProblem(fiber.StatusTooManyRequests, "TOO_MANY_REQUESTS", "too many login attempts"))
		},
	})
}

func identity(c *fiber.Ctx) (fiberlogger.Identity, bool) {
	s, ok := auth.FromCtx(c)
	if !ok {
		return fiberlogger.Identity{}, false
	}

	return fiberlogger.Identity{ID: s.ID, Kind: string(s.UserType), BranchID: s.ActiveBranchID}, true
}
