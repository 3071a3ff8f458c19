// Package server exposes the search API over HTTP.
package server

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"

	"github.com/LuckDucapa/spidey-ff-ig/internal/assembler"
	"github.com/LuckDucapa/spidey-ff-ig/internal/instagram"
	"github.com/LuckDucapa/spidey-ff-ig/internal/ratelimit"
	"github.com/LuckDucapa/spidey-ff-ig/pkg/config"
	"github.com/LuckDucapa/spidey-ff-ig/pkg/logger"
)

type Opts struct {
	fx.In

	Config    *config.Config
	Logger    logger.Logger
	Instagram instagram.Client
	Assembler *assembler.Assembler
}

type Server struct {
	*echo.Echo
	cfg       *config.Config
	logger    logger.Logger
	instagram instagram.Client
	assembler *assembler.Assembler
	limiter   ratelimit.Limiter
}

func New(opts Opts) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		Echo:      e,
		cfg:       opts.Config,
		logger:    opts.Logger.WithComponent("Server"),
		instagram: opts.Instagram,
		assembler: opts.Assembler,
		limiter: ratelimit.NewInMemoryLimiter(
			opts.Config.RateLimit.Requests,
			opts.Config.RateLimit.Per,
			opts.Config.RateLimit.Burst,
		),
	}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogMethod:   true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.Info("Request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"remote_ip", v.RemoteIP,
			)
			return nil
		},
	}))

	e.GET("/healthz", s.handleHealth)
	e.GET("/ig", s.handleSearch, s.rateLimit)

	return s
}

func (s *Server) Addr() string {
	return fmt.Sprintf(":%d", s.cfg.App.Port)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func (s *Server) rateLimit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.limiter.Allow(c.RealIP()) {
			return c.JSON(http.StatusTooManyRequests, errorBody{Status: "Error", Message: "too many requests"})
		}
		return next(c)
	}
}
