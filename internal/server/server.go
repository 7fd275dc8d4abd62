// Package server exposes the planning orchestrator over HTTP: a blocking run
// endpoint, an SSE progress stream, session and artifact access, and the
// usual health and metrics surfaces.
package server

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/she-oracle/orchestrator/config"
	"github.com/she-oracle/orchestrator/internal/agent/core"
	"github.com/she-oracle/orchestrator/internal/agent/telemetry"
	"github.com/she-oracle/orchestrator/internal/knowledge"
	"github.com/she-oracle/orchestrator/internal/memory"
	"github.com/she-oracle/orchestrator/internal/oracle"
)

// Server binds the orchestrator pipeline to an echo instance.
type Server struct {
	echo      *echo.Echo
	orch      *core.Orchestrator
	store     memory.Store
	gw        *oracle.Gateway
	kb        knowledge.Retriever
	telemetry *telemetry.Telemetry
	cfg       config.ServerConfig
	logger    *log.Logger
}

// New wires routes and middleware. The returned server is ready to Start, or
// to drive through Echo() in httptest-based tests.
func New(cfg config.ServerConfig, orch *core.Orchestrator, store memory.Store, gw *oracle.Gateway, kb knowledge.Retriever, tel *telemetry.Telemetry) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	baseLogger := log.New(log.Writer(), "[HTTP] ", log.LstdFlags)
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		msg := err.Error()
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if he.Message != nil {
				msg = fmt.Sprint(he.Message)
			}
		}
		req := c.Request()
		baseLogger.Printf("%d %s %s from %s: %v", code, req.Method, req.URL.Path, c.RealIP(), err)
		if !c.Response().Committed {
			_ = c.JSON(code, map[string]interface{}{"error": msg})
		}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	s := &Server{
		echo:      e,
		orch:      orch,
		store:     store,
		gw:        gw,
		kb:        kb,
		telemetry: tel,
		cfg:       cfg,
		logger:    baseLogger,
	}

	registerHealthGauge(gw)

	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", s.health)

	e.POST("/run", s.runPlan)
	if cfg.StreamEnabled {
		e.POST("/stream", s.streamPlan)
	}

	// Session and artifact routes carry user data; guard them when a JWT
	// secret is configured.
	sessions := e.Group("")
	if cfg.JWTSecret != "" {
		sessions.Use(authMiddleware([]byte(cfg.JWTSecret)))
	}
	sessions.GET("/session/:id", s.getSession)
	sessions.POST("/session/profile", s.updateProfile)
	sessions.GET("/artifacts/:session_id", s.listArtifacts)
	sessions.POST("/download-artifact", s.downloadArtifact)

	return s
}

var healthGaugeOnce sync.Once

// registerHealthGauge exposes the oracle gateway's health as a 0/1 gauge. The
// gauge reads live state, so only the first server registers it.
func registerHealthGauge(gw *oracle.Gateway) {
	if gw == nil {
		return
	}
	healthGaugeOnce.Do(func() {
		prometheus.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "oracle_backend_healthy",
			Help: "Whether the most recent oracle call succeeded.",
		}, func() float64 {
			if gw.Health().Healthy {
				return 1
			}
			return 0
		}))
	})
}

// Echo returns the underlying echo instance for tests.
func (s *Server) Echo() *echo.Echo { return s.echo }

// Start serves until the listener fails or is shut down.
func (s *Server) Start(addr string) error {
	if addr == "" {
		addr = s.cfg.Address
	}
	if addr == "" {
		addr = ":8700"
	}
	s.logger.Printf("listening on %s", addr)
	return s.echo.Start(addr)
}
