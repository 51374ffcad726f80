package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/auto-notify/docker-discord-notify/internal/config"
	"github.com/auto-notify/docker-discord-notify/internal/metrics"
	"github.com/docker/docker/api/types"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type pinger interface {
	Ping(ctx context.Context) (types.Ping, error)
}

// Server exposes the ops endpoints: GET /healthz (pings the Docker daemon)
// and GET /metrics (Prometheus). It is not a query interface over events.
type Server struct {
	logger zerolog.Logger
	http   *http.Server
}

func New(cfg *config.ServerConfig, docker pinger, logger zerolog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	g := gin.New()
	g.Use(gin.Recovery())

	g.GET("/healthz", func(c *gin.Context) {
		if _, err := docker.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	g.GET("/metrics", gin.WrapH(metrics.Handler()))

	return &Server{
		logger: logger,
		http: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           g,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// Start begins serving in the background.
func (s *Server) Start() {
	s.logger.Info().Str("addr", s.http.Addr).Msg("Starting ops server")
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error().Err(err).Msg("Ops server failed")
		}
	}()
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
