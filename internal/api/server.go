package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/econ-pulse-api/internal/api/handler"
	"github.com/vfg2006/econ-pulse-api/internal/api/handler/router"
	"github.com/vfg2006/econ-pulse-api/internal/config"
	"github.com/vfg2006/econ-pulse-api/internal/usecases/aggregating"
	"github.com/vfg2006/econ-pulse-api/internal/usecases/authenticating"
	"github.com/vfg2006/econ-pulse-api/internal/usecases/briefing"
	"github.com/vfg2006/econ-pulse-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// NewHandler builds the full middleware chain and route table.
func NewHandler(
	config *config.Config,
	aggregator aggregating.Aggregator,
	briefer briefing.Briefer,
	authenticator authenticating.Authenticator,
	jobs []handler.CronJob,
	clock clockwork.Clock,
) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(clock)...),
		router.WithRoutes(handler.Metrics()...),
		router.WithRoutes(handler.Dashboards(aggregator)...),
		router.WithRoutes(handler.Briefing(briefer)...),
		router.WithRoutes(handler.CronJobs(authenticator, jobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(
	config *config.Config,
	aggregator aggregating.Aggregator,
	briefer briefing.Briefer,
	authenticator authenticating.Authenticator,
	jobs []handler.CronJob,
	clock clockwork.Clock,
) (*Server, error) {
	if config.Server.Port == "" {
		return nil, errors.New("api: server port is required")
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, aggregator, briefer, authenticator, jobs, clock),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("api: server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Error("api: server stopped unexpectedly")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("api: interrupt received")
	case <-ctx.Done():
		logrus.Info("api: context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("api: graceful shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("api: shutdown failed")
		return err
	}

	logrus.Info("api: server stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
