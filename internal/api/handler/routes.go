package handler

import (
	"net/http"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vfg2006/econ-pulse-api/internal/api/handler/router"
	"github.com/vfg2006/econ-pulse-api/internal/usecases/aggregating"
	"github.com/vfg2006/econ-pulse-api/internal/usecases/authenticating"
	"github.com/vfg2006/econ-pulse-api/internal/usecases/briefing"
	"github.com/vfg2006/econ-pulse-api/pkg/middleware"
)

func Healthcheck(clock clockwork.Clock) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(clock),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Dashboards(service aggregating.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/economy",
			Method:  http.MethodGet,
			Handler: GetEconomy(service),
		},
		{
			Path:    "/v1/summary",
			Method:  http.MethodGet,
			Handler: GetSummary(service),
		},
		{
			Path:    "/v1/housing",
			Method:  http.MethodGet,
			Handler: GetHousing(service),
		},
		{
			Path:    "/v1/treasury",
			Method:  http.MethodGet,
			Handler: GetTreasury(service),
		},
		{
			Path:    "/v1/prices",
			Method:  http.MethodGet,
			Handler: GetPrices(service),
		},
	}
}

func Briefing(service briefing.Briefer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/briefing",
			Method:  http.MethodGet,
			Handler: GetBriefing(service),
		},
		{
			Path:    "/v1/briefing/latest",
			Method:  http.MethodGet,
			Handler: GetLatestBriefing(service),
		},
	}
}

func CronJobs(authenticator authenticating.Authenticator, jobs []CronJob) []router.Route {
	admin := []func(http.Handler) http.Handler{
		middleware.AuthMiddleware(authenticator),
		middleware.AdminOnly(),
	}

	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(jobs),
			Middlewares: admin,
		},
		{
			Path:        "/v1/cron/:type/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(jobs),
			Middlewares: admin,
		},
	}
}
