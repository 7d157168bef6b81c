package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/econ-pulse-api/internal/domain"
	"github.com/vfg2006/econ-pulse-api/internal/usecases/aggregating"
	"github.com/vfg2006/econ-pulse-api/pkg/apiErrors"
	"github.com/vfg2006/econ-pulse-api/pkg/log"
)

// dashboardHandler serves one assembled dashboard. Failures never leak
// details to the client.
func dashboardHandler[T any](name, cacheControl string, assemble func(ctx context.Context) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := assemble(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"dashboard": name,
				"error":     err.Error(),
			}).Error("http: dashboard failed")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to fetch "+name+" data", nil)
			return
		}

		writeJSON(w, http.StatusOK, body, cacheControl)
	}
}

func GetEconomy(service aggregating.Aggregator) http.HandlerFunc {
	return dashboardHandler(aggregating.DashboardEconomy, dashboardCacheControl, service.Economy)
}

func GetSummary(service aggregating.Aggregator) http.HandlerFunc {
	return dashboardHandler(aggregating.DashboardSummary, dashboardCacheControl, service.Glance)
}

func GetTreasury(service aggregating.Aggregator) http.HandlerFunc {
	return dashboardHandler(aggregating.DashboardTreasury, dashboardCacheControl, service.Treasury)
}

func GetPrices(service aggregating.Aggregator) http.HandlerFunc {
	return dashboardHandler(aggregating.DashboardPrices, pricesCacheControl, service.Prices)
}

func GetHousing(service aggregating.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := aggregating.HousingQuery{Zip: r.URL.Query().Get("zip")}
		if err := query.Validate(); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, aggregating.ErrInvalidZip.Error(), map[string]string{"zip": query.Zip})
			return
		}

		dashboardHandler(aggregating.DashboardHousing, dashboardCacheControl, func(ctx context.Context) (*domain.HousingSummary, error) {
			return service.Housing(ctx, query.Zip)
		})(w, r)
	}
}
