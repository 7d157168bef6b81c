package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/econ-pulse-api/internal/domain"
	"github.com/vfg2006/econ-pulse-api/internal/usecases/briefing"
	"github.com/vfg2006/econ-pulse-api/pkg/apiErrors"
	"github.com/vfg2006/econ-pulse-api/pkg/log"
)

// briefingFailure keeps the static text in the error body so clients can
// still render something.
type briefingFailure struct {
	apiErrors.APIError
	Briefing string `json:"briefing"`
	Date     string `json:"date,omitempty"`
	Fallback bool   `json:"fallback"`
}

func GetBriefing(service briefing.Briefer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := service.GetBriefing(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("http: briefing failed")

			body := briefingFailure{
				APIError: apiErrors.APIError{Code: apiErrors.ErrInternalServer, Message: "failed to generate briefing"},
				Briefing: domain.FallbackBriefing,
				Fallback: true,
			}
			if result != nil {
				body.Date = result.Date
			}
			writeJSON(w, http.StatusInternalServerError, body, "no-store")
			return
		}

		writeJSON(w, http.StatusOK, result, "")
	}
}

func GetLatestBriefing(service briefing.Briefer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := service.Latest(r.Context())
		if errors.Is(err, briefing.ErrNoBriefing) {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "no briefing generated yet", nil)
			return
		}
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("http: latest briefing failed")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to load briefing", nil)
			return
		}

		writeJSON(w, http.StatusOK, result, "")
	}
}
