package handler

import (
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
)

type healthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

func HealthcheckHandler(clock clockwork.Clock) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Time: clock.Now().UTC()}, "no-store")
	})
}
