package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	dashboardCacheControl = "s-maxage=300, stale-while-revalidate=600"
	pricesCacheControl    = "s-maxage=3600, stale-while-revalidate=7200"
)

func writeJSON(w http.ResponseWriter, status int, body any, cacheControl string) {
	w.Header().Set("Content-Type", "application/json")
	if cacheControl != "" {
		w.Header().Set("Cache-Control", cacheControl)
	}
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Warn("http: writing response body")
	}
}
