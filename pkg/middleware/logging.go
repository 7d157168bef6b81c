package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/vfg2006/econ-pulse-api/pkg/apiErrors"
	"github.com/vfg2006/econ-pulse-api/pkg/log"
)

// Requests slower than this get an extra warning line. Dashboards fan out to
// a dozen upstream calls, so the bar sits well above a plain CRUD API.
const slowRequestThreshold = 2 * time.Second

// CorrelationHeader echoes the request correlation id back to the client.
const CorrelationHeader = "X-Correlation-ID"

// LoggingMiddleware logs one line when a request starts and one when it ends.
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)
			w.Header().Set(CorrelationHeader, correlationID)

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()
			isDev := log.IsDevelopment()

			if isDev {
				log.L.WithFields(log.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				}).Debug("http: request started")
			} else {
				log.L.WithFields(log.Fields{
					"correlation_id": correlationID,
					"remote_addr":    r.RemoteAddr,
					"method":         r.Method,
					"path":           r.URL.Path,
					"query":          r.URL.RawQuery,
					"user_agent":     r.UserAgent(),
				}).Info("http: request started")
			}

			next.ServeHTTP(lrw, r)

			responseTime := time.Since(startTime)

			var logger log.Logger
			if isDev {
				statusSymbol := "✓"
				if lrw.statusCode >= 400 {
					statusSymbol = "✗"
				}

				logMsg := fmt.Sprintf("http: %s %s %s in %s", statusSymbol, r.Method, r.URL.Path, formatDuration(responseTime))
				logger = log.L.WithField("status_code", lrw.statusCode)

				switch {
				case lrw.statusCode >= 500:
					logger.Error(logMsg)
				case lrw.statusCode >= 400:
					logger.Warn(logMsg)
				default:
					logger.Info(logMsg)
				}
			} else {
				logger = log.L.WithFields(log.Fields{
					"correlation_id": correlationID,
					"method":         r.Method,
					"path":           r.URL.Path,
					"duration_ms":    responseTime.Milliseconds(),
					"status_code":    lrw.statusCode,
				})

				switch {
				case lrw.statusCode >= 500:
					logger.Error("http: request failed")
				case lrw.statusCode >= 400:
					logger.Warn("http: request rejected")
				default:
					logger.Info("http: request completed")
				}
			}

			if responseTime > slowRequestThreshold {
				logger.Warnf("http: slow request %s %s (%dms)", r.Method, r.URL.Path, responseTime.Milliseconds())
			}
		})
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// loggingResponseWriter records the status code written by the handler.
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{w, http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware turns a handler panic into a logged 500 with a generic body.
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := make([]byte, 4096)
					stackSize := runtime.Stack(stack, false)
					stackTrace := string(stack[:stackSize])

					if log.IsDevelopment() {
						log.L.WithFields(log.Fields{
							"error": err,
							"path":  r.URL.Path,
						}).Error("http: panic")

						fmt.Fprintf(os.Stderr, "\n\n=== STACK TRACE ===\n%s\n=================\n\n", stackTrace)
					} else {
						log.ForContext(r.Context()).WithFields(log.Fields{
							"panic_error": err,
							"method":      r.Method,
							"path":        r.URL.Path,
							"stack_trace": stackTrace,
						}).Error("http: unhandled panic")
					}

					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "internal server error", nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
