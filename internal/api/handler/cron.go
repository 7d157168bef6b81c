package handler

import (
	"errors"
	"net/http"
	"slices"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/econ-pulse-api/internal/scheduler"
	"github.com/vfg2006/econ-pulse-api/pkg/apiErrors"
)

const CronJobTypeAll = "all"

// CronJob is a scheduled job that admins can trigger by hand.
type CronJob interface {
	Name() string
	TriggerManualSync() error
	GetStatus() scheduler.JobStatus
}

type runResponse struct {
	Message string   `json:"message"`
	Type    string   `json:"type"`
	Started []string `json:"started"`
	Skipped []string `json:"skipped,omitempty"`
}

func findJob(jobs []CronJob, name string) CronJob {
	idx := slices.IndexFunc(jobs, func(job CronJob) bool { return job.Name() == name })
	if idx < 0 {
		return nil
	}
	return jobs[idx]
}

func jobNames(jobs []CronJob) []string {
	names := make([]string, 0, len(jobs)+1)
	for _, job := range jobs {
		names = append(names, job.Name())
	}
	return append(names, CronJobTypeAll)
}

// RunCronJob starts a job in the background. "all" starts every job that
// is not already running.
func RunCronJob(jobs []CronJob) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "cron job type is required", nil)
			return
		}

		logrus.WithField("type", cronType).Info("cron: manual run requested")

		response := runResponse{Message: "cron job started", Type: cronType, Started: []string{}}

		if cronType == CronJobTypeAll {
			for _, job := range jobs {
				if err := job.TriggerManualSync(); err != nil {
					response.Skipped = append(response.Skipped, job.Name())
					continue
				}
				response.Started = append(response.Started, job.Name())
			}
			writeJSON(w, http.StatusAccepted, response, "no-store")
			return
		}

		job := findJob(jobs, cronType)
		if job == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "unknown cron job type", map[string]any{"accepted": jobNames(jobs)})
			return
		}

		if err := job.TriggerManualSync(); err != nil {
			if errors.Is(err, scheduler.ErrJobRunning) {
				apiErrors.WriteError(w, apiErrors.ErrJobRunning, "cron job already running", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "could not start cron job", nil)
			return
		}

		response.Started = append(response.Started, job.Name())
		writeJSON(w, http.StatusAccepted, response, "no-store")
	}
}

// GetCronStatus reports one job, or every job for "all".
func GetCronStatus(jobs []CronJob) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		if cronType == CronJobTypeAll {
			status := make(map[string]scheduler.JobStatus, len(jobs))
			for _, job := range jobs {
				status[job.Name()] = job.GetStatus()
			}
			writeJSON(w, http.StatusOK, status, "no-store")
			return
		}

		job := findJob(jobs, cronType)
		if job == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "unknown cron job type", map[string]any{"accepted": jobNames(jobs)})
			return
		}

		writeJSON(w, http.StatusOK, job.GetStatus(), "no-store")
	}
}
