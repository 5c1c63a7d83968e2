package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Recorder holds the per-run gauges. A run is a short-lived batch job, so the
// values are pushed to a Pushgateway instead of being scraped.
type Recorder struct {
	registry *prometheus.Registry

	LastRunTimestamp *prometheus.GaugeVec
	LastRunSuccess   *prometheus.GaugeVec
	LastRunDuration  *prometheus.GaugeVec
	Assignments      *prometheus.GaugeVec
}

// NewRecorder creates a recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),

		// Timestamp (unix seconds) of the last completed run.
		LastRunTimestamp: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "secretsync_last_run_timestamp_seconds",
				Help: "Timestamp (unix seconds) of the last secretsync run.",
			},
			[]string{"strategy"},
		),
		LastRunSuccess: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "secretsync_last_run_success",
				Help: "1 if the last run published successfully, 0 otherwise.",
			},
			[]string{"strategy"},
		),
		LastRunDuration: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "secretsync_last_run_duration_seconds",
				Help: "Wall time of the last run in seconds.",
			},
			[]string{"strategy"},
		),
		Assignments: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "secretsync_assignments_published",
				Help: "Number of secret assignments in the last successful run.",
			},
			[]string{"strategy"},
		),
	}
	r.registry.MustRegister(r.LastRunTimestamp, r.LastRunSuccess, r.LastRunDuration, r.Assignments)
	return r
}

// Observe records the outcome of a run that started at start.
func (r *Recorder) Observe(strategy string, start time.Time, count int, err error) {
	r.LastRunTimestamp.WithLabelValues(strategy).Set(float64(time.Now().Unix()))
	r.LastRunDuration.WithLabelValues(strategy).Set(time.Since(start).Seconds())
	if err != nil {
		r.LastRunSuccess.WithLabelValues(strategy).Set(0)
		return
	}
	r.LastRunSuccess.WithLabelValues(strategy).Set(1)
	r.Assignments.WithLabelValues(strategy).Set(float64(count))
}

// Push sends the recorded gauges to the Pushgateway at url under job, with
// optional grouping labels (e.g. the publish target).
func (r *Recorder) Push(ctx context.Context, url, job string, grouping map[string]string) error {
	p := push.New(url, job).Gatherer(r.registry)
	for k, v := range grouping {
		if v != "" {
			p = p.Grouping(k, v)
		}
	}
	return p.PushContext(ctx)
}
