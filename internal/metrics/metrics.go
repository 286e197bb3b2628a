package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// Pipeline decisions
	SubmissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "submissions_total",
			Help: "Partner transaction submissions by outcome",
		},
		[]string{"outcome"}, // accepted|rejected
	)
	SubmissionRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "submission_rejections_total",
			Help: "Rejected submissions by reason",
		},
		[]string{"reason"},
	)

	// Audit queue
	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current audit worker queue depth",
		},
	)
)

// handler for the /metrics endpoint
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(SubmissionsTotal)
	prometheus.MustRegister(SubmissionRejections)
	prometheus.MustRegister(WorkerQueueDepth)
}
