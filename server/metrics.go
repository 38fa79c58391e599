package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	registry       *prometheus.Registry
	uploads        prometheus.Counter
	uploadFailures prometheus.Counter
	uploadBytes    prometheus.Counter
	recentRequests prometheus.Counter
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &metrics{
		registry: reg,
		uploads: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "videoframenode",
			Name:      "uploads_total",
			Help:      "Accepted video uploads.",
		}),
		uploadFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "videoframenode",
			Name:      "upload_failures_total",
			Help:      "Rejected or failed video uploads.",
		}),
		uploadBytes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "videoframenode",
			Name:      "upload_bytes_total",
			Help:      "Bytes accepted across all uploads.",
		}),
		recentRequests: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "videoframenode",
			Name:      "recent_requests_total",
			Help:      "Requests for the recent-files listing.",
		}),
	}
}
