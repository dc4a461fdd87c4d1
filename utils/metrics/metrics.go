package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RidesPublishedTotal  = promauto.NewCounter(prometheus.CounterOpts{Namespace: "friendfleet", Name: "rides_published_total", Help: "Total rides published"})
	RideSearchesTotal    = promauto.NewCounter(prometheus.CounterOpts{Namespace: "friendfleet", Name: "ride_searches_total", Help: "Total ride searches served"})
	UsersRegisteredTotal = promauto.NewCounter(prometheus.CounterOpts{Namespace: "friendfleet", Name: "users_registered_total", Help: "Total users registered"})

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "friendfleet", Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "friendfleet",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
