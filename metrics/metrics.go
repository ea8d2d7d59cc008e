// Package metrics holds the service's collectors and the hooks that update
// them.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "idconsole"

var (
	// upstreamRequests counts Management API and token endpoint calls by
	// operation and response status.
	upstreamRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Count of requests made to the identity provider.",
		},
		[]string{"op", "status"},
	)

	tokenRefreshes = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "token_refreshes_total",
			Help:      "Count of client-credentials token exchanges.",
		},
	)

	authorizationDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "authorization_decisions_total",
			Help:      "Count of authorization decisions by action and result.",
		},
		[]string{"action", "result"},
	)

	httpRequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Histogram of latencies for HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// Register registers every collector with r. Passing nil registers with the
// default registry.
func Register(r prometheus.Registerer) {
	if r == nil {
		r = prometheus.DefaultRegisterer
	}
	r.MustRegister(upstreamRequests, tokenRefreshes, authorizationDecisions, httpRequestLatency)
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveUpstream records one provider call. A status of 0 means the request
// never got a response.
func ObserveUpstream(op string, status int) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	upstreamRequests.WithLabelValues(op, label).Inc()
}

func ObserveTokenRefresh() {
	tokenRefreshes.Inc()
}

func ObserveDecision(action string, granted bool) {
	result := "denied"
	if granted {
		result = "granted"
	}
	authorizationDecisions.WithLabelValues(action, result).Inc()
}

func ObserveRequest(method, route string, status int, seconds float64) {
	if route == "" {
		route = "unmatched"
	}
	httpRequestLatency.WithLabelValues(method, route, strconv.Itoa(status)).Observe(seconds)
}
