package whatsyour

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "whatsyour_client"

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "requests_total",
			Help:      "API calls issued by the client, by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "request_duration_seconds",
			Help:      "Round-trip latency of API calls.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

// outcome labels
const (
	outcomeOK        = "ok"
	outcomeNotFound  = "not_found"
	outcomeAuth      = "unauthenticated"
	outcomeHTTPError = "http_error"
	outcomeTransport = "transport_error"
	outcomeDecode    = "decode_error"
)

func outcomeFor(err error) string {
	if err == nil {
		return outcomeOK
	}
	e, ok := err.(*Error)
	if !ok {
		return outcomeHTTPError
	}
	switch e.Kind {
	case KindNotFound:
		return outcomeNotFound
	case KindAuthentication:
		return outcomeAuth
	case KindDecode:
		return outcomeDecode
	}
	if e.StatusCode == 0 {
		return outcomeTransport
	}
	return outcomeHTTPError
}
