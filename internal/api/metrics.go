package api

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ramzeysiele/coinpayments/internal/types"
)

// Outcome labels, one per error kind plus success.
const (
	outcomeOK              = "ok"
	outcomeAPIError        = "api_error"
	outcomeInvalidResponse = "invalid_response"
	outcomeTransportError  = "transport_error"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "coinpayments",
			Name:      "api_requests_total",
			Help:      "API commands issued, by command and outcome.",
		},
		[]string{"cmd", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "coinpayments",
			Name:      "api_request_duration_seconds",
			Help:      "Wall-clock time per API command.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"cmd"},
	)
)

func observe(cmd, outcome string, start time.Time) {
	requestsTotal.WithLabelValues(cmd, outcome).Inc()
	requestDuration.WithLabelValues(cmd).Observe(time.Since(start).Seconds())
}

func outcomeFor(err error) string {
	if err == nil {
		return outcomeOK
	}
	var apiErr *types.APIError
	var invalidErr *types.InvalidResponseError
	switch {
	case errors.As(err, &apiErr):
		return outcomeAPIError
	case errors.As(err, &invalidErr):
		return outcomeInvalidResponse
	default:
		return outcomeTransportError
	}
}
