package metrics

import (
	"context"
	"net/http"
	"time"

	kitprom "github.com/go-kit/kit/metrics/prometheus"
	stdprom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Auth method labels.
const (
	MethodPassword = "password"
	MethodToken    = "token"
)

var (
	AuthSuccesses = kitprom.NewCounterFrom(stdprom.CounterOpts{
		Name: "auth_successes",
		Help: "Count of successful authorizations",
	}, []string{"method"})
	AuthFailures = kitprom.NewCounterFrom(stdprom.CounterOpts{
		Name: "auth_failures",
		Help: "Count of failed authorizations",
	}, []string{"method"})
	TokenGenerations = kitprom.NewCounterFrom(stdprom.CounterOpts{
		Name: "auth_token_generations",
		Help: "Count of auth tokens created",
	}, []string{"method"})

	HTTPRequests = kitprom.NewCounterFrom(stdprom.CounterOpts{
		Name: "http_requests_total",
		Help: "Count of handled HTTP requests",
	}, []string{"method", "route", "status"})
	HTTPDuration = kitprom.NewHistogramFrom(stdprom.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Latency of handled HTTP requests",
		Buckets: stdprom.DefBuckets,
	}, []string{"method", "route"})

	connections = kitprom.NewGaugeFrom(stdprom.GaugeOpts{
		Name: "db_connections",
		Help: "How many database connections and what status they're in.",
	}, []string{"state"})
)

// ConnStats is a driver neutral view of connection pool usage.
type ConnStats struct {
	Idle  int
	InUse int
	Open  int
}

// CollectConnStats samples stats every interval until ctx is done.
func CollectConnStats(ctx context.Context, interval time.Duration, stats func() ConnStats) {
	if stats == nil {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		s := stats()
		connections.With("state", "idle").Set(float64(s.Idle))
		connections.With("state", "inuse").Set(float64(s.InUse))
		connections.With("state", "open").Set(float64(s.Open))

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Handler serves the default registry in the prometheus exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}
