// Package metrics exposes reward pipeline and HTTP metrics to Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"cashback-rewards/internal/core/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cashback_rewards"

// Prometheus implements ports.RewardMetrics and records HTTP request metrics.
// Each instance owns its registry so tests can create as many as they need.
type Prometheus struct {
	registry *prometheus.Registry

	decisions *prometheus.CounterVec
	attempts  *prometheus.CounterVec
	outcomes  *prometheus.CounterVec
	perReward prometheus.Histogram

	requests  *prometheus.CounterVec
	durations *prometheus.HistogramVec
}

// NewPrometheus creates and registers every collector. withRuntime adds the
// Go runtime and process collectors.
func NewPrometheus(withRuntime bool) *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decisions_total",
			Help:      "Eligibility decisions by reason.",
		}, []string{"reason"}),
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "issuance_attempts_total",
			Help:      "Payout attempts by result.",
		}, []string{"result"}),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rewards_total",
			Help:      "Rewards that reached a terminal status.",
		}, []string{"status"}),
		perReward: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "issuance_attempts_per_reward",
			Help:      "Payout attempts needed per terminal reward.",
			Buckets:   []float64{1, 2, 3, 4, 5, 8, 13},
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}

	p.registry.MustRegister(p.decisions, p.attempts, p.outcomes, p.perReward, p.requests, p.durations)
	if withRuntime {
		p.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return p
}

func (p *Prometheus) ObserveDecision(reason domain.DecisionReason) {
	p.decisions.WithLabelValues(string(reason)).Inc()
}

func (p *Prometheus) ObserveAttempt(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	p.attempts.WithLabelValues(result).Inc()
}

func (p *Prometheus) ObserveOutcome(status domain.RewardStatus, attempts int) {
	p.outcomes.WithLabelValues(string(status)).Inc()
	p.perReward.Observe(float64(attempts))
}

// ObserveRequest records one served HTTP request.
func (p *Prometheus) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	p.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	p.durations.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}
