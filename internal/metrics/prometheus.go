// Package metrics exposes dispatcher metrics in the Prometheus format.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	promNamespace       = "edge"
	promDispatchSubsys  = "dispatch"
	promWebhookSubsys   = "webhook"
	unmatchedRouteLabel = "unmatched"
)

// Webhook outcomes counted by [Prometheus.ObserveWebhook].
const (
	WebhookRejected      = "rejected"
	WebhookUnconfigured  = "unconfigured"
	WebhookIgnored       = "ignored"
	WebhookOrderCreated  = "order_created"
	WebhookOrderNotSaved = "order_failed"
)

// Prometheus collects request and webhook metrics in its own registry. It
// implements the dispatcher's Observer.
type Prometheus struct {
	requestsM *prometheus.CounterVec
	durationM *prometheus.HistogramVec
	webhooksM *prometheus.CounterVec

	registry *prometheus.Registry
	handler  http.Handler
}

// NewPrometheus registers the collectors, including the Go runtime and
// process collectors, in a fresh registry.
func NewPrometheus() *Prometheus {
	p := &Prometheus{
		requestsM: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: promNamespace,
			Subsystem: promDispatchSubsys,
			Name:      "requests_total",
			Help:      "Dispatched requests by method, route pattern and status code.",
		}, []string{"code", "method", "route"}),
		durationM: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: promNamespace,
			Subsystem: promDispatchSubsys,
			Name:      "duration_seconds",
			Help:      "Duration in seconds of a dispatched request, upstream call included.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		webhooksM: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: promNamespace,
			Subsystem: promWebhookSubsys,
			Name:      "events_total",
			Help:      "Payment webhook deliveries by outcome.",
		}, []string{"outcome"}),
		registry: prometheus.NewRegistry(),
	}

	p.registry.MustRegister(p.requestsM)
	p.registry.MustRegister(p.durationM)
	p.registry.MustRegister(p.webhooksM)
	p.registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	p.registry.MustRegister(collectors.NewGoCollector())

	p.handler = promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
	return p
}

// ObserveRequest records one dispatched request. An empty pattern is
// reported as "unmatched" so that unknown paths do not create new series.
func (p *Prometheus) ObserveRequest(method, pattern string, status int, elapsed time.Duration) {
	if pattern == "" {
		pattern = unmatchedRouteLabel
	}
	p.requestsM.WithLabelValues(strconv.Itoa(status), method, pattern).Inc()
	p.durationM.WithLabelValues(method, pattern).Observe(elapsed.Seconds())
}

// ObserveWebhook counts a webhook delivery outcome.
func (p *Prometheus) ObserveWebhook(outcome string) {
	p.webhooksM.WithLabelValues(outcome).Inc()
}

// ServeHTTP serves the registry in the text exposition format.
func (p *Prometheus) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p.handler.ServeHTTP(w, r)
}
