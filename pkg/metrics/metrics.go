// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор коллекторов сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	WizardTransitions *prometheus.CounterVec
	PaymentOutcomes   *prometheus.CounterVec
	ActiveSessions    prometheus.Gauge

	UpstreamCallsTotal   *prometheus.CounterVec
	UpstreamCallDuration *prometheus.HistogramVec
}

// New создает коллекторы и регистрирует их в стандартном реестре
func New(serviceName string) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegistry создает коллекторы и регистрирует их в указанном реестре
func NewWithRegistry(reg prometheus.Registerer, serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		WizardTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "wizard_transitions_total",
			Help:        "Booking wizard step transitions",
			ConstLabels: constLabels,
		}, []string{"from", "to"}),

		PaymentOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "payment_outcomes_total",
			Help:        "Payment outcomes reported by the payment widget",
			ConstLabels: constLabels,
		}, []string{"outcome"}),

		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "wizard_active_sessions",
			Help:        "Number of live booking wizard sessions",
			ConstLabels: constLabels,
		}),

		UpstreamCallsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "upstream_calls_total",
			Help:        "Calls to the turf booking API",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),

		UpstreamCallDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "upstream_call_duration_seconds",
			Help:        "Turf booking API call duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.WizardTransitions,
		m.PaymentOutcomes,
		m.ActiveSessions,
		m.UpstreamCallsTotal,
		m.UpstreamCallDuration,
	)

	return m
}

// RecordHTTPRequest учитывает обработанный HTTP запрос
func (m *Metrics) RecordHTTPRequest(method, route, status string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordTransition учитывает переход визарда между шагами
func (m *Metrics) RecordTransition(from, to string) {
	m.WizardTransitions.WithLabelValues(from, to).Inc()
}

// RecordPaymentOutcome учитывает исход оплаты
func (m *Metrics) RecordPaymentOutcome(outcome string) {
	m.PaymentOutcomes.WithLabelValues(outcome).Inc()
}

// SetActiveSessions выставляет число активных сессий
func (m *Metrics) SetActiveSessions(n int) {
	m.ActiveSessions.Set(float64(n))
}

// RecordUpstreamCall учитывает вызов внешнего API
func (m *Metrics) RecordUpstreamCall(operation, status string, duration time.Duration) {
	m.UpstreamCallsTotal.WithLabelValues(operation, status).Inc()
	m.UpstreamCallDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
