package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Исходы поиска свободных номеров
const (
	OutcomePrimary  = "primary"
	OutcomeFallback = "fallback"
	OutcomeEmpty    = "empty"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	AvailabilityLookups *prometheus.CounterVec
	UpstreamFetchErrors *prometheus.CounterVec

	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
}

// New регистрирует метрики в глобальном registry
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует метрики в переданном registry
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		AvailabilityLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_lookups_total",
			Help:        "Room availability lookups by resolution outcome",
			ConstLabels: labels,
		}, []string{"outcome"}),

		UpstreamFetchErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "upstream_fetch_errors_total",
			Help:        "Failed fetches from upstream data sources",
			ConstLabels: labels,
		}, []string{"dataset"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: labels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),

		DBOpenConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established database connections",
			ConstLabels: labels,
		}, []string{}),

		DBInUseConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of database connections currently in use",
			ConstLabels: labels,
		}, []string{}),
	}
}

// RecordAvailabilityLookup учитывает исход поиска свободных номеров
func (m *Metrics) RecordAvailabilityLookup(outcome string) {
	m.AvailabilityLookups.WithLabelValues(outcome).Inc()
}

// RecordFetchError учитывает ошибку загрузки набора данных из внешнего источника
func (m *Metrics) RecordFetchError(dataset string) {
	m.UpstreamFetchErrors.WithLabelValues(dataset).Inc()
}
