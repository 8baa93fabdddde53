package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec
	DBWaitCount        *prometheus.GaugeVec

	// Доменные метрики
	PriceMismatchTotal          *prometheus.CounterVec
	AvailabilityFailClosedTotal *prometheus.CounterVec
	HoldsExpiredTotal           *prometheus.CounterVec
	SettingsFallbackTotal       *prometheus.CounterVec
}

// New создает и регистрирует метрики в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в указанном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation", "status"}),

		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBInUseConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBIdleConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{"db"}),

		PriceMismatchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "price_mismatch_total",
			Help:        "Number of bookings rejected because the client total diverged from the server recomputation",
			ConstLabels: constLabels,
		}, []string{"operation"}),

		AvailabilityFailClosedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_fail_closed_total",
			Help:        "Number of availability checks answered as unavailable because conflict data could not be fetched",
			ConstLabels: constLabels,
		}, []string{"operation"}),

		HoldsExpiredTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "holds_expired_total",
			Help:        "Number of reservation holds marked expired by the cleanup job",
			ConstLabels: constLabels,
		}, []string{}),

		SettingsFallbackTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "rate_settings_fallback_total",
			Help:        "Number of rate settings lookups that degraded to defaults",
			ConstLabels: constLabels,
		}, []string{"reason"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
		m.PriceMismatchTotal,
		m.AvailabilityFailClosedTotal,
		m.HoldsExpiredTotal,
		m.SettingsFallbackTotal,
	)

	return m
}

// Методы-обертки безопасны для nil: если метрики выключены, вызовы ничего не делают

// IncPriceMismatch увеличивает счетчик расхождений цены
func (m *Metrics) IncPriceMismatch(operation string) {
	if m == nil {
		return
	}
	m.PriceMismatchTotal.WithLabelValues(operation).Inc()
}

// IncAvailabilityFailClosed увеличивает счетчик fail-closed ответов доступности
func (m *Metrics) IncAvailabilityFailClosed(operation string) {
	if m == nil {
		return
	}
	m.AvailabilityFailClosedTotal.WithLabelValues(operation).Inc()
}

// AddHoldsExpired добавляет количество истекших холдов
func (m *Metrics) AddHoldsExpired(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.HoldsExpiredTotal.WithLabelValues().Add(float64(n))
}

// IncSettingsFallback увеличивает счетчик откатов настроек на значения по умолчанию
func (m *Metrics) IncSettingsFallback(reason string) {
	if m == nil {
		return
	}
	m.SettingsFallbackTotal.WithLabelValues(reason).Inc()
}
