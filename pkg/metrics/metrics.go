// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	CalendarOperationsTotal *prometheus.CounterVec
	AuditWritesTotal        *prometheus.CounterVec
	AuditWriteFailuresTotal *prometheus.CounterVec

	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  prometheus.Gauge
	DBInUseConnections prometheus.Gauge
	DBIdleConnections  prometheus.Gauge
}

// New создает метрики и регистрирует их в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в указанном registerer.
// В тестах удобно передавать prometheus.NewRegistry().
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests by method, route template and status code.",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency by method and route template.",
			ConstLabels: labels,
			Buckets:     []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "path"}),
		CalendarOperationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "calendar_operations_total",
			Help:        "Availability calendar operations by operation and outcome.",
			ConstLabels: labels,
		}, []string{"operation", "outcome"}),
		AuditWritesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "audit_writes_total",
			Help:        "Audit record writes by status (recorded, failed).",
			ConstLabels: labels,
		}, []string{"status"}),
		AuditWriteFailuresTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "audit_write_failures_total",
			Help:        "Audit writes absorbed by the recorder, by failure reason.",
			ConstLabels: labels,
		}, []string{"reason"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database call latency by call kind.",
			ConstLabels: labels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),
		DBOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established database connections.",
			ConstLabels: labels,
		}),
		DBInUseConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of database connections currently in use.",
			ConstLabels: labels,
		}),
		DBIdleConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle database connections.",
			ConstLabels: labels,
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.CalendarOperationsTotal,
		m.AuditWritesTotal,
		m.AuditWriteFailuresTotal,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
	)

	return m
}

// ObserveHTTPRequest записывает счетчик и длительность HTTP запроса
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// IncCalendarOperation учитывает операцию календаря (block, block_range, unblock ...)
func (m *Metrics) IncCalendarOperation(operation, outcome string) {
	m.CalendarOperationsTotal.WithLabelValues(operation, outcome).Inc()
}

// IncAuditWrite учитывает результат записи в журнал аудита
func (m *Metrics) IncAuditWrite(status string) {
	m.AuditWritesTotal.WithLabelValues(status).Inc()
}

// IncAuditWriteFailure учитывает поглощенную ошибку записи аудита
func (m *Metrics) IncAuditWriteFailure(reason string) {
	m.AuditWriteFailuresTotal.WithLabelValues(reason).Inc()
}

// ObserveDBQuery записывает длительность обращения к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration) {
	m.DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetDBStats обновляет метрики пула соединений
func (m *Metrics) SetDBStats(stats sql.DBStats) {
	m.DBOpenConnections.Set(float64(stats.OpenConnections))
	m.DBInUseConnections.Set(float64(stats.InUse))
	m.DBIdleConnections.Set(float64(stats.Idle))
}
