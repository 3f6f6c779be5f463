package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors exported on /metrics.
type Metrics struct {
	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	Mutations       *prometheus.CounterVec
	Employees       *prometheus.GaugeVec
	DatabaseUp      prometheus.Gauge
}

var Instance *Metrics

// NewMetrics registers the collectors with reg. Use a fresh
// prometheus.NewRegistry() in tests to avoid duplicate registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		Requests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "employee_api_requests_total",
			Help: "Total number of handled HTTP requests.",
		}, []string{"method", "route", "status"}),
		RequestDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "employee_api_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		Mutations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "employee_api_mutations_total",
			Help: "Employee records created, updated or deleted.",
		}, []string{"change_type"}),
		Employees: promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
			Name: "employee_api_employees",
			Help: "Stored employee records by type.",
		}, []string{"employee_type"}),
		DatabaseUp: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "employee_api_database_up",
			Help: "1 when the last database ping succeeded.",
		}),
	}

	metrics.Mutations.WithLabelValues("created")
	metrics.Mutations.WithLabelValues("updated")
	metrics.Mutations.WithLabelValues("deleted")

	return metrics
}

func (m *Metrics) ObserveMutation(changeType string) {
	if m == nil {
		return
	}
	m.Mutations.WithLabelValues(changeType).Inc()
}

// SetEmployeeCounts replaces the per type gauge values; types missing from
// counts are reported as zero.
func (m *Metrics) SetEmployeeCounts(types []string, counts map[string]int64) {
	if m == nil {
		return
	}
	for _, employeeType := range types {
		m.Employees.WithLabelValues(employeeType).Set(float64(counts[employeeType]))
	}
}

func (m *Metrics) SetDatabaseUp(up bool) {
	if m == nil {
		return
	}
	if up {
		m.DatabaseUp.Set(1)
		return
	}
	m.DatabaseUp.Set(0)
}
