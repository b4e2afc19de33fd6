package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus counters for the application. Methods are
// safe on a nil receiver so code under test can skip registration.
type Metrics struct {
	OrderLookups        prometheus.Counter
	OrdersServed        prometheus.Counter
	ComplaintsSubmitted prometheus.Counter
	SessionsStarted     prometheus.Counter
}

// New creates and registers all counters on the default registry. Call it
// once per process.
func New() *Metrics {
	return &Metrics{
		OrderLookups: promauto.NewCounter(prometheus.CounterOpts{
			Name: "kinhon_order_lookups_total",
			Help: "Total number of single-order lookups served",
		}),
		OrdersServed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "kinhon_orders_served_total",
			Help: "Total number of orders returned from phone-number listings",
		}),
		ComplaintsSubmitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "kinhon_complaints_submitted_total",
			Help: "Total number of delivery complaints persisted",
		}),
		SessionsStarted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "kinhon_sessions_started_total",
			Help: "Total number of tracking sessions started",
		}),
	}
}

func (m *Metrics) IncOrderLookups() {
	if m == nil {
		return
	}
	m.OrderLookups.Inc()
}

func (m *Metrics) AddOrdersServed(n int) {
	if m == nil {
		return
	}
	m.OrdersServed.Add(float64(n))
}

func (m *Metrics) IncComplaintsSubmitted() {
	if m == nil {
		return
	}
	m.ComplaintsSubmitted.Inc()
}

func (m *Metrics) IncSessionsStarted() {
	if m == nil {
		return
	}
	m.SessionsStarted.Inc()
}
