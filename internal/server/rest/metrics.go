package rest

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Login results recorded on the logins counter.
const (
	LoginSuccess = "success"
	LoginFailure = "failure"
)

// Metrics groups the HTTP and domain counters served on /metrics.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	UsersRegistered prometheus.Counter
	PostsCreated    prometheus.Counter
	EventsCreated   prometheus.Counter
	Logins          *prometheus.CounterVec
	Logouts         prometheus.Counter
}

// NewMetrics creates the metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ecosocial_http_requests_total",
				Help: "Total number of HTTP requests by route and status",
			},
			[]string{"route", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ecosocial_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		UsersRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ecosocial_users_registered_total",
			Help: "Total number of registered users",
		}),
		PostsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ecosocial_posts_created_total",
			Help: "Total number of created posts",
		}),
		EventsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ecosocial_events_created_total",
			Help: "Total number of created events",
		}),
		Logins: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ecosocial_logins_total",
				Help: "Total number of login attempts by result",
			},
			[]string{"result"},
		),
		Logouts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ecosocial_logouts_total",
			Help: "Total number of closed sessions",
		}),
	}

	reg.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.UsersRegistered,
		m.PostsCreated,
		m.EventsCreated,
		m.Logins,
		m.Logouts,
	)

	return m
}

func (m *Metrics) observeRequest(route string, status int, d time.Duration) {
	m.RequestsTotal.WithLabelValues(route, statusLabel(status)).Inc()
	m.RequestDuration.WithLabelValues(route).Observe(d.Seconds())
}
