// Package metrics exposes launcher counters on the local /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the launcher's Prometheus counters. A nil *Metrics is
// valid and records nothing, so components can treat it as optional.
type Metrics struct {
	TokenRefreshes  prometheus.Counter
	RefreshFailures prometheus.Counter
	Logins          prometheus.Counter
	Logouts         prometheus.Counter
	PageRequests    *prometheus.CounterVec
}

// New registers the launcher counters on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		TokenRefreshes: factory.NewCounter(prometheus.CounterOpts{
			Name: "horizon_token_refreshes_total",
			Help: "Silent access-token refreshes performed.",
		}),
		RefreshFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "horizon_token_refresh_failures_total",
			Help: "Refresh attempts that failed and forced a logout.",
		}),
		Logins: factory.NewCounter(prometheus.CounterOpts{
			Name: "horizon_logins_total",
			Help: "Successful logins.",
		}),
		Logouts: factory.NewCounter(prometheus.CounterOpts{
			Name: "horizon_logouts_total",
			Help: "Logouts, explicit or forced.",
		}),
		PageRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "horizon_page_requests_total",
			Help: "Local UI requests by route pattern and status class.",
		}, []string{"route", "class"}),
	}
}

// IncRefresh records a performed token refresh.
func (m *Metrics) IncRefresh() {
	if m != nil {
		m.TokenRefreshes.Inc()
	}
}

// IncRefreshFailure records a refresh failure.
func (m *Metrics) IncRefreshFailure() {
	if m != nil {
		m.RefreshFailures.Inc()
	}
}

// IncLogin records a successful login.
func (m *Metrics) IncLogin() {
	if m != nil {
		m.Logins.Inc()
	}
}

// IncLogout records a logout.
func (m *Metrics) IncLogout() {
	if m != nil {
		m.Logouts.Inc()
	}
}

// IncPage records one UI request.
func (m *Metrics) IncPage(route, class string) {
	if m != nil {
		m.PageRequests.WithLabelValues(route, class).Inc()
	}
}
