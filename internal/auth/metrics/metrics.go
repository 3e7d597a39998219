package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts auth flow outcomes. Register against the default registerer
// in production; tests pass their own registry to keep registrations isolated.
type Metrics struct {
	RegistrationsTotal prometheus.Counter
	LoginsTotal        *prometheus.CounterVec
	RefreshesTotal     *prometheus.CounterVec
	LogoutsTotal       prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RegistrationsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "classroom_auth_registrations_total",
			Help: "Total number of successful user registrations",
		}),
		LoginsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "classroom_auth_logins_total",
			Help: "Total number of login attempts by outcome",
		}, []string{"outcome"}),
		RefreshesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "classroom_auth_token_refreshes_total",
			Help: "Total number of token refresh attempts by outcome",
		}, []string{"outcome"}),
		LogoutsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "classroom_auth_logouts_total",
			Help: "Total number of logout requests",
		}),
	}
}

func (m *Metrics) IncRegistrations() {
	m.RegistrationsTotal.Inc()
}

func (m *Metrics) IncLogins(outcome string) {
	m.LoginsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncRefreshes(outcome string) {
	m.RefreshesTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncLogouts() {
	m.LogoutsTotal.Inc()
}
