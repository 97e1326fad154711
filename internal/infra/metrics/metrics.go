// Package metrics exposes the Prometheus collectors of the account service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result labels shared by the account collectors.
const (
	ResultSuccess = "success"
	ResultInvalid = "invalid"
	ResultError   = "error"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "account_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "account_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	usersCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "account_users_created_total",
		Help: "Count of user creation attempts by kind and result",
	}, []string{"kind", "result"})

	loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "account_login_attempts_total",
		Help: "Count of login attempts by result",
	}, []string{"result"})

	defaultAddressAssignments = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "account_default_address_assignments_total",
		Help: "Count of address saves by whether the address became the profile default",
	}, []string{"outcome"})
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveUserCreation counts a CreateUser or CreatePrivilegedUser call.
func ObserveUserCreation(kind, result string) {
	usersCreated.WithLabelValues(kind, result).Inc()
}

// ObserveLogin counts a login attempt.
func ObserveLogin(result string) {
	loginAttempts.WithLabelValues(result).Inc()
}

// ObserveAddressSave records whether a saved address was promoted to default.
func ObserveAddressSave(assigned bool) {
	outcome := "kept"
	if assigned {
		outcome = "assigned"
	}
	defaultAddressAssignments.WithLabelValues(outcome).Inc()
}

// ResultOf maps an operation error to a result label.
func ResultOf(err error, invalid func(error) bool) string {
	switch {
	case err == nil:
		return ResultSuccess
	case invalid != nil && invalid(err):
		return ResultInvalid
	default:
		return ResultError
	}
}
