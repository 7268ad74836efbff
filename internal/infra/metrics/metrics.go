package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of the service.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	ReassignmentsTotal      *prometheus.CounterVec
	MemberListingDuration   prometheus.Histogram
	PermissionCacheLookups  *prometheus.CounterVec
	MembershipEventFailures prometheus.Counter
}

func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "appsmith_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "appsmith_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		ReassignmentsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "appsmith_role_reassignments_total",
				Help: "Workspace role reassignments by principal kind and outcome",
			},
			[]string{"principal", "outcome"},
		),
		MemberListingDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "appsmith_member_listing_duration_seconds",
				Help:    "Time to build the merged workspace member view",
				Buckets: prometheus.DefBuckets,
			},
		),
		PermissionCacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "appsmith_permission_cache_lookups_total",
				Help: "Session permission group cache lookups by result",
			},
			[]string{"result"},
		),
		MembershipEventFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "appsmith_membership_event_failures_total",
				Help: "Membership events that could not be published",
			},
		),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.ReassignmentsTotal,
		m.MemberListingDuration,
		m.PermissionCacheLookups,
		m.MembershipEventFailures,
	)

	return m
}

// ObserveReassignment counts one reassignment. outcome is "success" or the
// error code that stopped it.
func (m *Metrics) ObserveReassignment(principal string, outcome string) {
	if m == nil {
		return
	}
	m.ReassignmentsTotal.WithLabelValues(principal, outcome).Inc()
}

func (m *Metrics) ObserveMemberListing(start time.Time) {
	if m == nil {
		return
	}
	m.MemberListingDuration.Observe(time.Since(start).Seconds())
}

func (m *Metrics) ObserveCacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.PermissionCacheLookups.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveEventFailure() {
	if m == nil {
		return
	}
	m.MembershipEventFailures.Inc()
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware labels requests by their matched route pattern, not the raw
// path, so workspace ids do not explode cardinality.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}

		m.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rw.statusCode)).Inc()
		m.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
