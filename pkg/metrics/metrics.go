package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business metrics
	LeadsCreated       prometheus.Counter
	LeadTransitions    *prometheus.CounterVec
	CampaignsActivated prometheus.Counter
	EmailsScheduled    prometheus.Counter
	EmailsSent         *prometheus.CounterVec
	ExportsCreated     prometheus.Counter
	LoginAttempts      *prometheus.CounterVec
	TenantMismatches   prometheus.Counter
}

// New creates a Metrics instance with all metrics registered on the default
// registry.
func New() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		LeadsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "leads_created_total",
			Help: "Total number of leads created",
		}),
		LeadTransitions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lead_transitions_total",
				Help: "Total number of lead status transitions",
			},
			[]string{"to_status"},
		),
		CampaignsActivated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "campaigns_activated_total",
			Help: "Total number of campaign activations",
		}),
		EmailsScheduled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "campaign_emails_scheduled_total",
			Help: "Total number of campaign emails scheduled",
		}),
		EmailsSent: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campaign_emails_sent_total",
				Help: "Total number of campaign email send attempts",
			},
			[]string{"status"}, // sent, failed
		),
		ExportsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "exports_created_total",
			Help: "Total number of lead exports created",
		}),
		LoginAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "login_attempts_total",
				Help: "Total number of login attempts",
			},
			[]string{"status"}, // success, failed
		),
		TenantMismatches: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tenant_mismatches_total",
			Help: "Total number of cross-tenant access attempts",
		}),
	}
}

// Middleware creates an Echo middleware recording request counts and latency
// per route pattern.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			path := c.Path() // route pattern, e.g. /api/v1/leads/:id

			err := next(c)

			status := strconv.Itoa(c.Response().Status)
			m.HTTPRequestsTotal.WithLabelValues(req.Method, path, status).Inc()
			m.HTTPRequestDuration.WithLabelValues(req.Method, path, status).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// RecordLeadCreated increments the leads created counter.
func (m *Metrics) RecordLeadCreated() {
	m.LeadsCreated.Inc()
}

// RecordLeadTransition increments the transition counter for a target status.
func (m *Metrics) RecordLeadTransition(toStatus string) {
	m.LeadTransitions.WithLabelValues(toStatus).Inc()
}

// RecordCampaignActivated increments the activation counter.
func (m *Metrics) RecordCampaignActivated() {
	m.CampaignsActivated.Inc()
}

// RecordEmailsScheduled adds to the scheduled email counter.
func (m *Metrics) RecordEmailsScheduled(count int) {
	m.EmailsScheduled.Add(float64(count))
}

// RecordEmailSent increments the send counter with its outcome.
func (m *Metrics) RecordEmailSent(success bool) {
	status := "failed"
	if success {
		status = "sent"
	}
	m.EmailsSent.WithLabelValues(status).Inc()
}

// RecordExportCreated increments the export counter.
func (m *Metrics) RecordExportCreated() {
	m.ExportsCreated.Inc()
}

// RecordLoginAttempt increments the login counter with its outcome.
func (m *Metrics) RecordLoginAttempt(success bool) {
	status := "failed"
	if success {
		status = "success"
	}
	m.LoginAttempts.WithLabelValues(status).Inc()
}

// RecordTenantMismatch increments the cross-tenant access counter.
func (m *Metrics) RecordTenantMismatch() {
	m.TenantMismatches.Inc()
}
