package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hubbl_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hubbl_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	AppointmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hubbl_appointments_total",
			Help: "Appointment mutations by kind (event, calendar) and outcome (created, cancelled, deleted)",
		},
		[]string{"kind", "outcome"},
	)

	BookingRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hubbl_booking_rejections_total",
			Help: "Booking requests rejected by a rule",
		},
		[]string{"kind", "rule"},
	)

	AuthorizationDenialsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hubbl_authorization_denials_total",
			Help: "Mutations refused by the authorizer",
		},
		[]string{"entity", "action", "role"},
	)

	MutationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hubbl_mutation_failures_total",
			Help: "Mutations that failed with an internal error",
		},
		[]string{"controller", "operation"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hubbl_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hubbl_email_queue_length",
			Help: "Current length of email queue",
		},
	)

	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hubbl_events_published_total",
			Help: "Domain events handed to the message broker",
		},
		[]string{"routing_key", "status"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordAppointment(kind, outcome string) {
	AppointmentsTotal.WithLabelValues(kind, outcome).Inc()
}

func RecordBookingRejection(kind, rule string) {
	BookingRejectionsTotal.WithLabelValues(kind, rule).Inc()
}

func RecordAuthorizationDenial(entity, action, role string) {
	AuthorizationDenialsTotal.WithLabelValues(entity, action, role).Inc()
}

func RecordMutationFailure(controller, operation string) {
	MutationFailuresTotal.WithLabelValues(controller, operation).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}

func RecordPublish(routingKey, status string) {
	EventsPublishedTotal.WithLabelValues(routingKey, status).Inc()
}
