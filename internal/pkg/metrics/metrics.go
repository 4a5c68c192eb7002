package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeConfirmed          = "confirmed"
	OutcomeCapacityRejected   = "capacity_rejected"
	OutcomePaymentCancelled   = "payment_cancelled"
	OutcomePaymentFailed      = "payment_failed"
	OutcomePersistenceFailed  = "persistence_failed"
	ChannelTemplateMessage    = "template_message"
	ChannelEmail              = "email"
	ChannelProfilePhoneUpdate = "profile_phone"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingFinalizeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_finalize_total",
			Help: "Booking finalize attempts by outcome",
		},
		[]string{"outcome"},
	)

	BookingNotificationsFailedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_notifications_failed_total",
			Help: "Post-booking side effects that failed, by channel",
		},
		[]string{"channel"},
	)

	BookedSeatsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "booking_seats_total",
			Help: "Seats booked across all confirmed bookings",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordFinalize(outcome string) {
	BookingFinalizeTotal.WithLabelValues(outcome).Inc()
}

func RecordConfirmedSeats(n int) {
	BookedSeatsTotal.Add(float64(n))
}

func RecordNotificationFailure(channel string) {
	BookingNotificationsFailedTotal.WithLabelValues(channel).Inc()
}
