package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the booking API. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	BookingsCreated     prometheus.Counter
	BookingRejections   *prometheus.CounterVec
	BookingTransitions  *prometheus.CounterVec
	BookingAmount       prometheus.Histogram
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New registers the collectors on reg. Tests pass a fresh prometheus.NewRegistry().
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		BookingsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "hotel_bookings_created_total",
			Help: "Total number of bookings persisted",
		}),

		BookingRejections: f.NewCounterVec(prometheus.CounterOpts{
			Name: "hotel_booking_rejections_total",
			Help: "Booking requests rejected, by error kind",
		}, []string{"reason"}),

		BookingTransitions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "hotel_booking_transitions_total",
			Help: "Booking status transitions, by target status",
		}, []string{"status"}),

		BookingAmount: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "hotel_booking_amount",
			Help:    "Total amount of created bookings",
			Buckets: prometheus.ExponentialBuckets(1000, 2, 10),
		}),

		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "hotel_http_requests_total",
			Help: "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hotel_http_request_duration_seconds",
			Help:    "Duration of HTTP request handling",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

func (m *Metrics) BookingCreated(amount float64) {
	if m == nil {
		return
	}
	m.BookingsCreated.Inc()
	m.BookingAmount.Observe(amount)
}

func (m *Metrics) BookingRejected(reason string) {
	if m == nil {
		return
	}
	m.BookingRejections.WithLabelValues(reason).Inc()
}

func (m *Metrics) BookingTransitioned(status string) {
	if m == nil {
		return
	}
	m.BookingTransitions.WithLabelValues(status).Inc()
}

func (m *Metrics) ObserveHTTP(method, route string, status int, took time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(took.Seconds())
}
