package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service counters exposed on /metrics. A nil *Metrics is
// valid and counts nothing, tests construct handlers without a registry.
type Metrics struct {
	bookingsCreated      prometheus.Counter
	checkoutSessions     prometheus.Counter
	paymentConfirmations *prometheus.CounterVec
	webhookRejections    prometheus.Counter
}

func New(service string) *Metrics {
	labels := prometheus.Labels{"service": service}
	return &Metrics{
		bookingsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Bookings accepted for processing.",
			ConstLabels: labels,
		}),
		checkoutSessions: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "checkout_sessions_created_total",
			Help:        "Checkout sessions created at the payment gateway.",
			ConstLabels: labels,
		}),
		paymentConfirmations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "payment_confirmations_total",
			Help:        "Successful payment confirmations by delivery path.",
			ConstLabels: labels,
		}, []string{"path"}),
		webhookRejections: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "webhook_rejections_total",
			Help:        "Webhook events rejected on signature verification.",
			ConstLabels: labels,
		}),
	}
}

func (m *Metrics) IncBookingsCreated() {
	if m == nil {
		return
	}
	m.bookingsCreated.Inc()
}

func (m *Metrics) IncCheckoutSessions() {
	if m == nil {
		return
	}
	m.checkoutSessions.Inc()
}

func (m *Metrics) IncPaymentConfirmations(path string) {
	if m == nil {
		return
	}
	m.paymentConfirmations.WithLabelValues(path).Inc()
}

func (m *Metrics) IncWebhookRejections() {
	if m == nil {
		return
	}
	m.webhookRejections.Inc()
}
