package metrics

import "github.com/prometheus/client_golang/prometheus"

// Submission results.
const (
	ResultDelivered     = "delivered"
	ResultInvalid       = "invalid"
	ResultMisconfigured = "misconfigured"
	ResultFailed        = "failed"
)

// RelayMetrics counts booking submissions by outcome and times the
// Telegram round trip.
type RelayMetrics struct {
	submissions     *prometheus.CounterVec
	deliveryLatency *prometheus.HistogramVec
}

func NewRelayMetrics(reg prometheus.Registerer) *RelayMetrics {
	m := &RelayMetrics{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "booking",
			Subsystem: "relay",
			Name:      "submissions_total",
			Help:      "Booking submissions by pipeline result",
		}, []string{"result"}),
		deliveryLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "booking",
			Subsystem: "relay",
			Name:      "delivery_seconds",
			Help:      "Latency of the outbound chat notification",
			Buckets:   prometheus.DefBuckets,
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissions, m.deliveryLatency)
	return m
}

func (m *RelayMetrics) ObserveSubmission(result string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(result).Inc()
}

func (m *RelayMetrics) ObserveDelivery(status string, seconds float64) {
	if m == nil {
		return
	}
	m.deliveryLatency.WithLabelValues(status).Observe(seconds)
}
