package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rundi_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rundi_http_request_duration_seconds",
			Help:    "Histogram of response durations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	// DeliveredTokens counts campaign tokens by delivery result (sent, failed).
	DeliveredTokens = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rundi_campaign_tokens_total",
			Help: "Campaign push tokens processed, by result",
		},
		[]string{"result"},
	)

	// DeliveryBatches counts multicast batches by outcome (ok, error, cancelled).
	DeliveryBatches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rundi_campaign_batches_total",
			Help: "Campaign multicast batches, by outcome",
		},
		[]string{"outcome"},
	)

	SendDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rundi_campaign_send_duration_seconds",
			Help:    "Duration of a full campaign send",
			Buckets: []float64{.1, .5, 1, 2.5, 5, 10, 30, 60, 120},
		},
	)
)

// Init registers every collector with the default registry. Call it once
// at startup.
func Init() {
	prometheus.MustRegister(HTTPRequests, RequestDuration, DeliveredTokens, DeliveryBatches, SendDuration)
}
