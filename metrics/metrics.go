package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CheckoutsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "digistore",
		Name:      "checkouts_total",
		Help:      "Total number of successful checkouts.",
	})
	CheckoutFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "digistore",
		Name:      "checkout_failures_total",
		Help:      "Checkout attempts that rolled back, by HTTP status.",
	}, []string{"status"})
	StatusTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "digistore",
		Name:      "transaction_status_transitions_total",
		Help:      "Transaction status writes, by resulting status.",
	}, []string{"status"})
	RequestLatencyMS = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "digistore",
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"path"})
)

func init() {
	prometheus.MustRegister(CheckoutsTotal, CheckoutFailures, StatusTransitions, RequestLatencyMS)
}

// Handler exposes the default registry for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
