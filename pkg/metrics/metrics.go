package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var APIRequestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "uniex_api_requests_total",
		Help: "Total number of exchange REST API requests",
	},
	[]string{"exchange", "endpoint", "status"},
)

var APIErrorsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "uniex_api_errors_total",
		Help: "Total number of exchange REST API requests that translated to a typed error",
	},
	[]string{"exchange", "endpoint"},
)

func init() {
	prometheus.MustRegister(APIRequestsTotal, APIErrorsTotal)
}

func RecordRequest(exchange, endpoint string, httpStatus int) {
	APIRequestsTotal.WithLabelValues(exchange, endpoint, strconv.Itoa(httpStatus)).Inc()
}

func RecordError(exchange, endpoint string) {
	APIErrorsTotal.WithLabelValues(exchange, endpoint).Inc()
}
