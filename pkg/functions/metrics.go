// pkg/functions/metrics.go
package functions

import "github.com/prometheus/client_golang/prometheus"

var registrations = prometheus.NewCounterVec(
	prometheus.CounterOpts{Name: "registered_functions_total", Help: "successful function registrations by kind"},
	[]string{"kind"},
)

func init() {
	prometheus.MustRegister(registrations)
}
