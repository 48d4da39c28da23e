package metrics

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

// NewServer returns an http server exposing the registry on /metrics.
// The caller starts and shuts it down.
func NewServer(host string, port int, reg *prometheus.Registry) *http.Server {
	metricsRouter := mux.NewRouter()
	metricsRouter.Use(otelmux.Middleware("metrics-router"))
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		reg,
		promhttp.HandlerOpts{},
	)).Methods(http.MethodGet)

	return &http.Server{
		Addr:         net.JoinHostPort(host, strconv.Itoa(port)),
		Handler:      metricsRouter,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
}
