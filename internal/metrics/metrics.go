// Package metrics provides Prometheus metrics collection for the
// service.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is the Prometheus registry for all hotelops metrics.
var Registry = prometheus.NewRegistry()

var (
	// HTTPRequests counts handled HTTP requests by method, route and
	// status code.
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hotelops_http_requests_total",
		Help: "HTTP requests handled, by method, route and status.",
	}, []string{"method", "route", "status"})

	// WSConnections tracks currently connected realtime subscribers.
	WSConnections = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "hotelops_websocket_connections",
		Help: "Currently connected websocket subscribers.",
	})

	// SimulatorTicks counts background mutation passes.
	SimulatorTicks = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hotelops_simulator_ticks_total",
		Help: "Background simulator mutation passes.",
	})

	// AssistantFallbacks counts interpreter calls that degraded to the
	// documented fallback response.
	AssistantFallbacks = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hotelops_assistant_fallbacks_total",
		Help: "Assistant interpreter calls that fell back to a canned response.",
	})
)

func init() {
	Registry.MustRegister(collectors.NewGoCollector())
	Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	Registry.MustRegister(HTTPRequests, WSConnections, SimulatorTicks, AssistantFallbacks)
}

// Handler returns the HTTP handler exposing the registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// RequestMiddleware counts every handled request against HTTPRequests.
func RequestMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
