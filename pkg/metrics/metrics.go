package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tastoria",
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tastoria",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	CartMutations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tastoria",
		Name:      "cart_mutations_total",
		Help:      "Cart store mutations by operation.",
	}, []string{"op"})

	OrdersSubmitted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tastoria",
		Name:      "orders_submitted_total",
		Help:      "Checkout order submissions by restaurant and result.",
	}, []string{"restaurant", "result"})
)

func init() {
	prometheus.MustRegister(httpRequests, httpDuration, CartMutations, OrdersSubmitted)
}

// Middleware records request counts and latency per route template.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the Prometheus scrape endpoint.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
