package middleware

import (
	"errors"
	"reflect"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nguyentranbao-ct/product-dashboard/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MetricsConfig struct {
	Skipper     Skipper
	MetricsPath string
}

const (
	httpRequestsDuration = "http_request_duration_seconds"
	httpRequestsInFlight = "http_requests_in_flight"
	notFoundPath         = "/not-found"
)

var DefaultMetricsConfig = MetricsConfig{
	Skipper:     DefaultSkipper,
	MetricsPath: "/metrics",
}

func isNotFoundHandler(handler echo.HandlerFunc) bool {
	return reflect.ValueOf(handler).Pointer() == reflect.ValueOf(echo.NotFoundHandler).Pointer()
}

// Metrics returns an echo middleware with default config for instrumentation.
func Metrics() echo.MiddlewareFunc {
	return MetricsWithConfig(DefaultMetricsConfig)
}

// MetricsWithConfig records request latency per status, method and route and
// answers MetricsPath with the Prometheus exposition.
func MetricsWithConfig(config MetricsConfig) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = DefaultSkipper
	}
	duration, inFlight, err := registerHTTPMetrics()
	if err != nil {
		panic(err)
	}

	var promHandler echo.HandlerFunc
	if config.MetricsPath != "" {
		promHandler = echo.WrapHandler(promhttp.Handler())
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if promHandler != nil && req.URL.Path == config.MetricsPath {
				return promHandler(c)
			}
			if config.Skipper(c) {
				return next(c)
			}

			// unmatched routes share one label to keep cardinality bounded
			path := c.Path()
			if isNotFoundHandler(c.Handler()) {
				path = notFoundPath
			}

			inFlight.Inc()
			defer inFlight.Dec()
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := strconv.Itoa(c.Response().Status)
			duration.WithLabelValues(status, req.Method, path).Observe(time.Since(start).Seconds())

			return nil
		}
	}
}

func registerHTTPMetrics() (*prometheus.HistogramVec, prometheus.Gauge, error) {
	duration, err := util.GetHistogramVec(httpRequestsDuration, "Time spent serving an HTTP request", "code", "method", "path")
	if err != nil {
		return nil, nil, err
	}

	inFlight := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: httpRequestsInFlight,
		Help: "HTTP requests currently being served",
	})
	if err := prometheus.Register(inFlight); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, nil, err
		}
		existing, ok := are.ExistingCollector.(prometheus.Gauge)
		if !ok {
			return nil, nil, err
		}
		inFlight = existing
	}

	return duration, inFlight, nil
}
