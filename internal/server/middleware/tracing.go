package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "internal/server/middleware"

// Tracing starts a server span per request, continuing any trace carried by the
// incoming headers. The span context is put on the request so upstream calls join it.
func Tracing(skipper Skipper) echo.MiddlewareFunc {
	if skipper == nil {
		skipper = DefaultSkipper
	}
	tracer := otel.Tracer(tracerName)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipper(c) {
				return next(c)
			}

			req := c.Request()
			ctx := otel.GetTextMapPropagator().Extract(req.Context(), propagation.HeaderCarrier(req.Header))
			ctx, span := tracer.Start(ctx, fmt.Sprintf("[%s] %s", req.Method, c.Path()),
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", req.Method),
					attribute.String("http.route", c.Path()),
					attribute.String("http.target", req.URL.RequestURI()),
				),
			)
			defer span.End()

			c.SetRequest(req.WithContext(ctx))
			if id := GetRequestID(c); id != "" {
				span.SetAttributes(attribute.String("request.id", id))
			}

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			span.SetAttributes(attribute.Int("http.status_code", status))
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
				if err != nil {
					span.RecordError(err)
				}
			}

			return nil
		}
	}
}
