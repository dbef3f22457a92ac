package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

// LogRequestConfig store middleware configuration
type LogRequestConfig struct {
	Logger       Logger
	Skipper      Skipper
	RequestID    func(c echo.Context) string
	QueryParams  func(c echo.Context) bool
	KeyAndValues func(c echo.Context) []interface{}
}

// LogRequest writes one access log line per request. Server errors are logged
// at error level, client errors at warn level.
func LogRequest(config LogRequestConfig) echo.MiddlewareFunc {
	if config.Logger == nil {
		panic("Logger is required to use LogRequest")
	}
	if config.Skipper == nil {
		config.Skipper = DefaultSkipper
	}
	if config.QueryParams == nil {
		config.QueryParams = func(c echo.Context) bool {
			return true
		}
	}
	if config.RequestID == nil {
		config.RequestID = GetRequestID
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper(c) {
				return next(c)
			}

			start := time.Now()
			req := c.Request()
			res := c.Response()

			err := next(c)
			if err != nil {
				c.Error(err)
			}
			latency := time.Since(start)

			args := make([]interface{}, 0, 24)
			args = append(args,
				"status", res.Status,
				"method", req.Method,
				"uri", req.RequestURI,
				"latency_ms", latency.Milliseconds(),
				"bytes_out", res.Size,
				"real_ip", c.RealIP(),
				"user_agent", req.UserAgent(),
				"request_id", config.RequestID(c),
			)

			if config.QueryParams(c) {
				if query := c.QueryParams(); len(query) > 0 {
					args = append(args, "query", query)
				}
			}
			if config.KeyAndValues != nil {
				args = append(args, config.KeyAndValues(c)...)
			}

			switch {
			case res.Status >= 500:
				if err != nil {
					args = append(args, "error", err.Error())
				}
				config.Logger.Errorw("request", args...)
			case res.Status >= 400:
				config.Logger.Warnw("request", args...)
			default:
				config.Logger.Infow("request", args...)
			}

			// the error has been handled above
			return nil
		}
	}
}
