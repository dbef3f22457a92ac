package middleware

import (
	"github.com/labstack/echo/v4"
)

// WrapHandler adapts f into an echo handler. Each call binds and validates a
// fresh Req before handing it to f; f writes its own response.
func WrapHandler[Req any](f func(echo.Context, Req) error) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req Req
		if err := BindAndValidate(c, &req); err != nil {
			return err
		}
		return f(c, req)
	}
}
