package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/nguyentranbao-ct/product-dashboard/pkg/ctxval"
)

// ContextValues gives every request a ctxval bag so handlers and their callees
// can report values back to outer middlewares such as LogRequest.
func ContextValues() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.SetRequest(c.Request().WithContext(ctxval.Wrap(c.Request().Context())))
			return next(c)
		}
	}
}
