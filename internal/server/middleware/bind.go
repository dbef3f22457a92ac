package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// BindAndValidate binds path params, query string and body into req, then
// validates it with the echo validator. An invalid request is a bad request.
func BindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return err
	}

	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}

	return nil
}
