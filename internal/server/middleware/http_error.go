package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// StatusClientClosedRequest is reported when the client went away before the response.
const StatusClientClosedRequest = 499

// ErrorHandler returns an echo error handler that answers every error as plain text.
// Errors raised by echo itself keep their status; any other error becomes a 500
// whose body is prefix followed by the error message.
func ErrorHandler(log Logger, prefix string) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if err == nil || c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := prefix + err.Error()

		var he *echo.HTTPError
		switch {
		case errors.As(err, &he):
			status = he.Code
			message = fmt.Sprint(he.Message)
			if he.Internal != nil && status >= http.StatusInternalServerError {
				message = prefix + he.Internal.Error()
			}
		case errors.Is(err, context.Canceled) && c.Request().Context().Err() == context.Canceled:
			// detect canceled request error
			status = StatusClientClosedRequest
		}

		if status == http.StatusNotFound && isNotFoundHandler(c.Handler()) {
			message = "no route matched"
		}

		if status >= http.StatusInternalServerError {
			log.Errorw("request failed",
				"status", status,
				"uri", c.Request().RequestURI,
				"request_id", GetRequestID(c),
				"error", err,
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.String(status, message)
		}
		if err != nil {
			log.Errorw("could not response", "code", status, "response_body", message)
		}
	}
}
