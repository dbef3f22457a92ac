package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/nguyentranbao-ct/product-dashboard/pkg/logger/logctx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		header map[string]string
		want   string
	}{
		{
			name:   "request id header is reused",
			header: map[string]string{XRequestID: "custom-request-id"},
			want:   "custom-request-id",
		},
		{
			name:   "correlation id header is reused",
			header: map[string]string{XCorrelationID: "correlation"},
			want:   "correlation",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			handler := func(c echo.Context) error {
				reqID, ok := c.Get(XRequestID).(string)
				if !ok {
					return echo.NewHTTPError(http.StatusInternalServerError, "request ID not found in context")
				}
				assert.Equal(t, reqID, logctx.RequestID(c.Request().Context()))
				assert.Equal(t, reqID, GetRequestID(c))
				return c.String(http.StatusOK, reqID)
			}

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := RequestID()(handler)(c)

			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, rec.Body.String())
			assert.Equal(t, tt.want, rec.Header().Get(XRequestID))
		})
	}
}

func TestRequestIDMiddlewareGeneratesID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := RequestID()(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})(c)

	require.NoError(t, err)
	id := rec.Header().Get(XRequestID)
	_, parseErr := uuid.Parse(id)
	assert.NoError(t, parseErr)
	assert.Equal(t, id, GetRequestID(c))
}
