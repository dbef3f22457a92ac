package util

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceIncludes(t *testing.T) {
	assert.True(t, SliceIncludes([]int{5, 10, 20}, 10))
	assert.False(t, SliceIncludes([]int{5, 10, 20}, 15))
	assert.False(t, SliceIncludes(nil, "a"))
}

func TestGetHistogramVecReusesRegistered(t *testing.T) {
	first, err := GetHistogramVec("util_test_duration_seconds", "test histogram", "status")
	require.NoError(t, err)
	second, err := GetHistogramVec("util_test_duration_seconds", "test histogram", "status")
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestNewRestyClientRetries(t *testing.T) {
	tests := []struct {
		name      string
		retries   int
		wantCalls int32
	}{
		{name: "no retry by default", retries: 0, wantCalls: 1},
		{name: "retry on 503", retries: 2, wantCalls: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.WriteHeader(http.StatusServiceUnavailable)
			}))
			defer srv.Close()

			c := NewRestyClient(RestyOptions{RetryCount: tt.retries})
			c.SetRetryWaitTime(time.Millisecond).SetRetryMaxWaitTime(5 * time.Millisecond)
			resp, err := c.R().Get(srv.URL)
			require.NoError(t, err)
			assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode())
			assert.Equal(t, tt.wantCalls, calls.Load())
		})
	}
}
