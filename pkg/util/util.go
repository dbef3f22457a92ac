package util

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/prometheus/client_golang/prometheus"
)

func SliceIncludes[T comparable](values []T, value T) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

type nopLogger struct{}

func (nopLogger) Errorf(string, ...interface{}) {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Debugf(string, ...interface{}) {}

type RestyOptions struct {
	RetryCount int
	Timeout    time.Duration
	Transport  http.RoundTripper
}

// NewRestyClient returns a resty client using go-json as codec.
// Retries are off unless opts.RetryCount > 0, and then follow the retryablehttp policy.
func NewRestyClient(opts RestyOptions) *resty.Client {
	c := resty.
		New().
		SetLogger(nopLogger{}).
		SetRetryCount(opts.RetryCount)
	if opts.Timeout > 0 {
		c.SetTimeout(opts.Timeout)
	}
	if opts.Transport != nil {
		c.SetTransport(opts.Transport)
	}
	if opts.RetryCount > 0 {
		c.AddRetryCondition(func(r *resty.Response, err error) bool {
			if r == nil || r.Request == nil {
				return err != nil
			}
			retry, _ := retryablehttp.DefaultRetryPolicy(r.Request.Context(), r.RawResponse, err)
			return retry
		})
	}
	c.JSONMarshal = json.Marshal
	c.JSONUnmarshal = json.Unmarshal
	return c
}

// GetHistogramVec registers a histogram, or returns the one already registered under name.
func GetHistogramVec(name, help string, labels ...string) (*prometheus.HistogramVec, error) {
	metrics := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: name,
		Help: help,
		Buckets: []float64{
			0.005,
			0.01, // 10ms
			0.025,
			0.05,
			0.1, // 100 ms
			0.25,
			0.5,
			1.0, // 1s
			2.5,
			5.0,
			10.0, // 10s
			30.0,
		},
	}, labels)
	if err := prometheus.Register(metrics); err != nil {
		var registeredErr prometheus.AlreadyRegisteredError
		if ok := errors.As(err, &registeredErr); ok {
			metrics, ok := registeredErr.ExistingCollector.(*prometheus.HistogramVec)
			if ok {
				return metrics, nil
			}
		}
		return nil, fmt.Errorf("register: %w %T", err, err)
	}

	return metrics, nil
}
