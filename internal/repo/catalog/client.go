package catalog

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/nguyentranbao-ct/product-dashboard/internal/config"
	"github.com/nguyentranbao-ct/product-dashboard/internal/models"
	"github.com/nguyentranbao-ct/product-dashboard/pkg/ctxval"
	"github.com/nguyentranbao-ct/product-dashboard/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tidwall/gjson"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// maxErrorBody caps how much of an upstream error body ends up in an error message.
const maxErrorBody = 2048

type Client interface {
	// FetchPage requests one limit/offset window of the catalog.
	FetchPage(ctx context.Context, limit, offset int) ([]models.Product, error)
	// FetchAllProducts pages through the whole catalog until a short or empty page.
	FetchAllProducts(ctx context.Context) ([]models.Product, error)
}

type client struct {
	http     *resty.Client
	baseURL  string
	pageSize int
	maxPages int
	timeout  time.Duration
	duration *prometheus.HistogramVec
}

func NewClient(cfg *config.Config) (Client, error) {
	duration, err := util.GetHistogramVec(
		"catalog_fetch_page_duration_seconds",
		"Latency of a single upstream catalog page request",
		"status",
	)
	if err != nil {
		return nil, fmt.Errorf("register catalog metrics: %w", err)
	}

	return &client{
		http: util.NewRestyClient(util.RestyOptions{
			RetryCount: cfg.Upstream.RetryCount,
			Transport:  otelhttp.NewTransport(http.DefaultTransport),
		}),
		baseURL:  cfg.Upstream.BaseURL,
		pageSize: cfg.Upstream.PageSize,
		maxPages: cfg.Upstream.MaxPages,
		timeout:  cfg.Upstream.Timeout,
		duration: duration,
	}, nil
}

func (c *client) FetchAllProducts(ctx context.Context) ([]models.Product, error) {
	all := make([]models.Product, 0, c.pageSize)
	for page := 0; page < c.maxPages; page++ {
		chunk, err := c.FetchPage(ctx, c.pageSize, page*c.pageSize)
		if err != nil {
			return nil, err
		}
		all = append(all, chunk...)
		ctxval.Set(ctx, statsKey{}, FetchStats{Pages: page + 1, Items: len(all)})

		if len(chunk) < c.pageSize {
			return all, nil
		}
	}

	return nil, &models.UpstreamError{
		URL: c.baseURL,
		Err: fmt.Errorf("%w: %d pages of %d", models.ErrTooManyPages, c.maxPages, c.pageSize),
	}
}

func (c *client) FetchPage(ctx context.Context, limit, offset int) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := fmt.Sprintf("%s?limit=%d&offset=%d", c.baseURL, limit, offset)
	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"limit":  strconv.Itoa(limit),
			"offset": strconv.Itoa(offset),
		}).
		Get(c.baseURL)
	c.observe(resp, start)
	if err != nil {
		return nil, &models.UpstreamError{URL: url, Err: err}
	}

	body := resp.Body()
	if !resp.IsSuccess() {
		return nil, &models.UpstreamError{
			URL:    url,
			Status: resp.StatusCode(),
			Body:   truncate(body),
		}
	}

	if !gjson.ValidBytes(body) || !gjson.ParseBytes(body).IsArray() {
		return nil, &models.UpstreamError{
			URL:    url,
			Status: resp.StatusCode(),
			Body:   truncate(body),
			Err:    models.ErrNotArray,
		}
	}

	var products []models.Product
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, &models.UpstreamError{
			URL:    url,
			Status: resp.StatusCode(),
			Body:   truncate(body),
			Err:    fmt.Errorf("decode products: %w", err),
		}
	}

	return products, nil
}

func (c *client) observe(resp *resty.Response, start time.Time) {
	status := "error"
	if resp != nil && resp.RawResponse != nil {
		status = strconv.Itoa(resp.StatusCode())
	}
	c.duration.WithLabelValues(status).Observe(time.Since(start).Seconds())
}

func truncate(body []byte) string {
	if len(body) > maxErrorBody {
		return string(body[:maxErrorBody]) + "..."
	}
	return string(body)
}
