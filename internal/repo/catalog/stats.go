package catalog

import (
	"context"

	"github.com/nguyentranbao-ct/product-dashboard/pkg/ctxval"
)

// FetchStats summarizes the upstream pages read while serving one request.
type FetchStats struct {
	Pages int
	Items int
}

type statsKey struct{}

// StatsFromContext reads the stats recorded by FetchAllProducts.
// The context must have been wrapped with ctxval.Wrap before the fetch.
func StatsFromContext(ctx context.Context) (FetchStats, bool) {
	return ctxval.Get[statsKey, FetchStats](ctx, statsKey{})
}
