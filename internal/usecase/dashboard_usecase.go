package usecase

import (
	"context"
	"fmt"

	"github.com/nguyentranbao-ct/product-dashboard/internal/models"
	"github.com/nguyentranbao-ct/product-dashboard/internal/repo/catalog"
	"github.com/nguyentranbao-ct/product-dashboard/pkg/logger/logctx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type DashboardUsecase interface {
	ListProducts(ctx context.Context, query models.Query) (*models.PageResult, error)
}

type dashboardUsecase struct {
	catalog catalog.Client
}

func NewDashboardUsecase(catalog catalog.Client) DashboardUsecase {
	return &dashboardUsecase{
		catalog: catalog,
	}
}

// ListProducts re-fetches the whole catalog and runs the search/sort/page pipeline over it.
func (uc *dashboardUsecase) ListProducts(ctx context.Context, query models.Query) (*models.PageResult, error) {
	ctx, span := otel.Tracer("usecase/dashboard").Start(ctx, "ListProducts")
	defer span.End()
	span.SetAttributes(
		attribute.String("query.q", query.Search),
		attribute.Int("query.page", query.Page),
		attribute.Int("query.page_size", query.PageSize),
		attribute.String("query.sort_by", string(query.SortField)),
		attribute.String("query.order", string(query.Order)),
	)

	products, err := uc.catalog.FetchAllProducts(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch all products")
		return nil, fmt.Errorf("fetch all products: %w", err)
	}

	result := ApplyPipeline(products, query)
	span.SetAttributes(
		attribute.Int("result.total_items", result.TotalItems),
		attribute.Int("result.page", result.Page),
	)

	logctx.Debugw(ctx, "products listed",
		"fetched", len(products),
		"total_items", result.TotalItems,
		"total_pages", result.TotalPages,
		"page", result.Page,
	)

	return &result, nil
}
