package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nguyentranbao-ct/product-dashboard/internal/models"
	"github.com/nguyentranbao-ct/product-dashboard/internal/usecase"
)

type Controller interface {
	ListProducts(c echo.Context, raw models.RawQuery) error
	Health(c echo.Context) error
}

type controller struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewHandler(dashboardUsecase usecase.DashboardUsecase) Controller {
	return &controller{
		dashboardUsecase: dashboardUsecase,
	}
}

// ListProducts serves one dashboard view, as JSON data or as the HTML document.
func (h *controller) ListProducts(c echo.Context, raw models.RawQuery) error {
	query := usecase.NormalizeQuery(raw)
	if err := c.Validate(query); err != nil {
		return &models.InternalError{Op: "normalize query", Err: err}
	}

	ctx := c.Request().Context()
	result, err := h.dashboardUsecase.ListProducts(ctx, query)
	if err != nil {
		return err
	}

	if query.Format == models.FormatData {
		return c.JSON(http.StatusOK, result)
	}

	body, err := renderDashboard(result)
	if err != nil {
		return &models.InternalError{Op: "render dashboard", Err: err}
	}
	return c.HTMLBlob(http.StatusOK, body.Bytes())
}

func (h *controller) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "product-dashboard",
	})
}
