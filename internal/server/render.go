package server

import (
	"bytes"
	_ "embed"
	"errors"
	"strings"

	"github.com/nguyentranbao-ct/product-dashboard/internal/models"
	"github.com/nguyentranbao-ct/product-dashboard/pkg/tmplx"
)

//go:embed templates/dashboard.html.tmpl
var dashboardTemplateText string

var dashboardTemplate = tmplx.MustParse("dashboard", dashboardTemplateText,
	tmplx.WithValidate(sampleDashboardView(), validateDashboard),
)

// clientState seeds the page script, so a document URL opens on the view it names.
type clientState struct {
	Q        string `json:"q"`
	PageSize int    `json:"pageSize"`
	Page     int    `json:"page"`
	SortBy   string `json:"sortBy"`
	Order    string `json:"order"`
}

type dashboardView struct {
	State     clientState
	Result    *models.PageResult
	PageSizes []int
}

func newDashboardView(result *models.PageResult) dashboardView {
	return dashboardView{
		State: clientState{
			Q:        result.Search,
			PageSize: result.PageSize,
			Page:     result.Page,
			SortBy:   string(result.SortField),
			Order:    string(result.Order),
		},
		Result:    result,
		PageSizes: models.PageSizes,
	}
}

func renderDashboard(result *models.PageResult) (*bytes.Buffer, error) {
	return dashboardTemplate.Render(newDashboardView(result))
}

func sampleDashboardView() dashboardView {
	return newDashboardView(&models.PageResult{
		Items: []models.Product{{
			ID:       1,
			Title:    "Sample",
			Price:    1,
			Category: &models.Category{Name: "Sample"},
			Images:   []string{"https://example.com/sample.png"},
		}},
		TotalItems: 1,
		TotalPages: 1,
		Page:       1,
		PageSize:   models.DefaultPageSize,
		Order:      models.OrderAsc,
	})
}

func validateDashboard(buf *bytes.Buffer) error {
	out := buf.String()
	for _, id := range []string{`id="q"`, `id="pageSize"`, `id="tbody"`, `id="jsonLink"`} {
		if !strings.Contains(out, id) {
			return errors.New("dashboard template is missing " + id)
		}
	}
	return nil
}
