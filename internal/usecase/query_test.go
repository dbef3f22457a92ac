package usecase

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/nguyentranbao-ct/product-dashboard/internal/models"
	"github.com/nguyentranbao-ct/product-dashboard/pkg/util"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		name string
		raw  models.RawQuery
		want models.Query
	}{
		{
			name: "empty input falls back to defaults",
			raw:  models.RawQuery{},
			want: models.Query{Page: 1, PageSize: 5, SortField: models.SortNone, Order: models.OrderAsc, Format: models.FormatDocument},
		},
		{
			name: "all fields valid",
			raw:  models.RawQuery{Q: "  Red SHIRT ", Page: "3", PageSize: "20", SortBy: "price", Order: "desc", Format: "json"},
			want: models.Query{Search: "red shirt", Page: 3, PageSize: 20, SortField: models.SortByPrice, Order: models.OrderDesc, Format: models.FormatData},
		},
		{
			name: "garbage numbers",
			raw:  models.RawQuery{Page: "abc", PageSize: "lots"},
			want: models.Query{Page: 1, PageSize: 5, Order: models.OrderAsc, Format: models.FormatDocument},
		},
		{
			name: "page below one clamps up",
			raw:  models.RawQuery{Page: "-4", PageSize: "10"},
			want: models.Query{Page: 1, PageSize: 10, Order: models.OrderAsc, Format: models.FormatDocument},
		},
		{
			name: "zero page",
			raw:  models.RawQuery{Page: "0"},
			want: models.Query{Page: 1, PageSize: 5, Order: models.OrderAsc, Format: models.FormatDocument},
		},
		{
			name: "fractional page truncates",
			raw:  models.RawQuery{Page: "2.9"},
			want: models.Query{Page: 2, PageSize: 5, Order: models.OrderAsc, Format: models.FormatDocument},
		},
		{
			name: "huge page is kept for later clamping",
			raw:  models.RawQuery{Page: "1e300"},
			want: models.Query{Page: maxPage, PageSize: 5, Order: models.OrderAsc, Format: models.FormatDocument},
		},
		{
			name: "non-finite page",
			raw:  models.RawQuery{Page: "Infinity", PageSize: "NaN"},
			want: models.Query{Page: 1, PageSize: 5, Order: models.OrderAsc, Format: models.FormatDocument},
		},
		{
			name: "page size outside the allowed set",
			raw:  models.RawQuery{PageSize: "15"},
			want: models.Query{Page: 1, PageSize: 5, Order: models.OrderAsc, Format: models.FormatDocument},
		},
		{
			name: "fractional page size",
			raw:  models.RawQuery{PageSize: "10.5"},
			want: models.Query{Page: 1, PageSize: 5, Order: models.OrderAsc, Format: models.FormatDocument},
		},
		{
			name: "page size with decimal zero",
			raw:  models.RawQuery{PageSize: "10.0"},
			want: models.Query{Page: 1, PageSize: 10, Order: models.OrderAsc, Format: models.FormatDocument},
		},
		{
			name: "sort field is exact match",
			raw:  models.RawQuery{SortBy: "Price"},
			want: models.Query{Page: 1, PageSize: 5, SortField: models.SortNone, Order: models.OrderAsc, Format: models.FormatDocument},
		},
		{
			name: "title sort",
			raw:  models.RawQuery{SortBy: "title"},
			want: models.Query{Page: 1, PageSize: 5, SortField: models.SortByTitle, Order: models.OrderAsc, Format: models.FormatDocument},
		},
		{
			name: "order is case sensitive",
			raw:  models.RawQuery{SortBy: "title", Order: "DESC"},
			want: models.Query{Page: 1, PageSize: 5, SortField: models.SortByTitle, Order: models.OrderAsc, Format: models.FormatDocument},
		},
		{
			name: "format must be exactly json",
			raw:  models.RawQuery{Format: "JSON"},
			want: models.Query{Page: 1, PageSize: 5, Order: models.OrderAsc, Format: models.FormatDocument},
		},
		{
			name: "whitespace only search",
			raw:  models.RawQuery{Q: "   "},
			want: models.Query{Page: 1, PageSize: 5, Order: models.OrderAsc, Format: models.FormatDocument},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeQuery(tt.raw))
		})
	}
}

func TestNormalizeQueryAlwaysValid(t *testing.T) {
	validate := validator.New()
	validate.RegisterValidation("page_size", func(fl validator.FieldLevel) bool {
		return util.SliceIncludes(models.PageSizes, int(fl.Field().Int()))
	})

	inputs := []string{"", " ", "0", "-1", "1", "5", "10", "20", "21", "1.5", "1e3", "-1e9", "0x10", "NaN", "+Inf", "abc", "desc", "asc", "price", "title", "json", "\x00"}
	for _, q := range inputs {
		for _, page := range inputs {
			for _, size := range inputs {
				raw := models.RawQuery{Q: q, Page: page, PageSize: size, SortBy: q, Order: page, Format: size}
				got := NormalizeQuery(raw)

				assert.NoError(t, validate.Struct(got), "raw=%+v", raw)
				assert.GreaterOrEqual(t, got.Page, 1)
				assert.Contains(t, models.PageSizes, got.PageSize)
				assert.Contains(t, []models.SortField{models.SortNone, models.SortByPrice, models.SortByTitle}, got.SortField)
				assert.Contains(t, []models.SortOrder{models.OrderAsc, models.OrderDesc}, got.Order)
			}
		}
	}
}
