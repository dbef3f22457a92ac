package usecase

import (
	"math"
	"strings"

	"github.com/nguyentranbao-ct/product-dashboard/internal/models"
	"github.com/nguyentranbao-ct/product-dashboard/pkg/util"
	"github.com/spf13/cast"
)

// maxPage keeps absurd page numbers inside int range; the pipeline clamps them anyway.
const maxPage = math.MaxInt32

// NormalizeQuery resolves every raw parameter to a valid value. It never fails.
func NormalizeQuery(raw models.RawQuery) models.Query {
	return models.Query{
		Search:    normalizeSearch(raw.Q),
		Page:      normalizePage(raw.Page),
		PageSize:  normalizePageSize(raw.PageSize),
		SortField: normalizeSortField(raw.SortBy),
		Order:     normalizeOrder(raw.Order),
		Format:    normalizeFormat(raw.Format),
	}
}

func normalizeSearch(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

func normalizePage(s string) int {
	f, ok := parseNumber(s)
	if !ok {
		return 1
	}
	page := int(math.Trunc(math.Min(f, maxPage)))
	if page < 1 {
		return 1
	}
	return page
}

func normalizePageSize(s string) int {
	f, ok := parseNumber(s)
	if !ok || f != math.Trunc(f) {
		return models.DefaultPageSize
	}
	size := int(f)
	if !util.SliceIncludes(models.PageSizes, size) {
		return models.DefaultPageSize
	}
	return size
}

func normalizeSortField(s string) models.SortField {
	switch models.SortField(s) {
	case models.SortByPrice:
		return models.SortByPrice
	case models.SortByTitle:
		return models.SortByTitle
	default:
		return models.SortNone
	}
}

// normalizeOrder is an exact, case-sensitive match: "DESC" sorts ascending.
func normalizeOrder(s string) models.SortOrder {
	if models.SortOrder(s) == models.OrderDesc {
		return models.OrderDesc
	}
	return models.OrderAsc
}

func normalizeFormat(s string) models.OutputFormat {
	if s == "json" {
		return models.FormatData
	}
	return models.FormatDocument
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := cast.ToFloat64E(s)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
