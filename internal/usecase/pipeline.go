package usecase

import (
	"cmp"
	"slices"
	"strings"

	"github.com/nguyentranbao-ct/product-dashboard/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ApplyPipeline filters, sorts and pages products for q.
// It does not modify products and always returns a non-nil Items slice.
func ApplyPipeline(products []models.Product, q models.Query) models.PageResult {
	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = models.DefaultPageSize
	}

	filtered := filterByTitle(products, q.Search)
	sortProducts(filtered, q.SortField, q.Descending())

	total := len(filtered)
	totalPages := max(1, (total+pageSize-1)/pageSize)
	page := min(max(q.Page, 1), totalPages)
	start := (page - 1) * pageSize
	end := min(start+pageSize, total)

	return models.PageResult{
		Items:      slices.Clone(filtered[start:end]),
		TotalItems: total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   pageSize,
		Search:     q.Search,
		SortField:  q.SortField,
		Order:      q.Order,
	}
}

// filterByTitle returns a fresh slice of the products whose lowercased title contains search.
func filterByTitle(products []models.Product, search string) []models.Product {
	out := make([]models.Product, 0, len(products))
	if search == "" {
		return append(out, products...)
	}
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), search) {
			out = append(out, p)
		}
	}
	return out
}

func sortProducts(products []models.Product, field models.SortField, desc bool) {
	var compare func(a, b models.Product) int
	switch field {
	case models.SortByPrice:
		compare = func(a, b models.Product) int {
			return cmp.Compare(a.Price, b.Price)
		}
	case models.SortByTitle:
		col := newTitleCollator()
		compare = func(a, b models.Product) int {
			return col.CompareString(a.Title, b.Title)
		}
	default:
		return
	}

	dir := 1
	if desc {
		dir = -1
	}
	slices.SortStableFunc(products, func(a, b models.Product) int {
		return compare(a, b) * dir
	})
}

// newTitleCollator compares titles in Vietnamese order at base strength:
// case and tone marks are ignored, letters such as ă, â and đ stay distinct.
// Collators are not safe for concurrent use; build one per sort.
func newTitleCollator() *collate.Collator {
	return collate.New(language.Vietnamese, collate.IgnoreCase, collate.IgnoreDiacritics, collate.IgnoreWidth)
}
