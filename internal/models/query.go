package models

type SortField string

const (
	SortNone    SortField = ""
	SortByPrice SortField = "price"
	SortByTitle SortField = "title"
)

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

type OutputFormat string

const (
	FormatDocument OutputFormat = "document"
	FormatData     OutputFormat = "data"
)

const DefaultPageSize = 5

// PageSizes are the page sizes a client may ask for.
var PageSizes = []int{5, 10, 20}

// RawQuery holds the dashboard query string exactly as the client sent it.
type RawQuery struct {
	Q        string `query:"q"`
	Page     string `query:"page"`
	PageSize string `query:"pageSize"`
	SortBy   string `query:"sortBy"`
	Order    string `query:"order"`
	Format   string `query:"format"`
}

// Query is the normalized form of RawQuery. Every field always holds a valid value.
type Query struct {
	Search    string       `json:"q"`
	Page      int          `json:"page" validate:"min=1"`
	PageSize  int          `json:"pageSize" validate:"page_size"`
	SortField SortField    `json:"sortBy" validate:"omitempty,oneof=price title"`
	Order     SortOrder    `json:"order" validate:"oneof=asc desc"`
	Format    OutputFormat `json:"format" validate:"oneof=data document"`
}

func (q Query) Descending() bool {
	return q.Order == OrderDesc
}
