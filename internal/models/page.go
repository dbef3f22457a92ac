package models

// PageResult is one page window of the filtered and sorted catalog,
// serialized as the dashboard data payload.
type PageResult struct {
	Items      []Product `json:"items"`
	TotalItems int       `json:"totalItems"`
	TotalPages int       `json:"totalPages"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	Search     string    `json:"q"`
	SortField  SortField `json:"sortBy"`
	Order      SortOrder `json:"order"`
}
