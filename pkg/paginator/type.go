package paginator

// PaginateQuery contains pagination parameters for a request.
type PaginateQuery struct {
	Page     int `json:"page" form:"page"`           // Page number (1-indexed)
	PageSize int `json:"page_size" form:"page_size"` // Number of items per page
}

// Paginator contains pagination metadata for a query result.
type Paginator struct {
	Total       int64 `json:"total"`        // Total number of items across all pages
	Count       int   `json:"count"`        // Number of items in current page
	PerPage     int   `json:"per_page"`     // Number of items per page
	CurrentPage int   `json:"current_page"` // Current page number (1-indexed)
}
