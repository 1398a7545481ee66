package pagination

// Metadata contains pagination metadata included in API responses.
// HasNextPage drives the client's infinite-scroll trigger.
type Metadata struct {
	Total       int64 `json:"total"`       // Total number of items across all pages
	Page        int   `json:"page"`        // Current page number (1-based)
	Limit       int   `json:"limit"`       // Items per page
	TotalPages  int   `json:"totalPages"`  // Calculated total number of pages
	HasNextPage bool  `json:"hasNextPage"` // page < totalPages
	HasPrevPage bool  `json:"hasPrevPage"` // page > 1
}

// NewMetadata derives full pagination metadata from a total count and the
// requested page/limit.
func NewMetadata(total int64, params Params) Metadata {
	totalPages := CalculateTotalPages(total, params.Limit)
	return Metadata{
		Total:       total,
		Page:        params.Page,
		Limit:       params.Limit,
		TotalPages:  totalPages,
		HasNextPage: params.Page < totalPages,
		HasPrevPage: params.Page > 1,
	}
}
