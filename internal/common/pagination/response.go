package pagination

// Response is a generic paginated response wrapper.
// T is the type of data items (e.g. a transmission or source DTO).
type Response[T any] struct {
	Data       []T      `json:"data"`       // Items for the current page
	Pagination Metadata `json:"pagination"` // Pagination metadata
}

// NewResponse creates a paginated response with data and metadata.
func NewResponse[T any](data []T, metadata Metadata) Response[T] {
	return Response[T]{
		Data:       data,
		Pagination: metadata,
	}
}
