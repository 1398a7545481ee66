// Package source provides HTTP handlers for transmission sources.
package source

import "verse-report/internal/domain/entity"

// DTO represents the JSON structure for source data transfer.
type DTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	SortOrder   int    `json:"sortOrder"`
}

func toDTO(s *entity.Source) DTO {
	return DTO{
		ID:          s.ID,
		Name:        s.Name,
		Slug:        s.Slug,
		Description: s.Description,
		SortOrder:   s.SortOrder,
	}
}
