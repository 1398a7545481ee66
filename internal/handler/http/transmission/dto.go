// Package transmission provides HTTP handlers for the transmission feed:
// paginated filtered listing, detail retrieval, and role-gated mutation.
package transmission

import (
	"time"

	txUC "verse-report/internal/usecase/transmission"
)

// TagDTO is a tag reference on a transmission.
type TagDTO struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	CategorySlug string `json:"categorySlug"`
}

// DTO represents the JSON structure for transmission data transfer.
// Content is only populated on detail responses; list responses carry
// HasContent so clients know whether an expansion exists.
type DTO struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	SubTitle    string     `json:"subTitle,omitempty"`
	Content     string     `json:"content,omitempty"`
	HasContent  bool       `json:"hasContent"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	IsHighlight bool       `json:"isHighlight"`
	SourceID    int64      `json:"sourceId"`
	SourceName  string     `json:"sourceName"`
	SourceURL   string     `json:"sourceUrl,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	Publisher   string     `json:"publisher"`
	Tags        []TagDTO   `json:"tags"`
}

// toDTO converts an assembled view. withContent controls whether the body
// itself rides along (detail) or only the availability flag (list).
func toDTO(v txUC.View, withContent bool) DTO {
	t := v.Transmission
	dto := DTO{
		ID:          t.ID,
		Title:       t.Title,
		SubTitle:    t.SubTitle,
		HasContent:  t.HasContent(),
		Type:        string(t.Type),
		Status:      string(t.Status),
		IsHighlight: t.IsHighlight,
		SourceID:    t.SourceID,
		SourceName:  v.SourceName,
		SourceURL:   t.SourceURL,
		PublishedAt: t.PublishedAt,
		Publisher:   v.PublisherName,
		Tags:        make([]TagDTO, 0, len(v.Tags)),
	}
	if withContent && t.HasContent() {
		dto.Content = t.Content
	}
	for _, tag := range v.Tags {
		dto.Tags = append(dto.Tags, TagDTO{
			ID:           tag.ID,
			Name:         tag.Name,
			Slug:         tag.Slug,
			CategorySlug: tag.CategorySlug,
		})
	}
	return dto
}
