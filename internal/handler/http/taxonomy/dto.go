// Package taxonomy provides HTTP handlers for the category/tag hierarchy.
package taxonomy

import (
	"verse-report/internal/repository"
)

// TagDTO represents a tag inside its category.
type TagDTO struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Slug       string  `json:"slug"`
	ShipFamily *string `json:"shipFamily,omitempty"`
}

// CategoryDTO represents a category with its tags in display order.
type CategoryDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Color       string   `json:"color,omitempty"`
	Tags        []TagDTO `json:"tags"`
}

func toCategoryDTO(c repository.CategoryWithTags) CategoryDTO {
	dto := CategoryDTO{
		ID:          c.Category.ID,
		Name:        c.Category.Name,
		Slug:        c.Category.Slug,
		Type:        string(c.Category.Type),
		Description: c.Category.Description,
		Color:       c.Category.Color,
		Tags:        make([]TagDTO, 0, len(c.Tags)),
	}
	for _, t := range c.Tags {
		tag := TagDTO{ID: t.Tag.ID, Name: t.Tag.Name, Slug: t.Tag.Slug}
		if t.ShipFamily != nil {
			slug := t.ShipFamily.Slug
			tag.ShipFamily = &slug
		}
		dto.Tags = append(dto.Tags, tag)
	}
	return dto
}
