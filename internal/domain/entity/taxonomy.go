package entity

// CategoryType groups categories by the kind of content their tags describe.
type CategoryType string

const (
	CategoryShip       CategoryType = "SHIP"
	CategoryPatch      CategoryType = "PATCH"
	CategoryCreature   CategoryType = "CREATURE"
	CategoryLocation   CategoryType = "LOCATION"
	CategoryEvent      CategoryType = "EVENT"
	CategoryFeature    CategoryType = "FEATURE"
	CategoryNewsletter CategoryType = "NEWSLETTER"
)

// Category is a grouping of tags with a display sort order.
// Only categories with at least one tag are surfaced to clients.
type Category struct {
	ID          string
	Name        string
	Slug        string
	Type        CategoryType
	Description string
	Color       string
	SortOrder   int
}

// Tag is a named label scoped to exactly one category, optionally associated
// with a ship family.
type Tag struct {
	ID           int64
	Name         string
	Slug         string
	CategoryID   string
	ShipFamilyID *int64
	SortOrder    int
}

// ShipFamily is a cosmetic grouping that tags can optionally reference.
type ShipFamily struct {
	ID   int64
	Name string
	Slug string
}
