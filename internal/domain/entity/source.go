package entity

// Source is a named origin a transmission is attributed to, e.g. "Spectrum"
// or "CitizenCon". Unique by name and by slug.
type Source struct {
	ID          int64
	Name        string
	Slug        string
	Description string
	SortOrder   int
}
