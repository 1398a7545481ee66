package seed

import "verse-report/internal/domain/entity"

// Reference data mirrors the curated taxonomy the site launched with.
// Category ids are stable slugs with a "cat-" prefix so re-seeding never
// reassigns them.

type roleSeed struct {
	Name        string
	Description string
}

var roles = []roleSeed{
	{Name: "admin", Description: "Full system access and user management"},
	{Name: "editor", Description: "Can create, edit, and publish transmissions"},
}

var categories = []entity.Category{
	{ID: "cat-ships", Name: "Ships", Slug: "ships", Type: entity.CategoryShip, Description: "Spacecraft, vehicles, and ship-related content", Color: "#00D4FF", SortOrder: 1},
	{ID: "cat-patches", Name: "Patches", Slug: "patches", Type: entity.CategoryPatch, Description: "Evo, PTU, and PU patches", Color: "#FF3366", SortOrder: 2},
	{ID: "cat-creatures", Name: "Creatures", Slug: "creatures", Type: entity.CategoryCreature, Description: "Alien life forms, wildlife, and creatures", Color: "#66FF33", SortOrder: 3},
	{ID: "cat-locations", Name: "Locations", Slug: "locations", Type: entity.CategoryLocation, Description: "Planets, systems, stations, and locations", Color: "#9966FF", SortOrder: 4},
	{ID: "cat-events", Name: "Events", Slug: "events", Type: entity.CategoryEvent, Description: "In-game events, community events, and special occasions", Color: "#FFD700", SortOrder: 5},
	{ID: "cat-features", Name: "Features", Slug: "features", Type: entity.CategoryFeature, Description: "Game mechanics, features, and gameplay systems", Color: "#00FFAA", SortOrder: 6},
}

var shipFamilies = []entity.ShipFamily{
	{Name: "Ironclad", Slug: "ironclad"},
	{Name: "Apollo", Slug: "apollo"},
}

var sources = []entity.Source{
	{Name: "Spectrum", Slug: "spectrum", Description: "Official Star Citizen community platform", SortOrder: 1},
	{Name: "CitizenCon", Slug: "citizencon", Description: "Annual Star Citizen convention", SortOrder: 2},
	{Name: "ISC (Inside Star Citizen)", Slug: "isc", Description: "Weekly video series from CIG", SortOrder: 3},
	{Name: "Calling All Devs", Slug: "calling-all-devs", Description: "Developer Q&A video series", SortOrder: 4},
	{Name: "Star Citizen Live", Slug: "star-citizen-live", Description: "Live developer streaming show", SortOrder: 5},
	{Name: "Around the Verse", Slug: "around-the-verse", Description: "Weekly development update show (archived)", SortOrder: 6},
	{Name: "Evocati", Slug: "evocati", Description: "Closed testing group leaks", SortOrder: 7},
	{Name: "PTU", Slug: "ptu", Description: "Public Test Universe", SortOrder: 8},
	{Name: "Reddit", Slug: "reddit", Description: "Community discussions and leaks", SortOrder: 9},
	{Name: "Twitter/X", Slug: "twitter", Description: "Social media updates and announcements", SortOrder: 10},
	{Name: "YouTube", Slug: "youtube", Description: "Video content and streams", SortOrder: 11},
	{Name: "Community Manager", Slug: "community-manager", Description: "Official CIG community manager posts", SortOrder: 12},
	{Name: "Developer", Slug: "developer", Description: "Direct developer communications", SortOrder: 13},
	{Name: "Data Mining", Slug: "data-mining", Description: "Game file analysis discoveries", SortOrder: 14},
	{Name: "Other", Slug: "other", Description: "Miscellaneous sources", SortOrder: 15},
}

// tagSeed references its category and optional ship family by slug so the
// literals stay readable; ids are resolved at insert time.
type tagSeed struct {
	Name         string
	Slug         string
	CategorySlug string
	FamilySlug   string
	SortOrder    int
}

var tags = []tagSeed{
	{Name: "Ironclad", Slug: "ironclad", CategorySlug: "ships", FamilySlug: "ironclad", SortOrder: 1},
	{Name: "Ironclad Assault", Slug: "ironclad-assault", CategorySlug: "ships", FamilySlug: "ironclad", SortOrder: 2},
	{Name: "Perseus", Slug: "perseus", CategorySlug: "ships", SortOrder: 3},
	{Name: "4.3.1", Slug: "4-3-1", CategorySlug: "patches", SortOrder: 4},
	{Name: "Nyx", Slug: "nyx", CategorySlug: "locations", SortOrder: 5},
	{Name: "Medical Gameplay", Slug: "medical-gameplay", CategorySlug: "features", SortOrder: 6},
}
