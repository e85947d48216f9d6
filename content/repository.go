package content

import (
	"slices"
	"sort"
)

// defaultNavigation is the fixed site navigation. It is configuration data,
// not derived from the content collections.
var defaultNavigation = []NavigationItem{
	{Label: "Home", Href: "/"},
	{Label: "About", Href: "/about"},
	{Label: "Accommodation", Href: "/accommodation"},
	{Label: "Plantation", Href: "/plantation"},
	{Label: "Activities", Href: "/activities"},
	{Label: "Gallery", Href: "/gallery"},
	{Label: "Contact", Href: "/contact"},
}

// Repository exposes read-only typed access to the content store. Every
// accessor returns a fresh copy so callers can never mutate the store
// through a returned value. All operations are pure and deterministic.
type Repository struct {
	store      *Store
	navigation []NavigationItem
	plantation []PlantationSection
}

// RepositoryOption configures repository construction.
type RepositoryOption func(*Repository)

// WithNavigation replaces the default navigation list. Every entry must pass
// NavigationItem.Validate before the repository accepts it.
func WithNavigation(items []NavigationItem) RepositoryOption {
	return func(r *Repository) {
		if len(items) > 0 {
			r.navigation = cloneNavigation(items)
		}
	}
}

// WithPlantationSections replaces the store's plantation sections, for
// content authored outside the JSON collections. Every section must pass
// PlantationSection.Validate before the repository accepts it.
func WithPlantationSections(sections []PlantationSection) RepositoryOption {
	return func(r *Repository) {
		if len(sections) > 0 {
			r.plantation = slices.Clone(sections)
		}
	}
}

// NewRepository builds a repository over an already-loaded store.
func NewRepository(store *Store, opts ...RepositoryOption) (*Repository, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	repo := &Repository{
		store:      store,
		navigation: cloneNavigation(defaultNavigation),
		plantation: slices.Clone(store.plantation),
	}
	for _, opt := range opts {
		opt(repo)
	}
	for _, item := range repo.navigation {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	for _, section := range repo.plantation {
		if err := section.Validate(); err != nil {
			return nil, err
		}
	}
	return repo, nil
}

// GetSiteConfig returns the singleton site configuration.
func (r *Repository) GetSiteConfig() SiteConfig {
	return r.store.site
}

// GetContactInfo returns the singleton contact record.
func (r *Repository) GetContactInfo() ContactInfo {
	return r.store.contact
}

// GetAccommodations returns every accommodation in storage order.
func (r *Repository) GetAccommodations() []Accommodation {
	out := make([]Accommodation, len(r.store.accommodations))
	for i, record := range r.store.accommodations {
		out[i] = cloneAccommodation(record)
	}
	return out
}

// GetFeaturedAccommodations returns featured records sorted ascending by
// display order. Records sharing a display order keep their storage order.
func (r *Repository) GetFeaturedAccommodations() []Accommodation {
	out := make([]Accommodation, 0, len(r.store.accommodations))
	for _, record := range r.store.accommodations {
		if record.Featured {
			out = append(out, cloneAccommodation(record))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DisplayOrder < out[j].DisplayOrder
	})
	return out
}

// GetAccommodationBySlug returns the accommodation with the given slug.
// Absence is signalled by the boolean, never by an error.
func (r *Repository) GetAccommodationBySlug(slug string) (Accommodation, bool) {
	for _, record := range r.store.accommodations {
		if record.Slug == slug {
			return cloneAccommodation(record), true
		}
	}
	return Accommodation{}, false
}

// GetActivities returns every activity in storage order.
func (r *Repository) GetActivities() []Activity {
	out := make([]Activity, len(r.store.activities))
	for i, record := range r.store.activities {
		out[i] = cloneActivity(record)
	}
	return out
}

// GetFeaturedActivities returns featured records sorted ascending by display
// order, stable across equal orders.
func (r *Repository) GetFeaturedActivities() []Activity {
	out := make([]Activity, 0, len(r.store.activities))
	for _, record := range r.store.activities {
		if record.Featured {
			out = append(out, cloneActivity(record))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DisplayOrder < out[j].DisplayOrder
	})
	return out
}

// GetActivityBySlug returns the activity with the given slug.
func (r *Repository) GetActivityBySlug(slug string) (Activity, bool) {
	for _, record := range r.store.activities {
		if record.Slug == slug {
			return cloneActivity(record), true
		}
	}
	return Activity{}, false
}

// GetPlantationSections returns every section sorted ascending by display
// order, stable across equal orders.
func (r *Repository) GetPlantationSections() []PlantationSection {
	out := slices.Clone(r.plantation)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DisplayOrder < out[j].DisplayOrder
	})
	return out
}

// GetAboutContent returns the singleton about record.
func (r *Repository) GetAboutContent() AboutContent {
	return cloneAbout(r.store.about)
}

// GetGalleryImages returns the gallery filtered by category. An empty
// category returns the full collection; a category with no matches (or an
// unknown category value) yields an empty result, not an error. Storage
// order is preserved.
func (r *Repository) GetGalleryImages(category GalleryCategory) []GalleryImage {
	if category == "" {
		return slices.Clone(r.store.gallery)
	}
	out := make([]GalleryImage, 0, len(r.store.gallery))
	for _, image := range r.store.gallery {
		if image.Category == category {
			out = append(out, image)
		}
	}
	return out
}

// GetNavigationItems returns the fixed ordered navigation list.
func (r *Repository) GetNavigationItems() []NavigationItem {
	return cloneNavigation(r.navigation)
}

func cloneAccommodation(a Accommodation) Accommodation {
	a.Amenities = slices.Clone(a.Amenities)
	a.Images = slices.Clone(a.Images)
	a.SEO.Keywords = slices.Clone(a.SEO.Keywords)
	return a
}

func cloneActivity(a Activity) Activity {
	a.Images = slices.Clone(a.Images)
	a.SEO.Keywords = slices.Clone(a.SEO.Keywords)
	return a
}

func cloneAbout(a AboutContent) AboutContent {
	a.Story.Content = slices.Clone(a.Story.Content)
	a.Values.Items = slices.Clone(a.Values.Items)
	a.SEO.Keywords = slices.Clone(a.SEO.Keywords)
	return a
}

func cloneNavigation(items []NavigationItem) []NavigationItem {
	out := make([]NavigationItem, len(items))
	for i, item := range items {
		item.Children = cloneNavigation(item.Children)
		if len(item.Children) == 0 {
			item.Children = nil
		}
		out[i] = item
	}
	return out
}
