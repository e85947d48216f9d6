package content_test

import (
	"reflect"
	"testing"

	"github.com/kerlingfarm/farmsite/content"
	"github.com/kerlingfarm/farmsite/pkg/testsupport"
)

func newTestRepository(t *testing.T, opts ...content.RepositoryOption) *content.Repository {
	t.Helper()
	store, err := content.LoadStore(testsupport.ContentFS())
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	repo, err := content.NewRepository(store, opts...)
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}
	return repo
}

func TestRepositoryRequiresStore(t *testing.T) {
	if _, err := content.NewRepository(nil); err != content.ErrStoreRequired {
		t.Fatalf("expected ErrStoreRequired, got %v", err)
	}
}

func TestGetAccommodationBySlug(t *testing.T) {
	repo := newTestRepository(t)

	record, ok := repo.GetAccommodationBySlug("the-red-barn-cottage")
	if !ok {
		t.Fatal("expected record for the-red-barn-cottage")
	}
	if record.Name != "The Red Barn Cottage" || record.Capacity != 4 {
		t.Fatalf("unexpected record: %+v", record)
	}

	if _, ok := repo.GetAccommodationBySlug("nonexistent"); ok {
		t.Fatal("expected absence for unknown slug")
	}
}

func TestGetActivityBySlug(t *testing.T) {
	repo := newTestRepository(t)

	record, ok := repo.GetActivityBySlug("ridge-trail-hike")
	if !ok {
		t.Fatal("expected record for ridge-trail-hike")
	}
	if record.Difficulty != content.DifficultyChallenging {
		t.Fatalf("unexpected difficulty %q", record.Difficulty)
	}

	if _, ok := repo.GetActivityBySlug("nonexistent"); ok {
		t.Fatal("expected absence for unknown slug")
	}
}

func TestFeaturedAccommodationsSortedAndStable(t *testing.T) {
	repo := newTestRepository(t)

	featured := repo.GetFeaturedAccommodations()
	if len(featured) != 3 {
		t.Fatalf("expected 3 featured accommodations, got %d", len(featured))
	}
	for _, record := range featured {
		if !record.Featured {
			t.Fatalf("non-featured record %q in featured list", record.Slug)
		}
	}

	// hillside-bungalow has order 1; the two order-2 records must keep their
	// storage order (red barn before loft).
	expected := []string{"hillside-bungalow", "the-red-barn-cottage", "farmhouse-loft"}
	for i, slug := range expected {
		if featured[i].Slug != slug {
			t.Fatalf("position %d: expected %q, got %q", i, slug, featured[i].Slug)
		}
	}
}

func TestFeaturedActivitiesSorted(t *testing.T) {
	repo := newTestRepository(t)

	featured := repo.GetFeaturedActivities()
	if len(featured) != 2 {
		t.Fatalf("expected 2 featured activities, got %d", len(featured))
	}
	if featured[0].Slug != "coffee-harvest-tour" || featured[1].Slug != "ridge-trail-hike" {
		t.Fatalf("unexpected order: %q, %q", featured[0].Slug, featured[1].Slug)
	}
}

func TestPlantationSectionsSorted(t *testing.T) {
	repo := newTestRepository(t)

	sections := repo.GetPlantationSections()
	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}
	for i := 1; i < len(sections); i++ {
		if sections[i-1].DisplayOrder > sections[i].DisplayOrder {
			t.Fatalf("sections not sorted: %d before %d", sections[i-1].DisplayOrder, sections[i].DisplayOrder)
		}
	}
	if sections[0].ID != "pl-1" {
		t.Fatalf("expected pl-1 first, got %s", sections[0].ID)
	}
}

func TestGalleryCategoryFilter(t *testing.T) {
	repo := newTestRepository(t)

	all := repo.GetGalleryImages("")
	if len(all) != 5 {
		t.Fatalf("expected 5 images unfiltered, got %d", len(all))
	}

	// Every enumerated category returns exactly the matching subset, and the
	// subsets together cover the whole collection.
	total := 0
	for _, category := range content.GalleryCategories() {
		subset := repo.GetGalleryImages(category)
		for _, image := range subset {
			if image.Category != category {
				t.Fatalf("image %s leaked into category %s", image.ID, category)
			}
		}
		total += len(subset)
	}
	if total != len(all) {
		t.Fatalf("category subsets cover %d images, want %d", total, len(all))
	}

	if accommodation := repo.GetGalleryImages(content.CategoryAccommodation); len(accommodation) != 2 {
		t.Fatalf("expected 2 accommodation images, got %d", len(accommodation))
	}

	if unknown := repo.GetGalleryImages(content.GalleryCategory("attic")); len(unknown) != 0 {
		t.Fatalf("unknown category should yield empty result, got %d", len(unknown))
	}
}

func TestGalleryPreservesStorageOrder(t *testing.T) {
	repo := newTestRepository(t)

	subset := repo.GetGalleryImages(content.CategoryAccommodation)
	if subset[0].ID != "img-1" || subset[1].ID != "img-5" {
		t.Fatalf("storage order not preserved: %s, %s", subset[0].ID, subset[1].ID)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	repo := newTestRepository(t)

	first := repo.GetAccommodations()
	first[0].Name = "Mutated"
	first[0].Amenities[0] = "Mutated"

	second := repo.GetAccommodations()
	if second[0].Name == "Mutated" || second[0].Amenities[0] == "Mutated" {
		t.Fatal("caller mutation leaked into the store")
	}

	about := repo.GetAboutContent()
	about.Story.Content[0] = "Mutated"
	if repo.GetAboutContent().Story.Content[0] == "Mutated" {
		t.Fatal("about mutation leaked into the store")
	}
}

func TestAccessorsAreIdempotent(t *testing.T) {
	repo := newTestRepository(t)

	if !reflect.DeepEqual(repo.GetFeaturedAccommodations(), repo.GetFeaturedAccommodations()) {
		t.Fatal("featured accommodations differ between calls")
	}
	if !reflect.DeepEqual(repo.GetGalleryImages(content.CategoryPlantation), repo.GetGalleryImages(content.CategoryPlantation)) {
		t.Fatal("gallery filter differs between calls")
	}
	if !reflect.DeepEqual(repo.GetNavigationItems(), repo.GetNavigationItems()) {
		t.Fatal("navigation differs between calls")
	}
}

func TestNavigationItems(t *testing.T) {
	repo := newTestRepository(t)

	nav := repo.GetNavigationItems()
	if len(nav) != 7 {
		t.Fatalf("expected 7 navigation items, got %d", len(nav))
	}
	if nav[0].Label != "Home" || nav[0].Href != "/" {
		t.Fatalf("unexpected first item: %+v", nav[0])
	}
	if nav[6].Href != "/contact" {
		t.Fatalf("unexpected last item: %+v", nav[6])
	}
}

func TestNavigationOverrideValidated(t *testing.T) {
	store, err := content.LoadStore(testsupport.ContentFS())
	if err != nil {
		t.Fatalf("load store: %v", err)
	}

	_, err = content.NewRepository(store, content.WithNavigation([]content.NavigationItem{
		{Label: "External", Href: "https://elsewhere.example"},
	}))
	if err == nil {
		t.Fatal("expected rejection of off-site navigation href")
	}
}

func TestPlantationSectionsOverride(t *testing.T) {
	repo := newTestRepository(t, content.WithPlantationSections([]content.PlantationSection{
		{ID: "md-roast", Title: "Roasting", Description: "<p>Small batches.</p>", DisplayOrder: 2},
		{ID: "md-origins", Title: "Origins", Description: "<p>Since 1923.</p>", DisplayOrder: 1},
	}))

	sections := repo.GetPlantationSections()
	if len(sections) != 2 {
		t.Fatalf("expected the override to replace the store sections, got %d", len(sections))
	}
	if sections[0].ID != "md-origins" || sections[1].ID != "md-roast" {
		t.Fatalf("sections not sorted by display order: %+v", sections)
	}
}

func TestPlantationSectionsOverrideValidated(t *testing.T) {
	store, err := content.LoadStore(testsupport.ContentFS())
	if err != nil {
		t.Fatalf("load store: %v", err)
	}

	_, err = content.NewRepository(store, content.WithPlantationSections([]content.PlantationSection{
		{ID: "md-untitled", Description: "<p>No title.</p>"},
	}))
	if err == nil {
		t.Fatal("expected rejection of a section without a title")
	}
}
