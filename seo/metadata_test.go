package seo_test

import (
	"reflect"
	"testing"

	"github.com/kerlingfarm/farmsite/content"
	"github.com/kerlingfarm/farmsite/seo"
)

func newTestDeriver(t *testing.T, cfg seo.Config) *seo.Deriver {
	t.Helper()
	site := content.SiteConfig{
		Name:        "Kerling Farm",
		Description: "A working coffee farm with guest cottages in the highlands.",
		URL:         "https://kerlingfarm.example",
		Logo:        "/images/logo.svg",
	}
	contact := content.ContactInfo{
		Email:    "stay@kerlingfarm.example",
		Phone:    "+1-555-0134",
		WhatsApp: "+15550134",
		Address: content.Address{
			Street:  "12 Ridge Road",
			City:    "Highland Falls",
			State:   "VT",
			ZipCode: "05401",
			Country: "US",
		},
		SocialMedia: content.SocialMedia{
			Instagram: "https://instagram.com/kerlingfarm",
		},
	}
	deriver, err := seo.NewDeriver(site, contact, cfg)
	if err != nil {
		t.Fatalf("new deriver: %v", err)
	}
	return deriver
}

func TestNewDeriverRequiresBaseURL(t *testing.T) {
	_, err := seo.NewDeriver(content.SiteConfig{}, content.ContactInfo{}, seo.Config{})
	if err != seo.ErrBaseURLRequired {
		t.Fatalf("expected ErrBaseURLRequired, got %v", err)
	}
}

func TestDeriveMetadataDefaults(t *testing.T) {
	deriver := newTestDeriver(t, seo.Config{})

	meta := deriver.DeriveMetadata(seo.PageInput{Path: "/"})

	if meta.Title != "Kerling Farm" {
		t.Fatalf("expected site name fallback, got %q", meta.Title)
	}
	if meta.Description == "" {
		t.Fatal("expected site description fallback")
	}
	if meta.Canonical != "https://kerlingfarm.example" {
		t.Fatalf("unexpected canonical %q", meta.Canonical)
	}
	if got := meta.OpenGraph.Images[0].URL; got != "https://kerlingfarm.example/images/og-default.jpg" {
		t.Fatalf("unexpected default og image %q", got)
	}
	if meta.OpenGraph.Type != "website" || meta.OpenGraph.Locale != "en_US" {
		t.Fatalf("unexpected open graph constants: %+v", meta.OpenGraph)
	}
	if meta.OpenGraph.Images[0].Width != 1200 || meta.OpenGraph.Images[0].Height != 630 {
		t.Fatalf("unexpected image dimensions: %+v", meta.OpenGraph.Images[0])
	}
	if meta.Twitter.Card != "summary_large_image" {
		t.Fatalf("unexpected twitter card %q", meta.Twitter.Card)
	}
	if !meta.Robots.Index || !meta.Robots.Follow {
		t.Fatalf("unexpected robots directives: %+v", meta.Robots)
	}
	if meta.Robots.GoogleBot.MaxSnippet != -1 || meta.Robots.GoogleBot.MaxImagePreview != "large" {
		t.Fatalf("unexpected googlebot directives: %+v", meta.Robots.GoogleBot)
	}
	if meta.Keywords == nil || len(meta.Keywords) != 0 {
		t.Fatalf("expected empty non-nil keywords, got %#v", meta.Keywords)
	}
}

func TestDeriveMetadataPrecedence(t *testing.T) {
	deriver := newTestDeriver(t, seo.Config{})

	// Embedded SEO data beats explicit input, which beats site defaults.
	meta := deriver.DeriveMetadata(seo.PageInput{
		Title:       "Page Title",
		Description: "Page description.",
		Image:       "/images/page.jpg",
		Path:        "/accommodation/the-red-barn-cottage",
		SEO: &content.SEOData{
			Title:    "Red Barn Cottage | Kerling Farm",
			OGImage:  "/images/red-barn-og.jpg",
			Keywords: []string{"cottage", "farm stay"},
		},
	})

	if meta.Title != "Red Barn Cottage | Kerling Farm" {
		t.Fatalf("expected seo title to win, got %q", meta.Title)
	}
	// SEO description is empty, so the explicit input fills the gap.
	if meta.Description != "Page description." {
		t.Fatalf("expected input description, got %q", meta.Description)
	}
	if got := meta.OpenGraph.Images[0].URL; got != "https://kerlingfarm.example/images/red-barn-og.jpg" {
		t.Fatalf("expected seo image to win, got %q", got)
	}
	if !reflect.DeepEqual(meta.Keywords, []string{"cottage", "farm stay"}) {
		t.Fatalf("unexpected keywords %#v", meta.Keywords)
	}
	if meta.Canonical != "https://kerlingfarm.example/accommodation/the-red-barn-cottage" {
		t.Fatalf("unexpected canonical %q", meta.Canonical)
	}
	if meta.OpenGraph.URL != meta.Canonical {
		t.Fatalf("open graph url %q diverges from canonical %q", meta.OpenGraph.URL, meta.Canonical)
	}
}

func TestDeriveMetadataIsIdempotent(t *testing.T) {
	deriver := newTestDeriver(t, seo.Config{})
	input := seo.PageInput{
		Title:    "Activities",
		Path:     "/activities",
		Keywords: []string{"hiking", "coffee"},
	}

	first := deriver.DeriveMetadata(input)
	second := deriver.DeriveMetadata(input)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs produced different metadata")
	}
}

func TestDeriveMetadataAbsoluteImagePassthrough(t *testing.T) {
	deriver := newTestDeriver(t, seo.Config{})

	meta := deriver.DeriveMetadata(seo.PageInput{
		Path:  "/gallery",
		Image: "https://cdn.kerlingfarm.example/gallery-hero.jpg",
	})
	if got := meta.OpenGraph.Images[0].URL; got != "https://cdn.kerlingfarm.example/gallery-hero.jpg" {
		t.Fatalf("absolute image should pass through, got %q", got)
	}
}

func TestConfigBaseURLOverridesSiteURL(t *testing.T) {
	deriver := newTestDeriver(t, seo.Config{BaseURL: "https://staging.kerlingfarm.example/"})

	meta := deriver.DeriveMetadata(seo.PageInput{Path: "/about"})
	if meta.Canonical != "https://staging.kerlingfarm.example/about" {
		t.Fatalf("unexpected canonical %q", meta.Canonical)
	}
}

func TestOrganizationSchema(t *testing.T) {
	deriver := newTestDeriver(t, seo.Config{
		PriceRange: "$$",
		Geo:        &seo.GeoCoordinates{Latitude: 44.47, Longitude: -73.21},
		Rating:     &seo.Rating{RatingValue: 4.8, ReviewCount: 127},
	})

	doc := deriver.OrganizationSchema()
	if doc.Context != "https://schema.org" || doc.Type != "LodgingBusiness" {
		t.Fatalf("unexpected envelope: %+v", doc)
	}
	if doc.ID != "https://kerlingfarm.example/#organization" {
		t.Fatalf("unexpected @id %q", doc.ID)
	}
	if doc.Address == nil || doc.Address.PostalCode != "05401" {
		t.Fatalf("unexpected address: %+v", doc.Address)
	}
	if doc.Geo == nil || doc.Geo.Type != "GeoCoordinates" || doc.Geo.Latitude != 44.47 {
		t.Fatalf("unexpected geo: %+v", doc.Geo)
	}
	if doc.AggregateRating == nil || doc.AggregateRating.ReviewCount != 127 {
		t.Fatalf("unexpected rating: %+v", doc.AggregateRating)
	}
	if doc.PriceRange != "$$" {
		t.Fatalf("unexpected price range %q", doc.PriceRange)
	}
	if len(doc.SameAs) != 1 || doc.SameAs[0] != "https://instagram.com/kerlingfarm" {
		t.Fatalf("unexpected sameAs: %#v", doc.SameAs)
	}
	if doc.ContactPoint == nil || doc.ContactPoint.ContactType != "reservations" {
		t.Fatalf("unexpected contact point: %+v", doc.ContactPoint)
	}
}

func TestBreadcrumbSchema(t *testing.T) {
	deriver := newTestDeriver(t, seo.Config{})

	doc := deriver.BreadcrumbSchema([]seo.Crumb{
		{Label: "Home", Path: "/"},
		{Label: "About", Path: "/about"},
	})
	if doc.Type != "BreadcrumbList" {
		t.Fatalf("unexpected type %q", doc.Type)
	}
	if len(doc.ItemListElement) != 2 {
		t.Fatalf("expected 2 items, got %d", len(doc.ItemListElement))
	}
	first, second := doc.ItemListElement[0], doc.ItemListElement[1]
	if first.Position != 1 || first.Item != "https://kerlingfarm.example" {
		t.Fatalf("unexpected first item: %+v", first)
	}
	if second.Position != 2 || second.Item != "https://kerlingfarm.example/about" || second.Name != "About" {
		t.Fatalf("unexpected second item: %+v", second)
	}
}

func TestAccommodationSchema(t *testing.T) {
	deriver := newTestDeriver(t, seo.Config{})

	record := content.Accommodation{
		Slug:             "the-red-barn-cottage",
		Name:             "The Red Barn Cottage",
		ShortDescription: "A restored barn cottage.",
		FullDescription:  "A restored barn cottage with views of the coffee terraces.",
		Capacity:         4,
		PricePerNight:    180,
		Amenities:        []string{"Wi-Fi", "Fireplace"},
		Images:           []string{"/images/red-barn-1.jpg"},
	}

	doc := deriver.AccommodationSchema(record, "/accommodation/the-red-barn-cottage")
	if doc.Type != "Hotel" {
		t.Fatalf("unexpected type %q", doc.Type)
	}
	if doc.URL != "https://kerlingfarm.example/accommodation/the-red-barn-cottage" {
		t.Fatalf("unexpected url %q", doc.URL)
	}
	if doc.Description != record.FullDescription {
		t.Fatalf("unexpected description %q", doc.Description)
	}
	if doc.Offers == nil || doc.Offers.Price != 180 || doc.Offers.PriceCurrency != "USD" {
		t.Fatalf("unexpected offer: %+v", doc.Offers)
	}
	if doc.MaximumAttendees != 4 {
		t.Fatalf("unexpected capacity %d", doc.MaximumAttendees)
	}
	if len(doc.AmenityFeature) != 2 || doc.AmenityFeature[0].Name != "Wi-Fi" {
		t.Fatalf("unexpected amenities: %+v", doc.AmenityFeature)
	}
	if doc.ContainedIn == nil || doc.ContainedIn.ID != "https://kerlingfarm.example/#organization" {
		t.Fatalf("unexpected parent ref: %+v", doc.ContainedIn)
	}
	if doc.Image[0] != "https://kerlingfarm.example/images/red-barn-1.jpg" {
		t.Fatalf("unexpected image %q", doc.Image[0])
	}
}

func TestAccommodationSchemaOmitsOfferWithoutPrice(t *testing.T) {
	deriver := newTestDeriver(t, seo.Config{})

	doc := deriver.AccommodationSchema(content.Accommodation{Name: "Garden Room"}, "/accommodation/garden-room")
	if doc.Offers != nil {
		t.Fatalf("expected no offer for zero price, got %+v", doc.Offers)
	}
}
