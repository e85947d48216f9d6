package seo

import (
	"github.com/kerlingfarm/farmsite/content"
	"github.com/kerlingfarm/farmsite/internal/util"
)

const schemaContext = "https://schema.org"

// GeoCoordinates is the schema.org geo block. Coordinates come from
// deployment config, never from content records.
type GeoCoordinates struct {
	Type      string  `json:"@type"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Rating is the schema.org aggregateRating block.
type Rating struct {
	Type        string  `json:"@type"`
	RatingValue float64 `json:"ratingValue"`
	ReviewCount int     `json:"reviewCount"`
}

// PostalAddress is the schema.org address block.
type PostalAddress struct {
	Type            string `json:"@type"`
	StreetAddress   string `json:"streetAddress"`
	AddressLocality string `json:"addressLocality"`
	AddressRegion   string `json:"addressRegion"`
	PostalCode      string `json:"postalCode"`
	AddressCountry  string `json:"addressCountry"`
}

// ContactPoint is the schema.org contactPoint block.
type ContactPoint struct {
	Type        string `json:"@type"`
	Telephone   string `json:"telephone"`
	ContactType string `json:"contactType"`
	Email       string `json:"email"`
}

// Offer is the schema.org offers block carried by accommodation pages.
type Offer struct {
	Type          string  `json:"@type"`
	Price         float64 `json:"price"`
	PriceCurrency string  `json:"priceCurrency"`
	Availability  string  `json:"availability"`
}

// OrganizationSchema is the site-wide LodgingBusiness document emitted on
// every page.
type OrganizationSchema struct {
	Context         string          `json:"@context"`
	Type            string          `json:"@type"`
	ID              string          `json:"@id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	URL             string          `json:"url"`
	Logo            string          `json:"logo,omitempty"`
	Image           string          `json:"image,omitempty"`
	Telephone       string          `json:"telephone,omitempty"`
	Email           string          `json:"email,omitempty"`
	Address         *PostalAddress  `json:"address,omitempty"`
	Geo             *GeoCoordinates `json:"geo,omitempty"`
	ContactPoint    *ContactPoint   `json:"contactPoint,omitempty"`
	SameAs          []string        `json:"sameAs,omitempty"`
	PriceRange      string          `json:"priceRange,omitempty"`
	AggregateRating *Rating         `json:"aggregateRating,omitempty"`
}

// BreadcrumbItem is one rung of a breadcrumb trail.
type BreadcrumbItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

// BreadcrumbSchema is the BreadcrumbList document for one page.
type BreadcrumbSchema struct {
	Context         string           `json:"@context"`
	Type            string           `json:"@type"`
	ItemListElement []BreadcrumbItem `json:"itemListElement"`
}

// AccommodationSchema is the Hotel document for one accommodation detail
// page.
type AccommodationSchema struct {
	Context          string         `json:"@context"`
	Type             string         `json:"@type"`
	Name             string         `json:"name"`
	Description      string         `json:"description"`
	URL              string         `json:"url"`
	Image            []string       `json:"image,omitempty"`
	Address          *PostalAddress `json:"address,omitempty"`
	AmenityFeature   []Amenity      `json:"amenityFeature,omitempty"`
	Offers           *Offer         `json:"offers,omitempty"`
	MaximumAttendees int            `json:"maximumAttendeeCapacity,omitempty"`
	ContainedIn      *ParentRef     `json:"containedInPlace,omitempty"`
}

// Amenity is the schema.org amenityFeature entry.
type Amenity struct {
	Type  string `json:"@type"`
	Name  string `json:"name"`
	Value bool   `json:"value"`
}

// ParentRef links a nested document back to the site-wide organization node.
type ParentRef struct {
	Type string `json:"@type"`
	ID   string `json:"@id"`
}

// Crumb is a plain label/path pair used to request a breadcrumb document.
type Crumb struct {
	Label string
	Path  string
}

// OrganizationSchema builds the site-wide LodgingBusiness document from the
// content singletons and deployment config.
func (d *Deriver) OrganizationSchema() OrganizationSchema {
	doc := OrganizationSchema{
		Context:     schemaContext,
		Type:        "LodgingBusiness",
		ID:          d.baseURL + "/#organization",
		Name:        d.site.Name,
		Description: d.site.Description,
		URL:         d.baseURL,
		Telephone:   d.contact.Phone,
		Email:       d.contact.Email,
		Logo:        d.maybeAbsolute(d.site.Logo),
		Image:       d.absoluteURL(d.defaultImage()),
		PriceRange:  d.cfg.PriceRange,
	}

	if addr := postalAddress(d.contact.Address); addr != nil {
		doc.Address = addr
	}
	if d.cfg.Geo != nil {
		geo := *d.cfg.Geo
		geo.Type = "GeoCoordinates"
		doc.Geo = &geo
	}
	if d.cfg.Rating != nil {
		rating := *d.cfg.Rating
		rating.Type = "AggregateRating"
		doc.AggregateRating = &rating
	}
	if d.contact.Phone != "" || d.contact.Email != "" {
		doc.ContactPoint = &ContactPoint{
			Type:        "ContactPoint",
			Telephone:   d.contact.Phone,
			ContactType: "reservations",
			Email:       d.contact.Email,
		}
	}
	doc.SameAs = sameAs(d.contact.SocialMedia)
	return doc
}

// BreadcrumbSchema builds a BreadcrumbList with 1-based positions and
// absolute item URLs.
func (d *Deriver) BreadcrumbSchema(crumbs []Crumb) BreadcrumbSchema {
	items := make([]BreadcrumbItem, 0, len(crumbs))
	for i, crumb := range crumbs {
		items = append(items, BreadcrumbItem{
			Type:     "ListItem",
			Position: i + 1,
			Name:     crumb.Label,
			Item:     d.absoluteURL(crumb.Path),
		})
	}
	return BreadcrumbSchema{
		Context:         schemaContext,
		Type:            "BreadcrumbList",
		ItemListElement: items,
	}
}

// AccommodationSchema builds the Hotel document for one accommodation. The
// page path must be the in-site detail path for the record.
func (d *Deriver) AccommodationSchema(record content.Accommodation, path string) AccommodationSchema {
	images := make([]string, 0, len(record.Images))
	for _, image := range record.Images {
		images = append(images, d.maybeAbsolute(image))
	}

	amenities := make([]Amenity, 0, len(record.Amenities))
	for _, name := range record.Amenities {
		amenities = append(amenities, Amenity{
			Type:  "LocationFeatureSpecification",
			Name:  name,
			Value: true,
		})
	}

	doc := AccommodationSchema{
		Context:          schemaContext,
		Type:             "Hotel",
		Name:             record.Name,
		Description:      util.FirstNonEmpty(record.FullDescription, record.ShortDescription),
		URL:              d.absoluteURL(path),
		Image:            images,
		AmenityFeature:   amenities,
		MaximumAttendees: record.Capacity,
		ContainedIn: &ParentRef{
			Type: "LodgingBusiness",
			ID:   d.baseURL + "/#organization",
		},
	}
	if addr := postalAddress(d.contact.Address); addr != nil {
		doc.Address = addr
	}
	if record.PricePerNight > 0 {
		doc.Offers = &Offer{
			Type:          "Offer",
			Price:         record.PricePerNight,
			PriceCurrency: "USD",
			Availability:  "https://schema.org/InStock",
		}
	}
	return doc
}

// maybeAbsolute resolves relative asset paths against the base URL and
// leaves empty values empty.
func (d *Deriver) maybeAbsolute(path string) string {
	if path == "" {
		return ""
	}
	return d.absoluteURL(path)
}

func postalAddress(addr content.Address) *PostalAddress {
	if addr == (content.Address{}) {
		return nil
	}
	return &PostalAddress{
		Type:            "PostalAddress",
		StreetAddress:   addr.Street,
		AddressLocality: addr.City,
		AddressRegion:   addr.State,
		PostalCode:      addr.ZipCode,
		AddressCountry:  addr.Country,
	}
}

func sameAs(social content.SocialMedia) []string {
	var links []string
	for _, link := range []string{social.Facebook, social.Instagram, social.Twitter} {
		if link != "" {
			links = append(links, link)
		}
	}
	return links
}
