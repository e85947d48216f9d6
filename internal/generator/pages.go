package generator

import (
	"fmt"

	"github.com/kerlingfarm/farmsite/content"
	"github.com/kerlingfarm/farmsite/internal/routes"
	"github.com/kerlingfarm/farmsite/links"
	"github.com/kerlingfarm/farmsite/seo"
)

// Template names, one per page kind.
const (
	templateHome                = "home"
	templateAbout               = "about"
	templateAccommodations      = "accommodations"
	templateAccommodationDetail = "accommodation_detail"
	templatePlantation          = "plantation"
	templateActivities          = "activities"
	templateActivityDetail      = "activity_detail"
	templateGallery             = "gallery"
	templateContact             = "contact"
)

// PageData is everything a template needs to render one page.
type PageData struct {
	Route       string
	Path        string
	Template    string
	Metadata    seo.Metadata
	Breadcrumbs seo.BreadcrumbSchema
	Schemas     []any
	WhatsApp    string
	Data        map[string]any
}

// planPages expands the content repository into the full set of pages the
// site publishes. The plan is deterministic: identical content yields the
// same pages in the same order.
func (s *service) planPages() ([]PageData, error) {
	repo := s.deps.Repo
	deriver := s.deps.Deriver
	resolver := s.deps.Routes

	site := repo.GetSiteConfig()
	contact := repo.GetContactInfo()
	org := deriver.OrganizationSchema()

	var pages []PageData
	add := func(page PageData, err error) error {
		if err != nil {
			return err
		}
		pages = append(pages, page)
		return nil
	}

	homePath, err := resolver.Path(routes.Home, nil)
	if err != nil {
		return nil, err
	}

	crumb := func(label, path string) seo.Crumb {
		return seo.Crumb{Label: label, Path: path}
	}
	trail := func(extra ...seo.Crumb) []seo.Crumb {
		return append([]seo.Crumb{crumb("Home", homePath)}, extra...)
	}

	// Home
	if err := add(s.staticPage(staticPageSpec{
		route:    routes.Home,
		template: templateHome,
		input:    seo.PageInput{Title: pageTitle(site, site.Tagline)},
		crumbs:   trail(),
		org:      org,
		data: map[string]any{
			"Site":                   site,
			"FeaturedAccommodations": repo.GetFeaturedAccommodations(),
			"FeaturedActivities":     repo.GetFeaturedActivities(),
		},
	})); err != nil {
		return nil, err
	}

	// About
	about := repo.GetAboutContent()
	aboutPath, err := resolver.Path(routes.About, nil)
	if err != nil {
		return nil, err
	}
	if err := add(s.staticPage(staticPageSpec{
		route:    routes.About,
		template: templateAbout,
		input: seo.PageInput{
			Title:       pageTitle(site, "About"),
			Description: about.Hero.Description,
			SEO:         &about.SEO,
		},
		crumbs: trail(crumb("About", aboutPath)),
		org:    org,
		data:   map[string]any{"About": about},
	})); err != nil {
		return nil, err
	}

	// Accommodation list and details
	accommodations := repo.GetAccommodations()
	listPath, err := resolver.Path(routes.Accommodations, nil)
	if err != nil {
		return nil, err
	}
	if err := add(s.staticPage(staticPageSpec{
		route:    routes.Accommodations,
		template: templateAccommodations,
		input:    seo.PageInput{Title: pageTitle(site, "Accommodation")},
		crumbs:   trail(crumb("Accommodation", listPath)),
		org:      org,
		data:     map[string]any{"Accommodations": accommodations},
	})); err != nil {
		return nil, err
	}

	for _, record := range accommodations {
		detailPath, err := resolver.DetailPath(routes.AccommodationDetail, record.Slug)
		if err != nil {
			return nil, fmt.Errorf("generator: accommodation %q: %w", record.Slug, err)
		}
		metadata := deriver.DeriveMetadata(seo.PageInput{
			Title:       pageTitle(site, record.Name),
			Description: record.ShortDescription,
			Image:       record.FeaturedImage,
			Path:        detailPath,
			SEO:         &record.SEO,
		})
		breadcrumbs := deriver.BreadcrumbSchema(trail(
			crumb("Accommodation", listPath),
			crumb(record.Name, detailPath),
		))
		pages = append(pages, PageData{
			Route:       routes.AccommodationDetail,
			Path:        detailPath,
			Template:    templateAccommodationDetail,
			Metadata:    metadata,
			Breadcrumbs: breadcrumbs,
			Schemas:     []any{org, breadcrumbs, deriver.AccommodationSchema(record, detailPath)},
			WhatsApp:    links.WhatsAppLink(contact.WhatsApp, links.BookingInquiry(record.Name)),
			Data:        map[string]any{"Accommodation": record},
		})
	}

	// Plantation
	plantationPath, err := resolver.Path(routes.Plantation, nil)
	if err != nil {
		return nil, err
	}
	if err := add(s.staticPage(staticPageSpec{
		route:    routes.Plantation,
		template: templatePlantation,
		input:    seo.PageInput{Title: pageTitle(site, "The Plantation")},
		crumbs:   trail(crumb("The Plantation", plantationPath)),
		org:      org,
		data:     map[string]any{"Sections": repo.GetPlantationSections()},
	})); err != nil {
		return nil, err
	}

	// Activities list and details
	activities := repo.GetActivities()
	activitiesPath, err := resolver.Path(routes.Activities, nil)
	if err != nil {
		return nil, err
	}
	if err := add(s.staticPage(staticPageSpec{
		route:    routes.Activities,
		template: templateActivities,
		input:    seo.PageInput{Title: pageTitle(site, "Activities")},
		crumbs:   trail(crumb("Activities", activitiesPath)),
		org:      org,
		data:     map[string]any{"Activities": activities},
	})); err != nil {
		return nil, err
	}

	for _, record := range activities {
		detailPath, err := resolver.DetailPath(routes.ActivityDetail, record.Slug)
		if err != nil {
			return nil, fmt.Errorf("generator: activity %q: %w", record.Slug, err)
		}
		metadata := deriver.DeriveMetadata(seo.PageInput{
			Title:       pageTitle(site, record.Name),
			Description: record.ShortDescription,
			Image:       record.FeaturedImage,
			Path:        detailPath,
			SEO:         &record.SEO,
		})
		breadcrumbs := deriver.BreadcrumbSchema(trail(
			crumb("Activities", activitiesPath),
			crumb(record.Name, detailPath),
		))
		pages = append(pages, PageData{
			Route:       routes.ActivityDetail,
			Path:        detailPath,
			Template:    templateActivityDetail,
			Metadata:    metadata,
			Breadcrumbs: breadcrumbs,
			Schemas:     []any{org, breadcrumbs},
			WhatsApp:    links.WhatsAppLink(contact.WhatsApp, links.ActivityInquiry(record.Name)),
			Data:        map[string]any{"Activity": record},
		})
	}

	// Gallery
	galleryPath, err := resolver.Path(routes.Gallery, nil)
	if err != nil {
		return nil, err
	}
	if err := add(s.staticPage(staticPageSpec{
		route:    routes.Gallery,
		template: templateGallery,
		input:    seo.PageInput{Title: pageTitle(site, "Gallery")},
		crumbs:   trail(crumb("Gallery", galleryPath)),
		org:      org,
		data: map[string]any{
			"Images":     repo.GetGalleryImages(""),
			"Categories": content.GalleryCategories(),
		},
	})); err != nil {
		return nil, err
	}

	// Contact
	contactPath, err := resolver.Path(routes.Contact, nil)
	if err != nil {
		return nil, err
	}
	contactPage, err := s.staticPage(staticPageSpec{
		route:    routes.Contact,
		template: templateContact,
		input:    seo.PageInput{Title: pageTitle(site, "Contact")},
		crumbs:   trail(crumb("Contact", contactPath)),
		org:      org,
		data:     map[string]any{"Contact": contact},
	})
	if err != nil {
		return nil, err
	}
	contactPage.WhatsApp = links.WhatsAppLink(contact.WhatsApp, links.GenericInquiry(site.Name))
	pages = append(pages, contactPage)

	return pages, nil
}

type staticPageSpec struct {
	route    string
	template string
	input    seo.PageInput
	crumbs   []seo.Crumb
	org      seo.OrganizationSchema
	data     map[string]any
}

func (s *service) staticPage(spec staticPageSpec) (PageData, error) {
	path, err := s.deps.Routes.Path(spec.route, nil)
	if err != nil {
		return PageData{}, err
	}
	spec.input.Path = path

	metadata := s.deps.Deriver.DeriveMetadata(spec.input)
	breadcrumbs := s.deps.Deriver.BreadcrumbSchema(spec.crumbs)

	return PageData{
		Route:       spec.route,
		Path:        path,
		Template:    spec.template,
		Metadata:    metadata,
		Breadcrumbs: breadcrumbs,
		Schemas:     []any{spec.org, breadcrumbs},
		Data:        spec.data,
	}, nil
}

// pageTitle joins a page label with the site name the way browser tabs
// expect. The home page uses the tagline when there is one.
func pageTitle(site content.SiteConfig, label string) string {
	if label == "" {
		return site.Name
	}
	if label == site.Name {
		return site.Name
	}
	return label + " | " + site.Name
}
