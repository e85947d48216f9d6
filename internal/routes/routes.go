// Package routes owns the site's URL space. Every page path is declared
// once here and resolved through go-urlkit, so templates, sitemaps, and
// structured data never hand-build paths.
package routes

import (
	"errors"
	"fmt"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"
)

// Route names for every page the site publishes.
const (
	Home                = "home"
	About               = "about"
	Accommodations      = "accommodations"
	AccommodationDetail = "accommodation_detail"
	Plantation          = "plantation"
	Activities          = "activities"
	ActivityDetail      = "activity_detail"
	Gallery             = "gallery"
	Contact             = "contact"
)

const siteGroup = "site"

var ErrBaseURLRequired = errors.New("routes: base URL is required")

// Resolver builds absolute URLs and in-site paths from named routes.
type Resolver struct {
	manager *urlkit.RouteManager
	baseURL string
}

// NewResolver configures the route table against the given base URL.
func NewResolver(baseURL string) (*Resolver, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrBaseURLRequired
	}

	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    siteGroup,
				BaseURL: baseURL,
				Paths: map[string]string{
					Home:                "/",
					About:               "/about",
					Accommodations:      "/accommodation",
					AccommodationDetail: "/accommodation/:slug",
					Plantation:          "/plantation",
					Activities:          "/activities",
					ActivityDetail:      "/activities/:slug",
					Gallery:             "/gallery",
					Contact:             "/contact",
				},
			},
		},
	})

	return &Resolver{manager: manager, baseURL: baseURL}, nil
}

// BaseURL returns the configured base URL without a trailing slash.
func (r *Resolver) BaseURL() string {
	return r.baseURL
}

// URL builds the absolute URL for a named route. Params fill the :name
// placeholders of the route path.
func (r *Resolver) URL(route string, params map[string]string) (string, error) {
	group, err := r.lookupGroup(siteGroup)
	if err != nil {
		return "", err
	}
	builder, err := r.safeBuilder(group, route)
	if err != nil {
		return "", err
	}
	for key, val := range params {
		builder = builder.WithParam(key, val)
	}
	url, err := builder.Build()
	if err != nil {
		return "", fmt.Errorf("routes: build %q: %w", route, err)
	}
	return normalizeURL(url, r.baseURL), nil
}

// Path builds the in-site path for a named route, always starting with "/".
func (r *Resolver) Path(route string, params map[string]string) (string, error) {
	url, err := r.URL(route, params)
	if err != nil {
		return "", err
	}
	path := strings.TrimPrefix(url, r.baseURL)
	if path == "" {
		path = "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path, nil
}

// DetailPath is a shorthand for the slug-parameterized detail routes.
func (r *Resolver) DetailPath(route, slug string) (string, error) {
	return r.Path(route, map[string]string{"slug": slug})
}

// StaticRoutes lists the routes that take no parameters, in publish order.
func StaticRoutes() []string {
	return []string{
		Home,
		About,
		Accommodations,
		Plantation,
		Activities,
		Gallery,
		Contact,
	}
}

// urlkit panics on unknown groups and routes; recover into errors so a
// typo'd route name fails the build instead of the process.
func (r *Resolver) lookupGroup(name string) (group *urlkit.Group, err error) {
	if r.manager == nil {
		return nil, fmt.Errorf("routes: route manager not configured")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("routes: route group %q not found", name)
		}
	}()
	group = r.manager.Group(name)
	return group, err
}

func (r *Resolver) safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	if group == nil {
		return nil, fmt.Errorf("routes: route group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("routes: route %q not found", route)
		}
	}()
	builder = group.Builder(route)
	return builder, err
}

// normalizeURL trims the trailing slash the root route picks up from the
// "/" path template.
func normalizeURL(url, baseURL string) string {
	if url == baseURL+"/" {
		return baseURL
	}
	return url
}
