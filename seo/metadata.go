// Package seo derives page metadata and schema.org structured data from
// content records. Every function is pure: identical inputs produce
// identical output, with no lookups, clocks, or hidden state.
package seo

import (
	"errors"
	"slices"
	"strings"

	"github.com/kerlingfarm/farmsite/content"
	"github.com/kerlingfarm/farmsite/internal/util"
)

var ErrBaseURLRequired = errors.New("seo: base URL is required")

const (
	ogType       = "website"
	ogLocale     = "en_US"
	ogImageWidth = 1200
	ogImageHigh  = 630
	twitterCard  = "summary_large_image"

	defaultImagePath = "/images/og-default.jpg"
)

// Config carries the site-wide values the deriver needs beyond the content
// records. Geo, PriceRange, and Rating must be threaded through here by the
// deployment; the deriver never invents them.
type Config struct {
	BaseURL      string
	DefaultImage string
	PriceRange   string
	Geo          *GeoCoordinates
	Rating       *Rating
}

// PageInput is the override bag handed to DeriveMetadata. SEO, when set,
// wins field-by-field over the explicit fields; whatever is still missing
// falls back to the site configuration.
type PageInput struct {
	Title       string
	Description string
	Keywords    []string
	Image       string
	Path        string
	SEO         *content.SEOData
}

// OpenGraphImage is a social preview image with fixed dimensions.
type OpenGraphImage struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Alt    string `json:"alt"`
}

// OpenGraph is the social unfurling block.
type OpenGraph struct {
	Type        string           `json:"type"`
	Locale      string           `json:"locale"`
	URL         string           `json:"url"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	SiteName    string           `json:"siteName"`
	Images      []OpenGraphImage `json:"images"`
}

// Twitter is the twitter card block.
type Twitter struct {
	Card        string   `json:"card"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// GoogleBot holds the crawler-specific indexing directives.
type GoogleBot struct {
	Index           bool   `json:"index"`
	Follow          bool   `json:"follow"`
	MaxVideoPreview int    `json:"max-video-preview"`
	MaxImagePreview string `json:"max-image-preview"`
	MaxSnippet      int    `json:"max-snippet"`
}

// Robots holds the indexing directives. These are constant defaults, not
// derived from input.
type Robots struct {
	Index     bool      `json:"index"`
	Follow    bool      `json:"follow"`
	GoogleBot GoogleBot `json:"googleBot"`
}

// Metadata is the full per-page metadata payload handed to the rendering
// layer.
type Metadata struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Keywords    []string  `json:"keywords"`
	Author      string    `json:"author"`
	Creator     string    `json:"creator"`
	Publisher   string    `json:"publisher"`
	Canonical   string    `json:"canonical"`
	OpenGraph   OpenGraph `json:"openGraph"`
	Twitter     Twitter   `json:"twitter"`
	Robots      Robots    `json:"robots"`
}

// Deriver turns content records and page inputs into metadata and
// structured data. Construct once per process with the loaded singletons.
type Deriver struct {
	site    content.SiteConfig
	contact content.ContactInfo
	cfg     Config
	baseURL string
}

// NewDeriver wires a deriver from the loaded singletons and config.
func NewDeriver(site content.SiteConfig, contact content.ContactInfo, cfg Config) (*Deriver, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = strings.TrimRight(strings.TrimSpace(site.URL), "/")
	}
	if baseURL == "" {
		return nil, ErrBaseURLRequired
	}
	return &Deriver{
		site:    site,
		contact: contact,
		cfg:     cfg,
		baseURL: baseURL,
	}, nil
}

// BaseURL returns the canonical base URL the deriver prefixes paths with.
func (d *Deriver) BaseURL() string {
	return d.baseURL
}

// DeriveMetadata resolves the metadata for one page. Precedence per field:
// embedded SEOData, then the explicit input field, then the SiteConfig
// default.
func (d *Deriver) DeriveMetadata(input PageInput) Metadata {
	var seoTitle, seoDescription, seoImage string
	var seoKeywords []string
	if input.SEO != nil {
		seoTitle = input.SEO.Title
		seoDescription = input.SEO.Description
		seoImage = input.SEO.OGImage
		seoKeywords = input.SEO.Keywords
	}

	title := util.FirstNonEmpty(seoTitle, input.Title, d.site.Name)
	description := util.FirstNonEmpty(seoDescription, input.Description, d.site.Description)
	image := d.absoluteURL(util.FirstNonEmpty(seoImage, input.Image, d.defaultImage()))

	keywords := seoKeywords
	if len(keywords) == 0 {
		keywords = input.Keywords
	}
	keywords = slices.Clone(keywords)
	if keywords == nil {
		keywords = []string{}
	}

	canonical := d.absoluteURL(input.Path)

	return Metadata{
		Title:       title,
		Description: description,
		Keywords:    keywords,
		Author:      d.site.Name,
		Creator:     d.site.Name,
		Publisher:   d.site.Name,
		Canonical:   canonical,
		OpenGraph: OpenGraph{
			Type:        ogType,
			Locale:      ogLocale,
			URL:         canonical,
			Title:       title,
			Description: description,
			SiteName:    d.site.Name,
			Images: []OpenGraphImage{
				{URL: image, Width: ogImageWidth, Height: ogImageHigh, Alt: title},
			},
		},
		Twitter: Twitter{
			Card:        twitterCard,
			Title:       title,
			Description: description,
			Images:      []string{image},
		},
		Robots: Robots{
			Index:  true,
			Follow: true,
			GoogleBot: GoogleBot{
				Index:           true,
				Follow:          true,
				MaxVideoPreview: -1,
				MaxImagePreview: "large",
				MaxSnippet:      -1,
			},
		},
	}
}

func (d *Deriver) defaultImage() string {
	return util.FirstNonEmpty(d.cfg.DefaultImage, defaultImagePath)
}

// absoluteURL prefixes an in-site path with the base URL. Already-absolute
// URLs pass through untouched; an empty path yields the base URL itself.
func (d *Deriver) absoluteURL(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return d.baseURL
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if path == "/" {
		return d.baseURL
	}
	return d.baseURL + path
}
