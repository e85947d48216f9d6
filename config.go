package farmsite

import (
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/kerlingfarm/farmsite/internal/generator"
	"github.com/kerlingfarm/farmsite/seo"
)

// SEOConfig exports the metadata deriver configuration.
type SEOConfig = seo.Config

// ThemingConfig exports the generator theming configuration.
type ThemingConfig = generator.ThemingConfig

// LoggingConfig controls the optional structured logging provider wired by
// cmd/site. Library consumers usually inject their own provider instead.
type LoggingConfig struct {
	Level     string
	Format    string
	AddSource bool
}

// Config is the top-level module configuration.
type Config struct {
	BaseURL      string
	ContentDir   string
	TemplatesDir string
	OutputDir    string

	// PlantationMarkdownDir optionally points at a directory of markdown
	// files that replace the plantation sections from the JSON collection.
	PlantationMarkdownDir string

	CleanBuild      bool
	GenerateSitemap bool
	GenerateRobots  bool
	WriteManifest   bool

	SEO     SEOConfig
	Theming ThemingConfig
	Logging LoggingConfig
}

// DefaultConfig returns a configuration with the artifact toggles on and
// conventional directory names. BaseURL has no sensible default and must be
// provided.
func DefaultConfig() Config {
	return Config{
		ContentDir:      "data",
		TemplatesDir:    "templates",
		OutputDir:       "public",
		GenerateSitemap: true,
		GenerateRobots:  true,
		WriteManifest:   true,
	}
}

// Validate checks the configuration before the module wires anything.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.BaseURL, validation.Required, validation.By(checkBaseURL)),
		validation.Field(&c.ContentDir, validation.Required),
		validation.Field(&c.TemplatesDir, validation.Required),
		validation.Field(&c.OutputDir, validation.Required),
	)
}

func checkBaseURL(value any) error {
	raw, _ := value.(string)
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return validation.NewError("site.config.base_url", "must be an absolute http(s) URL")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return validation.NewError("site.config.base_url", "must use http or https")
	}
	return nil
}
