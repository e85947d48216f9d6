// Package farmsite assembles the content repository, metadata deriver,
// route resolver, and static site generator behind a single facade.
package farmsite

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/kerlingfarm/farmsite/content"
	"github.com/kerlingfarm/farmsite/internal/generator"
	"github.com/kerlingfarm/farmsite/internal/logging"
	"github.com/kerlingfarm/farmsite/internal/markdown"
	"github.com/kerlingfarm/farmsite/internal/routes"
	"github.com/kerlingfarm/farmsite/pkg/interfaces"
	"github.com/kerlingfarm/farmsite/seo"
)

// GeneratorService exports the static site generator contract.
type GeneratorService = generator.Service

// BuildOptions exports the generator build options.
type BuildOptions = generator.BuildOptions

// BuildResult exports the generator build result.
type BuildResult = generator.BuildResult

// Metadata exports the derived page metadata payload.
type Metadata = seo.Metadata

// Option overrides a module collaborator during construction.
type Option func(*moduleOptions)

type moduleOptions struct {
	provider     interfaces.LoggerProvider
	contentFS    fs.FS
	templatesFS  fs.FS
	plantationFS fs.FS
	renderer     interfaces.TemplateRenderer
	icons        *content.IconRegistry
	navigation   []content.NavigationItem
}

// WithLoggerProvider wires structured logging into every module component.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(o *moduleOptions) {
		o.provider = provider
	}
}

// WithContentFS overrides ContentDir with an in-memory or embedded
// filesystem.
func WithContentFS(fsys fs.FS) Option {
	return func(o *moduleOptions) {
		o.contentFS = fsys
	}
}

// WithTemplatesFS overrides TemplatesDir with an in-memory or embedded
// filesystem.
func WithTemplatesFS(fsys fs.FS) Option {
	return func(o *moduleOptions) {
		o.templatesFS = fsys
	}
}

// WithPlantationFS overrides PlantationMarkdownDir with an in-memory or
// embedded filesystem of markdown sections.
func WithPlantationFS(fsys fs.FS) Option {
	return func(o *moduleOptions) {
		o.plantationFS = fsys
	}
}

// WithRenderer replaces the html/template renderer entirely.
func WithRenderer(renderer interfaces.TemplateRenderer) Option {
	return func(o *moduleOptions) {
		o.renderer = renderer
	}
}

// WithIconRegistry replaces the default icon registry.
func WithIconRegistry(icons *content.IconRegistry) Option {
	return func(o *moduleOptions) {
		o.icons = icons
	}
}

// WithNavigation overrides the default site navigation.
func WithNavigation(items []content.NavigationItem) Option {
	return func(o *moduleOptions) {
		o.navigation = items
	}
}

// Module is the top-level runtime facade.
type Module struct {
	cfg       Config
	repo      *content.Repository
	deriver   *seo.Deriver
	resolver  *routes.Resolver
	icons     *content.IconRegistry
	generator generator.Service
}

// New loads content, derives the site-wide collaborators, and wires the
// generator. Construction fails fast on invalid configuration or content.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("farmsite: invalid config: %w", err)
	}

	o := moduleOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	contentFS := o.contentFS
	if contentFS == nil {
		contentFS = os.DirFS(cfg.ContentDir)
	}

	store, err := content.LoadStore(contentFS, content.WithStoreLogger(logging.ContentLogger(o.provider)))
	if err != nil {
		return nil, err
	}

	repoOpts := []content.RepositoryOption{}
	if o.navigation != nil {
		repoOpts = append(repoOpts, content.WithNavigation(o.navigation))
	}

	plantationFS := o.plantationFS
	if plantationFS == nil && cfg.PlantationMarkdownDir != "" {
		plantationFS = os.DirFS(cfg.PlantationMarkdownDir)
	}
	if plantationFS != nil {
		sections, err := markdown.LoadSections(plantationFS, ".", markdown.NewRenderer())
		if err != nil {
			return nil, err
		}
		repoOpts = append(repoOpts, content.WithPlantationSections(sections))
	}

	repo, err := content.NewRepository(store, repoOpts...)
	if err != nil {
		return nil, err
	}

	seoCfg := cfg.SEO
	if seoCfg.BaseURL == "" {
		seoCfg.BaseURL = cfg.BaseURL
	}
	deriver, err := seo.NewDeriver(repo.GetSiteConfig(), repo.GetContactInfo(), seoCfg)
	if err != nil {
		return nil, err
	}

	resolver, err := routes.NewResolver(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	icons := o.icons
	if icons == nil {
		icons = content.DefaultIconRegistry()
	}

	renderer := o.renderer
	if renderer == nil {
		templatesFS := o.templatesFS
		if templatesFS == nil {
			templatesFS = os.DirFS(cfg.TemplatesDir)
		}
		renderer, err = generator.NewHTMLRenderer(templatesFS, icons)
		if err != nil {
			return nil, err
		}
	}

	svc := generator.NewService(generator.Config{
		OutputDir:       cfg.OutputDir,
		CleanBuild:      cfg.CleanBuild,
		GenerateSitemap: cfg.GenerateSitemap,
		GenerateRobots:  cfg.GenerateRobots,
		WriteManifest:   cfg.WriteManifest,
		Theming:         cfg.Theming,
	}, generator.Dependencies{
		Repo:     repo,
		Deriver:  deriver,
		Routes:   resolver,
		Renderer: renderer,
		Logger:   logging.GeneratorLogger(o.provider),
	})

	return &Module{
		cfg:       cfg,
		repo:      repo,
		deriver:   deriver,
		resolver:  resolver,
		icons:     icons,
		generator: svc,
	}, nil
}

// Repository exposes the read-only content repository.
func (m *Module) Repository() *content.Repository {
	return m.repo
}

// Deriver exposes the metadata deriver.
func (m *Module) Deriver() *seo.Deriver {
	return m.deriver
}

// Routes exposes the route resolver.
func (m *Module) Routes() *routes.Resolver {
	return m.resolver
}

// Icons exposes the icon registry backing template rendering.
func (m *Module) Icons() *content.IconRegistry {
	return m.icons
}

// Generator exposes the static site generator.
func (m *Module) Generator() generator.Service {
	return m.generator
}
