// Package generator renders the content repository into a static site:
// one HTML document per page plus sitemap, robots, and a build manifest.
package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kerlingfarm/farmsite/content"
	"github.com/kerlingfarm/farmsite/internal/logging"
	"github.com/kerlingfarm/farmsite/internal/routes"
	"github.com/kerlingfarm/farmsite/pkg/interfaces"
	"github.com/kerlingfarm/farmsite/seo"
)

var (
	ErrRepositoryRequired = errors.New("generator: content repository is required")
	ErrDeriverRequired    = errors.New("generator: metadata deriver is required")
	ErrRoutesRequired     = errors.New("generator: route resolver is required")
	ErrRendererRequired   = errors.New("generator: template renderer is required")
	ErrOutputDirRequired  = errors.New("generator: output directory is required")
)

// Service describes the static site generator contract.
type Service interface {
	Build(ctx context.Context, opts BuildOptions) (*BuildResult, error)
	Sitemap(ctx context.Context) (string, error)
	Clean(ctx context.Context) error
}

// Config captures behaviour toggles for the generator.
type Config struct {
	OutputDir       string
	CleanBuild      bool
	GenerateSitemap bool
	GenerateRobots  bool
	WriteManifest   bool
	Theming         ThemingConfig
}

// Dependencies lists the collaborators required by the generator.
type Dependencies struct {
	Repo     *content.Repository
	Deriver  *seo.Deriver
	Routes   *routes.Resolver
	Renderer interfaces.TemplateRenderer
	Logger   interfaces.Logger
}

// BuildOptions narrows the scope of a generator run.
type BuildOptions struct {
	DryRun bool
}

// RenderedPage captures the rendered output for one page.
type RenderedPage struct {
	Route    string
	Path     string
	Template string
	Output   string
	HTML     string
	Checksum string
}

// BuildResult reports aggregated build metadata.
type BuildResult struct {
	PagesBuilt     int
	Pages          []RenderedPage
	SitemapWritten bool
	RobotsWritten  bool
	BuildID        string
	Duration       time.Duration
	DryRun         bool
}

// SiteMetadata is the site-wide block shared by every template.
type SiteMetadata struct {
	BaseURL    string
	Site       content.SiteConfig
	Contact    content.ContactInfo
	Navigation []content.NavigationItem
}

// BuildMetadata surfaces build information to templates.
type BuildMetadata struct {
	GeneratedAt time.Time
}

// TemplateContext is the data contract handed to the template renderer for
// each page.
type TemplateContext struct {
	Site  SiteMetadata
	Page  PageData
	Theme ThemeContext
	Build BuildMetadata
}

// NewService wires a generator with the provided configuration and
// dependencies. Dependency validation is deferred to Build so services can
// be constructed before every collaborator exists.
func NewService(cfg Config, deps Dependencies) Service {
	if deps.Logger == nil {
		deps.Logger = logging.NoOp()
	}
	return &service{
		cfg:  cfg,
		deps: deps,
		now:  time.Now,
	}
}

type service struct {
	cfg  Config
	deps Dependencies
	now  func() time.Time
}

func (s *service) checkDependencies() error {
	if s.deps.Repo == nil {
		return ErrRepositoryRequired
	}
	if s.deps.Deriver == nil {
		return ErrDeriverRequired
	}
	if s.deps.Routes == nil {
		return ErrRoutesRequired
	}
	if s.deps.Renderer == nil {
		return ErrRendererRequired
	}
	return nil
}

func (s *service) Build(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.checkDependencies(); err != nil {
		return nil, err
	}
	if !opts.DryRun && strings.TrimSpace(s.cfg.OutputDir) == "" {
		return nil, ErrOutputDirRequired
	}

	start := s.now()
	generatedAt := start.UTC()

	theme, err := loadThemeContext(s.cfg.Theming)
	if err != nil {
		return nil, err
	}

	plan, err := s.planPages()
	if err != nil {
		return nil, err
	}

	siteMeta := SiteMetadata{
		BaseURL:    s.deps.Routes.BaseURL(),
		Site:       s.deps.Repo.GetSiteConfig(),
		Contact:    s.deps.Repo.GetContactInfo(),
		Navigation: s.deps.Repo.GetNavigationItems(),
	}

	result := &BuildResult{
		Pages:  make([]RenderedPage, 0, len(plan)),
		DryRun: opts.DryRun,
	}

	for _, page := range plan {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		html, err := s.deps.Renderer.Render(page.Template, TemplateContext{
			Site:  siteMeta,
			Page:  page,
			Theme: theme,
			Build: BuildMetadata{GeneratedAt: generatedAt},
		})
		if err != nil {
			return result, fmt.Errorf("generator: render %s: %w", page.Path, err)
		}
		result.Pages = append(result.Pages, RenderedPage{
			Route:    page.Route,
			Path:     page.Path,
			Template: page.Template,
			HTML:     html,
			Checksum: computeHashFromString(html),
		})
	}
	result.PagesBuilt = len(result.Pages)

	if opts.DryRun {
		result.Duration = s.now().Sub(start)
		s.deps.Logger.Info("dry run complete", "pages", result.PagesBuilt)
		return result, nil
	}

	if s.cfg.CleanBuild {
		if err := s.Clean(ctx); err != nil {
			return result, err
		}
	}

	writer := newDiskWriter(s.cfg.OutputDir)
	manifestPages := make([]ManifestPage, 0, len(result.Pages))
	for i := range result.Pages {
		rel := outputPath(result.Pages[i].Path)
		full, err := writer.WriteFile(rel, []byte(result.Pages[i].HTML))
		if err != nil {
			return result, err
		}
		result.Pages[i].Output = full
		manifestPages = append(manifestPages, ManifestPage{
			Path:     result.Pages[i].Path,
			Output:   rel,
			Checksum: result.Pages[i].Checksum,
		})
		s.deps.Logger.Debug("page written", "path", result.Pages[i].Path, "output", rel)
	}

	if s.cfg.GenerateSitemap {
		sitemap := buildSitemap(siteMeta.BaseURL, pagePaths(result.Pages), generatedAt)
		if _, err := writer.WriteFile("sitemap.xml", []byte(sitemap)); err != nil {
			return result, err
		}
		result.SitemapWritten = true
	}

	if s.cfg.GenerateRobots {
		robots := buildRobots(siteMeta.BaseURL, s.cfg.GenerateSitemap)
		if _, err := writer.WriteFile("robots.txt", []byte(robots)); err != nil {
			return result, err
		}
		result.RobotsWritten = true
	}

	if s.cfg.WriteManifest {
		manifest := newBuildManifest(siteMeta.BaseURL, manifestPages, generatedAt)
		data, err := manifest.marshal()
		if err != nil {
			return result, err
		}
		if _, err := writer.WriteFile(manifestFileName, data); err != nil {
			return result, err
		}
		result.BuildID = manifest.BuildID
	}

	result.Duration = s.now().Sub(start)
	s.deps.Logger.Info("build complete",
		"pages", result.PagesBuilt,
		"sitemap", result.SitemapWritten,
		"robots", result.RobotsWritten,
		"duration", result.Duration.String(),
	)
	return result, nil
}

// Sitemap renders the sitemap for the current content without writing any
// files.
func (s *service) Sitemap(ctx context.Context) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := s.checkDependencies(); err != nil {
		return "", err
	}

	plan, err := s.planPages()
	if err != nil {
		return "", err
	}
	paths := make([]string, 0, len(plan))
	for _, page := range plan {
		paths = append(paths, page.Path)
	}
	return buildSitemap(s.deps.Routes.BaseURL(), paths, s.now().UTC()), nil
}

// Clean removes the output directory.
func (s *service) Clean(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(s.cfg.OutputDir) == "" {
		return ErrOutputDirRequired
	}
	if err := newDiskWriter(s.cfg.OutputDir).Remove(); err != nil {
		return err
	}
	s.deps.Logger.Info("output cleaned", "dir", s.cfg.OutputDir)
	return nil
}

func pagePaths(pages []RenderedPage) []string {
	paths := make([]string, 0, len(pages))
	for _, page := range pages {
		paths = append(paths, page.Path)
	}
	return paths
}
