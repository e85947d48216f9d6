package generator_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kerlingfarm/farmsite/content"
	"github.com/kerlingfarm/farmsite/internal/generator"
	"github.com/kerlingfarm/farmsite/internal/routes"
	"github.com/kerlingfarm/farmsite/pkg/testsupport"
	"github.com/kerlingfarm/farmsite/seo"
)

const testBaseURL = "https://kerlingfarm.example"

type fakeRenderer struct{}

func (fakeRenderer) Render(name string, data any, out ...io.Writer) (string, error) {
	ctx, ok := data.(generator.TemplateContext)
	if !ok {
		return "", io.ErrUnexpectedEOF
	}
	return "<!doctype html><title>" + ctx.Page.Metadata.Title + "</title><!-- " + name + " -->", nil
}

func newTestService(t *testing.T, cfg generator.Config) generator.Service {
	t.Helper()

	store, err := content.LoadStore(testsupport.ContentFS())
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	repo, err := content.NewRepository(store)
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}
	deriver, err := seo.NewDeriver(repo.GetSiteConfig(), repo.GetContactInfo(), seo.Config{BaseURL: testBaseURL})
	if err != nil {
		t.Fatalf("new deriver: %v", err)
	}
	resolver, err := routes.NewResolver(testBaseURL)
	if err != nil {
		t.Fatalf("new resolver: %v", err)
	}

	return generator.NewService(cfg, generator.Dependencies{
		Repo:     repo,
		Deriver:  deriver,
		Routes:   resolver,
		Renderer: fakeRenderer{},
	})
}

func TestBuildWritesEveryPage(t *testing.T) {
	outputDir := t.TempDir()
	svc := newTestService(t, generator.Config{
		OutputDir:       outputDir,
		GenerateSitemap: true,
		GenerateRobots:  true,
		WriteManifest:   true,
	})

	result, err := svc.Build(context.Background(), generator.BuildOptions{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	// 7 static pages plus 4 accommodation and 3 activity details.
	if result.PagesBuilt != 14 {
		t.Fatalf("expected 14 pages, got %d", result.PagesBuilt)
	}

	expected := []string{
		"index.html",
		"about/index.html",
		"accommodation/index.html",
		"accommodation/the-red-barn-cottage/index.html",
		"accommodation/garden-room/index.html",
		"plantation/index.html",
		"activities/index.html",
		"activities/coffee-harvest-tour/index.html",
		"gallery/index.html",
		"contact/index.html",
		"sitemap.xml",
		"robots.txt",
		"build-manifest.json",
	}
	for _, rel := range expected {
		if _, err := os.Stat(filepath.Join(outputDir, rel)); err != nil {
			t.Fatalf("expected output %s: %v", rel, err)
		}
	}

	if result.BuildID == "" {
		t.Fatal("expected a build id from the manifest")
	}
	if !result.SitemapWritten || !result.RobotsWritten {
		t.Fatalf("expected sitemap and robots: %+v", result)
	}
}

func TestBuildDryRunWritesNothing(t *testing.T) {
	outputDir := t.TempDir()
	svc := newTestService(t, generator.Config{OutputDir: outputDir, GenerateSitemap: true})

	result, err := svc.Build(context.Background(), generator.BuildOptions{DryRun: true})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if result.PagesBuilt != 14 {
		t.Fatalf("expected 14 pages, got %d", result.PagesBuilt)
	}

	entries, err := os.ReadDir(outputDir)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("dry run must not write files, found %d entries", len(entries))
	}
}

func TestBuildRequiresDependencies(t *testing.T) {
	svc := generator.NewService(generator.Config{OutputDir: t.TempDir()}, generator.Dependencies{})
	if _, err := svc.Build(context.Background(), generator.BuildOptions{}); err != generator.ErrRepositoryRequired {
		t.Fatalf("expected ErrRepositoryRequired, got %v", err)
	}
}

func TestBuildRequiresOutputDir(t *testing.T) {
	svc := newTestService(t, generator.Config{})
	if _, err := svc.Build(context.Background(), generator.BuildOptions{}); err != generator.ErrOutputDirRequired {
		t.Fatalf("expected ErrOutputDirRequired, got %v", err)
	}
}

func TestSitemapPolicy(t *testing.T) {
	svc := newTestService(t, generator.Config{})

	sitemap, err := svc.Sitemap(context.Background())
	if err != nil {
		t.Fatalf("sitemap: %v", err)
	}

	checks := []string{
		"<loc>" + testBaseURL + "/</loc>",
		"<loc>" + testBaseURL + "/accommodation/the-red-barn-cottage</loc>",
		"<priority>1.0</priority>",
		"<priority>0.9</priority>",
		"<priority>0.8</priority>",
		"<priority>0.7</priority>",
		"<changefreq>weekly</changefreq>",
		"<changefreq>monthly</changefreq>",
	}
	for _, fragment := range checks {
		if !strings.Contains(sitemap, fragment) {
			t.Fatalf("sitemap missing %q:\n%s", fragment, sitemap)
		}
	}

	// Detail pages change at most monthly; only the home and listing pages
	// are marked weekly.
	for _, path := range []string{"/accommodation/the-red-barn-cottage", "/activities/coffee-harvest-tour"} {
		if freq := entryChangeFreq(t, sitemap, testBaseURL+path); freq != "monthly" {
			t.Fatalf("expected monthly changefreq for %s, got %q", path, freq)
		}
	}
	if freq := entryChangeFreq(t, sitemap, testBaseURL+"/accommodation"); freq != "weekly" {
		t.Fatalf("expected weekly changefreq for listing page, got %q", freq)
	}
}

// entryChangeFreq extracts the changefreq of the sitemap entry for location.
func entryChangeFreq(t *testing.T, sitemap, location string) string {
	t.Helper()
	start := strings.Index(sitemap, "<loc>"+location+"</loc>")
	if start < 0 {
		t.Fatalf("sitemap has no entry for %s:\n%s", location, sitemap)
	}
	entry := sitemap[start:]
	if end := strings.Index(entry, "</url>"); end >= 0 {
		entry = entry[:end]
	}
	from := strings.Index(entry, "<changefreq>")
	to := strings.Index(entry, "</changefreq>")
	if from < 0 || to < 0 {
		t.Fatalf("entry for %s has no changefreq:\n%s", location, entry)
	}
	return entry[from+len("<changefreq>") : to]
}

func TestRobotsReferencesSitemap(t *testing.T) {
	outputDir := t.TempDir()
	svc := newTestService(t, generator.Config{
		OutputDir:       outputDir,
		GenerateSitemap: true,
		GenerateRobots:  true,
	})
	if _, err := svc.Build(context.Background(), generator.BuildOptions{}); err != nil {
		t.Fatalf("build: %v", err)
	}

	robots, err := os.ReadFile(filepath.Join(outputDir, "robots.txt"))
	if err != nil {
		t.Fatalf("read robots: %v", err)
	}
	if !strings.Contains(string(robots), "Sitemap: "+testBaseURL+"/sitemap.xml") {
		t.Fatalf("robots missing sitemap reference:\n%s", robots)
	}
	if !strings.Contains(string(robots), "Allow: /") {
		t.Fatalf("robots missing allow directive:\n%s", robots)
	}
}

func TestBuildIDIsStableAcrossRuns(t *testing.T) {
	first := mustBuild(t, newTestService(t, generator.Config{OutputDir: t.TempDir(), WriteManifest: true}))
	second := mustBuild(t, newTestService(t, generator.Config{OutputDir: t.TempDir(), WriteManifest: true}))
	if first.BuildID != second.BuildID {
		t.Fatalf("build id not stable: %q vs %q", first.BuildID, second.BuildID)
	}
}

func mustBuild(t *testing.T, svc generator.Service) *generator.BuildResult {
	t.Helper()
	result, err := svc.Build(context.Background(), generator.BuildOptions{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return result
}

func TestCleanRemovesOutput(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "public")
	svc := newTestService(t, generator.Config{OutputDir: outputDir})
	if _, err := svc.Build(context.Background(), generator.BuildOptions{}); err != nil {
		t.Fatalf("build: %v", err)
	}
	if err := svc.Clean(context.Background()); err != nil {
		t.Fatalf("clean: %v", err)
	}
	if _, err := os.Stat(outputDir); !os.IsNotExist(err) {
		t.Fatalf("expected output dir removed, got %v", err)
	}
}

func TestBuildHonorsCancelledContext(t *testing.T) {
	svc := newTestService(t, generator.Config{OutputDir: t.TempDir()})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := svc.Build(ctx, generator.BuildOptions{}); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
