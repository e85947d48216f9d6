package staticcmd_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	staticcmd "github.com/kerlingfarm/farmsite/internal/commands/static"
	"github.com/kerlingfarm/farmsite/internal/generator"
)

type fakeService struct {
	buildCalls   int
	cleanCalls   int
	sitemapCalls int
	lastOptions  generator.BuildOptions
	buildErr     error
	sitemap      string
}

func (f *fakeService) Build(ctx context.Context, opts generator.BuildOptions) (*generator.BuildResult, error) {
	f.buildCalls++
	f.lastOptions = opts
	if f.buildErr != nil {
		return nil, f.buildErr
	}
	return &generator.BuildResult{PagesBuilt: 14, DryRun: opts.DryRun}, nil
}

func (f *fakeService) Sitemap(ctx context.Context) (string, error) {
	f.sitemapCalls++
	return f.sitemap, nil
}

func (f *fakeService) Clean(ctx context.Context) error {
	f.cleanCalls++
	return nil
}

func TestBuildSiteHandler(t *testing.T) {
	svc := &fakeService{}
	var envelope staticcmd.ResultEnvelope
	handler := staticcmd.NewBuildSiteHandler(svc, nil)

	err := handler.Execute(context.Background(), staticcmd.BuildSiteCommand{
		DryRun:         true,
		ResultCallback: func(e staticcmd.ResultEnvelope) { envelope = e },
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if svc.buildCalls != 1 || !svc.lastOptions.DryRun {
		t.Fatalf("unexpected service interaction: %+v", svc)
	}
	if envelope.Result == nil || envelope.Result.PagesBuilt != 14 {
		t.Fatalf("unexpected envelope: %+v", envelope)
	}
}

func TestBuildSiteHandlerWrapsFailure(t *testing.T) {
	svc := &fakeService{buildErr: errors.New("boom")}
	handler := staticcmd.NewBuildSiteHandler(svc, nil)

	err := handler.Execute(context.Background(), staticcmd.BuildSiteCommand{})
	if err == nil {
		t.Fatal("expected execution failure")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestBuildSiteHandlerRequiresService(t *testing.T) {
	handler := staticcmd.NewBuildSiteHandler(nil, nil)
	if err := handler.Execute(context.Background(), staticcmd.BuildSiteCommand{}); err == nil {
		t.Fatal("expected error without a service")
	}
}

func TestSitemapSiteHandlerWritesFile(t *testing.T) {
	svc := &fakeService{sitemap: "<urlset></urlset>"}
	target := filepath.Join(t.TempDir(), "sitemap.xml")
	handler := staticcmd.NewSitemapSiteHandler(svc, nil)

	var envelope staticcmd.ResultEnvelope
	err := handler.Execute(context.Background(), staticcmd.SitemapSiteCommand{
		OutputPath:     target,
		ResultCallback: func(e staticcmd.ResultEnvelope) { envelope = e },
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if envelope.Sitemap != "<urlset></urlset>" {
		t.Fatalf("unexpected envelope sitemap %q", envelope.Sitemap)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sitemap: %v", err)
	}
	if string(data) != "<urlset></urlset>" {
		t.Fatalf("unexpected file contents %q", data)
	}
}

func TestSitemapSiteCommandValidation(t *testing.T) {
	handler := staticcmd.NewSitemapSiteHandler(&fakeService{}, nil)

	err := handler.Execute(context.Background(), staticcmd.SitemapSiteCommand{OutputPath: "../outside.xml"})
	if err == nil {
		t.Fatal("expected validation failure for traversal path")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestCleanSiteHandler(t *testing.T) {
	svc := &fakeService{}
	handler := staticcmd.NewCleanSiteHandler(svc, nil)

	if err := handler.Execute(context.Background(), staticcmd.CleanSiteCommand{}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if svc.cleanCalls != 1 {
		t.Fatalf("expected one clean call, got %d", svc.cleanCalls)
	}
}
