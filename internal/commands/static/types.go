// Package staticcmd exposes the static site build operations as
// go-command messages so CLIs and schedulers share one execution path.
package staticcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/kerlingfarm/farmsite/internal/generator"
)

const (
	buildSiteMessageType   = "site.static.build"
	sitemapSiteMessageType = "site.static.sitemap"
	cleanSiteMessageType   = "site.static.clean"
)

// ResultCallback receives build results produced by generator operations.
// The callback is optional and invoked synchronously from the handler.
type ResultCallback func(ResultEnvelope)

// ResultEnvelope captures the outcome of a static command execution.
type ResultEnvelope struct {
	Result   *generator.BuildResult
	Sitemap  string
	Metadata map[string]any
}

// BuildSiteCommand executes a full generator build.
type BuildSiteCommand struct {
	DryRun         bool           `json:"dry_run,omitempty"`
	ResultCallback ResultCallback `json:"-"`
}

// Type implements command.Message.
func (BuildSiteCommand) Type() string { return buildSiteMessageType }

// SitemapSiteCommand renders the sitemap without writing page artifacts.
// When OutputPath is set the XML is also written to that file.
type SitemapSiteCommand struct {
	OutputPath     string         `json:"output_path,omitempty"`
	ResultCallback ResultCallback `json:"-"`
}

// Type implements command.Message.
func (SitemapSiteCommand) Type() string { return sitemapSiteMessageType }

// Validate rejects output paths that are whitespace-only or escape upward.
func (m SitemapSiteCommand) Validate() error {
	errs := validation.Errors{}
	if m.OutputPath != "" && strings.TrimSpace(m.OutputPath) == "" {
		errs["output_path"] = validation.NewError("site.static.sitemap.output_invalid", "output_path must not be blank")
	}
	if strings.Contains(m.OutputPath, "..") {
		errs["output_path"] = validation.NewError("site.static.sitemap.output_invalid", "output_path must not traverse upward")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CleanSiteCommand removes the generated output directory.
type CleanSiteCommand struct{}

// Type implements command.Message.
func (CleanSiteCommand) Type() string { return cleanSiteMessageType }
