package staticcmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/kerlingfarm/farmsite/internal/commands"
	"github.com/kerlingfarm/farmsite/internal/generator"
	"github.com/kerlingfarm/farmsite/internal/logging"
	"github.com/kerlingfarm/farmsite/pkg/interfaces"
)

var ErrServiceRequired = errors.New("staticcmd: generator service is required")

// BuildSiteHandler orchestrates generator builds through the shared
// command handler foundation.
type BuildSiteHandler struct {
	inner *commands.Handler[BuildSiteCommand]
}

// NewBuildSiteHandler constructs a handler wired to the provided generator
// service.
func NewBuildSiteHandler(service generator.Service, logger interfaces.Logger, opts ...commands.HandlerOption[BuildSiteCommand]) *BuildSiteHandler {
	if logger == nil {
		logger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg BuildSiteCommand) error {
		if service == nil {
			return ErrServiceRequired
		}
		result, err := service.Build(ctx, generator.BuildOptions{DryRun: msg.DryRun})
		invokeCallback(msg.ResultCallback, ResultEnvelope{
			Result:   result,
			Metadata: map[string]any{"operation": "build", "dry_run": msg.DryRun},
		})
		return err
	}

	handlerOpts := append([]commands.HandlerOption[BuildSiteCommand]{
		commands.WithLogger[BuildSiteCommand](logger),
		commands.WithOperation[BuildSiteCommand]("static.build"),
	}, opts...)

	return &BuildSiteHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[BuildSiteCommand].
func (h *BuildSiteHandler) Execute(ctx context.Context, msg BuildSiteCommand) error {
	return h.inner.Execute(ctx, msg)
}

// SitemapSiteHandler renders the sitemap on demand.
type SitemapSiteHandler struct {
	inner *commands.Handler[SitemapSiteCommand]
}

// NewSitemapSiteHandler constructs a handler that renders the sitemap and
// optionally writes it to disk.
func NewSitemapSiteHandler(service generator.Service, logger interfaces.Logger, opts ...commands.HandlerOption[SitemapSiteCommand]) *SitemapSiteHandler {
	if logger == nil {
		logger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg SitemapSiteCommand) error {
		if service == nil {
			return ErrServiceRequired
		}
		sitemap, err := service.Sitemap(ctx)
		if err != nil {
			return err
		}
		if target := strings.TrimSpace(msg.OutputPath); target != "" {
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(target, []byte(sitemap), 0o644); err != nil {
				return err
			}
		}
		invokeCallback(msg.ResultCallback, ResultEnvelope{
			Sitemap:  sitemap,
			Metadata: map[string]any{"operation": "sitemap"},
		})
		return nil
	}

	handlerOpts := append([]commands.HandlerOption[SitemapSiteCommand]{
		commands.WithLogger[SitemapSiteCommand](logger),
		commands.WithOperation[SitemapSiteCommand]("static.sitemap"),
	}, opts...)

	return &SitemapSiteHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[SitemapSiteCommand].
func (h *SitemapSiteHandler) Execute(ctx context.Context, msg SitemapSiteCommand) error {
	return h.inner.Execute(ctx, msg)
}

// CleanSiteHandler removes generated output.
type CleanSiteHandler struct {
	inner *commands.Handler[CleanSiteCommand]
}

// NewCleanSiteHandler constructs a handler that clears the output
// directory.
func NewCleanSiteHandler(service generator.Service, logger interfaces.Logger, opts ...commands.HandlerOption[CleanSiteCommand]) *CleanSiteHandler {
	if logger == nil {
		logger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg CleanSiteCommand) error {
		if service == nil {
			return ErrServiceRequired
		}
		return service.Clean(ctx)
	}

	handlerOpts := append([]commands.HandlerOption[CleanSiteCommand]{
		commands.WithLogger[CleanSiteCommand](logger),
		commands.WithOperation[CleanSiteCommand]("static.clean"),
	}, opts...)

	return &CleanSiteHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[CleanSiteCommand].
func (h *CleanSiteHandler) Execute(ctx context.Context, msg CleanSiteCommand) error {
	return h.inner.Execute(ctx, msg)
}

func invokeCallback(callback ResultCallback, envelope ResultEnvelope) {
	if callback == nil {
		return
	}
	callback(envelope)
}
