// Command site builds and previews the farm stay website.
//
// Subcommands:
//
//	build    render every page plus sitemap, robots, and manifest
//	sitemap  print the sitemap for the current content
//	clean    remove the output directory
//	serve    preview the generated output over HTTP
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	farmsite "github.com/kerlingfarm/farmsite"
	staticcmd "github.com/kerlingfarm/farmsite/internal/commands/static"
	"github.com/kerlingfarm/farmsite/internal/logging"
	"github.com/kerlingfarm/farmsite/internal/logging/gologger"
)

func main() {
	// Missing .env files are fine; flags and real env still apply.
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "build":
		err = runBuild(args)
	case "sitemap":
		err = runSitemap(args)
	case "clean":
		err = runClean(args)
	case "serve":
		err = runServe(args)
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", command)
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("site %s: %v", command, err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: site <build|sitemap|clean|serve> [flags]")
}

// commonFlags registers the flags shared by every subcommand, seeded from
// the environment so .env files work without repeating flags.
func commonFlags(fs *flag.FlagSet) *farmsite.Config {
	cfg := farmsite.DefaultConfig()

	fs.StringVar(&cfg.BaseURL, "base-url", envOr("SITE_BASE_URL", ""), "canonical site URL, e.g. https://kerlingfarm.example")
	fs.StringVar(&cfg.ContentDir, "content", envOr("SITE_CONTENT_DIR", cfg.ContentDir), "directory holding the content JSON collections")
	fs.StringVar(&cfg.TemplatesDir, "templates", envOr("SITE_TEMPLATES_DIR", cfg.TemplatesDir), "directory holding the html templates")
	fs.StringVar(&cfg.OutputDir, "output", envOr("SITE_OUTPUT_DIR", cfg.OutputDir), "directory for generated output")
	fs.StringVar(&cfg.PlantationMarkdownDir, "plantation", envOr("SITE_PLANTATION_DIR", ""), "optional directory of markdown plantation sections")
	fs.StringVar(&cfg.Theming.ThemesDir, "theme-dir", envOr("SITE_THEME_DIR", ""), "optional go-theme manifest directory")
	fs.StringVar(&cfg.Theming.Theme, "theme", envOr("SITE_THEME", ""), "theme name to select")
	fs.StringVar(&cfg.Theming.Variant, "theme-variant", envOr("SITE_THEME_VARIANT", "light"), "theme variant to select")
	fs.StringVar(&cfg.SEO.DefaultImage, "og-image", envOr("SITE_OG_IMAGE", ""), "default social preview image path")
	fs.StringVar(&cfg.Logging.Level, "log-level", envOr("SITE_LOG_LEVEL", "info"), "log level (trace|debug|info|warn|error)")
	fs.StringVar(&cfg.Logging.Format, "log-format", envOr("SITE_LOG_FORMAT", "console"), "log format (json|console|pretty)")
	fs.BoolVar(&cfg.CleanBuild, "clean", envBool("SITE_CLEAN_BUILD"), "remove the output directory before building")

	return &cfg
}

func newModule(cfg *farmsite.Config) (*farmsite.Module, *gologger.Provider, error) {
	provider, err := gologger.NewProvider(gologger.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.AddSource,
	})
	if err != nil {
		return nil, nil, err
	}

	module, err := farmsite.New(*cfg, farmsite.WithLoggerProvider(provider))
	if err != nil {
		return nil, nil, err
	}
	return module, provider, nil
}

func runBuild(args []string) error {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	cfg := commonFlags(fs)
	dryRun := fs.Bool("dry-run", false, "render pages without writing files")
	if err := fs.Parse(args); err != nil {
		return err
	}

	module, provider, err := newModule(cfg)
	if err != nil {
		return err
	}

	handler := staticcmd.NewBuildSiteHandler(module.Generator(), logging.CommandsLogger(provider))
	return handler.Execute(context.Background(), staticcmd.BuildSiteCommand{
		DryRun: *dryRun,
		ResultCallback: func(envelope staticcmd.ResultEnvelope) {
			if envelope.Result == nil {
				return
			}
			fmt.Printf("built %d pages in %s\n", envelope.Result.PagesBuilt, envelope.Result.Duration)
		},
	})
}

func runSitemap(args []string) error {
	fs := flag.NewFlagSet("sitemap", flag.ExitOnError)
	cfg := commonFlags(fs)
	output := fs.String("o", "", "write the sitemap to a file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	module, provider, err := newModule(cfg)
	if err != nil {
		return err
	}

	handler := staticcmd.NewSitemapSiteHandler(module.Generator(), logging.CommandsLogger(provider))
	return handler.Execute(context.Background(), staticcmd.SitemapSiteCommand{
		OutputPath: *output,
		ResultCallback: func(envelope staticcmd.ResultEnvelope) {
			if *output == "" {
				fmt.Print(envelope.Sitemap)
			}
		},
	})
}

func runClean(args []string) error {
	fs := flag.NewFlagSet("clean", flag.ExitOnError)
	cfg := commonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	module, provider, err := newModule(cfg)
	if err != nil {
		return err
	}

	handler := staticcmd.NewCleanSiteHandler(module.Generator(), logging.CommandsLogger(provider))
	return handler.Execute(context.Background(), staticcmd.CleanSiteCommand{})
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	cfg := commonFlags(fs)
	addr := fs.String("addr", envOr("SITE_ADDR", ":8080"), "listen address for the preview server")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := os.Stat(cfg.OutputDir); err != nil {
		return fmt.Errorf("output directory %q not found, run `site build` first: %w", cfg.OutputDir, err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Static("/", cfg.OutputDir)

	return e.Start(*addr)
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envBool(key string) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && value
}
