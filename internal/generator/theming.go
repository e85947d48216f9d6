package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gotheme "github.com/goliatone/go-theme"
)

// ThemingConfig controls the optional go-theme integration. When ThemesDir
// is empty the build runs unthemed and templates receive an empty
// ThemeContext.
type ThemingConfig struct {
	ThemesDir         string
	Theme             string
	Variant           string
	CSSVariablePrefix string
	PartialFallbacks  map[string]string
}

// ThemeContext surfaces the selected theme's tokens and assets to
// templates.
type ThemeContext struct {
	Name     string
	Variant  string
	Tokens   map[string]string
	CSSVars  map[string]string
	Partials map[string]string
	AssetURL func(string) string
	Template func(string, string) string
}

func emptyThemeContext() ThemeContext {
	return ThemeContext{
		Tokens:   map[string]string{},
		CSSVars:  map[string]string{},
		Partials: map[string]string{},
		AssetURL: func(string) string { return "" },
		Template: func(_ string, fallback string) string { return fallback },
	}
}

// loadThemeContext loads the theme manifest from disk and resolves the
// configured theme and variant.
func loadThemeContext(cfg ThemingConfig) (ThemeContext, error) {
	dir := strings.TrimSpace(cfg.ThemesDir)
	if dir == "" {
		return emptyThemeContext(), nil
	}

	manifest, err := gotheme.LoadDir(os.DirFS(filepath.Clean(dir)), ".")
	if err != nil {
		return emptyThemeContext(), fmt.Errorf("generator: load theme manifest from %s: %w", dir, err)
	}

	registry := gotheme.NewRegistry()
	if err := registry.Register(manifest); err != nil {
		return emptyThemeContext(), fmt.Errorf("generator: register theme manifest: %w", err)
	}

	name := strings.TrimSpace(cfg.Theme)
	if name == "" {
		name = manifest.Name
	}

	selector := gotheme.Selector{
		Registry:       registry,
		DefaultTheme:   name,
		DefaultVariant: strings.TrimSpace(cfg.Variant),
	}
	selection, err := selector.Select(name, strings.TrimSpace(cfg.Variant))
	if err != nil {
		return emptyThemeContext(), fmt.Errorf("generator: select theme %s: %w", name, err)
	}

	return ThemeContext{
		Name:     selection.Theme,
		Variant:  selection.Variant,
		Tokens:   selection.Tokens(),
		CSSVars:  selection.CSSVariables(cfg.CSSVariablePrefix),
		Partials: selection.Partials(cfg.PartialFallbacks),
		AssetURL: func(key string) string { url, _ := selection.Asset(key); return url },
		Template: selection.Template,
	}, nil
}
