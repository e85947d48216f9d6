package generator

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

type sitemapEntry struct {
	Location   string
	LastMod    time.Time
	Priority   string
	ChangeFreq string
}

// sitemapPolicy maps an in-site path to its crawl priority and change
// frequency. Deeper, slower-moving pages rank below the home and listing
// pages.
func sitemapPolicy(path string) (priority string, changefreq string) {
	switch {
	case path == "/":
		return "1.0", "weekly"
	case path == "/about":
		return "0.9", "monthly"
	case path == "/accommodation":
		return "0.9", "weekly"
	case path == "/activities":
		return "0.9", "weekly"
	case path == "/plantation":
		return "0.8", "monthly"
	case path == "/contact":
		return "0.8", "monthly"
	case strings.HasPrefix(path, "/accommodation/"):
		return "0.8", "monthly"
	case strings.HasPrefix(path, "/activities/"):
		return "0.7", "monthly"
	case path == "/gallery":
		return "0.7", "weekly"
	}
	return "0.5", "monthly"
}

func buildSitemap(baseURL string, paths []string, generatedAt time.Time) string {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")

	entries := make([]sitemapEntry, 0, len(paths))
	seen := map[string]struct{}{}
	for _, path := range paths {
		path = strings.TrimSpace(path)
		if path == "" {
			path = "/"
		}
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		location := base + path
		if path == "/" {
			location = base + "/"
		}
		if _, ok := seen[location]; ok {
			continue
		}
		seen[location] = struct{}{}

		priority, changefreq := sitemapPolicy(path)
		entries = append(entries, sitemapEntry{
			Location:   location,
			LastMod:    generatedAt,
			Priority:   priority,
			ChangeFreq: changefreq,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Location < entries[j].Location
	})

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	for _, entry := range entries {
		builder.WriteString("  <url>\n")
		builder.WriteString(fmt.Sprintf("    <loc>%s</loc>\n", entry.Location))
		if !entry.LastMod.IsZero() {
			builder.WriteString(fmt.Sprintf("    <lastmod>%s</lastmod>\n", entry.LastMod.UTC().Format(time.RFC3339)))
		}
		builder.WriteString(fmt.Sprintf("    <changefreq>%s</changefreq>\n", entry.ChangeFreq))
		builder.WriteString(fmt.Sprintf("    <priority>%s</priority>\n", entry.Priority))
		builder.WriteString("  </url>\n")
	}
	builder.WriteString(`</urlset>` + "\n")
	return builder.String()
}

func buildRobots(baseURL string, includeSitemap bool) string {
	var builder strings.Builder
	builder.WriteString("User-agent: *\n")
	builder.WriteString("Allow: /\n")
	if includeSitemap {
		base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
		builder.WriteString("\n")
		builder.WriteString(fmt.Sprintf("Sitemap: %s/sitemap.xml\n", base))
	}
	return builder.String()
}
