package markdown

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/kerlingfarm/farmsite/content"
	"github.com/kerlingfarm/farmsite/internal/identity"
)

type sectionFrontMatter struct {
	ID           string `yaml:"id"`
	Title        string `yaml:"title"`
	Image        string `yaml:"image"`
	DisplayOrder int    `yaml:"displayOrder"`
}

// LoadSections ingests every .md file under dir in fsys as a plantation
// section. Frontmatter carries title, image, and displayOrder; the rendered
// body becomes the description. Files without an explicit id get a
// deterministic one derived from their file name, so rebuilds are stable.
func LoadSections(fsys fs.FS, dir string, renderer *Renderer) ([]content.PlantationSection, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("markdown: read section dir %q: %w", dir, err)
	}

	var sections []content.PlantationSection
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		section, err := loadSection(fsys, path.Join(dir, entry.Name()), renderer)
		if err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].DisplayOrder < sections[j].DisplayOrder
	})
	return sections, nil
}

func loadSection(fsys fs.FS, name string, renderer *Renderer) (content.PlantationSection, error) {
	source, err := fs.ReadFile(fsys, name)
	if err != nil {
		return content.PlantationSection{}, fmt.Errorf("markdown: read %q: %w", name, err)
	}

	var meta sectionFrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return content.PlantationSection{}, fmt.Errorf("markdown: parse frontmatter in %q: %w", name, err)
	}
	if strings.TrimSpace(meta.Title) == "" {
		return content.PlantationSection{}, fmt.Errorf("markdown: %q is missing a title", name)
	}

	rendered, err := renderer.Render(body)
	if err != nil {
		return content.PlantationSection{}, fmt.Errorf("markdown: render %q: %w", name, err)
	}

	id := strings.TrimSpace(meta.ID)
	if id == "" {
		id = identity.SectionUUID(path.Base(name)).String()
	}

	return content.PlantationSection{
		ID:           id,
		Title:        meta.Title,
		Description:  strings.TrimSpace(string(rendered)),
		Image:        meta.Image,
		DisplayOrder: meta.DisplayOrder,
	}, nil
}
