package content

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-slug"
)

// Validate checks the singleton site configuration.
func (c SiteConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.Description, validation.Required),
		validation.Field(&c.URL, validation.Required),
		validation.Field(&c.Logo, validation.Required),
	)
}

// Validate checks the singleton contact record.
func (c ContactInfo) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Email, validation.Required),
		validation.Field(&c.Phone, validation.Required),
		validation.Field(&c.WhatsApp, validation.Required),
		validation.Field(&c.Address, validation.By(func(any) error { return c.Address.Validate() })),
	)
}

// Validate checks the postal address sub-record.
func (a Address) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Street, validation.Required),
		validation.Field(&a.City, validation.Required),
		validation.Field(&a.Country, validation.Required),
	)
}

// Validate checks a single accommodation record.
func (a Accommodation) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.ID, validation.Required),
		validation.Field(&a.Slug, validation.Required, validation.By(checkSlug)),
		validation.Field(&a.Name, validation.Required),
		validation.Field(&a.ShortDescription, validation.Required),
		validation.Field(&a.Capacity, validation.Required, validation.Min(1)),
		validation.Field(&a.PricePerNight, validation.Min(0.0)),
		validation.Field(&a.Images, validation.Required, validation.Length(1, 0)),
		validation.Field(&a.FeaturedImage, validation.Required),
	)
}

// Validate checks a single activity record.
func (a Activity) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.ID, validation.Required),
		validation.Field(&a.Slug, validation.Required, validation.By(checkSlug)),
		validation.Field(&a.Name, validation.Required),
		validation.Field(&a.ShortDescription, validation.Required),
		validation.Field(&a.Duration, validation.Required),
		validation.Field(&a.Difficulty, validation.Required, validation.By(checkDifficulty)),
		validation.Field(&a.Images, validation.Required, validation.Length(1, 0)),
		validation.Field(&a.FeaturedImage, validation.Required),
	)
}

// Validate checks a plantation section record.
func (s PlantationSection) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.ID, validation.Required),
		validation.Field(&s.Title, validation.Required),
		validation.Field(&s.Description, validation.Required),
	)
}

// Validate checks a gallery image record.
func (g GalleryImage) Validate() error {
	return validation.ValidateStruct(&g,
		validation.Field(&g.ID, validation.Required),
		validation.Field(&g.URL, validation.Required),
		validation.Field(&g.Alt, validation.Required),
		validation.Field(&g.Category, validation.Required, validation.By(checkCategory)),
	)
}

// Validate checks the singleton about record.
func (a AboutContent) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Hero, validation.By(func(any) error {
			return validation.ValidateStruct(&a.Hero,
				validation.Field(&a.Hero.Title, validation.Required),
				validation.Field(&a.Hero.Description, validation.Required),
			)
		})),
		validation.Field(&a.Story, validation.By(func(any) error {
			return validation.ValidateStruct(&a.Story,
				validation.Field(&a.Story.Title, validation.Required),
				validation.Field(&a.Story.Content, validation.Required, validation.Length(1, 0)),
			)
		})),
	)
}

// Validate checks a navigation entry. Hrefs must stay in-site.
func (n NavigationItem) Validate() error {
	if n.Label == "" {
		return fmt.Errorf("%w: label is required", ErrNavigationHref)
	}
	if !strings.HasPrefix(n.Href, "/") {
		return fmt.Errorf("%w: %q", ErrNavigationHref, n.Href)
	}
	for _, child := range n.Children {
		if err := child.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// checkSlug enforces the URL slug rules every sluggable record shares.
// Records author their slugs by hand, so a violation is a content defect
// rather than something to normalize away silently.
func checkSlug(value any) error {
	raw, _ := value.(string)
	if strings.TrimSpace(raw) == "" {
		return ErrSlugRequired
	}
	if !slug.IsValid(raw) {
		return ErrSlugInvalid
	}
	return nil
}

// NormalizeSlug derives a valid slug from free-form text, for callers that
// generate records programmatically instead of authoring JSON.
func NormalizeSlug(value string) (string, error) {
	return slug.Normalize(value)
}

func checkDifficulty(value any) error {
	difficulty, _ := value.(Difficulty)
	if !difficulty.Known() {
		return ErrDifficultyUnknown
	}
	return nil
}

func checkCategory(value any) error {
	category, _ := value.(GalleryCategory)
	if !category.Known() {
		return ErrCategoryUnknown
	}
	return nil
}

// uniqueSlugs verifies no two records in a collection share a slug.
func uniqueSlugs(slugs []string) error {
	seen := make(map[string]int, len(slugs))
	for i, s := range slugs {
		if first, ok := seen[s]; ok {
			return fmt.Errorf("%w: %q (records %d and %d)", ErrSlugDuplicate, s, first, i)
		}
		seen[s] = i
	}
	return nil
}
