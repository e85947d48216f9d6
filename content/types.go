package content

// Difficulty grades an activity. The set is closed; values outside it are
// rejected when the store loads.
type Difficulty string

const (
	DifficultyEasy        Difficulty = "Easy"
	DifficultyModerate    Difficulty = "Moderate"
	DifficultyChallenging Difficulty = "Challenging"
)

// Known reports whether the difficulty belongs to the closed set.
func (d Difficulty) Known() bool {
	switch d {
	case DifficultyEasy, DifficultyModerate, DifficultyChallenging:
		return true
	}
	return false
}

// GalleryCategory buckets gallery images for the filterable gallery page.
type GalleryCategory string

const (
	CategoryAccommodation GalleryCategory = "accommodation"
	CategoryPlantation    GalleryCategory = "plantation"
	CategoryActivities    GalleryCategory = "activities"
	CategoryGeneral       GalleryCategory = "general"
)

// Known reports whether the category belongs to the closed set.
func (c GalleryCategory) Known() bool {
	switch c {
	case CategoryAccommodation, CategoryPlantation, CategoryActivities, CategoryGeneral:
		return true
	}
	return false
}

// GalleryCategories lists every valid category in display order.
func GalleryCategories() []GalleryCategory {
	return []GalleryCategory{
		CategoryAccommodation,
		CategoryPlantation,
		CategoryActivities,
		CategoryGeneral,
	}
}

// SiteConfig is the singleton identity record for the site.
type SiteConfig struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Logo        string `json:"logo"`
	Tagline     string `json:"tagline"`
}

// Address is the postal address published on the contact page and in
// structured data.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// SocialMedia holds optional outbound profile links.
type SocialMedia struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
}

// ContactInfo is the singleton contact record.
type ContactInfo struct {
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	WhatsApp    string      `json:"whatsapp"`
	Address     Address     `json:"address"`
	SocialMedia SocialMedia `json:"socialMedia"`
	MapEmbedURL string      `json:"mapEmbedUrl,omitempty"`
}

// SEOData is the per-record metadata override embedded in content entries.
type SEOData struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords,omitempty"`
	OGImage     string   `json:"ogImage,omitempty"`
}

// Accommodation describes a bookable room or cottage.
type Accommodation struct {
	ID               string   `json:"id"`
	Slug             string   `json:"slug"`
	Name             string   `json:"name"`
	ShortDescription string   `json:"shortDescription"`
	FullDescription  string   `json:"fullDescription"`
	Capacity         int      `json:"capacity"`
	PricePerNight    float64  `json:"pricePerNight"`
	Amenities        []string `json:"amenities"`
	Images           []string `json:"images"`
	FeaturedImage    string   `json:"featuredImage"`
	Featured         bool     `json:"featured"`
	DisplayOrder     int      `json:"displayOrder"`
	SEO              SEOData  `json:"seo"`
}

// Activity describes a guided experience offered to guests.
type Activity struct {
	ID               string     `json:"id"`
	Slug             string     `json:"slug"`
	Name             string     `json:"name"`
	ShortDescription string     `json:"shortDescription"`
	FullDescription  string     `json:"fullDescription"`
	Duration         string     `json:"duration"`
	Difficulty       Difficulty `json:"difficulty"`
	Images           []string   `json:"images"`
	FeaturedImage    string     `json:"featuredImage"`
	Featured         bool       `json:"featured"`
	DisplayOrder     int        `json:"displayOrder"`
	SEO              SEOData    `json:"seo"`
}

// PlantationSection is one block of the plantation story page.
type PlantationSection struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	DisplayOrder int    `json:"displayOrder"`
}

// GalleryImage is a single photo in the filterable gallery.
type GalleryImage struct {
	ID       string          `json:"id"`
	URL      string          `json:"url"`
	Alt      string          `json:"alt"`
	Caption  string          `json:"caption,omitempty"`
	Category GalleryCategory `json:"category"`
}

// AboutHero is the opening block of the about page.
type AboutHero struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// AboutStory holds the farm history narrative as ordered paragraphs.
type AboutStory struct {
	Title   string   `json:"title"`
	Content []string `json:"content"`
	Image   string   `json:"image"`
}

// ValueItem is a single entry in the values block. Icon is a registry key;
// unknown keys are omitted by the presentation layer rather than failing.
type ValueItem struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AboutValues groups the value propositions shown on the about page.
type AboutValues struct {
	Title string      `json:"title"`
	Items []ValueItem `json:"items"`
}

// AboutContent is the singleton about-page record.
type AboutContent struct {
	Hero   AboutHero   `json:"hero"`
	Story  AboutStory  `json:"story"`
	Values AboutValues `json:"values"`
	SEO    SEOData     `json:"seo"`
}

// NavigationItem is one entry of the site navigation.
type NavigationItem struct {
	Label    string           `json:"label"`
	Href     string           `json:"href"`
	Children []NavigationItem `json:"children,omitempty"`
}
