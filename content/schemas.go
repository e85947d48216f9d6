package content

// JSON Schemas applied to each collection file before decoding. They reject
// structural problems (wrong types, enum values outside the closed sets)
// at load time so malformed content never reaches rendered pages.

var seoSchema = map[string]any{
	"type":     "object",
	"required": []string{"title", "description"},
	"properties": map[string]any{
		"title":       map[string]any{"type": "string"},
		"description": map[string]any{"type": "string"},
		"keywords": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"ogImage": map[string]any{"type": "string"},
	},
}

// SiteConfigSchema validates site-config.json.
var SiteConfigSchema = map[string]any{
	"type":     "object",
	"required": []string{"name", "description", "url", "logo"},
	"properties": map[string]any{
		"name":        map[string]any{"type": "string", "minLength": 1},
		"description": map[string]any{"type": "string", "minLength": 1},
		"url":         map[string]any{"type": "string", "minLength": 1},
		"logo":        map[string]any{"type": "string", "minLength": 1},
		"tagline":     map[string]any{"type": "string"},
	},
}

// ContactInfoSchema validates contact.json.
var ContactInfoSchema = map[string]any{
	"type":     "object",
	"required": []string{"email", "phone", "whatsapp", "address"},
	"properties": map[string]any{
		"email":    map[string]any{"type": "string", "minLength": 1},
		"phone":    map[string]any{"type": "string", "minLength": 1},
		"whatsapp": map[string]any{"type": "string", "minLength": 1},
		"address": map[string]any{
			"type":     "object",
			"required": []string{"street", "city", "country"},
			"properties": map[string]any{
				"street":  map[string]any{"type": "string"},
				"city":    map[string]any{"type": "string"},
				"state":   map[string]any{"type": "string"},
				"zipCode": map[string]any{"type": "string"},
				"country": map[string]any{"type": "string"},
			},
		},
		"socialMedia": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"facebook":  map[string]any{"type": "string"},
				"instagram": map[string]any{"type": "string"},
				"twitter":   map[string]any{"type": "string"},
			},
		},
		"mapEmbedUrl": map[string]any{"type": "string"},
	},
}

// AccommodationsSchema validates accommodations.json.
var AccommodationsSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"required": []string{
			"id", "slug", "name", "shortDescription", "fullDescription",
			"capacity", "pricePerNight", "amenities", "images",
			"featuredImage", "featured", "displayOrder", "seo",
		},
		"properties": map[string]any{
			"id":               map[string]any{"type": "string", "minLength": 1},
			"slug":             map[string]any{"type": "string", "minLength": 1},
			"name":             map[string]any{"type": "string", "minLength": 1},
			"shortDescription": map[string]any{"type": "string"},
			"fullDescription":  map[string]any{"type": "string"},
			"capacity":         map[string]any{"type": "integer", "minimum": 1},
			"pricePerNight":    map[string]any{"type": "number", "minimum": 0},
			"amenities": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"images": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items":    map[string]any{"type": "string"},
			},
			"featuredImage": map[string]any{"type": "string"},
			"featured":      map[string]any{"type": "boolean"},
			"displayOrder":  map[string]any{"type": "integer"},
			"seo":           seoSchema,
		},
	},
}

// ActivitiesSchema validates activities.json.
var ActivitiesSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"required": []string{
			"id", "slug", "name", "shortDescription", "fullDescription",
			"duration", "difficulty", "images", "featuredImage",
			"featured", "displayOrder", "seo",
		},
		"properties": map[string]any{
			"id":               map[string]any{"type": "string", "minLength": 1},
			"slug":             map[string]any{"type": "string", "minLength": 1},
			"name":             map[string]any{"type": "string", "minLength": 1},
			"shortDescription": map[string]any{"type": "string"},
			"fullDescription":  map[string]any{"type": "string"},
			"duration":         map[string]any{"type": "string"},
			"difficulty": map[string]any{
				"enum": []any{"Easy", "Moderate", "Challenging"},
			},
			"images": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items":    map[string]any{"type": "string"},
			},
			"featuredImage": map[string]any{"type": "string"},
			"featured":      map[string]any{"type": "boolean"},
			"displayOrder":  map[string]any{"type": "integer"},
			"seo":           seoSchema,
		},
	},
}

// PlantationSchema validates plantation.json.
var PlantationSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type":     "object",
		"required": []string{"id", "title", "description", "displayOrder"},
		"properties": map[string]any{
			"id":           map[string]any{"type": "string", "minLength": 1},
			"title":        map[string]any{"type": "string", "minLength": 1},
			"description":  map[string]any{"type": "string"},
			"image":        map[string]any{"type": "string"},
			"displayOrder": map[string]any{"type": "integer"},
		},
	},
}

// GallerySchema validates gallery.json.
var GallerySchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type":     "object",
		"required": []string{"id", "url", "alt", "category"},
		"properties": map[string]any{
			"id":      map[string]any{"type": "string", "minLength": 1},
			"url":     map[string]any{"type": "string", "minLength": 1},
			"alt":     map[string]any{"type": "string"},
			"caption": map[string]any{"type": "string"},
			"category": map[string]any{
				"enum": []any{"accommodation", "plantation", "activities", "general"},
			},
		},
	},
}

// AboutSchema validates about.json.
var AboutSchema = map[string]any{
	"type":     "object",
	"required": []string{"hero", "story", "values", "seo"},
	"properties": map[string]any{
		"hero": map[string]any{
			"type":     "object",
			"required": []string{"title", "description"},
			"properties": map[string]any{
				"title":       map[string]any{"type": "string"},
				"subtitle":    map[string]any{"type": "string"},
				"description": map[string]any{"type": "string"},
				"image":       map[string]any{"type": "string"},
			},
		},
		"story": map[string]any{
			"type":     "object",
			"required": []string{"title", "content"},
			"properties": map[string]any{
				"title": map[string]any{"type": "string"},
				"content": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items":    map[string]any{"type": "string"},
				},
				"image": map[string]any{"type": "string"},
			},
		},
		"values": map[string]any{
			"type":     "object",
			"required": []string{"title", "items"},
			"properties": map[string]any{
				"title": map[string]any{"type": "string"},
				"items": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type":     "object",
						"required": []string{"icon", "title", "description"},
						"properties": map[string]any{
							"icon":        map[string]any{"type": "string"},
							"title":       map[string]any{"type": "string"},
							"description": map[string]any{"type": "string"},
						},
					},
				},
			},
		},
		"seo": seoSchema,
	},
}
