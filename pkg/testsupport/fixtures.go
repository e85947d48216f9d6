package testsupport

import (
	"os"
	"testing/fstest"
)

// LoadFixture reads a raw fixture file from disk.
func LoadFixture(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// ContentFS returns an in-memory content directory with the canonical sample
// collections. Tests across packages share it so repository, deriver, and
// generator behaviour is exercised against the same records.
func ContentFS() fstest.MapFS {
	return fstest.MapFS{
		"site-config.json":    {Data: []byte(siteConfigJSON)},
		"contact.json":        {Data: []byte(contactJSON)},
		"accommodations.json": {Data: []byte(accommodationsJSON)},
		"activities.json":     {Data: []byte(activitiesJSON)},
		"plantation.json":     {Data: []byte(plantationJSON)},
		"about.json":          {Data: []byte(aboutJSON)},
		"gallery.json":        {Data: []byte(galleryJSON)},
	}
}

const siteConfigJSON = `{
  "name": "Kerling Farm",
  "description": "A working coffee farm with cozy stays in the green hills.",
  "url": "https://kerlingfarm.com",
  "logo": "/images/logo.png",
  "tagline": "Slow mornings, honest coffee"
}`

const contactJSON = `{
  "email": "info@kerlingfarm.com",
  "phone": "+1-234-567-8900",
  "whatsapp": "12345678900",
  "address": {
    "street": "123 Farm Road",
    "city": "Greenville",
    "state": "VT",
    "zipCode": "05401",
    "country": "US"
  },
  "socialMedia": {
    "instagram": "https://instagram.com/kerlingfarm"
  },
  "mapEmbedUrl": "https://maps.example.com/embed/kerling"
}`

const accommodationsJSON = `[
  {
    "id": "acc-1",
    "slug": "the-red-barn-cottage",
    "name": "The Red Barn Cottage",
    "shortDescription": "A restored barn with valley views.",
    "fullDescription": "The Red Barn Cottage sleeps four beneath its original beams, with a wood stove and a porch facing the coffee terraces.",
    "capacity": 4,
    "pricePerNight": 145,
    "amenities": ["Wood stove", "Private porch", "Kitchenette"],
    "images": ["/images/rooms/red-barn-1.jpg", "/images/rooms/red-barn-2.jpg"],
    "featuredImage": "/images/rooms/red-barn-1.jpg",
    "featured": true,
    "displayOrder": 2,
    "seo": {
      "title": "The Red Barn Cottage | Kerling Farm",
      "description": "Stay in a restored barn overlooking the plantation.",
      "keywords": ["farm stay", "barn cottage"],
      "ogImage": "/images/rooms/red-barn-og.jpg"
    }
  },
  {
    "id": "acc-2",
    "slug": "hillside-bungalow",
    "name": "Hillside Bungalow",
    "shortDescription": "A quiet bungalow at the edge of the forest.",
    "fullDescription": "The Hillside Bungalow is our smallest stay, tucked against the shade trees where the morning fog lifts last.",
    "capacity": 2,
    "pricePerNight": 95,
    "amenities": ["Outdoor shower", "Hammock"],
    "images": ["/images/rooms/bungalow-1.jpg"],
    "featuredImage": "/images/rooms/bungalow-1.jpg",
    "featured": true,
    "displayOrder": 1,
    "seo": {
      "title": "Hillside Bungalow | Kerling Farm",
      "description": "A forest-edge bungalow for two."
    }
  },
  {
    "id": "acc-3",
    "slug": "farmhouse-loft",
    "name": "Farmhouse Loft",
    "shortDescription": "The loft above the main farmhouse kitchen.",
    "fullDescription": "The Farmhouse Loft shares a roof with the family kitchen, so breakfast smells arrive before your alarm does.",
    "capacity": 3,
    "pricePerNight": 110,
    "amenities": ["Shared kitchen", "Library corner"],
    "images": ["/images/rooms/loft-1.jpg"],
    "featuredImage": "/images/rooms/loft-1.jpg",
    "featured": true,
    "displayOrder": 2,
    "seo": {
      "title": "Farmhouse Loft | Kerling Farm",
      "description": "A loft stay above the farmhouse kitchen."
    }
  },
  {
    "id": "acc-4",
    "slug": "garden-room",
    "name": "Garden Room",
    "shortDescription": "A ground-floor room opening onto the herb garden.",
    "fullDescription": "The Garden Room keeps things simple: a wide bed, a reading chair, and a door straight into the herbs.",
    "capacity": 2,
    "pricePerNight": 85,
    "amenities": ["Garden access"],
    "images": ["/images/rooms/garden-1.jpg"],
    "featuredImage": "/images/rooms/garden-1.jpg",
    "featured": false,
    "displayOrder": 4,
    "seo": {
      "title": "Garden Room | Kerling Farm",
      "description": "A simple room beside the herb garden."
    }
  }
]`

const activitiesJSON = `[
  {
    "id": "act-1",
    "slug": "coffee-harvest-tour",
    "name": "Coffee Harvest Tour",
    "shortDescription": "Pick, pulp, and roast your own beans.",
    "fullDescription": "Walk the terraces with our growers, pick ripe cherries, and follow them through pulping, drying, and a small-batch roast.",
    "duration": "3 hours",
    "difficulty": "Easy",
    "images": ["/images/activities/harvest-1.jpg"],
    "featuredImage": "/images/activities/harvest-1.jpg",
    "featured": true,
    "displayOrder": 1,
    "seo": {
      "title": "Coffee Harvest Tour | Kerling Farm",
      "description": "Hands-on coffee harvesting and roasting."
    }
  },
  {
    "id": "act-2",
    "slug": "ridge-trail-hike",
    "name": "Ridge Trail Hike",
    "shortDescription": "A guided climb to the ridge lookout.",
    "fullDescription": "The ridge trail gains six hundred meters through cloud forest before opening onto the valley lookout.",
    "duration": "5 hours",
    "difficulty": "Challenging",
    "images": ["/images/activities/ridge-1.jpg"],
    "featuredImage": "/images/activities/ridge-1.jpg",
    "featured": true,
    "displayOrder": 2,
    "seo": {
      "title": "Ridge Trail Hike | Kerling Farm",
      "description": "Guided cloud-forest hike to the lookout."
    }
  },
  {
    "id": "act-3",
    "slug": "farm-kitchen-class",
    "name": "Farm Kitchen Class",
    "shortDescription": "Cook lunch from the morning's garden haul.",
    "fullDescription": "Gather vegetables with the kitchen crew, then cook a family-style lunch on the wood stove.",
    "duration": "2.5 hours",
    "difficulty": "Moderate",
    "images": ["/images/activities/kitchen-1.jpg"],
    "featuredImage": "/images/activities/kitchen-1.jpg",
    "featured": false,
    "displayOrder": 3,
    "seo": {
      "title": "Farm Kitchen Class | Kerling Farm",
      "description": "Garden-to-table cooking class."
    }
  }
]`

const plantationJSON = `[
  {
    "id": "pl-2",
    "title": "Shade-Grown Terraces",
    "description": "Our arabica grows under native shade trees planted by the first generation.",
    "image": "/images/plantation/terraces.jpg",
    "displayOrder": 2
  },
  {
    "id": "pl-1",
    "title": "A Century of Coffee",
    "description": "The plantation has been in the family since 1923.",
    "image": "/images/plantation/history.jpg",
    "displayOrder": 1
  },
  {
    "id": "pl-3",
    "title": "The Drying Patio",
    "description": "Beans dry on the patio for two weeks, raked by hand every morning.",
    "image": "/images/plantation/patio.jpg",
    "displayOrder": 3
  }
]`

const aboutJSON = `{
  "hero": {
    "title": "About Kerling Farm",
    "subtitle": "Four generations on the same hillside",
    "description": "We grow coffee the slow way and host guests the old way.",
    "image": "/images/about/hero.jpg"
  },
  "story": {
    "title": "Our Story",
    "content": [
      "The first Kerlings cleared this hillside in 1923 with two mules and a borrowed plough.",
      "Today the fourth generation runs the farm, the roastery, and the guest houses."
    ],
    "image": "/images/about/story.jpg"
  },
  "values": {
    "title": "What We Stand For",
    "items": [
      {
        "icon": "leaf",
        "title": "Grown With Care",
        "description": "Shade-grown, hand-picked, sun-dried."
      },
      {
        "icon": "heart",
        "title": "Family Hosted",
        "description": "Every guest eats at the family table at least once."
      },
      {
        "icon": "windmill",
        "title": "Off The Grid",
        "description": "Solar power and spring water across the farm."
      }
    ]
  },
  "seo": {
    "title": "About | Kerling Farm",
    "description": "The people and the hillside behind Kerling Farm."
  }
}`

const galleryJSON = `[
  {
    "id": "img-1",
    "url": "/images/gallery/barn-dawn.jpg",
    "alt": "The red barn at dawn",
    "category": "accommodation"
  },
  {
    "id": "img-2",
    "url": "/images/gallery/terraces-fog.jpg",
    "alt": "Fog over the coffee terraces",
    "caption": "The terraces in the June fog",
    "category": "plantation"
  },
  {
    "id": "img-3",
    "url": "/images/gallery/harvest-baskets.jpg",
    "alt": "Baskets of ripe coffee cherries",
    "category": "activities"
  },
  {
    "id": "img-4",
    "url": "/images/gallery/farm-dog.jpg",
    "alt": "The farm dog asleep on the patio",
    "category": "general"
  },
  {
    "id": "img-5",
    "url": "/images/gallery/bungalow-porch.jpg",
    "alt": "The bungalow porch at dusk",
    "category": "accommodation"
  }
]`
