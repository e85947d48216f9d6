package content

import (
	"encoding/json"
	"fmt"
	"io/fs"

	goerrors "github.com/goliatone/go-errors"

	"github.com/kerlingfarm/farmsite/internal/logging"
	"github.com/kerlingfarm/farmsite/internal/validation"
	"github.com/kerlingfarm/farmsite/pkg/interfaces"
)

// Collection file names expected inside the content directory.
const (
	SiteConfigFile     = "site-config.json"
	ContactInfoFile    = "contact.json"
	AccommodationsFile = "accommodations.json"
	ActivitiesFile     = "activities.json"
	PlantationFile     = "plantation.json"
	AboutFile          = "about.json"
	GalleryFile        = "gallery.json"
)

const storeLoadFailedCode = "CONTENT_LOAD_FAILED"

// Store holds every content collection, loaded once and never mutated.
// Concurrent readers need no locking because no writer runs after load.
type Store struct {
	site           SiteConfig
	contact        ContactInfo
	accommodations []Accommodation
	activities     []Activity
	plantation     []PlantationSection
	about          AboutContent
	gallery        []GalleryImage
}

// StoreOption configures store loading.
type StoreOption func(*storeOptions)

type storeOptions struct {
	logger interfaces.Logger
}

// WithStoreLogger attaches a logger to the load pass.
func WithStoreLogger(logger interfaces.Logger) StoreOption {
	return func(o *storeOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// LoadStore reads and validates every collection from fsys. Any structural
// or record-level violation aborts the load; the store is never partially
// constructed.
func LoadStore(fsys fs.FS, opts ...StoreOption) (*Store, error) {
	options := storeOptions{logger: logging.NoOp()}
	for _, opt := range opts {
		opt(&options)
	}
	logger := options.logger

	store := &Store{}
	var err error

	if store.site, err = loadDocument[SiteConfig](fsys, SiteConfigFile, SiteConfigSchema); err != nil {
		return nil, err
	}
	if err = store.site.Validate(); err != nil {
		return nil, wrapLoadError(err, SiteConfigFile)
	}

	if store.contact, err = loadDocument[ContactInfo](fsys, ContactInfoFile, ContactInfoSchema); err != nil {
		return nil, err
	}
	if err = store.contact.Validate(); err != nil {
		return nil, wrapLoadError(err, ContactInfoFile)
	}

	if store.accommodations, err = loadDocument[[]Accommodation](fsys, AccommodationsFile, AccommodationsSchema); err != nil {
		return nil, err
	}
	if err = validateAccommodations(store.accommodations); err != nil {
		return nil, wrapLoadError(err, AccommodationsFile)
	}

	if store.activities, err = loadDocument[[]Activity](fsys, ActivitiesFile, ActivitiesSchema); err != nil {
		return nil, err
	}
	if err = validateActivities(store.activities); err != nil {
		return nil, wrapLoadError(err, ActivitiesFile)
	}

	if store.plantation, err = loadDocument[[]PlantationSection](fsys, PlantationFile, PlantationSchema); err != nil {
		return nil, err
	}
	for i, section := range store.plantation {
		if err = section.Validate(); err != nil {
			return nil, wrapLoadError(fmt.Errorf("%w: record %d: %v", ErrCollectionInvalid, i, err), PlantationFile)
		}
	}

	if store.about, err = loadDocument[AboutContent](fsys, AboutFile, AboutSchema); err != nil {
		return nil, err
	}
	if err = store.about.Validate(); err != nil {
		return nil, wrapLoadError(err, AboutFile)
	}

	if store.gallery, err = loadDocument[[]GalleryImage](fsys, GalleryFile, GallerySchema); err != nil {
		return nil, err
	}
	for i, image := range store.gallery {
		if err = image.Validate(); err != nil {
			return nil, wrapLoadError(fmt.Errorf("%w: record %d: %v", ErrCollectionInvalid, i, err), GalleryFile)
		}
	}

	logger.Info("content store loaded",
		"accommodations", len(store.accommodations),
		"activities", len(store.activities),
		"plantation_sections", len(store.plantation),
		"gallery_images", len(store.gallery),
	)
	return store, nil
}

func loadDocument[T any](fsys fs.FS, name string, schema map[string]any) (T, error) {
	var out T

	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return out, fmt.Errorf("content: read %s: %w", name, err)
	}

	var document any
	if err := json.Unmarshal(raw, &document); err != nil {
		return out, wrapLoadError(fmt.Errorf("content: decode %s: %w", name, err), name)
	}
	if err := validation.ValidateDocument(schema, document); err != nil {
		return out, wrapLoadError(err, name)
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		return out, wrapLoadError(fmt.Errorf("content: decode %s: %w", name, err), name)
	}
	return out, nil
}

func validateAccommodations(records []Accommodation) error {
	slugs := make([]string, len(records))
	for i, record := range records {
		if err := record.Validate(); err != nil {
			return fmt.Errorf("%w: record %d (slug %q): %v", ErrCollectionInvalid, i, record.Slug, err)
		}
		slugs[i] = record.Slug
	}
	return uniqueSlugs(slugs)
}

func validateActivities(records []Activity) error {
	slugs := make([]string, len(records))
	for i, record := range records {
		if err := record.Validate(); err != nil {
			return fmt.Errorf("%w: record %d (slug %q): %v", ErrCollectionInvalid, i, record.Slug, err)
		}
		slugs[i] = record.Slug
	}
	return uniqueSlugs(slugs)
}

func wrapLoadError(err error, file string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, fmt.Sprintf("content store rejected %s", file)).
		WithTextCode(storeLoadFailedCode)
}
