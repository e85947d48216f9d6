package content

import "errors"

var (
	ErrStoreRequired     = errors.New("content: store is required")
	ErrSlugRequired      = errors.New("content: slug is required")
	ErrSlugInvalid       = errors.New("content: slug contains invalid characters")
	ErrSlugDuplicate     = errors.New("content: slug already exists in collection")
	ErrDifficultyUnknown = errors.New("content: difficulty outside the allowed set")
	ErrCategoryUnknown   = errors.New("content: gallery category outside the allowed set")
	ErrCollectionInvalid = errors.New("content: collection failed validation")
	ErrNavigationHref    = errors.New("content: navigation href must be an in-site path")
)
