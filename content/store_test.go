package content_test

import (
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/kerlingfarm/farmsite/content"
	"github.com/kerlingfarm/farmsite/pkg/testsupport"
)

func TestLoadStore(t *testing.T) {
	store, err := content.LoadStore(testsupport.ContentFS())
	if err != nil {
		t.Fatalf("load store: %v", err)
	}

	repo, err := content.NewRepository(store)
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}

	site := repo.GetSiteConfig()
	if site.Name != "Kerling Farm" {
		t.Fatalf("unexpected site name %q", site.Name)
	}
	if len(repo.GetAccommodations()) != 4 {
		t.Fatalf("expected 4 accommodations, got %d", len(repo.GetAccommodations()))
	}
}

func TestLoadStoreRejectsMissingFile(t *testing.T) {
	fsys := testsupport.ContentFS()
	delete(fsys, "gallery.json")

	if _, err := content.LoadStore(fsys); err == nil {
		t.Fatal("expected load failure for missing collection")
	}
}

func TestLoadStoreRejectsUnknownDifficulty(t *testing.T) {
	fsys := testsupport.ContentFS()
	raw := string(fsys["activities.json"].Data)
	fsys["activities.json"].Data = []byte(strings.Replace(raw, `"Challenging"`, `"Extreme"`, 1))

	_, err := content.LoadStore(fsys)
	if err == nil {
		t.Fatal("expected load failure for enum violation")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestLoadStoreRejectsUnknownGalleryCategory(t *testing.T) {
	fsys := testsupport.ContentFS()
	raw := string(fsys["gallery.json"].Data)
	fsys["gallery.json"].Data = []byte(strings.Replace(raw, `"general"`, `"kitchen"`, 1))

	if _, err := content.LoadStore(fsys); err == nil {
		t.Fatal("expected load failure for unknown gallery category")
	}
}

func TestLoadStoreRejectsDuplicateSlug(t *testing.T) {
	fsys := testsupport.ContentFS()
	raw := string(fsys["accommodations.json"].Data)
	fsys["accommodations.json"].Data = []byte(strings.Replace(raw, `"hillside-bungalow"`, `"the-red-barn-cottage"`, 1))

	_, err := content.LoadStore(fsys)
	if err == nil {
		t.Fatal("expected load failure for duplicate slug")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestLoadStoreRejectsMalformedRecord(t *testing.T) {
	fsys := testsupport.ContentFS()
	raw := string(fsys["accommodations.json"].Data)
	fsys["accommodations.json"].Data = []byte(strings.Replace(raw, `"capacity": 4`, `"capacity": "four"`, 1))

	if _, err := content.LoadStore(fsys); err == nil {
		t.Fatal("expected load failure for wrong field type")
	}
}
