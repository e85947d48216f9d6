package generator

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/kerlingfarm/farmsite/internal/identity"
)

const manifestFileName = "build-manifest.json"

// BuildManifest records what a build produced. The build id is derived from
// the base URL and the content digest, so identical inputs produce the same
// id across runs.
type BuildManifest struct {
	BuildID     string         `json:"buildId"`
	GeneratedAt time.Time      `json:"generatedAt"`
	BaseURL     string         `json:"baseUrl"`
	Pages       []ManifestPage `json:"pages"`
}

// ManifestPage is one rendered page entry in the manifest.
type ManifestPage struct {
	Path     string `json:"path"`
	Output   string `json:"output"`
	Checksum string `json:"checksum"`
}

func newBuildManifest(baseURL string, pages []ManifestPage, generatedAt time.Time) *BuildManifest {
	sorted := append([]ManifestPage(nil), pages...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Path < sorted[j].Path
	})

	var digest strings.Builder
	for _, page := range sorted {
		digest.WriteString(page.Path)
		digest.WriteString(":")
		digest.WriteString(page.Checksum)
		digest.WriteString("\n")
	}

	return &BuildManifest{
		BuildID:     identity.BuildUUID(baseURL, computeHashFromString(digest.String())).String(),
		GeneratedAt: generatedAt,
		BaseURL:     baseURL,
		Pages:       sorted,
	}
}

func (m *BuildManifest) marshal() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("generator: marshal manifest: %w", err)
	}
	return append(data, '\n'), nil
}

func computeHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func computeHashFromString(content string) string {
	return computeHash([]byte(content))
}
