package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions
// (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// SectionUUID keys a plantation section ingested from markdown by its
// source file name, so rebuilds keep stable ids.
func SectionUUID(sourceName string) uuid.UUID {
	return UUID("farmsite:plantation_section:" + strings.ToLower(strings.TrimSpace(sourceName)))
}

// BuildUUID keys a generated build by base URL and content digest.
func BuildUUID(baseURL, digest string) uuid.UUID {
	return UUID("farmsite:build:" + strings.TrimSpace(baseURL) + ":" + strings.TrimSpace(digest))
}
