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

// PageUUID derives the stable key for a page from its language and canonical
// source path. Loaders and fixtures can reconstruct the same key without
// coordination.
func PageUUID(lang, canonical string) uuid.UUID {
	return UUID("sitegraph:page:" + strings.TrimSpace(lang) + ":" + strings.TrimSpace(canonical))
}

// SectionUUID derives the stable key for a section from its language and
// canonical source path.
func SectionUUID(lang, canonical string) uuid.UUID {
	return UUID("sitegraph:section:" + strings.TrimSpace(lang) + ":" + strings.TrimSpace(canonical))
}
