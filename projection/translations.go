package projection

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/goliatone/go-sitegraph/graph"
)

// ResolveTranslations produces the translation references for the entity
// identified by self, whose canonical source path is canonical. The entity
// itself is never part of its own translation list; an absent translation
// group yields an empty slice. Member order follows the group's stored order
// and the result is duplicate-free because group membership is.
func ResolveTranslations(lib *graph.Library, canonical string, scope graph.Scope, self uuid.UUID) ([]TranslationRef, error) {
	if lib == nil {
		return nil, ErrLibraryRequired
	}

	members := lib.TranslationGroup(canonical, scope)
	refs := make([]TranslationRef, 0, len(members))
	for _, key := range members {
		if key == self {
			continue
		}
		ref, err := translationRef(lib, key, scope)
		if err != nil {
			return nil, fmt.Errorf("projection: resolve translation %s in %s: %w", key, scope, err)
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func translationRef(lib *graph.Library, key uuid.UUID, scope graph.Scope) (TranslationRef, error) {
	if scope == graph.ScopeSections {
		section, err := lib.Section(key)
		if err != nil {
			return TranslationRef{}, err
		}
		return TranslationRef{
			Lang:      section.Lang,
			Permalink: section.Permalink,
			Title:     section.Meta.Title,
			Path:      section.File.Path,
		}, nil
	}

	page, err := lib.Page(key)
	if err != nil {
		return TranslationRef{}, err
	}
	return TranslationRef{
		Lang:      page.Lang,
		Permalink: page.Permalink,
		Title:     page.Meta.Title,
		Path:      page.File.Path,
	}, nil
}
