package projection

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/goliatone/go-sitegraph/graph"
)

// Fidelity selects how far a projection follows references. Encoding the two
// tiers as a parameter of one code path keeps the termination guarantee in a
// single place: navigation pointers are only followed at FidelityFull, and
// the nested views are always built at FidelityBasic.
type Fidelity int

const (
	// FidelityBasic omits navigation resolution; it is the form nested
	// inside other views.
	FidelityBasic Fidelity = iota
	// FidelityFull additionally resolves the eight navigation pointers,
	// each exactly one level deep.
	FidelityFull
)

// String implements fmt.Stringer.
func (f Fidelity) String() string {
	switch f {
	case FidelityBasic:
		return "basic"
	case FidelityFull:
		return "full"
	default:
		return "unknown"
	}
}

// ProjectPage builds the view for one page. lib may be nil only at
// FidelityBasic, in which case ancestors and translations stay empty and no
// index lookup is performed. Any failed key dereference aborts the whole
// projection; no partial view is returned.
func ProjectPage(page *graph.Page, lib *graph.Library, fid Fidelity) (*PageView, error) {
	if page == nil {
		return nil, ErrPageRequired
	}
	if fid == FidelityFull && lib == nil {
		return nil, ErrLibraryRequired
	}

	view := &PageView{
		RelativePath: page.File.Relative,
		Content:      page.Content,
		Permalink:    page.Permalink,
		Slug:         page.Slug,
		Ancestors:    []string{},
		Title:        page.Meta.Title,
		Description:  page.Meta.Description,
		Updated:      page.Meta.Updated,
		Date:         page.Meta.Date,
		Taxonomies:   page.Meta.Taxonomies,
		Extra:        page.Meta.Extra,
		Path:         page.Path,
		Components:   page.Components,
		Summary:      page.Summary,
		TOC:          page.TOC,
		WordCount:    page.WordCount,
		ReadingTime:  page.ReadingTime,
		Assets:       page.Assets,
		Draft:        page.Meta.Draft,
		Lang:         page.Lang,
		Translations: []TranslationRef{},
	}

	if d := page.Meta.DateTuple; d != nil {
		view.Year = &d.Year
		view.Month = &d.Month
		view.Day = &d.Day
	}

	if lib != nil {
		ancestors, err := ancestorPaths(lib, page.Ancestors)
		if err != nil {
			return nil, fmt.Errorf("projection: page %s: %w", page.ID, err)
		}
		view.Ancestors = ancestors

		translations, err := ResolveTranslations(lib, page.File.Canonical, graph.ScopePages, page.ID)
		if err != nil {
			return nil, err
		}
		view.Translations = translations
	}

	if fid == FidelityFull {
		slots := []struct {
			name string
			key  *uuid.UUID
			dst  **PageView
		}{
			{"lighter", page.Lighter, &view.Lighter},
			{"heavier", page.Heavier, &view.Heavier},
			{"earlier_updated", page.EarlierUpdated, &view.EarlierUpdated},
			{"later_updated", page.LaterUpdated, &view.LaterUpdated},
			{"earlier", page.Earlier, &view.Earlier},
			{"later", page.Later, &view.Later},
			{"title_prev", page.TitlePrev, &view.TitlePrev},
			{"title_next", page.TitleNext, &view.TitleNext},
		}
		for _, slot := range slots {
			if slot.key == nil {
				continue
			}
			target, err := lib.Page(*slot.key)
			if err != nil {
				return nil, fmt.Errorf("projection: page %s: resolve %s: %w", page.ID, slot.name, err)
			}
			nested, err := ProjectPage(target, lib, FidelityBasic)
			if err != nil {
				return nil, err
			}
			*slot.dst = nested
		}
	}

	return view, nil
}

// ancestorPaths maps section keys to their relative paths, preserving the
// stored order.
func ancestorPaths(lib *graph.Library, keys []uuid.UUID) ([]string, error) {
	paths := make([]string, 0, len(keys))
	for _, key := range keys {
		section, err := lib.Section(key)
		if err != nil {
			return nil, fmt.Errorf("resolve ancestor: %w", err)
		}
		paths = append(paths, section.File.Relative)
	}
	return paths, nil
}
