package projection

import (
	"fmt"

	"github.com/goliatone/go-sitegraph/graph"
)

// ProjectSection builds the view for one section. lib may be nil only at
// FidelityBasic, which yields the zero-lookup form used when the section is
// embedded as a reference from elsewhere. With a library, ancestors,
// translations, subsections and includers are resolved at both fidelities;
// child pages are embedded (at basic fidelity) only at FidelityFull.
// Subsections and includers are always path strings, never nested views, so
// cyclic includer relationships cannot expand.
func ProjectSection(section *graph.Section, lib *graph.Library, fid Fidelity) (*SectionView, error) {
	if section == nil {
		return nil, ErrSectionRequired
	}
	if fid == FidelityFull && lib == nil {
		return nil, ErrLibraryRequired
	}

	view := &SectionView{
		RelativePath: section.File.Relative,
		Content:      section.Content,
		Permalink:    section.Permalink,
		Draft:        section.Meta.Draft,
		Ancestors:    []string{},
		Title:        section.Meta.Title,
		Description:  section.Meta.Description,
		Extra:        section.Meta.Extra,
		Path:         section.Path,
		Components:   section.Components,
		TOC:          section.TOC,
		WordCount:    section.WordCount,
		ReadingTime:  section.ReadingTime,
		Lang:         section.Lang,
		Assets:       section.Assets,
		Pages:        []*PageView{},
		Subsections:  []string{},
		Translations: []TranslationRef{},
		Includers:    []string{},
	}

	if lib == nil {
		return view, nil
	}

	ancestors, err := ancestorPaths(lib, section.Ancestors)
	if err != nil {
		return nil, fmt.Errorf("projection: section %s: %w", section.ID, err)
	}
	view.Ancestors = ancestors

	translations, err := ResolveTranslations(lib, section.File.Canonical, graph.ScopeSections, section.ID)
	if err != nil {
		return nil, err
	}
	view.Translations = translations

	view.Subsections = make([]string, 0, len(section.Subsections))
	for _, key := range section.Subsections {
		path, err := lib.SectionPath(key)
		if err != nil {
			return nil, fmt.Errorf("projection: section %s: resolve subsection: %w", section.ID, err)
		}
		view.Subsections = append(view.Subsections, path)
	}

	view.Includers = make([]string, 0, len(section.Includers))
	for _, key := range section.Includers {
		path, err := lib.SectionPath(key)
		if err != nil {
			return nil, fmt.Errorf("projection: section %s: resolve includer: %w", section.ID, err)
		}
		view.Includers = append(view.Includers, path)
	}

	if fid == FidelityFull {
		view.Pages = make([]*PageView, 0, len(section.Pages))
		for _, key := range section.Pages {
			page, err := lib.Page(key)
			if err != nil {
				return nil, fmt.Errorf("projection: section %s: resolve page: %w", section.ID, err)
			}
			nested, err := ProjectPage(page, lib, FidelityBasic)
			if err != nil {
				return nil, err
			}
			view.Pages = append(view.Pages, nested)
		}
	}

	return view, nil
}
