package projection

import (
	"errors"
	"testing"

	"github.com/goliatone/go-sitegraph/graph"
	"github.com/goliatone/go-sitegraph/pkg/testsupport"
)

func TestResolveTranslationsRequiresLibrary(t *testing.T) {
	page := testsupport.NewPage("en", "post").Build()
	if _, err := ResolveTranslations(nil, page.File.Canonical, graph.ScopePages, page.ID); !errors.Is(err, ErrLibraryRequired) {
		t.Fatalf("expected ErrLibraryRequired, got %v", err)
	}
}

func TestResolveTranslationsExcludesSelf(t *testing.T) {
	lib := graph.NewLibrary()
	langs := []string{"en", "fr", "de", "it"}
	pages := make([]*graph.Page, 0, len(langs))
	for _, lang := range langs {
		page := testsupport.NewPage(lang, "post").Title(lang + " title").Build()
		if err := lib.AddPage(page); err != nil {
			t.Fatalf("AddPage(%s): %v", lang, err)
		}
		pages = append(pages, page)
	}

	for _, page := range pages {
		refs, err := ResolveTranslations(lib, page.File.Canonical, graph.ScopePages, page.ID)
		if err != nil {
			t.Fatalf("ResolveTranslations(%s): %v", page.Lang, err)
		}
		if len(refs) != len(langs)-1 {
			t.Fatalf("expected %d refs for %s, got %d", len(langs)-1, page.Lang, len(refs))
		}
		seen := map[string]bool{}
		for _, ref := range refs {
			if ref.Path == page.File.Path {
				t.Fatalf("%s appears in its own translation list", page.Lang)
			}
			if seen[ref.Path] {
				t.Fatalf("duplicate translation reference %q", ref.Path)
			}
			seen[ref.Path] = true
		}
	}
}

func TestResolveTranslationsPreservesGroupOrder(t *testing.T) {
	lib := graph.NewLibrary()
	langs := []string{"en", "fr", "de"}
	pages := make([]*graph.Page, 0, len(langs))
	for _, lang := range langs {
		page := testsupport.NewPage(lang, "post").Build()
		if err := lib.AddPage(page); err != nil {
			t.Fatalf("AddPage(%s): %v", lang, err)
		}
		pages = append(pages, page)
	}

	refs, err := ResolveTranslations(lib, "post", graph.ScopePages, pages[1].ID)
	if err != nil {
		t.Fatalf("ResolveTranslations: %v", err)
	}
	if len(refs) != 2 || refs[0].Lang != "en" || refs[1].Lang != "de" {
		t.Fatalf("expected registration order en, de; got %+v", refs)
	}
}

func TestResolveTranslationsAbsentGroupIsEmpty(t *testing.T) {
	lib := graph.NewLibrary()
	page := testsupport.NewPage("en", "lonely").Build()
	if err := lib.AddPage(page); err != nil {
		t.Fatalf("AddPage: %v", err)
	}

	refs, err := ResolveTranslations(lib, "never/registered", graph.ScopePages, page.ID)
	if err != nil {
		t.Fatalf("ResolveTranslations: %v", err)
	}
	if len(refs) != 0 {
		t.Fatalf("expected empty result, got %+v", refs)
	}
}

func TestResolveTranslationsScopesAreIsolated(t *testing.T) {
	lib := graph.NewLibrary()
	page := testsupport.NewPage("en", "blog").Build()
	section := testsupport.NewSection("fr", "blog").Title("Carnet").Build()
	if err := lib.AddPage(page); err != nil {
		t.Fatalf("AddPage: %v", err)
	}
	if err := lib.AddSection(section); err != nil {
		t.Fatalf("AddSection: %v", err)
	}

	refs, err := ResolveTranslations(lib, "blog", graph.ScopePages, page.ID)
	if err != nil {
		t.Fatalf("ResolveTranslations: %v", err)
	}
	if len(refs) != 0 {
		t.Fatalf("page scope must not see the section group, got %+v", refs)
	}

	refs, err = ResolveTranslations(lib, "blog", graph.ScopeSections, section.ID)
	if err != nil {
		t.Fatalf("ResolveTranslations: %v", err)
	}
	if len(refs) != 0 {
		t.Fatalf("section scope must not see the page group, got %+v", refs)
	}
}
