package graph

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func testPage(lang, canonical string) *Page {
	return &Page{
		ID:        uuid.New(),
		File:      FileInfo{Canonical: canonical, Relative: lang + "/" + canonical + ".md", Path: "content/" + lang + "/" + canonical + ".md"},
		Lang:      lang,
		Permalink: "https://example.com/" + lang + "/" + canonical + "/",
		Slug:      canonical,
		Path:      "/" + canonical + "/",
	}
}

func testSection(lang, canonical string) *Section {
	return &Section{
		ID:        uuid.New(),
		File:      FileInfo{Canonical: canonical, Relative: lang + "/" + canonical + "/_index.md", Path: "content/" + lang + "/" + canonical + "/_index.md"},
		Lang:      lang,
		Permalink: "https://example.com/" + lang + "/" + canonical + "/",
		Path:      "/" + canonical + "/",
	}
}

func TestLibraryAddAndGetPage(t *testing.T) {
	lib := NewLibrary()
	page := testPage("en", "blog/post")

	if err := lib.AddPage(page); err != nil {
		t.Fatalf("AddPage: %v", err)
	}

	got, err := lib.Page(page.ID)
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	if got != page {
		t.Fatal("expected the indexed record back")
	}
}

func TestLibraryUnknownKeyIsTypedError(t *testing.T) {
	lib := NewLibrary()
	missing := uuid.New()

	_, err := lib.Page(missing)
	if err == nil {
		t.Fatal("expected error for unknown page key")
	}
	if !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
	var notFound *KeyNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected *KeyNotFoundError, got %T", err)
	}
	if notFound.Resource != "page" || notFound.Key != missing {
		t.Fatalf("unexpected error payload: %+v", notFound)
	}

	if _, err := lib.Section(missing); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound for section, got %v", err)
	}
	if _, err := lib.SectionPath(missing); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound for section path, got %v", err)
	}
}

func TestLibraryRejectsDuplicateKeys(t *testing.T) {
	lib := NewLibrary()
	page := testPage("en", "blog/post")

	if err := lib.AddPage(page); err != nil {
		t.Fatalf("AddPage: %v", err)
	}
	err := lib.AddPage(page)
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestLibraryValidatesRecords(t *testing.T) {
	lib := NewLibrary()

	if err := lib.AddPage(nil); !errors.Is(err, ErrPageRequired) {
		t.Fatalf("expected ErrPageRequired, got %v", err)
	}
	if err := lib.AddSection(nil); !errors.Is(err, ErrSectionRequired) {
		t.Fatalf("expected ErrSectionRequired, got %v", err)
	}

	page := testPage("en", "blog/post")
	page.Permalink = ""
	if err := lib.AddPage(page); err == nil {
		t.Fatal("expected validation error for missing permalink")
	}

	section := testSection("en", "blog")
	section.ID = uuid.Nil
	if err := lib.AddSection(section); err == nil {
		t.Fatal("expected validation error for missing key")
	}

	page = testPage("en", "blog/other")
	page.File.Canonical = ""
	if err := lib.AddPage(page); err == nil {
		t.Fatal("expected validation error for missing canonical path")
	}
}

func TestLibrarySectionPathLookup(t *testing.T) {
	lib := NewLibrary()
	section := testSection("en", "blog")

	if err := lib.AddSection(section); err != nil {
		t.Fatalf("AddSection: %v", err)
	}

	path, err := lib.SectionPath(section.ID)
	if err != nil {
		t.Fatalf("SectionPath: %v", err)
	}
	if path != section.File.Relative {
		t.Fatalf("expected %q, got %q", section.File.Relative, path)
	}
}

func TestLibraryTranslationGroupsByScope(t *testing.T) {
	lib := NewLibrary()

	en := testPage("en", "blog/post")
	fr := testPage("fr", "blog/post")
	de := testPage("de", "blog/post")
	for _, p := range []*Page{en, fr, de} {
		if err := lib.AddPage(p); err != nil {
			t.Fatalf("AddPage(%s): %v", p.Lang, err)
		}
	}

	section := testSection("en", "blog/post")
	if err := lib.AddSection(section); err != nil {
		t.Fatalf("AddSection: %v", err)
	}

	group := lib.TranslationGroup("blog/post", ScopePages)
	want := []uuid.UUID{en.ID, fr.ID, de.ID}
	if len(group) != len(want) {
		t.Fatalf("expected %d members, got %d", len(want), len(group))
	}
	for i, key := range want {
		if group[i] != key {
			t.Fatalf("expected insertion order preserved at %d: want %s, got %s", i, key, group[i])
		}
	}

	sections := lib.TranslationGroup("blog/post", ScopeSections)
	if len(sections) != 1 || sections[0] != section.ID {
		t.Fatalf("expected section namespace isolated from pages, got %v", sections)
	}
}

func TestLibraryTranslationGroupAbsentIsEmpty(t *testing.T) {
	lib := NewLibrary()
	if group := lib.TranslationGroup("never/registered", ScopePages); len(group) != 0 {
		t.Fatalf("expected empty group, got %v", group)
	}
}

func TestLibraryOrderedIteration(t *testing.T) {
	lib := NewLibrary()
	first := testPage("en", "a")
	second := testPage("en", "b")
	third := testPage("en", "c")
	for _, p := range []*Page{first, second, third} {
		if err := lib.AddPage(p); err != nil {
			t.Fatalf("AddPage: %v", err)
		}
	}

	pages := lib.Pages()
	if len(pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(pages))
	}
	for i, want := range []*Page{first, second, third} {
		if pages[i] != want {
			t.Fatalf("expected insertion order at %d", i)
		}
	}
}
