package testsupport

import (
	"github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/goliatone/go-sitegraph/graph"
	"github.com/goliatone/go-sitegraph/internal/identity"
)

// PageBuilder assembles valid graph pages with deterministic keys so tests
// can reference entities without holding on to generated IDs.
type PageBuilder struct {
	page *graph.Page
}

// NewPage starts a page for the given language and canonical source path.
// Defaults give a record that passes Library validation as-is.
func NewPage(lang, canonical string) *PageBuilder {
	relative := lang + "/" + canonical + ".md"
	return &PageBuilder{
		page: &graph.Page{
			ID:        identity.PageUUID(lang, canonical),
			File:      graph.FileInfo{Canonical: canonical, Relative: relative, Path: relative},
			Lang:      lang,
			Permalink: "https://example.com/" + lang + "/" + canonical + "/",
			Slug:      canonical,
			Path:      "/" + canonical + "/",
		},
	}
}

// Relative overrides the relative source path recorded for the page.
func (b *PageBuilder) Relative(relative string) *PageBuilder {
	b.page.File.Relative = relative
	b.page.File.Path = relative
	return b
}

// Title sets the page title and derives the slug from it when possible.
func (b *PageBuilder) Title(title string) *PageBuilder {
	b.page.Meta.Title = &title
	if normalized, err := slug.Normalize(title); err == nil {
		b.page.Slug = normalized
	}
	return b
}

// Description sets the page description.
func (b *PageBuilder) Description(description string) *PageBuilder {
	b.page.Meta.Description = &description
	return b
}

// Content sets the page body.
func (b *PageBuilder) Content(content string) *PageBuilder {
	b.page.Content = content
	return b
}

// Summary sets the computed page summary.
func (b *PageBuilder) Summary(summary string) *PageBuilder {
	b.page.Summary = &summary
	return b
}

// Date records the stored date string and its decomposed tuple.
func (b *PageBuilder) Date(date string, year, month, day int) *PageBuilder {
	b.page.Meta.Date = &date
	b.page.Meta.DateTuple = &graph.DateTuple{Year: year, Month: month, Day: day}
	return b
}

// Updated records the stored update timestamp string.
func (b *PageBuilder) Updated(updated string) *PageBuilder {
	b.page.Meta.Updated = &updated
	return b
}

// Draft marks the page as a draft.
func (b *PageBuilder) Draft() *PageBuilder {
	b.page.Meta.Draft = true
	return b
}

// Taxonomy appends terms under a taxonomy name.
func (b *PageBuilder) Taxonomy(name string, terms ...string) *PageBuilder {
	if b.page.Meta.Taxonomies == nil {
		b.page.Meta.Taxonomies = map[string][]string{}
	}
	b.page.Meta.Taxonomies[name] = append(b.page.Meta.Taxonomies[name], terms...)
	return b
}

// Extra sets a free-form metadata value.
func (b *PageBuilder) Extra(key string, value any) *PageBuilder {
	if b.page.Meta.Extra == nil {
		b.page.Meta.Extra = map[string]any{}
	}
	b.page.Meta.Extra[key] = value
	return b
}

// Ancestors sets the ordered ancestor section keys.
func (b *PageBuilder) Ancestors(keys ...uuid.UUID) *PageBuilder {
	b.page.Ancestors = keys
	return b
}

// Lighter sets the lighter navigation pointer.
func (b *PageBuilder) Lighter(key uuid.UUID) *PageBuilder {
	b.page.Lighter = &key
	return b
}

// Heavier sets the heavier navigation pointer.
func (b *PageBuilder) Heavier(key uuid.UUID) *PageBuilder {
	b.page.Heavier = &key
	return b
}

// Earlier sets the earlier navigation pointer.
func (b *PageBuilder) Earlier(key uuid.UUID) *PageBuilder {
	b.page.Earlier = &key
	return b
}

// Later sets the later navigation pointer.
func (b *PageBuilder) Later(key uuid.UUID) *PageBuilder {
	b.page.Later = &key
	return b
}

// EarlierUpdated sets the earlier-updated navigation pointer.
func (b *PageBuilder) EarlierUpdated(key uuid.UUID) *PageBuilder {
	b.page.EarlierUpdated = &key
	return b
}

// LaterUpdated sets the later-updated navigation pointer.
func (b *PageBuilder) LaterUpdated(key uuid.UUID) *PageBuilder {
	b.page.LaterUpdated = &key
	return b
}

// TitlePrev sets the title-prev navigation pointer.
func (b *PageBuilder) TitlePrev(key uuid.UUID) *PageBuilder {
	b.page.TitlePrev = &key
	return b
}

// TitleNext sets the title-next navigation pointer.
func (b *PageBuilder) TitleNext(key uuid.UUID) *PageBuilder {
	b.page.TitleNext = &key
	return b
}

// Build returns the assembled page.
func (b *PageBuilder) Build() *graph.Page {
	return b.page
}

// SectionBuilder assembles valid graph sections with deterministic keys.
type SectionBuilder struct {
	section *graph.Section
}

// NewSection starts a section for the given language and canonical source
// path.
func NewSection(lang, canonical string) *SectionBuilder {
	relative := lang + "/" + canonical + "/_index.md"
	return &SectionBuilder{
		section: &graph.Section{
			ID:        identity.SectionUUID(lang, canonical),
			File:      graph.FileInfo{Canonical: canonical, Relative: relative, Path: relative},
			Lang:      lang,
			Permalink: "https://example.com/" + lang + "/" + canonical + "/",
			Path:      "/" + canonical + "/",
		},
	}
}

// Relative overrides the relative source path recorded for the section.
func (b *SectionBuilder) Relative(relative string) *SectionBuilder {
	b.section.File.Relative = relative
	b.section.File.Path = relative
	return b
}

// Title sets the section title.
func (b *SectionBuilder) Title(title string) *SectionBuilder {
	b.section.Meta.Title = &title
	return b
}

// Content sets the section body.
func (b *SectionBuilder) Content(content string) *SectionBuilder {
	b.section.Content = content
	return b
}

// Pages sets the ordered child page keys.
func (b *SectionBuilder) Pages(keys ...uuid.UUID) *SectionBuilder {
	b.section.Pages = keys
	return b
}

// Subsections sets the ordered child section keys.
func (b *SectionBuilder) Subsections(keys ...uuid.UUID) *SectionBuilder {
	b.section.Subsections = keys
	return b
}

// Includers sets the ordered includer section keys.
func (b *SectionBuilder) Includers(keys ...uuid.UUID) *SectionBuilder {
	b.section.Includers = keys
	return b
}

// Ancestors sets the ordered ancestor section keys.
func (b *SectionBuilder) Ancestors(keys ...uuid.UUID) *SectionBuilder {
	b.section.Ancestors = keys
	return b
}

// Build returns the assembled section.
func (b *SectionBuilder) Build() *graph.Section {
	return b.section
}
