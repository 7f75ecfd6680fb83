// Package storage persists content graph snapshots so a build pipeline can
// hand a prebuilt Library to the projection layer without re-running the
// upstream content pipeline.
package storage

import (
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-sitegraph/graph"
)

// PageRecord is the persisted form of one graph page. Indexable columns are
// broken out; everything else travels in the JSON payload.
type PageRecord struct {
	bun.BaseModel `bun:"table:graph_pages,alias:gp"`

	ID         uuid.UUID   `bun:",pk,type:uuid"          json:"id"`
	Canonical  string      `bun:"canonical,notnull"      json:"canonical"`
	Relative   string      `bun:"relative,notnull"       json:"relative"`
	SourcePath string      `bun:"source_path,notnull"    json:"source_path"`
	Lang       string      `bun:"lang,notnull"           json:"lang"`
	Permalink  string      `bun:"permalink,notnull"      json:"permalink"`
	Slug       string      `bun:"slug"                   json:"slug"`
	Path       string      `bun:"path"                   json:"path"`
	Content    string      `bun:"content"                json:"content"`
	Position   int         `bun:"position,notnull"       json:"position"`
	Payload    PagePayload `bun:"payload,type:jsonb,notnull" json:"payload"`
}

// PagePayload carries the page fields that need no indexing.
type PagePayload struct {
	Meta        graph.PageMeta  `json:"meta"`
	Summary     *string         `json:"summary,omitempty"`
	TOC         []graph.Heading `json:"toc,omitempty"`
	WordCount   *int            `json:"word_count,omitempty"`
	ReadingTime *int            `json:"reading_time,omitempty"`
	Components  []string        `json:"components,omitempty"`
	Assets      []string        `json:"assets,omitempty"`

	Lighter        *uuid.UUID `json:"lighter,omitempty"`
	Heavier        *uuid.UUID `json:"heavier,omitempty"`
	Earlier        *uuid.UUID `json:"earlier,omitempty"`
	Later          *uuid.UUID `json:"later,omitempty"`
	EarlierUpdated *uuid.UUID `json:"earlier_updated,omitempty"`
	LaterUpdated   *uuid.UUID `json:"later_updated,omitempty"`
	TitlePrev      *uuid.UUID `json:"title_prev,omitempty"`
	TitleNext      *uuid.UUID `json:"title_next,omitempty"`

	Ancestors []uuid.UUID `json:"ancestors,omitempty"`
}

// SectionRecord is the persisted form of one graph section.
type SectionRecord struct {
	bun.BaseModel `bun:"table:graph_sections,alias:gs"`

	ID         uuid.UUID      `bun:",pk,type:uuid"          json:"id"`
	Canonical  string         `bun:"canonical,notnull"      json:"canonical"`
	Relative   string         `bun:"relative,notnull"       json:"relative"`
	SourcePath string         `bun:"source_path,notnull"    json:"source_path"`
	Lang       string         `bun:"lang,notnull"           json:"lang"`
	Permalink  string         `bun:"permalink,notnull"      json:"permalink"`
	Path       string         `bun:"path"                   json:"path"`
	Content    string         `bun:"content"                json:"content"`
	Position   int            `bun:"position,notnull"       json:"position"`
	Payload    SectionPayload `bun:"payload,type:jsonb,notnull" json:"payload"`
}

// SectionPayload carries the section fields that need no indexing.
type SectionPayload struct {
	Meta        graph.SectionMeta `json:"meta"`
	TOC         []graph.Heading   `json:"toc,omitempty"`
	WordCount   *int              `json:"word_count,omitempty"`
	ReadingTime *int              `json:"reading_time,omitempty"`
	Components  []string          `json:"components,omitempty"`
	Assets      []string          `json:"assets,omitempty"`

	Pages       []uuid.UUID `json:"pages,omitempty"`
	Subsections []uuid.UUID `json:"subsections,omitempty"`
	Includers   []uuid.UUID `json:"includers,omitempty"`
	Ancestors   []uuid.UUID `json:"ancestors,omitempty"`
}

func pageToRecord(page *graph.Page, position int) *PageRecord {
	return &PageRecord{
		ID:         page.ID,
		Canonical:  page.File.Canonical,
		Relative:   page.File.Relative,
		SourcePath: page.File.Path,
		Lang:       page.Lang,
		Permalink:  page.Permalink,
		Slug:       page.Slug,
		Path:       page.Path,
		Content:    page.Content,
		Position:   position,
		Payload: PagePayload{
			Meta:           page.Meta,
			Summary:        page.Summary,
			TOC:            page.TOC,
			WordCount:      page.WordCount,
			ReadingTime:    page.ReadingTime,
			Components:     page.Components,
			Assets:         page.Assets,
			Lighter:        page.Lighter,
			Heavier:        page.Heavier,
			Earlier:        page.Earlier,
			Later:          page.Later,
			EarlierUpdated: page.EarlierUpdated,
			LaterUpdated:   page.LaterUpdated,
			TitlePrev:      page.TitlePrev,
			TitleNext:      page.TitleNext,
			Ancestors:      page.Ancestors,
		},
	}
}

func recordToPage(record *PageRecord) *graph.Page {
	return &graph.Page{
		ID:             record.ID,
		File:           graph.FileInfo{Canonical: record.Canonical, Relative: record.Relative, Path: record.SourcePath},
		Lang:           record.Lang,
		Permalink:      record.Permalink,
		Slug:           record.Slug,
		Path:           record.Path,
		Content:        record.Content,
		Summary:        record.Payload.Summary,
		Meta:           record.Payload.Meta,
		TOC:            record.Payload.TOC,
		WordCount:      record.Payload.WordCount,
		ReadingTime:    record.Payload.ReadingTime,
		Components:     record.Payload.Components,
		Assets:         record.Payload.Assets,
		Lighter:        record.Payload.Lighter,
		Heavier:        record.Payload.Heavier,
		Earlier:        record.Payload.Earlier,
		Later:          record.Payload.Later,
		EarlierUpdated: record.Payload.EarlierUpdated,
		LaterUpdated:   record.Payload.LaterUpdated,
		TitlePrev:      record.Payload.TitlePrev,
		TitleNext:      record.Payload.TitleNext,
		Ancestors:      record.Payload.Ancestors,
	}
}

func sectionToRecord(section *graph.Section, position int) *SectionRecord {
	return &SectionRecord{
		ID:         section.ID,
		Canonical:  section.File.Canonical,
		Relative:   section.File.Relative,
		SourcePath: section.File.Path,
		Lang:       section.Lang,
		Permalink:  section.Permalink,
		Path:       section.Path,
		Content:    section.Content,
		Position:   position,
		Payload: SectionPayload{
			Meta:        section.Meta,
			TOC:         section.TOC,
			WordCount:   section.WordCount,
			ReadingTime: section.ReadingTime,
			Components:  section.Components,
			Assets:      section.Assets,
			Pages:       section.Pages,
			Subsections: section.Subsections,
			Includers:   section.Includers,
			Ancestors:   section.Ancestors,
		},
	}
}

func recordToSection(record *SectionRecord) *graph.Section {
	return &graph.Section{
		ID:          record.ID,
		File:        graph.FileInfo{Canonical: record.Canonical, Relative: record.Relative, Path: record.SourcePath},
		Lang:        record.Lang,
		Permalink:   record.Permalink,
		Path:        record.Path,
		Content:     record.Content,
		Meta:        record.Payload.Meta,
		TOC:         record.Payload.TOC,
		WordCount:   record.Payload.WordCount,
		ReadingTime: record.Payload.ReadingTime,
		Components:  record.Payload.Components,
		Assets:      record.Payload.Assets,
		Pages:       record.Payload.Pages,
		Subsections: record.Payload.Subsections,
		Includers:   record.Payload.Includers,
		Ancestors:   record.Payload.Ancestors,
	}
}
