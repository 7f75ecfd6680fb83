// Package projection flattens content graph entities into serializable view
// records for a template engine. Views are built on demand per render, are
// always finite and acyclic, and never outlive the Library they were built
// from.
package projection

import "github.com/goliatone/go-sitegraph/graph"

// TranslationRef is the minimal, non-recursive reference to a sibling entity
// in another language. Path points at the source document so templates can
// re-fetch the full entity when needed.
type TranslationRef struct {
	Lang      string  `json:"lang"`
	Permalink string  `json:"permalink"`
	Title     *string `json:"title"`
	Path      string  `json:"path"`
}

// PageView is the template-facing snapshot of a page. At full fidelity the
// eight navigation slots hold basic-fidelity views of the sibling pages; at
// basic fidelity they are nil, which is what bounds the recursion depth.
type PageView struct {
	RelativePath string              `json:"relative_path"`
	Content      string              `json:"content"`
	Permalink    string              `json:"permalink"`
	Slug         string              `json:"slug"`
	Ancestors    []string            `json:"ancestors"`
	Title        *string             `json:"title"`
	Description  *string             `json:"description"`
	Updated      *string             `json:"updated"`
	Date         *string             `json:"date"`
	Year         *int                `json:"year"`
	Month        *int                `json:"month"`
	Day          *int                `json:"day"`
	Taxonomies   map[string][]string `json:"taxonomies"`
	Extra        map[string]any      `json:"extra"`
	Path         string              `json:"path"`
	Components   []string            `json:"components"`
	Summary      *string             `json:"summary"`
	TOC          []graph.Heading     `json:"toc"`
	WordCount    *int                `json:"word_count"`
	ReadingTime  *int                `json:"reading_time"`
	Assets       []string            `json:"assets"`
	Draft        bool                `json:"draft"`
	Lang         string              `json:"lang"`

	Lighter        *PageView `json:"lighter"`
	Heavier        *PageView `json:"heavier"`
	EarlierUpdated *PageView `json:"earlier_updated"`
	LaterUpdated   *PageView `json:"later_updated"`
	Earlier        *PageView `json:"earlier"`
	Later          *PageView `json:"later"`
	TitlePrev      *PageView `json:"title_prev"`
	TitleNext      *PageView `json:"title_next"`

	Translations []TranslationRef `json:"translations"`
}

// SectionView is the template-facing snapshot of a section. Child pages are
// embedded at basic fidelity; subsections and includers are path strings
// only, which keeps the view finite no matter how deep or cyclic the section
// graph is.
type SectionView struct {
	RelativePath string          `json:"relative_path"`
	Content      string          `json:"content"`
	Permalink    string          `json:"permalink"`
	Draft        bool            `json:"draft"`
	Ancestors    []string        `json:"ancestors"`
	Title        *string         `json:"title"`
	Description  *string         `json:"description"`
	Extra        map[string]any  `json:"extra"`
	Path         string          `json:"path"`
	Components   []string        `json:"components"`
	TOC          []graph.Heading `json:"toc"`
	WordCount    *int            `json:"word_count"`
	ReadingTime  *int            `json:"reading_time"`
	Lang         string          `json:"lang"`
	Assets       []string        `json:"assets"`

	Pages        []*PageView      `json:"pages"`
	Subsections  []string         `json:"subsections"`
	Translations []TranslationRef `json:"translations"`
	Includers    []string         `json:"includers"`
}
