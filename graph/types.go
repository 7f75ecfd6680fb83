// Package graph holds the content graph consumed by the projection layer: page
// and section records plus the Library, the in-memory index that resolves
// stable keys, section paths, and translation groups during a render pass.
package graph

import "github.com/google/uuid"

// Scope selects the namespace a translation group lives in. Pages and
// sections are indexed separately, so the same canonical path can carry one
// group of each kind.
type Scope int

const (
	// ScopePages addresses the page namespace.
	ScopePages Scope = iota
	// ScopeSections addresses the section namespace.
	ScopeSections
)

// String implements fmt.Stringer.
func (s Scope) String() string {
	switch s {
	case ScopePages:
		return "pages"
	case ScopeSections:
		return "sections"
	default:
		return "unknown"
	}
}

// FileInfo locates an entity's source document.
type FileInfo struct {
	// Canonical is the language-independent source path used as the
	// cross-language join key for translation groups.
	Canonical string `json:"canonical"`
	// Relative is the path relative to the content root, including the
	// language component when present.
	Relative string `json:"relative"`
	// Path is the full source path as recorded by the upstream loader.
	Path string `json:"path"`
}

// Heading is one table-of-contents node as computed upstream.
type Heading struct {
	Level     int       `json:"level"`
	ID        string    `json:"id"`
	Permalink string    `json:"permalink"`
	Title     string    `json:"title"`
	Children  []Heading `json:"children,omitempty"`
}

// DateTuple carries the decomposed calendar date of a page when the upstream
// loader resolved one.
type DateTuple struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// PageMeta carries the author-supplied metadata of a page.
type PageMeta struct {
	Title       *string             `json:"title,omitempty"`
	Description *string             `json:"description,omitempty"`
	Date        *string             `json:"date,omitempty"`
	Updated     *string             `json:"updated,omitempty"`
	DateTuple   *DateTuple          `json:"date_tuple,omitempty"`
	Draft       bool                `json:"draft"`
	Taxonomies  map[string][]string `json:"taxonomies,omitempty"`
	Extra       map[string]any      `json:"extra,omitempty"`
}

// SectionMeta carries the author-supplied metadata of a section.
type SectionMeta struct {
	Title       *string        `json:"title,omitempty"`
	Description *string        `json:"description,omitempty"`
	Draft       bool           `json:"draft"`
	Extra       map[string]any `json:"extra,omitempty"`
}

// Page is a fully resolved content page. Every field, including the
// navigation pointers and ancestor chain, is computed by the upstream content
// pipeline; this package only indexes and serves the record.
type Page struct {
	ID          uuid.UUID `json:"id"`
	File        FileInfo  `json:"file"`
	Lang        string    `json:"lang"`
	Permalink   string    `json:"permalink"`
	Slug        string    `json:"slug"`
	Path        string    `json:"path"`
	Content     string    `json:"content"`
	Summary     *string   `json:"summary,omitempty"`
	Meta        PageMeta  `json:"meta"`
	TOC         []Heading `json:"toc,omitempty"`
	WordCount   *int      `json:"word_count,omitempty"`
	ReadingTime *int      `json:"reading_time,omitempty"`
	Components  []string  `json:"components,omitempty"`
	Assets      []string  `json:"assets,omitempty"`

	// Navigation pointers reference sibling pages by key. A nil pointer
	// means the relation does not exist for this page; a non-nil pointer is
	// assumed to resolve in the Library.
	Lighter        *uuid.UUID `json:"lighter,omitempty"`
	Heavier        *uuid.UUID `json:"heavier,omitempty"`
	Earlier        *uuid.UUID `json:"earlier,omitempty"`
	Later          *uuid.UUID `json:"later,omitempty"`
	EarlierUpdated *uuid.UUID `json:"earlier_updated,omitempty"`
	LaterUpdated   *uuid.UUID `json:"later_updated,omitempty"`
	TitlePrev      *uuid.UUID `json:"title_prev,omitempty"`
	TitleNext      *uuid.UUID `json:"title_next,omitempty"`

	// Ancestors lists the section keys from the root down to the page's
	// parent, in stored order.
	Ancestors []uuid.UUID `json:"ancestors,omitempty"`
}

// Section is a resolved content section. Child and includer lists reference
// other entities by key and preserve the order computed upstream.
type Section struct {
	ID          uuid.UUID   `json:"id"`
	File        FileInfo    `json:"file"`
	Lang        string      `json:"lang"`
	Permalink   string      `json:"permalink"`
	Path        string      `json:"path"`
	Content     string      `json:"content"`
	Meta        SectionMeta `json:"meta"`
	TOC         []Heading   `json:"toc,omitempty"`
	WordCount   *int        `json:"word_count,omitempty"`
	ReadingTime *int        `json:"reading_time,omitempty"`
	Components  []string    `json:"components,omitempty"`
	Assets      []string    `json:"assets,omitempty"`

	Pages       []uuid.UUID `json:"pages,omitempty"`
	Subsections []uuid.UUID `json:"subsections,omitempty"`
	// Includers lists the sections that transclude this one.
	Includers []uuid.UUID `json:"includers,omitempty"`
	Ancestors []uuid.UUID `json:"ancestors,omitempty"`
}
