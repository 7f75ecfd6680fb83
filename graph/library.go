package graph

import (
	"sync"

	"github.com/google/uuid"
)

// Library is the in-memory content index. The upstream pipeline populates it
// once per build; after that it only serves reads, so concurrent projections
// of different entities are safe.
//
// Entities handed to Add* calls are owned by the Library afterwards and must
// not be mutated by the caller.
type Library struct {
	mu sync.RWMutex

	pages    map[uuid.UUID]*Page
	sections map[uuid.UUID]*Section

	// sectionPaths answers the lightweight path lookups used for
	// subsection/includer references without touching the full record.
	sectionPaths map[uuid.UUID]string

	// Translation groups keyed by canonical source path, one namespace per
	// scope. Member order follows entity insertion order.
	pageGroups    map[string][]uuid.UUID
	sectionGroups map[string][]uuid.UUID

	pageOrder    []uuid.UUID
	sectionOrder []uuid.UUID
}

// NewLibrary returns an empty content index.
func NewLibrary() *Library {
	return &Library{
		pages:         make(map[uuid.UUID]*Page),
		sections:      make(map[uuid.UUID]*Section),
		sectionPaths:  make(map[uuid.UUID]string),
		pageGroups:    make(map[string][]uuid.UUID),
		sectionGroups: make(map[string][]uuid.UUID),
	}
}

// AddPage validates and indexes a page, registering it in the translation
// group for its canonical source path.
func (l *Library) AddPage(page *Page) error {
	if err := validatePage(page); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.pages[page.ID]; exists {
		return &DuplicateKeyError{Resource: "page", Key: page.ID}
	}

	l.pages[page.ID] = page
	l.pageOrder = append(l.pageOrder, page.ID)
	l.pageGroups[page.File.Canonical] = appendMember(l.pageGroups[page.File.Canonical], page.ID)
	return nil
}

// AddSection validates and indexes a section, registering it in the
// translation group for its canonical source path and in the path lookup.
func (l *Library) AddSection(section *Section) error {
	if err := validateSection(section); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.sections[section.ID]; exists {
		return &DuplicateKeyError{Resource: "section", Key: section.ID}
	}

	l.sections[section.ID] = section
	l.sectionOrder = append(l.sectionOrder, section.ID)
	l.sectionPaths[section.ID] = section.File.Relative
	l.sectionGroups[section.File.Canonical] = appendMember(l.sectionGroups[section.File.Canonical], section.ID)
	return nil
}

// Page fetches a page by key.
func (l *Library) Page(key uuid.UUID) (*Page, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	page, ok := l.pages[key]
	if !ok {
		return nil, &KeyNotFoundError{Resource: "page", Key: key}
	}
	return page, nil
}

// Section fetches a section by key.
func (l *Library) Section(key uuid.UUID) (*Section, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	section, ok := l.sections[key]
	if !ok {
		return nil, &KeyNotFoundError{Resource: "section", Key: key}
	}
	return section, nil
}

// SectionPath returns the relative path of a section without materializing
// the full record.
func (l *Library) SectionPath(key uuid.UUID) (string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	path, ok := l.sectionPaths[key]
	if !ok {
		return "", &KeyNotFoundError{Resource: "section", Key: key}
	}
	return path, nil
}

// TranslationGroup returns the keys sharing the canonical source path in the
// given scope, in registration order. An unknown canonical path yields an
// empty slice; untranslated content is the expected case, not an error.
func (l *Library) TranslationGroup(canonical string, scope Scope) []uuid.UUID {
	l.mu.RLock()
	defer l.mu.RUnlock()

	groups := l.pageGroups
	if scope == ScopeSections {
		groups = l.sectionGroups
	}

	members := groups[canonical]
	out := make([]uuid.UUID, len(members))
	copy(out, members)
	return out
}

// Pages returns every indexed page in insertion order.
func (l *Library) Pages() []*Page {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*Page, 0, len(l.pageOrder))
	for _, key := range l.pageOrder {
		out = append(out, l.pages[key])
	}
	return out
}

// Sections returns every indexed section in insertion order.
func (l *Library) Sections() []*Section {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*Section, 0, len(l.sectionOrder))
	for _, key := range l.sectionOrder {
		out = append(out, l.sections[key])
	}
	return out
}

func appendMember(members []uuid.UUID, key uuid.UUID) []uuid.UUID {
	for _, existing := range members {
		if existing == key {
			return members
		}
	}
	return append(members, key)
}
