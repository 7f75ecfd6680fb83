package storage

import (
	"context"
	"errors"
	"fmt"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-sitegraph/graph"
	"github.com/goliatone/go-sitegraph/internal/logging"
	"github.com/goliatone/go-sitegraph/internal/validation"
	"github.com/goliatone/go-sitegraph/pkg/interfaces"
)

var (
	ErrDatabaseRequired = errors.New("storage: database is required")
	ErrLibraryRequired  = errors.New("storage: library is required")
	ErrRecordNotFound   = errors.New("storage: record not found")
)

// RecordNotFoundError reports a lookup for a row that does not exist.
type RecordNotFoundError struct {
	Resource string
	Key      string
}

func (e *RecordNotFoundError) Error() string {
	return fmt.Sprintf("storage: %s %q not found", e.Resource, e.Key)
}

func (e *RecordNotFoundError) Unwrap() error {
	return ErrRecordNotFound
}

// Store reads and writes content graph snapshots.
type Store struct {
	db       *bun.DB
	pages    repository.Repository[*PageRecord]
	sections repository.Repository[*SectionRecord]
	logger   interfaces.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger attaches a logger to the store.
func WithLogger(logger interfaces.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore constructs a snapshot store over the supplied database.
func NewStore(db *bun.DB, opts ...StoreOption) (*Store, error) {
	if db == nil {
		return nil, ErrDatabaseRequired
	}
	store := &Store{
		db:       db,
		pages:    NewPageRecordRepository(db),
		sections: NewSectionRecordRepository(db),
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(store)
	}
	return store, nil
}

// Init creates the snapshot tables when they do not exist yet.
func (s *Store) Init(ctx context.Context) error {
	if _, err := s.db.NewCreateTable().Model((*PageRecord)(nil)).IfNotExists().Exec(ctx); err != nil {
		return fmt.Errorf("storage: create graph_pages: %w", err)
	}
	if _, err := s.db.NewCreateTable().Model((*SectionRecord)(nil)).IfNotExists().Exec(ctx); err != nil {
		return fmt.Errorf("storage: create graph_sections: %w", err)
	}
	return nil
}

// SaveLibrary replaces the stored snapshot with the library's current
// contents, preserving insertion order through the position columns.
func (s *Store) SaveLibrary(ctx context.Context, lib *graph.Library) error {
	if lib == nil {
		return ErrLibraryRequired
	}

	pages := lib.Pages()
	sections := lib.Sections()

	pageRecords := make([]*PageRecord, 0, len(pages))
	for i, page := range pages {
		pageRecords = append(pageRecords, pageToRecord(page, i))
	}
	sectionRecords := make([]*SectionRecord, 0, len(sections))
	for i, section := range sections {
		sectionRecords = append(sectionRecords, sectionToRecord(section, i))
	}

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().Model((*PageRecord)(nil)).Where("1 = 1").Exec(ctx); err != nil {
			return fmt.Errorf("clear graph_pages: %w", err)
		}
		if _, err := tx.NewDelete().Model((*SectionRecord)(nil)).Where("1 = 1").Exec(ctx); err != nil {
			return fmt.Errorf("clear graph_sections: %w", err)
		}
		if len(pageRecords) > 0 {
			if _, err := tx.NewInsert().Model(&pageRecords).Exec(ctx); err != nil {
				return fmt.Errorf("insert graph_pages: %w", err)
			}
		}
		if len(sectionRecords) > 0 {
			if _, err := tx.NewInsert().Model(&sectionRecords).Exec(ctx); err != nil {
				return fmt.Errorf("insert graph_sections: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("storage: save library: %w", err)
	}

	s.logger.Info("saved graph snapshot", "pages", len(pageRecords), "sections", len(sectionRecords))
	return nil
}

// LoadLibrary rebuilds a Library from the stored snapshot. Payloads are
// re-validated against the snapshot schemas before indexing; translation
// groups reconstitute themselves from the restored insertion order.
func (s *Store) LoadLibrary(ctx context.Context) (*graph.Library, error) {
	var pageRecords []*PageRecord
	if err := s.db.NewSelect().Model(&pageRecords).Order("position ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("storage: load graph_pages: %w", err)
	}
	var sectionRecords []*SectionRecord
	if err := s.db.NewSelect().Model(&sectionRecords).Order("position ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("storage: load graph_sections: %w", err)
	}

	lib := graph.NewLibrary()
	for _, record := range sectionRecords {
		if err := validation.ValidatePayload(sectionPayloadSchema, record.Payload); err != nil {
			return nil, fmt.Errorf("storage: section %q payload: %w", record.Relative, err)
		}
		if err := lib.AddSection(recordToSection(record)); err != nil {
			return nil, fmt.Errorf("storage: index section %q: %w", record.Relative, err)
		}
	}
	for _, record := range pageRecords {
		if err := validation.ValidatePayload(pagePayloadSchema, record.Payload); err != nil {
			return nil, fmt.Errorf("storage: page %q payload: %w", record.Relative, err)
		}
		if err := lib.AddPage(recordToPage(record)); err != nil {
			return nil, fmt.Errorf("storage: index page %q: %w", record.Relative, err)
		}
	}

	s.logger.Info("loaded graph snapshot", "pages", len(pageRecords), "sections", len(sectionRecords))
	return lib, nil
}

// Page fetches one stored page by key.
func (s *Store) Page(ctx context.Context, id uuid.UUID) (*graph.Page, error) {
	record, err := s.pages.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "page", id.String())
	}
	return recordToPage(record), nil
}

// PageByRelative fetches one stored page by relative source path.
func (s *Store) PageByRelative(ctx context.Context, relative string) (*graph.Page, error) {
	record, err := s.pages.GetByIdentifier(ctx, relative)
	if err != nil {
		return nil, mapRepositoryError(err, "page", relative)
	}
	return recordToPage(record), nil
}

// Section fetches one stored section by key.
func (s *Store) Section(ctx context.Context, id uuid.UUID) (*graph.Section, error) {
	record, err := s.sections.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "section", id.String())
	}
	return recordToSection(record), nil
}

// SectionByRelative fetches one stored section by relative source path.
func (s *Store) SectionByRelative(ctx context.Context, relative string) (*graph.Section, error) {
	record, err := s.sections.GetByIdentifier(ctx, relative)
	if err != nil {
		return nil, mapRepositoryError(err, "section", relative)
	}
	return recordToSection(record), nil
}
