package storage

import (
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewPageRecordRepository wires the bun repository for persisted pages. The
// relative source path doubles as the human-readable identifier.
func NewPageRecordRepository(db *bun.DB) repository.Repository[*PageRecord] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*PageRecord]{
		NewRecord: func() *PageRecord { return &PageRecord{} },
		GetID: func(r *PageRecord) uuid.UUID {
			return r.ID
		},
		SetID: func(r *PageRecord, id uuid.UUID) {
			r.ID = id
		},
		GetIdentifier: func() string {
			return "relative"
		},
		GetIdentifierValue: func(r *PageRecord) string {
			return r.Relative
		},
	})
}

// NewSectionRecordRepository wires the bun repository for persisted sections.
func NewSectionRecordRepository(db *bun.DB) repository.Repository[*SectionRecord] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*SectionRecord]{
		NewRecord: func() *SectionRecord { return &SectionRecord{} },
		GetID: func(r *SectionRecord) uuid.UUID {
			return r.ID
		},
		SetID: func(r *SectionRecord, id uuid.UUID) {
			r.ID = id
		},
		GetIdentifier: func() string {
			return "relative"
		},
		GetIdentifierValue: func(r *SectionRecord) string {
			return r.Relative
		},
	})
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &RecordNotFoundError{
			Resource: resource,
			Key:      key,
		}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}
