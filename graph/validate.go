package graph

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Validate checks the source location fields every entity must carry.
func (f FileInfo) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Canonical, validation.Required),
		validation.Field(&f.Relative, validation.Required),
	)
}

func validatePage(p *Page) error {
	if p == nil {
		return ErrPageRequired
	}
	return validation.ValidateStruct(p,
		validation.Field(&p.ID, validation.By(requireKey)),
		validation.Field(&p.File),
		validation.Field(&p.Lang, validation.Required),
		validation.Field(&p.Permalink, validation.Required),
	)
}

func validateSection(s *Section) error {
	if s == nil {
		return ErrSectionRequired
	}
	return validation.ValidateStruct(s,
		validation.Field(&s.ID, validation.By(requireKey)),
		validation.Field(&s.File),
		validation.Field(&s.Lang, validation.Required),
		validation.Field(&s.Permalink, validation.Required),
	)
}

func requireKey(value any) error {
	key, ok := value.(uuid.UUID)
	if !ok || key == uuid.Nil {
		return errors.New("is required")
	}
	return nil
}
