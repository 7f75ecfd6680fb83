package projection

import "errors"

var (
	ErrPageRequired    = errors.New("projection: page record is required")
	ErrSectionRequired = errors.New("projection: section record is required")
	ErrLibraryRequired = errors.New("projection: library is required at this fidelity")
)
