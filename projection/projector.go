package projection

import (
	"github.com/google/uuid"

	"github.com/goliatone/go-sitegraph/graph"
	"github.com/goliatone/go-sitegraph/internal/logging"
	"github.com/goliatone/go-sitegraph/pkg/interfaces"
)

// Projector binds the projection functions to one Library and a logger. It
// is stateless beyond those two references and safe for concurrent use.
type Projector struct {
	lib    *graph.Library
	logger interfaces.Logger
}

// Option configures a Projector.
type Option func(*Projector)

// WithLogger attaches a logger used for per-entity debug tracing.
func WithLogger(logger interfaces.Logger) Option {
	return func(p *Projector) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New constructs a Projector over the supplied library.
func New(lib *graph.Library, opts ...Option) *Projector {
	p := &Projector{
		lib:    lib,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Page projects one page at the requested fidelity.
func (p *Projector) Page(page *graph.Page, fid Fidelity) (*PageView, error) {
	view, err := ProjectPage(page, p.lib, fid)
	if err != nil {
		return nil, err
	}
	if page != nil {
		p.logger.Debug("projected page", "page", page.File.Relative, "fidelity", fid.String())
	}
	return view, nil
}

// Section projects one section at the requested fidelity.
func (p *Projector) Section(section *graph.Section, fid Fidelity) (*SectionView, error) {
	view, err := ProjectSection(section, p.lib, fid)
	if err != nil {
		return nil, err
	}
	if section != nil {
		p.logger.Debug("projected section", "section", section.File.Relative, "fidelity", fid.String())
	}
	return view, nil
}

// Translations resolves the translation references for the entity identified
// by self within the given scope.
func (p *Projector) Translations(canonical string, scope graph.Scope, self uuid.UUID) ([]TranslationRef, error) {
	return ResolveTranslations(p.lib, canonical, scope, self)
}
