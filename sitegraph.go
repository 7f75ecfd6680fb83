// Package sitegraph wires the content graph index, the view projection layer
// and the optional snapshot store into a single façade for host applications.
package sitegraph

import (
	"context"
	"errors"

	"github.com/uptrace/bun"

	"github.com/goliatone/go-sitegraph/graph"
	"github.com/goliatone/go-sitegraph/internal/logging"
	"github.com/goliatone/go-sitegraph/internal/logging/gologger"
	"github.com/goliatone/go-sitegraph/internal/storage"
	"github.com/goliatone/go-sitegraph/pkg/interfaces"
	"github.com/goliatone/go-sitegraph/projection"
)

// ErrStorageNotConfigured is returned by snapshot operations when no
// database was supplied.
var ErrStorageNotConfigured = errors.New("sitegraph: storage is not configured")

// Library exports the content index type for consumers of the façade.
type Library = graph.Library

// Projector exports the projection entry point.
type Projector = projection.Projector

// PageView exports the page view record.
type PageView = projection.PageView

// SectionView exports the section view record.
type SectionView = projection.SectionView

// TranslationRef exports the translation reference record.
type TranslationRef = projection.TranslationRef

// Engine is the top level runtime façade.
type Engine struct {
	cfg      Config
	lib      *graph.Library
	db       *bun.DB
	store    *storage.Store
	provider interfaces.LoggerProvider
	logger   interfaces.Logger
}

// Option overrides parts of the engine wiring.
type Option func(*Engine)

// WithLibrary supplies a pre-populated content index.
func WithLibrary(lib *graph.Library) Option {
	return func(e *Engine) {
		if lib != nil {
			e.lib = lib
		}
	}
}

// WithDB enables the snapshot store over the supplied database.
func WithDB(db *bun.DB) Option {
	return func(e *Engine) {
		e.db = db
	}
}

// WithLoggerProvider replaces the provider built from the logging config.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(e *Engine) {
		if provider != nil {
			e.provider = provider
		}
	}
}

// New constructs the engine from configuration plus optional overrides.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	engine := &Engine{
		cfg: cfg,
		lib: graph.NewLibrary(),
	}

	if cfg.Logging.Provider == "gologger" {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
		})
		if err != nil {
			return nil, err
		}
		engine.provider = provider
	}

	for _, opt := range opts {
		opt(engine)
	}

	engine.logger = logging.ModuleLogger(engine.provider, "")

	if engine.db != nil {
		store, err := storage.NewStore(engine.db, storage.WithLogger(logging.StorageLogger(engine.provider)))
		if err != nil {
			return nil, err
		}
		engine.store = store
	}

	return engine, nil
}

// Library returns the content index the engine projects from.
func (e *Engine) Library() *graph.Library {
	return e.lib
}

// Projector returns a projector bound to the engine's library.
func (e *Engine) Projector() *projection.Projector {
	return projection.New(e.lib, projection.WithLogger(logging.ProjectionLogger(e.provider)))
}

// Store exposes the snapshot store; nil when storage is not configured.
func (e *Engine) Store() *storage.Store {
	return e.store
}

// InitStorage creates the snapshot tables.
func (e *Engine) InitStorage(ctx context.Context) error {
	if e.store == nil {
		return ErrStorageNotConfigured
	}
	return e.store.Init(ctx)
}

// SaveLibrary persists the current library as the stored snapshot.
func (e *Engine) SaveLibrary(ctx context.Context) error {
	if e.store == nil {
		return ErrStorageNotConfigured
	}
	return e.store.SaveLibrary(ctx, e.lib)
}

// LoadLibrary replaces the engine's library with the stored snapshot.
func (e *Engine) LoadLibrary(ctx context.Context) error {
	if e.store == nil {
		return ErrStorageNotConfigured
	}
	lib, err := e.store.LoadLibrary(ctx)
	if err != nil {
		return err
	}
	e.lib = lib
	e.logger.Info("library loaded from snapshot")
	return nil
}
