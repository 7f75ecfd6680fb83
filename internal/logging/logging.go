package logging

import (
	"context"
	"maps"

	"github.com/goliatone/go-sitegraph/pkg/interfaces"
)

const (
	rootModule       = "sitegraph"
	graphModule      = "sitegraph.graph"
	projectionModule = "sitegraph.projection"
	storageModule    = "sitegraph.storage"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// GraphLogger returns the logger namespace reserved for the content index.
func GraphLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, graphModule)
}

// ProjectionLogger returns the logger namespace reserved for view projection.
func ProjectionLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, projectionModule)
}

// StorageLogger returns the logger namespace reserved for snapshot storage.
func StorageLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, storageModule)
}

// WithFields attaches structured fields to a logger when the implementation
// supports the optional FieldsLogger extension. Callers can pass nil or an
// empty map to skip allocation safely.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		copied := make(map[string]any, len(fields))
		maps.Copy(copied, fields)
		return fieldsLogger.WithFields(copied)
	}

	return logger
}

// NoOp returns a logger that discards every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (l noopLogger) WithContext(context.Context) interfaces.Logger { return l }

func (l noopLogger) WithFields(map[string]any) interfaces.Logger { return l }
