package sitegraph

import "errors"

var (
	ErrLoggingProviderUnknown = errors.New("sitegraph: unknown logging provider")
	ErrLoggingFormatInvalid   = errors.New("sitegraph: invalid logging format")
)

// LoggingConfig selects and tunes the logging provider.
type LoggingConfig struct {
	// Provider is "noop" or "gologger".
	Provider  string
	Level     string
	Format    string
	AddSource bool
}

// Config captures runtime behaviour for the module façade.
type Config struct {
	Logging LoggingConfig
}

// DefaultConfig returns the configuration used when the host supplies none.
func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Provider: "noop",
			Level:    "info",
			Format:   "json",
		},
	}
}

// Validate checks provider and format selections before wiring.
func (c Config) Validate() error {
	switch c.Logging.Provider {
	case "", "noop", "gologger":
	default:
		return ErrLoggingProviderUnknown
	}
	switch c.Logging.Format {
	case "", "json", "console", "pretty":
	default:
		return ErrLoggingFormatInvalid
	}
	return nil
}
