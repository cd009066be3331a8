package types

import "errors"

// Config holds backend selection and runtime parameters for the snapshot
// store and the trait registry.
type Config struct {
	Backend string `json:"backend" yaml:"backend"`
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// LogLevel is one of debug, info, warn, error. Empty means warn.
	LogLevel string `json:"log_level" yaml:"log_level"`

	// StrictIdentity makes missing trait kind metadata a construction
	// failure instead of a logged degradation.
	StrictIdentity bool `json:"strict_identity" yaml:"strict_identity"`
}

// Supported backend names.
const (
	BackendSQLite = "sqlite"
)

// Supported log levels.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Config validation errors.
var (
	ErrBackendEmpty    = errors.New("backend must not be empty")
	ErrBackendUnknown  = errors.New("unknown backend")
	ErrLogLevelUnknown = errors.New("unknown log level")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSQLite: true,
}

var knownLogLevels = map[string]bool{
	"":            true,
	LogLevelDebug: true,
	LogLevelInfo:  true,
	LogLevelWarn:  true,
	LogLevelError: true,
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Backend:        BackendSQLite,
		LogLevel:       LogLevelWarn,
		StrictIdentity: true,
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if !knownLogLevels[c.LogLevel] {
		return ErrLogLevelUnknown
	}
	return nil
}
