// Package paths resolves where the traits CLI keeps its configuration and
// its snapshot database.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// Directory names used when nothing else is configured.
const (
	AppName              = "traits"
	DefaultConfigDirName = ".traits"
	DefaultDataDirName   = ".traits-db"
	ConfigFileName       = "config.yaml"
)

// Environment overrides.
const (
	EnvConfigDir = "TRAITS_CONFIG_DIR"
	EnvDataDir   = "TRAITS_DATA_DIR"
)

// platformDir can be swapped in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// xdgDir returns $env/traits when env is set, else ~/<fallback...>/traits.
// Non-linux platforms use os.UserConfigDir for both config and data.
func xdgDir(env string, fallback ...string) (string, error) {
	if runtime.GOOS != "linux" {
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, AppName), nil
	}
	if v := os.Getenv(env); v != "" {
		return filepath.Join(v, AppName), nil
	}
	home, err := platformDir.homeDir()
	if err != nil {
		return "", err
	}
	parts := append([]string{home}, fallback...)
	return filepath.Join(append(parts, AppName)...), nil
}

// DefaultConfigDir returns the platform configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/traits (fallback ~/.config/traits)
// macOS:   ~/Library/Application Support/traits
// Windows: %APPDATA%/traits
func DefaultConfigDir() (string, error) {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// DefaultDataDir returns the platform data directory.
// It is not part of the ResolveDataDir chain; the CLI prefers a CWD-local
// database so snapshots stay with the project that produced them.
func DefaultDataDir() (string, error) {
	return xdgDir("XDG_DATA_HOME", ".local", "share")
}

// ResolveConfigDir applies: flag > TRAITS_CONFIG_DIR > DefaultConfigDir.
func ResolveConfigDir(flag string) (string, error) {
	if dir, ok, err := firstAbs(flag, os.Getenv(EnvConfigDir)); ok || err != nil {
		return dir, err
	}
	return DefaultConfigDir()
}

// ResolveDataDir applies: flag > config data_dir > TRAITS_DATA_DIR > $(CWD)/.traits-db.
func ResolveDataDir(flag, configValue string) (string, error) {
	if dir, ok, err := firstAbs(flag, configValue, os.Getenv(EnvDataDir)); ok || err != nil {
		return dir, err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}

// ConfigFile returns the config.yaml path inside configDir.
func ConfigFile(configDir string) string {
	return filepath.Join(configDir, ConfigFileName)
}

// firstAbs returns the absolute form of the first non-empty candidate.
func firstAbs(candidates ...string) (string, bool, error) {
	for _, c := range candidates {
		if c == "" {
			continue
		}
		abs, err := filepath.Abs(c)
		return abs, true, err
	}
	return "", false, nil
}
