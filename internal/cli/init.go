package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/traits/internal/paths"
	"github.com/mesh-intelligence/traits/pkg/sqlite"
	"github.com/mesh-intelligence/traits/pkg/types"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Backend        string `yaml:"backend"`
	DataDir        string `yaml:"data_dir,omitempty"`
	LogLevel       string `yaml:"log_level"`
	StrictIdentity bool   `yaml:"strict_identity"`
}

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize traits configuration and storage",
		Long:  "Create the configuration and data directories, write a default config.yaml\nif none exists, then initialize the snapshot database.",
		Args:  cobra.NoArgs,
		RunE:  a.runInit,
	}
}

func (a *app) runInit(cmd *cobra.Command, args []string) error {
	if err := os.MkdirAll(a.configDir, 0o755); err != nil {
		return sysError("create config directory: %w", err)
	}

	// Only persist data_dir when the user chose one explicitly.
	if err := writeConfigIfMissing(paths.ConfigFile(a.configDir), a.flags.dataDir, a.config); err != nil {
		return sysError("write config: %w", err)
	}

	store := sqlite.NewStore()
	if err := store.Attach(a.config); err != nil {
		return sysError("initialize storage: %w", err)
	}
	if err := store.Detach(); err != nil {
		return sysError("finalize storage: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Traits initialized in %s\n", a.config.DataDir)
	return nil
}

// writeConfigIfMissing creates config.yaml from cfg if the file does not
// exist. An existing file is left untouched.
func writeConfigIfMissing(path, dataDir string, cfg types.Config) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	data, err := yaml.Marshal(&configFile{
		Backend:        cfg.Backend,
		DataDir:        dataDir,
		LogLevel:       cfg.LogLevel,
		StrictIdentity: cfg.StrictIdentity,
	})
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}
