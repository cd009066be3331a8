// Package cli implements the traits command-line interface: a cobra command
// tree over the trait registry, the standard adapters and the snapshot store.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/traits/internal/paths"
	"github.com/mesh-intelligence/traits/pkg/trait"
	"github.com/mesh-intelligence/traits/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Config keys read from config.yaml.
const (
	cfgKeyBackend        = "backend"
	cfgKeyDataDir        = "data_dir"
	cfgKeyLogLevel       = "log_level"
	cfgKeyStrictIdentity = "strict_identity"
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
}

// app carries the state shared by one command tree.
type app struct {
	flags     rootFlags
	configDir string
	config    types.Config
	stderr    io.Writer
}

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(format string, args ...any) error {
	return &exitError{code: exitUserError, err: fmt.Errorf(format, args...)}
}

func sysError(format string, args ...any) error {
	return &exitError{code: exitSysError, err: fmt.Errorf(format, args...)}
}

// exitCode maps err to a process exit code. Errors that did not come from
// a command body (flag parsing, argument counts) are user errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// NewRootCmd creates the top-level "traits" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{stderr: os.Stderr}

	root := &cobra.Command{
		Use:   "traits",
		Short: "Inspect and edit intercepted object traits",
		Long: "Traits builds scene objects carrying the standard trait adapters,\n" +
			"persists their externally visible values and lets you edit them\n" +
			"through the same interceptors the runtime uses.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.stderr = cmd.ErrOrStderr()
			return a.loadConfig()
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: $(CWD)/.traits-db)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd(a))
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newKindsCmd(a))
	root.AddCommand(newIDCmd(a))
	root.AddCommand(newNewCmd(a))
	root.AddCommand(newShowCmd(a))
	root.AddCommand(newSetCmd(a))
	root.AddCommand(newListCmd(a))
	root.AddCommand(newDeleteCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "traits:", err)
	}
	os.Exit(exitCode(err))
}

// loadConfig resolves the config directory, reads config.yaml through viper
// and applies log level and identity strictness. A missing config.yaml is
// not an error.
func (a *app) loadConfig() error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError("resolve config dir: %w", err)
	}
	a.configDir = configDir

	def := types.DefaultConfig()
	v := viper.New()
	v.SetDefault(cfgKeyBackend, def.Backend)
	v.SetDefault(cfgKeyLogLevel, def.LogLevel)
	v.SetDefault(cfgKeyStrictIdentity, def.StrictIdentity)
	_ = v.BindEnv(cfgKeyLogLevel, "TRAITS_LOG_LEVEL")
	_ = v.BindEnv(cfgKeyStrictIdentity, "TRAITS_STRICT_IDENTITY")
	v.SetConfigFile(paths.ConfigFile(configDir))
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil && !isConfigMissing(err) {
		return userError("read config: %w", err)
	}

	dataDir, err := paths.ResolveDataDir(a.flags.dataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return sysError("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend:        v.GetString(cfgKeyBackend),
		DataDir:        dataDir,
		LogLevel:       strings.ToLower(v.GetString(cfgKeyLogLevel)),
		StrictIdentity: v.GetBool(cfgKeyStrictIdentity),
	}
	if err := cfg.Validate(); err != nil {
		return userError("config %s: %w", paths.ConfigFile(configDir), err)
	}
	a.config = cfg

	slog.SetDefault(slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	})))
	trait.Default().SetStrict(cfg.StrictIdentity)
	return nil
}

// isConfigMissing reports whether err means config.yaml does not exist.
// SetConfigFile makes viper return the raw fs error instead of
// ConfigFileNotFoundError.
func isConfigMissing(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}

func logLevel(name string) slog.Level {
	switch name {
	case types.LogLevelDebug:
		return slog.LevelDebug
	case types.LogLevelInfo:
		return slog.LevelInfo
	case types.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
