package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/theseus-aligner/seqtools/pkg/buildinfo"
	"github.com/theseus-aligner/seqtools/pkg/cache"
	"github.com/theseus-aligner/seqtools/pkg/config"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "seqtools"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	config     *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "seqtools converts and tidies sequence-graph and FASTA files",
		Long: `seqtools bundles the small file utilities used around a sequence-to-graph
aligner: GFA to Graphviz DOT conversion, FASTA merging and truncation, and
alignment log summaries.`,
		Version:       buildinfo.Version,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(cmd); err != nil {
				cmd.SilenceUsage = true
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/seqtools/config.toml)")

	root.AddCommand(c.gfa2dotCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.combineCommand())
	root.AddCommand(c.exectimeCommand())
	root.AddCommand(c.cutCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())
	silenceUsageOnRun(root)

	return root
}

// silenceUsageOnRun keeps usage text for argument and flag errors but not
// for failures inside a command's RunE.
func silenceUsageOnRun(cmd *cobra.Command) {
	if run := cmd.RunE; run != nil {
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd, args)
		}
	}
	for _, sub := range cmd.Commands() {
		silenceUsageOnRun(sub)
	}
}

// loadConfig reads --config, or the per-user file when the flag is unset.
// Only an explicitly named file must exist.
func (c *CLI) loadConfig(cmd *cobra.Command) error {
	path, explicit := c.configPath, c.configPath != ""
	if !explicit {
		p, err := config.DefaultPath(appName)
		if err != nil {
			c.Logger.Debug("no config directory", "error", err)
			return nil
		}
		path = p
	}

	cfg, err := config.Load(path, explicit)
	if err != nil {
		return err
	}
	c.config = cfg
	c.Logger.Debug("configuration loaded", "path", path)
	return nil
}

// =============================================================================
// Cache
// =============================================================================

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	return fc, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/seqtools/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Flag Helpers
// =============================================================================

// boolSetting returns the flag value if the user set it, otherwise fallback.
func boolSetting(cmd *cobra.Command, name string, flag, fallback bool) bool {
	if cmd.Flags().Changed(name) {
		return flag
	}
	return fallback
}

// stringSetting returns the flag value if the user set it, otherwise fallback.
func stringSetting(cmd *cobra.Command, name, flag, fallback string) string {
	if cmd.Flags().Changed(name) {
		return flag
	}
	return fallback
}

// intSetting returns the flag value if the user set it, otherwise fallback.
func intSetting(cmd *cobra.Command, name string, flag, fallback int) int {
	if cmd.Flags().Changed(name) {
		return flag
	}
	return fallback
}
