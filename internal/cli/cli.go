// Package cli implements the builddep command-line interface.
//
// The CLI reads Maven project descriptors, extracts their build dependencies
// and prints them as text, JSON, DOT or SVG. It can also print the effective
// extraction policy and serve extraction over HTTP. Commands are built with
// cobra and log through charmbracelet/log.
//
// # Commands
//
//   - extract: Extract build dependencies from one or more pom.xml files
//   - policy: Print the effective exclusions, common plugins, scopes and types
//   - serve: Run the HTTP extraction service
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which
// includes every relationship the extractor skips.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/javapkg/builddep/pkg/buildinfo"
	"github.com/javapkg/builddep/pkg/builddep"
	"github.com/javapkg/builddep/pkg/config"
	"github.com/javapkg/builddep/pkg/typereg"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "builddep"

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
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "builddep",
		Short: "builddep lists the build-time dependencies of Maven projects",
		Long: `builddep reads Maven project descriptors (pom.xml) and reports the artifacts
needed to build them: the parent descriptor, dependencies in build scopes,
build extensions, non-default plugins and their dependencies.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "policy configuration file (default $XDG_CONFIG_HOME/builddep/config.toml)")

	root.AddCommand(c.extractCommand())
	root.AddCommand(c.policyCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Extractor Factory
// =============================================================================

// loadConfig reads the --config file, or the user configuration if present.
func (c *CLI) loadConfig() (*config.Config, error) {
	if c.configPath != "" {
		return config.Load(c.configPath)
	}
	return config.LoadDefault(appName)
}

// newExtractor builds an extractor from the effective configuration.
// Skipped relationships are logged at debug level.
func (c *CLI) newExtractor() (*builddep.Extractor, *typereg.Registry, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	opts, err := cfg.Options(func(msg string, args ...any) { c.Logger.Debugf(msg, args...) })
	if err != nil {
		return nil, nil, err
	}
	if c.configPath != "" {
		c.Logger.Debugf("Loaded policy from %s", c.configPath)
	}
	return builddep.New(opts), cfg.Registry(), nil
}
