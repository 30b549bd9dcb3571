// Package config loads extraction policy overrides from TOML.
//
// A configuration file can extend or replace the built-in exclusion table,
// the common plugin list and the scope lists, and register extra dependency
// types:
//
//	[exclusions]
//	replace = false
//	artifacts = ["org.example:legacy-shim"]
//
//	[plugins]
//	default_group = "org.apache.maven.plugins"
//	common = ["org.apache.maven.plugins:maven-site-plugin"]
//	replace = false
//
//	[scopes]
//	build = ["", "compile", "provided", "test"]
//	plugin = ["", "compile", "runtime"]
//
//	[[types]]
//	name = "aar"
//	extension = "aar"
//
// Files are decoded strictly: unknown keys are reported as errors.
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/javapkg/builddep/pkg/artifact"
	"github.com/javapkg/builddep/pkg/builddep"
	"github.com/javapkg/builddep/pkg/errors"
	"github.com/javapkg/builddep/pkg/typereg"
)

// FileName is the configuration file looked up in the user config directory.
const FileName = "config.toml"

// Config is the decoded configuration file.
type Config struct {
	Exclusions Exclusions `toml:"exclusions" json:"exclusions"`
	Plugins    Plugins    `toml:"plugins" json:"plugins"`
	Scopes     Scopes     `toml:"scopes" json:"scopes"`
	Types      []Type     `toml:"types" json:"types"`
}

// Exclusions adds to or replaces the built-in exclusion table.
// The placeholder coordinates are always excluded.
type Exclusions struct {
	Replace   bool     `toml:"replace" json:"replace"`
	Artifacts []string `toml:"artifacts" json:"artifacts"`
}

// Plugins adjusts build plugin handling.
type Plugins struct {
	DefaultGroup string   `toml:"default_group" json:"default_group"`
	Replace      bool     `toml:"replace" json:"replace"`
	Common       []string `toml:"common" json:"common"`
}

// Scopes overrides the included scopes. A nil list keeps the default.
type Scopes struct {
	Build  []string `toml:"build" json:"build"`
	Plugin []string `toml:"plugin" json:"plugin"`
}

// Type registers an extra dependency type.
type Type struct {
	Name       string `toml:"name" json:"name"`
	Extension  string `toml:"extension" json:"extension"`
	Classifier string `toml:"classifier" json:"classifier"`
}

// Load reads the configuration file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "open config %s", path)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if e, ok := err.(*errors.Error); ok {
		return nil, &errors.Error{Code: e.Code, Message: path + ": " + e.Message, Cause: e.Cause}
	}
	return cfg, err
}

// Decode reads a configuration from r.
func Decode(r io.Reader) (*Config, error) {
	var cfg Config
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDefault loads the user configuration file if one exists.
// It returns an empty configuration when there is none.
func LoadDefault(appName string) (*Config, error) {
	path, err := DefaultPath(appName)
	if err != nil {
		return &Config{}, nil
	}
	cfg, err := Load(path)
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		return &Config{}, nil
	}
	return cfg, err
}

// DefaultPath returns the configuration path using the XDG convention
// (~/.config/<appName>/config.toml).
func DefaultPath(appName string) (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, FileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, FileName), nil
}

func (c *Config) validate() error {
	for _, s := range c.Exclusions.Artifacts {
		if _, err := artifact.Parse(s); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "exclusions.artifacts")
		}
	}
	for _, s := range c.Plugins.Common {
		if _, err := artifact.Parse(s); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "plugins.common")
		}
	}
	if g := c.Plugins.DefaultGroup; g != "" {
		if err := errors.ValidateCoordinatePart("plugins.default_group", g); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "plugins.default_group")
		}
	}
	for i, t := range c.Types {
		if strings.TrimSpace(t.Name) == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "types[%d]: missing name", i)
		}
	}
	return nil
}

// ExclusionSet returns the exclusion set described by c.
func (c *Config) ExclusionSet() *artifact.Exclusions {
	base := artifact.DefaultExclusions()
	if c.Exclusions.Replace {
		base = artifact.PlaceholderExclusions()
	}
	if len(c.Exclusions.Artifacts) == 0 {
		return base
	}
	return base.With(parseAll(c.Exclusions.Artifacts)...)
}

// Policy returns the extraction policy described by c.
func (c *Config) Policy() builddep.Policy {
	p := builddep.DefaultPolicy()
	if c.Scopes.Build != nil {
		p.BuildScopes = c.Scopes.Build
	}
	if c.Scopes.Plugin != nil {
		p.PluginScopes = c.Scopes.Plugin
	}
	if c.Plugins.DefaultGroup != "" {
		p.DefaultPluginGroup = c.Plugins.DefaultGroup
	}

	common := parseAll(c.Plugins.Common)
	if c.Plugins.Replace {
		p.CommonPlugins = common
		if p.CommonPlugins == nil {
			p.CommonPlugins = []artifact.Artifact{}
		}
	} else {
		p.CommonPlugins = append(p.CommonPlugins, common...)
	}
	return p
}

// Registry returns the type registry described by c.
func (c *Config) Registry() *typereg.Registry {
	if len(c.Types) == 0 {
		return typereg.Default()
	}
	handlers := make([]typereg.Handler, len(c.Types))
	for i, t := range c.Types {
		handlers[i] = typereg.Handler{Type: t.Name, Extension: t.Extension, Classifier: t.Classifier}
	}
	return typereg.Default().With(handlers...)
}

// Options validates c and returns the matching extractor options.
// logger may be nil.
func (c *Config) Options(logger func(string, ...any)) (builddep.Options, error) {
	if err := c.validate(); err != nil {
		return builddep.Options{}, err
	}
	policy := c.Policy()
	return builddep.Options{
		Policy:     &policy,
		Exclusions: c.ExclusionSet(),
		Types:      c.Registry(),
		Logger:     logger,
	}, nil
}

// Snapshot describes an effective policy as a self-contained configuration
// that replaces every built-in table.
func Snapshot(p builddep.Policy, ex *artifact.Exclusions, reg *typereg.Registry) *Config {
	cfg := &Config{
		Exclusions: Exclusions{Replace: true, Artifacts: []string{}},
		Plugins:    Plugins{DefaultGroup: p.DefaultPluginGroup, Replace: true, Common: []string{}},
		Scopes:     Scopes{Build: p.BuildScopes, Plugin: p.PluginScopes},
	}
	for _, a := range ex.Artifacts() {
		cfg.Exclusions.Artifacts = append(cfg.Exclusions.Artifacts, pattern(a))
	}
	for _, a := range p.CommonPlugins {
		cfg.Plugins.Common = append(cfg.Plugins.Common, pattern(a))
	}
	for _, h := range reg.Handlers() {
		cfg.Types = append(cfg.Types, Type{Name: h.Type, Extension: h.Extension, Classifier: h.Classifier})
	}
	return cfg
}

// Encode writes c as TOML.
func (c *Config) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode config")
	}
	return nil
}

// pattern formats a versionless artifact, keeping the classifier if set.
func pattern(a artifact.Artifact) string {
	if a.Classifier == "" {
		return a.Key()
	}
	return a.ClearVersionAndExtension().String()
}

// parseAll parses coordinate strings, skipping entries that validate rejects.
func parseAll(coords []string) []artifact.Artifact {
	var out []artifact.Artifact
	for _, s := range coords {
		if a, err := artifact.Parse(s); err == nil {
			out = append(out, a)
		}
	}
	return out
}
