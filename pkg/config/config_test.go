package config

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/javapkg/builddep/pkg/artifact"
	"github.com/javapkg/builddep/pkg/builddep"
	"github.com/javapkg/builddep/pkg/errors"
	"github.com/javapkg/builddep/pkg/pom"
)

const sample = `
[exclusions]
artifacts = ["org.example:legacy-shim", "org.example:other:jar:tests:1.0"]

[plugins]
common = ["org.apache.maven.plugins:maven-site-plugin"]

[scopes]
plugin = ["", "compile"]

[[types]]
name = "aar"
extension = "aar"

[[types]]
name = "nbm"
`

func TestDecode(t *testing.T) {
	cfg, err := Decode(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if got := len(cfg.Exclusions.Artifacts); got != 2 {
		t.Errorf("len(Exclusions.Artifacts) = %d, want 2", got)
	}
	if cfg.Scopes.Build != nil {
		t.Errorf("Scopes.Build = %v, want nil (not set)", cfg.Scopes.Build)
	}
	if len(cfg.Types) != 2 || cfg.Types[1].Name != "nbm" {
		t.Errorf("Types = %+v", cfg.Types)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		toml string
		want string
	}{
		{"syntax", "[exclusions", "decode config"},
		{"unknown key", "[plugins]\nextra = 1", "unknown keys: plugins.extra"},
		{"bad exclusion", `[exclusions]
artifacts = ["no-colon"]`, "exclusions.artifacts"},
		{"bad plugin", `[plugins]
common = [":x"]`, "plugins.common"},
		{"bad default group", `[plugins]
default_group = "a b"`, "plugins.default_group"},
		{"type without name", `[[types]]
extension = "zip"`, "types[0]: missing name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.toml))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Fatalf("Decode() error = %v, want INVALID_CONFIG", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestEmptyConfigMatchesDefaults(t *testing.T) {
	cfg := &Config{}

	if cfg.ExclusionSet() != artifact.DefaultExclusions() {
		t.Error("empty config should reuse the default exclusion set")
	}

	p := cfg.Policy()
	def := builddep.DefaultPolicy()
	if !slices.Equal(p.BuildScopes, def.BuildScopes) || !slices.Equal(p.CommonPlugins, def.CommonPlugins) {
		t.Errorf("Policy() = %+v, want defaults", p)
	}
}

func TestConfigOptions(t *testing.T) {
	cfg, err := Decode(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	opts, err := cfg.Options(nil)
	if err != nil {
		t.Fatal(err)
	}

	project := &pom.Project{
		Dependencies: []pom.Dependency{
			{GroupID: "org.example", ArtifactID: "legacy-shim", Version: "2"},
			{GroupID: "javax.activation", ArtifactID: "activation"},
			{GroupID: "org.example", ArtifactID: "lib", Type: "aar", Version: "1"},
			{GroupID: "org.example", ArtifactID: "mod", Type: "nbm", Version: "1"},
		},
		Build: pom.Build{Plugins: []pom.Plugin{
			{ArtifactID: "maven-site-plugin", Version: "3.12",
				Dependencies: []pom.Dependency{{GroupID: "g", ArtifactID: "rt", Scope: "runtime"}}},
			{ArtifactID: "maven-jar-plugin"},
		}},
	}

	res := builddep.NewResult()
	builddep.New(opts).Extract(project, res)

	want := []artifact.Artifact{
		artifact.NewTyped("org.example", "lib", "aar", "", "1"),
		artifact.NewTyped("org.example", "mod", "nbm", "", "1"),
	}
	if !slices.Equal(res.Artifacts(), want) {
		t.Errorf("got %v, want %v", res.Artifacts(), want)
	}
}

func TestConfigReplace(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`
[exclusions]
replace = true

[plugins]
replace = true
`))
	if err != nil {
		t.Fatal(err)
	}

	ex := cfg.ExclusionSet()
	if ex.Contains(artifact.New("javax.activation", "activation", "")) {
		t.Error("replace should drop the built-in exclusion table")
	}
	if !ex.Contains(artifact.Dummy) {
		t.Error("placeholders must stay excluded")
	}

	p := cfg.Policy()
	if p.CommonPlugins == nil || len(p.CommonPlugins) != 0 {
		t.Errorf("CommonPlugins = %v, want explicit empty list", p.CommonPlugins)
	}

	opts, err := cfg.Options(nil)
	if err != nil {
		t.Fatal(err)
	}
	res := builddep.NewResult()
	builddep.New(opts).Extract(&pom.Project{Build: pom.Build{Plugins: []pom.Plugin{{ArtifactID: "maven-jar-plugin"}}}}, res)
	if res.Len() != 1 {
		t.Errorf("Len() = %d, want 1 without common plugins", res.Len())
	}
}

func TestOptionsValidates(t *testing.T) {
	cfg := &Config{Exclusions: Exclusions{Artifacts: []string{"bad"}}}
	if _, err := cfg.Options(nil); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Options() error = %v, want INVALID_CONFIG", err)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	cfg, err := Decode(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	opts, err := cfg.Options(nil)
	if err != nil {
		t.Fatal(err)
	}
	x := builddep.New(opts)

	snap := Snapshot(x.Policy(), x.Exclusions(), cfg.Registry())
	var buf bytes.Buffer
	if err := snap.Encode(&buf); err != nil {
		t.Fatal(err)
	}

	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode(snapshot) failed: %v\n%s", err, buf.String())
	}

	if got, want := decoded.ExclusionSet().Artifacts(), x.Exclusions().Artifacts(); !slices.Equal(got, want) {
		t.Errorf("exclusions = %v, want %v", got, want)
	}
	p := decoded.Policy()
	if !slices.Equal(p.CommonPlugins, x.Policy().CommonPlugins) {
		t.Errorf("common plugins = %v, want %v", p.CommonPlugins, x.Policy().CommonPlugins)
	}
	if !slices.Equal(p.PluginScopes, []string{"", "compile"}) {
		t.Errorf("plugin scopes = %q", p.PluginScopes)
	}
	if decoded.Registry().Len() != cfg.Registry().Len() {
		t.Errorf("types = %d, want %d", decoded.Registry().Len(), cfg.Registry().Len())
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(sample), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	_, err := Load(filepath.Join(dir, "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) = %v, want FILE_NOT_FOUND", err)
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("nope = 1"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err = Load(bad)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) || !strings.Contains(err.Error(), bad) {
		t.Errorf("Load(bad) = %v, want INVALID_CONFIG naming the file", err)
	}
}

func TestLoadDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg, err := LoadDefault("builddep")
	if err != nil {
		t.Fatalf("LoadDefault without file: %v", err)
	}
	if len(cfg.Types) != 0 {
		t.Errorf("expected empty config, got %+v", cfg)
	}

	if err := os.MkdirAll(filepath.Join(dir, "builddep"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "builddep", FileName), []byte(sample), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadDefault("builddep")
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Types) != 2 {
		t.Errorf("len(Types) = %d, want 2", len(cfg.Types))
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	path, err := DefaultPath("builddep")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/tmp/xdg", "builddep", FileName); path != want {
		t.Errorf("DefaultPath() = %q, want %q", path, want)
	}
}
