package builddep

import (
	"slices"

	"github.com/javapkg/builddep/pkg/artifact"
)

// DefaultPluginGroup is the groupId assumed for plugins that declare none.
const DefaultPluginGroup = "org.apache.maven.plugins"

// Scope values recognized by the default policy. The empty string stands for
// a declaration without a scope.
const (
	ScopeUnspecified = ""
	ScopeCompile     = "compile"
	ScopeProvided    = "provided"
	ScopeRuntime     = "runtime"
	ScopeTest        = "test"
)

// Policy decides which declared relationships are build dependencies.
type Policy struct {
	// BuildScopes lists the dependency scopes included in the result.
	BuildScopes []string
	// PluginScopes lists the plugin dependency scopes included in the result.
	PluginScopes []string
	// CommonPlugins are plugins the build runs implicitly. Matching ignores
	// version, so any declared version of a listed plugin is skipped.
	CommonPlugins []artifact.Artifact
	// DefaultPluginGroup replaces a blank plugin groupId.
	DefaultPluginGroup string
}

func defaultCommonPlugins() []artifact.Artifact {
	return []artifact.Artifact{
		// lifecycle mappings for packaging "jar"
		artifact.New(DefaultPluginGroup, "maven-resources-plugin", ""),
		artifact.New(DefaultPluginGroup, "maven-compiler-plugin", ""),
		artifact.New(DefaultPluginGroup, "maven-surefire-plugin", ""),
		artifact.New(DefaultPluginGroup, "maven-jar-plugin", ""),

		// invoked by the packaging tool itself
		artifact.New(DefaultPluginGroup, "maven-javadoc-plugin", ""),
	}
}

// DefaultPolicy returns the standard extraction policy.
// Each call returns a fresh copy that the caller may modify.
func DefaultPolicy() Policy {
	return Policy{
		BuildScopes:        []string{ScopeUnspecified, ScopeCompile, ScopeProvided, ScopeTest},
		PluginScopes:       []string{ScopeUnspecified, ScopeCompile, ScopeRuntime},
		CommonPlugins:      defaultCommonPlugins(),
		DefaultPluginGroup: DefaultPluginGroup,
	}
}

// WithDefaults returns a copy of p where nil lists and a blank plugin group
// are taken from [DefaultPolicy]. An explicitly empty, non-nil list is kept.
func (p Policy) WithDefaults() Policy {
	def := DefaultPolicy()
	out := Policy{
		BuildScopes:        slices.Clone(p.BuildScopes),
		PluginScopes:       slices.Clone(p.PluginScopes),
		CommonPlugins:      slices.Clone(p.CommonPlugins),
		DefaultPluginGroup: p.DefaultPluginGroup,
	}
	if out.BuildScopes == nil {
		out.BuildScopes = def.BuildScopes
	}
	if out.PluginScopes == nil {
		out.PluginScopes = def.PluginScopes
	}
	if out.CommonPlugins == nil {
		out.CommonPlugins = def.CommonPlugins
	}
	if out.DefaultPluginGroup == "" {
		out.DefaultPluginGroup = def.DefaultPluginGroup
	}
	return out
}
