package builddep

import (
	"slices"
	"strings"

	"github.com/javapkg/builddep/pkg/artifact"
	"github.com/javapkg/builddep/pkg/pom"
	"github.com/javapkg/builddep/pkg/typereg"
)

// Sink receives extracted artifacts. Implementations are expected to drop
// duplicates and keep insertion order; [Result] does both.
type Sink interface {
	AddDependencyArtifact(a artifact.Artifact)
}

// Options configures an [Extractor]. Zero values select the defaults.
type Options struct {
	Policy     *Policy              // Inclusion policy (default: DefaultPolicy())
	Exclusions *artifact.Exclusions // Never-reported patterns (default: artifact.DefaultExclusions())
	Types      typereg.Resolver     // Typed coordinate construction (default: typereg.Default())
	Logger     func(string, ...any) // Debug callback for skipped relationships (optional)
}

// WithDefaults returns a copy of Options with nil fields replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.Policy == nil {
		p := DefaultPolicy()
		opts.Policy = &p
	}
	if opts.Exclusions == nil {
		opts.Exclusions = artifact.DefaultExclusions()
	}
	if opts.Types == nil {
		opts.Types = typereg.Default()
	}
	if opts.Logger == nil {
		opts.Logger = func(string, ...any) {}
	}
	return opts
}

// Extractor applies a [Policy] to project descriptors.
type Extractor struct {
	buildScopes   map[string]bool
	pluginScopes  map[string]bool
	commonPlugins *artifact.Set
	pluginGroup   string
	exclusions    *artifact.Exclusions
	types         typereg.Resolver
	logf          func(string, ...any)
}

// New creates an extractor. The policy is copied, so later changes to
// opts.Policy do not affect the extractor.
func New(opts Options) *Extractor {
	opts = opts.WithDefaults()
	policy := opts.Policy.WithDefaults()

	x := &Extractor{
		buildScopes:   scopeSet(policy.BuildScopes),
		pluginScopes:  scopeSet(policy.PluginScopes),
		commonPlugins: &artifact.Set{},
		pluginGroup:   policy.DefaultPluginGroup,
		exclusions:    opts.Exclusions,
		types:         opts.Types,
		logf:          opts.Logger,
	}
	for _, p := range policy.CommonPlugins {
		x.commonPlugins.Add(versionless(p))
	}
	return x
}

// Policy returns the effective policy of x.
func (x *Extractor) Policy() Policy {
	return Policy{
		BuildScopes:        scopeList(x.buildScopes),
		PluginScopes:       scopeList(x.pluginScopes),
		CommonPlugins:      x.commonPlugins.Artifacts(),
		DefaultPluginGroup: x.pluginGroup,
	}
}

// Exclusions returns the exclusion set consulted by x.
func (x *Extractor) Exclusions() *artifact.Exclusions {
	return x.exclusions
}

// Extract reports the build dependencies of p to sink, in descriptor order:
// parent, dependencies, build extensions, then each build plugin followed by
// its plugin dependencies. p is not modified. A nil p reports nothing.
func (x *Extractor) Extract(p *pom.Project, sink Sink) {
	if p == nil {
		return
	}
	if p.Parent != nil {
		x.visitParent(*p.Parent, sink)
	}
	for _, d := range p.Dependencies {
		x.visitDependency(d, sink)
	}
	for _, e := range p.Build.Extensions {
		x.visitExtension(e, sink)
	}
	for _, pl := range p.Build.Plugins {
		x.visitPlugin(pl, sink)
		for _, d := range pl.Dependencies {
			x.visitPluginDependency(d, sink)
		}
	}
}

// ExtractAll extracts every project into a single result, in argument order.
func (x *Extractor) ExtractAll(projects ...*pom.Project) *Result {
	res := NewResult()
	for _, p := range projects {
		x.Extract(p, res)
	}
	return res
}

func (x *Extractor) visitParent(p pom.Parent, sink Sink) {
	x.add(sink, "parent", artifact.NewTyped(p.GroupID, p.ArtifactID, "pom", "", p.Version))
}

func (x *Extractor) visitDependency(d pom.Dependency, sink Sink) {
	if !x.buildScopes[normScope(d.Scope)] {
		x.logf("skip dependency %s:%s: scope %q", d.GroupID, d.ArtifactID, d.Scope)
		return
	}
	x.add(sink, "dependency", x.typed(d))
}

func (x *Extractor) visitExtension(e pom.Extension, sink Sink) {
	x.add(sink, "extension", artifact.New(e.GroupID, e.ArtifactID, e.Version))
}

func (x *Extractor) visitPlugin(p pom.Plugin, sink Sink) {
	groupID := p.GroupID
	if strings.TrimSpace(groupID) == "" {
		groupID = x.pluginGroup
	}
	a := artifact.New(groupID, p.ArtifactID, p.Version)
	if x.commonPlugins.Contains(versionless(a)) {
		x.logf("skip common plugin %s", a)
		return
	}
	x.add(sink, "plugin", a)
}

func (x *Extractor) visitPluginDependency(d pom.Dependency, sink Sink) {
	if !x.pluginScopes[normScope(d.Scope)] {
		x.logf("skip plugin dependency %s:%s: scope %q", d.GroupID, d.ArtifactID, d.Scope)
		return
	}
	x.add(sink, "plugin dependency", x.typed(d))
}

func (x *Extractor) typed(d pom.Dependency) artifact.Artifact {
	var optional *bool
	if d.Optional != nil {
		v := *d.Optional
		optional = &v
	}
	return x.types.Resolve(d.GroupID, d.ArtifactID, d.Type, d.Classifier, d.Version, optional)
}

func (x *Extractor) add(sink Sink, kind string, a artifact.Artifact) {
	if x.exclusions.Contains(a) {
		x.logf("skip excluded %s %s", kind, a)
		return
	}
	sink.AddDependencyArtifact(a)
}

// versionless is the identity used for common plugin matching.
func versionless(a artifact.Artifact) artifact.Artifact {
	return a.WithExtension(artifact.DefaultExtension).Versionless()
}

func normScope(s string) string {
	return strings.TrimSpace(s)
}

func scopeSet(scopes []string) map[string]bool {
	m := make(map[string]bool, len(scopes))
	for _, s := range scopes {
		m[normScope(s)] = true
	}
	return m
}

func scopeList(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for s := range m {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}
