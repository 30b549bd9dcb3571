package artifact

import (
	"cmp"
	"strings"

	"github.com/javapkg/builddep/pkg/errors"
)

const (
	DefaultExtension = "jar"    // Extension used when none is declared
	DefaultVersion   = "SYSTEM" // Sentinel for an unspecified version
)

// Artifact identifies a build artifact.
//
// The struct is comparable: == is full coordinate equality.
type Artifact struct {
	GroupID    string `json:"groupId"`
	ArtifactID string `json:"artifactId"`
	Extension  string `json:"extension"`
	Classifier string `json:"classifier,omitempty"`
	Version    string `json:"version"`
}

// New returns an artifact with the default extension and no classifier.
// A blank version becomes [DefaultVersion].
func New(groupID, artifactID, version string) Artifact {
	return NewTyped(groupID, artifactID, "", "", version)
}

// NewTyped returns an artifact with every field given explicitly.
// A blank extension becomes [DefaultExtension] and a blank version
// becomes [DefaultVersion].
func NewTyped(groupID, artifactID, extension, classifier, version string) Artifact {
	return Artifact{
		GroupID:    groupID,
		ArtifactID: artifactID,
		Extension:  orDefault(extension, DefaultExtension),
		Classifier: classifier,
		Version:    orDefault(version, DefaultVersion),
	}
}

// ClearVersionAndExtension returns a copy with extension and version reset
// to the sentinels. Used for exclusion matching only.
func (a Artifact) ClearVersionAndExtension() Artifact {
	a.Extension = DefaultExtension
	a.Version = DefaultVersion
	return a
}

// WithVersion returns a copy with the given version; blank means [DefaultVersion].
func (a Artifact) WithVersion(version string) Artifact {
	a.Version = orDefault(version, DefaultVersion)
	return a
}

// WithExtension returns a copy with the given extension; blank means [DefaultExtension].
func (a Artifact) WithExtension(extension string) Artifact {
	a.Extension = orDefault(extension, DefaultExtension)
	return a
}

// Versionless returns a copy with the version reset to [DefaultVersion].
func (a Artifact) Versionless() Artifact {
	return a.WithVersion(DefaultVersion)
}

// HasDefaultVersion reports whether the version is the unspecified sentinel.
func (a Artifact) HasDefaultVersion() bool {
	return a.Version == DefaultVersion
}

// Key returns the versionless "groupId:artifactId" form.
func (a Artifact) Key() string {
	return a.GroupID + ":" + a.ArtifactID
}

// String formats the artifact as groupId:artifactId[:extension[:classifier]]:version.
// The extension is omitted when it is the default and there is no classifier.
func (a Artifact) String() string {
	var b strings.Builder
	b.WriteString(a.GroupID)
	b.WriteByte(':')
	b.WriteString(a.ArtifactID)
	if a.Classifier != "" || a.Extension != DefaultExtension {
		b.WriteByte(':')
		b.WriteString(a.Extension)
		if a.Classifier != "" {
			b.WriteByte(':')
			b.WriteString(a.Classifier)
		}
	}
	b.WriteByte(':')
	b.WriteString(a.Version)
	return b.String()
}

// Compare orders artifacts lexicographically by groupId, artifactId,
// extension, classifier and version.
func Compare(a, b Artifact) int {
	return cmp.Or(
		strings.Compare(a.GroupID, b.GroupID),
		strings.Compare(a.ArtifactID, b.ArtifactID),
		strings.Compare(a.Extension, b.Extension),
		strings.Compare(a.Classifier, b.Classifier),
		strings.Compare(a.Version, b.Version),
	)
}

// Parse reads a coordinate string. Accepted forms:
//
//	groupId:artifactId
//	groupId:artifactId:version
//	groupId:artifactId:extension:version
//	groupId:artifactId:extension:classifier:version
//
// Empty extension and version parts take their defaults.
func Parse(s string) (Artifact, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	var a Artifact
	switch len(parts) {
	case 2:
		a = New(parts[0], parts[1], "")
	case 3:
		a = New(parts[0], parts[1], parts[2])
	case 4:
		a = NewTyped(parts[0], parts[1], parts[2], "", parts[3])
	case 5:
		a = NewTyped(parts[0], parts[1], parts[2], parts[3], parts[4])
	default:
		return Artifact{}, errors.New(errors.ErrCodeInvalidCoordinate, "invalid coordinate %q: expected 2 to 5 ':'-separated parts", s)
	}

	if err := errors.ValidateCoordinatePart("groupId", a.GroupID); err != nil {
		return Artifact{}, errors.Wrap(errors.ErrCodeInvalidCoordinate, err, "invalid coordinate %q", s)
	}
	if err := errors.ValidateCoordinatePart("artifactId", a.ArtifactID); err != nil {
		return Artifact{}, errors.Wrap(errors.ErrCodeInvalidCoordinate, err, "invalid coordinate %q", s)
	}
	return a, nil
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
