package pom

import (
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/javapkg/builddep/pkg/errors"
)

// ParseFile reads and parses the descriptor at path.
func ParseFile(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "descriptor %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read descriptor %s", path)
	}
	p, err := ParseBytes(data)
	if e, ok := err.(*errors.Error); ok {
		return nil, &errors.Error{Code: e.Code, Message: path + ": " + e.Message, Cause: e.Cause}
	}
	return p, err
}

// ParseBytes parses a descriptor held in memory.
func ParseBytes(data []byte) (*Project, error) {
	return Parse(bytes.NewReader(data))
}

// Parse reads a descriptor from r.
func Parse(r io.Reader) (*Project, error) {
	var doc pomProject
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDescriptor, err, "malformed descriptor")
	}
	return doc.project()
}

func (doc *pomProject) project() (*Project, error) {
	p := &Project{
		GroupID:    trim(doc.GroupID),
		ArtifactID: trim(doc.ArtifactID),
		Version:    trim(doc.Version),
		Packaging:  trim(doc.Packaging),
	}

	if doc.Parent != nil {
		parent := Parent{
			GroupID:    trim(doc.Parent.GroupID),
			ArtifactID: trim(doc.Parent.ArtifactID),
			Version:    trim(doc.Parent.Version),
		}
		if err := requireCoordinate("parent", parent.GroupID, parent.ArtifactID); err != nil {
			return nil, err
		}
		p.Parent = &parent
	}

	deps, err := convertDependencies("dependency", doc.Dependencies)
	if err != nil {
		return nil, err
	}
	p.Dependencies = deps

	for i, e := range doc.Build.Extensions {
		ext := Extension{
			GroupID:    trim(e.GroupID),
			ArtifactID: trim(e.ArtifactID),
			Version:    trim(e.Version),
		}
		if err := requireCoordinate(ordinal("extension", i), ext.GroupID, ext.ArtifactID); err != nil {
			return nil, err
		}
		p.Build.Extensions = append(p.Build.Extensions, ext)
	}

	for i, pl := range doc.Build.Plugins {
		plugin := Plugin{
			GroupID:    trim(pl.GroupID),
			ArtifactID: trim(pl.ArtifactID),
			Version:    trim(pl.Version),
		}
		where := ordinal("plugin", i)
		if plugin.ArtifactID == "" {
			return nil, errors.New(errors.ErrCodeInvalidDescriptor, "%s: missing artifactId", where)
		}
		plugin.Dependencies, err = convertDependencies(where+" dependency", pl.Dependencies)
		if err != nil {
			return nil, err
		}
		p.Build.Plugins = append(p.Build.Plugins, plugin)
	}

	return p, nil
}

func convertDependencies(kind string, in []pomDependency) ([]Dependency, error) {
	var out []Dependency
	for i, d := range in {
		where := ordinal(kind, i)
		dep := Dependency{
			GroupID:    trim(d.GroupID),
			ArtifactID: trim(d.ArtifactID),
			Type:       trim(d.Type),
			Classifier: trim(d.Classifier),
			Version:    trim(d.Version),
			Scope:      trim(d.Scope),
		}
		if err := requireCoordinate(where, dep.GroupID, dep.ArtifactID); err != nil {
			return nil, err
		}
		if d.Optional != nil {
			v, err := strconv.ParseBool(trim(*d.Optional))
			if err != nil {
				return nil, errors.New(errors.ErrCodeInvalidDescriptor, "%s: optional must be true or false, got %q", where, *d.Optional)
			}
			dep.Optional = &v
		}
		out = append(out, dep)
	}
	return out, nil
}

func requireCoordinate(where, groupID, artifactID string) error {
	if groupID == "" {
		return errors.New(errors.ErrCodeInvalidDescriptor, "%s: missing groupId", where)
	}
	if artifactID == "" {
		return errors.New(errors.ErrCodeInvalidDescriptor, "%s: missing artifactId", where)
	}
	return nil
}

func ordinal(kind string, i int) string {
	return kind + " #" + strconv.Itoa(i+1)
}

func trim(s string) string { return strings.TrimSpace(s) }

type pomProject struct {
	XMLName      xml.Name        `xml:"project"`
	GroupID      string          `xml:"groupId"`
	ArtifactID   string          `xml:"artifactId"`
	Version      string          `xml:"version"`
	Packaging    string          `xml:"packaging"`
	Parent       *pomParent      `xml:"parent"`
	Dependencies []pomDependency `xml:"dependencies>dependency"`
	Build        pomBuild        `xml:"build"`
}

type pomParent struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}

type pomDependency struct {
	GroupID    string  `xml:"groupId"`
	ArtifactID string  `xml:"artifactId"`
	Type       string  `xml:"type"`
	Classifier string  `xml:"classifier"`
	Version    string  `xml:"version"`
	Scope      string  `xml:"scope"`
	Optional   *string `xml:"optional"`
}

type pomBuild struct {
	Extensions []pomExtension `xml:"extensions>extension"`
	Plugins    []pomPlugin    `xml:"plugins>plugin"`
}

type pomExtension struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}

type pomPlugin struct {
	GroupID      string          `xml:"groupId"`
	ArtifactID   string          `xml:"artifactId"`
	Version      string          `xml:"version"`
	Dependencies []pomDependency `xml:"dependencies>dependency"`
}
