package builddep

import (
	"encoding/json"
	"testing"

	"github.com/javapkg/builddep/pkg/artifact"
)

func TestResult(t *testing.T) {
	r := NewResult()
	r.AddDependencyArtifact(artifact.New("b", "b", "1"))
	r.AddDependencyArtifact(artifact.New("a", "a", "1"))
	r.AddDependencyArtifact(artifact.New("b", "b", "1"))

	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}
	if got := r.Artifacts()[0].ArtifactID; got != "b" {
		t.Errorf("first = %q, want insertion order", got)
	}
	if got := r.Sorted()[0].ArtifactID; got != "a" {
		t.Errorf("sorted first = %q, want a", got)
	}
	if !r.Contains(artifact.New("a", "a", "1")) {
		t.Error("Contains(a:a:1) = false")
	}
}

func TestResultMerge(t *testing.T) {
	x := NewResult()
	x.AddDependencyArtifact(artifact.New("a", "a", "1"))

	y := NewResult()
	y.AddDependencyArtifact(artifact.New("b", "b", "1"))
	y.AddDependencyArtifact(artifact.New("a", "a", "1"))

	x.Merge(y)
	if x.Len() != 2 {
		t.Errorf("Len() = %d, want 2", x.Len())
	}
	if got := x.Artifacts()[1].ArtifactID; got != "b" {
		t.Errorf("merged order = %v", x.Artifacts())
	}
}

func TestResultJSON(t *testing.T) {
	r := NewResult()
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]" {
		t.Errorf("empty result = %s, want []", data)
	}

	r.AddDependencyArtifact(artifact.NewTyped("g", "a", "pom", "", "1"))
	data, err = json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	want := `[{"groupId":"g","artifactId":"a","extension":"pom","version":"1"}]`
	if string(data) != want {
		t.Errorf("MarshalJSON() = %s, want %s", data, want)
	}
}
