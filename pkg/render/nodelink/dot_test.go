package nodelink

import (
	"strings"
	"testing"

	"github.com/javapkg/builddep/pkg/artifact"
)

func TestToDOT(t *testing.T) {
	root := artifact.New("org.example", "app", "1.0")
	deps := []artifact.Artifact{
		artifact.NewTyped("org.example", "parent", "pom", "", "5"),
		artifact.New("junit", "junit", ""),
	}

	dot := ToDOT([]Graph{{Project: root, Deps: deps}}, Options{})

	for _, want := range []string{
		"digraph G {",
		`"org.example:app:1.0" [label="org.example:app:1.0"`,
		`"org.example:app:1.0" -> "org.example:parent:pom:5";`,
		`"org.example:app:1.0" -> "junit:junit:SYSTEM";`,
		"fillcolor=lightyellow",
		`style="rounded,filled,dashed"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q:\n%s", want, dot)
		}
	}

	if strings.Index(dot, "parent:pom:5\";") > strings.Index(dot, "junit:SYSTEM\";") {
		t.Error("edges should follow extraction order")
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT([]Graph{{
		Project: artifact.New("g", "root", "1"),
		Deps:    []artifact.Artifact{artifact.NewTyped("g", "lib", "jar", "tests", "2")},
	}}, Options{Detailed: true})

	want := `label="g:lib\nextension: jar\nclassifier: tests\nversion: 2"`
	if !strings.Contains(dot, want) {
		t.Errorf("DOT output missing %q:\n%s", want, dot)
	}
}

func TestToDOTEmpty(t *testing.T) {
	dot := ToDOT([]Graph{{Project: artifact.New("g", "root", "1")}}, Options{})
	if strings.Contains(dot, "->") {
		t.Errorf("no edges expected:\n%s", dot)
	}
}

func TestToDOTSharedDependency(t *testing.T) {
	shared := artifact.New("org.slf4j", "slf4j-api", "2.0")
	dot := ToDOT([]Graph{
		{Project: artifact.New("g", "a", "1"), Deps: []artifact.Artifact{shared}},
		{Project: artifact.New("g", "b", "1"), Deps: []artifact.Artifact{shared}},
	}, Options{})

	if n := strings.Count(dot, `"org.slf4j:slf4j-api:2.0" [`); n != 1 {
		t.Errorf("shared node declared %d times, want 1", n)
	}
	if n := strings.Count(dot, `-> "org.slf4j:slf4j-api:2.0"`); n != 2 {
		t.Errorf("got %d edges to shared node, want 2", n)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))

	if !strings.Contains(out, `width="100" height="50"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}
	if got := normalizeViewBox([]byte("<svg></svg>")); string(got) != "<svg></svg>" {
		t.Errorf("svg without viewBox should be unchanged, got %s", got)
	}
}
