package dot

import (
	"sort"
	"strings"
	"testing"

	"github.com/matzehuels/buildgraph/pkg/depgraph"
)

func TestMarshal_HeaderAndFooter(t *testing.T) {
	g := depgraph.New()
	out := Marshal(g)

	if out != "digraph dependencies {\n}\n" {
		t.Errorf("Marshal(empty) = %q, want %q", out, "digraph dependencies {\n}\n")
	}
}

func TestMarshal_EdgeLines(t *testing.T) {
	g := depgraph.New()
	a := depgraph.Package{Name: "pkgA", Version: "1.0.1"}
	b := depgraph.Package{Name: "pkgB", Version: "2.3.0"}
	c := depgraph.Package{Name: "pkgC", Version: "3.1.2"}
	d := depgraph.Package{Name: "pkgD", Version: "1.5.0"}
	g.AddDependency(a, b)
	g.AddDependency(b, c)
	g.AddDependency(a, d)

	out := Marshal(g)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	if lines[0] != "digraph dependencies {" {
		t.Errorf("first line = %q, want header", lines[0])
	}
	if lines[len(lines)-1] != "}" {
		t.Errorf("last line = %q, want footer", lines[len(lines)-1])
	}

	// Line order is an implementation convenience; compare as a set.
	body := lines[1 : len(lines)-1]
	sort.Strings(body)
	want := []string{
		`  "pkgA 1.0.1" -> "pkgB 2.3.0";`,
		`  "pkgA 1.0.1" -> "pkgD 1.5.0";`,
		`  "pkgB 2.3.0" -> "pkgC 3.1.2";`,
	}
	if len(body) != len(want) {
		t.Fatalf("edge line count = %d, want %d\n%s", len(body), len(want), out)
	}
	for i := range want {
		if body[i] != want[i] {
			t.Errorf("edge line = %q, want %q", body[i], want[i])
		}
	}
}

func TestMarshal_Deterministic(t *testing.T) {
	build := func() *depgraph.Graph {
		g := depgraph.New()
		for _, e := range [][2]string{{"x", "y"}, {"x", "z"}, {"w", "x"}, {"y", "z"}} {
			g.AddDependency(
				depgraph.Package{Name: e[0], Version: "1.0.0"},
				depgraph.Package{Name: e[1], Version: "1.0.0"},
			)
		}
		return g
	}

	first := Marshal(build())
	for range 10 {
		if got := Marshal(build()); got != first {
			t.Fatalf("Marshal not deterministic:\n%s\nvs\n%s", first, got)
		}
	}
}

func TestMarshal_IsolatedPackagesOmitted(t *testing.T) {
	g := depgraph.New()
	g.AddPackage(depgraph.Package{Name: "lonely", Version: "1.0.0"})

	out := Marshal(g)
	if strings.Contains(out, "lonely") {
		t.Errorf("Marshal() includes edgeless package:\n%s", out)
	}
}
