package analyze

import (
	"testing"

	"github.com/matzehuels/buildgraph/pkg/depgraph"
)

func TestDependents_Direct(t *testing.T) {
	// a→b, b→c, a→d: b's dependents are {a}, c's are {b}.
	g := depgraph.New()
	g.AddDependency(pkg("a"), pkg("b"))
	g.AddDependency(pkg("b"), pkg("c"))
	g.AddDependency(pkg("a"), pkg("d"))

	got := Dependents(g, pkg("b"))
	if len(got) != 1 || got[0] != pkg("a") {
		t.Errorf("Dependents(b) = %v, want [a]", got)
	}

	// Transitive-only dependents are excluded: a requires c only via b.
	got = Dependents(g, pkg("c"))
	if len(got) != 1 || got[0] != pkg("b") {
		t.Errorf("Dependents(c) = %v, want [b]", got)
	}
}

func TestDependents_Multiple_Sorted(t *testing.T) {
	g := depgraph.New()
	g.AddDependency(pkg("z"), pkg("lib"))
	g.AddDependency(pkg("a"), pkg("lib"))
	g.AddDependency(pkg("m"), pkg("lib"))

	got := Dependents(g, pkg("lib"))
	want := []depgraph.Package{pkg("a"), pkg("m"), pkg("z")}
	if len(got) != len(want) {
		t.Fatalf("Dependents() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Dependents()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDependents_None(t *testing.T) {
	g := depgraph.New()
	g.AddDependency(pkg("a"), pkg("b"))

	if got := Dependents(g, pkg("a")); got != nil {
		t.Errorf("Dependents(a) = %v, want nil", got)
	}
}

func TestDependents_UnknownTarget(t *testing.T) {
	g := depgraph.New()
	g.AddDependency(pkg("a"), pkg("b"))

	if got := Dependents(g, pkg("ghost")); got != nil {
		t.Errorf("Dependents(ghost) = %v, want nil", got)
	}
}

func TestDependents_VersionExact(t *testing.T) {
	// Dependents of lib@1 must not include packages requiring lib@2.
	g := depgraph.New()
	v1 := depgraph.Package{Name: "lib", Version: "1.0.0"}
	v2 := depgraph.Package{Name: "lib", Version: "2.0.0"}
	g.AddDependency(pkg("a"), v1)
	g.AddDependency(pkg("b"), v2)

	got := Dependents(g, v1)
	if len(got) != 1 || got[0] != pkg("a") {
		t.Errorf("Dependents(lib@1) = %v, want [a]", got)
	}
}
