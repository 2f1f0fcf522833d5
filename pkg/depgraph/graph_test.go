package depgraph

import (
	"errors"
	"testing"
)

var (
	pkgA = Package{Name: "pkgA", Version: "1.0.0"}
	pkgB = Package{Name: "pkgB", Version: "1.0.0"}
	pkgC = Package{Name: "pkgC", Version: "1.0.0"}
)

func TestAddPackage_Idempotent(t *testing.T) {
	g := New()
	g.AddPackage(pkgA)
	g.AddPackage(pkgB)
	g.AddDependency(pkgA, pkgB)

	// Re-adding keeps the adjacency set.
	g.AddPackage(pkgA)

	deps, err := g.Dependencies(pkgA)
	if err != nil {
		t.Fatalf("Dependencies() error = %v", err)
	}
	if len(deps) != 1 || deps[0] != pkgB {
		t.Errorf("Dependencies() = %v, want [%v]", deps, pkgB)
	}
}

func TestAddPackage_ResetsInDegree(t *testing.T) {
	g := New()
	g.AddPackage(pkgA)
	g.AddPackage(pkgB)
	g.AddDependency(pkgA, pkgB)

	if n, _ := g.InDegree(pkgB); n != 1 {
		t.Fatalf("InDegree(pkgB) = %d, want 1", n)
	}

	// Re-registering resets the counter, as documented.
	g.AddPackage(pkgB)
	if n, _ := g.InDegree(pkgB); n != 0 {
		t.Errorf("InDegree(pkgB) after AddPackage = %d, want 0", n)
	}

	// ResetInDegrees restores counters from the edge sets.
	g.ResetInDegrees()
	if n, _ := g.InDegree(pkgB); n != 1 {
		t.Errorf("InDegree(pkgB) after ResetInDegrees = %d, want 1", n)
	}
}

func TestAddDependency_AutoRegisters(t *testing.T) {
	g := New()
	g.AddDependency(pkgA, pkgB)

	if !g.Exists(pkgA) {
		t.Error("Exists(pkgA) = false, want true")
	}
	if !g.Exists(pkgB) {
		t.Error("Exists(pkgB) = false, want true")
	}
	if n, err := g.InDegree(pkgB); err != nil || n != 1 {
		t.Errorf("InDegree(pkgB) = %d, %v, want 1, nil", n, err)
	}
	if n, err := g.InDegree(pkgA); err != nil || n != 0 {
		t.Errorf("InDegree(pkgA) = %d, %v, want 0, nil", n, err)
	}
}

func TestAddDependency_SetSemantics(t *testing.T) {
	g := New()
	g.AddDependency(pkgA, pkgB)
	g.AddDependency(pkgA, pkgB)

	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
	// A collapsed edge must not inflate the counter.
	if n, _ := g.InDegree(pkgB); n != 1 {
		t.Errorf("InDegree(pkgB) = %d, want 1", n)
	}
}

func TestDependencies_NotFound(t *testing.T) {
	g := New()

	_, err := g.Dependencies(pkgA)
	if !errors.Is(err, ErrPackageNotFound) {
		t.Errorf("Dependencies() error = %v, want ErrPackageNotFound", err)
	}
}

func TestInDegree_NotFound(t *testing.T) {
	g := New()

	_, err := g.InDegree(pkgA)
	if !errors.Is(err, ErrPackageNotFound) {
		t.Errorf("InDegree() error = %v, want ErrPackageNotFound", err)
	}
}

func TestSetInDegree(t *testing.T) {
	g := New()
	g.AddPackage(pkgA)
	g.SetInDegree(pkgA, 7)

	if n, _ := g.InDegree(pkgA); n != 7 {
		t.Errorf("InDegree(pkgA) = %d, want 7", n)
	}
}

func TestVersionsAreDistinctPackages(t *testing.T) {
	g := New()
	v1 := Package{Name: "lib", Version: "1.0.0"}
	v2 := Package{Name: "lib", Version: "2.0.0"}
	g.AddPackage(v1)
	g.AddPackage(v2)

	if g.Len() != 2 {
		t.Errorf("Len() = %d, want 2", g.Len())
	}
	if !g.Exists(v1) || !g.Exists(v2) {
		t.Error("both versions should be registered")
	}
}

func TestSelfDependencyAllowed(t *testing.T) {
	g := New()
	g.AddPackage(pkgA)
	g.AddDependency(pkgA, pkgA)

	if !g.DependsOn(pkgA, pkgA) {
		t.Error("DependsOn(pkgA, pkgA) = false, want true")
	}
	if n, _ := g.InDegree(pkgA); n != 1 {
		t.Errorf("InDegree(pkgA) = %d, want 1", n)
	}
}

func TestPackagesAndEdges_Sorted(t *testing.T) {
	g := New()
	g.AddDependency(pkgC, pkgA)
	g.AddDependency(pkgB, pkgA)

	pkgs := g.Packages()
	want := []Package{pkgA, pkgB, pkgC}
	if len(pkgs) != len(want) {
		t.Fatalf("Packages() len = %d, want %d", len(pkgs), len(want))
	}
	for i := range want {
		if pkgs[i] != want[i] {
			t.Errorf("Packages()[%d] = %v, want %v", i, pkgs[i], want[i])
		}
	}

	edges := g.Edges()
	if len(edges) != 2 {
		t.Fatalf("Edges() len = %d, want 2", len(edges))
	}
	if edges[0].From != pkgB || edges[1].From != pkgC {
		t.Errorf("Edges() not sorted by source: %v", edges)
	}
}
