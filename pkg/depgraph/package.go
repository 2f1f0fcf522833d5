package depgraph

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRef is returned by [ParseRef] when a package reference is not of
// the form "name@version" with both parts non-empty.
var ErrInvalidRef = errors.New("package ref must be name@version")

// Package identifies a package by exact name and version. Two packages are
// equal iff both fields match - there is no semantic-version comparison.
//
// Package is a comparable value type and is used as a map key throughout the
// graph, which keeps equality and hashing consistent by construction. The
// zero value is not a valid package; both fields must be non-empty.
type Package struct {
	Name    string
	Version string
}

// String returns the display form "name version", matching the node labels
// emitted in DOT output.
func (p Package) String() string {
	return p.Name + " " + p.Version
}

// Ref returns the compact form "name@version" used on the command line and
// in manifest requires lists.
func (p Package) Ref() string {
	return p.Name + "@" + p.Version
}

// ParseRef parses a "name@version" reference into a Package.
// Returns ErrInvalidRef if either part is missing. The version may itself
// contain '@' characters; only the first separator is significant.
func ParseRef(ref string) (Package, error) {
	name, version, ok := strings.Cut(ref, "@")
	if !ok || name == "" || version == "" {
		return Package{}, fmt.Errorf("%q: %w", ref, ErrInvalidRef)
	}
	return Package{Name: name, Version: version}, nil
}

// ComparePackages orders packages by name, then version. It is the tie-break
// used wherever deterministic output is produced from the unordered graph.
func ComparePackages(a, b Package) int {
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return strings.Compare(a.Version, b.Version)
}
