// Package manifest loads dependency graphs from TOML build manifests.
//
// A manifest declares the packages of a build and what each one requires:
//
//	[project]
//	name = "sample"
//
//	[[package]]
//	name = "pkgA"
//	version = "1.0.1"
//	requires = ["pkgB@2.3.0", "pkgD@1.5.0"]
//
// Requires entries use the compact "name@version" reference form. A target
// that has no [[package]] block of its own is registered on first reference,
// so lock-file style manifests can list edges without redeclaring leaves.
package manifest

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/buildgraph/pkg/depgraph"
	"github.com/matzehuels/buildgraph/pkg/errors"
)

// Project holds manifest-level metadata.
type Project struct {
	Name string `toml:"name"`
}

// Declaration is a single [[package]] block: one package and its direct
// requirements.
type Declaration struct {
	Name     string   `toml:"name"`
	Version  string   `toml:"version"`
	Requires []string `toml:"requires"`
}

// File is a decoded build manifest.
type File struct {
	Project  Project       `toml:"project"`
	Packages []Declaration `toml:"package"`
}

// Load reads and parses the manifest at path.
// Returns an error with code FILE_NOT_FOUND if the file cannot be read, or
// INVALID_MANIFEST if the contents fail to decode or validate.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read manifest %s", path)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Parse decodes and validates manifest bytes.
func Parse(data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode manifest")
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) validate() error {
	if len(f.Packages) == 0 {
		return errors.New(errors.ErrCodeInvalidManifest, "manifest declares no packages")
	}
	seen := make(map[depgraph.Package]struct{}, len(f.Packages))
	for i, d := range f.Packages {
		if d.Name == "" {
			return errors.New(errors.ErrCodeInvalidManifest, "package %d: missing name", i)
		}
		if d.Version == "" {
			return errors.New(errors.ErrCodeInvalidManifest, "package %s: missing version", d.Name)
		}
		p := depgraph.Package{Name: d.Name, Version: d.Version}
		if _, dup := seen[p]; dup {
			return errors.New(errors.ErrCodeInvalidManifest, "package %s declared twice", p.Ref())
		}
		seen[p] = struct{}{}
	}
	return nil
}

// Graph builds the dependency graph declared by the manifest. Declarations
// are registered first so later requires edges cannot clobber in-degree
// counters, then every requires entry becomes an edge.
// Returns an error with code INVALID_REF for a malformed requires entry.
func (f *File) Graph() (*depgraph.Graph, error) {
	g := depgraph.New()
	for _, d := range f.Packages {
		g.AddPackage(depgraph.Package{Name: d.Name, Version: d.Version})
	}
	for _, d := range f.Packages {
		p := depgraph.Package{Name: d.Name, Version: d.Version}
		for _, ref := range d.Requires {
			dep, err := depgraph.ParseRef(ref)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidRef, err, "package %s", p.Ref())
			}
			g.AddDependency(p, dep)
		}
	}
	return g, nil
}
