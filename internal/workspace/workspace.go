package workspace

import (
	"fmt"

	"github.com/fbkclanna/relgate/internal/manifest"
)

// Package is one loaded workspace member. Version is the effective version:
// for a member that inherits the workspace release it holds the release
// value and InheritsRelease is true.
type Package struct {
	Name            string
	Version         string
	InheritsRelease bool
	Location        string
	Dependencies    map[string]manifest.Dependency
	Doc             *manifest.Document
}

// Workspace is the full loaded set of members, indexed by package name.
// Order records index order so that reports stay deterministic.
type Workspace struct {
	Name         string
	Release      string
	HasRelease   bool
	RootLocation string
	RootDoc      *manifest.Document
	Packages     map[string]*Package
	Order        []string
}

// Load produces a Workspace from a manifest source in two passes: first
// every member is parsed and indexed by name, then each dependency is
// marked internal iff its name is a key in that index. A structural
// problem aborts the load; no partial workspace is ever returned.
func Load(src Source) (*Workspace, error) {
	rootLoc, rootDoc, err := src.Root()
	if err != nil {
		return nil, &MalformedManifestError{Location: rootLoc, Err: err}
	}
	root, err := manifest.ParseRoot(rootDoc)
	if err != nil {
		return nil, &MalformedManifestError{Location: rootLoc, Err: err}
	}

	locs, err := src.Members()
	if err != nil {
		return nil, &MalformedManifestError{Location: rootLoc, Err: err}
	}

	ws := &Workspace{
		Name:         root.Name,
		Release:      root.Release,
		HasRelease:   root.HasRelease,
		RootLocation: rootLoc,
		RootDoc:      rootDoc,
		Packages:     make(map[string]*Package, len(locs)),
		Order:        make([]string, 0, len(locs)),
	}

	for _, loc := range locs {
		doc, err := src.Read(loc)
		if err != nil {
			return nil, &MalformedManifestError{Location: loc, Err: err}
		}
		m, err := manifest.ParseManifest(doc)
		if err != nil {
			return nil, &MalformedManifestError{Location: loc, Err: err}
		}
		if prev, ok := ws.Packages[m.Name]; ok {
			return nil, &DuplicatePackageError{Name: m.Name, First: prev.Location, Second: loc}
		}

		p := &Package{
			Name:            m.Name,
			Version:         m.Version,
			InheritsRelease: m.InheritsRelease,
			Location:        loc,
			Dependencies:    m.Dependencies,
			Doc:             doc,
		}
		if m.InheritsRelease {
			if !root.HasRelease {
				return nil, &MalformedManifestError{
					Location: loc,
					Err:      fmt.Errorf("version is %q but the workspace root declares no release", manifest.VersionInherited),
				}
			}
			p.Version = root.Release
		}
		ws.Packages[p.Name] = p
		ws.Order = append(ws.Order, p.Name)
	}

	// Second pass: resolve internal dependencies against the name index.
	for _, name := range ws.Order {
		p := ws.Packages[name]
		for depName, dep := range p.Dependencies {
			if _, ok := ws.Packages[depName]; ok {
				dep.Internal = true
				p.Dependencies[depName] = dep
			}
		}
	}

	return ws, nil
}
