package manifest

import (
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseRoot interprets a Document as the workspace root manifest.
func ParseRoot(doc *Document) (*Root, error) {
	if schema, ok := doc.Scalar("version"); !ok || schema != "1" {
		return nil, fmt.Errorf("unsupported workspace schema version: %q (expected 1)", schema)
	}
	name, ok := doc.Scalar("name")
	if !ok || name == "" {
		return nil, fmt.Errorf("workspace: name is required")
	}

	r := &Root{Name: name}
	if rel, ok := doc.Scalar("release"); ok {
		if rel == "" {
			return nil, fmt.Errorf("workspace: release must not be empty when declared")
		}
		r.Release = rel
		r.HasRelease = true
	}

	members, ok := doc.Strings("members")
	if !ok {
		return nil, fmt.Errorf("workspace: members is required and must be a list of paths")
	}
	if len(members) == 0 {
		return nil, fmt.Errorf("workspace: members must not be empty")
	}
	seen := make(map[string]bool, len(members))
	for i, m := range members {
		if err := validateMemberPath(i, m); err != nil {
			return nil, err
		}
		if seen[m] {
			return nil, fmt.Errorf("workspace: duplicate member path %q", m)
		}
		seen[m] = true
	}
	r.Members = members
	return r, nil
}

// ParseManifest interprets a Document as one member package manifest.
func ParseManifest(doc *Document) (*Manifest, error) {
	name, ok := doc.Scalar("name")
	if !ok || name == "" {
		return nil, fmt.Errorf("manifest: name is required")
	}
	ver, ok := doc.Scalar("version")
	if !ok || ver == "" {
		return nil, fmt.Errorf("manifest: version is required")
	}

	m := &Manifest{Name: name, Dependencies: map[string]Dependency{}}
	if ver == VersionInherited {
		m.InheritsRelease = true
	} else {
		m.Version = ver
	}

	deps := lookup(doc.mapping(), "dependencies")
	if deps == nil {
		return m, nil
	}
	if deps.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("manifest: dependencies must be a mapping")
	}
	for i := 0; i+1 < len(deps.Content); i += 2 {
		depName := deps.Content[i].Value
		if _, dup := m.Dependencies[depName]; dup {
			return nil, fmt.Errorf("manifest: duplicate dependency %q", depName)
		}
		dep, err := parseDependency(depName, deps.Content[i+1])
		if err != nil {
			return nil, err
		}
		m.Dependencies[depName] = dep
	}
	return m, nil
}

// parseDependency handles both entry forms: the shorthand scalar
// "name: 1.2.3" (a bare version constraint) and the mapping form with
// optional path and version fields.
func parseDependency(name string, n *yaml.Node) (Dependency, error) {
	var d Dependency
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return d, nil
		}
		d.Version = n.Value
		d.Pinned = true
	case yaml.MappingNode:
		if p := lookup(n, "path"); p != nil && p.Kind == yaml.ScalarNode {
			d.Path = p.Value
		}
		if v := lookup(n, "version"); v != nil {
			if v.Kind != yaml.ScalarNode || v.Tag == "!!null" {
				return d, fmt.Errorf("manifest: dependency %q: version must be a string", name)
			}
			d.Version = v.Value
			d.Pinned = true
		}
	default:
		return d, fmt.Errorf("manifest: dependency %q must be a version string or a mapping", name)
	}
	return d, nil
}

// validateMemberPath ensures a member path is relative and stays inside
// the workspace root.
func validateMemberPath(i int, p string) error {
	if p == "" {
		return fmt.Errorf("workspace: members[%d] must not be empty", i)
	}
	if filepath.IsAbs(p) {
		return fmt.Errorf("workspace: members[%d]: absolute path is not allowed: %s", i, p)
	}
	cleaned := filepath.Clean(p)
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("workspace: members[%d]: path must not escape workspace (contains ..): %s", i, p)
	}
	return nil
}
