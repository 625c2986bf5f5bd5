package manifest

import "gopkg.in/yaml.v3"

// The edit operations below only rewrite values that already exist: a
// missing version field is never added, and an inherited version stays
// inherited. Each reports whether the document changed.

// SetPackageVersion rewrites a member manifest's own version field.
func SetPackageVersion(doc *Document, version string) bool {
	n := lookup(doc.mapping(), "version")
	if n == nil || n.Kind != yaml.ScalarNode || n.Value == VersionInherited {
		return false
	}
	return setScalar(n, version)
}

// SetDependencyVersion rewrites the version constraint of one dependency
// entry, in either the shorthand scalar or the mapping form.
func SetDependencyVersion(doc *Document, name, version string) bool {
	entry := lookup(lookup(doc.mapping(), "dependencies"), name)
	if entry == nil {
		return false
	}
	switch entry.Kind {
	case yaml.ScalarNode:
		if entry.Tag == "!!null" {
			return false
		}
		return setScalar(entry, version)
	case yaml.MappingNode:
		return setScalar(lookup(entry, "version"), version)
	}
	return false
}

// SetRelease rewrites the root manifest's release field.
func SetRelease(doc *Document, version string) bool {
	return setScalar(lookup(doc.mapping(), "release"), version)
}
