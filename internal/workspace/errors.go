package workspace

import "fmt"

// DuplicatePackageError reports two member manifests declaring the same
// package name. Loading stops: the name index would be ambiguous.
type DuplicatePackageError struct {
	Name   string
	First  string
	Second string
}

func (e *DuplicatePackageError) Error() string {
	return fmt.Sprintf("duplicate package %q declared by %s and %s", e.Name, e.First, e.Second)
}

// MalformedManifestError reports a manifest that could not be read or
// parsed, naming its source location.
type MalformedManifestError struct {
	Location string
	Err      error
}

func (e *MalformedManifestError) Error() string {
	return fmt.Sprintf("malformed manifest %s: %v", e.Location, e.Err)
}

func (e *MalformedManifestError) Unwrap() error { return e.Err }
