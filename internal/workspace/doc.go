// Package workspace loads the member packages of one workspace and indexes
// them by name. It defines the Source abstraction over manifest storage,
// the two-pass loader that resolves which dependencies are internal, and
// the structural load errors (duplicate package names, malformed manifests).
package workspace
