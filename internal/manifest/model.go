package manifest

// VersionInherited is the sentinel a member manifest uses in its version
// field to inherit the workspace root's release version.
const VersionInherited = "workspace"

// Root represents the top-level workspace.yaml manifest.
type Root struct {
	Name       string
	Release    string
	HasRelease bool
	Members    []string
}

// Manifest represents one member package.yaml manifest.
type Manifest struct {
	Name            string
	Version         string
	InheritsRelease bool
	Dependencies    map[string]Dependency
}

// Dependency represents a single entry in a manifest's dependencies mapping.
type Dependency struct {
	Path    string
	Version string
	// Pinned is true when the entry declares an explicit version constraint,
	// as opposed to depending purely by path.
	Pinned bool
	// Internal is true when the dependency name resolves to another package
	// in the same workspace. It is resolved by the workspace loader, not by
	// syntax: a path field alone does not make a dependency internal.
	Internal bool
}
