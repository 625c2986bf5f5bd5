package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fbkclanna/relgate/internal/manifest"
)

// Names of the manifest files a directory-backed workspace uses.
const (
	RootManifestName   = "workspace.yaml"
	MemberManifestName = "package.yaml"
)

// Source provides access to the manifests of one workspace. The loader and
// the consistency engine depend only on this interface, never on a concrete
// storage mechanism.
type Source interface {
	// Root returns the location and contents of the workspace root manifest.
	Root() (string, *manifest.Document, error)
	// Members returns the manifest locations of every workspace member,
	// in the order the root declares them.
	Members() ([]string, error)
	// Read returns the parsed manifest at loc.
	Read(loc string) (*manifest.Document, error)
	// Write persists doc back to loc.
	Write(loc string, doc *manifest.Document) error
}

// DirSource is the filesystem Source: workspace.yaml at the root directory
// and package.yaml inside each member directory.
type DirSource struct {
	root string
}

// NewDirSource creates a Source rooted at dir.
func NewDirSource(dir string) (*DirSource, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving workspace root: %w", err)
	}
	return &DirSource{root: abs}, nil
}

// Root reads and parses <root>/workspace.yaml.
func (s *DirSource) Root() (string, *manifest.Document, error) {
	loc := filepath.Join(s.root, RootManifestName)
	doc, err := s.Read(loc)
	return loc, doc, err
}

// Members enumerates member manifest locations from the root's members list.
func (s *DirSource) Members() ([]string, error) {
	_, doc, err := s.Root()
	if err != nil {
		return nil, err
	}
	root, err := manifest.ParseRoot(doc)
	if err != nil {
		return nil, err
	}
	locs := make([]string, 0, len(root.Members))
	for _, m := range root.Members {
		locs = append(locs, filepath.Join(s.root, m, MemberManifestName))
	}
	return locs, nil
}

// Read parses the manifest file at loc.
func (s *DirSource) Read(loc string) (*manifest.Document, error) {
	data, err := os.ReadFile(loc)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return manifest.ParseDocument(data)
}

// Write serializes doc back to loc.
func (s *DirSource) Write(loc string, doc *manifest.Document) error {
	data, err := doc.Encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(loc, data, 0644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}
