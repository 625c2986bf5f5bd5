// Package testutil provides workspace fixtures for tests: an in-memory
// manifest Source and helpers that lay out real workspace directories.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/fbkclanna/relgate/internal/manifest"
)

// Member is one in-memory member manifest.
type Member struct {
	Loc  string
	YAML string
}

// MemSource is an in-memory workspace.Source. Writes are captured in
// Written; FailWrites injects write failures per location.
type MemSource struct {
	RootLoc    string
	RootYAML   string
	MemberList []Member
	FailWrites map[string]error
	Written    map[string][]byte
}

// NewMemSource builds a MemSource from a root manifest and ordered members.
func NewMemSource(rootYAML string, members ...Member) *MemSource {
	return &MemSource{
		RootLoc:    "workspace.yaml",
		RootYAML:   rootYAML,
		MemberList: members,
		FailWrites: map[string]error{},
		Written:    map[string][]byte{},
	}
}

func (s *MemSource) Root() (string, *manifest.Document, error) {
	doc, err := manifest.ParseDocument([]byte(s.RootYAML))
	return s.RootLoc, doc, err
}

func (s *MemSource) Members() ([]string, error) {
	locs := make([]string, 0, len(s.MemberList))
	for _, m := range s.MemberList {
		locs = append(locs, m.Loc)
	}
	return locs, nil
}

func (s *MemSource) Read(loc string) (*manifest.Document, error) {
	for _, m := range s.MemberList {
		if m.Loc == loc {
			return manifest.ParseDocument([]byte(m.YAML))
		}
	}
	return nil, fmt.Errorf("no manifest at %s", loc)
}

func (s *MemSource) Write(loc string, doc *manifest.Document) error {
	if err := s.FailWrites[loc]; err != nil {
		return err
	}
	data, err := doc.Encode()
	if err != nil {
		return err
	}
	s.Written[loc] = data
	return nil
}

// WriteWorkspace lays out a workspace on disk: workspace.yaml at root and
// one package.yaml per member directory, keyed by member path.
func WriteWorkspace(t *testing.T, root, rootYAML string, members map[string]string) {
	t.Helper()
	WriteFile(t, filepath.Join(root, "workspace.yaml"), rootYAML)
	for dir, content := range members {
		WriteFile(t, filepath.Join(root, dir, "package.yaml"), content)
	}
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
