package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunInit_fromFlags(t *testing.T) {
	root := t.TempDir()

	out, err := execute(t, "--root", root, "init", "acme",
		"--member", "packages/core", "--member", "packages/api")
	if err != nil {
		t.Fatalf("init failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, `Workspace "acme" created with 2 members`) {
		t.Errorf("missing confirmation: %q", out)
	}

	wsDir := filepath.Join(root, "acme")
	for _, p := range []string{
		"workspace.yaml",
		"packages/core/package.yaml",
		"packages/api/package.yaml",
	} {
		if _, err := os.Stat(filepath.Join(wsDir, p)); err != nil {
			t.Errorf("missing %s: %v", p, err)
		}
	}

	// The scaffold is immediately consistent.
	if out, err := execute(t, "--root", wsDir, "check", "0.1.0"); err != nil {
		t.Errorf("check on fresh workspace failed: %v\n%s", err, out)
	}
}

func TestRunInit_withRelease(t *testing.T) {
	root := t.TempDir()

	if out, err := execute(t, "--root", root, "init", "acme",
		"--member", "packages/core", "--release", "v1.0.0"); err != nil {
		t.Fatalf("init failed: %v\n%s", err, out)
	}

	wsDir := filepath.Join(root, "acme")
	rootData, err := os.ReadFile(filepath.Join(wsDir, "workspace.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(rootData), "release: 1.0.0") {
		t.Errorf("release not normalized into the root:\n%s", rootData)
	}
	memberData, err := os.ReadFile(filepath.Join(wsDir, "packages", "core", "package.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(memberData), "version: workspace") {
		t.Errorf("member should inherit the release:\n%s", memberData)
	}

	if out, err := execute(t, "--root", wsDir, "check", "1.0.0"); err != nil {
		t.Errorf("check on fresh workspace failed: %v\n%s", err, out)
	}
}

func TestRunInit_existingWorkspace(t *testing.T) {
	root := t.TempDir()

	if _, err := execute(t, "--root", root, "init", "acme", "--member", "packages/core"); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "--root", root, "init", "acme", "--member", "packages/core"); err == nil {
		t.Fatal("expected error without --force")
	}
	if _, err := execute(t, "--root", root, "init", "acme", "--member", "packages/core", "--force"); err != nil {
		t.Errorf("init --force failed: %v", err)
	}
}

func TestRunInit_invalidNames(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		name string
		args []string
	}{
		{"absolute workspace name", []string{"init", "/tmp/acme", "--member", "packages/a"}},
		{"escaping workspace name", []string{"init", "../acme", "--member", "packages/a"}},
		{"absolute member", []string{"init", "acme", "--member", "/tmp/pkg"}},
		{"escaping member", []string{"init", "acme", "--member", "../pkg"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--root", root}, tt.args...)
			if _, err := execute(t, args...); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
