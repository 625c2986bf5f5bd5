package git

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// LatestTag returns the most recent tag reachable from HEAD. It lets
// relgate default the target version to the tag being released.
func LatestTag(dir string) (string, error) {
	out, err := output(dir, "describe", "--tags", "--abbrev=0")
	if err != nil {
		return "", err
	}
	tag := strings.TrimSpace(out)
	if tag == "" {
		return "", fmt.Errorf("no tags found in %s", dir)
	}
	return tag, nil
}

// IsRepo returns true if the directory is inside a git repository.
func IsRepo(dir string) bool {
	if info, err := os.Stat(filepath.Join(dir, ".git")); err == nil && info.IsDir() {
		return true
	}
	return run(dir, "rev-parse", "--git-dir") == nil
}

// run executes a git command, discarding output.
func run(dir string, args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	return cmd.Run()
}

// output executes a git command and returns its stdout.
// Stderr is captured and included in the error message on failure.
func output(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}
