package main

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	relver "github.com/fbkclanna/relgate/internal/version"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init <name>",
		Short: "Create a workspace skeleton interactively or from flags",
		Args:  cobra.ExactArgs(1),
		RunE:  runInit,
	}
	cmd.Flags().StringSlice("member", nil, "Member directory to scaffold (repeatable)")
	cmd.Flags().String("release", "", "Shared release version declared by the workspace root")
	cmd.Flags().Bool("force", false, "Overwrite an existing workspace")
	return cmd
}

// rootManifest and memberManifest are the scaffolding shapes written by
// init; loading goes through the node-based document model instead.
type rootManifest struct {
	Version int      `yaml:"version"`
	Name    string   `yaml:"name"`
	Release string   `yaml:"release,omitempty"`
	Members []string `yaml:"members"`
}

type memberManifest struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

func runInit(cmd *cobra.Command, args []string) error {
	name := args[0]
	root, _ := cmd.Flags().GetString("root")
	members, _ := cmd.Flags().GetStringSlice("member")
	release, _ := cmd.Flags().GetString("release")
	force, _ := cmd.Flags().GetBool("force")

	if filepath.IsAbs(name) || strings.Contains(filepath.Clean(name), "..") {
		return fmt.Errorf("invalid workspace name %q: must be a simple directory name (no absolute paths or ..)", name)
	}

	wsDir := filepath.Join(root, name)
	if _, err := os.Stat(filepath.Join(wsDir, "workspace.yaml")); err == nil && !force {
		return fmt.Errorf("workspace %q already exists (use --force to overwrite)", name)
	}

	if len(members) == 0 {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("no --member flags given and not running interactively")
		}
		var err error
		members, release, err = interactiveCollect(release)
		if err != nil {
			return err
		}
	}

	for _, m := range members {
		if err := validateMemberFlag(m); err != nil {
			return err
		}
	}
	release = relver.Normalize(release)

	if err := writeSkeleton(wsDir, name, release, members); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Workspace %q created with %d members at %s\n", name, len(members), wsDir)
	return nil
}

func validateMemberFlag(m string) error {
	if m == "" {
		return fmt.Errorf("member path must not be empty")
	}
	if filepath.IsAbs(m) {
		return fmt.Errorf("member %q: absolute path is not allowed", m)
	}
	cleaned := filepath.Clean(m)
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("member %q: path must not escape workspace", m)
	}
	return nil
}

func writeSkeleton(wsDir, name, release string, members []string) error {
	memberVersion := "0.1.0"
	if release != "" {
		// Members inherit the shared release declared by the root.
		memberVersion = "workspace"
	}

	rm := rootManifest{Version: 1, Name: name, Release: release, Members: members}
	data, err := yaml.Marshal(&rm)
	if err != nil {
		return fmt.Errorf("marshaling workspace manifest: %w", err)
	}
	if err := os.MkdirAll(wsDir, 0755); err != nil {
		return fmt.Errorf("creating workspace directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(wsDir, "workspace.yaml"), data, 0644); err != nil {
		return fmt.Errorf("writing workspace manifest: %w", err)
	}

	for _, m := range members {
		mm := memberManifest{Name: path.Base(filepath.ToSlash(m)), Version: memberVersion}
		data, err := yaml.Marshal(&mm)
		if err != nil {
			return fmt.Errorf("marshaling manifest for %s: %w", m, err)
		}
		dir := filepath.Join(wsDir, m)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating member directory %s: %w", m, err)
		}
		if err := os.WriteFile(filepath.Join(dir, "package.yaml"), data, 0644); err != nil {
			return fmt.Errorf("writing manifest for %s: %w", m, err)
		}
	}
	return nil
}
