package main

import (
	"fmt"

	"github.com/fbkclanna/relgate/internal/git"
	relver "github.com/fbkclanna/relgate/internal/version"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "relgate",
		Short: "Release gate for single-version workspaces",
		Long: `relgate keeps every package in a workspace on one version.

Before a release, "relgate check <version>" verifies that every member
manifest and every pinned internal dependency declares the target version,
and "relgate update <version>" rewrites them all to it.`,
		Version:      version,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("root", ".", "Workspace root directory")

	cmd.AddCommand(
		newInitCmd(),
		newCheckCmd(),
		newUpdateCmd(),
		newListCmd(),
	)

	return cmd
}

// resolveTarget normalizes the version argument. When no argument was
// given, the most recent git tag of the workspace stands in for it.
func resolveTarget(root string, args []string) (string, error) {
	if len(args) == 1 {
		return relver.Normalize(args[0]), nil
	}
	tag, err := git.LatestTag(root)
	if err != nil {
		return "", fmt.Errorf("no version argument given and no git tag to fall back on: %w", err)
	}
	return relver.Normalize(tag), nil
}
