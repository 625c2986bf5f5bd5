package main

import (
	"fmt"

	"github.com/fbkclanna/relgate/internal/gate"
	"github.com/fbkclanna/relgate/internal/workspace"
	"github.com/spf13/cobra"
)

func newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [version]",
		Short: "Rewrite every manifest to the target version",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runUpdate,
	}
	cmd.Flags().Bool("dry-run", false, "Show which manifests would change without writing")
	cmd.Flags().BoolP("quiet", "q", false, "Suppress per-file output")
	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	root, _ := cmd.Flags().GetString("root")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	quiet, _ := cmd.Flags().GetBool("quiet")

	target, err := resolveTarget(root, args)
	if err != nil {
		return err
	}

	src, err := workspace.NewDirSource(root)
	if err != nil {
		return err
	}
	ws, err := workspace.Load(src)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if dryRun {
		for _, loc := range pendingLocations(ws, gate.Check(ws, target)) {
			_, _ = fmt.Fprintf(out, "%s needs to be updated\n", loc)
		}
		return nil
	}

	updated, err := gate.Update(ws, target, src)
	if !quiet {
		for _, loc := range updated {
			_, _ = fmt.Fprintf(out, "%s was updated\n", loc)
		}
	}
	if err != nil {
		// Writes that succeeded before a failure stay written; there is no
		// cross-file rollback. The operator fixes the cause and reruns.
		return err
	}
	if !quiet && len(updated) == 0 {
		_, _ = fmt.Fprintf(out, "All manifests already match %s.\n", target)
	}
	return nil
}

// pendingLocations maps violations back to the manifests holding them,
// deduplicated in report order.
func pendingLocations(ws *workspace.Workspace, violations []gate.Violation) []string {
	var locs []string
	seen := map[string]bool{}
	for _, v := range violations {
		loc := ws.RootLocation
		if v.Kind != gate.KindRelease {
			loc = ws.Packages[v.Package].Location
		}
		if !seen[loc] {
			seen[loc] = true
			locs = append(locs, loc)
		}
	}
	return locs
}
