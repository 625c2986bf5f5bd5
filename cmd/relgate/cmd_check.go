package main

import (
	"encoding/json"
	"fmt"

	"github.com/fbkclanna/relgate/internal/gate"
	"github.com/fbkclanna/relgate/internal/ui"
	"github.com/fbkclanna/relgate/internal/workspace"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [version]",
		Short: "Verify every manifest declares the target version",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCheck,
	}
	cmd.Flags().Bool("json", false, "Output violations as JSON")
	cmd.Flags().BoolP("quiet", "q", false, "Suppress output, report by exit status only")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	root, _ := cmd.Flags().GetString("root")
	asJSON, _ := cmd.Flags().GetBool("json")
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

	violations := gate.Check(ws, target)
	out := cmd.OutOrStdout()

	if asJSON && !quiet {
		if violations == nil {
			violations = []gate.Violation{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(violations); err != nil {
			return err
		}
	}

	if len(violations) == 0 {
		if !quiet && !asJSON {
			color := ui.ColorEnabled(out)
			_, _ = fmt.Fprintln(out, ui.Good(fmt.Sprintf("All manifests match %s.", target), color))
		}
		return nil
	}

	if !quiet && !asJSON {
		color := ui.ColorEnabled(out)
		for _, v := range violations {
			_, _ = fmt.Fprintln(out, ui.Bad(v.String(), color))
		}
	}
	return fmt.Errorf("found %d version mismatches against %s", len(violations), target)
}
