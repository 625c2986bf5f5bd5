package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/fbkclanna/relgate/internal/ui"
	"github.com/fbkclanna/relgate/internal/workspace"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List workspace packages and their internal version pins",
		RunE:  runList,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

type packageInfo struct {
	Name            string    `json:"name"`
	Version         string    `json:"version"`
	InheritsRelease bool      `json:"inherits_release,omitempty"`
	Internal        []depInfo `json:"internal_dependencies,omitempty"`
}

type depInfo struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
	Pinned  bool   `json:"pinned"`
}

func runList(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")
	asJSON, _ := cmd.Flags().GetBool("json")

	src, err := workspace.NewDirSource(root)
	if err != nil {
		return err
	}
	ws, err := workspace.Load(src)
	if err != nil {
		return err
	}

	infos := make([]packageInfo, 0, len(ws.Order))
	for _, name := range ws.Order {
		infos = append(infos, collectPackageInfo(ws.Packages[name]))
	}

	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	tbl := ui.NewTable("NAME", "VERSION", "INTERNAL DEPS")
	for _, info := range infos {
		ver := info.Version
		if info.InheritsRelease {
			ver += " (inherited)"
		}
		tbl.Row(info.Name, ver, formatDeps(info.Internal))
	}
	return tbl.Render(out)
}

func collectPackageInfo(p *workspace.Package) packageInfo {
	info := packageInfo{
		Name:            p.Name,
		Version:         p.Version,
		InheritsRelease: p.InheritsRelease,
	}
	for name, dep := range p.Dependencies {
		if !dep.Internal {
			continue
		}
		info.Internal = append(info.Internal, depInfo{Name: name, Version: dep.Version, Pinned: dep.Pinned})
	}
	sort.Slice(info.Internal, func(i, j int) bool { return info.Internal[i].Name < info.Internal[j].Name })
	return info
}

func formatDeps(deps []depInfo) string {
	if len(deps) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(deps))
	for _, d := range deps {
		if d.Pinned {
			parts = append(parts, fmt.Sprintf("%s@%s", d.Name, d.Version))
		} else {
			parts = append(parts, d.Name+" (unpinned)")
		}
	}
	return strings.Join(parts, ", ")
}
