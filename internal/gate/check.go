package gate

import (
	"fmt"
	"sort"

	"github.com/fbkclanna/relgate/internal/workspace"
)

// Kind classifies a Violation.
type Kind string

const (
	// KindRelease: the workspace root's release version differs.
	KindRelease Kind = "release"
	// KindPackageVersion: a package's own version differs.
	KindPackageVersion Kind = "package-version"
	// KindDependencyVersion: a pinned internal dependency differs.
	KindDependencyVersion Kind = "dependency-version"
)

// Violation is one finding: a version field that does not match the target.
// Violations are not errors; a check collects all of them.
type Violation struct {
	Kind      Kind   `json:"kind"`
	Package   string `json:"package,omitempty"`
	DependsOn string `json:"depends_on,omitempty"`
	Found     string `json:"found"`
	Expected  string `json:"expected"`
}

func (v Violation) String() string {
	switch v.Kind {
	case KindRelease:
		return fmt.Sprintf("workspace release is %s, want %s", v.Found, v.Expected)
	case KindDependencyVersion:
		return fmt.Sprintf("%s: dependency on %s pins %s, want %s", v.Package, v.DependsOn, v.Found, v.Expected)
	default:
		return fmt.Sprintf("%s: version is %s, want %s", v.Package, v.Found, v.Expected)
	}
}

// Check compares the workspace against the target version and returns every
// violation, in a stable order: the root release first, then each package in
// index order, a package's own version before its dependency pins, and pins
// sorted by dependency name. It never mutates the workspace.
//
// An internal dependency with no version constraint is acceptable as-is:
// only explicitly pinned internal versions must track the target.
func Check(ws *workspace.Workspace, target string) []Violation {
	var out []Violation

	if ws.HasRelease && ws.Release != target {
		out = append(out, Violation{
			Kind:     KindRelease,
			Found:    ws.Release,
			Expected: target,
		})
	}

	for _, name := range ws.Order {
		p := ws.Packages[name]
		// An inheriting package tracks the root release; its version is
		// covered by the release finding above.
		if !p.InheritsRelease && p.Version != target {
			out = append(out, Violation{
				Kind:     KindPackageVersion,
				Package:  p.Name,
				Found:    p.Version,
				Expected: target,
			})
		}
		for _, depName := range sortedDependencyNames(p) {
			dep := p.Dependencies[depName]
			if dep.Internal && dep.Pinned && dep.Version != target {
				out = append(out, Violation{
					Kind:      KindDependencyVersion,
					Package:   p.Name,
					DependsOn: depName,
					Found:     dep.Version,
					Expected:  target,
				})
			}
		}
	}

	return out
}

func sortedDependencyNames(p *workspace.Package) []string {
	names := make([]string, 0, len(p.Dependencies))
	for name := range p.Dependencies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
