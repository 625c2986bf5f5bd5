package gate

import (
	"errors"
	"fmt"

	"github.com/fbkclanna/relgate/internal/manifest"
	"github.com/fbkclanna/relgate/internal/workspace"
)

// WriteError reports a manifest that could not be persisted during update.
type WriteError struct {
	Location string
	Err      error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Location, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Update rewrites every package version and every pinned internal dependency
// constraint to the target version, then persists each manifest that
// actually changed. Manifests that were already consistent are left alone,
// and a dependency without a constraint never gains one: update changes
// exactly what Check would flag.
//
// Each manifest is written independently. A failed write is collected as a
// WriteError and the remaining writes still run; the joined errors are
// returned together. Manifests written before a failure stay written.
// Members are written in index order, the root manifest last.
func Update(ws *workspace.Workspace, target string, src workspace.Source) ([]string, error) {
	var updated []string
	var errs []error

	for _, name := range ws.Order {
		p := ws.Packages[name]
		changed := manifest.SetPackageVersion(p.Doc, target)
		if changed {
			p.Version = target
		}
		for depName, dep := range p.Dependencies {
			if !dep.Internal || !dep.Pinned {
				continue
			}
			if manifest.SetDependencyVersion(p.Doc, depName, target) {
				dep.Version = target
				p.Dependencies[depName] = dep
				changed = true
			}
		}
		if !changed {
			continue
		}
		if err := src.Write(p.Location, p.Doc); err != nil {
			errs = append(errs, &WriteError{Location: p.Location, Err: err})
			continue
		}
		updated = append(updated, p.Location)
	}

	if ws.HasRelease && manifest.SetRelease(ws.RootDoc, target) {
		ws.Release = target
		for _, name := range ws.Order {
			if p := ws.Packages[name]; p.InheritsRelease {
				p.Version = target
			}
		}
		if err := src.Write(ws.RootLocation, ws.RootDoc); err != nil {
			errs = append(errs, &WriteError{Location: ws.RootLocation, Err: err})
		} else {
			updated = append(updated, ws.RootLocation)
		}
	}

	return updated, errors.Join(errs...)
}
