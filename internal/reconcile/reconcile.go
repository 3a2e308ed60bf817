// Package reconcile brings installed tool versions into agreement with the
// versions pinned in the project manifest.
//
// Reconciliation is uninstall-then-install rather than install-if-absent:
// a stale, incompatible version already present must be forcibly replaced,
// which a presence check alone would miss. The uninstall step treats a
// not-installed tool as a no-op so the operation is idempotent and converges
// after partial failures (for example an interrupt between the two steps).
package reconcile

import (
	"context"
	"errors"

	"github.com/conn-castle/toolpin/internal/manager"
	"github.com/conn-castle/toolpin/internal/manifest"
)

// Outcome reports what reconciling one tool did.
type Outcome struct {
	Tool    string
	Version string
	// WasInstalled is false when the uninstall step found nothing to remove.
	WasInstalled bool
}

// Tool converges the named tool to the version pinned in the manifest at
// manifestPath. The manifest is read fresh; no state persists between calls.
func Tool(ctx context.Context, mgr manager.Manager, tool string, manifestPath string) (Outcome, error) {
	entry, err := manifest.Lookup(manifestPath, tool)
	if err != nil {
		return Outcome{}, err
	}
	return converge(ctx, mgr, entry)
}

// All converges every tool pinned in the manifest, in file order. The first
// failure aborts and is returned alongside the outcomes completed so far.
func All(ctx context.Context, mgr manager.Manager, manifestPath string) ([]Outcome, error) {
	entries, err := manifest.Parse(manifestPath)
	if err != nil {
		return nil, err
	}
	outcomes := make([]Outcome, 0, len(entries))
	for _, entry := range entries {
		outcome, err := converge(ctx, mgr, entry)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

// converge runs the uninstall-then-install cycle for one manifest entry.
// Install always runs, whether uninstall removed a version or had nothing
// to do; the subsystem resolves the target version from the manifest itself.
func converge(ctx context.Context, mgr manager.Manager, entry manifest.Entry) (Outcome, error) {
	outcome := Outcome{Tool: entry.Tool, Version: entry.Version, WasInstalled: true}
	if err := mgr.Uninstall(ctx, entry.Tool, entry.Version); err != nil {
		if !errors.Is(err, manager.ErrNotInstalled) {
			return Outcome{}, err
		}
		outcome.WasInstalled = false
	}
	if err := mgr.Install(ctx, entry.Tool); err != nil {
		return Outcome{}, err
	}
	return outcome, nil
}
