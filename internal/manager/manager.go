// Package manager drives the external version-management subsystem that
// installs and uninstalls pinned development tools.
package manager

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/conn-castle/toolpin/internal/messages"
)

// Steps identify which subsystem call a SubsystemError came from.
const (
	StepUninstall = "uninstall"
	StepInstall   = "install"
	StepCurrent   = "current"
)

// ErrNotInstalled marks an uninstall (or version query) that found nothing
// installed. Callers treat it as a no-op, never as a failure.
var ErrNotInstalled = errors.New(messages.ManagerNotInstalled)

// Manager is the version-management subsystem contract. Install resolves the
// target version from the manifest convention on its own; Uninstall removes
// one specific version.
type Manager interface {
	Uninstall(ctx context.Context, tool string, version string) error
	Install(ctx context.Context, tool string) error
	Current(ctx context.Context, tool string) (string, error)
}

// SubsystemError reports a version-manager failure, carrying the subsystem's
// diagnostic output verbatim for operator visibility.
type SubsystemError struct {
	Step   string
	Tool   string
	Output string
	Err    error
}

func (e *SubsystemError) Error() string {
	base := fmt.Sprintf(messages.ManagerSubsystemFailureFmt, e.Step, e.Tool, e.Err)
	diag := strings.TrimSpace(e.Output)
	if diag == "" {
		return base
	}
	return base + "\n" + diag
}

func (e *SubsystemError) Unwrap() error {
	return e.Err
}
