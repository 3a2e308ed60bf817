package doctor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/conn-castle/toolpin/internal/manager"
	"github.com/conn-castle/toolpin/internal/manifest"
	"github.com/conn-castle/toolpin/internal/messages"
)

// CheckManifest verifies that the manifest exists and parses. On success the
// parsed entries are returned so CheckConvergence can reuse them.
func CheckManifest(manifestPath string) ([]Result, []manifest.Entry) {
	if _, err := os.Stat(manifestPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Result{{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNameManifest,
				Message:        fmt.Sprintf(messages.DoctorManifestMissingFmt, manifestPath),
				Recommendation: messages.DoctorManifestMissingRecommend,
			}}, nil
		}
		return []Result{{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNameManifest,
			Message:   fmt.Sprintf(messages.DoctorManifestUnreadableFmt, manifestPath, err),
		}}, nil
	}

	entries, err := manifest.Parse(manifestPath)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameManifest,
			Message:        fmt.Sprintf(messages.DoctorManifestInvalidFmt, manifestPath, err),
			Recommendation: messages.DoctorManifestInvalidRecommend,
		}}, nil
	}
	if len(entries) == 0 {
		return []Result{{
			Status:    StatusWarn,
			CheckName: messages.DoctorCheckNameManifest,
			Message:   fmt.Sprintf(messages.DoctorManifestEmptyFmt, manifestPath),
		}}, nil
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameManifest,
		Message:   fmt.Sprintf(messages.DoctorManifestLoadedFmt, manifestPath, len(entries)),
	}}, entries
}

// CheckManager verifies that the version-manager binary is on PATH.
func CheckManager(binary string) []Result {
	resolved, err := exec.LookPath(binary)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameManager,
			Message:        fmt.Sprintf(messages.DoctorManagerNotFoundFmt, binary),
			Recommendation: messages.DoctorManagerNotFoundRecommend,
		}}
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameManager,
		Message:   fmt.Sprintf(messages.DoctorManagerFoundFmt, resolved),
	}}
}

// CheckConvergence asks the manager for each tool's current version and
// compares it to the pin. Drift and missing installs are warnings, not
// failures, since `tp sync` repairs both.
func CheckConvergence(ctx context.Context, mgr manager.Manager, entries []manifest.Entry) []Result {
	results := make([]Result, 0, len(entries))
	for _, entry := range entries {
		current, err := mgr.Current(ctx, entry.Tool)
		switch {
		case errors.Is(err, manager.ErrNotInstalled):
			results = append(results, Result{
				Status:         StatusWarn,
				CheckName:      messages.DoctorCheckNameConvergence,
				Message:        fmt.Sprintf(messages.DoctorToolNotInstalledFmt, entry.Tool, entry.Version),
				Recommendation: fmt.Sprintf(messages.DoctorToolNotInstalledRecFmt, entry.Tool),
			})
		case err != nil:
			results = append(results, Result{
				Status:         StatusWarn,
				CheckName:      messages.DoctorCheckNameConvergence,
				Message:        fmt.Sprintf(messages.DoctorToolQueryFailedFmt, entry.Tool, err),
				Recommendation: messages.DoctorToolQueryFailedRecommend,
			})
		case current != entry.Version:
			results = append(results, Result{
				Status:         StatusWarn,
				CheckName:      messages.DoctorCheckNameConvergence,
				Message:        fmt.Sprintf(messages.DoctorToolDriftFmt, entry.Tool, current, entry.Version),
				Recommendation: fmt.Sprintf(messages.DoctorToolDriftRecFmt, entry.Tool),
			})
		default:
			results = append(results, Result{
				Status:    StatusOK,
				CheckName: messages.DoctorCheckNameConvergence,
				Message:   fmt.Sprintf(messages.DoctorToolConvergedFmt, entry.Tool, entry.Version),
			})
		}
	}
	return results
}
