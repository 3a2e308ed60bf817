package reconcile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/toolpin/internal/manager"
	"github.com/conn-castle/toolpin/internal/manifest"
)

// fakeManager records subsystem calls and returns scripted errors.
type fakeManager struct {
	calls        []string
	uninstallErr error
	installErr   error
	installed    map[string]string
}

func (f *fakeManager) Uninstall(_ context.Context, tool string, version string) error {
	f.calls = append(f.calls, fmt.Sprintf("uninstall %s %s", tool, version))
	if f.uninstallErr != nil {
		return f.uninstallErr
	}
	if f.installed[tool] == "" {
		return manager.ErrNotInstalled
	}
	delete(f.installed, tool)
	return nil
}

func (f *fakeManager) Install(_ context.Context, tool string) error {
	f.calls = append(f.calls, "install "+tool)
	return f.installErr
}

func (f *fakeManager) Current(_ context.Context, tool string) (string, error) {
	version, ok := f.installed[tool]
	if !ok {
		return "", manager.ErrNotInstalled
	}
	return version, nil
}

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".tool-versions")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestToolReplacesInstalledVersion(t *testing.T) {
	path := writeManifest(t, "poetry 1.8.3\n")
	fake := &fakeManager{installed: map[string]string{"poetry": "1.7.0"}}

	outcome, err := Tool(context.Background(), fake, "poetry", path)
	require.NoError(t, err)
	assert.Equal(t, "poetry", outcome.Tool)
	assert.Equal(t, "1.8.3", outcome.Version)
	assert.True(t, outcome.WasInstalled)
	assert.Equal(t, []string{"uninstall poetry 1.8.3", "install poetry"}, fake.calls)
}

func TestToolNotInstalledIsNoOp(t *testing.T) {
	path := writeManifest(t, "poetry 1.8.3\n")
	fake := &fakeManager{installed: map[string]string{}}

	outcome, err := Tool(context.Background(), fake, "poetry", path)
	require.NoError(t, err)
	assert.False(t, outcome.WasInstalled)
	assert.Equal(t, []string{"uninstall poetry 1.8.3", "install poetry"}, fake.calls,
		"install must run even when uninstall had nothing to remove")
}

func TestToolMissingEntryMakesNoSubsystemCalls(t *testing.T) {
	path := writeManifest(t, "nodejs 20.11.1\npoetry-plugin 2.0.0\n")
	fake := &fakeManager{installed: map[string]string{}}

	_, err := Tool(context.Background(), fake, "poetry", path)
	var notFound *manifest.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Empty(t, fake.calls)
}

func TestToolInstallFailureIdentifiesStep(t *testing.T) {
	path := writeManifest(t, "poetry 1.8.3\n")
	fake := &fakeManager{
		installed:  map[string]string{"poetry": "1.8.3"},
		installErr: &manager.SubsystemError{Step: manager.StepInstall, Tool: "poetry", Err: errors.New("fetch failed")},
	}

	_, err := Tool(context.Background(), fake, "poetry", path)
	var sub *manager.SubsystemError
	require.ErrorAs(t, err, &sub)
	assert.Equal(t, manager.StepInstall, sub.Step)
}

func TestToolUninstallFailurePropagates(t *testing.T) {
	path := writeManifest(t, "poetry 1.8.3\n")
	fake := &fakeManager{
		uninstallErr: &manager.SubsystemError{Step: manager.StepUninstall, Tool: "poetry", Err: errors.New("locked")},
	}

	_, err := Tool(context.Background(), fake, "poetry", path)
	var sub *manager.SubsystemError
	require.ErrorAs(t, err, &sub)
	assert.Equal(t, manager.StepUninstall, sub.Step)
	assert.Equal(t, []string{"uninstall poetry 1.8.3"}, fake.calls, "install must not run after a hard uninstall failure")
}

func TestToolIdempotentAcrossRuns(t *testing.T) {
	path := writeManifest(t, "poetry 1.8.3\n")
	fake := &fakeManager{installed: map[string]string{}}

	first, err := Tool(context.Background(), fake, "poetry", path)
	require.NoError(t, err)
	assert.False(t, first.WasInstalled)

	// Simulate the install step having converged the tool.
	fake.installed = map[string]string{"poetry": "1.8.3"}
	second, err := Tool(context.Background(), fake, "poetry", path)
	require.NoError(t, err)
	assert.True(t, second.WasInstalled)
	assert.Equal(t, "1.8.3", second.Version)
}

func TestAllConvergesInFileOrder(t *testing.T) {
	path := writeManifest(t, "poetry 1.8.3\nnodejs 20.11.1\n")
	fake := &fakeManager{installed: map[string]string{"nodejs": "18.0.0"}}

	outcomes, err := All(context.Background(), fake, path)
	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	assert.Equal(t, "poetry", outcomes[0].Tool)
	assert.Equal(t, "nodejs", outcomes[1].Tool)
	assert.Equal(t, []string{
		"uninstall poetry 1.8.3", "install poetry",
		"uninstall nodejs 20.11.1", "install nodejs",
	}, fake.calls)
}

func TestAllStopsAtFirstFailure(t *testing.T) {
	path := writeManifest(t, "poetry 1.8.3\nnodejs 20.11.1\n")
	fake := &fakeManager{
		installed:  map[string]string{},
		installErr: &manager.SubsystemError{Step: manager.StepInstall, Tool: "poetry", Err: errors.New("fetch failed")},
	}

	outcomes, err := All(context.Background(), fake, path)
	require.Error(t, err)
	assert.Empty(t, outcomes)
	assert.Equal(t, []string{"uninstall poetry 1.8.3", "install poetry"}, fake.calls)
}

func TestAllMalformedManifest(t *testing.T) {
	path := writeManifest(t, "poetry 1.8.3\nnodejs\n")
	fake := &fakeManager{installed: map[string]string{}}

	_, err := All(context.Background(), fake, path)
	var malformed *manifest.MalformedEntryError
	require.ErrorAs(t, err, &malformed)
	assert.Empty(t, fake.calls, "manifest errors must abort before any subsystem call")
}
