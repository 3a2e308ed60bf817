// Package testutil provides helpers shared by toolpin tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteStub writes an executable shell stub that exits successfully and
// returns its path. t is the active test; dir is the output directory; name
// is the executable file name.
func WriteStub(t *testing.T, dir string, name string) string {
	t.Helper()
	return WriteStubWithOutput(t, dir, name, "", 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the
// provided code and returns its path.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) string {
	t.Helper()
	return WriteStubWithOutput(t, dir, name, "", exitCode)
}

// WriteStubWithOutput writes an executable shell stub that prints output to
// stdout, exits with the provided code, and returns its path.
func WriteStubWithOutput(t *testing.T, dir string, name string, output string, exitCode int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	script := "#!/bin/sh\n"
	if output != "" {
		script += fmt.Sprintf("echo '%s'\n", output)
	}
	script += fmt.Sprintf("exit %d\n", exitCode)
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

// WriteArgsRecorder writes an executable shell stub that appends its
// arguments to logPath, one invocation per line, and returns the stub path.
func WriteArgsRecorder(t *testing.T, dir string, name string, logPath string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	script := fmt.Sprintf("#!/bin/sh\necho \"$@\" >> '%s'\nexit 0\n", logPath)
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

// WithWorkingDir runs fn with dir as the current working directory and restores the previous directory.
// t is the active test; dir is the temporary working directory for fn.
func WithWorkingDir(t *testing.T, dir string, fn func()) {
	t.Helper()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer func() {
		if err := os.Chdir(cwd); err != nil {
			t.Fatalf("restore chdir: %v", err)
		}
	}()
	fn()
}
