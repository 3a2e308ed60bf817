package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/conn-castle/toolpin/internal/testutil"
)

// withProjectRoot points getwd at dir for the duration of the test.
func withProjectRoot(t *testing.T, dir string) {
	t.Helper()
	orig := getwd
	getwd = func() (string, error) { return dir, nil }
	t.Cleanup(func() { getwd = orig })
}

// newTestProject creates a project root with a manifest and a config that
// points the version manager at a recording stub. It returns the root and
// the stub's call log path.
func newTestProject(t *testing.T, manifestContent string) (string, string) {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ".tool-versions"), []byte(manifestContent), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	logPath := filepath.Join(root, "calls.log")
	binary := testutil.WriteArgsRecorder(t, root, "fake-asdf", logPath)
	if err := os.MkdirAll(filepath.Join(root, ".toolpin"), 0o755); err != nil {
		t.Fatalf("mkdir .toolpin: %v", err)
	}
	cfg := "[manager]\nbinary = \"" + binary + "\"\n"
	if err := os.WriteFile(filepath.Join(root, ".toolpin", "config.toml"), []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	withProjectRoot(t, root)
	return root, logPath
}

// runCLI executes the CLI with args and captures stdout and stderr.
func runCLI(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	err := execute(append([]string{"tp"}, args...), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func readCalls(t *testing.T, logPath string) []string {
	t.Helper()
	data, err := os.ReadFile(logPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		t.Fatalf("read call log: %v", err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestVersionFlag(t *testing.T) {
	stdout, _, err := runCLI("--version")
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if strings.TrimSpace(stdout) != Version {
		t.Fatalf("expected version %q, got %q", Version, stdout)
	}
}

func TestRunMainTranslatesExitCodes(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ".tool-versions"), []byte("poetry 1.8.3\n"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	scriptsDir := filepath.Join(root, "scripts")
	if err := os.MkdirAll(scriptsDir, 0o755); err != nil {
		t.Fatalf("mkdir scripts: %v", err)
	}
	testutil.WriteStubWithExit(t, scriptsDir, "check_licenses.sh", 3)
	withProjectRoot(t, root)

	var stdout, stderr bytes.Buffer
	exitCode := -1
	runMain([]string{"tp", "licenses"}, &stdout, &stderr, func(code int) { exitCode = code })

	if exitCode != 3 {
		t.Fatalf("expected the script's exit code 3, got %d", exitCode)
	}
	if !strings.Contains(stderr.String(), "license check failed") {
		t.Fatalf("expected diagnostic on stderr, got %q", stderr.String())
	}
}

func TestRunMainSuccessExitsZero(t *testing.T) {
	_, logPath := newTestProject(t, "poetry 1.8.3\n")

	var stdout, stderr bytes.Buffer
	exitCode := 0
	runMain([]string{"tp", "sync", "poetry"}, &stdout, &stderr, func(code int) { exitCode = code })

	if exitCode != 0 {
		t.Fatalf("expected exit 0, got %d (stderr: %s)", exitCode, stderr.String())
	}
	if calls := readCalls(t, logPath); len(calls) != 2 {
		t.Fatalf("expected 2 subsystem calls, got %v", calls)
	}
}
