package manager

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/conn-castle/toolpin/internal/messages"
)

// notInstalledPhrases are matched (case-insensitively) against the subsystem's
// output to recognize the "nothing to remove" condition. asdf and mise do not
// use a dedicated exit code for it, so classification is textual. The set is a
// variable so forks targeting other managers can extend it.
var notInstalledPhrases = []string{
	"no such version",
	"not installed",
	"not currently installed",
	"no installed versions",
	"no version is installed",
}

// ExecManager implements Manager by running an asdf-style executable.
// Subsystem output streams to Stdout/Stderr as it is produced and is also
// captured so failures can carry the diagnostic text verbatim.
type ExecManager struct {
	Binary string
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecManager returns an ExecManager for the given executable, streaming
// subsystem output to the provided writers. Nil writers discard output.
func NewExecManager(binary string, stdout io.Writer, stderr io.Writer) *ExecManager {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}
	return &ExecManager{Binary: binary, Stdout: stdout, Stderr: stderr}
}

// Uninstall removes the given version of tool. When the subsystem reports the
// tool (or that version) is absent, Uninstall returns ErrNotInstalled.
func (m *ExecManager) Uninstall(ctx context.Context, tool string, version string) error {
	output, err := m.run(ctx, StepUninstall, tool, version)
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && looksNotInstalled(output) {
		return ErrNotInstalled
	}
	return &SubsystemError{Step: StepUninstall, Tool: tool, Output: output, Err: err}
}

// Install installs tool; the subsystem resolves the target version from the
// same manifest convention on its own.
func (m *ExecManager) Install(ctx context.Context, tool string) error {
	output, err := m.run(ctx, StepInstall, tool)
	if err != nil {
		return &SubsystemError{Step: StepInstall, Tool: tool, Output: output, Err: err}
	}
	return nil
}

// Current returns the version of tool the subsystem currently resolves, in
// `<manager> current <tool>` output form: the version is the second field of
// the first output line. A not-installed report maps to ErrNotInstalled.
func (m *ExecManager) Current(ctx context.Context, tool string) (string, error) {
	output, err := m.run(ctx, StepCurrent, tool)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && looksNotInstalled(output) {
			return "", ErrNotInstalled
		}
		return "", &SubsystemError{Step: StepCurrent, Tool: tool, Output: output, Err: err}
	}
	line, _, _ := strings.Cut(strings.TrimSpace(output), "\n")
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", &SubsystemError{
			Step:   StepCurrent,
			Tool:   tool,
			Output: output,
			Err:    fmt.Errorf(messages.ManagerCurrentNoVersionFmt, tool, line),
		}
	}
	return fields[1], nil
}

// run executes `<binary> <step> <tool> [args...]`, returning the combined
// output alongside any execution error.
func (m *ExecManager) run(ctx context.Context, step string, tool string, extra ...string) (string, error) {
	if strings.TrimSpace(m.Binary) == "" {
		return "", errors.New(messages.ManagerBinaryRequired)
	}
	args := append([]string{step, tool}, extra...)
	cmd := exec.CommandContext(ctx, m.Binary, args...)
	var captured bytes.Buffer
	cmd.Stdout = io.MultiWriter(m.Stdout, &captured)
	cmd.Stderr = io.MultiWriter(m.Stderr, &captured)
	cmd.Env = os.Environ()
	err := cmd.Run()
	return captured.String(), err
}

// looksNotInstalled reports whether the subsystem output describes a
// nothing-to-remove condition rather than a real failure.
func looksNotInstalled(output string) bool {
	lowered := strings.ToLower(output)
	for _, phrase := range notInstalledPhrases {
		if strings.Contains(lowered, phrase) {
			return true
		}
	}
	return false
}
