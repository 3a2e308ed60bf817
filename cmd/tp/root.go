package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conn-castle/toolpin/internal/messages"
	"github.com/conn-castle/toolpin/internal/root"
)

var getwd = os.Getwd

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newSyncCmd())
	cmd.AddCommand(newDoctorCmd())
	cmd.AddCommand(newLicensesCmd())
	return cmd
}

// resolveProjectRoot returns the nearest ancestor directory that looks like a
// toolpin project, or fails if none exists.
func resolveProjectRoot() (string, error) {
	cwd, err := getwd()
	if err != nil {
		return "", err
	}
	projectRoot, found, err := root.FindProjectRoot(cwd)
	if err != nil {
		return "", err
	}
	if !found {
		return "", errors.New(messages.RootMissingManifest)
	}
	return projectRoot, nil
}

// promptYesNo asks a yes/no question and reads the answer from in.
// An empty line takes the default; EOF answers no.
func promptYesNo(in io.Reader, out io.Writer, prompt string, defaultYes bool) (bool, error) {
	reader := bufio.NewReader(in)
	for {
		format := messages.PromptNoDefaultFmt
		if defaultYes {
			format = messages.PromptYesDefaultFmt
		}
		if _, err := fmt.Fprintf(out, format, prompt); err != nil {
			return false, err
		}
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, err
		}
		response := strings.TrimSpace(line)
		if response == "" {
			if errors.Is(err, io.EOF) {
				return false, nil
			}
			return defaultYes, nil
		}
		switch strings.ToLower(response) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if errors.Is(err, io.EOF) {
			return false, nil
		}
	}
}
