package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/conn-castle/toolpin/internal/config"
	"github.com/conn-castle/toolpin/internal/messages"
)

// newLicensesCmd runs the license-compliance collaborator script. The script
// is opaque to toolpin: its stdio is inherited and its exit status becomes
// the command's exit status, so build orchestration sees failures directly.
func newLicensesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.LicensesUse,
		Short: messages.LicensesShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectRoot, err := resolveProjectRoot()
			if err != nil {
				return err
			}
			cfg, err := config.Load(projectRoot)
			if err != nil {
				return err
			}
			script, err := cfg.LicensesScript(projectRoot)
			if err != nil {
				return err
			}
			if _, err := os.Stat(script); err != nil {
				return fmt.Errorf(messages.LicensesScriptMissingFmt, script)
			}

			check := exec.CommandContext(cmd.Context(), script)
			check.Dir = projectRoot
			check.Stdin = cmd.InOrStdin()
			check.Stdout = cmd.OutOrStdout()
			check.Stderr = cmd.ErrOrStderr()
			if err := check.Run(); err != nil {
				// The wrapped exec.ExitError reaches runMain, which passes
				// the script's exit code through.
				return fmt.Errorf(messages.LicensesScriptFailedFmt, err)
			}
			return nil
		},
	}
}
