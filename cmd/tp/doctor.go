package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/toolpin/internal/config"
	"github.com/conn-castle/toolpin/internal/doctor"
	"github.com/conn-castle/toolpin/internal/manager"
	"github.com/conn-castle/toolpin/internal/messages"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			projectRoot, err := resolveProjectRoot()
			if err != nil {
				return err
			}
			cfg, err := config.Load(projectRoot)
			if err != nil {
				return err
			}
			manifestPath, err := cfg.ManifestPath(projectRoot)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(out, messages.DoctorHealthCheckFmt, projectRoot)

			var allResults []doctor.Result

			manifestResults, entries := doctor.CheckManifest(manifestPath)
			allResults = append(allResults, manifestResults...)

			managerResults := doctor.CheckManager(cfg.Manager.Binary)
			allResults = append(allResults, managerResults...)

			// Convergence needs both a readable manifest and a working manager.
			if len(entries) > 0 && managerResults[0].Status == doctor.StatusOK {
				// Subsystem output is noise here; only the parsed version matters.
				mgr := manager.NewExecManager(cfg.Manager.Binary, nil, nil)
				allResults = append(allResults, doctor.CheckConvergence(cmd.Context(), mgr, entries)...)
			}

			hasFail := false
			for _, r := range allResults {
				printResult(out, r)
				if r.Status == doctor.StatusFail {
					hasFail = true
				}
			}
			if hasFail {
				return errors.New(messages.DoctorFailed)
			}
			return nil
		},
	}
}

// printResult renders one check result with a colored status tag.
func printResult(out io.Writer, r doctor.Result) {
	tag := string(r.Status)
	switch r.Status {
	case doctor.StatusOK:
		tag = color.GreenString(tag)
	case doctor.StatusWarn:
		tag = color.YellowString(tag)
	case doctor.StatusFail:
		tag = color.RedString(tag)
	}
	_, _ = fmt.Fprintf(out, "[%s] %s: %s\n", tag, r.CheckName, r.Message)
	if r.Recommendation != "" {
		_, _ = fmt.Fprintf(out, "       %s\n", r.Recommendation)
	}
}
