package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/toolpin/internal/config"
	"github.com/conn-castle/toolpin/internal/manager"
	"github.com/conn-castle/toolpin/internal/messages"
	"github.com/conn-castle/toolpin/internal/reconcile"
	"github.com/conn-castle/toolpin/internal/terminal"
)

var isTerminal = terminal.IsInteractive

func newSyncCmd() *cobra.Command {
	var manifestFlag string
	var yes bool

	cmd := &cobra.Command{
		Use:   messages.SyncUse,
		Short: messages.SyncShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectRoot, err := resolveProjectRoot()
			if err != nil {
				return err
			}
			cfg, err := config.Load(projectRoot)
			if err != nil {
				return err
			}
			manifestPath := manifestFlag
			if manifestPath == "" {
				manifestPath, err = cfg.ManifestPath(projectRoot)
				if err != nil {
					return err
				}
			}

			if !yes && isTerminal() {
				prompt := messages.SyncConfirmAllPrompt
				if len(args) == 1 {
					prompt = fmt.Sprintf(messages.SyncConfirmOnePromptFmt, args[0])
				}
				confirmed, err := promptYesNo(cmd.InOrStdin(), cmd.OutOrStdout(), prompt, true)
				if err != nil {
					return err
				}
				if !confirmed {
					return errors.New(messages.SyncAborted)
				}
			}

			mgr := manager.NewExecManager(cfg.Manager.Binary, cmd.OutOrStdout(), cmd.ErrOrStderr())

			var outcomes []reconcile.Outcome
			if len(args) == 0 {
				outcomes, err = reconcile.All(cmd.Context(), mgr, manifestPath)
				if err == nil && len(outcomes) == 0 {
					return fmt.Errorf(messages.SyncNothingPinnedFmt, manifestPath)
				}
			} else {
				for _, tool := range args {
					outcome, toolErr := reconcile.Tool(cmd.Context(), mgr, tool, manifestPath)
					if toolErr != nil {
						err = toolErr
						break
					}
					outcomes = append(outcomes, outcome)
				}
			}

			for _, outcome := range outcomes {
				format := messages.SyncReinstalledFmt
				if !outcome.WasInstalled {
					format = messages.SyncInstalledFmt
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), format, outcome.Tool, outcome.Version)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&manifestFlag, "manifest", "", messages.SyncFlagManifest)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, messages.SyncFlagYes)
	return cmd
}
