package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Checker-Finance/secretsync/internal/publish"
)

func newPushCmd(st *state) *cobra.Command {
	var (
		projectRef string
		dryRun     bool
		noFixed    bool
	)

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Set the secrets on the hosting platform through its CLI",
		Long: `Run the platform secrets CLI once, e.g.

  npx -y supabase secrets set BOT_TOKEN=... GEMINI_API_KEY=... \
      GOOGLE_PRIVATE_KEY=... GOOGLE_SERVICE_ACCOUNT_EMAIL=... --project-ref <ref>

Values are passed as separate arguments, never through a shell, so multi-line
private keys are delivered unmodified. The CLI's own output is relayed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target := st.cfg.ProjectRef
			if projectRef != "" {
				target = projectRef
			}
			if target == "" {
				return errors.New("no project ref: set PROJECT_REF or pass --project-ref")
			}

			pub, err := publish.NewCLIPublisher(st.log, st.opts.runner, publish.CLIOptions{
				Command:    st.cfg.PublishCommand,
				TargetFlag: st.cfg.TargetFlag,
				DryRun:     dryRun,
				Stdout:     cmd.OutOrStdout(),
				Stderr:     cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}

			res, err := st.execute(cmd.Context(), runRequest{
				strategy:     publish.StrategyCLI,
				target:       target,
				includeFixed: !noFixed,
				publisher:    pub,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), confirmation(res))
			return nil
		},
	}

	cmd.Flags().StringVar(&projectRef, "project-ref", "", "target project (env PROJECT_REF)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the command with masked values instead of running it")
	cmd.Flags().BoolVar(&noFixed, "no-fixed", false, "only publish the credential-derived secrets")
	return cmd
}
