package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Checker-Finance/secretsync/internal/publish"
)

func newEnvCmd(st *state) *cobra.Command {
	var (
		out          string
		includeFixed bool
	)

	cmd := &cobra.Command{
		Use:   "env",
		Short: "Write the credential secrets to a dotenv file",
		Long: `Write GOOGLE_PRIVATE_KEY and GOOGLE_SERVICE_ACCOUNT_EMAIL as NAME="VALUE"
lines to a local file for manual use. The file holds plaintext secrets and is
created with mode 0600, overwriting any previous content.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := st.cfg.EnvFilePath
			if out != "" {
				path = out
			}

			res, err := st.execute(cmd.Context(), runRequest{
				strategy:     publish.StrategyEnvFile,
				includeFixed: includeFixed,
				publisher:    publish.NewEnvFilePublisher(st.log, path),
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), confirmation(res))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (env ENV_FILE_PATH, default temp.env)")
	cmd.Flags().BoolVar(&includeFixed, "fixed", false, "also write the fixed secrets (FIXED_SECRET_NAMES)")
	return cmd
}
