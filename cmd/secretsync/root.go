package main

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Checker-Finance/secretsync/internal/config"
	"github.com/Checker-Finance/secretsync/internal/publish"
	"github.com/Checker-Finance/secretsync/pkg/logger"
	pkgsecrets "github.com/Checker-Finance/secretsync/pkg/secrets"
)

// rootOptions carries dependencies that tests replace.
type rootOptions struct {
	runner   publish.Runner      // nil = os/exec
	provider pkgsecrets.Provider // nil = chosen from config
	stdout   io.Writer
	stderr   io.Writer
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	envFile     string
	credentials string
	logLevel    string
}

func newRootCmd(opts rootOptions) *cobra.Command {
	if opts.stdout == nil {
		opts.stdout = os.Stdout
	}
	if opts.stderr == nil {
		opts.stderr = os.Stderr
	}

	flags := &globalFlags{}
	st := &state{opts: opts}

	root := &cobra.Command{
		Use:   "secretsync",
		Short: "Publish service-account credentials as function secrets.",
		Long: `secretsync reads a service-account JSON key, combines its private key and
client email with operator-supplied tokens, and either writes them to a
dotenv file or sets them on the hosting platform through its secrets CLI.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == versionCmdName {
				return nil
			}
			cfg, err := config.Load(flags.envFile)
			if err != nil {
				return err
			}
			if flags.credentials != "" {
				cfg.CredentialsPath = flags.credentials
			}
			if flags.logLevel != "" {
				cfg.LogLevel = flags.logLevel
			}

			logger.Init(cfg.ServiceName, cfg.Env, cfg.LogLevel)
			st.cfg = cfg
			st.log = logger.With(zap.String("run_id", uuid.NewString()))
			return nil
		},
	}
	root.SetOut(opts.stdout)
	root.SetErr(opts.stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&flags.envFile, "env-file", "", "dotenv file with configuration (default: ./.env if present)")
	pf.StringVarP(&flags.credentials, "credentials", "c", "", "service-account JSON key file (env GOOGLE_CREDENTIALS_FILE)")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level (env LOG_LEVEL)")

	root.AddCommand(newEnvCmd(st), newPushCmd(st), newVersionCmd(opts.stdout))
	return root
}
