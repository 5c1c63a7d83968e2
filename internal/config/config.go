package config

import (
	"fmt"

	"github.com/joho/godotenv"

	pkgconfig "github.com/Checker-Finance/secretsync/pkg/config"
)

// Config holds the runtime configuration for one secretsync run.
// Values come from the environment (optionally seeded from a .env file);
// command-line flags override them.
type Config struct {
	ServiceName string // e.g. "secretsync"
	Env         string // "dev", "uat", "prod"
	LogLevel    string // "debug", "info", etc.

	CredentialsPath string // service-account JSON key file
	ProjectRef      string // publish target for the cli strategy

	// Names of the operator-supplied secrets published ahead of the
	// credential-derived ones. Values are resolved from FixedSecretsID in
	// AWS Secrets Manager when set, otherwise from the environment.
	FixedSecretNames []string
	FixedSecretsID   string
	AWSRegion        string

	EnvFilePath    string   // env-file strategy output
	PublishCommand []string // cli strategy executable + subcommand literals
	TargetFlag     string

	PushgatewayURL string // empty disables metrics push
}

// Load loads configuration from environment variables and a .env file.
// When envFile is empty a ./.env file is loaded if present; an explicit
// envFile must exist.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load env file %q: %w", envFile, err)
		}
	} else {
		// load .env silently (no error if missing)
		_ = godotenv.Load()
	}

	cfg := &Config{
		ServiceName:      pkgconfig.GetEnv("SERVICE_NAME", "secretsync"),
		Env:              pkgconfig.GetEnv("ENV", "dev"),
		LogLevel:         pkgconfig.GetEnv("LOG_LEVEL", "info"),
		CredentialsPath:  pkgconfig.GetEnv("GOOGLE_CREDENTIALS_FILE", ""),
		ProjectRef:       pkgconfig.GetEnv("PROJECT_REF", ""),
		FixedSecretNames: pkgconfig.GetEnvList("FIXED_SECRET_NAMES", []string{"BOT_TOKEN", "GEMINI_API_KEY"}),
		FixedSecretsID:   pkgconfig.GetEnv("FIXED_SECRETS_ID", ""),
		AWSRegion:        pkgconfig.GetEnv("AWS_REGION", "us-east-2"),
		EnvFilePath:      pkgconfig.GetEnv("ENV_FILE_PATH", "temp.env"),
		PublishCommand:   pkgconfig.GetEnvFields("PUBLISH_COMMAND", []string{"npx", "-y", "supabase", "secrets", "set"}),
		TargetFlag:       pkgconfig.GetEnv("TARGET_FLAG", "--project-ref"),
		PushgatewayURL:   pkgconfig.GetEnv("PUSHGATEWAY_URL", ""),
	}

	return cfg, nil
}
