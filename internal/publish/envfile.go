package publish

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/Checker-Finance/secretsync/internal/assignment"
)

var envValueEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// EnvFilePublisher writes assignments to a dotenv file for manual use.
type EnvFilePublisher struct {
	logger *zap.Logger
	path   string
}

// NewEnvFilePublisher creates a publisher that writes to path.
func NewEnvFilePublisher(logger *zap.Logger, path string) *EnvFilePublisher {
	return &EnvFilePublisher{logger: logger, path: path}
}

// Publish overwrites the file with one NAME="VALUE" entry per assignment.
// The target is not used by this strategy.
func (p *EnvFilePublisher) Publish(_ context.Context, assignments []assignment.Assignment, target string) (*Result, error) {
	if err := os.WriteFile(p.path, FormatEnv(assignments), 0o600); err != nil {
		return nil, fmt.Errorf("write env file %q: %w", p.path, err)
	}

	p.logger.Info("publish.env_file_written",
		zap.String("path", p.path),
		zap.Strings("names", assignment.Names(assignments)),
	)
	return &Result{
		Strategy: StrategyEnvFile,
		Target:   target,
		Count:    len(assignments),
		Path:     p.path,
	}, nil
}

// FormatEnv renders assignments as NAME="VALUE" lines. Newlines inside values
// are kept literally; backslashes and double quotes are escaped.
func FormatEnv(assignments []assignment.Assignment) []byte {
	var buf bytes.Buffer
	for _, a := range assignments {
		buf.WriteString(a.Name)
		buf.WriteString(`="`)
		buf.WriteString(envValueEscaper.Replace(a.Value))
		buf.WriteString("\"\n")
	}
	return buf.Bytes()
}
