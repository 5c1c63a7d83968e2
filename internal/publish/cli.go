package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/alessio/shellescape"
	"go.uber.org/zap"

	"github.com/Checker-Finance/secretsync/internal/assignment"
	"github.com/Checker-Finance/secretsync/pkg/utils"
)

// DefaultTargetFlag selects the project on the hosting platform's CLI.
const DefaultTargetFlag = "--project-ref"

// Runner starts an external command and waits for it to finish.
type Runner interface {
	Run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error
}

// ExecRunner runs commands with os/exec. Arguments are passed as a vector,
// never through a shell.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// CLIOptions configures a CLIPublisher.
type CLIOptions struct {
	// Command is the executable followed by its subcommand literals,
	// e.g. ["npx", "-y", "supabase", "secrets", "set"].
	Command    []string
	TargetFlag string
	DryRun     bool
	Stdout     io.Writer
	Stderr     io.Writer
}

// CLIPublisher sets secrets through a single invocation of an external CLI.
type CLIPublisher struct {
	logger *zap.Logger
	runner Runner
	opts   CLIOptions
}

// NewCLIPublisher creates a CLI publisher. A nil runner uses ExecRunner.
func NewCLIPublisher(logger *zap.Logger, runner Runner, opts CLIOptions) (*CLIPublisher, error) {
	if len(opts.Command) == 0 || opts.Command[0] == "" {
		return nil, errors.New("publish command is empty")
	}
	if runner == nil {
		runner = ExecRunner{}
	}
	if opts.TargetFlag == "" {
		opts.TargetFlag = DefaultTargetFlag
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	return &CLIPublisher{logger: logger, runner: runner, opts: opts}, nil
}

// Args builds the argument vector passed to the executable: subcommand
// literals, one NAME=VALUE token per assignment, then the target flag and value.
func (p *CLIPublisher) Args(assignments []assignment.Assignment, target string) []string {
	args := make([]string, 0, len(p.opts.Command)-1+len(assignments)+2)
	args = append(args, p.opts.Command[1:]...)
	for _, a := range assignments {
		args = append(args, a.Token())
	}
	return append(args, p.opts.TargetFlag, target)
}

// Describe renders the command as a shell-quoted line with secret values masked.
func (p *CLIPublisher) Describe(assignments []assignment.Assignment, target string) string {
	masked := make([]assignment.Assignment, len(assignments))
	for i, a := range assignments {
		masked[i] = assignment.Assignment{Name: a.Name, Value: utils.MaskSecret(a.Value)}
	}
	argv := append([]string{p.opts.Command[0]}, p.Args(masked, target)...)
	return shellescape.QuoteCommand(argv)
}

// Publish runs the CLI exactly once. The child's output is relayed to the
// configured streams; stderr is also kept for the returned error.
func (p *CLIPublisher) Publish(ctx context.Context, assignments []assignment.Assignment, target string) (*Result, error) {
	if target == "" {
		return nil, errors.New("publish target is empty")
	}

	result := &Result{
		Strategy: StrategyCLI,
		Target:   target,
		Count:    len(assignments),
		DryRun:   p.opts.DryRun,
	}

	if p.opts.DryRun {
		_, _ = fmt.Fprintln(p.opts.Stdout, p.Describe(assignments, target))
		return result, nil
	}

	name := p.opts.Command[0]
	p.logger.Info("publish.cli_invoking",
		zap.String("command", name),
		zap.String("target", target),
		zap.Strings("names", assignment.Names(assignments)),
	)

	var captured bytes.Buffer
	err := p.runner.Run(ctx, name, p.Args(assignments, target), p.opts.Stdout, io.MultiWriter(p.opts.Stderr, &captured))
	if err != nil {
		code, started := exitStatus(err)
		invErr := &InvocationError{
			Command:  name,
			Started:  started,
			ExitCode: code,
			Stderr:   captured.String(),
			Err:      err,
		}
		p.logger.Error("publish.cli_failed",
			zap.String("command", name),
			zap.Int("exit_code", invErr.ExitCode),
			zap.Error(err),
		)
		return nil, invErr
	}

	p.logger.Info("publish.cli_succeeded",
		zap.String("target", target),
		zap.Int("count", len(assignments)),
	)
	return result, nil
}

// exitStatus extracts the child's exit status. started is false when the
// process could not be launched at all.
func exitStatus(err error) (code int, started bool) {
	var coded interface{ ExitCode() int }
	if errors.As(err, &coded) {
		return coded.ExitCode(), true
	}
	return -1, false
}
