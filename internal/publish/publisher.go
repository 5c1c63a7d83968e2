// Package publish delivers secret assignments to their destination, either a
// local dotenv file or the hosting platform's secrets CLI.
package publish

import (
	"context"
	"fmt"

	"github.com/Checker-Finance/secretsync/internal/assignment"
)

// Strategy names, also used as metric labels.
const (
	StrategyEnvFile = "env-file"
	StrategyCLI     = "cli"
)

// Publisher delivers a batch of assignments to a target in one step.
type Publisher interface {
	Publish(ctx context.Context, assignments []assignment.Assignment, target string) (*Result, error)
}

// Result describes a completed publish.
type Result struct {
	Strategy string
	Target   string
	Count    int
	Path     string // env-file only
	DryRun   bool
}

// InvocationError reports that the external secrets command could not be
// started or exited non-zero.
type InvocationError struct {
	Command  string
	Started  bool
	ExitCode int // -1 when the process never started or was killed by a signal
	Stderr   string
	Err      error
}

func (e *InvocationError) Error() string {
	switch {
	case !e.Started:
		return fmt.Sprintf("start %s: %v", e.Command, e.Err)
	case e.ExitCode < 0:
		return fmt.Sprintf("%s terminated: %v", e.Command, e.Err)
	default:
		return fmt.Sprintf("%s exited with status %d", e.Command, e.ExitCode)
	}
}

func (e *InvocationError) Unwrap() error { return e.Err }
