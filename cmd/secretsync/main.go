// secretsync publishes service-account credentials and operator tokens as
// secrets for a function-hosting platform.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Checker-Finance/secretsync/internal/credential"
	"github.com/Checker-Finance/secretsync/internal/publish"
	"github.com/Checker-Finance/secretsync/pkg/logger"
)

// Process exit codes.
const (
	exitOK         = 0
	exitFailure    = 1
	exitLoad       = 2
	exitInvocation = 3
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd(rootOptions{}).ExecuteContext(ctx)
	logger.Sync()
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	var (
		loadErr *credential.LoadError
		invErr  *publish.InvocationError
	)
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &loadErr):
		return exitLoad
	case errors.As(err, &invErr):
		return exitInvocation
	default:
		return exitFailure
	}
}
