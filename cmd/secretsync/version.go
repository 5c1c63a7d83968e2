package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

const versionCmdName = "version"

var (
	version = "dev"
	commit  = "unknown"
)

func newVersionCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   versionCmdName,
		Short: "Print the version",
		Run: func(_ *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(out, "secretsync %s (commit: %s)\n", version, commit)
		},
	}
}
