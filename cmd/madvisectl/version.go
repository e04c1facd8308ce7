package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/hupe1980/allocmadvise"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "madvisectl v%s\n- os/arch: %s/%s\n- go/version: %s\n",
				allocmadvise.Version, runtime.GOOS, runtime.GOARCH, runtime.Version())
			return err
		},
	}
}
