package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/allocmadvise/internal/alignment"
)

func newHintCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hint <size>...",
		Short: "Show the alignment and huge page decision for sizes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, arg := range args {
				n, err := parseSize(arg)
				if err != nil {
					return err
				}
				h := alignment.Decide(n)
				if _, err := fmt.Fprintf(w, "%s\talignment=%d\thuge_pages=%t\n", formatSize(n), h.Alignment, h.HugePages); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
