package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/allocmadvise"
)

type globalFlags struct {
	logLevel    string
	jsonLogs    bool
	memoryLimit string
}

func newRootCommand() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "madvisectl",
		Short: "Allocate aligned memory with madvise hints",
		Long: `madvisectl exercises the allocmadvise allocator.

Sizes accept plain byte counts or units, e.g. 4096, 63KiB, 4MiB, 1GiB.
Sizes that are a multiple of 2 MiB are aligned to 2 MiB and request
transparent huge pages; all other sizes are aligned to a 64 byte cache line.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	pf.BoolVar(&g.jsonLogs, "json-logs", false, "Emit logs as JSON")
	pf.StringVar(&g.memoryLimit, "memory-limit", "", "Cap on live allocated bytes, e.g. 1GiB (empty means unlimited)")

	root.AddCommand(
		newAllocCommand(g),
		newHintCommand(),
		newVersionCommand(),
	)
	return root
}

func (g *globalFlags) allocator(extra ...allocmadvise.Option) (*allocmadvise.Allocator, error) {
	level, err := parseLevel(g.logLevel)
	if err != nil {
		return nil, err
	}

	logger := allocmadvise.NewTextLogger(level)
	if g.jsonLogs {
		logger = allocmadvise.NewJSONLogger(level)
	}

	opts := []allocmadvise.Option{allocmadvise.WithLogger(logger)}
	if g.memoryLimit != "" {
		limit, err := parseSize(g.memoryLimit)
		if err != nil {
			return nil, fmt.Errorf("--memory-limit: %w", err)
		}
		opts = append(opts, allocmadvise.WithMemoryLimit(int64(limit))) //nolint:gosec // bounded by parseSize
	}
	return allocmadvise.NewAllocator(append(opts, extra...)...), nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}
