package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
)

type allocFlags struct {
	size       string
	sequential bool
	clear      bool
	touch      bool
	hold       time.Duration
	asJSON     bool
}

type allocReport struct {
	NumBytes   int    `json:"num_bytes"`
	Size       string `json:"size"`
	Alignment  int    `json:"alignment"`
	Flags      string `json:"flags"`
	Address    string `json:"address"`
	AllocNanos int64  `json:"alloc_nanos"`
	TouchNanos int64  `json:"touch_nanos,omitempty"`
}

func newAllocCommand(g *globalFlags) *cobra.Command {
	f := &allocFlags{}

	cmd := &cobra.Command{
		Use:   "alloc",
		Short: "Allocate a buffer, report its layout and release it",
		Long: `Allocate a buffer of --size bytes, print its alignment, flags and
address, then release it.

Use --touch to write every page before release and --hold to keep the
buffer alive for a while, e.g. to inspect AnonHugePages in /proc/meminfo.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAlloc(cmd, g, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.size, "size", "2MiB", "Number of bytes to allocate")
	flags.BoolVar(&f.sequential, "sequential", false, "Advise mostly sequential access")
	flags.BoolVar(&f.clear, "clear", false, "Guarantee zeroed memory")
	flags.BoolVar(&f.touch, "touch", false, "Write every page of the buffer")
	flags.DurationVar(&f.hold, "hold", 0, "Keep the buffer allocated for this long")
	flags.BoolVar(&f.asJSON, "json", false, "Print the report as JSON")
	return cmd
}

func runAlloc(cmd *cobra.Command, g *globalFlags, f *allocFlags) error {
	numBytes, err := parseSize(f.size)
	if err != nil {
		return err
	}
	a, err := g.allocator()
	if err != nil {
		return err
	}

	start := time.Now()
	mem, err := a.AllocateContext(cmd.Context(), numBytes, f.sequential, f.clear)
	if err != nil {
		return fmt.Errorf("allocate %s: %w", formatSize(numBytes), err)
	}
	defer mem.Close()

	report := allocReport{
		NumBytes:   mem.Len(),
		Size:       formatSize(mem.Len()),
		Alignment:  mem.Alignment(),
		Flags:      mem.Flags().String(),
		Address:    fmt.Sprintf("%p", mem.Pointer()),
		AllocNanos: time.Since(start).Nanoseconds(),
	}

	if f.touch {
		start = time.Now()
		touch(mem.Bytes())
		report.TouchNanos = time.Since(start).Nanoseconds()
	}

	if f.hold > 0 {
		select {
		case <-time.After(f.hold):
		case <-cmd.Context().Done():
		}
	}

	return writeReport(cmd.OutOrStdout(), report, f.asJSON)
}

func touch(data []byte) {
	const stride = 4096
	for i := 0; i < len(data); i += stride {
		data[i] = 1
	}
}

func writeReport(w io.Writer, r allocReport, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	_, err := fmt.Fprintf(w, "size:      %s (%d bytes)\nalignment: %d\nflags:     %s\naddress:   %s\nallocate:  %s\n",
		r.Size, r.NumBytes, r.Alignment, r.Flags, r.Address, time.Duration(r.AllocNanos))
	if err != nil {
		return err
	}
	if r.TouchNanos > 0 {
		_, err = fmt.Fprintf(w, "touch:     %s\n", time.Duration(r.TouchNanos))
	}
	return err
}
