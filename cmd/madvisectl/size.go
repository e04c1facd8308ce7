package main

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/hupe1980/allocmadvise/internal/conv"
)

var errEmptySize = errors.New("empty size")

// parseSize parses a byte count such as "4096", "63KiB" or "4MiB".
// Decimal units (KB, MB) are accepted too and mean powers of 1000.
func parseSize(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errEmptySize
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if n > math.MaxInt32 {
		return 0, fmt.Errorf("size %q exceeds %s", s, humanize.IBytes(math.MaxInt32))
	}
	return conv.Uint64ToInt(n)
}

func formatSize(n int) string {
	u, err := conv.IntToUint64(n)
	if err != nil {
		return fmt.Sprintf("%d B", n)
	}
	return humanize.IBytes(u)
}
