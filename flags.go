package allocmadvise

import "strings"

// Flags records how a Memory was allocated.
type Flags uint32

const (
	// FlagNone means no special instructions.
	FlagNone Flags = 0
	// FlagHugePages indicates that huge pages were requested.
	FlagHugePages Flags = 1 << 0
	// FlagSequential indicates that memory access is mainly sequential rather than random-access.
	FlagSequential Flags = 1 << 1
)

// Has reports whether every bit of flag is set in f.
func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

func (f Flags) String() string {
	if f == FlagNone {
		return "none"
	}
	var parts []string
	if f.Has(FlagHugePages) {
		parts = append(parts, "huge_pages")
	}
	if f.Has(FlagSequential) {
		parts = append(parts, "sequential")
	}
	if rest := f &^ (FlagHugePages | FlagSequential); rest != 0 {
		parts = append(parts, "unknown")
	}
	return strings.Join(parts, "|")
}
