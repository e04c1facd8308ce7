package allocmadvise

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateRecord(t *testing.T) {
	r := AllocateRecord(4<<20, true, true)
	require.Equal(t, StatusOK, r.Status)
	assert.Equal(t, FlagHugePages|FlagSequential, r.Flags)
	assert.Equal(t, uint32(4<<20), r.NumBytes)
	require.NotNil(t, r.Address)
	assert.Zero(t, uintptr(r.Address)%(2<<20))

	FreeRecord(r)
}

func TestAllocateRecord_Empty(t *testing.T) {
	r := AllocateRecord(0, false, false)
	assert.Equal(t, StatusEmpty, r.Status)
	assert.Nil(t, r.Address)
	assert.Zero(t, r.NumBytes)

	FreeRecord(r)
}

func TestAllocateRecord_CacheLine(t *testing.T) {
	r := AllocateRecord(63*1024, false, false)
	require.Equal(t, StatusOK, r.Status)
	assert.Equal(t, FlagNone, r.Flags)
	assert.Zero(t, uintptr(r.Address)%64)

	FreeRecord(r)
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want Status
	}{
		{nil, StatusOK},
		{ErrEmptyAllocation, StatusEmpty},
		{fmt.Errorf("wrapped: %w", ErrEmptyAllocation), StatusEmpty},
		{&LayoutError{Size: 3, Alignment: 3}, StatusInvalidAlignment},
		{ErrMemoryLimitExceeded, StatusMemoryLimit},
		{ErrRateLimitExceeded, StatusMemoryLimit},
		{errors.New("other"), StatusInvalidAlignment},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusOf(tt.err), "%v", tt.err)
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "ok", StatusOK.String())
	assert.Equal(t, "empty", StatusEmpty.String())
	assert.Equal(t, "invalid_alignment", StatusInvalidAlignment.String())
	assert.Equal(t, "memory_limit", StatusMemoryLimit.String())
	assert.Equal(t, "unknown", Status(99).String())
}
