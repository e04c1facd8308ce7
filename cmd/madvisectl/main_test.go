package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"4096", 4096},
		{"63KiB", 63 * 1024},
		{"4MiB", 4 << 20},
		{"4 MiB", 4 << 20},
		{"1GiB", 1 << 30},
		{"2kb", 2000},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseSize(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSize_Invalid(t *testing.T) {
	_, err := parseSize("")
	require.ErrorIs(t, err, errEmptySize)

	_, err = parseSize("lots")
	require.Error(t, err)

	_, err = parseSize("8GiB")
	require.Error(t, err)
}

func TestAllocCommand_JSON(t *testing.T) {
	out, err := execute(t, "alloc", "--size", "4MiB", "--sequential", "--clear", "--touch", "--json")
	require.NoError(t, err)

	var r allocReport
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, 4<<20, r.NumBytes)
	assert.Equal(t, 2<<20, r.Alignment)
	assert.Equal(t, "huge_pages|sequential", r.Flags)
	assert.Equal(t, "4.0 MiB", r.Size)
}

func TestAllocCommand_Text(t *testing.T) {
	out, err := execute(t, "alloc", "--size", "63KiB")
	require.NoError(t, err)
	assert.Contains(t, out, "alignment: 64")
	assert.Contains(t, out, "flags:     none")
}

func TestAllocCommand_Empty(t *testing.T) {
	_, err := execute(t, "alloc", "--size", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty allocation")
}

func TestAllocCommand_MemoryLimit(t *testing.T) {
	_, err := execute(t, "--memory-limit", "1MiB", "alloc", "--size", "2MiB")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "memory limit exceeded")
}

func TestHintCommand(t *testing.T) {
	out, err := execute(t, "hint", "4MiB", "1MiB")
	require.NoError(t, err)
	assert.Contains(t, out, "4.0 MiB\talignment=2097152\thuge_pages=true")
	assert.Contains(t, out, "1.0 MiB\talignment=64\thuge_pages=false")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "madvisectl v")
}

func TestParseLevel(t *testing.T) {
	_, err := parseLevel("debug")
	require.NoError(t, err)
	_, err = parseLevel("loud")
	require.Error(t, err)
}
