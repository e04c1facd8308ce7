//go:build !unix && !windows

package mmap

import (
	"errors"
	"os"
	"unsafe"
)

var pageSize = os.Getpagesize()

func osMapAligned(length, alignment int) (unsafe.Pointer, error) {
	return nil, errors.ErrUnsupported
}

func osUnmap(addr unsafe.Pointer, length int) error {
	return errors.ErrUnsupported
}
