//go:build linux || darwin

package mmap

import (
	"os"

	"golang.org/x/sys/unix"
)

func mmap(f *os.File, prot Prot, length int) (MMap, error) {
	flags := unix.PROT_READ
	if prot == RDWR {
		flags |= unix.PROT_WRITE
	}

	data, err := unix.Mmap(int(f.Fd()), 0, length, flags, unix.MAP_SHARED)
	if err != nil {
		return nil, err
	}

	return MMap(data), nil
}

func unmap(m MMap) error {
	if len(m) == 0 {
		return nil
	}
	return unix.Munmap(m)
}

func flush(m MMap) error {
	if len(m) == 0 {
		return nil
	}
	return unix.Msync(m, unix.MS_SYNC)
}
