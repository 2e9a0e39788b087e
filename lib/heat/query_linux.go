// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build linux

package heat

import (
	"os"
	"runtime"
	"unsafe"

	"github.com/bureau-foundation/heatinfo/lib/ioctl"
	"golang.org/x/sys/unix"
)

// Query reads the heat record for the inode behind fd. The descriptor
// is not validated locally; the kernel rejects bad ones with EBADF.
//
// On failure the returned Record is zero and the error is a
// *QueryError.
func Query(fd int) (Record, error) {
	record := Record{Live: liveSentinel}
	request := heatRequest()
	if err := ioctlPointer(fd, request, unsafe.Pointer(&record)); err != nil {
		return Record{}, err
	}
	return record, nil
}

// QueryFile is Query on file's descriptor. The file stays referenced
// until the syscall returns.
func QueryFile(file *os.File) (Record, error) {
	record, err := Query(int(file.Fd()))
	runtime.KeepAlive(file)
	return record, err
}

// ioctlPointer is the only place this package enters the kernel. arg
// must point at a buffer of request.Size() bytes, or be deliberately
// invalid in tests. The errno comes back from the syscall itself, so
// nothing can overwrite it before it is classified.
func ioctlPointer(fd int, request ioctl.Request, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(
		unix.SYS_IOCTL,
		uintptr(fd),
		request.Uintptr(),
		uintptr(arg),
	)
	if errno != 0 {
		return newQueryError(request, errno)
	}
	return nil
}
