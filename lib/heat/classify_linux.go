// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build linux

package heat

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// classify maps the errno values the heat ioctl documents to a Kind.
// ENOTSUP and EOPNOTSUPP share a value on Linux.
func classify(errno syscall.Errno) Kind {
	switch errno {
	case unix.EBADF:
		return KindBadDescriptor
	case unix.ENOTSUP:
		return KindUnsupported
	case unix.ENODATA:
		return KindNoData
	case unix.EFAULT:
		return KindBadBuffer
	default:
		return KindOther
	}
}
