// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package ioctl encodes Linux ioctl request numbers.
//
// A request number packs four fields into one 32-bit word, following
// include/uapi/asm-generic/ioctl.h:
//
//	bits  0-7   number     operation index within the subsystem
//	bits  8-15  type       subsystem tag, usually an ASCII character
//	bits 16-29  size       payload size in bytes
//	bits 30-31  direction  none, write, read, or read|write
//
// Direction is named from userspace: [Read] means the kernel writes
// into the caller's buffer. [Encode] performs no range checks, exactly
// like the C _IOC macro it mirrors. Callers pass fixed, known-good
// values; an oversized field silently spills into its neighbour.
//
// Only the asm-generic layout is implemented. Architectures that use a
// 3-bit direction field (powerpc, mips, sparc) are not supported.
//
// This package has no dependencies on other packages in this module.
package ioctl
