// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package heat reads per-inode heat statistics from filesystems that
// track them (mounted with the hot_track option on kernels carrying
// the VFS hot-tracking patches).
//
// # Query
//
// [Query] issues FS_IOC_GET_HEAT_INFO, encoded as _IOR('f', 17, 80), on
// a caller-owned file descriptor and returns the kernel's [Record].
// The call is synchronous, allocates its own record, holds no locks,
// and never retries or logs. It is safe to call concurrently on any
// descriptors.
//
// Failures come back as [*QueryError], classified from the errno the
// raw syscall returned:
//
//   - EBADF: [IsBadDescriptor], a caller bug
//   - EOPNOTSUPP: [IsUnsupported], the filesystem does not track heat
//   - ENODATA: [IsNoData], the inode has no heat recorded yet
//   - EFAULT: [IsBadBuffer], the output buffer was not addressable
//
// Unsupported and no-data are normal outcomes, not exceptional ones.
// Any other errno is surfaced verbatim; errors.As recovers it.
//
// # Collector and samples
//
// [Collector] holds a set of files open and produces one [Sample] per
// file on each [Collector.Collect]. Samples carry the outcome as a
// [Status] and encode to a CBOR sequence through [EncodeSamples]. The
// collector takes snapshots only; it keeps no history.
//
// Heat queries require Linux. The package still builds for darwin,
// the BSDs and windows, where [Query] returns [ErrPlatformUnsupported].
// Errno classification is Linux-only; ENODATA, for one, is not
// defined on FreeBSD or OpenBSD.
package heat
