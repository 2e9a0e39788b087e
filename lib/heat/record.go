// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package heat

import (
	"unsafe"

	"github.com/bureau-foundation/heatinfo/lib/ioctl"
)

// Ioctl identity of FS_IOC_GET_HEAT_INFO.
const (
	// IoctlType is the filesystem ioctl subsystem tag ('f').
	IoctlType = 'f'

	// IoctlNumber is the heat query's index within the 'f' subsystem.
	IoctlNumber = 17
)

// RecordSize is sizeof(struct hot_heat_info) in the kernel UAPI.
const RecordSize = 80

// Record mirrors the kernel's struct hot_heat_info. The kernel copies
// exactly RecordSize bytes into it, so field order, widths, and
// offsets must not change:
//
//	offset  size  field
//	     0     1  live
//	     1     3  resv
//	     4     4  temp
//	     8     8  avg_delta_reads
//	    16     8  avg_delta_writes
//	    24     8  last_read_time
//	    32     8  last_write_time
//	    40     4  num_reads
//	    44     4  num_writes
//	    48    32  future[4]
//
// Every multi-byte field already sits on its natural boundary, so Go's
// layout equals the C layout on all supported architectures.
type Record struct {
	Live           uint8     `cbor:"live"`
	Reserved       [3]uint8  `cbor:"-"`
	Temperature    uint32    `cbor:"temperature"`
	AvgDeltaReads  uint64    `cbor:"avg_delta_reads"`
	AvgDeltaWrites uint64    `cbor:"avg_delta_writes"`
	LastReadTime   uint64    `cbor:"last_read_time"`
	LastWriteTime  uint64    `cbor:"last_write_time"`
	NumReads       uint32    `cbor:"num_reads"`
	NumWrites      uint32    `cbor:"num_writes"`
	Future         [4]uint64 `cbor:"-"`
}

// Fails to compile if Record's size drifts from the kernel's.
var _ [RecordSize - unsafe.Sizeof(Record{})]struct{}
var _ [unsafe.Sizeof(Record{}) - RecordSize]struct{}

// liveSentinel is written into Live before the call. The kernel
// overwrites the whole record on success, so tests can tell a
// populated record from an untouched one.
const liveSentinel = 1

// heatRequest returns the encoded FS_IOC_GET_HEAT_INFO request.
func heatRequest() ioctl.Request {
	return ioctl.IOR(IoctlType, IoctlNumber, RecordSize)
}
