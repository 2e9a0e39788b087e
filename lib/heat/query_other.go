// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !linux

package heat

import "os"

// Query always fails with ErrPlatformUnsupported outside Linux.
func Query(fd int) (Record, error) {
	return Record{}, ErrPlatformUnsupported
}

// QueryFile always fails with ErrPlatformUnsupported outside Linux.
func QueryFile(file *os.File) (Record, error) {
	return Record{}, ErrPlatformUnsupported
}
