// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !linux

package heat

import "syscall"

// classify has nothing to map outside Linux: Query never reaches the
// kernel there.
func classify(syscall.Errno) Kind {
	return KindOther
}
