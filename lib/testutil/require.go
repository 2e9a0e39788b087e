// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"os/exec"
	"runtime"

	"golang.org/x/sys/unix"
)

// skipper is the subset of testing.TB the skip helpers need.
type skipper interface {
	Helper()
	Skipf(format string, args ...any)
}

// RequireRoot skips the test unless it runs as root on Linux. Mounting
// loop devices needs CAP_SYS_ADMIN, and an unprivileged user namespace
// is not enough for block-device filesystems.
func RequireRoot(t skipper) {
	t.Helper()
	if runtime.GOOS != "linux" {
		t.Skipf("skipping: requires linux, running on %s", runtime.GOOS)
	}
	if unix.Geteuid() != 0 {
		t.Skipf("skipping: requires root (euid %d)", unix.Geteuid())
	}
}

// RequireTools skips the test unless every named program is on PATH.
func RequireTools(t skipper, names ...string) {
	t.Helper()
	for _, name := range names {
		if _, err := exec.LookPath(name); err != nil {
			t.Skipf("skipping: %s not found in PATH", name)
		}
	}
}
