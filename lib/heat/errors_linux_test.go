// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build linux

package heat

import (
	"errors"
	"fmt"
	"syscall"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		errno syscall.Errno
		want  Kind
	}{
		{syscall.EBADF, KindBadDescriptor},
		{syscall.ENOTSUP, KindUnsupported},
		{syscall.ENODATA, KindNoData},
		{syscall.EFAULT, KindBadBuffer},
		{syscall.ENOTTY, KindOther},
		{syscall.EINVAL, KindOther},
		{syscall.EPERM, KindOther},
	}

	for _, test := range tests {
		t.Run(test.errno.Error(), func(t *testing.T) {
			if got := classify(test.errno); got != test.want {
				t.Errorf("classify(%d) = %v, want %v", int(test.errno), got, test.want)
			}
		})
	}
}

func TestQueryErrorHelpers(t *testing.T) {
	request := heatRequest()

	tests := []struct {
		name  string
		errno syscall.Errno
		check func(error) bool
	}{
		{"bad descriptor", syscall.EBADF, IsBadDescriptor},
		{"unsupported", syscall.ENOTSUP, IsUnsupported},
		{"no data", syscall.ENODATA, IsNoData},
		{"bad buffer", syscall.EFAULT, IsBadBuffer},
	}

	helpers := []func(error) bool{IsBadDescriptor, IsUnsupported, IsNoData, IsBadBuffer}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := error(newQueryError(request, test.errno))

			if !test.check(err) {
				t.Errorf("helper did not match %v", err)
			}
			matches := 0
			for _, helper := range helpers {
				if helper(err) {
					matches++
				}
			}
			if matches != 1 {
				t.Errorf("%d helpers matched %v, want exactly 1", matches, err)
			}

			// Wrapping keeps the classification and the raw errno.
			wrapped := fmt.Errorf("querying /mnt/a: %w", err)
			if !test.check(wrapped) {
				t.Errorf("helper did not match wrapped %v", wrapped)
			}
			if !errors.Is(wrapped, test.errno) {
				t.Errorf("errors.Is(wrapped, %v) = false", test.errno)
			}
			if KindOf(wrapped).String() != test.name {
				t.Errorf("KindOf(wrapped) = %q, want %q", KindOf(wrapped), test.name)
			}
		})
	}
}

func TestOtherErrnoSurfacesVerbatim(t *testing.T) {
	err := error(newQueryError(heatRequest(), syscall.ENOTTY))

	for _, helper := range []func(error) bool{IsBadDescriptor, IsUnsupported, IsNoData, IsBadBuffer} {
		if helper(err) {
			t.Errorf("a classified helper matched ENOTTY: %v", err)
		}
	}
	if KindOf(err) != KindOther {
		t.Errorf("KindOf = %v, want other", KindOf(err))
	}

	var queryError *QueryError
	if !errors.As(err, &queryError) {
		t.Fatalf("errors.As(*QueryError) failed for %v", err)
	}
	if queryError.Errno != syscall.ENOTTY {
		t.Errorf("Errno = %v, want ENOTTY", queryError.Errno)
	}
}

func TestQueryErrorMessage(t *testing.T) {
	err := newQueryError(heatRequest(), syscall.ENODATA)
	want := "heat: ioctl _IOR('f', 17, 80): " + syscall.ENODATA.Error()
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestHelpersRejectForeignErrors(t *testing.T) {
	plain := errors.New("not a heat error")
	if IsNoData(plain) || IsUnsupported(plain) || IsBadDescriptor(plain) || IsBadBuffer(plain) {
		t.Error("helper matched a non-QueryError")
	}
	if IsNoData(nil) {
		t.Error("IsNoData(nil) = true")
	}
	// A bare errno is not a classified heat error.
	if IsNoData(syscall.ENODATA) {
		t.Error("IsNoData matched a bare errno")
	}
}
