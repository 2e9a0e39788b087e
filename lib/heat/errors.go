// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package heat

import (
	"errors"
	"fmt"
	"syscall"

	"github.com/bureau-foundation/heatinfo/lib/ioctl"
)

// ErrPlatformUnsupported is returned by Query on platforms without the
// heat ioctl ABI.
var ErrPlatformUnsupported = errors.New("heat: heat queries require linux")

// Kind classifies why the kernel declined a heat query.
type Kind int

const (
	// KindOther is any errno outside the classified set.
	KindOther Kind = iota
	// KindBadDescriptor means the descriptor was invalid or closed (EBADF).
	KindBadDescriptor
	// KindUnsupported means the filesystem does not track heat (EOPNOTSUPP).
	KindUnsupported
	// KindNoData means the inode has no recorded heat yet (ENODATA).
	KindNoData
	// KindBadBuffer means the output buffer was not addressable (EFAULT).
	KindBadBuffer
)

func (kind Kind) String() string {
	switch kind {
	case KindBadDescriptor:
		return "bad descriptor"
	case KindUnsupported:
		return "unsupported"
	case KindNoData:
		return "no data"
	case KindBadBuffer:
		return "bad buffer"
	default:
		return "other"
	}
}

// QueryError is returned when the heat ioctl fails. Errno is the raw
// value the kernel reported; Unwrap exposes it so errors.Is(err,
// syscall.ENODATA) works as well as the Is* helpers.
type QueryError struct {
	Kind    Kind
	Errno   syscall.Errno
	Request ioctl.Request
}

func (err *QueryError) Error() string {
	return fmt.Sprintf("heat: ioctl %s: %s", err.Request, err.Errno.Error())
}

func (err *QueryError) Unwrap() error {
	return err.Errno
}

// newQueryError classifies errno. It must be handed the errno straight
// from the failing syscall.
func newQueryError(request ioctl.Request, errno syscall.Errno) *QueryError {
	return &QueryError{
		Kind:    classify(errno),
		Errno:   errno,
		Request: request,
	}
}

// KindOf returns the classification of err, or KindOther when err is
// not a QueryError.
func KindOf(err error) Kind {
	var queryError *QueryError
	if errors.As(err, &queryError) {
		return queryError.Kind
	}
	return KindOther
}

// IsBadDescriptor reports whether err is a heat query rejected for an
// invalid or closed descriptor.
func IsBadDescriptor(err error) bool {
	return isKind(err, KindBadDescriptor)
}

// IsUnsupported reports whether err means the file's filesystem does
// not track heat. Callers should treat this as "no data available".
func IsUnsupported(err error) bool {
	return isKind(err, KindUnsupported)
}

// IsNoData reports whether err means the inode has no heat recorded
// yet. A later query, after I/O, may succeed.
func IsNoData(err error) bool {
	return isKind(err, KindNoData)
}

// IsBadBuffer reports whether err is a heat query that faulted on the
// output buffer.
func IsBadBuffer(err error) bool {
	return isKind(err, KindBadBuffer)
}

func isKind(err error, kind Kind) bool {
	var queryError *QueryError
	return errors.As(err, &queryError) && queryError.Kind == kind
}
