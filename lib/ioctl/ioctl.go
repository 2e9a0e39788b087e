// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ioctl

import (
	"fmt"
	"strconv"
)

// Field widths and shifts from include/uapi/asm-generic/ioctl.h.
const (
	numberBits    = 8
	typeBits      = 8
	sizeBits      = 14
	directionBits = 2

	numberShift    = 0
	typeShift      = numberShift + numberBits
	sizeShift      = typeShift + typeBits
	directionShift = sizeShift + sizeBits

	numberMask    = 1<<numberBits - 1
	typeMask      = 1<<typeBits - 1
	sizeMask      = 1<<sizeBits - 1
	directionMask = 1<<directionBits - 1
)

// MaxSize is the largest payload size that fits the 14-bit size field.
// Encode does not enforce it.
const MaxSize = sizeMask

// Direction is the data-transfer direction of an ioctl, from the
// caller's point of view.
type Direction uint8

const (
	// None transfers no payload.
	None Direction = 0
	// Write passes a payload from userspace to the kernel.
	Write Direction = 1
	// Read has the kernel fill a userspace buffer.
	Read Direction = 2
	// ReadWrite passes a payload in and receives one back.
	ReadWrite Direction = Read | Write
)

func (direction Direction) String() string {
	switch direction {
	case None:
		return "none"
	case Write:
		return "write"
	case Read:
		return "read"
	case ReadWrite:
		return "read|write"
	default:
		return "Direction(" + strconv.Itoa(int(direction)) + ")"
	}
}

// Request is an encoded ioctl request number, the second argument to
// the ioctl system call.
type Request uint32

// Encode packs direction, typ, number, and size into a request number.
//
// Precondition: direction <= ReadWrite and size <= MaxSize. Values
// outside those ranges are packed without masking and corrupt the
// neighbouring bit ranges, matching the kernel's _IOC macro.
func Encode(direction Direction, typ, number uint8, size uintptr) Request {
	return Request(uint32(direction)<<directionShift |
		uint32(size)<<sizeShift |
		uint32(typ)<<typeShift |
		uint32(number)<<numberShift)
}

// IO encodes a request that carries no payload (_IO).
func IO(typ, number uint8) Request {
	return Encode(None, typ, number, 0)
}

// IOR encodes a request whose payload the kernel writes (_IOR).
func IOR(typ, number uint8, size uintptr) Request {
	return Encode(Read, typ, number, size)
}

// IOW encodes a request whose payload the kernel reads (_IOW).
func IOW(typ, number uint8, size uintptr) Request {
	return Encode(Write, typ, number, size)
}

// IOWR encodes a request with a payload in both directions (_IOWR).
func IOWR(typ, number uint8, size uintptr) Request {
	return Encode(ReadWrite, typ, number, size)
}

// Direction returns the top two bits of the request.
func (request Request) Direction() Direction {
	return Direction((request >> directionShift) & directionMask)
}

// Type returns the subsystem tag.
func (request Request) Type() uint8 {
	return uint8((request >> typeShift) & typeMask)
}

// Number returns the operation index within the subsystem.
func (request Request) Number() uint8 {
	return uint8((request >> numberShift) & numberMask)
}

// Size returns the encoded payload size in bytes.
func (request Request) Size() uintptr {
	return uintptr((request >> sizeShift) & sizeMask)
}

// Uintptr returns the request in the form the raw syscall takes.
func (request Request) Uintptr() uintptr {
	return uintptr(request)
}

// String renders the request the way the kernel headers spell it,
// e.g. _IOR('f', 17, 80). Non-printable type tags are shown in hex.
func (request Request) String() string {
	var macro string
	switch request.Direction() {
	case None:
		macro = "_IO"
	case Write:
		macro = "_IOW"
	case Read:
		macro = "_IOR"
	default:
		macro = "_IOWR"
	}

	typ := request.Type()
	var tag string
	if typ >= 0x20 && typ < 0x7f {
		tag = strconv.QuoteRune(rune(typ))
	} else {
		tag = fmt.Sprintf("0x%02x", typ)
	}

	if request.Direction() == None {
		return fmt.Sprintf("%s(%s, %d)", macro, tag, request.Number())
	}
	return fmt.Sprintf("%s(%s, %d, %d)", macro, tag, request.Number(), request.Size())
}
