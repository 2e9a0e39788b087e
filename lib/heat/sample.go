// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package heat

import (
	"errors"
	"fmt"
	"io"
	"syscall"
	"time"

	"github.com/bureau-foundation/heatinfo/lib/codec"
)

// Status is the outcome of one heat query as carried in a Sample.
type Status string

const (
	StatusOK            Status = "ok"
	StatusNoData        Status = "no-data"
	StatusUnsupported   Status = "unsupported"
	StatusBadDescriptor Status = "bad-descriptor"
	StatusBadBuffer     Status = "bad-buffer"
	StatusError         Status = "error"
)

// StatusOf maps the error from Query (or from opening the file) to a
// Status. A nil error is StatusOK.
func StatusOf(err error) Status {
	if err == nil {
		return StatusOK
	}
	var queryError *QueryError
	if !errors.As(err, &queryError) {
		return StatusError
	}
	switch queryError.Kind {
	case KindNoData:
		return StatusNoData
	case KindUnsupported:
		return StatusUnsupported
	case KindBadDescriptor:
		return StatusBadDescriptor
	case KindBadBuffer:
		return StatusBadBuffer
	default:
		return StatusError
	}
}

// Sample is one file's heat query outcome at a point in time. Record
// is set only when Status is StatusOK.
type Sample struct {
	Path        string    `cbor:"path"`
	CollectedAt time.Time `cbor:"collected_at"`
	Status      Status    `cbor:"status"`

	// Errno is the raw errno of a failed query or open, zero otherwise.
	Errno int `cbor:"errno,omitempty"`

	// Message is the error text for StatusError samples.
	Message string `cbor:"message,omitempty"`

	Record *Record `cbor:"record,omitempty"`
}

// newSample builds the Sample for path from a Query result.
func newSample(path string, collectedAt time.Time, record Record, err error) Sample {
	sample := Sample{
		Path:        path,
		CollectedAt: collectedAt,
		Status:      StatusOf(err),
	}
	if err == nil {
		sample.Record = &record
		return sample
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		sample.Errno = int(errno)
	}
	if sample.Status == StatusError {
		sample.Message = err.Error()
	}
	return sample
}

// EncodeSamples writes samples to w as a CBOR sequence, one item per
// sample.
func EncodeSamples(w io.Writer, samples []Sample) error {
	encoder := codec.NewEncoder(w)
	for i := range samples {
		if err := encoder.Encode(&samples[i]); err != nil {
			return fmt.Errorf("encoding sample for %s: %w", samples[i].Path, err)
		}
	}
	return nil
}

// DecodeSamples reads a CBOR sequence written by EncodeSamples until
// r is exhausted.
func DecodeSamples(r io.Reader) ([]Sample, error) {
	decoder := codec.NewDecoder(r)
	var samples []Sample
	for {
		var sample Sample
		err := decoder.Decode(&sample)
		if errors.Is(err, io.EOF) {
			return samples, nil
		}
		if err != nil {
			return samples, fmt.Errorf("decoding sample %d: %w", len(samples), err)
		}
		samples = append(samples, sample)
	}
}
