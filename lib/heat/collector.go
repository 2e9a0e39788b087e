// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package heat

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/bureau-foundation/heatinfo/lib/clock"
)

// CollectorOptions configures a Collector. Zero values are usable.
type CollectorOptions struct {
	// Clock stamps each sample. Defaults to clock.Real().
	Clock clock.Clock

	// Logger receives per-file diagnostics. Defaults to discarding.
	Logger *slog.Logger
}

// trackedFile is one path the collector samples.
type trackedFile struct {
	path string

	// file is held open for the collector's lifetime so repeated
	// Collect calls do not reopen it. Nil when the open failed.
	file *os.File

	// openErr is why file is nil.
	openErr error
}

// Collector holds a fixed set of files open and queries each one's
// heat on every Collect. It keeps no state between collections.
//
// Collect and Close must not be called concurrently.
type Collector struct {
	files  []trackedFile
	clock  clock.Clock
	logger *slog.Logger
}

// NewCollector opens every path read-only. Paths that cannot be opened
// are kept and reported as StatusError samples on each Collect, so the
// sample list always lines up with paths.
func NewCollector(paths []string, options CollectorOptions) *Collector {
	if options.Clock == nil {
		options.Clock = clock.Real()
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.DiscardHandler)
	}

	collector := &Collector{
		files:  make([]trackedFile, 0, len(paths)),
		clock:  options.Clock,
		logger: options.Logger,
	}

	opened := 0
	for _, path := range paths {
		tracked := trackedFile{path: path}
		file, err := os.Open(path)
		if err != nil {
			collector.logger.Warn("cannot open file, heat will be unavailable for it",
				"path", path,
				"error", err)
			tracked.openErr = err
		} else {
			tracked.file = file
			opened++
		}
		collector.files = append(collector.files, tracked)
	}

	if len(paths) > 0 {
		collector.logger.Info("heat collector initialized",
			"file_count", len(paths),
			"opened", opened)
	}

	return collector
}

// Collect queries every tracked file and returns one Sample per file
// in construction order. Expected outcomes (no data yet, filesystem
// without heat tracking) are logged at debug level; anything else at
// warn.
//
// If ctx is cancelled, Collect stops before the next file and returns
// the samples gathered so far.
func (c *Collector) Collect(ctx context.Context) []Sample {
	if len(c.files) == 0 {
		return nil
	}

	samples := make([]Sample, 0, len(c.files))
	for _, tracked := range c.files {
		if ctx.Err() != nil {
			c.logger.Debug("heat collection interrupted",
				"collected", len(samples),
				"remaining", len(c.files)-len(samples),
				"error", ctx.Err())
			break
		}

		if tracked.file == nil {
			samples = append(samples, newSample(tracked.path, c.clock.Now(), Record{}, tracked.openErr))
			continue
		}

		record, err := QueryFile(tracked.file)
		sample := newSample(tracked.path, c.clock.Now(), record, err)
		switch sample.Status {
		case StatusOK:
		case StatusNoData, StatusUnsupported:
			c.logger.Debug("heat query returned no record",
				"path", tracked.path,
				"status", string(sample.Status))
		default:
			c.logger.Warn("heat query failed",
				"path", tracked.path,
				"status", string(sample.Status),
				"error", err)
		}
		samples = append(samples, sample)
	}

	return samples
}

// Close releases every held file descriptor. Errors from individual
// closes are joined.
func (c *Collector) Close() error {
	var errs []error
	for _, tracked := range c.files {
		if tracked.file != nil {
			if err := tracked.file.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	c.files = nil
	return errors.Join(errs...)
}
