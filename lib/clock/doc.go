// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source.
//
// Components that stamp their output with the current time accept a
// [Clock] instead of calling time.Now directly. Production code passes
// [Real]; tests pass [Fake] and move time explicitly:
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	collector := heat.NewCollector(paths, heat.CollectorOptions{Clock: c})
//	c.Advance(5 * time.Second)
package clock
