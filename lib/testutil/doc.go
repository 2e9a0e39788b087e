// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers.
//
// [RequireRoot] and [RequireTools] skip tests that need privileges or
// external programs the current machine lacks, so integration tests
// degrade to skips instead of failures on ordinary developer machines
// and CI runners.
//
// [UniqueName] generates monotonically increasing names for files
// created inside shared scratch filesystems.
//
// All helpers call t.Skipf or t.Fatalf rather than returning errors,
// since test setup failures are not recoverable.
//
// This package depends on no other packages in this module.
package testutil
