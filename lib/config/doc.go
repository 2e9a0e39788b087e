// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration for the scratch
// filesystem fixture used by the heat integration tests.
//
// Configuration is loaded from a single file named by the
// HEATINFO_TEST_CONFIG environment variable (via [Load]) or an explicit
// path (via [LoadFile]). There is no discovery and no environment
// variable override of individual values. Fields not present in the
// file keep the [Default] values, which target btrfs with the
// hot_track mount option.
//
// Path fields support ${VAR} and ${VAR:-default} expansion after
// loading.
//
// This package depends on no other packages in this module.
package config
