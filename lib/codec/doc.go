// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec holds the module's single CBOR configuration so every
// package that serializes heat samples produces identical bytes.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items.
// time.Time values encode as RFC 3339 text with nanoseconds, so
// timestamps survive a round trip exactly.
//
// Values travel as CBOR sequences (RFC 8742):
//
//	encoder := codec.NewEncoder(w)
//	decoder := codec.NewDecoder(r)
//
// Types serialized only as CBOR use `cbor` struct tags.
package codec
