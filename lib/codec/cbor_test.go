// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"
)

type sample struct {
	Path    string    `cbor:"path"`
	At      time.Time `cbor:"at"`
	Reads   uint32    `cbor:"reads"`
	Comment string    `cbor:"comment,omitempty"`
}

// encode writes values as a CBOR sequence and returns the bytes.
func encode(t *testing.T, values ...any) []byte {
	t.Helper()
	var buffer bytes.Buffer
	encoder := NewEncoder(&buffer)
	for _, value := range values {
		if err := encoder.Encode(value); err != nil {
			t.Fatalf("Encode: %v", err)
		}
	}
	return buffer.Bytes()
}

func TestEncodeDeterministic(t *testing.T) {
	value := map[string]uint32{"writes": 2, "reads": 1, "temperature": 9}

	first := encode(t, value)
	for range 10 {
		if again := encode(t, value); !bytes.Equal(first, again) {
			t.Fatalf("deterministic encoding violated: %x != %x", first, again)
		}
	}
}

func TestTimeKeepsNanoseconds(t *testing.T) {
	original := sample{
		Path: "/mnt/heat/a",
		At:   time.Date(2026, 3, 4, 5, 6, 7, 123456789, time.UTC),
	}

	var decoded sample
	if err := NewDecoder(bytes.NewReader(encode(t, original))).Decode(&decoded); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !decoded.At.Equal(original.At) {
		t.Errorf("At = %v, want %v", decoded.At, original.At)
	}
}

func TestStreamSequence(t *testing.T) {
	values := []sample{
		{Path: "a", Reads: 1},
		{Path: "b", Reads: 2, Comment: "second"},
	}

	var buffer bytes.Buffer
	encoder := NewEncoder(&buffer)
	for _, value := range values {
		if err := encoder.Encode(value); err != nil {
			t.Fatalf("Encode: %v", err)
		}
	}

	decoder := NewDecoder(&buffer)
	for i, want := range values {
		var got sample
		if err := decoder.Decode(&got); err != nil {
			t.Fatalf("Decode %d: %v", i, err)
		}
		if got.Path != want.Path || got.Reads != want.Reads || got.Comment != want.Comment {
			t.Errorf("value %d: got %+v, want %+v", i, got, want)
		}
	}

	var extra sample
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		t.Errorf("Decode past end: err = %v, want io.EOF", err)
	}
}

func TestDecodeInvalidCBOR(t *testing.T) {
	var value sample
	if err := NewDecoder(bytes.NewReader([]byte{0xFF, 0xFE, 0xFD})).Decode(&value); err == nil {
		t.Error("Decode should reject invalid CBOR")
	}
}
