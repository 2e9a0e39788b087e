// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package heat

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/bureau-foundation/heatinfo/lib/clock"
)

var testEpoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("content"), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestCollectorNoPaths(t *testing.T) {
	collector := NewCollector(nil, CollectorOptions{})
	defer collector.Close()

	if samples := collector.Collect(context.Background()); samples != nil {
		t.Errorf("Collect() = %v, want nil", samples)
	}
}

func TestCollectorMissingPath(t *testing.T) {
	root := t.TempDir()
	missing := filepath.Join(root, "absent")

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelWarn}))
	fake := clock.Fake(testEpoch)

	collector := NewCollector([]string{missing}, CollectorOptions{Clock: fake, Logger: logger})
	defer collector.Close()

	if !strings.Contains(logs.String(), "cannot open file") {
		t.Errorf("expected open warning in logs, got %q", logs.String())
	}

	// The same failure is reported on every collection.
	for round := range 2 {
		fake.Advance(time.Minute)
		samples := collector.Collect(context.Background())
		if len(samples) != 1 {
			t.Fatalf("round %d: Collect() returned %d samples, want 1", round, len(samples))
		}
		sample := samples[0]
		if sample.Path != missing {
			t.Errorf("round %d: Path = %q, want %q", round, sample.Path, missing)
		}
		if sample.Status != StatusError {
			t.Errorf("round %d: Status = %s, want error", round, sample.Status)
		}
		if sample.Errno != int(syscall.ENOENT) {
			t.Errorf("round %d: Errno = %d, want ENOENT", round, sample.Errno)
		}
		if want := testEpoch.Add(time.Duration(round+1) * time.Minute); !sample.CollectedAt.Equal(want) {
			t.Errorf("round %d: CollectedAt = %v, want %v", round, sample.CollectedAt, want)
		}
	}
}

func TestCollectorPreservesOrder(t *testing.T) {
	root := t.TempDir()
	paths := []string{
		writeFile(t, root, "a"),
		filepath.Join(root, "missing"),
		writeFile(t, root, "b"),
	}

	collector := NewCollector(paths, CollectorOptions{Clock: clock.Fake(testEpoch)})
	defer collector.Close()

	samples := collector.Collect(context.Background())
	if len(samples) != len(paths) {
		t.Fatalf("Collect() returned %d samples, want %d", len(samples), len(paths))
	}
	for i, path := range paths {
		if samples[i].Path != path {
			t.Errorf("sample %d Path = %q, want %q", i, samples[i].Path, path)
		}
		if !samples[i].CollectedAt.Equal(testEpoch) {
			t.Errorf("sample %d CollectedAt = %v, want %v", i, samples[i].CollectedAt, testEpoch)
		}
		if samples[i].Status != StatusOK && samples[i].Record != nil {
			t.Errorf("sample %d has status %s and a record", i, samples[i].Status)
		}
	}
	if samples[1].Status != StatusError {
		t.Errorf("missing file Status = %s, want error", samples[1].Status)
	}
}

func TestCollectorCancelledContext(t *testing.T) {
	root := t.TempDir()
	collector := NewCollector([]string{writeFile(t, root, "a"), writeFile(t, root, "b")}, CollectorOptions{})
	defer collector.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if samples := collector.Collect(ctx); len(samples) != 0 {
		t.Errorf("Collect(cancelled) returned %d samples, want 0", len(samples))
	}
}

func TestCollectorClose(t *testing.T) {
	root := t.TempDir()
	collector := NewCollector([]string{writeFile(t, root, "a"), filepath.Join(root, "missing")}, CollectorOptions{})

	if err := collector.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if samples := collector.Collect(context.Background()); samples != nil {
		t.Errorf("Collect after Close = %v, want nil", samples)
	}
	if err := collector.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
