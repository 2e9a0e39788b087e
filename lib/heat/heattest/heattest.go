// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build linux

// Package heattest mounts throwaway loopback filesystems for heat
// query tests.
//
// [Mount] creates a sparse image, formats it, and mounts it with or
// without the heat-tracking option. Teardown is registered with
// t.Cleanup before each step that needs undoing, so the mount and the
// image are released on every exit path, including a failing test.
//
// Mounting needs root and the configured mkfs tool; [Mount] skips the
// test when either is missing or when the kernel rejects the
// heat-tracking option.
package heattest

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bureau-foundation/heatinfo/lib/config"
	"github.com/bureau-foundation/heatinfo/lib/testutil"
	"golang.org/x/sys/unix"
)

// Filesystem is a mounted scratch filesystem.
type Filesystem struct {
	// Dir is the mountpoint.
	Dir string

	// Image is the backing image file.
	Image string

	// HeatTracking reports whether the heat option was passed to mount.
	HeatTracking bool
}

// Path returns name joined onto the mountpoint.
func (fs *Filesystem) Path(name string) string {
	return filepath.Join(fs.Dir, name)
}

// CreateFile creates a new empty file on the filesystem and returns it
// open for reading and writing. The file is closed at test cleanup.
func (fs *Filesystem) CreateFile(t testing.TB, name string) *os.File {
	t.Helper()
	file, err := os.OpenFile(fs.Path(name), os.O_RDWR|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		t.Fatalf("creating %s: %v", name, err)
	}
	t.Cleanup(func() { file.Close() })
	return file
}

// LoadConfig returns the fixture config from HEATINFO_TEST_CONFIG, or
// the expanded defaults when the variable is unset. The fixture root
// exists when it returns.
func LoadConfig(t testing.TB) config.FixtureConfig {
	t.Helper()
	cfg := config.Expanded()
	if os.Getenv(config.EnvironmentVariable) != "" {
		loaded, err := config.Load()
		if err != nil {
			t.Fatalf("loading fixture config: %v", err)
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("invalid fixture config: %v", err)
	}
	if err := cfg.EnsurePaths(); err != nil {
		t.Fatalf("preparing fixture config: %v", err)
	}
	return cfg.Fixture
}

// Mount builds and mounts a scratch filesystem described by cfg, whose
// Root must already exist (see LoadConfig). With heatTracking set,
// cfg.HeatOption is added to the mount options and the test is skipped
// if the kernel does not recognise it.
func Mount(t testing.TB, cfg config.FixtureConfig, heatTracking bool) *Filesystem {
	t.Helper()
	testutil.RequireRoot(t)
	testutil.RequireTools(t, cfg.Mkfs[0], "mount")

	workDir, err := os.MkdirTemp(cfg.Root, "heatinfo-*")
	if err != nil {
		t.Fatalf("creating fixture directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.RemoveAll(workDir); err != nil {
			t.Errorf("removing fixture directory: %v", err)
		}
	})

	fs := &Filesystem{
		Dir:          filepath.Join(workDir, "mnt"),
		Image:        filepath.Join(workDir, "image"),
		HeatTracking: heatTracking,
	}

	if err := createImage(fs.Image, int64(cfg.ImageSizeMB)<<20); err != nil {
		t.Fatalf("creating image: %v", err)
	}
	if err := os.Mkdir(fs.Dir, 0755); err != nil {
		t.Fatalf("creating mountpoint: %v", err)
	}

	mkfsArgs := append(append([]string{}, cfg.Mkfs[1:]...), fs.Image)
	if output, err := exec.Command(cfg.Mkfs[0], mkfsArgs...).CombinedOutput(); err != nil {
		t.Fatalf("%s: %v\n%s", cfg.Mkfs[0], err, output)
	}

	options := append([]string{"loop"}, cfg.MountOptions...)
	if heatTracking {
		options = append(options, cfg.HeatOption)
	}
	mountArgs := []string{"-t", cfg.FilesystemType, "-o", strings.Join(options, ","), fs.Image, fs.Dir}
	if output, err := exec.Command("mount", mountArgs...).CombinedOutput(); err != nil {
		if heatTracking {
			t.Skipf("skipping: kernel rejected mount with %s: %v\n%s", cfg.HeatOption, err, output)
		}
		t.Fatalf("mount %s: %v\n%s", strings.Join(mountArgs, " "), err, output)
	}
	t.Cleanup(func() {
		if err := unmount(fs.Dir); err != nil {
			t.Errorf("unmounting %s: %v", fs.Dir, err)
		}
	})

	return fs
}

// createImage creates a sparse file of size bytes.
func createImage(path string, size int64) error {
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return err
	}
	if err := file.Truncate(size); err != nil {
		file.Close()
		return fmt.Errorf("truncating to %d bytes: %w", size, err)
	}
	return file.Close()
}

// unmount detaches the filesystem, falling back to a lazy unmount if
// something still holds it busy. Unmounting a loop mount made by
// mount(8) with "loop" releases the loop device automatically.
func unmount(dir string) error {
	err := unix.Unmount(dir, 0)
	if errors.Is(err, unix.EBUSY) {
		err = unix.Unmount(dir, unix.MNT_DETACH)
	}
	return err
}
