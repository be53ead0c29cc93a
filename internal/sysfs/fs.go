// Copyright 2026 The Ryzen SMU Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sysfs locates the ryzen_smu driver's sysfs class directory and
// resolves the pseudo-files the driver exposes under it.
package sysfs

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// defaultDriverMountPoint is the sysfs class directory created by the
// ryzen_smu kernel module.
var defaultDriverMountPoint = "/sys/kernel/ryzen_smu_drv"

// Names of the pseudo-files the driver exposes. version and codename are
// ASCII text, the pm_table_* pair are raw native-endian 32-bit values, and
// the remaining three are the binary exchange channels.
const (
	Version        = "version"
	Codename       = "codename"
	SMN            = "smn"
	SMUCmd         = "smu_cmd"
	SMUArgs        = "smu_args"
	PMTableVersion = "pm_table_version"
	PMTableSize    = "pm_table_size"
	PMTable        = "pm_table"
)

// RootPrefix adds a prefix to the default driver mount point. Invoked only
// for integration tests running against a staged filesystem tree.
func RootPrefix(root string) {
	if root == "" {
		return
	}

	defaultDriverMountPoint = filepath.Join(root, defaultDriverMountPoint)
}

// FS represents the driver's sysfs directory. The zero value is not usable;
// construct one via NewFS or NewDefaultFS.
type FS string

// NewDefaultFS returns an FS for the runtime-initialized driver mount point.
func NewDefaultFS() (FS, error) {
	return NewFS(defaultDriverMountPoint)
}

// NewFS returns an FS rooted at the given mount point. It will error if the
// mount point can't be read or is not a directory.
func NewFS(mountPoint string) (FS, error) {
	info, err := os.Stat(mountPoint)
	if err != nil {
		return "", fmt.Errorf("could not read %q: %w", mountPoint, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("mount point %q is not a directory", mountPoint)
	}

	return FS(mountPoint), nil
}

// DefaultPath returns the default driver path, e.g.
// "/sys/kernel/ryzen_smu_drv".
func DefaultPath() string {
	return defaultDriverMountPoint
}

// Path appends the given path elements to the filesystem path, adding
// separators as necessary.
func (fs FS) Path(p ...string) string {
	return filepath.Join(append([]string{string(fs)}, p...)...)
}

// Readable reports whether the named driver file exists and is readable by
// the calling process. Opening the driver's files requires root; this lets a
// caller distinguish a missing driver from missing privileges.
func (fs FS) Readable(name string) bool {
	return unix.Access(fs.Path(name), unix.R_OK) == nil
}
