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

package smu

import (
	"encoding/binary"
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/linnaea/ryzen-smu/internal/sysfs"
	"github.com/linnaea/ryzen-smu/internal/utils/bytesutil"
)

// nativeEndian is the byte order of the pm_table_* attributes and the
// exchange channels. The driver shares raw memory layout with the reader.
var nativeEndian = binary.NativeEndian

// channel is one driver exchange file. The file position is shared state;
// every exchange seeks to the start under the owning group lock.
type channel interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer
}

// Session is an open connection to the ryzen_smu driver. One session may be
// shared across goroutines: operations on the same channel group serialize,
// operations on different groups proceed concurrently.
type Session struct {
	fs sysfs.FS

	version        Version
	codename       Codename
	pmTableVersion uint32
	pmTableSize    uint32

	smn     channel
	cmd     channel
	args    channel
	pmTable channel

	// Lock groups. cmdMu guards the command and argument channels as one
	// unit: the driver correlates them by channel, not by transaction id.
	smnMu sync.Mutex
	cmdMu sync.Mutex
	pmMu  sync.Mutex

	init bool
}

// Open discovers the driver at its default sysfs path and acquires the
// exchange channels for the lifetime of the session.
func Open() (*Session, error) {
	fs, err := sysfs.NewDefaultFS()
	if err != nil {
		return nil, checkReturnCode("open driver", ReturnDriverNotPresent)
	}

	return OpenFS(fs)
}

// OpenFS is Open against an explicit driver filesystem root.
func OpenFS(fs sysfs.FS) (*Session, error) {
	s := &Session{fs: fs}

	if err := s.discover(); err != nil {
		return nil, err
	}

	if err := s.acquire(); err != nil {
		s.Close()
		return nil, err
	}

	s.init = true

	return s, nil
}

// discover reads the driver's constant attributes: firmware version,
// processor codename, and the optional PM table version/size pair.
func (s *Session) discover() error {
	// The version of the SMU **MUST** be present.
	f, err := os.Open(s.fs.Path(sysfs.Version))
	if err != nil {
		return checkReturnCode("open version", ReturnDriverNotPresent)
	}
	raw, err := readUpTo(f, maxVersionLen)
	if err != nil {
		return checkReturnCode("read version", ReturnRWError)
	}

	version, err := ParseVersion(bytesutil.SysfsText(raw))
	if err != nil {
		return checkReturnCode("parse version", ReturnRWError)
	}
	s.version = version

	// Codename must also be present.
	if f, err = os.Open(s.fs.Path(sysfs.Codename)); err != nil {
		return checkReturnCode("open codename", ReturnDriverNotPresent)
	}
	if raw, err = readUpTo(f, 3); err != nil {
		return checkReturnCode("read codename", ReturnRWError)
	}

	// Unparseable text degrades to the undefined sentinel and is rejected
	// by the range check below.
	id, _ := strconv.ParseUint(bytesutil.SysfsText(raw), 10, 32)
	s.codename = Codename(id)

	if !s.codename.Valid() {
		return checkReturnCode("validate codename", ReturnUnsupported)
	}

	// pm_table_version only exists when the driver supports PM tables on
	// this platform; its absence is not an error.
	if f, err = os.Open(s.fs.Path(sysfs.PMTableVersion)); err != nil {
		return nil
	}
	if raw, err = readUpTo(f, 4); err != nil || len(raw) == 0 {
		return checkReturnCode("read pm_table_version", ReturnRWError)
	}
	s.pmTableVersion = decodeUint32(raw)

	// Once a PM table version exists, the size attribute is mandatory.
	if f, err = os.Open(s.fs.Path(sysfs.PMTableSize)); err != nil {
		return checkReturnCode("open pm_table_size", ReturnRWError)
	}
	if raw, err = readUpTo(f, 4); err != nil || len(raw) == 0 {
		return checkReturnCode("read pm_table_size", ReturnRWError)
	}
	s.pmTableSize = decodeUint32(raw)

	return nil
}

// acquire opens the exchange channels. It performs no partial-open cleanup;
// OpenFS runs Close on any failure.
func (s *Session) acquire() error {
	var err error
	if s.smn, err = openChannel(s.fs.Path(sysfs.SMN), os.O_RDWR); err != nil {
		return checkReturnCode("open smn", ReturnRWError)
	}
	if s.cmd, err = openChannel(s.fs.Path(sysfs.SMUCmd), os.O_RDWR); err != nil {
		return checkReturnCode("open smu_cmd", ReturnRWError)
	}
	if s.args, err = openChannel(s.fs.Path(sysfs.SMUArgs), os.O_RDWR); err != nil {
		return checkReturnCode("open smu_args", ReturnRWError)
	}

	if !s.PMTableSupported() {
		return nil
	}
	if s.pmTable, err = openChannel(s.fs.Path(sysfs.PMTable), os.O_RDONLY); err != nil {
		return checkReturnCode("open pm_table", ReturnRWError)
	}

	return nil
}

// Close releases every acquired channel and zeroes the session. It is
// best-effort: close failures are ignored. A closed session must not be
// reused; open a new one instead.
func (s *Session) Close() {
	for _, ch := range []channel{s.smn, s.cmd, s.args, s.pmTable} {
		if ch != nil {
			_ = ch.Close()
		}
	}

	s.fs = ""
	s.version = Version{}
	s.codename = CodenameUndefined
	s.pmTableVersion = 0
	s.pmTableSize = 0
	s.smn, s.cmd, s.args, s.pmTable = nil, nil, nil, nil
	s.init = false
}

// Version returns the SMU firmware version.
func (s *Session) Version() Version {
	return s.version
}

// Codename returns the discovered processor family.
func (s *Session) Codename() Codename {
	return s.codename
}

// PMTableVersion returns the PM table layout version, or 0 when PM tables
// are unsupported.
func (s *Session) PMTableVersion() uint32 {
	return s.pmTableVersion
}

// PMTableSize returns the PM table size in bytes, or 0 when PM tables are
// unsupported.
func (s *Session) PMTableSize() uint32 {
	return s.pmTableSize
}

// PMTableSupported reports whether the driver exposes a PM table on this
// platform. Both attributes must be non-zero; their presence is coupled.
func (s *Session) PMTableSupported() bool {
	return s.pmTableVersion != 0 && s.pmTableSize != 0
}

// readUpTo reads at most max bytes of a driver attribute and closes it.
func readUpTo(f *os.File, max int) ([]byte, error) {
	defer f.Close()

	buf := make([]byte, max)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return nil, err
	}

	return buf[:n], nil
}

func openChannel(path string, flag int) (channel, error) {
	return os.OpenFile(path, flag, 0)
}

// decodeUint32 decodes a native-endian attribute that may have been short
// on the wire; missing trailing bytes read as zero.
func decodeUint32(raw []byte) uint32 {
	var b [4]byte
	copy(b[:], raw)
	return nativeEndian.Uint32(b[:])
}
