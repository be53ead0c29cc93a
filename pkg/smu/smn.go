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

import "io"

// ReadSMN reads the 32-bit register at the given SMN address. The exchange
// is one write/read pair over the smn channel: select the address, then read
// the value back from position zero.
func (s *Session) ReadSMN(address uint32) (uint32, error) {
	if !s.init {
		return 0, checkReturnCode("smn read", ReturnDriverNotPresent)
	}

	s.smnMu.Lock()
	defer s.smnMu.Unlock()

	var buf [4]byte
	nativeEndian.PutUint32(buf[:], address)

	if _, err := s.smn.Seek(0, io.SeekStart); err != nil {
		return 0, checkReturnCode("smn seek", ReturnRWError)
	}
	if n, err := s.smn.Write(buf[:]); err != nil || n != len(buf) {
		return 0, checkReturnCode("smn address write", ReturnRWError)
	}

	if _, err := s.smn.Seek(0, io.SeekStart); err != nil {
		return 0, checkReturnCode("smn seek", ReturnRWError)
	}
	if n, err := s.smn.Read(buf[:]); err != nil || n != len(buf) {
		return 0, checkReturnCode("smn value read", ReturnRWError)
	}

	return nativeEndian.Uint32(buf[:]), nil
}

// WriteSMN writes a 32-bit value to the given SMN address. The address and
// value go out as a single 8-byte write, address first.
func (s *Session) WriteSMN(address, value uint32) error {
	if !s.init {
		return checkReturnCode("smn write", ReturnDriverNotPresent)
	}

	s.smnMu.Lock()
	defer s.smnMu.Unlock()

	var buf [8]byte
	nativeEndian.PutUint32(buf[:4], address)
	nativeEndian.PutUint32(buf[4:], value)

	if _, err := s.smn.Seek(0, io.SeekStart); err != nil {
		return checkReturnCode("smn seek", ReturnRWError)
	}
	if n, err := s.smn.Write(buf[:]); err != nil || n != len(buf) {
		return checkReturnCode("smn write", ReturnRWError)
	}

	return nil
}
