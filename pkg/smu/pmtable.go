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

// ReadPMTable reads the power-management telemetry table into dst, whose
// length must exactly equal PMTableSize: no partial reads, no truncation.
// Both validations happen before the table channel is touched.
func (s *Session) ReadPMTable(dst []byte) error {
	if !s.init || !s.PMTableSupported() {
		return checkReturnCode("pm_table read", ReturnUnsupported)
	}
	if uint32(len(dst)) != s.pmTableSize {
		return checkReturnCode("pm_table read", ReturnInsufficientSize)
	}

	s.pmMu.Lock()
	defer s.pmMu.Unlock()

	if _, err := s.pmTable.Seek(0, io.SeekStart); err != nil {
		return checkReturnCode("pm_table seek", ReturnRWError)
	}
	if n, err := s.pmTable.Read(dst); err != nil || n != int(s.pmTableSize) {
		return checkReturnCode("pm_table read", ReturnRWError)
	}

	return nil
}
