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

// ArgCount is the number of 32-bit words in a command argument block, a
// protocol constant shared with the driver.
const ArgCount = 6

// argsSize is the argument block size in bytes.
const argsSize = ArgCount * 4

// Args is one command argument block. Arguments go to the SMU in word
// order; on success the SMU returns its outputs through the same block.
type Args [ArgCount]uint32

// SendCommand executes an SMU command: write the argument block, write the
// opcode, read the status word back, and on OK read the SMU's outputs back
// into args in place. The status word passes through verbatim: a non-OK SMU
// status (busy, unknown command, timeout, ...) surfaces as an *Error
// carrying that code, and the argument read-back is skipped.
//
// The driver correlates the command and argument channels implicitly, so
// the whole exchange holds the combined command+argument lock.
func (s *Session) SendCommand(op uint32, args *Args) error {
	if !s.init {
		return checkReturnCode("smu command", ReturnDriverNotPresent)
	}

	s.cmdMu.Lock()
	defer s.cmdMu.Unlock()

	var block [argsSize]byte
	for i, word := range args {
		nativeEndian.PutUint32(block[i*4:], word)
	}

	if _, err := s.args.Seek(0, io.SeekStart); err != nil {
		return checkReturnCode("smu_args seek", ReturnRWError)
	}
	if n, err := s.args.Write(block[:]); err != nil || n != len(block) {
		return checkReturnCode("smu_args write", ReturnRWError)
	}

	var word [4]byte
	nativeEndian.PutUint32(word[:], op)

	if _, err := s.cmd.Seek(0, io.SeekStart); err != nil {
		return checkReturnCode("smu_cmd seek", ReturnRWError)
	}
	if n, err := s.cmd.Write(word[:]); err != nil || n != len(word) {
		return checkReturnCode("smu_cmd write", ReturnRWError)
	}

	if _, err := s.cmd.Seek(0, io.SeekStart); err != nil {
		return checkReturnCode("smu_cmd seek", ReturnRWError)
	}
	if n, err := s.cmd.Read(word[:]); err != nil || n != len(word) {
		return checkReturnCode("smu_cmd status read", ReturnRWError)
	}

	if status := Return(nativeEndian.Uint32(word[:])); status != ReturnOK {
		return checkReturnCode("smu command", status)
	}

	// The SMU reports outputs through the argument block only on success.
	if _, err := s.args.Seek(0, io.SeekStart); err != nil {
		return checkReturnCode("smu_args seek", ReturnRWError)
	}
	if n, err := s.args.Read(block[:]); err != nil || n != len(block) {
		return checkReturnCode("smu_args read", ReturnRWError)
	}

	for i := range args {
		args[i] = nativeEndian.Uint32(block[i*4:])
	}

	return nil
}
