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

// Return is a protocol result code. Values at and above 0xF7 are reported by
// the SMU itself through the command channel's status word and must match
// the driver ABI; the 0xA0 range is produced by this library only.
type Return uint32

const (
	ReturnOK                Return = 0x01
	ReturnFailed            Return = 0xFF
	ReturnUnknownCmd        Return = 0xFE
	ReturnCmdRejectedPrereq Return = 0xFD
	ReturnCmdRejectedBusy   Return = 0xFC
	ReturnCommandTimeout    Return = 0xFB
	ReturnInvalidArgument   Return = 0xFA
	ReturnUnsupported       Return = 0xF9
	ReturnInsufficientSize  Return = 0xF8
	ReturnMappedError       Return = 0xF7

	// Library-side codes, never sent by the SMU.
	ReturnDriverNotPresent Return = 0xA0
	ReturnRWError          Return = 0xA1
)

// String returns the human-readable description of a Return. It is total:
// unrecognized values map to "Unspecified Error".
func (r Return) String() string {
	switch r {
	case ReturnOK:
		return "OK"
	case ReturnFailed:
		return "Failed"
	case ReturnUnknownCmd:
		return "Unknown Command"
	case ReturnCmdRejectedPrereq:
		return "Command Rejected - Prerequisite Unmet"
	case ReturnCmdRejectedBusy:
		return "Command Rejected - Busy"
	case ReturnCommandTimeout:
		return "Command Timed Out"
	case ReturnInvalidArgument:
		return "Invalid Argument Specified"
	case ReturnUnsupported:
		return "Unsupported Platform Or Feature"
	case ReturnInsufficientSize:
		return "Insufficient Buffer Size Provided"
	case ReturnMappedError:
		return "Memory Mapping I/O Error"
	case ReturnDriverNotPresent:
		return "SMU Driver Not Present Or Fault"
	case ReturnRWError:
		return "Read Or Write Error"
	default:
		return "Unspecified Error"
	}
}
