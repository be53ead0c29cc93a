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
	"errors"
	"fmt"
)

// Error is a failed protocol exchange. It carries the Return code verbatim,
// including SMU-reported statuses passed through the command channel.
type Error struct {
	op   string
	code Return
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s failed: %s", e.op, e.code.String())
}

// Code returns the protocol result code of the failure.
func (e *Error) Code() Return {
	return e.code
}

// ReturnOf maps an error back to its protocol result code: nil is ReturnOK,
// a wrapped *Error yields its code, anything else is ReturnFailed.
func ReturnOf(err error) Return {
	if err == nil {
		return ReturnOK
	}

	var smuErr *Error
	if errors.As(err, &smuErr) {
		return smuErr.code
	}

	return ReturnFailed
}

// IsDriverNotPresent reports whether err means the ryzen_smu driver is not
// loaded (or its sysfs interface is unreadable).
func IsDriverNotPresent(err error) bool {
	return ReturnOf(err) == ReturnDriverNotPresent
}

// IsUnsupported reports whether err represents an unsupported platform or
// feature, either detected locally or reported by the SMU.
func IsUnsupported(err error) bool {
	return ReturnOf(err) == ReturnUnsupported
}

// checkReturnCode converts a result code to an error.
func checkReturnCode(op string, code Return) error {
	if code == ReturnOK {
		return nil
	}

	return &Error{
		op:   op,
		code: code,
	}
}
