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

package bytesutil

import "strings"

// ToString converts a C-style null-terminated byte slice to a Go string.
// It stops at the first zero byte, avoiding the double allocations caused by
// string()+strings.Trim.
func ToString(b []byte) string {
	for i, v := range b {
		if v == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

// SysfsText converts a raw sysfs attribute read to a trimmed Go string.
// Sysfs text attributes end with a newline and short reads into a larger
// zeroed buffer leave trailing NUL bytes; both are stripped.
func SysfsText(b []byte) string {
	return strings.TrimSpace(ToString(b))
}
