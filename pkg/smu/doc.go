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

// Package smu talks to AMD's System Management Unit through the ryzen_smu
// kernel driver's sysfs interface. It exposes the driver's four exchange
// surfaces: SMN register read/write, SMU opcode+argument commands, and bulk
// PM table reads, plus the discovered firmware version and processor
// codename.
//
// Opening the driver's files requires root. A typical session:
//
//	s, err := smu.Open()
//	if err != nil {
//		// smu.IsDriverNotPresent(err): ryzen_smu is not loaded
//		return err
//	}
//	defer s.Close()
//
//	value, err := s.ReadSMN(0x50200)
//
// Every failure is a value: protocol statuses reported by the SMU pass
// through unchanged and can be recovered with ReturnOf. The layer adds no
// retries, timeouts, or logging; callers own that policy.
package smu
