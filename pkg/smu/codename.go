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

// Codename identifies the processor family reported by the driver. The
// numeric values mirror the driver's own table and gate which commands and
// registers are valid; they are maintained alongside the driver, not probed
// at runtime.
type Codename uint32

const (
	CodenameUndefined Codename = iota
	CodenameColfax
	CodenameRenoir
	CodenamePicasso
	CodenameMatisse
	CodenameThreadripper
	CodenameCastlePeak
	CodenameRavenRidge
	CodenameRavenRidge2
	CodenameSummitRidge
	CodenamePinnacleRidge
	codenameCount
)

// Valid reports whether c lies strictly between the undefined and count
// sentinels, i.e. names a processor family this library knows.
func (c Codename) Valid() bool {
	return c > CodenameUndefined && c < codenameCount
}

// String returns the marketing name of the processor family. It is total:
// sentinels and unknown values map to "Undefined".
func (c Codename) String() string {
	switch c {
	case CodenameColfax:
		return "Colfax"
	case CodenameRenoir:
		return "Renoir"
	case CodenamePicasso:
		return "Picasso"
	case CodenameMatisse:
		return "Matisse"
	case CodenameThreadripper:
		return "Thread Ripper"
	case CodenameCastlePeak:
		return "CastlePeak"
	case CodenameRavenRidge:
		return "Raven Ridge"
	case CodenameRavenRidge2:
		return "Raven Ridge 2"
	case CodenameSummitRidge:
		return "Summit Ridge"
	case CodenamePinnacleRidge:
		return "Pinnacle Ridge"
	default:
		return "Undefined"
	}
}
