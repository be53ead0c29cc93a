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
	"fmt"
	"strconv"
	"strings"
)

// maxVersionLen bounds the version attribute read: "255.255.255\n".
const maxVersionLen = 12

// Version is the SMU firmware version as reported by the driver's version
// attribute. It is kept structured; Packed produces the on-wire encoding
// where firmware version comparisons need it.
type Version struct {
	Major uint8
	Minor uint8
	Rev   uint8
}

// ParseVersion parses a dotted decimal triplet, e.g. "0.19.53". The input
// must contain exactly three fields, each in [0,255].
func ParseVersion(s string) (Version, error) {
	fields := strings.Split(strings.TrimSpace(s), ".")
	if len(fields) != 3 {
		return Version{}, fmt.Errorf("malformed version %q: want MAJOR.MINOR.REV", s)
	}

	var parts [3]uint8
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 8)
		if err != nil {
			return Version{}, fmt.Errorf("malformed version %q: %w", s, err)
		}
		parts[i] = uint8(v)
	}

	return Version{Major: parts[0], Minor: parts[1], Rev: parts[2]}, nil
}

// Packed encodes the version the way the SMU reports it over the wire:
// major in bits 24-31, minor in bits 8-15, revision in bits 0-7.
func (v Version) Packed() uint32 {
	return uint32(v.Major)<<24 | uint32(v.Minor)<<8 | uint32(v.Rev)
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Rev)
}
