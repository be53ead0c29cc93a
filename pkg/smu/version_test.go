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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Version
		wantErr bool
	}{
		{
			name:  "typical firmware version",
			input: "0.19.53",
			want:  Version{Major: 0, Minor: 19, Rev: 53},
		},
		{
			name:  "trailing newline",
			input: "46.54.0\n",
			want:  Version{Major: 46, Minor: 54, Rev: 0},
		},
		{
			name:  "all fields at maximum",
			input: "255.255.255\n",
			want:  Version{Major: 255, Minor: 255, Rev: 255},
		},
		{
			name:  "all zero",
			input: "0.0.0",
			want:  Version{},
		},
		{
			name:    "two fields only",
			input:   "1.2\n",
			wantErr: true,
		},
		{
			name:    "four fields",
			input:   "1.2.3.4",
			wantErr: true,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "non-numeric field",
			input:   "1.x.3",
			wantErr: true,
		},
		{
			name:    "field overflows a byte",
			input:   "0.256.0",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVersion(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Packing must keep the three fields in disjoint bit ranges: major in bits
// 24-31, minor in bits 8-15, revision in bits 0-7.
func TestVersionPacked(t *testing.T) {
	samples := []uint8{0, 1, 19, 127, 128, 255}

	for _, major := range samples {
		for _, minor := range samples {
			for _, rev := range samples {
				text := fmt.Sprintf("%d.%d.%d\n", major, minor, rev)
				v, err := ParseVersion(text)
				require.NoError(t, err, text)

				want := uint32(major)<<24 | uint32(minor)<<8 | uint32(rev)
				assert.Equal(t, want, v.Packed(), text)
			}
		}
	}
}

func TestVersionString(t *testing.T) {
	v := Version{Major: 0, Minor: 19, Rev: 53}
	assert.Equal(t, "0.19.53", v.String())
}
