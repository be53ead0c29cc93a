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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPMSession(ch *memChannel, size uint32) *Session {
	return &Session{
		pmTable:        ch,
		pmTableVersion: 0x240903,
		pmTableSize:    size,
		init:           true,
	}
}

func TestReadPMTable(t *testing.T) {
	table := make([]byte, 4096)
	for i := range table {
		table[i] = byte(i * 7)
	}
	ch := newMemChannel(table)
	s := newPMSession(ch, 4096)

	dst := make([]byte, 4096)
	require.NoError(t, s.ReadPMTable(dst))
	assert.Equal(t, table, dst)

	// Positions reset per read; a second read returns the same bytes.
	dst2 := make([]byte, 4096)
	require.NoError(t, s.ReadPMTable(dst2))
	assert.Equal(t, table, dst2)
}

// A length mismatch must fail before the channel is touched: discovered
// size 4096, provided 100.
func TestReadPMTableSizeMismatch(t *testing.T) {
	ch := newMemChannel(make([]byte, 4096))
	s := newPMSession(ch, 4096)

	tests := []struct {
		name string
		len  int
	}{
		{"too small", 100},
		{"too large", 8192},
		{"empty", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.ReadPMTable(make([]byte, tt.len))
			assert.Equal(t, ReturnInsufficientSize, ReturnOf(err))
			assert.Zero(t, ch.reads, "channel must not be touched")
		})
	}
}

func TestReadPMTableUnsupported(t *testing.T) {
	s := &Session{init: true} // no table channel discovered

	err := s.ReadPMTable(make([]byte, 4096))
	assert.Equal(t, ReturnUnsupported, ReturnOf(err))
}

func TestReadPMTableShortRead(t *testing.T) {
	ch := newMemChannel(make([]byte, 100)) // driver exposes fewer bytes than declared
	s := newPMSession(ch, 4096)

	err := s.ReadPMTable(make([]byte, 4096))
	assert.Equal(t, ReturnRWError, ReturnOf(err))

	assert.True(t, s.pmMu.TryLock())
	s.pmMu.Unlock()
}
