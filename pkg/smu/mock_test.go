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
	"io"
	"sync"
)

// memChannel is an in-memory exchange file: a seekable byte buffer with
// knobs to force short reads and writes.
type memChannel struct {
	mu  sync.Mutex
	buf []byte
	pos int

	reads  int
	writes int
	closed bool

	shortWrite bool // Write stores only half the bytes
	shortRead  int  // if >0, Read returns at most this many bytes
}

func newMemChannel(content []byte) *memChannel {
	return &memChannel{buf: content}
}

func (c *memChannel) Seek(offset int64, whence int) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if whence == io.SeekStart {
		c.pos = int(offset)
	}
	return int64(c.pos), nil
}

func (c *memChannel) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.writes++
	n := len(p)
	if c.shortWrite {
		n = len(p) / 2
	}

	if grow := c.pos + n - len(c.buf); grow > 0 {
		c.buf = append(c.buf, make([]byte, grow)...)
	}
	copy(c.buf[c.pos:], p[:n])
	c.pos += n

	return n, nil
}

func (c *memChannel) Read(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.reads++
	if c.pos >= len(c.buf) {
		return 0, io.EOF
	}

	n := copy(p, c.buf[c.pos:])
	if c.shortRead > 0 && n > c.shortRead {
		n = c.shortRead
	}
	c.pos += n

	return n, nil
}

func (c *memChannel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	return nil
}

// smnLoopback simulates the driver's smn file: a 4-byte write selects the
// register, an 8-byte write stores through it, and a read returns the
// currently selected register. The selected-register state is exactly the
// shared position state the session's smn lock must protect.
type smnLoopback struct {
	mu       sync.Mutex
	regs     map[uint32]uint32
	selected uint32
}

func newSMNLoopback() *smnLoopback {
	return &smnLoopback{regs: make(map[uint32]uint32)}
}

func (c *smnLoopback) Seek(offset int64, whence int) (int64, error) {
	return 0, nil
}

func (c *smnLoopback) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch len(p) {
	case 4:
		c.selected = nativeEndian.Uint32(p)
	case 8:
		c.regs[nativeEndian.Uint32(p[:4])] = nativeEndian.Uint32(p[4:])
	default:
		return 0, io.ErrShortWrite
	}

	return len(p), nil
}

func (c *smnLoopback) Read(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(p) < 4 {
		return 0, io.ErrShortBuffer
	}
	nativeEndian.PutUint32(p, c.regs[c.selected])

	return 4, nil
}

func (c *smnLoopback) Close() error { return nil }

// cmdLoopback simulates the driver's smu_cmd file with a scripted status
// word for each opcode written to it.
type cmdLoopback struct {
	mu     sync.Mutex
	status Return
	ops    []uint32
}

func (c *cmdLoopback) Seek(offset int64, whence int) (int64, error) {
	return 0, nil
}

func (c *cmdLoopback) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(p) != 4 {
		return 0, io.ErrShortWrite
	}
	c.ops = append(c.ops, nativeEndian.Uint32(p))

	return len(p), nil
}

func (c *cmdLoopback) Read(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(p) < 4 {
		return 0, io.ErrShortBuffer
	}
	nativeEndian.PutUint32(p, uint32(c.status))

	return 4, nil
}

func (c *cmdLoopback) Close() error { return nil }
