// Package md5 implements a streaming MD5 engine as defined in RFC 1321.
//
// A Context is fed with Write (or Update) any number of times and consumed once by Finalize,
// which wipes it. Contexts are plain values without global state, so every goroutine
// hashing in parallel owns its own Context.
//
// MD5 is cryptographically broken. It is provided as a deterministic primitive for
// search loops that look for digests with specific properties.
package md5

import (
	"encoding/binary"
	"errors"

	"git.gammaspectra.live/P2Pool/md5/types"
)

// Size The size of an MD5 checksum in bytes.
const Size = types.DigestSize

// BlockSize The block size of the hash algorithm in bytes.
const BlockSize = 64

const (
	init0 = 0x67452301
	init1 = 0xefcdab89
	init2 = 0x98badcfe
	init3 = 0x10325476
)

// ErrFinalized is returned or raised when a Context is used after Finalize without a Reset
var ErrFinalized = errors.New("md5: context already finalized")

var pad = [BlockSize]byte{0x80}

// Context holds the running state of a single message being hashed.
// The zero value is not ready for use, obtain one via New or Initialize.
type Context struct {
	s     [4]uint32       // chaining value
	bits  uint64          // message bits counter, wraps at 2^64
	x     [BlockSize]byte // buffer for data not yet compressed
	nx    int             // number of bytes in buffer
	spent bool
}

// Initialize returns a fresh Context by value, suitable for stack allocation in tight loops
func Initialize() Context {
	var d Context
	d.Reset()
	return d
}

// New returns a fresh heap allocated Context
func New() *Context {
	d := new(Context)
	d.Reset()
	return d
}

// Reset sets the Context to its initial state, including a Context that was finalized.
func (d *Context) Reset() {
	d.s = [4]uint32{init0, init1, init2, init3}
	d.bits = 0
	d.nx = 0
	d.spent = false
}

func (d *Context) Size() int { return Size }

func (d *Context) BlockSize() int { return BlockSize }

// Len returns the amount of bytes fed so far, modulo 2^61
func (d *Context) Len() uint64 { return d.bits >> 3 }

// Buffered returns the amount of bytes waiting for a complete block
func (d *Context) Buffered() int { return d.nx }

// Finalized reports whether Finalize consumed this Context
func (d *Context) Finalized() bool { return d.spent }

func (d *Context) Write(p []byte) (nn int, err error) {
	if d.spent {
		return 0, ErrFinalized
	}
	nn = len(p)
	d.bits += uint64(nn) << 3
	if d.nx > 0 {
		n := copy(d.x[d.nx:], p)
		d.nx += n
		if d.nx == BlockSize {
			blockGeneric(d, d.x[:])
			d.nx = 0
		}
		p = p[n:]
	}
	if len(p) >= BlockSize {
		n := len(p) &^ (BlockSize - 1)
		blockGeneric(d, p[:n])
		p = p[n:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return
}

func (d *Context) WriteString(s string) (nn int, err error) {
	if d.spent {
		return 0, ErrFinalized
	}
	// feed through the block buffer to avoid a string to slice conversion
	for len(s) > 0 {
		n := copy(d.x[d.nx:], s)
		d.nx += n
		d.bits += uint64(n) << 3
		nn += n
		s = s[n:]
		if d.nx == BlockSize {
			blockGeneric(d, d.x[:])
			d.nx = 0
		}
	}
	return nn, nil
}

// Update feeds p into the Context. It panics with ErrFinalized on a spent Context.
func (d *Context) Update(p []byte) {
	if _, err := d.Write(p); err != nil {
		panic(err)
	}
}

// Clone returns an independent copy of the Context, used to fork a common prefix.
func (d *Context) Clone() *Context {
	if d.spent {
		panic(ErrFinalized)
	}
	d0 := *d
	return &d0
}

// Sum appends the digest of the data written so far to in. The Context itself is not
// finalized and can keep receiving data.
func (d *Context) Sum(in []byte) []byte {
	if d.spent {
		panic(ErrFinalized)
	}
	d0 := *d
	sum := d0.Finalize()
	return append(in, sum[:]...)
}

// Finalize pads the message, compresses the remaining block(s) and returns the digest.
// The Context is wiped afterwards and must be Reset before any further use.
func (d *Context) Finalize() (out types.Digest) {
	if d.spent {
		panic(ErrFinalized)
	}

	// length is captured before padding is fed through Write
	var length [8]byte
	binary.LittleEndian.PutUint64(length[:], d.bits)

	if d.nx < BlockSize-8 {
		_, _ = d.Write(pad[:BlockSize-8-d.nx])
	} else {
		// 0x80 spills into a second block
		_, _ = d.Write(pad[:2*BlockSize-8-d.nx])
	}
	_, _ = d.Write(length[:])

	if d.nx != 0 {
		panic("padding failed")
	}

	for i, s := range d.s {
		binary.LittleEndian.PutUint32(out[i*4:], s)
	}

	d.wipe()
	return out
}

func (d *Context) wipe() {
	*d = Context{spent: true}
}
