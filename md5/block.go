package md5

import (
	"encoding/binary"
	"math/bits"
)

// Round constants, floor(abs(sin(i+1)) * 2^32).
var k = [64]uint32{
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee,
	0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be,
	0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,

	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa,
	0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed,
	0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,

	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c,
	0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05,
	0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,

	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039,
	0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1,
	0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

// Left rotation amounts, four per round group.
var shift = [4][4]int{
	{7, 12, 17, 22},
	{5, 9, 14, 20},
	{4, 11, 16, 23},
	{6, 10, 15, 21},
}

// Transform runs the compression function over a single block and returns the updated state.
// It is the building block used by Context, exposed for callers that schedule blocks themselves.
func Transform(state [4]uint32, block *[BlockSize]byte) [4]uint32 {
	compress(&state, block[:])
	return state
}

// blockGeneric compresses every complete block of p into the context state.
// len(p) must be a multiple of BlockSize.
func blockGeneric(d *Context, p []byte) {
	for len(p) >= BlockSize {
		compress(&d.s, p[:BlockSize])
		p = p[BlockSize:]
	}
}

func compress(s *[4]uint32, p []byte) {
	// bounds check hint
	_ = p[BlockSize-1]

	var x [16]uint32
	for i := range x {
		x[i] = binary.LittleEndian.Uint32(p[i*4:])
	}

	a, b, c, d := s[0], s[1], s[2], s[3]

	// round 1: (b & c) | (^b & d), written with a single select
	for i := 0; i < 16; i++ {
		f := ((c ^ d) & b) ^ d
		a, b, c, d = d, b+bits.RotateLeft32(a+f+x[i]+k[i], shift[0][i&3]), b, c
	}

	// round 2: (b & d) | (c & ^d)
	for i := 16; i < 32; i++ {
		f := ((b ^ c) & d) ^ c
		a, b, c, d = d, b+bits.RotateLeft32(a+f+x[(5*i+1)&15]+k[i], shift[1][i&3]), b, c
	}

	// round 3
	for i := 32; i < 48; i++ {
		f := b ^ c ^ d
		a, b, c, d = d, b+bits.RotateLeft32(a+f+x[(3*i+5)&15]+k[i], shift[2][i&3]), b, c
	}

	// round 4
	for i := 48; i < 64; i++ {
		f := c ^ (b | ^d)
		a, b, c, d = d, b+bits.RotateLeft32(a+f+x[(7*i)&15]+k[i], shift[3][i&3]), b, c
	}

	s[0] += a
	s[1] += b
	s[2] += c
	s[3] += d
}
