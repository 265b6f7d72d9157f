package md5

import (
	"encoding/binary"
	"errors"
)

const (
	magic         = "md5\x01"
	marshaledSize = len(magic) + 4*4 + BlockSize + 8
)

// ErrInvalidState is returned when unmarshaling a buffer that was not produced by MarshalBinary
var ErrInvalidState = errors.New("md5: invalid context state")

// AppendBinary appends a checkpoint of the running state to b.
// The buffered length is not stored, UnmarshalBinary derives it from the bit counter.
func (d *Context) AppendBinary(b []byte) ([]byte, error) {
	if d.spent {
		return nil, ErrFinalized
	}
	b = append(b, magic...)
	b = binary.BigEndian.AppendUint32(b, d.s[0])
	b = binary.BigEndian.AppendUint32(b, d.s[1])
	b = binary.BigEndian.AppendUint32(b, d.s[2])
	b = binary.BigEndian.AppendUint32(b, d.s[3])
	b = append(b, d.x[:d.nx]...)
	b = append(b, make([]byte, len(d.x)-d.nx)...)
	b = binary.BigEndian.AppendUint64(b, d.bits)
	return b, nil
}

func (d *Context) MarshalBinary() ([]byte, error) {
	return d.AppendBinary(make([]byte, 0, marshaledSize))
}

func (d *Context) UnmarshalBinary(b []byte) error {
	if len(b) != marshaledSize || string(b[:len(magic)]) != magic {
		return ErrInvalidState
	}
	b = b[len(magic):]
	d.s[0] = binary.BigEndian.Uint32(b[0:])
	d.s[1] = binary.BigEndian.Uint32(b[4:])
	d.s[2] = binary.BigEndian.Uint32(b[8:])
	d.s[3] = binary.BigEndian.Uint32(b[12:])
	b = b[16:]
	copy(d.x[:], b[:BlockSize])
	b = b[BlockSize:]
	d.bits = binary.BigEndian.Uint64(b)
	d.nx = int((d.bits >> 3) % BlockSize)
	d.spent = false
	return nil
}
