package types

import (
	"database/sql/driver"
	"encoding/binary"
	"errors"

	fasthex "github.com/tmthrgd/go-hex"
)

const DigestSize = 16

// HexSize length of the lowercase hexadecimal rendering of a Digest
const HexSize = DigestSize * 2

//nolint:recvcheck
type Digest [DigestSize]byte

var ZeroDigest Digest

func (d Digest) MarshalJSON() ([]byte, error) {
	var buf [HexSize + 2]byte
	buf[0] = '"'
	buf[HexSize+1] = '"'
	fasthex.Encode(buf[1:], d[:])
	return buf[:], nil
}

func MustBytes16FromString[T ~[16]byte](s string) T {
	if h, err := Bytes16FromString[T](s); err != nil {
		panic(err)
	} else {
		return h
	}
}

func Bytes16FromString[T ~[16]byte](s string) (T, error) {
	var h T
	if buf, err := fasthex.DecodeString(s); err != nil {
		return h, err
	} else {
		if len(buf) != DigestSize {
			return h, errors.New("wrong size")
		}
		copy(h[:], buf)
		return h, nil
	}
}

func MustDigestFromString(s string) Digest {
	return MustBytes16FromString[Digest](s)
}

func DigestFromString(s string) (Digest, error) {
	return Bytes16FromString[Digest](s)
}

func DigestFromBytes(buf []byte) (d Digest) {
	if len(buf) != DigestSize {
		return
	}
	copy(d[:], buf)
	return
}

func (d Digest) Slice() []byte {
	return d[:]
}

// String renders the digest as 32 lowercase hexadecimal characters, high nibble first
func (d Digest) String() string {
	return fasthex.EncodeToString(d[:])
}

// AppendHex appends the lowercase hexadecimal rendering of the digest to dst.
// No allocation happens when dst has HexSize spare capacity.
func (d Digest) AppendHex(dst []byte) []byte {
	n := len(dst)
	if cap(dst)-n < HexSize {
		dst = append(dst, make([]byte, HexSize)...)
	} else {
		dst = dst[:n+HexSize]
	}
	fasthex.Encode(dst[n:], d[:])
	return dst
}

// Nibble returns the value (0-15) of the i-th hexadecimal character of String()
func (d Digest) Nibble(i int) byte {
	b := d[i>>1]
	if i&1 == 0 {
		return b >> 4
	}
	return b & 0x0f
}

// Words returns the four state words the digest was serialized from
func (d Digest) Words() (w [4]uint32) {
	for i := range w {
		w[i] = binary.LittleEndian.Uint32(d[i*4:])
	}
	return w
}

func (d *Digest) Scan(src any) error {
	if src == nil {
		return nil
	} else if buf, ok := src.([]byte); ok {
		if len(buf) == 0 {
			return nil
		}
		if len(buf) != DigestSize {
			return errors.New("invalid digest size")
		}
		copy((*d)[:], buf)

		return nil
	}
	return errors.New("invalid type")
}

func (d *Digest) Value() (driver.Value, error) {
	if *d == ZeroDigest {
		return nil, nil //nolint:nilnil
	}
	return (*d)[:], nil
}

func (d *Digest) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || len(b) == 2 {
		return nil
	}

	if len(b) != HexSize+2 {
		return errors.New("wrong digest size")
	}

	if _, err := fasthex.Decode(d[:], b[1:len(b)-1]); err != nil {
		return err
	}

	return nil
}
