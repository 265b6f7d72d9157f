package md5

import (
	"errors"
	"fmt"
	"io"

	"git.gammaspectra.live/P2Pool/md5/types"
)

// Sum returns the MD5 digest of data
func Sum(data []byte) types.Digest {
	d := Initialize()
	_, _ = d.Write(data)
	return d.Finalize()
}

// SumString returns the MD5 digest of s without converting it to a byte slice
func SumString(s string) types.Digest {
	d := Initialize()
	_, _ = d.WriteString(s)
	return d.Finalize()
}

// ToHex renders a digest as 32 lowercase hexadecimal characters
func ToHex(digest types.Digest) string {
	return digest.String()
}

// SumHexIterated hashes data, then re-hashes the lowercase hex rendering of the previous
// digest rounds more times. A rounds value of zero is equivalent to Sum.
func SumHexIterated(data []byte, rounds int) types.Digest {
	sum := Sum(data)
	return iterateHex(sum, rounds)
}

func iterateHex(sum types.Digest, rounds int) types.Digest {
	var buf [types.HexSize]byte
	var d Context
	for range rounds {
		d.Reset()
		_, _ = d.Write(sum.AppendHex(buf[:0]))
		sum = d.Finalize()
	}
	return sum
}

const readBufferSize = 32 * 1024

// SumReader streams r until io.EOF and returns its digest along with the amount of bytes read
func SumReader(r io.Reader) (sum types.Digest, n int64, err error) {
	var buf [readBufferSize]byte
	d := Initialize()
	for {
		nn, rerr := r.Read(buf[:])
		if nn > 0 {
			_, _ = d.Write(buf[:nn])
			n += int64(nn)
		}
		if rerr != nil {
			if errors.Is(rerr, io.EOF) {
				break
			}
			return types.ZeroDigest, n, fmt.Errorf("md5: read: %w", rerr)
		}
	}
	return d.Finalize(), n, nil
}
