package md5

import (
	"bytes"
	stdmd5 "crypto/md5"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"git.gammaspectra.live/P2Pool/md5/types"
)

func TestSumHexIterated(t *testing.T) {
	// index 0 of salt "abc", plain and stretched by 2016 extra rounds
	if result := SumHexIterated([]byte("abc0"), 0); result != types.MustDigestFromString("577571be4de9dcce85a041ba0410f29f") {
		t.Errorf("SumHexIterated(abc0, 0) = %s", result)
	}
	if result := SumHexIterated([]byte("abc0"), 1); result != types.MustDigestFromString("eec80a0c92dc8a0777c619d9bb51e910") {
		t.Errorf("SumHexIterated(abc0, 1) = %s", result)
	}
	if result := SumHexIterated([]byte("abc0"), 2016); result != types.MustDigestFromString("a107ff634856bb300138cac6568c0f24") {
		t.Errorf("SumHexIterated(abc0, 2016) = %s", result)
	}
}

func TestSumHexIterated_Reference(t *testing.T) {
	input := []byte("salt42")
	expected := stdmd5.Sum(input)
	for range 50 {
		expected = stdmd5.Sum([]byte(hex.EncodeToString(expected[:])))
	}
	if result := SumHexIterated(input, 50); result != types.Digest(expected) {
		t.Errorf("SumHexIterated(salt42, 50) = %s, want %x", result, expected)
	}
}

func TestSumReader(t *testing.T) {
	input := bytes.Repeat([]byte("0123456789abcdef"), 5000)

	t.Run("full", func(t *testing.T) {
		sum, n, err := SumReader(bytes.NewReader(input))
		if err != nil {
			t.Fatal(err)
		}
		if n != int64(len(input)) {
			t.Errorf("read %d bytes, want %d", n, len(input))
		}
		if sum != Sum(input) {
			t.Errorf("SumReader() = %s, want %s", sum, Sum(input))
		}
	})

	t.Run("half", func(t *testing.T) {
		sum, _, err := SumReader(iotest.HalfReader(bytes.NewReader(input)))
		if err != nil {
			t.Fatal(err)
		}
		if sum != Sum(input) {
			t.Errorf("SumReader() = %s, want %s", sum, Sum(input))
		}
	})

	t.Run("data_err", func(t *testing.T) {
		sum, _, err := SumReader(iotest.DataErrReader(strings.NewReader("abc")))
		if err != nil {
			t.Fatal(err)
		}
		if sum != testVectors[2].Output {
			t.Errorf("SumReader() = %s, want %s", sum, testVectors[2].Output)
		}
	})

	t.Run("error", func(t *testing.T) {
		errBoom := errors.New("boom")
		_, _, err := SumReader(iotest.ErrReader(errBoom))
		if !errors.Is(err, errBoom) {
			t.Errorf("SumReader() error = %v, want %v", err, errBoom)
		}
	})
}
