package md5

import (
	"sync/atomic"

	"git.gammaspectra.live/P2Pool/md5/types"
	"git.gammaspectra.live/P2Pool/md5/utils"
)

// Memo caches digests of recently hashed inputs, for search loops that look ahead
// over a window of candidates and come back to them later.
// It is safe for concurrent use.
type Memo struct {
	stretch int
	cache   utils.Cache[string, types.Digest]

	hits, misses atomic.Uint64
}

// NewMemo creates a Memo keeping up to size entries in least recently used order.
// A size of zero keeps every entry, a negative size disables caching.
// Each digest is re-hashed stretch extra times over its own hex rendering, see SumHexIterated.
func NewMemo(size, stretch int) *Memo {
	m := &Memo{
		stretch: max(stretch, 0),
	}
	switch {
	case size > 0:
		m.cache = utils.NewLRUCache[string, types.Digest](size)
	case size == 0:
		m.cache = utils.NewMapCache[string, types.Digest](1024)
	default:
		m.cache = utils.NewNilCache[string, types.Digest]()
	}
	return m
}

func (m *Memo) Get(input []byte) types.Digest {
	if sum, ok := m.cache.Get(string(input)); ok {
		m.hits.Add(1)
		return sum
	}
	return m.compute(string(input))
}

func (m *Memo) GetString(input string) types.Digest {
	if sum, ok := m.cache.Get(input); ok {
		m.hits.Add(1)
		return sum
	}
	return m.compute(input)
}

func (m *Memo) compute(input string) types.Digest {
	m.misses.Add(1)
	sum := iterateHex(SumString(input), m.stretch)
	m.cache.Set(input, sum)
	if utils.IsLogLevelDebug() {
		utils.Debugf("md5", "memo miss len=%d stretch=%d digest=%s", len(input), m.stretch, sum)
	}
	return sum
}

// Len returns the number of cached digests
func (m *Memo) Len() int {
	return m.cache.Len()
}

func (m *Memo) Stats() (hits, misses uint64) {
	return m.hits.Load(), m.misses.Load()
}

func (m *Memo) Clear() {
	m.cache.Clear()
}
