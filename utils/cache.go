package utils

import (
	"sync"

	"github.com/dolthub/swiss"
	"github.com/floatdrop/lru"
)

type Cache[K comparable, V any] interface {
	Get(key K) (value V, ok bool)
	Set(key K, value V)
	Len() int
	Clear()
}

type LRUCache[K comparable, V any] struct {
	lock   sync.Mutex
	size   int
	values *lru.LRU[K, V]
}

func NewLRUCache[K comparable, V any](size int) *LRUCache[K, V] {
	return &LRUCache[K, V]{
		size:   size,
		values: lru.New[K, V](size),
	}
}

func (c *LRUCache[K, V]) Get(key K) (value V, ok bool) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if v := c.values.Get(key); v != nil {
		return *v, true
	}
	return value, false
}

func (c *LRUCache[K, V]) Set(key K, value V) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.values.Set(key, value)
}

func (c *LRUCache[K, V]) Len() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.values.Len()
}

func (c *LRUCache[K, V]) Clear() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.values = lru.New[K, V](c.size)
}

// MapCache Unbounded cache, entries are only dropped on Clear
type MapCache[K comparable, V any] struct {
	lock   sync.RWMutex
	values *swiss.Map[K, V]
}

func NewMapCache[K comparable, V any](preAllocateSize uint32) *MapCache[K, V] {
	return &MapCache[K, V]{
		values: swiss.NewMap[K, V](preAllocateSize),
	}
}

func (m *MapCache[K, V]) Get(key K) (value V, ok bool) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.values.Get(key)
}

func (m *MapCache[K, V]) Set(key K, value V) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.values.Put(key, value)
}

func (m *MapCache[K, V]) Len() int {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.values.Count()
}

func (m *MapCache[K, V]) Clear() {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.values.Clear()
}

// NilCache Never stores anything
type NilCache[K comparable, V any] struct {
}

func NewNilCache[K comparable, V any]() *NilCache[K, V] {
	return &NilCache[K, V]{}
}

func (n *NilCache[K, V]) Get(key K) (value V, ok bool) {
	return value, false
}

func (n *NilCache[K, V]) Set(key K, value V) {

}

func (n *NilCache[K, V]) Len() int {
	return 0
}

func (n *NilCache[K, V]) Clear() {

}
