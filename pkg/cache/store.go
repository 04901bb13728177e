package cache

import (
	"container/list"
	"sync"
	"time"
)

// Store is an in-memory key/value cache with per-entry TTL and a bounded
// LRU eviction policy. Expiry is lazy: stale entries are removed when read,
// there is no background sweep.
//
// All methods are safe for concurrent use. Get-then-delete and Set are each
// performed under the same lock so concurrent handlers cannot interleave
// destructively.
type Store struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	order    *list.List // front = most recently used
}

type storeItem struct {
	key   string
	entry Entry
}

// New creates a Store bounded to capacity entries. When full, the least
// recently used entry is evicted on insert. A capacity <= 0 disables the
// bound.
func New(capacity int) *Store {
	return &Store{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		order:    list.New(),
	}
}

// Get returns the value stored for key. An entry past its expiry is deleted
// and reported as a miss.
func (s *Store) Get(key Key) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	el, ok := s.items[key.String()]
	if !ok {
		cacheMisses.WithLabelValues(key.Endpoint).Inc()
		return nil, false
	}

	item := el.Value.(*storeItem)
	if item.entry.IsExpired() {
		s.remove(el)
		cacheMisses.WithLabelValues(key.Endpoint).Inc()
		return nil, false
	}

	s.order.MoveToFront(el)
	cacheHits.WithLabelValues(key.Endpoint).Inc()
	return item.entry.Value, true
}

// Set stores value under key with the given TTL, overwriting any existing
// entry. Inserting into a full store evicts the least recently used entry.
func (s *Store) Set(key Key, value any, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key.String()
	entry := Entry{Value: value, Expires: time.Now().Add(ttl)}

	if el, ok := s.items[k]; ok {
		el.Value.(*storeItem).entry = entry
		s.order.MoveToFront(el)
		return
	}

	el := s.order.PushFront(&storeItem{key: k, entry: entry})
	s.items[k] = el

	if s.capacity > 0 && s.order.Len() > s.capacity {
		if oldest := s.order.Back(); oldest != nil {
			s.remove(oldest)
			cacheEvictions.Inc()
		}
	}
	cacheEntries.Set(float64(len(s.items)))
}

// Delete removes the entry for key, if present.
func (s *Store) Delete(key Key) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if el, ok := s.items[key.String()]; ok {
		s.remove(el)
	}
}

// Len returns the number of entries currently held, including entries that
// have expired but not yet been read.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.Len()
}

// remove deletes an element from both the map and the LRU list.
// Callers must hold s.mu.
func (s *Store) remove(el *list.Element) {
	item := el.Value.(*storeItem)
	s.order.Remove(el)
	delete(s.items, item.key)
	cacheEntries.Set(float64(len(s.items)))
}
