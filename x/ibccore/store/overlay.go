package store

import (
	"context"
	"sort"
	"sync"

	corestore "cosmossdk.io/core/store"
)

// Overlay is the journaled write-set-plus-read-through store the
// routing dispatcher's atomic batch commit is built on (spec.md §4.1
// step 3/4, §5 "Transaction discipline", §9 "Transactional store").
// Every sub-handler in a batch opens its KVStore through the same
// Overlay; writes land in the in-memory write-set and reads fall
// through to the base store for anything not yet written or deleted
// locally. Promote flushes the write-set into the base store;
// Discard drops it, leaving the base store untouched — this is what
// gives deliver() its all-or-nothing contract.
type Overlay struct {
	base corestore.KVStoreService

	mu      sync.Mutex
	writes  map[string][]byte
	deletes map[string]struct{}
}

// NewOverlay wraps base in a fresh, empty journal.
func NewOverlay(base corestore.KVStoreService) *Overlay {
	return &Overlay{
		base:    base,
		writes:  make(map[string][]byte),
		deletes: make(map[string]struct{}),
	}
}

// OpenKVStore implements corestore.KVStoreService.
func (o *Overlay) OpenKVStore(ctx context.Context) corestore.KVStore {
	return &overlayKVStore{overlay: o, base: o.base.OpenKVStore(ctx)}
}

// Promote flushes the write-set into the base store and clears the
// journal. Call this only after every message in a batch has
// succeeded.
func (o *Overlay) Promote(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	base := o.base.OpenKVStore(ctx)
	for k := range o.deletes {
		if err := base.Delete([]byte(k)); err != nil {
			return err
		}
	}
	for k, v := range o.writes {
		if err := base.Set([]byte(k), v); err != nil {
			return err
		}
	}
	o.resetLocked()
	return nil
}

// Discard throws away every buffered mutation, leaving the base store
// byte-identical to before the batch started.
func (o *Overlay) Discard() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.resetLocked()
}

func (o *Overlay) resetLocked() {
	o.writes = make(map[string][]byte)
	o.deletes = make(map[string]struct{})
}

type overlayKVStore struct {
	overlay *Overlay
	base    corestore.KVStore
}

func (s *overlayKVStore) Get(key []byte) ([]byte, error) {
	o := s.overlay
	o.mu.Lock()
	if _, deleted := o.deletes[string(key)]; deleted {
		o.mu.Unlock()
		return nil, nil
	}
	if v, ok := o.writes[string(key)]; ok {
		o.mu.Unlock()
		cp := make([]byte, len(v))
		copy(cp, v)
		return cp, nil
	}
	o.mu.Unlock()
	return s.base.Get(key)
}

func (s *overlayKVStore) Has(key []byte) (bool, error) {
	v, err := s.Get(key)
	if err != nil {
		return false, err
	}
	return v != nil, nil
}

func (s *overlayKVStore) Set(key, value []byte) error {
	o := s.overlay
	o.mu.Lock()
	defer o.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	o.writes[string(key)] = cp
	delete(o.deletes, string(key))
	return nil
}

func (s *overlayKVStore) Delete(key []byte) error {
	o := s.overlay
	o.mu.Lock()
	defer o.mu.Unlock()
	o.deletes[string(key)] = struct{}{}
	delete(o.writes, string(key))
	return nil
}

// Iterator materializes the merged view (base store overlaid with the
// write-set, minus deletions) at call time. Acceptable for the
// in-memory reference store the spec scopes this to (spec.md §9);
// a production journaled overlay would merge iterators lazily.
func (s *overlayKVStore) Iterator(start, end []byte) (corestore.Iterator, error) {
	return s.mergedIterator(start, end, false)
}

func (s *overlayKVStore) ReverseIterator(start, end []byte) (corestore.Iterator, error) {
	return s.mergedIterator(start, end, true)
}

func (s *overlayKVStore) mergedIterator(start, end []byte, reverse bool) (corestore.Iterator, error) {
	baseIter, err := s.base.Iterator(start, end)
	if err != nil {
		return nil, err
	}
	defer baseIter.Close()

	merged := make(map[string][]byte)
	for ; baseIter.Valid(); baseIter.Next() {
		merged[string(baseIter.Key())] = baseIter.Value()
	}

	o := s.overlay
	o.mu.Lock()
	for k := range o.deletes {
		delete(merged, k)
	}
	for k, v := range o.writes {
		if inRange(k, start, end) {
			merged[k] = v
		}
	}
	o.mu.Unlock()

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if reverse {
		for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
			keys[i], keys[j] = keys[j], keys[i]
		}
	}
	values := make([][]byte, len(keys))
	for i, k := range keys {
		values[i] = merged[k]
	}
	return &memIterator{keys: keys, values: values}, nil
}
