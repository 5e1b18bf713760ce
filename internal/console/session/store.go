package session

import (
	"bytes"
	"sync"

	"jobboard/internal/authz"
)

// Storage keys. One record per role; Put evicts the other role so the
// two can never coexist.
const (
	keyAdmin    = "admin"
	keyEmployer = "employer"
)

var roleKeys = []string{keyAdmin, keyEmployer}

// Store persists at most one session record per role and notifies
// subscribers when the backing storage changes from outside this
// process. Writes made through the Store itself never fire the
// subscribers.
type Store struct {
	kv KV

	mu       sync.Mutex
	subs     map[int]func()
	nextSub  int
	lastSeen map[string][]byte
}

func NewStore(kv KV) (*Store, error) {
	s := &Store{
		kv:       kv,
		subs:     make(map[int]func()),
		lastSeen: make(map[string][]byte),
	}
	if err := s.snapshotLocked(); err != nil {
		return nil, err
	}
	return s, nil
}

func keyForRole(role string) string {
	if role == string(authz.RoleAdmin) {
		return keyAdmin
	}
	return keyEmployer
}

// Put stores the record under its role key and removes the other
// role's record, if any.
func (s *Store) Put(rec Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	raw, err := rec.encode()
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	key := keyForRole(rec.Role)
	if err := s.kv.Put(key, raw); err != nil {
		return err
	}
	for _, other := range roleKeys {
		if other == key {
			continue
		}
		if err := s.kv.Delete(other); err != nil {
			return err
		}
	}
	return s.snapshotLocked()
}

// Get returns the record for one role, if present.
func (s *Store) Get(role string) (Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok, err := s.kv.Get(keyForRole(role))
	if err != nil || !ok {
		return Record{}, false, err
	}
	rec, err := decodeRecord(raw)
	if err != nil {
		return Record{}, false, err
	}
	return rec, true, nil
}

// Clear removes every session record.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range roleKeys {
		if err := s.kv.Delete(key); err != nil {
			return err
		}
	}
	return s.snapshotLocked()
}

// Subscribe registers fn to run when Sync observes an external change.
// The returned func cancels the subscription.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Sync re-reads the backing storage and fires subscribers if it differs
// from the state this Store last wrote or observed. Pollers call it on
// an interval; tests call it directly.
func (s *Store) Sync() error {
	s.mu.Lock()
	changed, err := s.diffLocked()
	if err != nil {
		s.mu.Unlock()
		return err
	}
	var fns []func()
	if changed {
		if err := s.snapshotLocked(); err != nil {
			s.mu.Unlock()
			return err
		}
		for _, fn := range s.subs {
			fns = append(fns, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
	return nil
}

func (s *Store) snapshotLocked() error {
	for _, key := range roleKeys {
		raw, ok, err := s.kv.Get(key)
		if err != nil {
			return err
		}
		if !ok {
			delete(s.lastSeen, key)
			continue
		}
		s.lastSeen[key] = raw
	}
	return nil
}

func (s *Store) diffLocked() (bool, error) {
	for _, key := range roleKeys {
		raw, ok, err := s.kv.Get(key)
		if err != nil {
			return false, err
		}
		seen, had := s.lastSeen[key]
		if ok != had || !bytes.Equal(raw, seen) {
			return true, nil
		}
	}
	return false, nil
}
