// Package store is the process-wide state container for recipes,
// folders, the shopping list and the meal log. It is constructed
// explicitly and passed by reference; there is no package-level
// singleton. Every mutation is atomic from the caller's point of view,
// notifies subscribers before returning, and then persists the full
// snapshot to the configured key-value backend.
package store

import (
	"context"
	"log"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/HyperionMedia/Plated-Free-sub001/internal/model"
	"github.com/HyperionMedia/Plated-Free-sub001/internal/store/kv"
)

// StorageKey is the fixed key the full snapshot is serialized under.
const StorageKey = "plated:snapshot"

// EventKind tells subscribers which collection changed.
type EventKind string

const (
	EventRecipes  EventKind = "recipes"
	EventFolders  EventKind = "folders"
	EventShopping EventKind = "shopping"
	EventMeals    EventKind = "meals"
	EventSession  EventKind = "session"
)

// Event is delivered synchronously to subscribers after a mutation
// commits and before the mutating call returns.
type Event struct {
	Kind EventKind
}

// Store holds all collections. mu guards the collections for readers;
// commitMu serializes whole mutations (apply, notify, persist) so
// concurrent callers commit one at a time and snapshots reach the
// backend in commit order.
type Store struct {
	mu       sync.Mutex
	recipes  []model.Recipe
	folders  []model.Folder
	shopping []model.ShoppingListItem
	mealLog  []model.MealLogEntry
	users    []model.User
	session  model.Session

	backend kv.Store

	subMu     sync.Mutex
	subs      map[int]func(Event)
	nextSubID int

	commitMu sync.Mutex
	// Goroutine currently delivering notifications, 0 when none. Only a
	// mutation issued from that goroutine is reentrant; mutations from
	// other goroutines queue on commitMu instead.
	notifyingG atomic.Int64
}

// New creates an empty store backed by the given key-value transport.
func New(backend kv.Store) *Store {
	return &Store{
		backend: backend,
		subs:    make(map[int]func(Event)),
	}
}

// Load initializes the store from the last persisted snapshot. Absence
// or a corrupt snapshot falls back to seeded defaults; the process never
// refuses to start over persistence.
func (s *Store) Load(ctx context.Context) error {
	data, ok, err := s.backend.Get(ctx, StorageKey)
	if err != nil {
		log.Printf("[store] snapshot read failed, starting with defaults: %v", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil && ok {
		snap, derr := decodeSnapshot(data)
		if derr != nil {
			log.Printf("[store] snapshot decode failed, starting with defaults: %v", derr)
		} else {
			s.applySnapshotLocked(snap)
			return nil
		}
	}
	s.folders = model.DefaultFolders()
	return nil
}

// Subscribe registers fn for every committed mutation. The returned
// cancel func removes the subscription and is safe to call twice.
func (s *Store) Subscribe(fn func(Event)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

// mutate runs one whole commit: fn under the write lock, snapshot
// encoding while still consistent, then notification and persistence,
// all serialized by commitMu so concurrent mutations queue rather than
// interleave and the backend always ends up holding the newest committed
// snapshot. A mutation issued from inside a subscriber callback (same
// goroutine as the notification) is rejected rather than deadlocked;
// mutations from other goroutines simply wait their turn.
func (s *Store) mutate(ctx context.Context, kind EventKind, fn func() error) error {
	if gid := goroutineID(); gid != 0 && s.notifyingG.Load() == gid {
		return ErrReentrantMutation
	}

	s.commitMu.Lock()
	defer s.commitMu.Unlock()

	s.mu.Lock()
	if err := fn(); err != nil {
		s.mu.Unlock()
		return err
	}
	data, encErr := encodeSnapshot(s.snapshotLocked())
	s.mu.Unlock()

	s.notify(Event{Kind: kind})

	if encErr != nil {
		log.Printf("[store] snapshot encode failed, state kept in memory only: %v", encErr)
		return nil
	}
	if err := s.backend.Set(ctx, StorageKey, data); err != nil {
		// In-memory state stays the source of truth for the session.
		log.Printf("[store] persist failed: %v", err)
	}
	return nil
}

func (s *Store) notify(ev Event) {
	s.subMu.Lock()
	fns := make([]func(Event), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	s.notifyingG.Store(goroutineID())
	defer s.notifyingG.Store(0)
	for _, fn := range fns {
		fn(ev)
	}
}

// goroutineID parses the current goroutine's id from its stack header
// ("goroutine 12 [running]:"). The runtime offers no direct accessor;
// this is only used to scope the reentrancy check to the notifying call
// chain, never for synchronization.
func goroutineID() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	fields := strings.Fields(string(buf[:n]))
	if len(fields) < 2 {
		return 0
	}
	id, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// normalizeName is the comparison key for ingredient deduplication:
// case-insensitive and trimmed, nothing smarter. "Garlic" and "garlic
// cloves" stay distinct on purpose.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
