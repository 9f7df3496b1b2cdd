// Package state implements the shared UI state store: a dotted-path
// keyed tree with synchronous pub/sub and selective write-through
// persistence for user preferences.
package state

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/hireloop/hrms-ui-api/internal/ports"
)

// persistedKeys is the allow-list of top-level keys written through to
// the persister. Everything else is in-memory only.
var persistedKeys = []string{"theme", "sidebarCollapsed", "filters"}

// PersistedKeys returns a copy of the persistence allow-list.
func PersistedKeys() []string {
	out := make([]string, len(persistedKeys))
	copy(out, persistedKeys)
	return out
}

// Callback receives change notifications. Exact-path subscribers get
// the path they registered; wildcard subscribers get whichever path
// changed.
type Callback func(path string, value any)

type subscriber struct {
	id int
	fn Callback
}

// Options configures a Store. Logger is required; Persister and Initial
// are optional.
type Options struct {
	Logger    *slog.Logger
	Persister ports.StatePersister
	Initial   map[string]any
}

// Store is the single shared mutable resource of the UI layer. All
// methods are safe for concurrent use. Writes are last-wins; there are
// no transactions across paths.
type Store struct {
	logger    *slog.Logger
	persister ports.StatePersister
	persisted map[string]struct{}

	mu      sync.Mutex
	data    map[string]any
	initial map[string]any
	subs    map[string][]subscriber
	nextID  int
}

// NewStore builds a Store seeded with a deep copy of opts.Initial.
func NewStore(opts Options) *Store {
	if opts.Logger == nil {
		panic("state: Logger is required")
	}
	persisted := make(map[string]struct{}, len(persistedKeys))
	for _, k := range persistedKeys {
		persisted[k] = struct{}{}
	}
	initial := deepCopyMap(opts.Initial)
	if initial == nil {
		initial = map[string]any{}
	}
	return &Store{
		logger:    opts.Logger,
		persister: opts.Persister,
		persisted: persisted,
		data:      deepCopyMap(initial),
		initial:   initial,
		subs:      map[string][]subscriber{},
	}
}

// Get returns the value at a dotted path. Missing paths report ok=false
// instead of erroring.
func (s *Store) Get(path string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lookup(s.data, splitPath(path))
}

// Set writes a value at a dotted path, creating intermediate maps as
// needed, then persists allow-listed top-level keys and notifies
// subscribers on that exact path plus the wildcard topic.
func (s *Store) Set(path string, value any) {
	segments := splitPath(path)
	if len(segments) == 0 {
		return
	}

	s.mu.Lock()
	assign(s.data, segments, value)
	s.persistLocked(segments[0])
	cbs := s.pendingCallbacksLocked(path)
	s.mu.Unlock()

	s.notify(cbs, path, value)
}

// Update shallow-merges partial into the map at path. When the current
// value is not a map, it behaves as Set with partial as the new value.
func (s *Store) Update(path string, partial map[string]any) {
	segments := splitPath(path)
	if len(segments) == 0 {
		return
	}

	s.mu.Lock()
	current, ok := lookup(s.data, segments)
	target, isMap := current.(map[string]any)
	var value any
	if ok && isMap {
		merged := make(map[string]any, len(target)+len(partial))
		for k, v := range target {
			merged[k] = v
		}
		for k, v := range partial {
			merged[k] = v
		}
		value = merged
	} else {
		value = partial
	}
	assign(s.data, segments, value)
	s.persistLocked(segments[0])
	cbs := s.pendingCallbacksLocked(path)
	s.mu.Unlock()

	s.notify(cbs, path, value)
}

// Reset restores the value at path from the initial snapshot, or the
// whole tree when path is empty. Subscribers on the path (or on every
// top-level key for a full reset) are notified.
func (s *Store) Reset(path string) {
	if path == "" {
		s.mu.Lock()
		s.data = deepCopyMap(s.initial)
		var pending []notification
		for key := range s.persisted {
			s.persistLocked(key)
		}
		for key, value := range s.data {
			pending = append(pending, notification{key, value, s.pendingCallbacksLocked(key)})
		}
		s.mu.Unlock()

		for _, n := range pending {
			s.notify(n.cbs, n.path, n.value)
		}
		return
	}

	segments := splitPath(path)
	s.mu.Lock()
	value, ok := lookup(s.initial, segments)
	if ok {
		assign(s.data, segments, deepCopy(value))
	} else {
		remove(s.data, segments)
		value = nil
	}
	s.persistLocked(segments[0])
	cbs := s.pendingCallbacksLocked(path)
	s.mu.Unlock()

	s.notify(cbs, path, value)
}

type notification struct {
	path  string
	value any
	cbs   []subscriber
}

// Subscribe registers a callback for changes at an exact path, or "*"
// for every change. The returned function removes the subscription.
// Callbacks on one path run synchronously in insertion order.
func (s *Store) Subscribe(path string, fn Callback) func() {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.subs[path] = append(s.subs[path], subscriber{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		list := s.subs[path]
		for i, sub := range list {
			if sub.id == id {
				s.subs[path] = append(list[:i:i], list[i+1:]...)
				break
			}
		}
	}
}

// Snapshot returns a deep copy of the current state tree.
func (s *Store) Snapshot() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return deepCopyMap(s.data)
}

// Query evaluates a JMESPath expression against the value at path.
func (s *Store) Query(path, expression string) (any, error) {
	value, _ := s.Get(path)
	return jmespath.Search(expression, value)
}

// Load hydrates allow-listed keys from the persister. Corrupt entries
// are discarded with a log line. No subscribers are notified; Load runs
// before any are registered.
func (s *Store) Load(ctx context.Context) error {
	if s.persister == nil {
		return nil
	}
	entries, err := s.persister.Load(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for key, raw := range entries {
		if _, ok := s.persisted[key]; !ok {
			continue
		}
		var value any
		if err := json.Unmarshal(raw, &value); err != nil {
			s.logger.Warn("discarding corrupt persisted state", "key", key, "error", err)
			continue
		}
		s.data[key] = value
	}
	return nil
}

// persistLocked schedules a fire-and-forget write of one top-level key.
// Failures are logged, never surfaced to the mutating caller.
func (s *Store) persistLocked(topKey string) {
	if s.persister == nil {
		return
	}
	if _, ok := s.persisted[topKey]; !ok {
		return
	}

	value := s.data[topKey]
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("persist state serialize failed", "key", topKey, "error", err)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.persister.Save(ctx, topKey, raw); err != nil {
			s.logger.Warn("persist state failed", "key", topKey, "error", err)
		}
	}()
}

func (s *Store) pendingCallbacksLocked(path string) []subscriber {
	exact := s.subs[path]
	wildcard := s.subs["*"]
	if len(exact)+len(wildcard) == 0 {
		return nil
	}
	cbs := make([]subscriber, 0, len(exact)+len(wildcard))
	cbs = append(cbs, exact...)
	cbs = append(cbs, wildcard...)
	return cbs
}

// notify runs callbacks outside the lock so they can call back into the
// store. A panicking callback is logged and does not block the rest.
func (s *Store) notify(cbs []subscriber, path string, value any) {
	for _, sub := range cbs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					s.logger.Error("state subscriber panicked", "path", path, "panic", r)
				}
			}()
			sub.fn(path, value)
		}()
	}
}

func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}

func lookup(m map[string]any, segments []string) (any, bool) {
	if len(segments) == 0 {
		return nil, false
	}
	var current any = m
	for _, seg := range segments {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = node[seg]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

func assign(m map[string]any, segments []string, value any) {
	node := m
	for _, seg := range segments[:len(segments)-1] {
		next, ok := node[seg].(map[string]any)
		if !ok {
			next = map[string]any{}
			node[seg] = next
		}
		node = next
	}
	node[segments[len(segments)-1]] = value
}

func remove(m map[string]any, segments []string) {
	node := m
	for _, seg := range segments[:len(segments)-1] {
		next, ok := node[seg].(map[string]any)
		if !ok {
			return
		}
		node = next
	}
	delete(node, segments[len(segments)-1])
}

func deepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return deepCopyMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = deepCopy(e)
		}
		return out
	default:
		return v
	}
}

func deepCopyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCopy(v)
	}
	return out
}
