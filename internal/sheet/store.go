package sheet

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/howells/stacksheet/internal/config"
)

// Snapshot is a read-only view of the stack state, ordered bottom (index 0)
// to top. The stack is empty exactly when IsOpen is false.
type Snapshot struct {
	Stack  []Item
	IsOpen bool
}

// Top returns the foreground item, if any.
func (s Snapshot) Top() (Item, bool) {
	if len(s.Stack) == 0 {
		return Item{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Depth returns the depth of the item at the given stack index: 0 for the
// top item, growing toward the bottom of the stack.
func (s Snapshot) Depth(index int) int {
	return len(s.Stack) - 1 - index
}

// Store is the authoritative sheet stack state machine. Every operation is
// synchronous, atomic, and total: malformed input and lookup misses are
// silent no-ops, never errors. Multiple stores are fully independent.
type Store struct {
	mu          sync.RWMutex
	cfg         config.Resolved
	log         zerolog.Logger
	stack       []Item
	registry    *providerRegistry
	snapIndex   int
	subscribers map[int]func(Snapshot)
	nextSubID   int
	idCounter   int
	lastOpen    bool
}

// NewStore creates a store with the given resolved configuration. The
// configuration is immutable for the store's lifetime.
func NewStore(cfg config.Resolved, log zerolog.Logger) *Store {
	componentLog := log.With().Str("component", "sheet-store").Logger()
	return &Store{
		cfg:         cfg,
		log:         componentLog,
		registry:    newProviderRegistry(componentLog),
		snapIndex:   cfg.SnapPointIndex,
		subscribers: make(map[int]func(Snapshot)),
	}
}

// Config returns the store's resolved configuration.
func (s *Store) Config() config.Resolved {
	return s.cfg
}

// Open replaces the entire stack with a single new sheet.
func (s *Store) Open(t Type, id string, data map[string]any) {
	s.mu.Lock()
	item := s.newItemLocked(t, id, data)
	s.stack = append(s.stack[:0], item)
	s.log.Debug().Str("op", "open").Str("sheet_id", item.ID).Str("type", item.Type).Msg("stack replaced")
	s.commitLocked()
}

// Push appends a new sheet on top of the stack. When the stack is already
// at MaxDepth the top sheet is replaced instead of growing the stack; this
// is the capacity policy, not an error.
func (s *Store) Push(t Type, id string, data map[string]any) {
	s.mu.Lock()
	item := s.newItemLocked(t, id, data)
	s.pushLocked(item)
	s.commitLocked()
}

func (s *Store) pushLocked(item Item) {
	if s.cfg.MaxDepth > 0 && len(s.stack) >= s.cfg.MaxDepth {
		s.stack[len(s.stack)-1] = item
		s.log.Debug().Str("op", "push").Str("sheet_id", item.ID).Int("max_depth", s.cfg.MaxDepth).Msg("at capacity; replaced top")
		return
	}
	s.stack = append(s.stack, item)
	s.log.Debug().Str("op", "push").Str("sheet_id", item.ID).Int("depth", len(s.stack)).Msg("sheet pushed")
}

// Replace swaps the top sheet for a new one; on an empty stack it behaves
// like Open.
func (s *Store) Replace(t Type, id string, data map[string]any) {
	s.mu.Lock()
	item := s.newItemLocked(t, id, data)
	if len(s.stack) == 0 {
		s.stack = append(s.stack, item)
	} else {
		s.stack[len(s.stack)-1] = item
	}
	s.log.Debug().Str("op", "replace").Str("sheet_id", item.ID).Msg("top replaced")
	s.commitLocked()
}

// Swap replaces the top sheet's type and data while preserving its
// identity. No-op on an empty stack.
func (s *Store) Swap(t Type, data map[string]any) {
	s.mu.Lock()
	if len(s.stack) == 0 {
		s.mu.Unlock()
		return
	}
	top := &s.stack[len(s.stack)-1]
	top.Type = s.resolveTypeLocked(t)
	top.Data = data
	s.log.Debug().Str("op", "swap").Str("sheet_id", top.ID).Str("type", top.Type).Msg("top swapped in place")
	s.commitLocked()
}

// Navigate routes to the right operation: Open on an empty stack, Replace
// when the top sheet already has the target type, Push otherwise. For
// ad-hoc targets "same type" means the identical provider reference, which
// the registry collapses to the same generated key.
func (s *Store) Navigate(t Type, id string, data map[string]any) {
	s.mu.Lock()
	item := s.newItemLocked(t, id, data)
	switch {
	case len(s.stack) == 0:
		s.stack = append(s.stack, item)
		s.log.Debug().Str("op", "navigate").Str("sheet_id", item.ID).Msg("empty stack; opened")
	case s.stack[len(s.stack)-1].Type == item.Type:
		s.stack[len(s.stack)-1] = item
		s.log.Debug().Str("op", "navigate").Str("sheet_id", item.ID).Msg("same type; replaced top")
	default:
		s.pushLocked(item)
	}
	s.commitLocked()
}

// SetData replaces the data payload of the sheet with the given id, leaving
// stack order and count untouched. Unknown ids are a silent no-op.
func (s *Store) SetData(t Type, id string, data map[string]any) {
	s.mu.Lock()
	// Resolving keeps ad-hoc providers registered even when the lookup
	// below misses.
	s.resolveTypeLocked(t)
	for i := range s.stack {
		if s.stack[i].ID == id {
			s.stack[i].Data = data
			s.log.Debug().Str("op", "set_data").Str("sheet_id", id).Msg("data replaced")
			s.commitLocked()
			return
		}
	}
	s.mu.Unlock()
}

// Remove deletes the sheet with the given id from anywhere in the stack.
// Unknown ids are a silent no-op.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	for i := range s.stack {
		if s.stack[i].ID == id {
			s.stack = append(s.stack[:i], s.stack[i+1:]...)
			s.log.Debug().Str("op", "remove").Str("sheet_id", id).Int("depth", len(s.stack)).Msg("sheet removed")
			s.commitLocked()
			return
		}
	}
	s.mu.Unlock()
}

// Pop removes the top sheet. Popping the last sheet closes the stack;
// popping an empty stack is a no-op.
func (s *Store) Pop() {
	s.mu.Lock()
	if len(s.stack) == 0 {
		s.mu.Unlock()
		return
	}
	popped := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.log.Debug().Str("op", "pop").Str("sheet_id", popped.ID).Int("depth", len(s.stack)).Msg("sheet popped")
	s.commitLocked()
}

// Close clears the stack unconditionally.
func (s *Store) Close() {
	s.mu.Lock()
	if len(s.stack) == 0 {
		s.mu.Unlock()
		return
	}
	s.stack = s.stack[:0]
	s.log.Debug().Str("op", "close").Msg("stack cleared")
	s.commitLocked()
}

// Snapshot returns a copy of the current stack state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// IsOpen reports whether any sheet is on the stack.
func (s *Store) IsOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.stack) > 0
}

// Len returns the number of sheets on the stack.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.stack)
}

// Top returns the foreground sheet, if any.
func (s *Store) Top() (Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.stack) == 0 {
		return Item{}, false
	}
	return s.stack[len(s.stack)-1], true
}

// ActiveSnapIndex returns the currently resolved snap point index.
func (s *Store) ActiveSnapIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapIndex
}

// SetSnapIndex records a new active snap point index, firing the configured
// OnSnapPointChange callback when it changes.
func (s *Store) SetSnapIndex(index int) {
	s.mu.Lock()
	if index < 0 || index == s.snapIndex {
		s.mu.Unlock()
		return
	}
	s.snapIndex = index
	s.mu.Unlock()

	if s.cfg.OnSnapPointChange != nil {
		s.cfg.OnSnapPointChange(index)
	}
}

// Subscribe registers a callback invoked after every state change. The
// returned function cancels the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// newItemLocked builds a stack item, generating an id when none is given.
// Must be called with s.mu held for write.
func (s *Store) newItemLocked(t Type, id string, data map[string]any) Item {
	if id == "" {
		id = fmt.Sprintf("sheet_%d", s.idCounter)
		s.idCounter++
	} else {
		for i := range s.stack {
			if s.stack[i].ID == id {
				// Advisory only; the operation proceeds unchanged.
				s.log.Warn().Str("sheet_id", id).Msg("duplicate sheet id supplied; ids must be unique within the stack")
				break
			}
		}
	}
	return Item{ID: id, Type: s.resolveTypeLocked(t), Data: data}
}

// resolveTypeLocked maps a Type to its string key, registering ad-hoc
// providers on first use. Must be called with s.mu held for write.
func (s *Store) resolveTypeLocked(t Type) string {
	if t.provider != nil {
		return s.registry.keyFor(t.provider)
	}
	return t.name
}

// ProviderFor returns the ad-hoc provider registered under the given type
// key, if any.
func (s *Store) ProviderFor(key string) (Provider, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry.providerFor(key)
}

func (s *Store) snapshotLocked() Snapshot {
	stack := make([]Item, len(s.stack))
	copy(stack, s.stack)
	return Snapshot{Stack: stack, IsOpen: len(s.stack) > 0}
}

// commitLocked publishes the state change: it snapshots under the lock,
// releases it, then notifies subscribers and fires open/close completion
// callbacks. Callbacks may safely call back into the store.
func (s *Store) commitLocked() {
	snap := s.snapshotLocked()
	wasOpen := s.lastOpen
	s.lastOpen = snap.IsOpen
	subscribers := make([]func(Snapshot), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subscribers = append(subscribers, fn)
	}
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(snap)
	}

	if !wasOpen && snap.IsOpen && s.cfg.OnOpenComplete != nil {
		s.cfg.OnOpenComplete()
	}
	if wasOpen && !snap.IsOpen && s.cfg.OnCloseComplete != nil {
		s.cfg.OnCloseComplete()
	}
}
