// Package list owns the ordered to-do collection and all of its mutations.
package list

import (
	"time"

	"github.com/rogersnm/tick/internal/model"
	"github.com/rogersnm/tick/internal/storage"
)

// Store holds the task sequence, the id counter, and the active filter. Every
// mutation is validated up front, applied, persisted through the gateway, and
// announced to subscribers before the call returns. Mutations never return an
// error: invalid input and unknown ids are no-ops, reported through the bool
// result so callers can still tell nothing happened.
type Store struct {
	gw     storage.Gateway
	items  []model.Item
	nextID int64
	filter model.Filter
	obs    *registry
}

// New loads previously persisted state from gw. The id counter is reconciled
// against the loaded items so a stale or hand-edited counter can never cause
// an id to be reused.
func New(gw storage.Gateway) *Store {
	s := &Store{gw: gw, nextID: 1, filter: model.FilterAll, obs: newRegistry()}

	var items []model.Item
	if gw.Load(storage.KeyItems, &items) {
		s.items = items
	}
	var next int64
	if gw.Load(storage.KeyNextID, &next) && next > s.nextID {
		s.nextID = next
	}
	for _, it := range s.items {
		if it.ID >= s.nextID {
			s.nextID = it.ID + 1
		}
	}
	return s
}

// Add appends a new active item with the trimmed text. Returns false, and
// changes nothing, when the text trims to empty or exceeds the length limit.
func (s *Store) Add(text string) bool {
	trimmed, err := model.NormalizeText(text)
	if err != nil {
		return false
	}
	s.items = append(s.items, model.Item{
		ID:        s.nextID,
		Text:      trimmed,
		CreatedAt: now(),
	})
	s.nextID++
	s.persist()
	s.obs.notify()
	return true
}

// Toggle flips the completed flag on the item with the given id.
func (s *Store) Toggle(id int64) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	it := s.items[i]
	it.Completed = !it.Completed
	s.items[i] = it
	s.persist()
	s.obs.notify()
	return true
}

// Edit replaces the item's text, leaving id, completed, and createdAt alone.
func (s *Store) Edit(id int64, text string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	trimmed, err := model.NormalizeText(text)
	if err != nil {
		return false
	}
	it := s.items[i]
	it.Text = trimmed
	s.items[i] = it
	s.persist()
	s.obs.notify()
	return true
}

// Delete removes the item with the given id, if present.
func (s *Store) Delete(id int64) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	s.persist()
	s.obs.notify()
	return true
}

// ClearCompleted removes every completed item and returns how many were
// removed. Persists and notifies even when nothing matched.
func (s *Store) ClearCompleted() int {
	var kept []model.Item
	for _, it := range s.items {
		if !it.Completed {
			kept = append(kept, it)
		}
	}
	removed := len(s.items) - len(kept)
	s.items = kept
	s.persist()
	s.obs.notify()
	return removed
}

// ClearAll empties the sequence.
func (s *Store) ClearAll() {
	s.items = nil
	s.persist()
	s.obs.notify()
}

// SetFilter switches the active view. Unknown filter kinds are ignored. The
// filter is session state and is not persisted through the gateway.
func (s *Store) SetFilter(f model.Filter) bool {
	if err := model.ValidateFilter(f); err != nil {
		return false
	}
	s.filter = f
	s.obs.notify()
	return true
}

func (s *Store) Filter() model.Filter {
	return s.filter
}

// Items returns a copy of the full sequence in insertion order.
func (s *Store) Items() []model.Item {
	return append([]model.Item(nil), s.items...)
}

// Filtered returns the items surfaced by the active filter, in insertion
// order.
func (s *Store) Filtered() []model.Item {
	var out []model.Item
	for _, it := range s.items {
		if s.filter.Matches(it) {
			out = append(out, it)
		}
	}
	return out
}

func (s *Store) Get(id int64) (model.Item, bool) {
	if i := s.index(id); i >= 0 {
		return s.items[i], true
	}
	return model.Item{}, false
}

func (s *Store) Len() int {
	return len(s.items)
}

func (s *Store) ActiveCount() int {
	n := 0
	for _, it := range s.items {
		if !it.Completed {
			n++
		}
	}
	return n
}

func (s *Store) CompletedCount() int {
	return len(s.items) - s.ActiveCount()
}

// Subscribe registers a callback invoked after every mutation. Callbacks run
// synchronously, in registration order, with no payload; re-query the store
// to learn what changed. The returned handle unregisters via Unsubscribe.
func (s *Store) Subscribe(fn func()) int {
	return s.obs.add(fn)
}

// Unsubscribe removes a previously registered callback.
func (s *Store) Unsubscribe(handle int) {
	s.obs.remove(handle)
}

func (s *Store) index(id int64) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) persist() {
	s.gw.Save(storage.KeyItems, s.items)
	s.gw.Save(storage.KeyNextID, s.nextID)
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
