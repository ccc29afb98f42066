package history

// Store is a fixed-capacity buffer of lookup entries. Oldest entries are
// evicted first once the capacity is reached. It is owned by the single
// console loop and holds no locks.
type Store struct {
	entries  []Entry
	capacity int
}

// NewStore creates a store that retains at most capacity entries.
// A capacity below 1 falls back to DefaultCapacity.
func NewStore(capacity int) *Store {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Store{capacity: capacity}
}

// Record appends an entry, evicting the oldest when the store is full.
// It never fails.
func (s *Store) Record(entry Entry) {
	s.entries = append(s.entries, entry)
	if len(s.entries) > s.capacity {
		s.entries = s.entries[1:]
	}
}

// Recent returns a copy of the retained entries, newest first.
func (s *Store) Recent() []Entry {
	out := make([]Entry, len(s.entries))
	for i, e := range s.entries {
		out[len(s.entries)-1-i] = e
	}
	return out
}

// Len returns the number of retained entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Cap returns the maximum number of retained entries.
func (s *Store) Cap() int {
	return s.capacity
}
