package persona

// Store is the read side the persona routes and startup need.
type Store interface {
	List() []Persona
	FindByID(id string) (Persona, bool)
}

// MemoryStore keeps the seeded personas in seed order with an id index.
// It is never mutated after construction, so it needs no locking.
type MemoryStore struct {
	ordered []Persona
	byID    map[string]int
}

// NewMemoryStore indexes items by ID. A later entry with a duplicate ID replaces the earlier one in place.
func NewMemoryStore(items []Persona) *MemoryStore {
	s := &MemoryStore{byID: make(map[string]int, len(items))}
	for _, p := range items {
		if i, dup := s.byID[p.ID]; dup {
			s.ordered[i] = p
			continue
		}
		s.byID[p.ID] = len(s.ordered)
		s.ordered = append(s.ordered, p)
	}
	return s
}

// List returns the personas in seed order. Callers own the returned slice.
func (s *MemoryStore) List() []Persona {
	out := make([]Persona, len(s.ordered))
	copy(out, s.ordered)
	return out
}

func (s *MemoryStore) FindByID(id string) (Persona, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Persona{}, false
	}
	return s.ordered[i], true
}
