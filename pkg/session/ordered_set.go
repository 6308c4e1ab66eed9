package session

// orderedSet is a set of ids that remembers insertion order.
type orderedSet struct {
	ids   []string
	index map[string]int
}

func newOrderedSet() *orderedSet {
	return &orderedSet{index: make(map[string]int)}
}

func (s *orderedSet) has(id string) bool {
	_, ok := s.index[id]
	return ok
}

func (s *orderedSet) add(id string) {
	if s.has(id) {
		return
	}
	s.index[id] = len(s.ids)
	s.ids = append(s.ids, id)
}

func (s *orderedSet) remove(id string) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.ids = append(s.ids[:i], s.ids[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.ids); j++ {
		s.index[s.ids[j]] = j
	}
	return true
}

func (s *orderedSet) clear() {
	s.ids = nil
	clear(s.index)
}

func (s *orderedSet) size() int {
	return len(s.ids)
}

func (s *orderedSet) values() []string {
	if len(s.ids) == 0 {
		return nil
	}
	values := make([]string, len(s.ids))
	copy(values, s.ids)
	return values
}
