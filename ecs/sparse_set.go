package ecs

// store is the type-erased view of a component set the world needs for
// entity teardown.
type store interface {
	remove(e Entity) bool
	size() int
}

// sparseSet keeps components densely packed and indexed by entity id.
// Dense entries hold the full Entity so stale generations never match.
type sparseSet[T any] struct {
	dense   []Entity
	values  []*T
	sparse  []int
	scratch []Entity
	depth   int
}

func (s *sparseSet[T]) index(e Entity) (int, bool) {
	id := int(e.id())
	if id <= 0 || id > len(s.sparse) {
		return 0, false
	}
	idx := s.sparse[id-1]
	if idx < 0 || idx >= len(s.dense) || s.dense[idx] != e {
		return 0, false
	}
	return idx, true
}

func (s *sparseSet[T]) get(e Entity) (*T, bool) {
	idx, ok := s.index(e)
	if !ok {
		return nil, false
	}
	return s.values[idx], true
}

func (s *sparseSet[T]) set(e Entity, v *T) {
	if idx, ok := s.index(e); ok {
		s.values[idx] = v
		return
	}
	id := int(e.id())
	for len(s.sparse) < id {
		s.sparse = append(s.sparse, -1)
	}
	s.dense = append(s.dense, e)
	s.values = append(s.values, v)
	s.sparse[id-1] = len(s.dense) - 1
}

func (s *sparseSet[T]) remove(e Entity) bool {
	idx, ok := s.index(e)
	if !ok {
		return false
	}
	last := len(s.dense) - 1
	moved := s.dense[last]

	s.dense[idx] = moved
	s.values[idx] = s.values[last]
	s.sparse[moved.id()-1] = idx

	s.values[last] = nil
	s.dense = s.dense[:last]
	s.values = s.values[:last]
	s.sparse[e.id()-1] = -1
	return true
}

func (s *sparseSet[T]) size() int {
	return len(s.dense)
}

// snapshot copies the entity list so callers may add or remove components
// while iterating. The outermost iteration reuses a scratch buffer.
func (s *sparseSet[T]) snapshot() []Entity {
	if s.depth == 0 {
		s.scratch = append(s.scratch[:0], s.dense...)
		return s.scratch
	}
	return append([]Entity(nil), s.dense...)
}
