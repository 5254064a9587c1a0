package ecs

// sparseSet is a cache-friendly component store keyed by entity id.
// Pointers returned by get are valid until the next set or remove.
type sparseSet[T any] struct {
	denseEntities []entityID
	denseValues   []T
	sparse        []int
}

// storage is the type-erased view the world uses for bookkeeping.
type storage interface {
	has(id entityID) bool
	remove(id entityID) bool
	entities() []entityID
	len() int
}

func (s *sparseSet[T]) has(id entityID) bool {
	if id == 0 || int(id)-1 >= len(s.sparse) {
		return false
	}
	idx := s.sparse[id-1]
	return idx >= 0 && idx < len(s.denseEntities) && s.denseEntities[idx] == id
}

func (s *sparseSet[T]) get(id entityID) (*T, bool) {
	if !s.has(id) {
		return nil, false
	}
	return &s.denseValues[s.sparse[id-1]], true
}

func (s *sparseSet[T]) set(id entityID, v T) {
	if id == 0 {
		return
	}
	for int(id)-1 >= len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if s.has(id) {
		s.denseValues[s.sparse[id-1]] = v
		return
	}
	s.denseEntities = append(s.denseEntities, id)
	s.denseValues = append(s.denseValues, v)
	s.sparse[id-1] = len(s.denseEntities) - 1
}

func (s *sparseSet[T]) remove(id entityID) bool {
	if !s.has(id) {
		return false
	}
	idx := s.sparse[id-1]
	last := len(s.denseEntities) - 1
	lastID := s.denseEntities[last]

	s.denseEntities[idx] = s.denseEntities[last]
	s.denseValues[idx] = s.denseValues[last]
	s.sparse[lastID-1] = idx

	var zero T
	s.denseValues[last] = zero
	s.denseEntities = s.denseEntities[:last]
	s.denseValues = s.denseValues[:last]
	s.sparse[id-1] = -1
	return true
}

func (s *sparseSet[T]) entities() []entityID {
	return s.denseEntities
}

func (s *sparseSet[T]) len() int {
	return len(s.denseEntities)
}
