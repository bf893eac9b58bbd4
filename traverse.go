package prereq

// Exists reports whether the direct relation (dependent, requirement)
// is stored. Chains are not followed; use Requires for that.
func (s *Store[T]) Exists(dependent, requirement T) bool {
	for _, req := range s.requirements[dependent] {
		if req == requirement {
			return true
		}
	}
	return false
}

// HasRequirements reports whether dependent requires at least one
// other object.
func (s *Store[T]) HasRequirements(dependent T) bool {
	return len(s.requirements[dependent]) > 0
}

// HasDependents reports whether at least one object requires the
// given one. This scans the whole relation table.
func (s *Store[T]) HasDependents(requirement T) bool {
	for _, reqs := range s.requirements {
		for _, req := range reqs {
			if req == requirement {
				return true
			}
		}
	}
	return false
}

// Requirements returns the direct requirements of dependent in
// insertion order. The result is a copy; an object with no
// requirements yields an empty slice.
func (s *Store[T]) Requirements(dependent T) []T {
	return append([]T(nil), s.requirements[dependent]...)
}

// Dependents returns every object that directly requires the given
// one, found by scanning the whole relation table. Order across
// dependents is unspecified.
func (s *Store[T]) Dependents(requirement T) []T {
	var result []T
	for dep, reqs := range s.requirements {
		for _, req := range reqs {
			if req == requirement {
				result = append(result, dep)
			}
		}
	}
	return result
}

// Requires reports whether requirement is reachable from dependent
// through one or more requirement relations.
//
// The walk excludes the immediate predecessor at each step, which is
// enough to terminate on the two-object cycles a reflexive store can
// hold. Reflexive stores can also contain longer cycles, so for them
// the walk additionally tracks visited objects; non-reflexive stores
// are acyclic by construction and skip that bookkeeping. Shared
// diamond shapes are re-walked per path, so pathological graphs cost
// exponential time.
func (s *Store[T]) Requires(dependent, requirement T) bool {
	var visited map[T]bool
	if s.reflexive {
		visited = map[T]bool{dependent: true}
	}
	return s.reaches(dependent, requirement, nil, visited)
}

func (s *Store[T]) reaches(dependent, requirement T, prev *T, visited map[T]bool) bool {
	if s.Exists(dependent, requirement) {
		return true
	}
	for _, req := range s.requirements[dependent] {
		if prev != nil && req == *prev {
			continue
		}
		if visited != nil {
			if visited[req] {
				continue
			}
			visited[req] = true
		}
		if s.reaches(req, requirement, &dependent, visited) {
			return true
		}
	}
	return false
}
