// Package prereq provides an in-memory store of dependency relations
// between values of an arbitrary comparable type.
//
// A relation is an ordered pair (dependent, requirement) meaning the
// dependent requires the requirement to be satisfied first. Pairs are
// unique, and an object can never require itself. By default mutual
// dependencies are rejected, directly and through chains; a store
// created with WithReflexive allows two objects to require each other.
// Because it would make no sense to flip it mid-flight, the reflexive
// mode cannot be changed after construction.
//
// # Basic Usage
//
//	s := prereq.New[string]()
//	_ = s.Add("deploy", "build")
//	_ = s.Add("build", "compile")
//	s.Requires("deploy", "compile") // true, via build
//
// # Bulk Transfer
//
// Get, Set and Merge move whole relation tables in and out of the
// store as a dependent -> requirements map. They are the integration
// points for callers that persist relations externally; the store
// itself defines no serialization format.
//
// # Concurrency
//
// A Store is not safe for concurrent use. Callers that share a store
// across goroutines must serialize access themselves.
package prereq

// Option configures a Store at construction time.
type Option func(*options)

type options struct {
	reflexive bool
}

// WithReflexive allows mutual dependencies: with it, Add("a", "b")
// followed by Add("b", "a") both succeed. This is the only way to
// express a circular relationship.
func WithReflexive() Option {
	return func(o *options) {
		o.reflexive = true
	}
}

// Store records directed dependency relations between values of T.
// The zero value is not usable; create stores with New.
type Store[T comparable] struct {
	reflexive bool

	// requirements maps a dependent to its direct requirements in
	// insertion order. Invariants: no (x, x) pair, no duplicate pair,
	// and in non-reflexive mode no pair whose reverse is reachable.
	requirements map[T][]T

	// size is the total pair count, kept so Len stays O(1).
	size int
}

// New creates an empty store. Mutual dependencies are rejected unless
// WithReflexive is given.
func New[T comparable](opts ...Option) *Store[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Store[T]{
		reflexive:    o.reflexive,
		requirements: make(map[T][]T),
	}
}

// Reflexive reports whether mutual dependencies are allowed.
func (s *Store[T]) Reflexive() bool {
	return s.reflexive
}

// Empty reports whether the store holds no relations.
func (s *Store[T]) Empty() bool {
	return s.size == 0
}

// Len returns the number of stored relations.
func (s *Store[T]) Len() int {
	return s.size
}

// Clear removes every relation. The reflexive mode is unaffected.
func (s *Store[T]) Clear() {
	s.requirements = make(map[T][]T)
	s.size = 0
}

// Add records that dependent requires requirement.
//
// It returns ErrSelfRequirement when both arguments are the same
// object, ErrRequirementExists when the relation is already present
// directly or through a chain, and ErrOppositeRequirement when the
// reverse relation is reachable on a non-reflexive store. On error the
// store is unchanged.
func (s *Store[T]) Add(dependent, requirement T) error {
	if err := s.validate(dependent, requirement); err != nil {
		return err
	}
	s.insert(dependent, requirement)
	return nil
}

// validate runs the Add contract checks without mutating the store.
func (s *Store[T]) validate(dependent, requirement T) error {
	if dependent == requirement {
		return wrapPair(ErrSelfRequirement, dependent, requirement)
	}
	if s.Requires(dependent, requirement) {
		return wrapPair(ErrRequirementExists, dependent, requirement)
	}
	if !s.reflexive && s.Requires(requirement, dependent) {
		return wrapPair(ErrOppositeRequirement, dependent, requirement)
	}
	return nil
}

func (s *Store[T]) insert(dependent, requirement T) {
	s.requirements[dependent] = append(s.requirements[dependent], requirement)
	s.size++
}

// Remove deletes the direct relation (dependent, requirement).
// It returns ErrRequirementNotFound when the relation does not exist.
// The reverse relation, if any, is left in place.
func (s *Store[T]) Remove(dependent, requirement T) error {
	reqs := s.requirements[dependent]
	for i, req := range reqs {
		if req == requirement {
			s.requirements[dependent] = append(reqs[:i:i], reqs[i+1:]...)
			if len(s.requirements[dependent]) == 0 {
				delete(s.requirements, dependent)
			}
			s.size--
			return nil
		}
	}
	return wrapPair(ErrRequirementNotFound, dependent, requirement)
}

// RemoveDependent deletes every relation where dependent is the
// requiring side. Relations where it appears as a requirement are
// left. It returns ErrNoRequirements when dependent has none.
func (s *Store[T]) RemoveDependent(dependent T) error {
	reqs, ok := s.requirements[dependent]
	if !ok {
		return wrapObject(ErrNoRequirements, dependent)
	}
	delete(s.requirements, dependent)
	s.size -= len(reqs)
	return nil
}

// RemoveRequirement deletes every relation where requirement is the
// required side. Relations where it appears as a dependent are left.
// It returns ErrNoDependents when nothing requires it.
func (s *Store[T]) RemoveRequirement(requirement T) error {
	found := false
	for dep, reqs := range s.requirements {
		kept := reqs[:0:0]
		for _, req := range reqs {
			if req == requirement {
				found = true
				s.size--
				continue
			}
			kept = append(kept, req)
		}
		if len(kept) == 0 {
			delete(s.requirements, dep)
		} else {
			s.requirements[dep] = kept
		}
	}
	if !found {
		return wrapObject(ErrNoDependents, requirement)
	}
	return nil
}

// RemoveAll deletes every relation involving object on either side.
// Unlike the single-sided removals it never fails: each side is only
// removed when present.
func (s *Store[T]) RemoveAll(object T) {
	if s.HasRequirements(object) {
		_ = s.RemoveDependent(object)
	}
	if s.HasDependents(object) {
		_ = s.RemoveRequirement(object)
	}
}

// Get returns an independent copy of the full relation table as a
// dependent -> requirements map. Mutating the result does not affect
// the store.
func (s *Store[T]) Get() map[T][]T {
	result := make(map[T][]T, len(s.requirements))
	for dep, reqs := range s.requirements {
		result[dep] = append([]T(nil), reqs...)
	}
	return result
}

// Set replaces the store contents with the given relation table,
// validating every pair the same way Add does. On any violation the
// error is returned and the store keeps its previous contents.
//
// Iteration over the table follows map order, so when the table
// contains pairs that are only valid in a particular insertion order
// the reported violation may differ between calls.
func (s *Store[T]) Set(requirements map[T][]T) error {
	scratch := New[T]()
	scratch.reflexive = s.reflexive
	if err := scratch.Merge(requirements); err != nil {
		return err
	}
	s.requirements = scratch.requirements
	s.size = scratch.size
	return nil
}

// Merge adds every pair of the given relation table to the store,
// validating each against the pairs already present, earlier merged
// pairs included. On any violation the error is returned and the
// store keeps its previous contents.
func (s *Store[T]) Merge(requirements map[T][]T) error {
	scratch := &Store[T]{
		reflexive:    s.reflexive,
		requirements: s.Get(),
		size:         s.size,
	}
	for dep, reqs := range requirements {
		for _, req := range reqs {
			if err := scratch.Add(dep, req); err != nil {
				return err
			}
		}
	}
	s.requirements = scratch.requirements
	s.size = scratch.size
	return nil
}
