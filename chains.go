package prereq

// A chain is an ordered walk along requirement relations, e.g.
// [deploy build compile] for deploy -> build -> compile. Chains are
// maximal: the last object has nothing further to walk to, or walking
// on would revisit an object already on the chain (only possible on a
// reflexive store).

// RequirementChains returns every maximal chain starting at dependent
// and descending through its requirements. Each chain begins with
// dependent itself. It returns ErrNoRequirements when dependent has no
// direct requirement.
//
// Order across chains follows the insertion order of the requirements
// they branch on.
func (s *Store[T]) RequirementChains(dependent T) ([][]T, error) {
	if !s.HasRequirements(dependent) {
		return nil, wrapObject(ErrNoRequirements, dependent)
	}
	return s.walkChains([]T{dependent}, s.Requirements), nil
}

// DependencyChains returns every maximal chain starting at requirement
// and ascending through its dependents, up to the objects nothing else
// requires. Each chain begins with requirement itself. It returns
// ErrNoDependents when nothing requires the object.
func (s *Store[T]) DependencyChains(requirement T) ([][]T, error) {
	if !s.HasDependents(requirement) {
		return nil, wrapObject(ErrNoDependents, requirement)
	}
	return s.walkChains([]T{requirement}, s.Dependents), nil
}

// walkChains extends path along next until no step remains, emitting
// one chain per maximal walk. A step back onto the current path is
// skipped rather than followed, so reflexive cycles end the chain
// instead of looping.
func (s *Store[T]) walkChains(path []T, next func(T) []T) [][]T {
	var chains [][]T
	tip := path[len(path)-1]
	extended := false
	for _, n := range next(tip) {
		if onPath(path, n) {
			continue
		}
		extended = true
		branch := append(append([]T(nil), path...), n)
		chains = append(chains, s.walkChains(branch, next)...)
	}
	if !extended {
		chains = append(chains, path)
	}
	return chains
}

func onPath[T comparable](path []T, object T) bool {
	for _, p := range path {
		if p == object {
			return true
		}
	}
	return false
}

// AllRequirementChains returns the chains of every dependent in the
// store, walked from dependents down to ultimate requirements.
//
// With withoutDuplicates true only graph roots are expanded: objects
// that nothing else requires. That suppresses re-emitting the same
// downstream chain once per intermediate object. Each distinct
// dependent is expanded at most once either way. Order across starting
// objects is unspecified.
func (s *Store[T]) AllRequirementChains(withoutDuplicates bool) [][]T {
	var chains [][]T
	for dep := range s.requirements {
		if withoutDuplicates && s.HasDependents(dep) {
			continue
		}
		chains = append(chains, s.walkChains([]T{dep}, s.Requirements)...)
	}
	return chains
}

// AllDependencyChains is the structural dual of AllRequirementChains:
// it walks from requirements up to ultimate dependents. With
// withoutDuplicates true only graph leaves are expanded: objects that
// themselves require nothing.
func (s *Store[T]) AllDependencyChains(withoutDuplicates bool) [][]T {
	var chains [][]T
	seen := make(map[T]bool)
	for _, reqs := range s.requirements {
		for _, req := range reqs {
			if seen[req] {
				continue
			}
			seen[req] = true
			if withoutDuplicates && s.HasRequirements(req) {
				continue
			}
			chains = append(chains, s.walkChains([]T{req}, s.Dependents)...)
		}
	}
	return chains
}
