package prereq

import (
	"errors"
	"fmt"
)

// Sentinel errors for contract violations. Every failure in this
// package is invalid use by the caller rather than a recoverable
// runtime condition; a failed call leaves the store exactly as it was.
//
// Use the Is*Err helper functions to check for specific violations.
var (
	// ErrSelfRequirement is returned by Add when dependent and
	// requirement are the same object.
	ErrSelfRequirement = errors.New("prereq: object cannot require itself")

	// ErrRequirementExists is returned by Add when the relation is
	// already defined, directly or through a chain of requirements.
	ErrRequirementExists = errors.New("prereq: requirement already defined")

	// ErrOppositeRequirement is returned by Add on a non-reflexive
	// store when the reverse relation is reachable, directly or
	// through a chain. Create the store with WithReflexive to allow
	// mutual requirements.
	ErrOppositeRequirement = errors.New("prereq: opposite requirement not allowed on non-reflexive store")

	// ErrRequirementNotFound is returned by Remove when the exact
	// relation does not exist.
	ErrRequirementNotFound = errors.New("prereq: requirement does not exist")

	// ErrNoRequirements is returned by RemoveDependent and
	// RequirementChains when the object has no direct requirement.
	ErrNoRequirements = errors.New("prereq: object has no requirements")

	// ErrNoDependents is returned by RemoveRequirement and
	// DependencyChains when no object requires the given one.
	ErrNoDependents = errors.New("prereq: object has no dependents")
)

// IsSelfRequirementErr returns true if err is or wraps ErrSelfRequirement.
func IsSelfRequirementErr(err error) bool {
	return errors.Is(err, ErrSelfRequirement)
}

// IsRequirementExistsErr returns true if err is or wraps ErrRequirementExists.
func IsRequirementExistsErr(err error) bool {
	return errors.Is(err, ErrRequirementExists)
}

// IsOppositeRequirementErr returns true if err is or wraps ErrOppositeRequirement.
func IsOppositeRequirementErr(err error) bool {
	return errors.Is(err, ErrOppositeRequirement)
}

// IsRequirementNotFoundErr returns true if err is or wraps ErrRequirementNotFound.
func IsRequirementNotFoundErr(err error) bool {
	return errors.Is(err, ErrRequirementNotFound)
}

// IsNoRequirementsErr returns true if err is or wraps ErrNoRequirements.
func IsNoRequirementsErr(err error) bool {
	return errors.Is(err, ErrNoRequirements)
}

// IsNoDependentsErr returns true if err is or wraps ErrNoDependents.
func IsNoDependentsErr(err error) bool {
	return errors.Is(err, ErrNoDependents)
}

// wrapPair annotates a sentinel with the offending relation.
func wrapPair[T any](sentinel error, dependent, requirement T) error {
	return fmt.Errorf("%w: %v -> %v", sentinel, dependent, requirement)
}

// wrapObject annotates a sentinel with the offending object.
func wrapObject[T any](sentinel error, object T) error {
	return fmt.Errorf("%w: %v", sentinel, object)
}
