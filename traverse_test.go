package prereq_test

import (
	"sort"
	"testing"

	"github.com/pthm/prereq"
)

func TestExists(t *testing.T) {
	s1 := nonReflexiveFixture(t)
	s2 := reflexiveFixture(t)

	for _, pair := range [][2]string{{"Kyle", "Jack"}, {"Jack", "John"}, {"Joe", "John"}} {
		if !s1.Exists(pair[0], pair[1]) {
			t.Errorf("Exists(%s, %s) = false, want true", pair[0], pair[1])
		}
	}
	if s1.Exists("Kyle", "John") {
		t.Error("Exists must not follow chains")
	}
	if s1.Exists("Jack", "Kyle") {
		t.Error("Exists must not report the reverse direction")
	}
	if !s2.Exists("Harry", "Joe") || !s2.Exists("Joe", "Harry") {
		t.Error("both directions should exist on the reflexive store")
	}
}

func TestHasRequirements(t *testing.T) {
	s := nonReflexiveFixture(t)

	for _, dep := range []string{"Kyle", "Jack", "Joe"} {
		if !s.HasRequirements(dep) {
			t.Errorf("HasRequirements(%s) = false, want true", dep)
		}
	}
	for _, dep := range []string{"John", "Harry"} {
		if s.HasRequirements(dep) {
			t.Errorf("HasRequirements(%s) = true, want false", dep)
		}
	}
}

func TestHasDependents(t *testing.T) {
	s := nonReflexiveFixture(t)

	for _, req := range []string{"Jack", "John"} {
		if !s.HasDependents(req) {
			t.Errorf("HasDependents(%s) = false, want true", req)
		}
	}
	for _, req := range []string{"Kyle", "Joe", "Harry"} {
		if s.HasDependents(req) {
			t.Errorf("HasDependents(%s) = true, want false", req)
		}
	}
}

func TestRequirements(t *testing.T) {
	s := nonReflexiveFixture(t)

	reqs := s.Requirements("Kyle")
	if len(reqs) != 1 || reqs[0] != "Jack" {
		t.Errorf("Requirements(Kyle) = %v, want [Jack]", reqs)
	}
	if got := s.Requirements("John"); len(got) != 0 {
		t.Errorf("Requirements(John) = %v, want empty", got)
	}
}

func TestRequirementsPreservesInsertionOrder(t *testing.T) {
	s := prereq.New[string]()
	mustAdd(t, s, "app", "lib")
	mustAdd(t, s, "app", "compiler")
	mustAdd(t, s, "app", "runtime")

	want := []string{"lib", "compiler", "runtime"}
	got := s.Requirements("app")
	if len(got) != len(want) {
		t.Fatalf("Requirements(app) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Requirements(app) = %v, want %v", got, want)
		}
	}
}

func TestDependents(t *testing.T) {
	s := nonReflexiveFixture(t)

	deps := s.Dependents("John")
	sort.Strings(deps)
	if len(deps) != 2 || deps[0] != "Jack" || deps[1] != "Joe" {
		t.Errorf("Dependents(John) = %v, want [Jack Joe]", deps)
	}
	if got := s.Dependents("Kyle"); len(got) != 0 {
		t.Errorf("Dependents(Kyle) = %v, want empty", got)
	}
}

func TestRequires(t *testing.T) {
	s1 := nonReflexiveFixture(t)
	s2 := reflexiveFixture(t)

	if !s1.Requires("Kyle", "Jack") {
		t.Error("Requires should cover direct relations")
	}
	if !s1.Requires("Kyle", "John") {
		t.Error("Requires(Kyle, John) should hold through Jack")
	}
	if s1.Requires("Jack", "Joe") {
		t.Error("Requires(Jack, Joe) should not hold")
	}
	if s1.Requires("John", "Kyle") {
		t.Error("Requires must not walk the reverse direction")
	}

	if !s2.Requires("Harry", "Joe") || !s2.Requires("Joe", "Harry") {
		t.Error("Requires should hold both ways on the reflexive store")
	}
}

func TestRequiresTransitivity(t *testing.T) {
	s := prereq.New[string]()
	mustAdd(t, s, "a", "b")
	mustAdd(t, s, "b", "c")
	mustAdd(t, s, "c", "d")

	// Requires(a, d) must hold whenever Exists(a, b) and Requires(b, d).
	if !s.Exists("a", "b") || !s.Requires("b", "d") {
		t.Fatal("fixture broken")
	}
	if !s.Requires("a", "d") {
		t.Error("Requires is not transitive")
	}
}

func TestRequiresTerminatesOnLongReflexiveCycle(t *testing.T) {
	s := prereq.New[string](prereq.WithReflexive())
	mustAdd(t, s, "a", "b")
	mustAdd(t, s, "b", "c")
	mustAdd(t, s, "c", "a")

	if !s.Requires("a", "c") {
		t.Error("Requires(a, c) should hold through b")
	}
	if s.Requires("a", "x") {
		t.Error("Requires must return false for unreachable objects")
	}
}

func TestRequiresSharedDiamond(t *testing.T) {
	s := prereq.New[string]()
	mustAdd(t, s, "top", "left")
	mustAdd(t, s, "top", "right")
	mustAdd(t, s, "left", "bottom")
	mustAdd(t, s, "right", "bottom")

	if !s.Requires("top", "bottom") {
		t.Error("Requires should find bottom through either side")
	}
}
