package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooleanConstantRules(t *testing.T) {
	samples := []Predicate{
		True,
		False,
		NewValue(42, true),
		NewValue(42, false),
		NewIsObject("anchor", false),
		NewRange(Edge{Value: 19, Dir: 1}, Edge{Value: 27, Dir: -1}),
		NewTest("x", NewValue(1, true)),
	}

	for _, p := range samples {
		t.Run(p.String(), func(t *testing.T) {
			assert.True(t, Implies(p, True))
			assert.Equal(t, p == True, Implies(True, p))
			assert.True(t, Implies(False, p))
			assert.Equal(t, p == False, Implies(p, False))

			assert.Equal(t, False, Intersect(False, p))
			assert.Equal(t, False, Intersect(p, False))
			assert.Equal(t, p, Intersect(True, p))
			assert.Equal(t, p, Intersect(p, True))
		})
	}
	assert.Equal(t, True, Intersect(True, True))
}

func TestDisjunctsContract(t *testing.T) {
	assert.Empty(t, Disjuncts(False))
	assert.Equal(t, []Predicate{True}, Disjuncts(True))

	d := NewDisjunction(
		NewTest("x", NewValue(1, true)),
		NewTest("x", NewValue(2, true)),
		NewTest("y", NewValue(3, true)),
	)
	alternatives := Disjuncts(d)
	assert.Len(t, alternatives, 3)
	for _, alt := range alternatives {
		assert.True(t, Implies(alt, d), "disjunct %s must imply %s", alt, d)
		_, nested := alt.(*Disjunction)
		assert.False(t, nested, "disjunct %s must not be a disjunction", alt)
	}

	// a non-disjunctive predicate is its own sole disjunct
	v := NewValue(42, true)
	assert.Equal(t, []Predicate{Predicate(v)}, Disjuncts(v))
}

func TestTestsFor(t *testing.T) {
	assert.Empty(t, TestsFor(True))

	single := NewTest("x", NewValue(1, true))
	assert.Equal(t, []Test{single.(Test)}, TestsFor(single))

	sig := NewSignature(
		NewTest("x", NewValue(1, true)),
		NewTest("y", NewValue(2, true)),
	)
	tests := TestsFor(sig)
	assert.Len(t, tests, 2)
	assert.Equal(t, "x", tests[0].Expr())
	assert.Equal(t, "y", tests[1].Expr())

	assert.Panics(t, func() { TestsFor(False) })
	assert.Panics(t, func() { TestsFor(NewDisjunction(single, NewTest("y", NewValue(2, true)))) })
}

func TestGenericIntersectFallsBackToConjunction(t *testing.T) {
	// no rule relates an identity criterion to a value criterion
	left := NewIsObject("anchor", false)
	right := NewValue(42, false)
	merged := Intersect(left, right)
	conj, ok := merged.(*Conjunction)
	if assert.True(t, ok, "expected a conjunction, got %T", merged) {
		assert.Equal(t, []Predicate{Predicate(left), Predicate(right)}, conj.Members())
	}
}
