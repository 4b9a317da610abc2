package criteria

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueImplies(t *testing.T) {
	testCases := []struct {
		left, right Predicate
		expected    bool
	}{
		{NewValue(42, true), NewValue(42, true), true},
		{NewValue(42, true), NewValue(27, true), false},
		{NewValue(42, true), NewValue(27, false), true},
		{NewValue(42, true), NewValue(42, false), false},
		{NewValue(42, false), NewValue(42, false), true},
		{NewValue(42, false), NewValue(27, false), false},
		{NewValue(42, false), NewValue(42, true), false},
		{NewValue(42, true), RangeFrom(Edge{Value: 27, Dir: 1}), true},
		{NewValue(27, true), RangeFrom(Edge{Value: 27, Dir: 1}), false},
		{NewValue(42, false), NewRange(minEdge, maxEdge), true},
		{NewValue(42, false), RangeFrom(Edge{Value: 27, Dir: 1}), false},
	}
	for _, tc := range testCases {
		t.Run(tc.left.String()+"->"+tc.right.String(), func(t *testing.T) {
			assert.Equal(t, tc.expected, Implies(tc.left, tc.right))
		})
	}
}

func TestValueIntersect(t *testing.T) {
	assert.Equal(t, False, Intersect(NewValue(27, true), NewValue(42, true)))
	assert.Equal(t, False, Intersect(NewValue(27, true), NewValue(27, false)))
	assert.Equal(t, Predicate(NewValue(27, true)), Intersect(NewValue(27, true), NewValue(42, false)))
}

func TestTwoInequalitiesPartitionTheLine(t *testing.T) {
	expected := NewDisjunction(
		NewRange(minEdge, Edge{Value: 27, Dir: -1}),
		NewRange(Edge{Value: 27, Dir: 1}, Edge{Value: 42, Dir: -1}),
		NewRange(Edge{Value: 42, Dir: 1}, maxEdge),
	)

	got := Intersect(NewValue(27, false), NewValue(42, false))
	assert.Equal(t, expected, got)

	// the split is canonical regardless of operand order
	got = Intersect(NewValue(42, false), NewValue(27, false))
	assert.Equal(t, expected, got)
}

type point struct{ x, y int }

func TestUnorderedInequalitiesStaySymbolic(t *testing.T) {
	left := NewValue(point{1, 2}, false)
	right := NewValue(point{3, 4}, false)
	merged := Intersect(left, right)
	conj, ok := merged.(*Conjunction)
	if assert.True(t, ok, "expected a conjunction, got %T", merged) {
		assert.Equal(t, []Predicate{Predicate(left), Predicate(right)}, conj.Members())
	}
}

type scalar struct{ v int }

func (s scalar) Compare(other any) int { return cmp.Compare(s.v, other.(scalar).v) }

func TestOrderedTargetsPartitionTheLine(t *testing.T) {
	merged := Intersect(NewValue(scalar{27}, false), NewValue(scalar{42}, false))
	split, ok := merged.(*Disjunction)
	if assert.True(t, ok, "expected a disjunction, got %T", merged) {
		assert.Len(t, split.Members(), 3)
	}
}

func TestOrderedAgainstForeignTypeStaysSymbolic(t *testing.T) {
	left := NewValue(scalar{1}, false)
	right := NewValue("x", false)

	// Compare must never see an operand of another type
	merged := Intersect(left, right)
	conj, ok := merged.(*Conjunction)
	if assert.True(t, ok, "expected a conjunction, got %T", merged) {
		assert.Equal(t, []Predicate{Predicate(left), Predicate(right)}, conj.Members())
	}
}
