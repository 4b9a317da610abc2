package criteria_test

import (
	"testing"

	"github.com/cottand/criteria"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Builds the predicate an engine would see for rules like
//
//	when isinstance(x, int) and y == 5
//	when isinstance(x, str)
//
// and checks the indexing layer can decompose it into flat cases.
func TestDispatchCaseDecomposition(t *testing.T) {
	h := criteria.NewHierarchy()
	h.Derive("int", "object")
	h.Derive("str", "object")

	firstRule := criteria.Intersect(
		criteria.NewTest("x", criteria.NewClass(h, "int", true)),
		criteria.NewTest("y", criteria.NewValue(5, true)),
	)
	secondRule := criteria.NewTest("x", criteria.NewClass(h, "str", true))
	predicate := criteria.NewDisjunction(firstRule, secondRule)

	cases := criteria.Disjuncts(predicate)
	require.Len(t, cases, 2)

	first := criteria.TestsFor(cases[0])
	require.Len(t, first, 2)
	assert.Equal(t, "x", first[0].Expr())
	assert.Equal(t, "y", first[1].Expr())

	second := criteria.TestsFor(cases[1])
	require.Len(t, second, 1)
	assert.Equal(t, "x", second[0].Expr())

	for _, dispatchCase := range cases {
		assert.True(t, criteria.Implies(dispatchCase, predicate))
	}

	// narrowing a rule's condition further keeps it within the original
	narrowed := criteria.Intersect(firstRule, criteria.NewTest("y", criteria.NewValue(5, true)))
	assert.True(t, criteria.Equal(narrowed, firstRule), "intersecting with an already-held test changes nothing")
}

func TestDeterministicConstruction(t *testing.T) {
	build := func() criteria.Predicate {
		return criteria.NewDisjunction(
			criteria.NewSignature(
				criteria.NewTest("x", criteria.NewValue(1, true)),
				criteria.NewTest("y", criteria.NewValue(2, false)),
			),
			criteria.NewTest("z", criteria.NewRange(
				criteria.Edge{Value: 10, Dir: -1},
				criteria.Edge{Value: 20, Dir: 1},
			)),
		)
	}
	assert.True(t, criteria.Equal(build(), build()), "identical inputs must hash identically")
	assert.Equal(t, build().String(), build().String())
}
