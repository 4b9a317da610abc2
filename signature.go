package criteria

import (
	"fmt"
	"slices"

	"github.com/benbjohnson/immutable"
	"github.com/cottand/criteria/util"
)

// Test anchors a criterion to the dispatch expression whose value it
// examines. The expression is an opaque comparable token; the algebra only
// ever compares and hashes it.
type Test struct {
	expr      any
	criterion Criterion
}

// NewTest pairs a dispatch expression with a criterion. A constant
// criterion needs no anchoring, so it collapses to the constant itself:
// a test that always passes is True, one that can never pass is False.
func NewTest(expr any, criterion Criterion) Predicate {
	if criterion == True {
		return True
	}
	if criterion == False {
		return False
	}
	return Test{expr: expr, criterion: criterion}
}

// Expr returns the dispatch expression this test examines.
func (t Test) Expr() any {
	return t.expr
}

// Criterion returns the condition applied to the expression's value.
func (t Test) Criterion() Criterion {
	return t.criterion
}

func (t Test) String() string {
	return fmt.Sprintf("%v:%s", t.expr, t.criterion)
}

func (t Test) Hash() uint64 {
	return hashWords(kindTest, hashAny(t.expr), t.criterion.Hash())
}

func (t Test) Implies(other Criterion) bool {
	o, ok := other.(Test)
	return ok && t.expr == o.expr && Implies(t.criterion, o.criterion)
}

func (t Test) Intersect(other Criterion) (Criterion, bool) {
	switch o := other.(type) {
	case Test:
		if t.expr == o.expr {
			return NewTest(t.expr, Intersect(t.criterion, o.criterion)), true
		}
		return newSignature([]Test{t, o}), true
	case *Signature:
		return newSignature(append([]Test{t}, o.tests...)), true
	}
	return nil, false
}

func (t Test) Disjuncts() []Criterion {
	alternatives := Disjuncts(t.criterion)
	if len(alternatives) == 1 {
		return []Criterion{t}
	}
	return util.MapSlice(alternatives, func(alt Criterion) Criterion {
		return NewTest(t.expr, alt)
	})
}

// exprHasher buckets opaque dispatch expressions for the slot index.
type exprHasher struct{}

func (exprHasher) Hash(key any) uint32 { return uint32(hashAny(key)) }
func (exprHasher) Equal(a, b any) bool { return a == b }

// Signature is an ordered "and" of tests over pairwise distinct dispatch
// expressions. Construction merges duplicate expressions in place and
// eagerly expands any disjunctive component, so a constructed signature
// always has at least two tests and none of them carries a Disjunction.
type Signature struct {
	tests []Test
	// byExpr maps each expression to its slot in tests. The map is
	// persistent so signatures derived during folding share it.
	byExpr *immutable.Map[any, int]
}

// NewSignature folds tests left to right: a test on a new expression
// appends, a test on a seen expression merges into the existing slot via
// intersection without moving it. The result collapses to True (no tests),
// the sole test, False (some slot became unsatisfiable), or a Disjunction
// of signatures (some slot held alternatives, see Disjuncts).
//
// Components must be tests, signatures (contributing their components), or
// constants; anything else is a contract violation and panics.
func NewSignature(tests ...Predicate) Predicate {
	var input []Test
	for _, component := range tests {
		switch component := component.(type) {
		case constant:
			if !bool(component) {
				return False
			}
			// True constrains nothing
		case Test:
			input = append(input, component)
		case *Signature:
			input = append(input, component.tests...)
		default:
			panic(fmt.Sprintf("criteria: %T cannot be a signature component", component))
		}
	}
	return newSignature(input)
}

func newSignature(input []Test) Predicate {
	var folded []Test
	index := immutable.NewMap[any, int](exprHasher{})
	for _, t := range input {
		pos, seen := index.Get(t.expr)
		if !seen {
			index = index.Set(t.expr, len(folded))
			folded = append(folded, t)
			continue
		}
		merged := Intersect(folded[pos].criterion, t.criterion)
		if merged == False {
			return False
		}
		folded[pos] = Test{expr: folded[pos].expr, criterion: merged}
	}
	switch len(folded) {
	case 0:
		return True
	case 1:
		return folded[0]
	}
	// restore the DNF invariant: distribute the leftmost disjunctive
	// slot's alternatives, one expression at a time; recursion takes care
	// of any further disjunctive slots, so the cross product builds up
	// with the outer test's alternatives outermost
	for i, t := range folded {
		d, disjunctive := t.criterion.(*Disjunction)
		if !disjunctive {
			continue
		}
		alternatives := make([]Predicate, 0, len(d.members))
		for _, alt := range d.members {
			replaced := slices.Clone(folded)
			replaced[i] = Test{expr: t.expr, criterion: alt}
			alternatives = append(alternatives, newSignature(replaced))
		}
		return NewDisjunction(alternatives...)
	}
	return &Signature{tests: folded, byExpr: index}
}

// Tests returns the component tests in order.
func (s *Signature) Tests() []Test {
	return slices.Clone(s.tests)
}

func (s *Signature) String() string {
	return util.JoinString(s.tests, "∧")
}

func (s *Signature) Hash() uint64 {
	return hashWords(kindSignature, util.MapSlice(s.tests, Test.Hash)...)
}

func (s *Signature) conjuncts() []Predicate {
	return util.MapSlice(s.tests, func(t Test) Predicate { return t })
}

func (s *Signature) Implies(other Criterion) bool {
	for _, t := range s.tests {
		if Implies(t, other) {
			return true
		}
	}
	return false
}

func (s *Signature) Intersect(other Criterion) (Criterion, bool) {
	switch o := other.(type) {
	case Test:
		return newSignature(append(slices.Clone(s.tests), o)), true
	case *Signature:
		return newSignature(slices.Concat(s.tests, o.tests)), true
	}
	return nil, false
}

func (s *Signature) Disjuncts() []Criterion {
	return []Criterion{s}
}

var _ conjunctive = (*Signature)(nil)
