// Package criteria implements the logical-criteria algebra behind a
// predicate-dispatch engine: it decides when one condition implies another,
// merges conditions into their intersection, and rewrites arbitrary nested
// conditions into disjunctive normal form so an indexing layer can build
// decision structures from independent alternative cases.
package criteria

import (
	"fmt"

	"github.com/cottand/criteria/internal/log"
)

var logger = log.DefaultLogger.With("section", "criteria")

// Criterion is the operator contract every criterion kind implements.
//
// The methods carry only the rules a kind knows about its own operands;
// the package-level Implies, Intersect and Disjuncts functions are the entry
// points, and layer the boolean-constant, implying-operand-wins and container
// rules on top before delegating here. New criterion kinds only need these
// three methods; a kind with no specific rule for some operand returns false
// from Implies and ok=false from Intersect, and the generic defaults apply.
type Criterion interface {
	fmt.Stringer

	// Hash is the value identity of the criterion; structurally equal
	// criteria built in the same order hash the same.
	Hash() uint64

	// Implies reports whether other always holds when the receiver holds.
	Implies(other Criterion) bool

	// Intersect returns a condition holding exactly when both the receiver
	// and other hold, or ok=false when the receiver has no specific rule
	// for other's kind.
	Intersect(other Criterion) (_ Criterion, ok bool)

	// Disjuncts lists the maximal set of conditions that each imply the
	// receiver and whose disjunction reconstructs it. Non-disjunctive kinds
	// return just themselves.
	Disjuncts() []Criterion
}

// Predicate is a condition that may or may not hold for given runtime
// values: one of True, False, a Test, a Signature, or a Disjunction of
// tests and signatures. Predicates and criteria share the operator
// contract, so the same algebra applies at both levels.
type Predicate = Criterion

// conjunctive is satisfied by every kind that behaves as an "and" of
// members: Conjunction, its specializations, and Signature.
type conjunctive interface {
	conjuncts() []Predicate
}

// conjunction is a conjunctive container that can absorb further elements.
type conjunction interface {
	conjunctive
	// intersectAppend intersects the container with x, the container's
	// members coming first.
	intersectAppend(x Predicate) Predicate
	// intersectPrepend intersects x with the container, x coming first.
	intersectPrepend(x Predicate) Predicate
}

type constant bool

// The two boolean constants. True holds for every value, False for none.
var (
	True  Predicate = constant(true)
	False Predicate = constant(false)
)

func (c constant) String() string {
	if c {
		return "⊤"
	}
	return "⊥"
}

func (c constant) Hash() uint64 {
	if c {
		return hashWords(kindTrue)
	}
	return hashWords(kindFalse)
}

func (c constant) Implies(other Criterion) bool {
	if !c {
		// nothing satisfies False, so it implies anything
		return true
	}
	return other == True
}

func (c constant) Intersect(other Criterion) (Criterion, bool) {
	if !c {
		return False, true
	}
	return other, true
}

func (c constant) Disjuncts() []Criterion {
	if !c {
		// no condition can ever imply False, so it contributes no cases
		return nil
	}
	return []Criterion{True}
}

// Implies reports whether b always holds when a holds.
func Implies(a, b Predicate) bool {
	if b == True {
		return true
	}
	if a == True {
		return false
	}
	if a == False {
		return true
	}
	if b == False {
		return false
	}
	if Equal(a, b) {
		return true
	}
	if d, ok := a.(*Disjunction); ok {
		// every alternative of a must imply b on its own
		for _, m := range d.members {
			if !Implies(m, b) {
				return false
			}
		}
		return true
	}
	if d, ok := b.(*Disjunction); ok {
		for _, m := range d.members {
			if Implies(a, m) {
				return true
			}
		}
		return false
	}
	// the all-members rule for a conjunctive b must run before the
	// any-member rule for a conjunctive a, or subset implication between
	// two conjunctions comes out wrong
	if c, ok := b.(conjunctive); ok {
		for _, m := range c.conjuncts() {
			if !Implies(a, m) {
				return false
			}
		}
		return true
	}
	if c, ok := a.(conjunctive); ok {
		for _, m := range c.conjuncts() {
			if Implies(m, b) {
				return true
			}
		}
		return false
	}
	return a.Implies(b)
}

// Intersect returns the condition that holds exactly when both a and b hold.
// The result preserves operand order: surviving parts of a come before
// surviving parts of b.
func Intersect(a, b Predicate) Predicate {
	if a == False || b == False {
		return False
	}
	if a == True {
		return b
	}
	if b == True {
		return a
	}
	// the implying (more specific) operand wins outright
	if Implies(a, b) {
		return a
	}
	if Implies(b, a) {
		return b
	}
	if d, ok := a.(*Disjunction); ok {
		return distribute(d.members, b, false)
	}
	if d, ok := b.(*Disjunction); ok {
		return distribute(d.members, a, true)
	}
	if merged, ok := a.Intersect(b); ok {
		return merged
	}
	if merged, ok := b.Intersect(a); ok {
		return merged
	}
	if c, ok := a.(conjunction); ok {
		return c.intersectAppend(b)
	}
	if c, ok := b.(conjunction); ok {
		return c.intersectPrepend(a)
	}
	logger.Debug(fmt.Sprintf("no intersection rule for %T & %T, wrapping in a conjunction", a, b))
	return NewConjunction(a, b)
}

// distribute crosses a disjunction's members with the other operand, keeping
// the disjunction's order. When both operands are disjunctions the left one
// ends up as the outer loop, so cross terms come out in row-major order.
func distribute(members []Predicate, other Predicate, swapped bool) Predicate {
	terms := make([]Predicate, 0, len(members))
	for _, m := range members {
		if swapped {
			terms = append(terms, Intersect(other, m))
		} else {
			terms = append(terms, Intersect(m, other))
		}
	}
	return NewDisjunction(terms...)
}

// Disjuncts enumerates the independent alternative cases of a predicate.
// Each case is True, a Test, or a Signature, never a Disjunction; False
// yields no cases at all.
func Disjuncts(p Predicate) []Predicate {
	return p.Disjuncts()
}

// TestsFor flattens a single dispatch case into its component tests:
// nothing for True, the test itself for a Test, the components in order for
// a Signature.
//
// Calling it on False or on a predicate that is not a case produced by
// Disjuncts is a contract violation and panics.
func TestsFor(dispatchCase Predicate) []Test {
	switch c := dispatchCase.(type) {
	case constant:
		if bool(c) {
			return nil
		}
		panic("criteria: TestsFor called on False")
	case Test:
		return []Test{c}
	case *Signature:
		return c.Tests()
	default:
		panic(fmt.Sprintf("criteria: %T is not a dispatch case", dispatchCase))
	}
}
