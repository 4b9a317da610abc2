package criteria

import (
	"slices"

	"github.com/cottand/criteria/util"
	"github.com/pkg/errors"
)

// junctionBase carries the ordered members shared by every container kind.
type junctionBase struct {
	members []Predicate
}

func (j junctionBase) conjuncts() []Predicate {
	return j.members
}

// Members lists the container's elements in construction order.
func (j junctionBase) Members() []Predicate {
	return slices.Clone(j.members)
}

// conjunctionOf drops every element implied by another (more specific)
// element, keeping first-seen order, then collapses degenerate results:
// no survivors means True, a sole survivor stands for itself.
func conjunctionOf(input []Predicate, wrap func([]Predicate) Predicate) Predicate {
	var out []Predicate
	for _, item := range input {
		redundant := false
		for _, old := range out {
			if Implies(old, item) {
				redundant = true
				break
			}
		}
		if redundant {
			continue
		}
		kept := out[:0]
		for _, old := range out {
			if !Implies(item, old) {
				kept = append(kept, old)
			}
		}
		out = append(kept, item)
	}
	switch len(out) {
	case 0:
		return True
	case 1:
		return out[0]
	}
	return wrap(out)
}

// Conjunction is an "and" of criteria over the same dispatch expression.
// It never holds an element implied by another element, is never empty, and
// never has fewer than two members; NewConjunction enforces all three.
type Conjunction struct {
	junctionBase
}

// NewConjunction returns the conjunction of members, which may collapse to
// True, a single member, or False (when a member is False).
func NewConjunction(members ...Predicate) Predicate {
	return conjunctionOf(members, func(kept []Predicate) Predicate {
		return &Conjunction{junctionBase{kept}}
	})
}

func (c *Conjunction) String() string {
	return "(" + util.JoinString(c.members, "∧") + ")"
}

func (c *Conjunction) Hash() uint64 {
	return hashWords(kindConjunction, util.MapSlice(c.members, Predicate.Hash)...)
}

func (c *Conjunction) Implies(other Criterion) bool {
	for _, m := range c.members {
		if Implies(m, other) {
			return true
		}
	}
	return false
}

func (c *Conjunction) Intersect(other Criterion) (Criterion, bool) {
	return nil, false
}

func (c *Conjunction) Disjuncts() []Criterion {
	return []Criterion{c}
}

func (c *Conjunction) intersectAppend(x Predicate) Predicate {
	if xc, ok := x.(*Conjunction); ok {
		return NewConjunction(slices.Concat(c.members, xc.members)...)
	}
	return NewConjunction(append(slices.Clone(c.members), x)...)
}

func (c *Conjunction) intersectPrepend(x Predicate) Predicate {
	return NewConjunction(append([]Predicate{x}, c.members...)...)
}

// Disjunction is an "or" of alternatives. Construction flattens nested
// disjunctions, drops every alternative that implies another (more general)
// alternative, and collapses degenerate results: no survivors means False,
// a sole survivor stands for itself.
type Disjunction struct {
	junctionBase
}

// NewDisjunction returns the disjunction of members. Members are flattened
// through their own Disjuncts first, so the result never nests.
func NewDisjunction(members ...Predicate) Predicate {
	var flat []Predicate
	for _, m := range members {
		flat = append(flat, m.Disjuncts()...)
	}
	var out []Predicate
	for _, item := range flat {
		covered := false
		for _, old := range out {
			if Implies(item, old) {
				covered = true
				break
			}
		}
		if covered {
			continue
		}
		kept := out[:0]
		for _, old := range out {
			if !Implies(old, item) {
				kept = append(kept, old)
			}
		}
		out = append(kept, item)
	}
	switch len(out) {
	case 0:
		return False
	case 1:
		return out[0]
	}
	return &Disjunction{junctionBase{out}}
}

func (d *Disjunction) String() string {
	return "(" + util.JoinString(d.members, "∨") + ")"
}

func (d *Disjunction) Hash() uint64 {
	return hashWords(kindDisjunction, util.MapSlice(d.members, Predicate.Hash)...)
}

func (d *Disjunction) Implies(other Criterion) bool {
	for _, m := range d.members {
		if !Implies(m, other) {
			return false
		}
	}
	return true
}

func (d *Disjunction) Intersect(other Criterion) (Criterion, bool) {
	return distribute(d.members, other, false), true
}

func (d *Disjunction) Disjuncts() []Criterion {
	return slices.Clone(d.members)
}

// NotObjects is the Conjunction specialization holding only negated
// identity criteria: "none of these objects".
type NotObjects struct {
	junctionBase
}

// NewNotObjects validates that every member is a negated IsObject and
// returns their conjunction, which may collapse like any conjunction.
func NewNotObjects(members ...Predicate) (Predicate, error) {
	for _, m := range members {
		io, ok := m.(IsObject)
		if !ok || io.positive {
			return nil, errors.Errorf("criteria: NotObjects element %s is not a negated identity", m)
		}
	}
	return newNotObjects(members), nil
}

// newNotObjects skips validation; callers pass negated identities only.
func newNotObjects(members []Predicate) Predicate {
	return conjunctionOf(members, func(kept []Predicate) Predicate {
		return &NotObjects{junctionBase{kept}}
	})
}

func (n *NotObjects) String() string {
	return "(" + util.JoinString(n.members, "∧") + ")"
}

func (n *NotObjects) Hash() uint64 {
	return hashWords(kindConjunction, util.MapSlice(n.members, Predicate.Hash)...)
}

func (n *NotObjects) Implies(other Criterion) bool {
	for _, m := range n.members {
		if Implies(m, other) {
			return true
		}
	}
	return false
}

func (n *NotObjects) Intersect(other Criterion) (Criterion, bool) {
	exact, ok := other.(IsObject)
	if !ok || !exact.positive {
		return nil, false
	}
	if n.excludes(exact.target) {
		return False, true
	}
	// the exact match already implies every exclusion here
	return exact, true
}

func (n *NotObjects) excludes(target any) bool {
	for _, m := range n.members {
		if io, ok := m.(IsObject); ok && io.target == target {
			return true
		}
	}
	return false
}

func (n *NotObjects) Disjuncts() []Criterion {
	return []Criterion{n}
}

func (n *NotObjects) intersectAppend(x Predicate) Predicate {
	switch x := x.(type) {
	case *NotObjects:
		return newNotObjects(slices.Concat(n.members, x.members))
	case IsObject:
		if !x.positive {
			return newNotObjects(append(slices.Clone(n.members), Predicate(x)))
		}
	}
	return NewConjunction(append(slices.Clone(n.members), x)...)
}

func (n *NotObjects) intersectPrepend(x Predicate) Predicate {
	if io, ok := x.(IsObject); ok && !io.positive {
		return newNotObjects(append([]Predicate{x}, n.members...))
	}
	return NewConjunction(append([]Predicate{x}, n.members...)...)
}

// Classes is the Conjunction specialization holding only Class criteria.
type Classes struct {
	junctionBase
}

// NewClasses validates that every member is a Class criterion and returns
// their conjunction.
func NewClasses(members ...Predicate) (Predicate, error) {
	for _, m := range members {
		if _, ok := m.(Class); !ok {
			return nil, errors.Errorf("criteria: Classes element %s is not a class criterion", m)
		}
	}
	return newClasses(members), nil
}

func newClasses(members []Predicate) Predicate {
	return conjunctionOf(members, func(kept []Predicate) Predicate {
		return &Classes{junctionBase{kept}}
	})
}

func (c *Classes) String() string {
	return "(" + util.JoinString(c.members, "∧") + ")"
}

func (c *Classes) Hash() uint64 {
	return hashWords(kindConjunction, util.MapSlice(c.members, Predicate.Hash)...)
}

func (c *Classes) Implies(other Criterion) bool {
	for _, m := range c.members {
		if Implies(m, other) {
			return true
		}
	}
	return false
}

func (c *Classes) Intersect(other Criterion) (Criterion, bool) {
	return nil, false
}

func (c *Classes) Disjuncts() []Criterion {
	return []Criterion{c}
}

func (c *Classes) intersectAppend(x Predicate) Predicate {
	switch x := x.(type) {
	case *Classes:
		return newClasses(slices.Concat(c.members, x.members))
	case Class:
		return newClasses(append(slices.Clone(c.members), Predicate(x)))
	}
	return NewConjunction(append(slices.Clone(c.members), x)...)
}

func (c *Classes) intersectPrepend(x Predicate) Predicate {
	if _, ok := x.(Class); ok {
		return newClasses(append([]Predicate{x}, c.members...))
	}
	return NewConjunction(append([]Predicate{x}, c.members...)...)
}

var (
	_ conjunction = (*Conjunction)(nil)
	_ conjunction = (*NotObjects)(nil)
	_ conjunction = (*Classes)(nil)
)
