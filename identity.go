package criteria

import "fmt"

// IsObject is an identity criterion: the tested value must be (or, when
// negated, must not be) one particular reference. Targets are compared
// with ==, so they must be comparable.
type IsObject struct {
	target   any
	positive bool
}

func NewIsObject(target any, positive bool) IsObject {
	return IsObject{target: target, positive: positive}
}

// Target returns the reference this criterion matches against.
func (c IsObject) Target() any {
	return c.target
}

func (c IsObject) String() string {
	if c.positive {
		return fmt.Sprintf("≡%v", c.target)
	}
	return fmt.Sprintf("≢%v", c.target)
}

func (c IsObject) Hash() uint64 {
	return hashWords(kindIsObject, hashAny(c.target), hashBool(c.positive))
}

func (c IsObject) Implies(other Criterion) bool {
	o, ok := other.(IsObject)
	if !ok {
		return false
	}
	switch {
	case c.positive && o.positive:
		return c.target == o.target
	case c.positive:
		// being exactly x rules out being anything else
		return c.target != o.target
	case o.positive:
		// an exclusion never pins the value down
		return false
	default:
		return c.target == o.target
	}
}

func (c IsObject) Intersect(other Criterion) (Criterion, bool) {
	// container operands are handled by the container itself, which keeps
	// the left operand's exclusions first
	o, ok := other.(IsObject)
	if !ok {
		return nil, false
	}
	switch {
	case c.positive && o.positive:
		if c.target == o.target {
			return c, true
		}
		// two distinct exact identities can never both hold
		return False, true
	case c.positive != o.positive:
		if c.target == o.target {
			return False, true
		}
		if c.positive {
			return c, true
		}
		return o, true
	default:
		return newNotObjects([]Predicate{c, o}), true
	}
}

func (c IsObject) Disjuncts() []Criterion {
	return []Criterion{c}
}
