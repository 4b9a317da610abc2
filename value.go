package criteria

import "fmt"

// Value is an equality criterion: the tested value must equal (or, when
// negated, must differ from) one target. Ordered targets additionally
// convert to intervals, so inequalities can split the line into ranges.
type Value struct {
	target   any
	positive bool
}

func NewValue(target any, positive bool) Value {
	return Value{target: target, positive: positive}
}

// Target returns the value this criterion compares against.
func (c Value) Target() any {
	return c.target
}

func (c Value) String() string {
	if c.positive {
		return fmt.Sprintf("=%v", c.target)
	}
	return fmt.Sprintf("≠%v", c.target)
}

func (c Value) Hash() uint64 {
	return hashWords(kindValue, hashAny(c.target), hashBool(c.positive))
}

func (c Value) Implies(other Criterion) bool {
	switch o := other.(type) {
	case Value:
		switch {
		case c.positive && o.positive:
			return c.target == o.target
		case c.positive:
			// being equal to x settles every inequality against y ≠ x
			return c.target != o.target
		case o.positive:
			return false
		default:
			return c.target == o.target
		}
	case Range:
		if c.positive {
			return o.containsPoint(c.target)
		}
		// an inequality only implies an interval that covers everything
		return o.isTotal()
	}
	return false
}

func (c Value) Intersect(other Criterion) (Criterion, bool) {
	switch o := other.(type) {
	case Value:
		switch {
		case c.positive && o.positive:
			if c.target == o.target {
				return c, true
			}
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
			return splitAroundExclusions(c.target, o.target)
		}
	case Range:
		if c.positive {
			return o.intersectRange(pointRange(c.target))
		}
		return o.subtractPoint(c.target)
	}
	return nil, false
}

// splitAroundExclusions turns two distinct inequalities into the disjunction
// of the three intervals partitioning the line around both excluded points:
// below the lower, strictly between, above the higher. Unordered targets
// fall back to the generic conjunction wrap.
func splitAroundExclusions(a, b any) (Criterion, bool) {
	order, ok := compareValues(a, b)
	if !ok {
		return nil, false
	}
	lo, hi := a, b
	if order > 0 {
		lo, hi = b, a
	}
	return NewDisjunction(
		Range{lo: minEdge, hi: Edge{Value: lo, Dir: -1}},
		Range{lo: Edge{Value: lo, Dir: 1}, hi: Edge{Value: hi, Dir: -1}},
		Range{lo: Edge{Value: hi, Dir: 1}, hi: maxEdge},
	), true
}

func (c Value) Disjuncts() []Criterion {
	return []Criterion{c}
}
