package criteria

import (
	"cmp"
	"fmt"
	"reflect"
)

// sentinel bounds compare below (Min) or above (Max) every ordinary value.
type sentinel int

const (
	Min sentinel = -1
	Max sentinel = 1
)

func (s sentinel) String() string {
	if s == Min {
		return "-∞"
	}
	return "∞"
}

// Ordered lets user-defined targets participate in range criteria. Compare
// is only invoked between values of the same dynamic type; targets of
// mixed types count as unordered and degrade to the generic defaults.
type Ordered interface {
	Compare(other any) int
}

// compareValues orders two plain (non-sentinel) targets. ok is false when
// the values are not mutually ordered, in which case interval rules do not
// apply and callers degrade to the generic defaults.
func compareValues(a, b any) (_ int, ok bool) {
	switch av := a.(type) {
	case int:
		if bv, isInt := b.(int); isInt {
			return cmp.Compare(av, bv), true
		}
	case int64:
		if bv, is := b.(int64); is {
			return cmp.Compare(av, bv), true
		}
	case uint64:
		if bv, is := b.(uint64); is {
			return cmp.Compare(av, bv), true
		}
	case float64:
		if bv, is := b.(float64); is {
			return cmp.Compare(av, bv), true
		}
	case string:
		if bv, is := b.(string); is {
			return cmp.Compare(av, bv), true
		}
	case Ordered:
		if reflect.TypeOf(a) == reflect.TypeOf(b) {
			return av.Compare(b), true
		}
	}
	return 0, false
}

// Edge is one boundary of an interval: a bound value plus the side of that
// value the cut sits on. Dir -1 cuts just below Value, +1 just above, which
// disambiguates inclusive from exclusive boundaries.
type Edge struct {
	Value any
	Dir   int
}

var (
	minEdge = Edge{Value: Min, Dir: -1}
	maxEdge = Edge{Value: Max, Dir: 1}
)

func (e Edge) String() string {
	return fmt.Sprintf("(%v,%+d)", e.Value, e.Dir)
}

// compareEdges orders two interval cuts. Sentinels sort outside every plain
// value; equal bound values are ordered by direction.
func compareEdges(a, b Edge) (_ int, ok bool) {
	as, aIsSentinel := a.Value.(sentinel)
	bs, bIsSentinel := b.Value.(sentinel)
	switch {
	case aIsSentinel && bIsSentinel:
		if as != bs {
			return cmp.Compare(as, bs), true
		}
		return cmp.Compare(a.Dir, b.Dir), true
	case aIsSentinel:
		return int(as), true
	case bIsSentinel:
		return -int(bs), true
	}
	c, ok := compareValues(a.Value, b.Value)
	if !ok {
		return 0, false
	}
	if c != 0 {
		return c, true
	}
	return cmp.Compare(a.Dir, b.Dir), true
}

func minEdgeOf(a, b Edge) (Edge, bool) {
	c, ok := compareEdges(a, b)
	if !ok {
		return Edge{}, false
	}
	if c <= 0 {
		return a, true
	}
	return b, true
}

func maxEdgeOf(a, b Edge) (Edge, bool) {
	c, ok := compareEdges(a, b)
	if !ok {
		return Edge{}, false
	}
	if c >= 0 {
		return a, true
	}
	return b, true
}

// Range is an interval criterion between two cuts. Intervals produced by
// the algebra are never empty: intersection collapses a degenerate interval
// to a Value and a vanished one to False.
type Range struct {
	lo, hi Edge
}

func NewRange(lo, hi Edge) Range {
	return Range{lo: lo, hi: hi}
}

// RangeFrom is the interval unbounded above.
func RangeFrom(lo Edge) Range {
	return Range{lo: lo, hi: maxEdge}
}

// RangeTo is the interval unbounded below.
func RangeTo(hi Edge) Range {
	return Range{lo: minEdge, hi: hi}
}

// pointRange is the degenerate interval holding exactly v.
func pointRange(v any) Range {
	return Range{lo: Edge{Value: v, Dir: -1}, hi: Edge{Value: v, Dir: 1}}
}

// intervalOf normalizes a pair of cuts into a predicate: False when the
// interval is empty, a Value when it pins a single point, a Range otherwise.
func intervalOf(lo, hi Edge) (Predicate, bool) {
	c, ok := compareEdges(lo, hi)
	if !ok {
		return nil, false
	}
	if c >= 0 {
		return False, true
	}
	_, loIsSentinel := lo.Value.(sentinel)
	_, hiIsSentinel := hi.Value.(sentinel)
	if !loIsSentinel && !hiIsSentinel {
		if vc, vok := compareValues(lo.Value, hi.Value); vok && vc == 0 {
			return NewValue(lo.Value, true), true
		}
	}
	return Range{lo: lo, hi: hi}, true
}

func (r Range) String() string {
	opening, closing := "[", "]"
	if r.lo.Dir > 0 {
		opening = "("
	}
	if r.hi.Dir < 0 {
		closing = ")"
	}
	return fmt.Sprintf("%s%v‥%v%s", opening, r.lo.Value, r.hi.Value, closing)
}

func (r Range) Hash() uint64 {
	return hashWords(kindRange,
		hashAny(r.lo.Value), uint64(int64(r.lo.Dir)),
		hashAny(r.hi.Value), uint64(int64(r.hi.Dir)),
	)
}

// isTotal reports whether the interval covers every value.
func (r Range) isTotal() bool {
	return r.lo.Value == Min && r.hi.Value == Max
}

// containsPoint reports whether the interval includes the single value v.
func (r Range) containsPoint(v any) bool {
	loC, ok := compareEdges(r.lo, Edge{Value: v, Dir: -1})
	if !ok {
		return false
	}
	hiC, ok := compareEdges(Edge{Value: v, Dir: 1}, r.hi)
	if !ok {
		return false
	}
	return loC <= 0 && hiC <= 0
}

func (r Range) Implies(other Criterion) bool {
	switch o := other.(type) {
	case Range:
		// containment; an edge at the same bound but opposite direction
		// is stricter, which the cut comparison accounts for
		loC, ok := compareEdges(o.lo, r.lo)
		if !ok {
			return false
		}
		hiC, ok := compareEdges(r.hi, o.hi)
		if !ok {
			return false
		}
		return loC <= 0 && hiC <= 0
	case Value:
		if o.positive {
			return r.Implies(pointRange(o.target))
		}
		// the interval must sit entirely on one side of the excluded point
		belowC, okBelow := compareEdges(r.hi, Edge{Value: o.target, Dir: -1})
		aboveC, okAbove := compareEdges(Edge{Value: o.target, Dir: 1}, r.lo)
		return okBelow && belowC <= 0 || okAbove && aboveC <= 0
	}
	return false
}

func (r Range) Intersect(other Criterion) (Criterion, bool) {
	switch o := other.(type) {
	case Range:
		return r.intersectRange(o)
	case Value:
		if o.positive {
			return r.intersectRange(pointRange(o.target))
		}
		return r.subtractPoint(o.target)
	}
	return nil, false
}

func (r Range) intersectRange(o Range) (Criterion, bool) {
	lo, ok := maxEdgeOf(r.lo, o.lo)
	if !ok {
		return nil, false
	}
	hi, ok := minEdgeOf(r.hi, o.hi)
	if !ok {
		return nil, false
	}
	return intervalOf(lo, hi)
}

// subtractPoint removes a single excluded value from the interval, splitting
// it in two when the point falls strictly inside.
func (r Range) subtractPoint(v any) (Criterion, bool) {
	belowHi, ok := minEdgeOf(r.hi, Edge{Value: v, Dir: -1})
	if !ok {
		return nil, false
	}
	aboveLo, ok := maxEdgeOf(r.lo, Edge{Value: v, Dir: 1})
	if !ok {
		return nil, false
	}
	below, ok := intervalOf(r.lo, belowHi)
	if !ok {
		return nil, false
	}
	above, ok := intervalOf(aboveLo, r.hi)
	if !ok {
		return nil, false
	}
	return NewDisjunction(below, above), true
}

func (r Range) Disjuncts() []Criterion {
	return []Criterion{r}
}
