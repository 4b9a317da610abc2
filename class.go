package criteria

import "fmt"

// TypeRelation is the externally supplied subtype oracle Class criteria
// delegate to. It must be total and consistent (reflexive, transitive);
// the algebra does not re-verify this.
type TypeRelation interface {
	IsSubtype(a, b any) bool
}

// Class is a subtype-membership criterion: the tested value must be (or,
// when negated, must not be) an instance of one type. What "type" means is
// entirely up to the relation; the algebra treats it as an opaque token.
type Class struct {
	typ      any
	positive bool
	rel      TypeRelation
}

func NewClass(rel TypeRelation, typ any, positive bool) Class {
	return Class{typ: typ, positive: positive, rel: rel}
}

// Type returns the type token this criterion tests membership of.
func (c Class) Type() any {
	return c.typ
}

func (c Class) String() string {
	if c.positive {
		return fmt.Sprintf("∈%v", c.typ)
	}
	return fmt.Sprintf("∉%v", c.typ)
}

func (c Class) Hash() uint64 {
	return hashWords(kindClass, hashAny(c.typ), hashBool(c.positive))
}

func (c Class) Implies(other Criterion) bool {
	o, ok := other.(Class)
	if !ok {
		return false
	}
	switch {
	case c.positive && o.positive:
		return c.rel.IsSubtype(c.typ, o.typ)
	case !c.positive && !o.positive:
		// contraposition: excluding a supertype excludes every subtype
		return c.rel.IsSubtype(o.typ, c.typ)
	default:
		// no attempt is made to prove two classes mutually exclusive
		return false
	}
}

func (c Class) Intersect(other Criterion) (Criterion, bool) {
	o, ok := other.(Class)
	if !ok {
		return nil, false
	}
	// only reached when neither side implies the other; the combination
	// stays symbolic rather than being proven empty
	return newClasses([]Predicate{c, o}), true
}

func (c Class) Disjuncts() []Criterion {
	return []Criterion{c}
}
