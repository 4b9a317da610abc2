package criteria

import (
	"sort"

	"github.com/hashicorp/go-set/v3"
	xset "github.com/xtgo/set"
)

// Hierarchy is a TypeRelation backed by explicitly declared parent edges.
// The algebra itself never inspects a type system; embedders that do not
// have one of their own can declare edges here and hand the hierarchy to
// NewClass. The zero number of declared edges still gives a reflexive
// relation.
//
// Derive is not safe for concurrent use with IsSubtype; declare the
// hierarchy up front and treat it as read-only afterwards.
type Hierarchy struct {
	parents map[any]*set.Set[any]
}

func NewHierarchy() *Hierarchy {
	return &Hierarchy{parents: make(map[any]*set.Set[any])}
}

// Derive declares child to be a direct subtype of each parent.
func (h *Hierarchy) Derive(child any, parents ...any) {
	ps := h.parents[child]
	if ps == nil {
		ps = set.New[any](len(parents))
		h.parents[child] = ps
	}
	for _, p := range parents {
		ps.Insert(p)
	}
}

// IsSubtype reports whether a is b or transitively derives from it.
func (h *Hierarchy) IsSubtype(a, b any) bool {
	if a == b {
		return true
	}
	seen := set.New[any](8)
	frontier := []any{a}
	for len(frontier) > 0 {
		t := frontier[0]
		frontier = frontier[1:]
		ps := h.parents[t]
		if ps == nil {
			continue
		}
		for p := range ps.Items() {
			if p == b {
				return true
			}
			if seen.Insert(p) {
				frontier = append(frontier, p)
			}
		}
	}
	return false
}

// Ancestors lists every proper supertype of t in a canonical order
// (sorted by hash), so equal hierarchies enumerate equally.
func (h *Hierarchy) Ancestors(t any) []any {
	var out []any
	seen := set.New[any](8)
	frontier := []any{t}
	for len(frontier) > 0 {
		next := frontier[0]
		frontier = frontier[1:]
		ps := h.parents[next]
		if ps == nil {
			continue
		}
		for p := range ps.Items() {
			// record every edge target; diamonds produce duplicates
			// that the sort-and-dedup below removes
			out = append(out, p)
			if seen.Insert(p) {
				frontier = append(frontier, p)
			}
		}
	}
	sorted := byHash(out)
	sort.Sort(sorted)
	return sorted[:xset.Uniq(sorted)]
}

type byHash []any

func (s byHash) Len() int           { return len(s) }
func (s byHash) Less(i, j int) bool { return hashAny(s[i]) < hashAny(s[j]) }
func (s byHash) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

var _ TypeRelation = (*Hierarchy)(nil)
