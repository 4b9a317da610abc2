package criteria

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"github.com/hashicorp/go-set/v3"
)

// kind seeds keep structurally similar criteria of different kinds apart
const (
	kindTrue uint64 = iota + 1
	kindFalse
	kindIsObject
	kindValue
	kindRange
	kindClass
	kindConjunction
	kindDisjunction
	kindTest
	kindSignature
)

// Equal can be used to compare predicates for structural equality.
// Each kind hashes its own fields, so two values are equal exactly when
// they were built from equal parts in the same order. Hashes are stable
// within one process only; pointer-typed targets hash by identity, so do
// not persist them across runs.
func Equal[H, HH set.Hasher[uint64]](this H, other HH) bool {
	return this.Hash() == other.Hash()
}

func hashWords(kind uint64, words ...uint64) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], kind)
	_, _ = h.Write(buf[:])
	for _, w := range words {
		binary.LittleEndian.PutUint64(buf[:], w)
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}

func hashString(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// hashAny hashes an opaque dispatch expression or criterion target.
// Values may provide their own Hash; everything else is hashed through its
// type and printed form. For pointers the printed form is the address,
// which keeps identity semantics in-process but is not stable across runs.
func hashAny(v any) uint64 {
	if hasher, ok := v.(interface{ Hash() uint64 }); ok {
		return hasher.Hash()
	}
	return hashString(fmt.Sprintf("%T:%v", v, v))
}

func hashBool(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
