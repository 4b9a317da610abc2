package util

import (
	"fmt"
	"strings"
)

// JoinString renders elems with their String method, separated by sep
func JoinString[A fmt.Stringer](elems []A, sep string) string {
	sb := &strings.Builder{}
	for i, elem := range elems {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(elem.String())
	}
	return sb.String()
}

func MapSlice[A, B any](elems []A, f func(A) B) []B {
	out := make([]B, 0, len(elems))
	for _, elem := range elems {
		out = append(out, f(elem))
	}
	return out
}
