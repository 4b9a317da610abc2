package util

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stringer int

func (s stringer) String() string { return strconv.Itoa(int(s)) }

func TestJoinString(t *testing.T) {
	assert.Equal(t, "", JoinString([]stringer{}, "∧"))
	assert.Equal(t, "1", JoinString([]stringer{1}, "∧"))
	assert.Equal(t, "1∧2∧3", JoinString([]stringer{1, 2, 3}, "∧"))
}

func TestMapSlice(t *testing.T) {
	doubled := MapSlice([]int{1, 2, 3}, func(i int) int { return i * 2 })
	assert.Equal(t, []int{2, 4, 6}, doubled)
	assert.Empty(t, MapSlice(nil, func(i int) int { return i }))
}
